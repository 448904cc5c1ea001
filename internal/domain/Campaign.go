package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignStatusNotAvailable CampaignStatus = "NOT_AVAILABLE"
	CampaignStatusComingSoon   CampaignStatus = "COMING_SOON"
	CampaignStatusAvailable    CampaignStatus = "AVAILABLE"
	// OUT_STOCK é derivado da quantidade de links livres, nunca atribuído
	// diretamente por um admin.
	CampaignStatusOutStock CampaignStatus = "OUT_STOCK"
	CampaignStatusInactive CampaignStatus = "INACTIVE"
)

type Campaign struct {
	ID                  int64           `json:"id"`
	BookmakerName       string          `json:"bookmaker_name"`
	Title               string          `json:"title"`
	CurrencyCondition   string          `json:"currency_condition"`
	CurrencyFixedIncome string          `json:"currency_fixed_income"`
	FixedIncomeUnitary  decimal.Decimal `json:"fixed_income_unitary"`
	DefaultPercentage   decimal.Decimal `json:"default_percentage"`
	Status              CampaignStatus  `json:"status"`
	LastInactiveAt      *time.Time      `json:"last_inactive_at"`

	// Trackers padrão herdados por novos acumuladores de parceiro.
	TrackerDefault                  decimal.Decimal `json:"tracker"`
	TrackerDepositDefault           decimal.Decimal `json:"tracker_deposit"`
	TrackerRegisteredCountDefault   decimal.Decimal `json:"tracker_registered_count"`
	TrackerFirstDepositCountDefault decimal.Decimal `json:"tracker_first_deposit_count"`
	TrackerWageringCountDefault     decimal.Decimal `json:"tracker_wagering_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CampaignTitle retorna o nome público da campanha ("<bookmaker> <title>"),
// usado no matching case-insensitive da superfície de redirecionamento.
func (c *Campaign) CampaignTitle() string {
	return strings.TrimSpace(c.BookmakerName + " " + c.Title)
}

func (c *Campaign) IsInactive() bool {
	return c.Status == CampaignStatusInactive
}

// InactiveAtDate indica se a campanha já estava inativa na data informada
// (comparação por dia, usando last_inactive_at como marco de vigência).
func (c *Campaign) InactiveAtDate(date time.Time) bool {
	if c.Status != CampaignStatusInactive || c.LastInactiveAt == nil {
		return false
	}

	y, m, d := c.LastInactiveAt.Date()
	inactiveDate := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	return !date.Before(inactiveDate)
}

// CampaignAlias remapeia um par (campanha, prom_code) legado para o par
// vigente. Tabela de dados, não caso especial em código.
type CampaignAlias struct {
	SourceCampaign   string `json:"source_campaign"`
	SourcePromCode   string `json:"source_prom_code"`
	TargetCampaignID int64  `json:"target_campaign_id"`
	TargetPromCode   string `json:"target_prom_code"`
}
