package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PartnerLinkStatus string

const (
	// BY_CAMPAIGN delega o status efetivo ao status da campanha.
	PartnerLinkStatusByCampaign PartnerLinkStatus = "BY_CAMPAIGN"
	PartnerLinkStatusActive     PartnerLinkStatus = "ACTIVE"
	PartnerLinkStatusInactive   PartnerLinkStatus = "INACTIVE"
)

// PartnerLink é o acumulador do parceiro para um link atribuído: configuração
// de comissão vigente (percentual, trackers) mais os totais correntes.
type PartnerLink struct {
	ID         int64  `json:"id"`
	PartnerID  int64  `json:"partner_id"`
	CampaignID int64  `json:"campaign_id"`
	PromCode   string `json:"prom_code"`

	PercentageCPA      decimal.Decimal `json:"percentage_cpa"`
	IsPercentageCustom bool            `json:"is_percentage_custom"`

	Tracker                  decimal.Decimal `json:"tracker"`
	TrackerDeposit           decimal.Decimal `json:"tracker_deposit"`
	TrackerRegisteredCount   decimal.Decimal `json:"tracker_registered_count"`
	TrackerFirstDepositCount decimal.Decimal `json:"tracker_first_deposit_count"`
	TrackerWageringCount     decimal.Decimal `json:"tracker_wagering_count"`

	Status        PartnerLinkStatus `json:"status"`
	PartnerLevel  int               `json:"partner_level"`
	CurrencyLocal string            `json:"currency_local"`

	CpaCount         int64           `json:"cpa_count"`
	FixedIncome      decimal.Decimal `json:"fixed_income"`
	FixedIncomeLocal decimal.Decimal `json:"fixed_income_local"`

	AssignedAt time.Time `json:"assigned_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CountsForDate decide se o acumulador recebe valores na data do lote.
// INACTIVE explícito nunca conta; BY_CAMPAIGN herda a inatividade da campanha
// a partir do dia de last_inactive_at.
func (p *PartnerLink) CountsForDate(campaign *Campaign, date time.Time) bool {
	switch p.Status {
	case PartnerLinkStatusInactive:
		return false
	case PartnerLinkStatusByCampaign:
		return !campaign.InactiveAtDate(date)
	default:
		return true
	}
}

// Partner guarda os percentuais de repasse do conselheiro e do indicador.
// NullDecimal preserva a distinção nulo-vs-zero exigida pelos relatórios.
type Partner struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	Level        int    `json:"level"`
	AdviserID    *int64 `json:"adviser_id"`
	ReferredByID *int64 `json:"referred_by_id"`

	FixedIncomeAdviserPercentage  decimal.NullDecimal `json:"fixed_income_adviser_percentage"`
	NetRevenueAdviserPercentage   decimal.NullDecimal `json:"net_revenue_adviser_percentage"`
	FixedIncomeReferredPercentage decimal.NullDecimal `json:"fixed_income_referred_percentage"`
	NetRevenueReferredPercentage  decimal.NullDecimal `json:"net_revenue_referred_percentage"`
}
