package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LinkStatus string

const (
	LinkStatusAvailable   LinkStatus = "AVAILABLE"
	LinkStatusAssigned    LinkStatus = "ASSIGNED"
	LinkStatusUnavailable LinkStatus = "UNAVAILABLE"
	// GROWTH marca links de aquisição monitorados: acessos de bot nesses
	// links disparam o webhook de diagnóstico.
	LinkStatusGrowth LinkStatus = "GROWTH"
)

type Link struct {
	ID            int64      `json:"id"`
	CampaignID    int64      `json:"campaign_id"`
	PromCode      string     `json:"prom_code"`
	URL           string     `json:"url"`
	Status        LinkStatus `json:"status"`
	PartnerLinkID *int64     `json:"partner_link_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (l *Link) IsAssigned() bool {
	return l.Status == LinkStatusAssigned && l.PartnerLinkID != nil
}

// BetenlaceCPA é o acumulador da casa, 1:1 com o link (link_id é a chave).
// Totais correntes desde a criação do link, alimentados aditivamente pelos
// deltas diários.
type BetenlaceCPA struct {
	LinkID            int64           `json:"link_id"`
	CpaCount          int64           `json:"cpa_count"`
	RegisteredCount   int64           `json:"registered_count"`
	FirstDepositCount int64           `json:"first_deposit_count"`
	WageringCount     int64           `json:"wagering_count"`
	Deposit           decimal.Decimal `json:"deposit"`
	Stake             decimal.Decimal `json:"stake"`
	NetRevenue        decimal.Decimal `json:"net_revenue"`
	RevenueShare      decimal.Decimal `json:"revenue_share"`
	FixedIncome       decimal.Decimal `json:"fixed_income"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
