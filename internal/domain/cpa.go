package domain

import "github.com/shopspring/decimal"

// CPAReportItem é um item do lote diário enviado pelo fechamento. Os campos
// *_partner alimentam a linha do parceiro; os demais, a linha da casa.
type CPAReportItem struct {
	IDLink int64 `json:"id_link"`

	CpaBetenlace      int64           `json:"cpa_betenlace"`
	RegisteredCount   int64           `json:"registered_count"`
	FirstDepositCount int64           `json:"first_deposit_count"`
	WageringCount     int64           `json:"wagering_count"`
	Deposit           decimal.Decimal `json:"deposit"`
	Stake             decimal.Decimal `json:"stake"`
	NetRevenue        decimal.Decimal `json:"net_revenue"`
	RevenueShare      decimal.Decimal `json:"revenue_share"`

	CpaPartner               int64           `json:"cpa_partner"`
	DepositPartner           decimal.Decimal `json:"deposit_partner"`
	RegisteredCountPartner   int64           `json:"registered_count_partner"`
	FirstDepositCountPartner int64           `json:"first_deposit_count_partner"`
	WageringCountPartner     int64           `json:"wagering_count_partner"`
}

type CPABatchRequest struct {
	Data []CPAReportItem `json:"data"`
}

// BetenlaceCPADelta é a diferença (entrada − valor diário anterior) aplicada
// aditivamente ao acumulador da casa.
type BetenlaceCPADelta struct {
	CpaCount          int64
	RegisteredCount   int64
	FirstDepositCount int64
	WageringCount     int64
	Deposit           decimal.Decimal
	Stake             decimal.Decimal
	NetRevenue        decimal.Decimal
	RevenueShare      decimal.Decimal
	FixedIncome       decimal.Decimal
}

// PartnerLinkDelta é a diferença aplicada ao acumulador do parceiro.
type PartnerLinkDelta struct {
	CpaCount         int64
	FixedIncome      decimal.Decimal
	FixedIncomeLocal decimal.Decimal
}
