package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BetenlaceDailyReport é a linha diária da casa para um link. Única por
// (betenlace_cpa_id, created_at); created_at guarda apenas a data, no fuso
// contábil.
type BetenlaceDailyReport struct {
	ID             int64     `json:"id"`
	BetenlaceCPAID int64     `json:"betenlace_cpa_id"`
	CreatedAt      time.Time `json:"created_at"`

	CurrencyCondition   string `json:"currency_condition"`
	CurrencyFixedIncome string `json:"currency_fixed_income"`

	ClickCount        int64 `json:"click_count"`
	RegisteredCount   int64 `json:"registered_count"`
	CpaCount          int64 `json:"cpa_count"`
	FirstDepositCount int64 `json:"first_deposit_count"`
	WageringCount     int64 `json:"wagering_count"`

	Deposit            decimal.Decimal `json:"deposit"`
	Stake              decimal.Decimal `json:"stake"`
	NetRevenue         decimal.Decimal `json:"net_revenue"`
	RevenueShare       decimal.Decimal `json:"revenue_share"`
	FixedIncomeUnitary decimal.Decimal `json:"fixed_income_unitary"`
	FixedIncome        decimal.Decimal `json:"fixed_income"`

	FxSnapshotID *int64 `json:"fx_snapshot_id"`
}

// PartnerLinkDailyReport é a linha diária do parceiro, sempre recalculada a
// partir do acumulador vivo e da configuração vigente do parceiro no momento
// do lote. Única por (betenlace_daily_report_id, partner_link_id).
type PartnerLinkDailyReport struct {
	ID                     int64     `json:"id"`
	BetenlaceDailyReportID int64     `json:"betenlace_daily_report_id"`
	PartnerLinkID          int64     `json:"partner_link_id"`
	PartnerID              int64     `json:"partner_id"`
	CreatedAt              time.Time `json:"created_at"`

	CurrencyCondition   string `json:"currency_condition"`
	CurrencyFixedIncome string `json:"currency_fixed_income"`
	CurrencyLocal       string `json:"currency_local"`

	FxBookLocal           decimal.Decimal `json:"fx_book_local"`
	FxBookNetRevenueLocal decimal.Decimal `json:"fx_book_net_revenue_local"`
	FxPercentage          decimal.Decimal `json:"fx_percentage"`

	PercentageCPA decimal.Decimal `json:"percentage_cpa"`

	Tracker                  decimal.Decimal `json:"tracker"`
	TrackerDeposit           decimal.Decimal `json:"tracker_deposit"`
	TrackerRegisteredCount   decimal.Decimal `json:"tracker_registered_count"`
	TrackerFirstDepositCount decimal.Decimal `json:"tracker_first_deposit_count"`
	TrackerWageringCount     decimal.Decimal `json:"tracker_wagering_count"`

	CpaCount          int64           `json:"cpa_count"`
	RegisteredCount   int64           `json:"registered_count"`
	FirstDepositCount int64           `json:"first_deposit_count"`
	WageringCount     int64           `json:"wagering_count"`
	Deposit           decimal.Decimal `json:"deposit"`

	FixedIncomeUnitary      decimal.Decimal `json:"fixed_income_unitary"`
	FixedIncome             decimal.Decimal `json:"fixed_income"`
	FixedIncomeUnitaryLocal decimal.Decimal `json:"fixed_income_unitary_local"`
	FixedIncomeLocal        decimal.Decimal `json:"fixed_income_local"`

	AdviserID               *int64              `json:"adviser_id"`
	FixedIncomeAdviser      decimal.NullDecimal `json:"fixed_income_adviser"`
	FixedIncomeAdviserLocal decimal.NullDecimal `json:"fixed_income_adviser_local"`
	NetRevenueAdviser       decimal.NullDecimal `json:"net_revenue_adviser"`
	NetRevenueAdviserLocal  decimal.NullDecimal `json:"net_revenue_adviser_local"`

	ReferredByID             *int64              `json:"referred_by_id"`
	FixedIncomeReferred      decimal.NullDecimal `json:"fixed_income_referred"`
	FixedIncomeReferredLocal decimal.NullDecimal `json:"fixed_income_referred_local"`
	NetRevenueReferred       decimal.NullDecimal `json:"net_revenue_referred"`
	NetRevenueReferredLocal  decimal.NullDecimal `json:"net_revenue_referred_local"`

	FxSnapshotID *int64 `json:"fx_snapshot_id"`
}
