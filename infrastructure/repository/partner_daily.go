package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/betenlace/partners-cpa-api/infrastructure/database/postgres"
	"github.com/betenlace/partners-cpa-api/internal/domain"
)

const partnerLinkDailyTable = "partner_link_daily_reports pldr"

// PartnerLinkDailyRepository persiste a linha diária do parceiro. O lote
// sempre faz upsert com sobrescrita: a linha é recalculada inteira a cada
// lote a partir do acumulador vivo, nunca acumulada no lugar. EnsureDaily é
// o caminho dos cliques: materializa a linha do dia sem tocar no que existe.
type PartnerLinkDailyRepository interface {
	GetByDailyAndPartnerLinkForUpdate(q postgres.Queryer, betenlaceDailyReportID, partnerLinkID int64) (*domain.PartnerLinkDailyReport, error)
	Upsert(q postgres.Queryer, report *domain.PartnerLinkDailyReport) error
	EnsureDaily(report *domain.PartnerLinkDailyReport) error
}

type partnerLinkDailyRepository struct {
	conn *postgres.Connection
}

func NewPartnerLinkDailyRepository(conn *postgres.Connection) PartnerLinkDailyRepository {
	return &partnerLinkDailyRepository{
		conn: conn,
	}
}

// EnsureDaily cria a linha do parceiro no primeiro clique do dia, copiando a
// configuração vigente do acumulador. Concorrência entre workers é resolvida
// pelo ON CONFLICT.
func (r *partnerLinkDailyRepository) EnsureDaily(report *domain.PartnerLinkDailyReport) error {
	query, args, err := squirrel.
		Insert("partner_link_daily_reports").
		Columns("betenlace_daily_report_id", "partner_link_id", "partner_id", "created_at",
			"currency_condition", "currency_fixed_income", "currency_local",
			"percentage_cpa", "adviser_id", "referred_by_id").
		Values(report.BetenlaceDailyReportID, report.PartnerLinkID, report.PartnerID,
			report.CreatedAt.Format("2006-01-02"),
			report.CurrencyCondition, report.CurrencyFixedIncome, report.CurrencyLocal,
			report.PercentageCPA, report.AdviserID, report.ReferredByID).
		Suffix("ON CONFLICT (betenlace_daily_report_id, partner_link_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao garantir linha diária do parceiro: %w", err)
	}

	return nil
}

// GetByDailyAndPartnerLinkForUpdate devolve a linha do parceiro para o dia,
// travada. O lote usa os valores anteriores para calcular os deltas do
// acumulador.
func (r *partnerLinkDailyRepository) GetByDailyAndPartnerLinkForUpdate(q postgres.Queryer, betenlaceDailyReportID, partnerLinkID int64) (*domain.PartnerLinkDailyReport, error) {
	query, args, err := squirrel.
		Select("pldr.id, pldr.cpa_count, pldr.fixed_income, pldr.fixed_income_local, "+
			"pldr.registered_count, pldr.first_deposit_count, pldr.wagering_count, pldr.deposit").
		From(partnerLinkDailyTable).
		Where(squirrel.Eq{"pldr.betenlace_daily_report_id": betenlaceDailyReportID, "pldr.partner_link_id": partnerLinkID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report := &domain.PartnerLinkDailyReport{
		BetenlaceDailyReportID: betenlaceDailyReportID,
		PartnerLinkID:          partnerLinkID,
	}

	row := q.QueryRow(query, args...)
	if err := row.Scan(
		&report.ID,
		&report.CpaCount,
		&report.FixedIncome,
		&report.FixedIncomeLocal,
		&report.RegisteredCount,
		&report.FirstDepositCount,
		&report.WageringCount,
		&report.Deposit,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear linha diária do parceiro: %w", err)
	}

	return report, nil
}

func (r *partnerLinkDailyRepository) Upsert(q postgres.Queryer, report *domain.PartnerLinkDailyReport) error {
	query, args, err := squirrel.
		Insert("partner_link_daily_reports").
		Columns("betenlace_daily_report_id", "partner_link_id", "partner_id", "created_at",
			"currency_condition", "currency_fixed_income", "currency_local",
			"fx_book_local", "fx_book_net_revenue_local", "fx_percentage",
			"percentage_cpa", "tracker", "tracker_deposit", "tracker_registered_count",
			"tracker_first_deposit_count", "tracker_wagering_count",
			"cpa_count", "registered_count", "first_deposit_count", "wagering_count", "deposit",
			"fixed_income_unitary", "fixed_income", "fixed_income_unitary_local", "fixed_income_local",
			"adviser_id", "fixed_income_adviser", "fixed_income_adviser_local",
			"net_revenue_adviser", "net_revenue_adviser_local",
			"referred_by_id", "fixed_income_referred", "fixed_income_referred_local",
			"net_revenue_referred", "net_revenue_referred_local", "fx_snapshot_id").
		Values(report.BetenlaceDailyReportID, report.PartnerLinkID, report.PartnerID,
			report.CreatedAt.Format("2006-01-02"),
			report.CurrencyCondition, report.CurrencyFixedIncome, report.CurrencyLocal,
			report.FxBookLocal, report.FxBookNetRevenueLocal, report.FxPercentage,
			report.PercentageCPA, report.Tracker, report.TrackerDeposit, report.TrackerRegisteredCount,
			report.TrackerFirstDepositCount, report.TrackerWageringCount,
			report.CpaCount, report.RegisteredCount, report.FirstDepositCount, report.WageringCount,
			report.Deposit,
			report.FixedIncomeUnitary, report.FixedIncome, report.FixedIncomeUnitaryLocal,
			report.FixedIncomeLocal,
			report.AdviserID, report.FixedIncomeAdviser, report.FixedIncomeAdviserLocal,
			report.NetRevenueAdviser, report.NetRevenueAdviserLocal,
			report.ReferredByID, report.FixedIncomeReferred, report.FixedIncomeReferredLocal,
			report.NetRevenueReferred, report.NetRevenueReferredLocal, report.FxSnapshotID).
		Suffix("ON CONFLICT (betenlace_daily_report_id, partner_link_id) DO UPDATE SET " +
			"currency_local = EXCLUDED.currency_local, " +
			"fx_book_local = EXCLUDED.fx_book_local, " +
			"fx_book_net_revenue_local = EXCLUDED.fx_book_net_revenue_local, " +
			"fx_percentage = EXCLUDED.fx_percentage, " +
			"percentage_cpa = EXCLUDED.percentage_cpa, " +
			"tracker = EXCLUDED.tracker, " +
			"tracker_deposit = EXCLUDED.tracker_deposit, " +
			"tracker_registered_count = EXCLUDED.tracker_registered_count, " +
			"tracker_first_deposit_count = EXCLUDED.tracker_first_deposit_count, " +
			"tracker_wagering_count = EXCLUDED.tracker_wagering_count, " +
			"cpa_count = EXCLUDED.cpa_count, " +
			"registered_count = EXCLUDED.registered_count, " +
			"first_deposit_count = EXCLUDED.first_deposit_count, " +
			"wagering_count = EXCLUDED.wagering_count, " +
			"deposit = EXCLUDED.deposit, " +
			"fixed_income_unitary = EXCLUDED.fixed_income_unitary, " +
			"fixed_income = EXCLUDED.fixed_income, " +
			"fixed_income_unitary_local = EXCLUDED.fixed_income_unitary_local, " +
			"fixed_income_local = EXCLUDED.fixed_income_local, " +
			"adviser_id = EXCLUDED.adviser_id, " +
			"fixed_income_adviser = EXCLUDED.fixed_income_adviser, " +
			"fixed_income_adviser_local = EXCLUDED.fixed_income_adviser_local, " +
			"net_revenue_adviser = EXCLUDED.net_revenue_adviser, " +
			"net_revenue_adviser_local = EXCLUDED.net_revenue_adviser_local, " +
			"referred_by_id = EXCLUDED.referred_by_id, " +
			"fixed_income_referred = EXCLUDED.fixed_income_referred, " +
			"fixed_income_referred_local = EXCLUDED.fixed_income_referred_local, " +
			"net_revenue_referred = EXCLUDED.net_revenue_referred, " +
			"net_revenue_referred_local = EXCLUDED.net_revenue_referred_local, " +
			"fx_snapshot_id = EXCLUDED.fx_snapshot_id " +
			"RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRow(query, args...).Scan(&report.ID); err != nil {
		return fmt.Errorf("erro ao gravar linha diária do parceiro: %w", err)
	}

	return nil
}
