package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/betenlace/partners-cpa-api/infrastructure/database/postgres"
	"github.com/betenlace/partners-cpa-api/internal/domain"
)

const betenlaceDailyTable = "betenlace_daily_reports bdr"

type BetenlaceDailyRepository interface {
	GetByCpaAndDateForUpdate(q postgres.Queryer, betenlaceCpaID int64, date time.Time) (*domain.BetenlaceDailyReport, error)
	GetByCpaAndDate(betenlaceCpaID int64, date time.Time) (*domain.BetenlaceDailyReport, error)
	Create(q postgres.Queryer, report *domain.BetenlaceDailyReport) error
	Update(q postgres.Queryer, report *domain.BetenlaceDailyReport) error
	EnsureDaily(betenlaceCpaID int64, date time.Time, currencyCondition, currencyFixedIncome string) error
	IncrementClickCount(betenlaceCpaID int64, date time.Time) error
}

type betenlaceDailyRepository struct {
	conn *postgres.Connection
}

func NewBetenlaceDailyRepository(conn *postgres.Connection) BetenlaceDailyRepository {
	return &betenlaceDailyRepository{
		conn: conn,
	}
}

const betenlaceDailyColumns = "bdr.id, bdr.betenlace_cpa_id, bdr.created_at, bdr.currency_condition, " +
	"bdr.currency_fixed_income, bdr.click_count, bdr.registered_count, bdr.cpa_count, " +
	"bdr.first_deposit_count, bdr.wagering_count, bdr.deposit, bdr.stake, bdr.net_revenue, " +
	"bdr.revenue_share, bdr.fixed_income_unitary, bdr.fixed_income, bdr.fx_snapshot_id"

func (r *betenlaceDailyRepository) GetByCpaAndDateForUpdate(q postgres.Queryer, betenlaceCpaID int64, date time.Time) (*domain.BetenlaceDailyReport, error) {
	query, args, err := squirrel.
		Select(betenlaceDailyColumns).
		From(betenlaceDailyTable).
		Where(squirrel.Eq{"bdr.betenlace_cpa_id": betenlaceCpaID, "bdr.created_at": date.Format("2006-01-02")}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report := &domain.BetenlaceDailyReport{}
	row := q.QueryRow(query, args...)
	if err := row.Scan(
		&report.ID,
		&report.BetenlaceCPAID,
		&report.CreatedAt,
		&report.CurrencyCondition,
		&report.CurrencyFixedIncome,
		&report.ClickCount,
		&report.RegisteredCount,
		&report.CpaCount,
		&report.FirstDepositCount,
		&report.WageringCount,
		&report.Deposit,
		&report.Stake,
		&report.NetRevenue,
		&report.RevenueShare,
		&report.FixedIncomeUnitary,
		&report.FixedIncome,
		&report.FxSnapshotID,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear linha diária da casa: %w", err)
	}

	return report, nil
}

// GetByCpaAndDate é a leitura sem trava usada pelo pipeline de cliques, que
// só precisa do id da linha do dia.
func (r *betenlaceDailyRepository) GetByCpaAndDate(betenlaceCpaID int64, date time.Time) (*domain.BetenlaceDailyReport, error) {
	query, args, err := squirrel.
		Select(betenlaceDailyColumns).
		From(betenlaceDailyTable).
		Where(squirrel.Eq{"bdr.betenlace_cpa_id": betenlaceCpaID, "bdr.created_at": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report := &domain.BetenlaceDailyReport{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(
		&report.ID,
		&report.BetenlaceCPAID,
		&report.CreatedAt,
		&report.CurrencyCondition,
		&report.CurrencyFixedIncome,
		&report.ClickCount,
		&report.RegisteredCount,
		&report.CpaCount,
		&report.FirstDepositCount,
		&report.WageringCount,
		&report.Deposit,
		&report.Stake,
		&report.NetRevenue,
		&report.RevenueShare,
		&report.FixedIncomeUnitary,
		&report.FixedIncome,
		&report.FxSnapshotID,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear linha diária da casa: %w", err)
	}

	return report, nil
}

func (r *betenlaceDailyRepository) Create(q postgres.Queryer, report *domain.BetenlaceDailyReport) error {
	query, args, err := squirrel.
		Insert("betenlace_daily_reports").
		Columns("betenlace_cpa_id", "created_at", "currency_condition", "currency_fixed_income",
			"registered_count", "cpa_count", "first_deposit_count", "wagering_count",
			"deposit", "stake", "net_revenue", "revenue_share",
			"fixed_income_unitary", "fixed_income", "fx_snapshot_id").
		Values(report.BetenlaceCPAID, report.CreatedAt.Format("2006-01-02"),
			report.CurrencyCondition, report.CurrencyFixedIncome,
			report.RegisteredCount, report.CpaCount, report.FirstDepositCount, report.WageringCount,
			report.Deposit, report.Stake, report.NetRevenue, report.RevenueShare,
			report.FixedIncomeUnitary, report.FixedIncome, report.FxSnapshotID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRow(query, args...).Scan(&report.ID); err != nil {
		return fmt.Errorf("erro ao criar linha diária da casa: %w", err)
	}

	return nil
}

// Update sobrescreve os valores do dia; click_count não é tocado aqui porque
// pertence ao pipeline de cliques.
func (r *betenlaceDailyRepository) Update(q postgres.Queryer, report *domain.BetenlaceDailyReport) error {
	query, args, err := squirrel.
		Update("betenlace_daily_reports").
		Set("registered_count", report.RegisteredCount).
		Set("cpa_count", report.CpaCount).
		Set("first_deposit_count", report.FirstDepositCount).
		Set("wagering_count", report.WageringCount).
		Set("deposit", report.Deposit).
		Set("stake", report.Stake).
		Set("net_revenue", report.NetRevenue).
		Set("revenue_share", report.RevenueShare).
		Set("fixed_income_unitary", report.FixedIncomeUnitary).
		Set("fixed_income", report.FixedIncome).
		Set("fx_snapshot_id", report.FxSnapshotID).
		Where(squirrel.Eq{"id": report.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar linha diária da casa: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("linha diária %d não encontrada", report.ID)
	}

	return nil
}

// EnsureDaily garante a linha do dia sem sobrescrever o que já existe.
// Concorrência entre workers é resolvida pelo ON CONFLICT.
func (r *betenlaceDailyRepository) EnsureDaily(betenlaceCpaID int64, date time.Time, currencyCondition, currencyFixedIncome string) error {
	query, args, err := squirrel.
		Insert("betenlace_daily_reports").
		Columns("betenlace_cpa_id", "created_at", "currency_condition", "currency_fixed_income").
		Values(betenlaceCpaID, date.Format("2006-01-02"), currencyCondition, currencyFixedIncome).
		Suffix("ON CONFLICT (betenlace_cpa_id, created_at) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao garantir linha diária: %w", err)
	}

	return nil
}

// IncrementClickCount soma 1 ao contador do dia de forma atômica.
func (r *betenlaceDailyRepository) IncrementClickCount(betenlaceCpaID int64, date time.Time) error {
	query, args, err := squirrel.
		Update("betenlace_daily_reports").
		Set("click_count", squirrel.Expr("click_count + 1")).
		Where(squirrel.Eq{"betenlace_cpa_id": betenlaceCpaID, "created_at": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao incrementar cliques: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("linha diária do link %d em %s não encontrada", betenlaceCpaID, date.Format("2006-01-02"))
	}

	return nil
}
