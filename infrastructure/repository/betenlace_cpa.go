package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/betenlace/partners-cpa-api/infrastructure/database/postgres"
	"github.com/betenlace/partners-cpa-api/internal/domain"
)

const betenlaceCpasTable = "betenlace_cpas bc"

// BetenlaceCPARepository opera o acumulador da casa. Os métodos recebem um
// Queryer para poderem rodar dentro da transação do lote.
type BetenlaceCPARepository interface {
	GetForUpdate(q postgres.Queryer, linkID int64) (*domain.BetenlaceCPA, error)
	ApplyDelta(q postgres.Queryer, linkID int64, delta domain.BetenlaceCPADelta) error
}

type betenlaceCPARepository struct{}

func NewBetenlaceCPARepository() BetenlaceCPARepository {
	return &betenlaceCPARepository{}
}

func (r *betenlaceCPARepository) GetForUpdate(q postgres.Queryer, linkID int64) (*domain.BetenlaceCPA, error) {
	query, args, err := squirrel.
		Select("bc.link_id, bc.cpa_count, bc.registered_count, bc.first_deposit_count, bc.wagering_count, "+
			"bc.deposit, bc.stake, bc.net_revenue, bc.revenue_share, bc.fixed_income, bc.updated_at").
		From(betenlaceCpasTable).
		Where(squirrel.Eq{"bc.link_id": linkID}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cpa := &domain.BetenlaceCPA{}
	row := q.QueryRow(query, args...)
	if err := row.Scan(
		&cpa.LinkID,
		&cpa.CpaCount,
		&cpa.RegisteredCount,
		&cpa.FirstDepositCount,
		&cpa.WageringCount,
		&cpa.Deposit,
		&cpa.Stake,
		&cpa.NetRevenue,
		&cpa.RevenueShare,
		&cpa.FixedIncome,
		&cpa.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear acumulador da casa: %w", err)
	}

	return cpa, nil
}

// ApplyDelta soma os deltas aos totais correntes. Nunca sobrescreve: os
// totais só andam pelo que o dia mudou.
func (r *betenlaceCPARepository) ApplyDelta(q postgres.Queryer, linkID int64, delta domain.BetenlaceCPADelta) error {
	query, args, err := squirrel.
		Update("betenlace_cpas").
		Set("cpa_count", squirrel.Expr("cpa_count + ?", delta.CpaCount)).
		Set("registered_count", squirrel.Expr("registered_count + ?", delta.RegisteredCount)).
		Set("first_deposit_count", squirrel.Expr("first_deposit_count + ?", delta.FirstDepositCount)).
		Set("wagering_count", squirrel.Expr("wagering_count + ?", delta.WageringCount)).
		Set("deposit", squirrel.Expr("deposit + ?", delta.Deposit)).
		Set("stake", squirrel.Expr("stake + ?", delta.Stake)).
		Set("net_revenue", squirrel.Expr("net_revenue + ?", delta.NetRevenue)).
		Set("revenue_share", squirrel.Expr("revenue_share + ?", delta.RevenueShare)).
		Set("fixed_income", squirrel.Expr("fixed_income + ?", delta.FixedIncome)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"link_id": linkID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar acumulador da casa: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("acumulador da casa para o link %d não encontrado", linkID)
	}

	return nil
}
