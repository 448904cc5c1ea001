package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/betenlace/partners-cpa-api/infrastructure/database/postgres"
	"github.com/betenlace/partners-cpa-api/internal/domain"
)

const partnersTable = "partners p"

type PartnerRepository interface {
	GetByID(partnerID int64) (*domain.Partner, error)
}

type partnerRepository struct {
	conn *postgres.Connection
}

func NewPartnerRepository(conn *postgres.Connection) PartnerRepository {
	return &partnerRepository{
		conn: conn,
	}
}

func (r *partnerRepository) GetByID(partnerID int64) (*domain.Partner, error) {
	query, args, err := squirrel.
		Select("p.id, p.user_id, p.level, p.adviser_id, p.referred_by_id, "+
			"p.fixed_income_adviser_percentage, p.net_revenue_adviser_percentage, "+
			"p.fixed_income_referred_percentage, p.net_revenue_referred_percentage").
		From(partnersTable).
		Where(squirrel.Eq{"p.id": partnerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	partner := &domain.Partner{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(
		&partner.ID,
		&partner.UserID,
		&partner.Level,
		&partner.AdviserID,
		&partner.ReferredByID,
		&partner.FixedIncomeAdviserPercentage,
		&partner.NetRevenueAdviserPercentage,
		&partner.FixedIncomeReferredPercentage,
		&partner.NetRevenueReferredPercentage,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear parceiro: %w", err)
	}

	return partner, nil
}
