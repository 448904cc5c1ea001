package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/betenlace/partners-cpa-api/infrastructure/database/postgres"
	"github.com/betenlace/partners-cpa-api/internal/domain"
)

const partnerLinksTable = "partner_links pl"

type PartnerLinkRepository interface {
	GetByID(partnerLinkID int64) (*domain.PartnerLink, error)
	GetForUpdate(q postgres.Queryer, partnerLinkID int64) (*domain.PartnerLink, error)
	Create(partnerLink *domain.PartnerLink) (*domain.PartnerLink, error)
	UpdateStatus(partnerLinkID int64, status domain.PartnerLinkStatus) error
	ApplyDelta(q postgres.Queryer, partnerLinkID int64, delta domain.PartnerLinkDelta) error
}

type partnerLinkRepository struct {
	conn *postgres.Connection
}

func NewPartnerLinkRepository(conn *postgres.Connection) PartnerLinkRepository {
	return &partnerLinkRepository{
		conn: conn,
	}
}

const partnerLinkColumns = "pl.id, pl.partner_id, pl.campaign_id, pl.prom_code, pl.percentage_cpa, " +
	"pl.is_percentage_custom, pl.tracker, pl.tracker_deposit, pl.tracker_registered_count, " +
	"pl.tracker_first_deposit_count, pl.tracker_wagering_count, pl.status, pl.partner_level, " +
	"pl.currency_local, pl.cpa_count, pl.fixed_income, pl.fixed_income_local, pl.assigned_at, pl.updated_at"

func (r *partnerLinkRepository) GetByID(partnerLinkID int64) (*domain.PartnerLink, error) {
	return r.getPartnerLink(r.conn, partnerLinkID, false)
}

func (r *partnerLinkRepository) GetForUpdate(q postgres.Queryer, partnerLinkID int64) (*domain.PartnerLink, error) {
	return r.getPartnerLink(q, partnerLinkID, true)
}

func (r *partnerLinkRepository) getPartnerLink(q postgres.Queryer, partnerLinkID int64, forUpdate bool) (*domain.PartnerLink, error) {
	builder := squirrel.
		Select(partnerLinkColumns).
		From(partnerLinksTable).
		Where(squirrel.Eq{"pl.id": partnerLinkID}).
		PlaceholderFormat(squirrel.Dollar)

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	partnerLink := &domain.PartnerLink{}
	row := q.QueryRow(query, args...)
	if err := row.Scan(
		&partnerLink.ID,
		&partnerLink.PartnerID,
		&partnerLink.CampaignID,
		&partnerLink.PromCode,
		&partnerLink.PercentageCPA,
		&partnerLink.IsPercentageCustom,
		&partnerLink.Tracker,
		&partnerLink.TrackerDeposit,
		&partnerLink.TrackerRegisteredCount,
		&partnerLink.TrackerFirstDepositCount,
		&partnerLink.TrackerWageringCount,
		&partnerLink.Status,
		&partnerLink.PartnerLevel,
		&partnerLink.CurrencyLocal,
		&partnerLink.CpaCount,
		&partnerLink.FixedIncome,
		&partnerLink.FixedIncomeLocal,
		&partnerLink.AssignedAt,
		&partnerLink.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear acumulador do parceiro: %w", err)
	}

	return partnerLink, nil
}

func (r *partnerLinkRepository) Create(partnerLink *domain.PartnerLink) (*domain.PartnerLink, error) {
	query, args, err := squirrel.
		Insert("partner_links").
		Columns("partner_id", "campaign_id", "prom_code", "percentage_cpa", "is_percentage_custom",
			"tracker", "tracker_deposit", "tracker_registered_count", "tracker_first_deposit_count",
			"tracker_wagering_count", "status", "partner_level", "currency_local").
		Values(partnerLink.PartnerID, partnerLink.CampaignID, partnerLink.PromCode,
			partnerLink.PercentageCPA, partnerLink.IsPercentageCustom,
			partnerLink.Tracker, partnerLink.TrackerDeposit, partnerLink.TrackerRegisteredCount,
			partnerLink.TrackerFirstDepositCount, partnerLink.TrackerWageringCount,
			partnerLink.Status, partnerLink.PartnerLevel, partnerLink.CurrencyLocal).
		Suffix("RETURNING id, assigned_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&partnerLink.ID, &partnerLink.AssignedAt, &partnerLink.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao criar acumulador do parceiro: %w", err)
	}

	return partnerLink, nil
}

func (r *partnerLinkRepository) UpdateStatus(partnerLinkID int64, status domain.PartnerLinkStatus) error {
	query, args, err := squirrel.
		Update("partner_links").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": partnerLinkID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar acumulador do parceiro: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("acumulador do parceiro %d não encontrado", partnerLinkID)
	}

	return nil
}

func (r *partnerLinkRepository) ApplyDelta(q postgres.Queryer, partnerLinkID int64, delta domain.PartnerLinkDelta) error {
	query, args, err := squirrel.
		Update("partner_links").
		Set("cpa_count", squirrel.Expr("cpa_count + ?", delta.CpaCount)).
		Set("fixed_income", squirrel.Expr("fixed_income + ?", delta.FixedIncome)).
		Set("fixed_income_local", squirrel.Expr("fixed_income_local + ?", delta.FixedIncomeLocal)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": partnerLinkID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar acumulador do parceiro: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("acumulador do parceiro %d não encontrado", partnerLinkID)
	}

	return nil
}
