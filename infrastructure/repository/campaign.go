package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/betenlace/partners-cpa-api/infrastructure/database/postgres"
	"github.com/betenlace/partners-cpa-api/internal/domain"
)

const campaignsTable = "campaigns c"

type CampaignRepository interface {
	GetByID(campaignID int64) (*domain.Campaign, error)
	GetByTitle(title string) (*domain.Campaign, error)
	ListByTitlePrefix(prefix string) ([]*domain.Campaign, error)
	UpdateStatus(campaignID int64, status domain.CampaignStatus, lastInactiveAt *time.Time) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

const campaignColumns = "c.id, c.bookmaker_name, c.title, c.currency_condition, c.currency_fixed_income, " +
	"c.fixed_income_unitary, c.default_percentage, c.status, c.last_inactive_at, " +
	"c.tracker, c.tracker_deposit, c.tracker_registered_count, c.tracker_first_deposit_count, " +
	"c.tracker_wagering_count, c.created_at, c.updated_at"

func (r *campaignRepository) GetByID(campaignID int64) (*domain.Campaign, error) {
	return r.getCampaign(squirrel.Eq{"c.id": campaignID})
}

// GetByTitle busca pelo título público canônico ("<bookmaker> <title>" em
// minúsculas, espaços colapsados).
func (r *campaignRepository) GetByTitle(title string) (*domain.Campaign, error) {
	return r.getCampaign(squirrel.Expr(
		"LOWER(regexp_replace(c.bookmaker_name || ' ' || c.title, '\\s+', ' ', 'g')) = ?", title,
	))
}

func (r *campaignRepository) getCampaign(whereClause interface{}) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	campaign, err := scanCampaign(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListByTitlePrefix(prefix string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Expr(
			"LOWER(regexp_replace(c.bookmaker_name || ' ' || c.title, '\\s+', ' ', 'g')) LIKE ?", prefix+"%",
		)).
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) UpdateStatus(campaignID int64, status domain.CampaignStatus, lastInactiveAt *time.Time) error {
	builder := squirrel.
		Update("campaigns").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar)

	if lastInactiveAt != nil {
		builder = builder.Set("last_inactive_at", *lastInactiveAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar campanha: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("campanha %d não encontrada", campaignID)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	if err := row.Scan(
		&campaign.ID,
		&campaign.BookmakerName,
		&campaign.Title,
		&campaign.CurrencyCondition,
		&campaign.CurrencyFixedIncome,
		&campaign.FixedIncomeUnitary,
		&campaign.DefaultPercentage,
		&campaign.Status,
		&campaign.LastInactiveAt,
		&campaign.TrackerDefault,
		&campaign.TrackerDepositDefault,
		&campaign.TrackerRegisteredCountDefault,
		&campaign.TrackerFirstDepositCountDefault,
		&campaign.TrackerWageringCountDefault,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return campaign, nil
}
