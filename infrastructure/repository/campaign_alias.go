package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/betenlace/partners-cpa-api/infrastructure/database/postgres"
	"github.com/betenlace/partners-cpa-api/internal/domain"
)

const campaignAliasesTable = "campaign_aliases ca"

// CampaignAliasRepository resolve pares (campanha, prom_code) legados para o
// par vigente antes da resolução normal.
type CampaignAliasRepository interface {
	Resolve(sourceCampaign, sourcePromCode string) (*domain.CampaignAlias, error)
}

type campaignAliasRepository struct {
	conn *postgres.Connection
}

func NewCampaignAliasRepository(conn *postgres.Connection) CampaignAliasRepository {
	return &campaignAliasRepository{
		conn: conn,
	}
}

func (r *campaignAliasRepository) Resolve(sourceCampaign, sourcePromCode string) (*domain.CampaignAlias, error) {
	query, args, err := squirrel.
		Select("ca.source_campaign, ca.source_prom_code, ca.target_campaign_id, ca.target_prom_code").
		From(campaignAliasesTable).
		Where(squirrel.Eq{"ca.source_campaign": sourceCampaign, "ca.source_prom_code": sourcePromCode}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	alias := &domain.CampaignAlias{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(
		&alias.SourceCampaign,
		&alias.SourcePromCode,
		&alias.TargetCampaignID,
		&alias.TargetPromCode,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear alias de campanha: %w", err)
	}

	return alias, nil
}
