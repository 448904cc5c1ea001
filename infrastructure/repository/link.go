package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/betenlace/partners-cpa-api/infrastructure/database/postgres"
	"github.com/betenlace/partners-cpa-api/internal/domain"
)

const linksTable = "links l"

type LinkRepository interface {
	GetByID(linkID int64) (*domain.Link, error)
	GetByCampaignAndPromCode(campaignID int64, promCode string) (*domain.Link, error)
	Create(link *domain.Link) (*domain.Link, error)
	AssignPartnerLink(linkID, partnerLinkID int64) error
	DetachPartnerLink(linkID int64) error
	CountByCampaignAndStatus(campaignID int64, status domain.LinkStatus) (int64, error)
}

type linkRepository struct {
	conn *postgres.Connection
}

func NewLinkRepository(conn *postgres.Connection) LinkRepository {
	return &linkRepository{
		conn: conn,
	}
}

const linkColumns = "l.id, l.campaign_id, l.prom_code, l.url, l.status, l.partner_link_id, l.created_at, l.updated_at"

func (r *linkRepository) GetByID(linkID int64) (*domain.Link, error) {
	return r.getLink(squirrel.Eq{"l.id": linkID})
}

func (r *linkRepository) GetByCampaignAndPromCode(campaignID int64, promCode string) (*domain.Link, error) {
	return r.getLink(squirrel.Eq{"l.campaign_id": campaignID, "l.prom_code": promCode})
}

func (r *linkRepository) getLink(whereClause interface{}) (*domain.Link, error) {
	query, args, err := squirrel.
		Select(linkColumns).
		From(linksTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	link := &domain.Link{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(
		&link.ID,
		&link.CampaignID,
		&link.PromCode,
		&link.URL,
		&link.Status,
		&link.PartnerLinkID,
		&link.CreatedAt,
		&link.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear link: %w", err)
	}

	return link, nil
}

// Create insere o link e o acumulador da casa zerado na mesma operação lógica.
// A URL é única globalmente; violação volta como erro do banco.
func (r *linkRepository) Create(link *domain.Link) (*domain.Link, error) {
	query, args, err := squirrel.
		Insert("links").
		Columns("campaign_id", "prom_code", "url", "status").
		Values(link.CampaignID, link.PromCode, link.URL, link.Status).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&link.ID, &link.CreatedAt, &link.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao criar link: %w", err)
	}

	cpaQuery, cpaArgs, err := squirrel.
		Insert("betenlace_cpas").
		Columns("link_id").
		Values(link.ID).
		Suffix("ON CONFLICT (link_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(cpaQuery, cpaArgs...); err != nil {
		return nil, fmt.Errorf("erro ao criar acumulador do link: %w", err)
	}

	return link, nil
}

func (r *linkRepository) AssignPartnerLink(linkID, partnerLinkID int64) error {
	return r.updateAssignment(linkID, &partnerLinkID, domain.LinkStatusAssigned)
}

// DetachPartnerLink libera o slot do link; o acumulador do parceiro é
// preservado pelo chamador.
func (r *linkRepository) DetachPartnerLink(linkID int64) error {
	return r.updateAssignment(linkID, nil, domain.LinkStatusAvailable)
}

func (r *linkRepository) updateAssignment(linkID int64, partnerLinkID *int64, status domain.LinkStatus) error {
	query, args, err := squirrel.
		Update("links").
		Set("partner_link_id", partnerLinkID).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": linkID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar link: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("link %d não encontrado", linkID)
	}

	return nil
}

func (r *linkRepository) CountByCampaignAndStatus(campaignID int64, status domain.LinkStatus) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(linksTable).
		Where(squirrel.Eq{"l.campaign_id": campaignID, "l.status": status}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar links: %w", err)
	}

	return count, nil
}
