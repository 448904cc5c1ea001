package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/betenlace/partners-cpa-api/infrastructure/database/postgres"
	"github.com/betenlace/partners-cpa-api/internal/domain"
)

const clickTrackingsTable = "click_trackings ct"

// ClickTrackingRepository guarda as fingerprints de visitante. Interface
// separada da Connection principal para permitir apontar cliques a outro
// banco sem tocar o ingestor.
type ClickTrackingRepository interface {
	LatestByLinkAndIP(linkID int64, ip string) (*domain.ClickTracking, error)
	IncrementCount(clickTrackingID int64) error
	Create(click *domain.ClickTracking) error
	ListByLinkAndDateRange(linkID int64, startDate, endDate time.Time) ([]*domain.ClickTracking, error)
	DeleteOlderThan(days int) (int64, error)
}

type clickTrackingRepository struct {
	conn *postgres.Connection
}

func NewClickTrackingRepository(conn *postgres.Connection) ClickTrackingRepository {
	return &clickTrackingRepository{
		conn: conn,
	}
}

const clickTrackingColumns = "ct.id, ct.link_id, ct.partner_link_id, ct.ip, ct.registry, " +
	"ct.country_code, ct.country_name, ct.city, ct.asn_code, ct.asn_name, ct.asn_route, " +
	"ct.asn_start, ct.asn_end, ct.asn_count, ct.spam, ct.tor, ct.count, ct.created_at"

// LatestByLinkAndIP devolve a fingerprint mais recente do par, que o ingestor
// compara com a janela de dedup.
func (r *clickTrackingRepository) LatestByLinkAndIP(linkID int64, ip string) (*domain.ClickTracking, error) {
	query, args, err := squirrel.
		Select(clickTrackingColumns).
		From(clickTrackingsTable).
		Where(squirrel.Eq{"ct.link_id": linkID, "ct.ip": ip}).
		OrderBy("ct.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	click, err := scanClickTracking(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear click tracking: %w", err)
	}

	return click, nil
}

func (r *clickTrackingRepository) IncrementCount(clickTrackingID int64) error {
	query, args, err := squirrel.
		Update("click_trackings").
		Set("count", squirrel.Expr("count + 1")).
		Where(squirrel.Eq{"id": clickTrackingID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao incrementar contagem da fingerprint: %w", err)
	}

	return nil
}

func (r *clickTrackingRepository) Create(click *domain.ClickTracking) error {
	query, args, err := squirrel.
		Insert("click_trackings").
		Columns("link_id", "partner_link_id", "ip", "registry", "country_code", "country_name",
			"city", "asn_code", "asn_name", "asn_route", "asn_start", "asn_end", "asn_count",
			"spam", "tor", "count").
		Values(click.LinkID, click.PartnerLinkID, click.IP, click.Registry, click.CountryCode,
			click.CountryName, click.City, click.AsnCode, click.AsnName, click.AsnRoute,
			click.AsnStart, click.AsnEnd, click.AsnCount, click.Spam, click.Tor, click.Count).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&click.ID, &click.CreatedAt); err != nil {
		return fmt.Errorf("erro ao criar click tracking: %w", err)
	}

	return nil
}

func (r *clickTrackingRepository) ListByLinkAndDateRange(linkID int64, startDate, endDate time.Time) ([]*domain.ClickTracking, error) {
	query, args, err := squirrel.
		Select(clickTrackingColumns).
		From(clickTrackingsTable).
		Where(squirrel.Eq{"ct.link_id": linkID}).
		Where(squirrel.GtOrEq{"ct.created_at": startDate}).
		Where(squirrel.Lt{"ct.created_at": endDate}).
		OrderBy("ct.created_at ASC").
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

	clicks := make([]*domain.ClickTracking, 0)
	for rows.Next() {
		click, err := scanClickTracking(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear click tracking: %w", err)
		}
		clicks = append(clicks, click)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clicks, nil
}

func (r *clickTrackingRepository) DeleteOlderThan(days int) (int64, error) {
	query, args, err := squirrel.
		Delete("click_trackings").
		Where(squirrel.Expr("created_at < NOW() - (? || ' days')::interval", days)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover click trackings antigos: %w", err)
	}

	return result.RowsAffected()
}

func scanClickTracking(row rowScanner) (*domain.ClickTracking, error) {
	click := &domain.ClickTracking{}

	if err := row.Scan(
		&click.ID,
		&click.LinkID,
		&click.PartnerLinkID,
		&click.IP,
		&click.Registry,
		&click.CountryCode,
		&click.CountryName,
		&click.City,
		&click.AsnCode,
		&click.AsnName,
		&click.AsnRoute,
		&click.AsnStart,
		&click.AsnEnd,
		&click.AsnCount,
		&click.Spam,
		&click.Tor,
		&click.Count,
		&click.CreatedAt,
	); err != nil {
		return nil, err
	}

	return click, nil
}
