package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/betenlace/partners-cpa-api/infrastructure/database/postgres"
	"github.com/betenlace/partners-cpa-api/internal/domain"
)

const fxSnapshotsTable = "fx_snapshots fs"

type FxSnapshotRepository interface {
	// FirstOnOrAfter devolve o snapshot mais antigo criado em ou depois do
	// instante informado.
	FirstOnOrAfter(threshold time.Time) (*domain.FxSnapshot, error)
	// LatestBefore devolve o snapshot mais recente criado antes do instante.
	LatestBefore(threshold time.Time) (*domain.FxSnapshot, error)
	Create(snapshot *domain.FxSnapshot) error
}

type fxSnapshotRepository struct {
	conn *postgres.Connection
}

func NewFxSnapshotRepository(conn *postgres.Connection) FxSnapshotRepository {
	return &fxSnapshotRepository{
		conn: conn,
	}
}

func (r *fxSnapshotRepository) FirstOnOrAfter(threshold time.Time) (*domain.FxSnapshot, error) {
	return r.getSnapshot(squirrel.GtOrEq{"fs.created_at": threshold}, "fs.created_at ASC")
}

func (r *fxSnapshotRepository) LatestBefore(threshold time.Time) (*domain.FxSnapshot, error) {
	return r.getSnapshot(squirrel.Lt{"fs.created_at": threshold}, "fs.created_at DESC")
}

func (r *fxSnapshotRepository) getSnapshot(whereClause interface{}, orderBy string) (*domain.FxSnapshot, error) {
	query, args, err := squirrel.
		Select("fs.id, fs.rates, fs.fx_percentage, fs.created_at").
		From(fxSnapshotsTable).
		Where(whereClause).
		OrderBy(orderBy).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.FxSnapshot{}
	var ratesJSON []byte

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(
		&snapshot.ID,
		&ratesJSON,
		&snapshot.FxPercentage,
		&snapshot.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot de câmbio: %w", err)
	}

	if err := json.Unmarshal(ratesJSON, &snapshot.Rates); err != nil {
		return nil, fmt.Errorf("erro ao deserializar cotações do snapshot %d: %w", snapshot.ID, err)
	}

	return snapshot, nil
}

func (r *fxSnapshotRepository) Create(snapshot *domain.FxSnapshot) error {
	ratesJSON, err := json.Marshal(snapshot.Rates)
	if err != nil {
		return fmt.Errorf("erro ao serializar cotações para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("fx_snapshots").
		Columns("rates", "fx_percentage").
		Values(ratesJSON, snapshot.FxPercentage).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&snapshot.ID, &snapshot.CreatedAt); err != nil {
		return fmt.Errorf("erro ao criar snapshot de câmbio: %w", err)
	}

	return nil
}
