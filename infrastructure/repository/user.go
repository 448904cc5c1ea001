package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/betenlace/partners-cpa-api/infrastructure/database/postgres"
	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/lib/pq"
)

const usersTable = "users u"

type UserRepository interface {
	GetByEmail(email string) (*domain.User, error)
	GetByID(userID int64) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"u.email": email})
}

func (r *userRepository) GetByID(userID int64) (*domain.User, error) {
	return r.getUser(squirrel.Eq{"u.id": userID})
}

func (r *userRepository) getUser(whereClause interface{}) (*domain.User, error) {
	query, args, err := squirrel.
		Select("u.id, u.name, u.lastname, u.email, u.password, u.active, u.role_id, u.is_superuser, "+
			"COALESCE(array_agg(p.id) FILTER (WHERE p.id IS NOT NULL), '{}'), "+
			"u.created_at, u.updated_at").
		From(usersTable).
		LeftJoin("partners p ON p.user_id = u.id").
		Where(whereClause).
		GroupBy("u.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user := &domain.User{}
	var partnerIDs pq.Int64Array

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.Password,
		&user.Active,
		&user.RoleID,
		&user.IsSuperuser,
		&partnerIDs,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	user.PartnerIDs = partnerIDs

	return user, nil
}
