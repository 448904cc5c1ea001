package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin   = 1
	RolePartner = 2
	RoleAdviser = 3
)

type User struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Lastname    string    `json:"lastname"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Active      bool      `json:"active"`
	RoleID      int       `json:"role_id"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Parceiros que este usuário pode lançar; vazio para admins.
	PartnerIDs []int64 `json:"partner_ids"`
}

func (u *User) OwnsPartner(partnerID int64) bool {
	if u.IsSuperuser {
		return true
	}
	for _, id := range u.PartnerIDs {
		if id == partnerID {
			return true
		}
	}
	return false
}

type Claims struct {
	UserID      int64   `json:"user_id"`
	UserName    string  `json:"user_name"`
	UserEmail   string  `json:"user_email"`
	UserActive  bool    `json:"user_active"`
	UserRoleID  int     `json:"user_role_id"`
	IsSuperuser bool    `json:"is_superuser"`
	PartnerIDs  []int64 `json:"partner_ids"`
	jwt.RegisteredClaims
}
