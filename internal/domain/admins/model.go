package admins

import (
	"time"

	"github.com/google/uuid"
)

// Account is the authenticatable identity behind an admin. Kept separate
// from the Admin profile so identity creation and the church-scoped record
// can fail (and be compensated) independently.
type Account struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email      string    `gorm:"not null;uniqueIndex:idx_accounts_email" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	IsVerified bool      `json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

const (
	RoleHeadPastor = "Head Pastor"
	RolePastor     = "Pastor"
	RoleSecretary  = "Secretary"
)

func ValidRole(r string) bool {
	switch r {
	case RoleHeadPastor, RolePastor, RoleSecretary:
		return true
	}
	return false
}

type Admin struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_admins_user_id" json:"user_id"`
	ChurchID uuid.UUID `gorm:"column:church_id;type:uuid;not null;index" json:"church_id"`
	Role     string    `gorm:"type:varchar(20);not null" json:"role"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"not null" json:"email"`
	Phone    string    `json:"phone"`

	InvitedBy *uuid.UUID `gorm:"column:invited_by;type:uuid" json:"invited_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
