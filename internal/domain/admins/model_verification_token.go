package admins

import (
	"time"

	"github.com/google/uuid"
)

type VerificationToken struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;uniqueIndex"`
	Account   Account   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Token     string    `gorm:"uniqueIndex"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
