package members

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Phone    string    `json:"phone"`
	Email    string    `gorm:"not null;index" json:"email"`
	ChurchID uuid.UUID `gorm:"column:church_id;type:uuid;not null;index" json:"church_id"`

	// DeviceToken is the Expo push token; absent until the device registers.
	DeviceToken *string `gorm:"column:device_token" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
