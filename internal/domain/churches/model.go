package churches

import (
	"time"

	"churchfeed-app/internal/domain/plans"

	"github.com/google/uuid"
)

type Church struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string     `gorm:"not null" json:"name"`
	Address    string     `json:"address"`
	IsHq       bool       `gorm:"column:is_hq;not null;default:false" json:"is_hq"`
	ParentHq   *Church    `gorm:"foreignKey:ParentHqID" json:"-"`
	ParentHqID *uuid.UUID `gorm:"column:parent_hq_id;type:uuid;index" json:"parent_hq_id,omitempty"`

	// ChurchCode is the member-facing join credential, distinct from ID.
	ChurchCode string `gorm:"column:church_code;type:varchar(6);not null;uniqueIndex:idx_churches_church_code" json:"church_code"`

	SubscriptionTier plans.Tier `gorm:"column:subscription_tier;type:varchar(10);not null" json:"subscription_tier"`

	// StripeSessionID ties the church to the checkout session that paid for
	// it. The unique index guarantees at most one church per paid session.
	StripeSessionID *string `gorm:"column:stripe_session_id;uniqueIndex:idx_churches_stripe_session_id" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
