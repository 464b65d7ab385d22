package billing

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	ChurchID uuid.UUID `gorm:"column:church_id;type:uuid;not null;uniqueIndex:idx_subscriptions_church_id" json:"church_id"`

	StripeCustomerID     string `gorm:"column:stripe_customer_id;not null" json:"-"`
	StripeSubscriptionID string `gorm:"column:stripe_subscription_id;not null;uniqueIndex:idx_subscriptions_stripe_subscription_id" json:"-"`

	// Status is the normalized Stripe subscription status; see
	// internal/infra/stripe.NormalizeStatus.
	Status string `gorm:"type:varchar(20);not null" json:"status"`

	CurrentPeriodEnd *time.Time `gorm:"column:current_period_end" json:"current_period_end,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
