package billing

import "time"

// WebhookEvent stores received Stripe events with deduplication metadata so
// redelivered events are acknowledged without being processed twice.
type WebhookEvent struct {
	ID              uint       `gorm:"primaryKey"`
	StripeEventID   string     `gorm:"column:stripe_event_id;not null;uniqueIndex:ux_webhook_events_stripe_event_id"`
	EventType       string     `gorm:"type:varchar(100);not null;index"`
	Payload         string     `gorm:"type:text;not null"`
	ProcessedAt     *time.Time `gorm:"column:processed_at"`
	ProcessingError string     `gorm:"type:text"`
	CreatedAt       time.Time
}
