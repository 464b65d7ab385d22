package stripewebhooks

import (
	"errors"
	"fmt"
	"time"

	"churchfeed-app/database"
	"churchfeed-app/internal/domain/billing"
	"churchfeed-app/internal/domain/churches"
	stripeinfra "churchfeed-app/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// handleCheckoutSessionCompleted records the subscription for the church
// created from this session. Acceleration only: if the client-side
// completion has not written the church yet, there is nothing to attach the
// subscription to and the event is left for a later redelivery.
func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	if session.Subscription == nil || session.Subscription.ID == "" {
		return errors.New("checkout session missing subscription")
	}

	var church churches.Church
	err := database.DB.Where("stripe_session_id = ?", session.ID).First(&church).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Client has not completed registration yet; retryable.
			return fmt.Errorf("no church yet for session %s", session.ID)
		}
		return err
	}

	customerID := ""
	if session.Customer != nil {
		customerID = session.Customer.ID
	}

	status := stripeinfra.NormalizeStatus(string(session.Subscription.Status))
	if status == "none" {
		// Expanded status may be absent on the event payload; a completed
		// checkout means the subscription started.
		status = "active"
	}

	var periodEnd *time.Time
	if session.Subscription.CurrentPeriodEnd > 0 {
		t := time.Unix(session.Subscription.CurrentPeriodEnd, 0)
		periodEnd = &t
	}

	sub := billing.Subscription{
		ChurchID:             church.ID,
		StripeCustomerID:     customerID,
		StripeSubscriptionID: session.Subscription.ID,
		Status:               status,
		CurrentPeriodEnd:     periodEnd,
	}

	// One subscription row per church; a replay updates in place.
	return database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "church_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stripe_customer_id", "stripe_subscription_id", "status", "current_period_end", "updated_at"}),
	}).Create(&sub).Error
}
