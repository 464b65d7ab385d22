package stripewebhooks

import (
	"time"

	"churchfeed-app/database"
	"churchfeed-app/internal/domain/billing"
	stripeinfra "churchfeed-app/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
)

func handleSubscriptionUpdated(sub *stripe.Subscription) error {
	updates := map[string]interface{}{
		"status": stripeinfra.NormalizeStatus(string(sub.Status)),
	}
	if sub.CurrentPeriodEnd > 0 {
		updates["current_period_end"] = time.Unix(sub.CurrentPeriodEnd, 0)
	}

	// No matching row means the church-side write has not happened yet;
	// nothing to update, and the client path does not depend on us.
	return database.DB.Model(&billing.Subscription{}).
		Where("stripe_subscription_id = ?", sub.ID).
		Updates(updates).Error
}
