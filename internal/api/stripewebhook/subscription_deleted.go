package stripewebhooks

import (
	"churchfeed-app/database"
	"churchfeed-app/internal/domain/billing"

	"github.com/stripe/stripe-go/v75"
)

func handleSubscriptionDeleted(sub *stripe.Subscription) error {
	return database.DB.Model(&billing.Subscription{}).
		Where("stripe_subscription_id = ?", sub.ID).
		Update("status", "canceled").Error
}
