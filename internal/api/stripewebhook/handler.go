package stripewebhooks

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"churchfeed-app/config"
	"churchfeed-app/database"
	"churchfeed-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
)

// StripeWebhook receives gateway events. Acknowledge-and-log is the only
// required behavior; registration never depends on delivery. Events are
// stored for idempotency so redeliveries are acknowledged without
// reprocessing.
func StripeWebhook(c *gin.Context) {
	endpointSecret := config.STRIPE_WEBHOOK_SECRET
	if endpointSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	payload, err := readStripeBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		fmt.Println("❌ Stripe signature verification failed:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	record := billing.WebhookEvent{
		StripeEventID: event.ID,
		EventType:     string(event.Type),
		Payload:       string(payload),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			// Already seen; acknowledge so Stripe stops retrying.
			c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record event"})
		return
	}

	var handleErr error
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}
		handleErr = handleCheckoutSessionCompleted(&session)

	case "customer.subscription.updated":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse subscription"})
			return
		}
		handleErr = handleSubscriptionUpdated(&sub)

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse subscription"})
			return
		}
		handleErr = handleSubscriptionDeleted(&sub)

	default:
		// Acknowledge unknown events to avoid retries
		markProcessed(record.ID, "")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if handleErr != nil {
		markProcessed(record.ID, handleErr.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": handleErr.Error()})
		return
	}

	markProcessed(record.ID, "")
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

func markProcessed(eventID uint, processingError string) {
	now := time.Now()
	_ = database.DB.Model(&billing.WebhookEvent{}).
		Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"processed_at":     &now,
			"processing_error": processingError,
		}).Error
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
