package registrationapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"churchfeed-app/config"
	"churchfeed-app/internal/payment"
	"churchfeed-app/internal/registration"

	"github.com/gin-gonic/gin"
)

// completer is what the handler needs from the coordinator; narrowed to an
// interface so handler tests can stub it.
type completer interface {
	Complete(ctx context.Context, sessionID string) (*registration.Result, error)
}

type Handler struct {
	cache     registration.Cache
	gateway   payment.Gateway
	completer completer
	trialDays int
}

func NewHandler(cache registration.Cache, gateway payment.Gateway, co completer, trialDays int) *Handler {
	return &Handler{cache: cache, gateway: gateway, completer: co, trialDays: trialDays}
}

// CreateCheckoutSession validates the registration form, parks it in the
// pending cache and starts a hosted checkout. The cache write happens before
// the gateway call so a successful redirect always has a slot to consume.
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	var input registration.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pending := registration.Pending{
		RegistrationData: input,
		SelectedTier:     input.MemberCount,
		CreatedAt:        time.Now().UnixMilli(),
	}
	if err := h.cache.Save(pending); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store pending registration"})
		return
	}

	trialDays := 0
	if input.WantsTrial {
		trialDays = h.trialDays
	}

	// Stripe substitutes {CHECKOUT_SESSION_ID}; the deep link carries it
	// back into the app as a hint only, never as proof of payment.
	appSuccess := config.APP_SCHEME + "://payment-success"
	appCancel := config.APP_SCHEME + "://payment-cancel"
	successURL := fmt.Sprintf("%s/redirect-success?session_id={CHECKOUT_SESSION_ID}&app_url=%s", config.APP_URL, appSuccess)
	cancelURL := fmt.Sprintf("%s/redirect-cancel?app_url=%s", config.APP_URL, appCancel)

	session, err := h.gateway.CreateCheckoutSession(c.Request.Context(), input.MemberCount, payment.Customer{
		Email: input.AdminEmail,
		Name:  input.AdminName,
	}, trialDays, successURL, cancelURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create checkout session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":       session.URL,
		"sessionId": session.ID,
	})
}

// CompleteRegistration is the deep-link entry point after checkout. Each
// failure maps to exactly one user-visible category.
func (h *Handler) CompleteRegistration(c *gin.Context) {
	sessionID := c.Query("session_id")

	result, err := h.completer.Complete(c.Request.Context(), sessionID)
	if err != nil {
		var gwErr *payment.GatewayError
		var writeErr *registration.WriteError
		switch {
		case errors.Is(err, registration.ErrMissingSession):
			// Routine cold-launch path; the client routes to a neutral
			// screen rather than surfacing an error.
			c.JSON(http.StatusBadRequest, gin.H{"code": "missing_session", "error": "No checkout session to complete"})
		case errors.Is(err, registration.ErrCompletionInFlight):
			c.JSON(http.StatusConflict, gin.H{"code": "in_flight", "error": "Completion already in progress"})
		case errors.Is(err, registration.ErrPaymentNotCompleted):
			c.JSON(http.StatusPaymentRequired, gin.H{"code": "payment_not_completed", "error": "Payment was not completed", "retry": "restart_checkout"})
		case errors.Is(err, registration.ErrCorruptPendingData):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"code": "corrupt_pending_data", "error": "Stored registration data is invalid, contact support"})
		case errors.As(err, &gwErr):
			c.JSON(http.StatusBadGateway, gin.H{"code": "gateway_error", "error": "Could not verify payment, try again", "retry": "same_session"})
		case errors.As(err, &writeErr):
			c.JSON(http.StatusInternalServerError, gin.H{"code": "registration_write_failed", "error": "Failed to create church records, try again", "retry": "same_session"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
