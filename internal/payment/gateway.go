// Package payment isolates all interaction with the payment processor.
// Everything else in the system treats a direct VerifySession call as the
// only source of truth for "did payment succeed"; webhooks and redirect
// parameters are hints at best.
package payment

import (
	"context"
	"fmt"

	"churchfeed-app/internal/domain/plans"
)

type Customer struct {
	Email string
	Name  string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// Verification is the gateway's answer for a session. Paid is false for any
// non-paid status; that is a normal outcome, not an error.
type Verification struct {
	Paid          bool
	CustomerEmail string
	Metadata      map[string]string
}

type Gateway interface {
	// CreateCheckoutSession starts a hosted checkout for the tier's price.
	// A GatewayError here means checkout could not even start, never that
	// payment was declined.
	CreateCheckoutSession(ctx context.Context, tier plans.Tier, cust Customer, trialDays int, successURL, cancelURL string) (*CheckoutSession, error)

	// VerifySession is an idempotent read of the session's payment status.
	VerifySession(ctx context.Context, sessionID string) (*Verification, error)
}

// GatewayError wraps transport, auth and configuration failures talking to
// the processor. Retryable from the caller's point of view.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }
