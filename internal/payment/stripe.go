package payment

import (
	"context"
	"fmt"

	"churchfeed-app/internal/domain/plans"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	customer "github.com/stripe/stripe-go/v75/customer"
)

// StripeGateway implements Gateway on Stripe Checkout subscriptions.
type StripeGateway struct {
	prices map[plans.Tier]string
}

func NewStripeGateway(secretKey string, prices map[plans.Tier]string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{prices: prices}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, tier plans.Tier, cust Customer, trialDays int, successURL, cancelURL string) (*CheckoutSession, error) {
	priceID, ok := g.prices[tier]
	if !ok || priceID == "" {
		return nil, &GatewayError{Op: "create_checkout_session", Err: fmt.Errorf("no price configured for tier %q", tier)}
	}

	cus, err := customer.New(&stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(cust.Email),
		Name:   stripe.String(cust.Name),
		Metadata: map[string]string{
			"source": "ChurchFeed",
		},
	})
	if err != nil {
		return nil, &GatewayError{Op: "create_customer", Err: err}
	}

	params := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Customer:   stripe.String(cus.ID),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),

		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},

		BillingAddressCollection: stripe.String("required"),
		AllowPromotionCodes:      stripe.Bool(true),

		Metadata: map[string]string{
			"tier":   string(tier),
			"source": "ChurchFeed",
		},
	}
	if trialDays > 0 {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(int64(trialDays)),
		}
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		return nil, &GatewayError{Op: "create_checkout_session", Err: err}
	}

	return &CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) VerifySession(ctx context.Context, sessionID string) (*Verification, error) {
	s, err := checkoutsession.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, &GatewayError{Op: "verify_session", Err: err}
	}

	v := &Verification{
		Paid:     s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Metadata: s.Metadata,
	}
	if s.CustomerDetails != nil {
		v.CustomerEmail = s.CustomerDetails.Email
	}
	return v, nil
}
