package stripe

import "strings"

// NormalizeStatus maps raw Stripe subscription statuses onto the small set
// stored on billing.Subscription.
func NormalizeStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "":
		return "none"
	case "active":
		return "active"
	case "trialing":
		return "trialing"
	case "past_due", "unpaid":
		return "past_due"
	case "canceled", "incomplete_expired":
		return "canceled"
	default:
		return strings.TrimSpace(s)
	}
}

// Active reports whether a normalized status grants access to the product.
func Active(status string) bool {
	return status == "active" || status == "trialing"
}
