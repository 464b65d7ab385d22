package middleware

import (
	"net/http"

	"churchfeed-app/database"
	"churchfeed-app/internal/domain/billing"
	stripeinfra "churchfeed-app/internal/infra/stripe"

	"github.com/gin-gonic/gin"
)

// RequireActiveSubscription gates admin actions (posting announcements) on
// the church's subscription being active or trialing.
func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		churchID := c.GetString("church_id")
		if churchID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "No church associated with this account",
			})
			return
		}

		var sub billing.Subscription
		if err := database.DB.Where("church_id = ?", churchID).First(&sub).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Subscription not found",
			})
			return
		}

		if !stripeinfra.Active(sub.Status) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Your subscription is not active",
			})
			return
		}

		c.Next()
	}
}
