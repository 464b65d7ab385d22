package routes

import (
	"log"

	"churchfeed-app/config"
	"churchfeed-app/database"
	authapi "churchfeed-app/internal/api/auth"
	churchesapi "churchfeed-app/internal/api/churches"
	membersapi "churchfeed-app/internal/api/members"
	postsapi "churchfeed-app/internal/api/posts"
	registrationapi "churchfeed-app/internal/api/registration"
	stripewebhooks "churchfeed-app/internal/api/stripewebhook"
	"churchfeed-app/internal/app/http/middleware"
	"churchfeed-app/internal/domain/plans"
	"churchfeed-app/internal/notify"
	"churchfeed-app/internal/payment"
	"churchfeed-app/internal/reactions"
	"churchfeed-app/internal/registration"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(middleware.RequestID())

	// Pending-registration slot: Redis when configured, file otherwise.
	var cache registration.Cache
	if config.REDIS_ADDR != "" {
		if rc := registration.NewRedisCacheFromAddr(config.REDIS_ADDR); rc != nil {
			cache = rc
		} else {
			log.Println("⚠️ Redis unreachable, falling back to file cache")
		}
	}
	if cache == nil {
		cache = registration.NewFileCache(config.PENDING_CACHE_FILE)
	}

	gateway := payment.NewStripeGateway(config.STRIPE_SECRET_KEY, map[plans.Tier]string{
		plans.Tier1: config.STRIPE_PRICE_TIER1,
		plans.Tier2: config.STRIPE_PRICE_TIER2,
		plans.Tier3: config.STRIPE_PRICE_TIER3,
		plans.Tier4: config.STRIPE_PRICE_TIER4,
	})
	writer := registration.NewGormWriter(database.DB, authapi.SendVerificationEmail)
	coordinator := registration.NewCoordinator(gateway, cache, writer)
	regHandler := registrationapi.NewHandler(cache, gateway, coordinator, config.TRIAL_DAYS)

	reactionsCoord := reactions.NewCoordinator(reactions.NewGormStore(database.DB))
	postsHandler := postsapi.NewHandler(reactionsCoord, notify.NewExpo())

	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Redirect trampolines must stay outside the sanitizer (HTML out).
	r.GET("/redirect-success", regHandler.RedirectSuccess)
	r.GET("/redirect-cancel", regHandler.RedirectCancel)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/api/create-checkout-session", regHandler.CreateCheckoutSession)
	public.GET("/api/complete-registration", regHandler.CompleteRegistration)

	public.POST("/login", authapi.Login)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)

	public.GET("/churches/code/:code", churchesapi.GetChurchByCode)
	public.POST("/members/join", membersapi.Join)
	public.PUT("/members/:id/device-token", membersapi.UpdateDeviceToken)

	public.GET("/feed/:churchID", postsHandler.GetFeed)
	public.GET("/posts/:id/reactions", postsHandler.GetReactions)
	public.POST("/posts/:id/reactions", postsHandler.ToggleReaction)

	// Authenticated admins
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	auth.GET("/branches", churchesapi.GetBranches)

	// Posting requires an active (or trialing) subscription
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription())
	subscribed.POST("/posts", postsHandler.CreatePost)
}
