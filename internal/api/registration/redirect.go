package registrationapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

/*
	Redirect trampolines
	--------------------
	Stripe's hosted checkout can only redirect to http(s) URLs, so these
	pages bounce the browser into the app's deep link scheme. The session_id
	they forward is a hint for CompleteRegistration, not proof of payment.
*/

const redirectPage = `<!DOCTYPE html>
<html>
<head>
  <title>%s</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
           display: flex; justify-content: center; align-items: center;
           height: 100vh; margin: 0; background: #f8fafc; }
    .container { text-align: center; padding: 40px; background: white;
                 border-radius: 12px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
    .mark { font-size: 48px; }
    h1 { color: #1e293b; margin: 20px 0; }
    p { color: #64748b; margin-bottom: 30px; }
    .btn { background: #ff6b35; color: white; padding: 12px 24px;
           border-radius: 6px; font-size: 16px; text-decoration: none;
           display: inline-block; }
  </style>
</head>
<body>
  <div class="container">
    <div class="mark">%s</div>
    <h1>%s</h1>
    <p>%s</p>
    <a href="%s" class="btn">Return to ChurchFeed</a>
  </div>
  <script>
    setTimeout(function () { window.location.href = %q; }, 3000);
  </script>
</body>
</html>`

func (h *Handler) RedirectSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	appURL := c.Query("app_url")
	finalURL := fmt.Sprintf("%s?session_id=%s", appURL, sessionID)

	page := fmt.Sprintf(redirectPage,
		"Payment Successful", "✅", "Payment Successful!",
		"Your subscription has been activated.", finalURL, finalURL)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (h *Handler) RedirectCancel(c *gin.Context) {
	appURL := c.Query("app_url")

	page := fmt.Sprintf(redirectPage,
		"Payment Cancelled", "❌", "Payment Cancelled",
		"No charge was made to your account.", appURL, appURL)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
