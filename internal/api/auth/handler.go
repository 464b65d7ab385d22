package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"churchfeed-app/config"
	"churchfeed-app/database"
	"churchfeed-app/internal/domain/admins"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates an admin and issues a JWT carrying their church.
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var account admins.Account
	if err := database.DB.Where("email = ?", input.Email).First(&account).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !account.IsVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Please verify your email before logging in"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	var admin admins.Admin
	if err := database.DB.Where("user_id = ?", account.ID).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No admin profile for this account"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   account.ID.String(),
		"email":     account.Email,
		"role":      "admin",
		"church_id": admin.ChurchID.String(),
		"exp":       time.Now().Add(time.Hour * 24).Unix(),
	})

	tokenString, err := token.SignedString([]byte(config.JWT_SECRET))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"admin": admin,
	})
}

// VerifyEmail consumes a verification token and marks the account verified.
func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var verif admins.VerificationToken
	if err := database.DB.Where("token = ?", token).First(&verif).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}
	if time.Now().After(verif.ExpiresAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&admins.Account{}).
		Where("id = ?", verif.UserID).
		Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify account"})
		return
	}

	_ = database.DB.Delete(&admins.VerificationToken{}, "token = ?", token)

	c.Redirect(http.StatusTemporaryRedirect, config.APP_SCHEME+"://signin?verified=1")
}

// ResendVerification issues a fresh token for an unverified account. Always
// answers 200 so it cannot be used to probe for registered emails.
func ResendVerification(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var account admins.Account
	if err := database.DB.Where("email = ?", input.Email).First(&account).Error; err == nil && !account.IsVerified {
		token := generateToken()
		_ = database.DB.Delete(&admins.VerificationToken{}, "user_id = ?", account.ID)
		verif := admins.VerificationToken{
			UserID:    account.ID,
			Token:     token,
			ExpiresAt: time.Now().Add(48 * time.Hour),
		}
		if err := database.DB.Create(&verif).Error; err == nil {
			_ = SendVerificationEmail(account.Email, token)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a verification email has been sent."})
}

func generateToken() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
