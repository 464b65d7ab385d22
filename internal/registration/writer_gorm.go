package registration

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"churchfeed-app/internal/domain/admins"
	"churchfeed-app/internal/domain/churches"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// codeAttempts bounds codegen retries before giving up with
// ErrCodeGenerationExhausted.
const codeAttempts = 5

const verificationTokenTTL = 48 * time.Hour

// GormWriter persists churches and admins. sendVerification is injected so
// the SMTP dependency stays out of tests; a nil hook skips email entirely.
type GormWriter struct {
	db               *gorm.DB
	sendVerification func(email, token string) error
}

func NewGormWriter(db *gorm.DB, sendVerification func(email, token string) error) *GormWriter {
	return &GormWriter{db: db, sendVerification: sendVerification}
}

func (w *GormWriter) CreateChurch(ctx context.Context, in Input, sessionID string) (*churches.Church, error) {
	var parentID *uuid.UUID
	if !in.IsHq {
		var hq churches.Church
		if err := w.db.WithContext(ctx).
			Where("church_code = ?", strings.ToUpper(in.HqChurchCode)).
			First(&hq).Error; err != nil {
			return nil, fmt.Errorf("parent hq church %q not found: %w", in.HqChurchCode, err)
		}
		parentID = &hq.ID
	}

	for attempt := 0; attempt < codeAttempts; attempt++ {
		church := churches.Church{
			Name:             in.ChurchName,
			Address:          in.ChurchAddress,
			IsHq:             in.IsHq,
			ParentHqID:       parentID,
			ChurchCode:       churches.GenerateCode(),
			SubscriptionTier: in.MemberCount,
			StripeSessionID:  &sessionID,
		}
		err := w.db.WithContext(ctx).Create(&church).Error
		if err == nil {
			return &church, nil
		}
		if isCodeCollision(err) {
			continue
		}
		return nil, err
	}
	return nil, ErrCodeGenerationExhausted
}

// isCodeCollision detects a unique violation on the join code index, as
// opposed to the stripe_session_id index or any other constraint.
func isCodeCollision(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") && strings.Contains(msg, "idx_churches_church_code")
}

func (w *GormWriter) CreateAdminIdentity(ctx context.Context, email, password string, profile AdminProfile) (*Identity, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := admins.Account{
		Email:      email,
		Password:   string(hashed),
		IsVerified: false,
	}
	if err := w.db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token := generateVerificationToken()
	verif := admins.VerificationToken{
		UserID:    account.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(verificationTokenTTL),
	}
	if err := w.db.WithContext(ctx).Create(&verif).Error; err != nil {
		return nil, fmt.Errorf("failed to create verification token: %w", err)
	}

	if w.sendVerification != nil {
		if err := w.sendVerification(email, token); err != nil {
			// Identity is usable; the user can request a resend.
			log.Println("⚠️ Verification email failed for", email, ":", err)
		}
	}

	return &Identity{UserID: account.ID, NeedsEmailVerification: !account.IsVerified}, nil
}

func (w *GormWriter) CreateAdminRecord(ctx context.Context, userID, churchID uuid.UUID, profile AdminProfile) (*admins.Admin, error) {
	admin := admins.Admin{
		UserID:   userID,
		ChurchID: churchID,
		Role:     profile.Role,
		Name:     profile.Name,
		Email:    profile.Email,
		Phone:    profile.Phone,
	}
	if err := w.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin record: %w", err)
	}
	return &admin, nil
}

func (w *GormWriter) DeleteChurch(ctx context.Context, churchID uuid.UUID) error {
	return w.db.WithContext(ctx).Delete(&churches.Church{}, "id = ?", churchID).Error
}

func generateVerificationToken() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
