package registration

import (
	"context"

	"churchfeed-app/internal/domain/admins"
	"churchfeed-app/internal/domain/churches"

	"github.com/google/uuid"
)

type AdminProfile struct {
	Name  string
	Role  string
	Phone string
	Email string
}

// Identity is the result of creating an authenticatable admin account.
type Identity struct {
	UserID                 uuid.UUID
	NeedsEmailVerification bool
}

// Writer is the persistence boundary for completion. The coordinator drives
// it in a fixed order: church, identity, admin record, with DeleteChurch as
// the compensating action when a later step fails.
type Writer interface {
	// CreateChurch persists the church with a fresh unique join code, keyed
	// by the checkout session so a session can never produce two churches.
	CreateChurch(ctx context.Context, in Input, sessionID string) (*churches.Church, error)

	// CreateAdminIdentity creates the authenticatable account. A failed
	// verification email is a warning (the identity is still usable); a
	// failed account insert is a hard error.
	CreateAdminIdentity(ctx context.Context, email, password string, profile AdminProfile) (*Identity, error)

	CreateAdminRecord(ctx context.Context, userID, churchID uuid.UUID, profile AdminProfile) (*admins.Admin, error)

	// DeleteChurch is the compensating delete; used only on partial failure.
	DeleteChurch(ctx context.Context, churchID uuid.UUID) error
}
