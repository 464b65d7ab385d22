package registration

import (
	"context"
	"fmt"
	"log"
	"sync"

	"churchfeed-app/internal/domain/admins"
	"churchfeed-app/internal/domain/churches"
	"churchfeed-app/internal/payment"
)

// Result is the outcome of a successful completion. Degraded marks the case
// where payment is confirmed but the pending registration was gone (app
// reinstalled, cache cleared, different device); the church identity is then
// unknown and the user is pointed at their email instead.
type Result struct {
	Church                 *churches.Church `json:"church,omitempty"`
	Admin                  *admins.Admin    `json:"admin,omitempty"`
	NeedsEmailVerification bool             `json:"needsEmailVerification"`
	Degraded               bool             `json:"degraded"`
	CustomerEmail          string           `json:"customerEmail,omitempty"`
	Message                string           `json:"message"`
}

// Coordinator is the single place where "payment succeeded" becomes
// "church and admin records exist".
type Coordinator struct {
	gateway payment.Gateway
	cache   Cache
	writer  Writer

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewCoordinator(gateway payment.Gateway, cache Cache, writer Writer) *Coordinator {
	return &Coordinator{
		gateway:  gateway,
		cache:    cache,
		writer:   writer,
		inFlight: map[string]struct{}{},
	}
}

func (co *Coordinator) begin(sessionID string) bool {
	co.mu.Lock()
	defer co.mu.Unlock()
	if _, busy := co.inFlight[sessionID]; busy {
		return false
	}
	co.inFlight[sessionID] = struct{}{}
	return true
}

func (co *Coordinator) end(sessionID string) {
	co.mu.Lock()
	defer co.mu.Unlock()
	delete(co.inFlight, sessionID)
}

// Complete drives the completion state machine for one checkout session.
// Verification strictly precedes the cache read, and the cache read strictly
// precedes the database writes. Steps 1-2 are idempotent reads and safe to
// retry with the same session id; the write step relies on the compensating
// delete to stay retryable.
func (co *Coordinator) Complete(ctx context.Context, sessionID string) (*Result, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	if !co.begin(sessionID) {
		return nil, ErrCompletionInFlight
	}
	defer co.end(sessionID)

	verification, err := co.gateway.VerifySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !verification.Paid {
		return nil, ErrPaymentNotCompleted
	}

	pending, err := co.cache.Load()
	if err != nil {
		return nil, err
	}
	if pending == nil {
		// Degraded success: the money has already moved, so report success
		// with unknown church identity rather than failing.
		return &Result{
			Degraded:               true,
			NeedsEmailVerification: true,
			CustomerEmail:          verification.CustomerEmail,
			Message:                "Payment confirmed. Check your email for your church details.",
		}, nil
	}

	if err := pending.RegistrationData.Validate(); err != nil {
		// Cache deliberately preserved for diagnosis.
		return nil, fmt.Errorf("%w: %v", ErrCorruptPendingData, err)
	}

	result, err := co.write(ctx, pending, sessionID)
	if err != nil {
		// Cache preserved: the same pending data can be retried without
		// repaying.
		return nil, err
	}

	if err := co.cache.Clear(); err != nil {
		// The registration itself succeeded; a stale slot is recoverable.
		log.Println("⚠️ Failed to clear pending registration:", err)
	}

	return result, nil
}

func (co *Coordinator) write(ctx context.Context, pending *Pending, sessionID string) (*Result, error) {
	in := pending.RegistrationData
	profile := AdminProfile{
		Name:  in.AdminName,
		Role:  in.AdminRole,
		Phone: in.AdminPhone,
		Email: in.AdminEmail,
	}

	church, err := co.writer.CreateChurch(ctx, in, sessionID)
	if err != nil {
		return nil, &WriteError{Step: "create_church", Err: err}
	}

	identity, err := co.writer.CreateAdminIdentity(ctx, in.AdminEmail, in.AdminPassword, profile)
	if err != nil {
		co.compensate(ctx, church)
		return nil, &WriteError{Step: "create_admin_identity", Err: err}
	}

	admin, err := co.writer.CreateAdminRecord(ctx, identity.UserID, church.ID, profile)
	if err != nil {
		co.compensate(ctx, church)
		return nil, &WriteError{Step: "create_admin_record", Err: err}
	}

	return &Result{
		Church:                 church,
		Admin:                  admin,
		NeedsEmailVerification: identity.NeedsEmailVerification,
		CustomerEmail:          in.AdminEmail,
		Message:                "Church registered successfully.",
	}, nil
}

// compensate removes the church so a retry never finds a half-created one.
func (co *Coordinator) compensate(ctx context.Context, church *churches.Church) {
	if err := co.writer.DeleteChurch(ctx, church.ID); err != nil {
		log.Println("⚠️ Compensating church delete failed:", err)
	}
}
