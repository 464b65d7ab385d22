package registration

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"churchfeed-app/internal/domain/admins"
	"churchfeed-app/internal/domain/churches"
	"churchfeed-app/internal/domain/plans"
	"churchfeed-app/internal/payment"

	"github.com/google/uuid"
)

// ----- fakes -----

type fakeGateway struct {
	verify    func(sessionID string) (*payment.Verification, error)
	calls     int
	enteredCh chan struct{} // receives once per VerifySession entry, when set
	blockCh   chan struct{} // when set, VerifySession waits until closed
}

func (g *fakeGateway) CreateCheckoutSession(ctx context.Context, tier plans.Tier, cust payment.Customer, trialDays int, successURL, cancelURL string) (*payment.CheckoutSession, error) {
	return &payment.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.example/cs_test_1"}, nil
}

func (g *fakeGateway) VerifySession(ctx context.Context, sessionID string) (*payment.Verification, error) {
	g.calls++
	if g.enteredCh != nil {
		g.enteredCh <- struct{}{}
	}
	if g.blockCh != nil {
		<-g.blockCh
	}
	return g.verify(sessionID)
}

type memCache struct {
	p       *Pending
	loadErr error
	cleared int
}

func (m *memCache) Save(p Pending) error { m.p = &p; return nil }
func (m *memCache) Load() (*Pending, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.p == nil {
		return nil, nil
	}
	cp := *m.p
	return &cp, nil
}
func (m *memCache) Clear() error { m.p = nil; m.cleared++; return nil }

type fakeWriter struct {
	failChurch   error
	failIdentity error
	failRecord   error

	churchCalls int
	deleted     []uuid.UUID
}

func (w *fakeWriter) CreateChurch(ctx context.Context, in Input, sessionID string) (*churches.Church, error) {
	w.churchCalls++
	if w.failChurch != nil {
		return nil, w.failChurch
	}
	sid := sessionID
	return &churches.Church{
		ID:               uuid.New(),
		Name:             in.ChurchName,
		IsHq:             in.IsHq,
		ChurchCode:       churches.GenerateCode(),
		SubscriptionTier: in.MemberCount,
		StripeSessionID:  &sid,
	}, nil
}

func (w *fakeWriter) CreateAdminIdentity(ctx context.Context, email, password string, profile AdminProfile) (*Identity, error) {
	if w.failIdentity != nil {
		return nil, w.failIdentity
	}
	return &Identity{UserID: uuid.New(), NeedsEmailVerification: true}, nil
}

func (w *fakeWriter) CreateAdminRecord(ctx context.Context, userID, churchID uuid.UUID, profile AdminProfile) (*admins.Admin, error) {
	if w.failRecord != nil {
		return nil, w.failRecord
	}
	return &admins.Admin{
		ID:       uuid.New(),
		UserID:   userID,
		ChurchID: churchID,
		Role:     profile.Role,
		Name:     profile.Name,
		Email:    profile.Email,
	}, nil
}

func (w *fakeWriter) DeleteChurch(ctx context.Context, churchID uuid.UUID) error {
	w.deleted = append(w.deleted, churchID)
	return nil
}

func paidGateway() *fakeGateway {
	return &fakeGateway{verify: func(string) (*payment.Verification, error) {
		return &payment.Verification{Paid: true, CustomerEmail: "jamie@example.com"}, nil
	}}
}

// ----- tests -----

func TestComplete_MissingSession(t *testing.T) {
	gw := paidGateway()
	cache := &memCache{}
	p := testPending()
	cache.p = &p
	writer := &fakeWriter{}
	co := NewCoordinator(gw, cache, writer)

	_, err := co.Complete(context.Background(), "")
	if !errors.Is(err, ErrMissingSession) {
		t.Fatalf("expected ErrMissingSession, got %v", err)
	}
	if gw.calls != 0 {
		t.Errorf("gateway must not be called, got %d calls", gw.calls)
	}
	if writer.churchCalls != 0 {
		t.Errorf("writer must not be called, got %d calls", writer.churchCalls)
	}
}

func TestComplete_PaymentNotCompleted(t *testing.T) {
	gw := &fakeGateway{verify: func(string) (*payment.Verification, error) {
		return &payment.Verification{Paid: false}, nil
	}}
	cache := &memCache{}
	p := testPending()
	cache.p = &p
	co := NewCoordinator(gw, cache, &fakeWriter{})

	_, err := co.Complete(context.Background(), "cs_test_1")
	if !errors.Is(err, ErrPaymentNotCompleted) {
		t.Fatalf("expected ErrPaymentNotCompleted, got %v", err)
	}

	got, _ := cache.Load()
	if got == nil || got.RegistrationData.ChurchName != p.RegistrationData.ChurchName {
		t.Error("cache must be left untouched on unpaid sessions")
	}
}

func TestComplete_Success(t *testing.T) {
	gw := paidGateway()
	cache := &memCache{}
	p := testPending()
	cache.p = &p
	co := NewCoordinator(gw, cache, &fakeWriter{})

	result, err := co.Complete(context.Background(), "cs_test_1")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if result.Church == nil {
		t.Fatal("expected a church in the result")
	}
	if !churches.ValidCode(result.Church.ChurchCode) {
		t.Errorf("church code %q is not 6 uppercase alphanumeric characters", result.Church.ChurchCode)
	}
	if !result.NeedsEmailVerification {
		t.Error("expected needsEmailVerification to be true for a fresh identity")
	}
	if result.Degraded {
		t.Error("success with cache present must not be degraded")
	}

	got, _ := cache.Load()
	if got != nil {
		t.Error("cache must be cleared after a successful completion")
	}
}

func TestComplete_DegradedSuccessWhenCacheEmpty(t *testing.T) {
	gw := paidGateway()
	writer := &fakeWriter{}
	co := NewCoordinator(gw, &memCache{}, writer)

	result, err := co.Complete(context.Background(), "cs_test_1")
	if err != nil {
		t.Fatalf("expected degraded success, got error: %v", err)
	}
	if !result.Degraded {
		t.Error("expected a degraded result")
	}
	if result.Church != nil {
		t.Error("degraded result must not invent a church identity")
	}
	if result.CustomerEmail != "jamie@example.com" {
		t.Errorf("expected gateway customer email, got %q", result.CustomerEmail)
	}
	if writer.churchCalls != 0 {
		t.Error("degraded path must not write anything")
	}
}

func TestComplete_CorruptPendingData(t *testing.T) {
	gw := paidGateway()
	cache := &memCache{}
	p := testPending()
	p.RegistrationData.IsHq = false
	p.RegistrationData.HqChurchCode = "" // branch without parent code
	cache.p = &p
	co := NewCoordinator(gw, cache, &fakeWriter{})

	_, err := co.Complete(context.Background(), "cs_test_1")
	if !errors.Is(err, ErrCorruptPendingData) {
		t.Fatalf("expected ErrCorruptPendingData, got %v", err)
	}

	got, _ := cache.Load()
	if got == nil {
		t.Error("cache must be preserved for diagnosis on corrupt data")
	}
}

func TestComplete_CompensatingDelete(t *testing.T) {
	t.Run("admin record failure deletes the church", func(t *testing.T) {
		gw := paidGateway()
		cache := &memCache{}
		p := testPending()
		cache.p = &p
		writer := &fakeWriter{failRecord: errors.New("insert failed")}
		co := NewCoordinator(gw, cache, writer)

		_, err := co.Complete(context.Background(), "cs_test_1")
		var writeErr *WriteError
		if !errors.As(err, &writeErr) {
			t.Fatalf("expected WriteError, got %v", err)
		}
		if len(writer.deleted) != 1 {
			t.Fatalf("expected exactly one compensating delete, got %d", len(writer.deleted))
		}
		if got, _ := cache.Load(); got == nil {
			t.Error("cache must be preserved so the user can retry without repaying")
		}
	})

	t.Run("identity failure deletes the church", func(t *testing.T) {
		gw := paidGateway()
		cache := &memCache{}
		p := testPending()
		cache.p = &p
		writer := &fakeWriter{failIdentity: errors.New("account exists")}
		co := NewCoordinator(gw, cache, writer)

		_, err := co.Complete(context.Background(), "cs_test_1")
		var writeErr *WriteError
		if !errors.As(err, &writeErr) {
			t.Fatalf("expected WriteError, got %v", err)
		}
		if len(writer.deleted) != 1 {
			t.Fatalf("expected exactly one compensating delete, got %d", len(writer.deleted))
		}
	})
}

func TestComplete_EndToEndScenarios(t *testing.T) {
	t.Run("hq with trial completes and clears the cache", func(t *testing.T) {
		gw := paidGateway()
		cache := &memCache{}
		p := testPending() // isHq=true, wantsTrial=true, tier1
		cache.p = &p
		co := NewCoordinator(gw, cache, &fakeWriter{})

		result, err := co.Complete(context.Background(), "cs_scenario_a")
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if !churches.ValidCode(result.Church.ChurchCode) {
			t.Errorf("bad church code %q", result.Church.ChurchCode)
		}
		if !result.NeedsEmailVerification {
			t.Error("expected needsEmailVerification=true")
		}
		if got, _ := cache.Load(); got != nil {
			t.Error("cache must be empty afterward")
		}
	})

	t.Run("branch with unknown parent code fails the write and keeps the cache", func(t *testing.T) {
		gw := paidGateway()
		cache := &memCache{}
		p := testPending()
		p.RegistrationData.IsHq = false
		p.RegistrationData.HqChurchCode = "GRACE1"
		cache.p = &p
		writer := &fakeWriter{failChurch: fmt.Errorf("parent hq church %q not found", "GRACE1")}
		co := NewCoordinator(gw, cache, writer)

		_, err := co.Complete(context.Background(), "cs_scenario_b")
		var writeErr *WriteError
		if !errors.As(err, &writeErr) {
			t.Fatalf("expected WriteError, got %v", err)
		}
		if got, _ := cache.Load(); got == nil {
			t.Error("cache must remain populated after a write failure")
		}
	})

	t.Run("gateway outage is retryable with the same session", func(t *testing.T) {
		failures := 1
		gw := &fakeGateway{verify: func(string) (*payment.Verification, error) {
			if failures > 0 {
				failures--
				return nil, &payment.GatewayError{Op: "verify_session", Err: errors.New("connection refused")}
			}
			return &payment.Verification{Paid: true}, nil
		}}
		cache := &memCache{}
		p := testPending()
		cache.p = &p
		co := NewCoordinator(gw, cache, &fakeWriter{})

		_, err := co.Complete(context.Background(), "cs_scenario_c")
		var gwErr *payment.GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
		if got, _ := cache.Load(); got == nil {
			t.Fatal("cache must be untouched after a gateway failure")
		}

		result, err := co.Complete(context.Background(), "cs_scenario_c")
		if err != nil {
			t.Fatalf("retry after recovery failed: %v", err)
		}
		if result.Church == nil {
			t.Error("expected a full result on retry")
		}
	})
}

func TestComplete_InFlightGuard(t *testing.T) {
	block := make(chan struct{})
	entered := make(chan struct{}, 2)
	gw := paidGateway()
	gw.blockCh = block
	gw.enteredCh = entered
	cache := &memCache{}
	p := testPending()
	cache.p = &p
	co := NewCoordinator(gw, cache, &fakeWriter{})

	done := make(chan error, 1)
	go func() {
		_, err := co.Complete(context.Background(), "cs_test_1")
		done <- err
	}()

	// Wait for the first call to enter the gateway.
	<-entered

	_, err := co.Complete(context.Background(), "cs_test_1")
	if !errors.Is(err, ErrCompletionInFlight) {
		t.Fatalf("expected ErrCompletionInFlight, got %v", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first completion failed: %v", err)
	}

	// The slot is free again once the first call finishes.
	if _, err := co.Complete(context.Background(), "cs_test_1"); err != nil {
		t.Fatalf("completion after release failed: %v", err)
	}
}
