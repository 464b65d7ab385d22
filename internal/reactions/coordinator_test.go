package reactions

import (
	"context"
	"errors"
	"testing"

	"churchfeed-app/internal/domain/reactions"

	"github.com/google/uuid"
)

type memKey struct {
	postID uuid.UUID
	userID uuid.UUID
}

// memStore is an in-memory Store with the same replace-on-upsert contract
// as the database-backed one.
type memStore struct {
	rows    map[memKey]reactions.Reaction
	failGet error
}

func newMemStore() *memStore {
	return &memStore{rows: map[memKey]reactions.Reaction{}}
}

func (s *memStore) Get(_ context.Context, postID, userID uuid.UUID) (*reactions.Reaction, error) {
	if s.failGet != nil {
		return nil, s.failGet
	}
	r, ok := s.rows[memKey{postID, userID}]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *memStore) Upsert(_ context.Context, r *reactions.Reaction) error {
	s.rows[memKey{r.PostID, r.UserID}] = *r
	return nil
}

func (s *memStore) Delete(_ context.Context, postID, userID uuid.UUID) error {
	delete(s.rows, memKey{postID, userID})
	return nil
}

func (s *memStore) ListByPost(_ context.Context, postID uuid.UUID) ([]reactions.Reaction, error) {
	var out []reactions.Reaction
	for k, r := range s.rows {
		if k.postID == postID {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestToggle_TwiceClearsReaction(t *testing.T) {
	store := newMemStore()
	co := NewCoordinator(store)
	ctx := context.Background()
	post, user := uuid.New(), uuid.New()

	for i := 0; i < 2; i++ {
		if err := co.Toggle(ctx, post, user, reactions.TypeHeart); err != nil {
			t.Fatalf("toggle %d: %v", i+1, err)
		}
	}

	sum, err := co.Summary(ctx, post, user)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(sum) != 0 {
		t.Errorf("expected no reactions after double toggle, got %+v", sum)
	}
}

func TestToggle_SwitchLeavesSingleReaction(t *testing.T) {
	store := newMemStore()
	co := NewCoordinator(store)
	ctx := context.Background()
	post, user := uuid.New(), uuid.New()

	if err := co.Toggle(ctx, post, user, reactions.TypeHeart); err != nil {
		t.Fatalf("toggle heart: %v", err)
	}
	if err := co.Toggle(ctx, post, user, reactions.TypeLike); err != nil {
		t.Fatalf("toggle like: %v", err)
	}

	sum, err := co.Summary(ctx, post, user)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(sum) != 1 {
		t.Fatalf("expected exactly one aggregate row, got %+v", sum)
	}
	if sum[0].Type != reactions.TypeLike || sum[0].Count != 1 || !sum[0].UserReacted {
		t.Errorf("got %+v, want single like owned by the viewer", sum[0])
	}
}

func TestSummary_SingleViewerFlag(t *testing.T) {
	store := newMemStore()
	co := NewCoordinator(store)
	ctx := context.Background()
	post, viewer := uuid.New(), uuid.New()

	if err := co.Set(ctx, post, viewer, reactions.TypePrayer); err != nil {
		t.Fatalf("set: %v", err)
	}
	for i := 0; i < 4; i++ {
		tt := reactions.TypeHeart
		if i%2 == 0 {
			tt = reactions.TypePrayer
		}
		if err := co.Set(ctx, post, uuid.New(), tt); err != nil {
			t.Fatalf("set other %d: %v", i, err)
		}
	}

	sum, err := co.Summary(ctx, post, viewer)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	flagged := 0
	for _, s := range sum {
		if s.UserReacted {
			flagged++
			if s.Type != reactions.TypePrayer {
				t.Errorf("viewer flag on %q, want %q", s.Type, reactions.TypePrayer)
			}
		}
	}
	if flagged != 1 {
		t.Errorf("expected exactly one flagged entry, got %d in %+v", flagged, sum)
	}
}

func TestSummary_AnonymousViewerNeverFlagged(t *testing.T) {
	store := newMemStore()
	co := NewCoordinator(store)
	ctx := context.Background()
	post := uuid.New()

	if err := co.Set(ctx, post, uuid.New(), reactions.TypeHeart); err != nil {
		t.Fatalf("set: %v", err)
	}

	sum, err := co.Summary(ctx, post, uuid.Nil)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, s := range sum {
		if s.UserReacted {
			t.Errorf("anonymous viewer flagged in %+v", sum)
		}
	}
}

func TestSet_RejectsInvalidType(t *testing.T) {
	co := NewCoordinator(newMemStore())
	err := co.Set(context.Background(), uuid.New(), uuid.New(), reactions.Type("thumbsdown"))
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("expected *WriteError, got %v", err)
	}
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	store := newMemStore()
	co := NewCoordinator(store)
	if err := co.Remove(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("remove on empty store: %v", err)
	}
}

func TestToggle_StoreFailureWrapped(t *testing.T) {
	store := newMemStore()
	store.failGet = errors.New("connection reset")
	co := NewCoordinator(store)

	err := co.Toggle(context.Background(), uuid.New(), uuid.New(), reactions.TypeHeart)
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("expected *WriteError, got %v", err)
	}
	if we.Op != "toggle" {
		t.Errorf("op = %q, want toggle", we.Op)
	}
}
