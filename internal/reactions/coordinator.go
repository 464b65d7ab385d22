// Package reactions enforces "one active reaction per user per post" and
// computes the per-post display aggregates.
package reactions

import (
	"context"
	"fmt"

	"churchfeed-app/internal/domain/reactions"

	"github.com/google/uuid"
)

// Summary is one aggregate row for a post, one per reaction type present.
// At most one entry carries UserReacted for a given viewer.
type Summary struct {
	Type        reactions.Type `json:"type"`
	Count       int            `json:"count"`
	UserReacted bool           `json:"userReacted"`
}

type Coordinator struct {
	store Store
}

func NewCoordinator(store Store) *Coordinator {
	return &Coordinator{store: store}
}

// Set upserts the user's reaction, replacing any prior type. Calling twice
// with the same type is a no-op from the viewer's perspective.
func (co *Coordinator) Set(ctx context.Context, postID, userID uuid.UUID, t reactions.Type) error {
	if !reactions.ValidType(t) {
		return &WriteError{Op: "set", Err: fmt.Errorf("invalid reaction type %q", t)}
	}
	r := &reactions.Reaction{PostID: postID, UserID: userID, Type: t}
	if err := co.store.Upsert(ctx, r); err != nil {
		return &WriteError{Op: "set", Err: err}
	}
	return nil
}

// Remove deletes the user's reaction if present; absent is a no-op.
func (co *Coordinator) Remove(ctx context.Context, postID, userID uuid.UUID) error {
	if err := co.store.Delete(ctx, postID, userID); err != nil {
		return &WriteError{Op: "remove", Err: err}
	}
	return nil
}

// Toggle is what a tap drives: tapping the active reaction clears it,
// tapping a different one switches to it.
func (co *Coordinator) Toggle(ctx context.Context, postID, userID uuid.UUID, t reactions.Type) error {
	current, err := co.store.Get(ctx, postID, userID)
	if err != nil {
		return &WriteError{Op: "toggle", Err: err}
	}
	if current != nil && current.Type == t {
		return co.Remove(ctx, postID, userID)
	}
	return co.Set(ctx, postID, userID, t)
}

// Summary groups all reactions on the post by type and marks the viewer's
// own entry. viewerID may be uuid.Nil for anonymous viewers.
func (co *Coordinator) Summary(ctx context.Context, postID, viewerID uuid.UUID) ([]Summary, error) {
	rows, err := co.store.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	counts := map[reactions.Type]int{}
	var viewerType reactions.Type
	for _, r := range rows {
		counts[r.Type]++
		if viewerID != uuid.Nil && r.UserID == viewerID {
			viewerType = r.Type
		}
	}

	out := make([]Summary, 0, len(counts))
	for _, t := range typeOrder {
		if n, ok := counts[t]; ok {
			out = append(out, Summary{
				Type:        t,
				Count:       n,
				UserReacted: t == viewerType && viewerType != "",
			})
		}
	}
	return out, nil
}
