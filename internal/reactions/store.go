package reactions

import (
	"context"
	"fmt"

	"churchfeed-app/internal/domain/reactions"

	"github.com/google/uuid"
)

// Store is the persistence boundary for reactions. Upsert must replace any
// existing row for the same (post, user) pair.
type Store interface {
	Get(ctx context.Context, postID, userID uuid.UUID) (*reactions.Reaction, error)
	Upsert(ctx context.Context, r *reactions.Reaction) error
	Delete(ctx context.Context, postID, userID uuid.UUID) error
	ListByPost(ctx context.Context, postID uuid.UUID) ([]reactions.Reaction, error)
}

// WriteError wraps a storage failure on a mutating reaction operation.
// Callers keep their last-known-good optimistic state and re-fetch the
// summary rather than assuming the write landed.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("reaction %s: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
