// Error values shared by the completion flow. Handlers translate these into
// the three user-visible categories: retry-the-payment, retry-the-registration
// and contact-support.
package registration

import (
	"errors"
	"fmt"
)

// ErrMissingSession is returned when Complete is called without a session id.
// Routine when the app is opened cold through a non-payment deep link;
// callers should route to a neutral screen, not an error banner.
var ErrMissingSession = errors.New("missing checkout session id")

// ErrPaymentNotCompleted is terminal: the gateway reported a non-paid status
// for the session. The user must restart checkout.
var ErrPaymentNotCompleted = errors.New("payment not completed")

// ErrCorruptPendingData is terminal. The cache is deliberately left in place
// so the bad record can be inspected.
var ErrCorruptPendingData = errors.New("pending registration data is corrupt")

// ErrCompletionInFlight rejects a second concurrent completion attempt for
// the same session while one is still running.
var ErrCompletionInFlight = errors.New("completion already in flight for this session")

// ErrCodeGenerationExhausted is returned when repeated church code
// generation keeps colliding with existing codes.
var ErrCodeGenerationExhausted = errors.New("church code generation exhausted")

// StorageError wraps a cache backend failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("registration cache %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// WriteError wraps a failure while creating the church or admin records.
// Retryable with the same session id without repaying: the compensating
// delete guarantees a retry never finds a half-created church.
type WriteError struct {
	Step string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("registration write (%s): %v", e.Step, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
