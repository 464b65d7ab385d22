package registration

// pendingKey is the fixed slot name; the cache holds at most one pending
// registration at a time.
const pendingKey = "churchfeed_pending_registration"

// Cache durably parks the single pending registration across the round trip
// through the external checkout page. Only the checkout-creation flow writes
// it and only the completion coordinator clears it.
type Cache interface {
	// Save overwrites any existing entry.
	Save(p Pending) error
	// Load returns nil when the slot is empty or holds unparseable data.
	Load() (*Pending, error)
	// Clear is idempotent; clearing an absent slot is not an error.
	Clear() error
}
