package bookstore

// DuplicateIDPolicy defines how a store reacts when a write would leave two books with the same id.
type DuplicateIDPolicy int

const (
	// AllowDuplicateIDs appends books without checking for an existing id.
	// Two books with the same id can then coexist: Get returns the first one,
	// Replace overwrites the first one, and Delete removes all of them.
	//
	// This is the default, it keeps the behavior of the service this store was modeled on.
	AllowDuplicateIDs DuplicateIDPolicy = iota

	// RejectDuplicateIDs makes Insert and Replace fail with ErrDuplicateBookID
	// instead of storing a second book with an id that is already taken.
	RejectDuplicateIDs
)

// IsValid reports whether p is one of the known policies.
func (p DuplicateIDPolicy) IsValid() bool {
	return p == AllowDuplicateIDs || p == RejectDuplicateIDs
}

// String provides a string representation of DuplicateIDPolicy for logging and debugging.
func (p DuplicateIDPolicy) String() string {
	switch p {
	case AllowDuplicateIDs:
		return "allow"
	case RejectDuplicateIDs:
		return "reject"
	default:
		return "unknown"
	}
}
