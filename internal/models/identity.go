package models

// Identity is the stable per-user key under which simulation history is
// partitioned. It is supplied by the authentication boundary at login and is
// immutable for the process lifetime; the storage layer uses ID verbatim as
// the partition key and never constructs or invalidates identities itself.
type Identity struct {
	// ID is the opaque, unique key for the user (UUID format).
	ID string `json:"id"`

	// DisplayName is an optional human-readable name, carried for rendering
	// only. It plays no part in partitioning.
	DisplayName string `json:"displayName,omitempty"`
}
