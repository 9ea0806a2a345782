package msgtype

import "time"

// Record is a resolved schema descriptor as persisted by a schema store.
type Record struct {
	// ID is the unique record identifier assigned at resolution time.
	ID string

	// Type is the resolved descriptor. Only valid descriptors are stored.
	Type MessageType

	// ResolvedAt is the time the descriptor was resolved.
	ResolvedAt time.Time
}
