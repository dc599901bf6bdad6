package access

import (
	"context"
	"time"
)

// ListFilter narrows audit log listings.
type ListFilter struct {
	ClientID *uint
	Granted  *bool
	DeviceID string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// Repository is the append-only audit store. There is deliberately no
// update or delete: entries survive every mutation in the system, including
// client deletion (the client reference is nulled, never cascaded).
type Repository interface {
	Append(ctx context.Context, entry *LogEntry) error
	List(ctx context.Context, filter ListFilter) ([]*LogEntry, int64, error)
	CountSince(ctx context.Context, since time.Time, granted bool) (int64, error)
}
