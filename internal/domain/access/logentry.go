package access

import (
	"fmt"
	"time"
)

// LogEntry is one immutable audit record per turnstile attempt, granted or
// not. The client reference is nil when identity resolution failed; the raw
// face token is kept for forensics in that case. Entries are append-only:
// the repository exposes no update or delete.
type LogEntry struct {
	id             uint
	clientID       *uint
	subscriptionID *uint
	granted        bool
	deducted       bool
	reason         string
	deviceID       string
	faceToken      string
	metadata       map[string]string
	createdAt      time.Time
}

// NewLogEntry creates an audit entry for one access attempt.
func NewLogEntry(clientID, subscriptionID *uint, granted, deducted bool, reason, deviceID, faceToken string) (*LogEntry, error) {
	if reason == "" {
		return nil, fmt.Errorf("audit reason is required")
	}

	return &LogEntry{
		clientID:       clientID,
		subscriptionID: subscriptionID,
		granted:        granted,
		deducted:       deducted,
		reason:         reason,
		deviceID:       deviceID,
		faceToken:      faceToken,
		createdAt:      time.Now().UTC(),
	}, nil
}

// ReconstructLogEntry reconstructs an audit entry from persistence
func ReconstructLogEntry(
	id uint,
	clientID, subscriptionID *uint,
	granted, deducted bool,
	reason, deviceID, faceToken string,
	metadata map[string]string,
	createdAt time.Time,
) (*LogEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("log entry ID cannot be zero")
	}

	return &LogEntry{
		id:             id,
		clientID:       clientID,
		subscriptionID: subscriptionID,
		granted:        granted,
		deducted:       deducted,
		reason:         reason,
		deviceID:       deviceID,
		faceToken:      faceToken,
		metadata:       metadata,
		createdAt:      createdAt,
	}, nil
}

// SetMetadata attaches raw gateway payload fields for forensics.
func (e *LogEntry) SetMetadata(metadata map[string]string) {
	e.metadata = metadata
}

// Metadata returns the raw gateway payload fields, may be nil.
func (e *LogEntry) Metadata() map[string]string { return e.metadata }

// ID returns the entry ID
func (e *LogEntry) ID() uint { return e.id }

// ClientID returns the resolved client ID, nil for unknown identities
func (e *LogEntry) ClientID() *uint { return e.clientID }

// SubscriptionID returns the subscription used, nil when none qualified
func (e *LogEntry) SubscriptionID() *uint { return e.subscriptionID }

// Granted reports whether the turnstile was opened
func (e *LogEntry) Granted() bool { return e.granted }

// Deducted reports whether a visit was consumed
func (e *LogEntry) Deducted() bool { return e.deducted }

// Reason returns the human-readable outcome description
func (e *LogEntry) Reason() string { return e.reason }

// DeviceID returns the reporting turnstile device identifier
func (e *LogEntry) DeviceID() string { return e.deviceID }

// FaceToken returns the raw identity token from the attempt
func (e *LogEntry) FaceToken() string { return e.faceToken }

// CreatedAt returns the attempt timestamp
func (e *LogEntry) CreatedAt() time.Time { return e.createdAt }

// SetID sets the ID after persistence. Returns an error if already set.
func (e *LogEntry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("log entry ID already set")
	}
	if id == 0 {
		return fmt.Errorf("log entry ID cannot be zero")
	}
	e.id = id
	return nil
}
