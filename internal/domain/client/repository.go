package client

import "context"

// ListFilter narrows client listings.
type ListFilter struct {
	Search   string // matches name, phone, email or face token
	Page     int
	PageSize int
}

// Repository defines persistence operations for clients. Lookup misses
// return (nil, nil) so callers can treat "unknown identity" as a normal
// decision outcome rather than an error.
type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uint) (*Client, error)
	GetBySID(ctx context.Context, sid string) (*Client, error)
	GetByFaceToken(ctx context.Context, faceToken string) (*Client, error)
	List(ctx context.Context, filter ListFilter) ([]*Client, int64, error)
	Update(ctx context.Context, c *Client) error
	// Delete removes the client and cascades to its subscriptions. Access
	// log entries keep a nulled client reference.
	Delete(ctx context.Context, id uint) error
}
