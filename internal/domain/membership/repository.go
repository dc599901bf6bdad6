package membership

import "context"

// SubscriptionRepository defines persistence operations for subscriptions.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetBySID(ctx context.Context, sid string) (*Subscription, error)
	// ListByClientID returns all of a client's subscriptions in the
	// canonical selection order: highest remaining visits first, then
	// earliest purchase. The ordering is deterministic so the selector
	// never depends on storage insertion order.
	ListByClientID(ctx context.Context, clientID uint) ([]*Subscription, error)
	Update(ctx context.Context, sub *Subscription) error
	// UpdateWithVersion persists the subscription only when the stored
	// version still equals expectedVersion, bumping the version on
	// success. Returns ErrVersionConflict when a concurrent writer got
	// there first.
	UpdateWithVersion(ctx context.Context, sub *Subscription, expectedVersion int) error
	Delete(ctx context.Context, id uint) error
}

// PlanListFilter narrows plan listings.
type PlanListFilter struct {
	ActiveOnly bool
	Page       int
	PageSize   int
}

// PlanRepository defines persistence operations for subscription plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetBySID(ctx context.Context, sid string) (*Plan, error)
	List(ctx context.Context, filter PlanListFilter) ([]*Plan, int64, error)
	Update(ctx context.Context, plan *Plan) error
	// Delete removes the plan; returns ErrPlanInUse while any
	// subscription references it.
	Delete(ctx context.Context, id uint) error
	CountSubscriptions(ctx context.Context, planID uint) (int64, error)
}
