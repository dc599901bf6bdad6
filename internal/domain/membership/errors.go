package membership

import "errors"

var (
	// ErrSubscriptionNotFound indicates no subscription matches the given
	// identifier.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrPlanNotFound indicates no plan matches the given identifier.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrPlanInUse blocks deletion of a plan still referenced by
	// subscriptions.
	ErrPlanInUse = errors.New("plan is referenced by existing subscriptions")
	// ErrInvalidExtension rejects add-visits calls with a non-positive
	// count. Administrative error: no state change, no audit entry.
	ErrInvalidExtension = errors.New("extension visit count must be positive")
	// ErrAccessNotGranted rejects applying a denied evaluation to the
	// subscription.
	ErrAccessNotGranted = errors.New("access evaluation was not granted")
	// ErrVersionConflict signals a concurrent writer updated the
	// subscription between read and write; re-read and re-evaluate.
	ErrVersionConflict = errors.New("subscription was modified concurrently")
)
