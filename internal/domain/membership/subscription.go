package membership

import (
	"fmt"
	"time"

	"gymgate/internal/shared/biztime"
)

// Subscription represents a purchased visit allotment owned by one client.
// It is the aggregate the admission policy evaluates and the usage ledger
// mutates. Counters move only through EvaluateAccess/ApplyAccess and
// AddVisits.
type Subscription struct {
	id             uint
	sid            string
	clientID       uint
	planID         uint
	purchasedAt    time.Time
	paidVisits     int
	usedVisits     int
	active         bool
	lastVisitAt    *time.Time
	lastAccessDate *time.Time
	expiresAt      *time.Time
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

// NewSubscription creates a new subscription. expiresAt comes from
// Plan.ExpiryFor and is nil for unlimited plans.
func NewSubscription(sid string, clientID, planID uint, paidVisits int, purchasedAt time.Time, expiresAt *time.Time) (*Subscription, error) {
	if sid == "" {
		return nil, fmt.Errorf("subscription SID is required")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if paidVisits < 0 {
		return nil, fmt.Errorf("paid visits cannot be negative")
	}
	if purchasedAt.IsZero() {
		purchasedAt = biztime.NowUTC()
	}

	now := biztime.NowUTC()
	return &Subscription{
		sid:         sid,
		clientID:    clientID,
		planID:      planID,
		purchasedAt: purchasedAt,
		paidVisits:  paidVisits,
		active:      true,
		expiresAt:   expiresAt,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence
func ReconstructSubscription(
	id uint,
	sid string,
	clientID, planID uint,
	purchasedAt time.Time,
	paidVisits, usedVisits int,
	active bool,
	lastVisitAt, lastAccessDate, expiresAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if paidVisits < 0 || usedVisits < 0 {
		return nil, fmt.Errorf("visit counters cannot be negative")
	}

	return &Subscription{
		id:             id,
		sid:            sid,
		clientID:       clientID,
		planID:         planID,
		purchasedAt:    purchasedAt,
		paidVisits:     paidVisits,
		usedVisits:     usedVisits,
		active:         active,
		lastVisitAt:    lastVisitAt,
		lastAccessDate: lastAccessDate,
		expiresAt:      expiresAt,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// ID returns the subscription ID
func (s *Subscription) ID() uint { return s.id }

// SID returns the public subscription identifier (sub_xxx)
func (s *Subscription) SID() string { return s.sid }

// ClientID returns the owning client ID
func (s *Subscription) ClientID() uint { return s.clientID }

// PlanID returns the referenced plan ID
func (s *Subscription) PlanID() uint { return s.planID }

// PurchasedAt returns the purchase timestamp
func (s *Subscription) PurchasedAt() time.Time { return s.purchasedAt }

// PaidVisits returns the paid visit count
func (s *Subscription) PaidVisits() int { return s.paidVisits }

// UsedVisits returns the consumed visit count
func (s *Subscription) UsedVisits() int { return s.usedVisits }

// Active reports whether the subscription is active
func (s *Subscription) Active() bool { return s.active }

// LastVisitAt returns the timestamp of the most recent turnstile pass
func (s *Subscription) LastVisitAt() *time.Time { return s.lastVisitAt }

// LastAccessDate returns the business date of the last deducted visit
func (s *Subscription) LastAccessDate() *time.Time { return s.lastAccessDate }

// ExpiresAt returns the calendar expiry, nil for unlimited plans
func (s *Subscription) ExpiresAt() *time.Time { return s.expiresAt }

// Version returns the optimistic lock version
func (s *Subscription) Version() int { return s.version }

// CreatedAt returns the creation timestamp
func (s *Subscription) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last update timestamp
func (s *Subscription) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the ID after persistence. Returns an error if already set.
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// RemainingVisits returns paid minus used visits, floored at zero. A
// transient used > paid state is tolerated by clamping rather than
// rejected.
func (s *Subscription) RemainingVisits() int {
	remaining := s.paidVisits - s.usedVisits
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether the calendar expiry has passed at the given time.
// Subscriptions on unlimited plans never expire.
func (s *Subscription) Expired(now time.Time) bool {
	return s.expiresAt != nil && now.After(*s.expiresAt)
}

// IsValid reports whether the subscription can authorize a fresh visit at
// the given time: active, not expired, and visits remaining.
func (s *Subscription) IsValid(now time.Time) bool {
	return s.active && !s.Expired(now) && s.RemainingVisits() > 0
}

// AccessedToday reports whether a visit was already deducted on now's
// business day.
func (s *Subscription) AccessedToday(now time.Time) bool {
	return s.lastAccessDate != nil && biztime.SameBusinessDay(*s.lastAccessDate, now)
}

// Eligible reports whether this subscription can authorize the current
// access attempt: either it can pay for a fresh visit, or today's visit was
// already deducted and the attempt is a re-entry. This is the single
// selection predicate used everywhere.
func (s *Subscription) Eligible(now time.Time) bool {
	if !s.active || s.Expired(now) {
		return false
	}
	return s.RemainingVisits() > 0 || s.AccessedToday(now)
}

// AddVisits adds paid visits for a renewal. The count must be positive;
// used visits are never touched.
func (s *Subscription) AddVisits(count int) error {
	if count <= 0 {
		return ErrInvalidExtension
	}
	s.paidVisits += count
	s.updatedAt = biztime.NowUTC()
	return nil
}

// Deactivate disables the subscription.
func (s *Subscription) Deactivate() {
	s.active = false
	s.updatedAt = biztime.NowUTC()
}

// Activate re-enables the subscription.
func (s *Subscription) Activate() {
	s.active = true
	s.updatedAt = biztime.NowUTC()
}
