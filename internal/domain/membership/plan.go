package membership

import (
	"fmt"
	"strings"
	"time"
)

// Plan represents a subscription plan: a named, priced visit allotment.
// Read-mostly reference data shared by subscriptions; a plan cannot be
// deleted while subscriptions reference it.
type Plan struct {
	id             uint
	sid            string
	name           string
	unlimited      bool
	durationDays   int
	visitAllotment int
	priceCents     int64
	currency       string
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewPlan creates a new plan. Unlimited plans have no calendar expiry;
// durationDays is ignored for them.
func NewPlan(sid, name string, unlimited bool, durationDays, visitAllotment int, priceCents int64, currency string) (*Plan, error) {
	if sid == "" {
		return nil, fmt.Errorf("plan SID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if !unlimited && durationDays <= 0 {
		return nil, fmt.Errorf("duration days must be positive for non-unlimited plans")
	}
	if visitAllotment < 0 {
		return nil, fmt.Errorf("visit allotment cannot be negative")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if currency == "" {
		currency = "RUB"
	}

	now := time.Now().UTC()
	return &Plan{
		sid:            sid,
		name:           strings.TrimSpace(name),
		unlimited:      unlimited,
		durationDays:   durationDays,
		visitAllotment: visitAllotment,
		priceCents:     priceCents,
		currency:       currency,
		active:         true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructPlan reconstructs a plan from persistence
func ReconstructPlan(
	id uint,
	sid, name string,
	unlimited bool,
	durationDays, visitAllotment int,
	priceCents int64,
	currency string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}

	return &Plan{
		id:             id,
		sid:            sid,
		name:           name,
		unlimited:      unlimited,
		durationDays:   durationDays,
		visitAllotment: visitAllotment,
		priceCents:     priceCents,
		currency:       currency,
		active:         active,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// ID returns the plan ID
func (p *Plan) ID() uint { return p.id }

// SID returns the public plan identifier (plan_xxx)
func (p *Plan) SID() string { return p.sid }

// Name returns the plan name
func (p *Plan) Name() string { return p.name }

// Unlimited reports whether the plan has no calendar expiry
func (p *Plan) Unlimited() bool { return p.unlimited }

// DurationDays returns the nominal plan duration in days
func (p *Plan) DurationDays() int { return p.durationDays }

// VisitAllotment returns the nominal visit count sold with the plan
func (p *Plan) VisitAllotment() int { return p.visitAllotment }

// PriceCents returns the price in minor currency units
func (p *Plan) PriceCents() int64 { return p.priceCents }

// Currency returns the ISO currency code
func (p *Plan) Currency() string { return p.currency }

// Active reports whether the plan is offered for new subscriptions
func (p *Plan) Active() bool { return p.active }

// CreatedAt returns the creation timestamp
func (p *Plan) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last update timestamp
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the ID after persistence. Returns an error if already set.
func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

// ExpiryFor computes the calendar expiry for a subscription purchased at the
// given time. Unlimited plans never expire and return nil.
func (p *Plan) ExpiryFor(purchasedAt time.Time) *time.Time {
	if p.unlimited {
		return nil
	}
	expiry := purchasedAt.Add(time.Duration(p.durationDays) * 24 * time.Hour)
	return &expiry
}

// Update changes the plan's descriptive fields.
func (p *Plan) Update(name string, unlimited bool, durationDays, visitAllotment int, priceCents int64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("plan name is required")
	}
	if !unlimited && durationDays <= 0 {
		return fmt.Errorf("duration days must be positive for non-unlimited plans")
	}
	if visitAllotment < 0 {
		return fmt.Errorf("visit allotment cannot be negative")
	}
	if priceCents < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	p.name = strings.TrimSpace(name)
	p.unlimited = unlimited
	p.durationDays = durationDays
	p.visitAllotment = visitAllotment
	p.priceCents = priceCents
	p.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate withdraws the plan from sale. Existing subscriptions keep
// working.
func (p *Plan) Deactivate() {
	p.active = false
	p.updatedAt = time.Now().UTC()
}

// Activate puts the plan back on sale.
func (p *Plan) Activate() {
	p.active = true
	p.updatedAt = time.Now().UTC()
}
