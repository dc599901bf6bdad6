package dto

import (
	"time"

	"gymgate/internal/domain/membership"
)

type PlanDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Unlimited      bool      `json:"unlimited"`
	DurationDays   int       `json:"duration_days"`
	VisitAllotment int       `json:"visit_allotment"`
	PriceCents     int64     `json:"price_cents"`
	Currency       string    `json:"currency"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SubscriptionDTO struct {
	ID              string     `json:"id"`
	ClientID        string     `json:"client_id"`
	PlanID          string     `json:"plan_id"`
	PlanName        string     `json:"plan_name,omitempty"`
	PurchasedAt     time.Time  `json:"purchased_at"`
	PaidVisits      int        `json:"paid_visits"`
	UsedVisits      int        `json:"used_visits"`
	RemainingVisits int        `json:"remaining_visits"`
	Active          bool       `json:"active"`
	LastVisitAt     *time.Time `json:"last_visit_at,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func ToPlanDTO(p *membership.Plan) *PlanDTO {
	if p == nil {
		return nil
	}

	return &PlanDTO{
		ID:             p.SID(),
		Name:           p.Name(),
		Unlimited:      p.Unlimited(),
		DurationDays:   p.DurationDays(),
		VisitAllotment: p.VisitAllotment(),
		PriceCents:     p.PriceCents(),
		Currency:       p.Currency(),
		Active:         p.Active(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func ToPlanDTOs(plans []*membership.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		if p != nil {
			dtos = append(dtos, ToPlanDTO(p))
		}
	}
	return dtos
}

// ToSubscriptionDTO renders a subscription. clientSID and planSID come from
// the owning aggregates; planName may be empty when the caller did not load
// the plan.
func ToSubscriptionDTO(s *membership.Subscription, clientSID, planSID, planName string) *SubscriptionDTO {
	if s == nil {
		return nil
	}

	return &SubscriptionDTO{
		ID:              s.SID(),
		ClientID:        clientSID,
		PlanID:          planSID,
		PlanName:        planName,
		PurchasedAt:     s.PurchasedAt(),
		PaidVisits:      s.PaidVisits(),
		UsedVisits:      s.UsedVisits(),
		RemainingVisits: s.RemainingVisits(),
		Active:          s.Active(),
		LastVisitAt:     s.LastVisitAt(),
		ExpiresAt:       s.ExpiresAt(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}
