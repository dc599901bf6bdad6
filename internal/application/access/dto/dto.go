package dto

import (
	"time"

	"gymgate/internal/domain/access"
)

// DecisionDTO is the turnstile gateway response. The gate opens iff
// Granted is true; everything else is display material for the panel.
type DecisionDTO struct {
	Granted      bool             `json:"granted"`
	Deducted     bool             `json:"deducted"`
	Reason       string           `json:"reason"`
	Client       *ClientInfo      `json:"client,omitempty"`
	Subscription *SubscriptionInfo `json:"subscription,omitempty"`
}

type ClientInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoRef  string `json:"photo_ref,omitempty"`
}

type SubscriptionInfo struct {
	ID              string `json:"id"`
	PlanName        string `json:"plan_name"`
	PaidVisits      int    `json:"paid_visits"`
	UsedVisits      int    `json:"used_visits"`
	RemainingVisits int    `json:"remaining_visits"`
}

// AccessLogEntryDTO is one audit trail row. ClientID is null for unknown
// face tokens and for entries whose client was later deleted.
type AccessLogEntryDTO struct {
	ID             uint              `json:"id"`
	ClientID       *uint             `json:"client_id,omitempty"`
	SubscriptionID *uint             `json:"subscription_id,omitempty"`
	Granted        bool              `json:"granted"`
	Deducted       bool              `json:"deducted"`
	Reason         string            `json:"reason"`
	DeviceID       string            `json:"device_id,omitempty"`
	FaceToken      string            `json:"face_token,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

func ToDecisionDTO(d access.Decision) *DecisionDTO {
	out := &DecisionDTO{
		Granted:  d.Granted,
		Deducted: d.Deducted,
		Reason:   d.Reason,
	}

	if d.Client != nil {
		out.Client = &ClientInfo{
			ID:        d.Client.SID,
			FirstName: d.Client.FirstName,
			LastName:  d.Client.LastName,
			PhotoRef:  d.Client.PhotoRef,
		}
	}
	if d.Subscription != nil {
		out.Subscription = &SubscriptionInfo{
			ID:              d.Subscription.SID,
			PlanName:        d.Subscription.PlanName,
			PaidVisits:      d.Subscription.PaidVisits,
			UsedVisits:      d.Subscription.UsedVisits,
			RemainingVisits: d.Subscription.RemainingVisits,
		}
	}
	return out
}

func ToAccessLogEntryDTO(e *access.LogEntry) *AccessLogEntryDTO {
	if e == nil {
		return nil
	}

	return &AccessLogEntryDTO{
		ID:             e.ID(),
		ClientID:       e.ClientID(),
		SubscriptionID: e.SubscriptionID(),
		Granted:        e.Granted(),
		Deducted:       e.Deducted(),
		Reason:         e.Reason(),
		DeviceID:       e.DeviceID(),
		FaceToken:      e.FaceToken(),
		Metadata:       e.Metadata(),
		CreatedAt:      e.CreatedAt(),
	}
}

func ToAccessLogEntryDTOs(entries []*access.LogEntry) []*AccessLogEntryDTO {
	dtos := make([]*AccessLogEntryDTO, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			dtos = append(dtos, ToAccessLogEntryDTO(e))
		}
	}
	return dtos
}
