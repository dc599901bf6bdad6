package dto

import (
	"time"

	"gymgate/internal/domain/client"
)

// ClientDTO is the API representation of a gym client. The Stripe-style
// SID is the only identifier exposed outside the service.
type ClientDTO struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	FaceToken string    `json:"face_token"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	PhotoRef  string    `json:"photo_ref,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToClientDTO(c *client.Client) *ClientDTO {
	if c == nil {
		return nil
	}

	return &ClientDTO{
		ID:        c.SID(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		FullName:  c.FullName(),
		FaceToken: c.FaceToken(),
		Phone:     c.Phone(),
		Email:     c.Email(),
		PhotoRef:  c.PhotoRef(),
		Notes:     c.Notes(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func ToClientDTOs(clients []*client.Client) []*ClientDTO {
	dtos := make([]*ClientDTO, 0, len(clients))
	for _, c := range clients {
		if c != nil {
			dtos = append(dtos, ToClientDTO(c))
		}
	}
	return dtos
}
