package client

import (
	"fmt"
	"strings"
	"time"
)

// Client represents a gym client aggregate root. The face token is the
// external biometric identifier reported by the turnstile; it is unique
// across clients and immutable once set.
type Client struct {
	id        uint
	sid       string
	firstName string
	lastName  string
	faceToken string
	phone     string
	email     string
	photoRef  string
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

// NewClient creates a new client
func NewClient(sid, firstName, lastName, faceToken string) (*Client, error) {
	if sid == "" {
		return nil, fmt.Errorf("client SID is required")
	}
	if strings.TrimSpace(firstName) == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, fmt.Errorf("last name is required")
	}
	if strings.TrimSpace(faceToken) == "" {
		return nil, fmt.Errorf("face token is required")
	}

	now := time.Now().UTC()
	return &Client{
		sid:       sid,
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		faceToken: strings.TrimSpace(faceToken),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructClient reconstructs a client from persistence
func ReconstructClient(
	id uint,
	sid, firstName, lastName, faceToken, phone, email, photoRef, notes string,
	createdAt, updatedAt time.Time,
) (*Client, error) {
	if id == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	if faceToken == "" {
		return nil, fmt.Errorf("face token is required")
	}

	return &Client{
		id:        id,
		sid:       sid,
		firstName: firstName,
		lastName:  lastName,
		faceToken: faceToken,
		phone:     phone,
		email:     email,
		photoRef:  photoRef,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the client ID
func (c *Client) ID() uint { return c.id }

// SID returns the public client identifier (clt_xxx)
func (c *Client) SID() string { return c.sid }

// FirstName returns the first name
func (c *Client) FirstName() string { return c.firstName }

// LastName returns the last name
func (c *Client) LastName() string { return c.lastName }

// FaceToken returns the biometric identity token
func (c *Client) FaceToken() string { return c.faceToken }

// Phone returns the contact phone
func (c *Client) Phone() string { return c.phone }

// Email returns the contact email
func (c *Client) Email() string { return c.email }

// PhotoRef returns the stored photo reference
func (c *Client) PhotoRef() string { return c.photoRef }

// Notes returns the free-form notes
func (c *Client) Notes() string { return c.notes }

// CreatedAt returns the registration timestamp
func (c *Client) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last update timestamp
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }

// FullName returns "Last First" for display and audit reasons.
func (c *Client) FullName() string {
	return strings.TrimSpace(c.lastName + " " + c.firstName)
}

// SetID sets the ID after persistence. Returns an error if already set.
func (c *Client) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID already set")
	}
	if id == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateName updates the display name fields.
func (c *Client) UpdateName(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return fmt.Errorf("last name is required")
	}
	c.firstName = strings.TrimSpace(firstName)
	c.lastName = strings.TrimSpace(lastName)
	c.updatedAt = time.Now().UTC()
	return nil
}

// UpdateContact updates contact details.
func (c *Client) UpdateContact(phone, email string) {
	c.phone = strings.TrimSpace(phone)
	c.email = strings.TrimSpace(email)
	c.updatedAt = time.Now().UTC()
}

// UpdatePhotoRef updates the stored photo reference.
func (c *Client) UpdatePhotoRef(photoRef string) {
	c.photoRef = photoRef
	c.updatedAt = time.Now().UTC()
}

// UpdateNotes replaces the free-form notes.
func (c *Client) UpdateNotes(notes string) {
	c.notes = notes
	c.updatedAt = time.Now().UTC()
}
