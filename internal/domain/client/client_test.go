package client

import (
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		faceToken string
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid client",
			firstName: "Ivan",
			lastName:  "Petrov",
			faceToken: "FACE-0042",
			wantErr:   false,
		},
		{
			name:      "missing first name",
			firstName: " ",
			lastName:  "Petrov",
			faceToken: "FACE-0042",
			wantErr:   true,
			errMsg:    "first name is required",
		},
		{
			name:      "missing last name",
			firstName: "Ivan",
			lastName:  "",
			faceToken: "FACE-0042",
			wantErr:   true,
			errMsg:    "last name is required",
		},
		{
			name:      "missing face token",
			firstName: "Ivan",
			lastName:  "Petrov",
			faceToken: "  ",
			wantErr:   true,
			errMsg:    "face token is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient("clt_test123", tt.firstName, tt.lastName, tt.faceToken)

			if tt.wantErr {
				if err == nil {
					t.Errorf("NewClient() expected error, got nil")
					return
				}
				if err.Error() != tt.errMsg {
					t.Errorf("NewClient() error = %v, want %v", err.Error(), tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Errorf("NewClient() unexpected error = %v", err)
				return
			}

			if c.FullName() != "Petrov Ivan" {
				t.Errorf("FullName() = %q, want %q", c.FullName(), "Petrov Ivan")
			}
		})
	}
}

func TestClientSetID(t *testing.T) {
	c, err := NewClient("clt_test123", "Ivan", "Petrov", "FACE-0042")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if err := c.SetID(7); err != nil {
		t.Fatalf("SetID() unexpected error = %v", err)
	}
	if c.ID() != 7 {
		t.Errorf("ID() = %d, want 7", c.ID())
	}
	if err := c.SetID(8); err == nil {
		t.Errorf("SetID() should reject resetting an assigned ID")
	}
}

func TestReconstructClientRequiresFaceToken(t *testing.T) {
	now := time.Now().UTC()
	if _, err := ReconstructClient(1, "clt_x", "Ivan", "Petrov", "", "", "", "", "", now, now); err == nil {
		t.Errorf("ReconstructClient() should require a face token")
	}
}
