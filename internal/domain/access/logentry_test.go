package access

import "testing"

func TestNewLogEntry(t *testing.T) {
	clientID := uint(3)
	subID := uint(8)

	tests := []struct {
		name     string
		clientID *uint
		subID    *uint
		granted  bool
		reason   string
		wantErr  bool
	}{
		{
			name:     "granted entry with references",
			clientID: &clientID,
			subID:    &subID,
			granted:  true,
			reason:   "visit deducted",
		},
		{
			name:    "denied entry without client",
			granted: false,
			reason:  "client with face token FACE-XYZ not found",
		},
		{
			name:    "missing reason",
			reason:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := NewLogEntry(tt.clientID, tt.subID, tt.granted, false, tt.reason, "gate1", "FACE-XYZ")

			if tt.wantErr {
				if err == nil {
					t.Errorf("NewLogEntry() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("NewLogEntry() unexpected error = %v", err)
				return
			}

			if entry.Granted() != tt.granted {
				t.Errorf("Granted() = %v, want %v", entry.Granted(), tt.granted)
			}
			if entry.CreatedAt().IsZero() {
				t.Errorf("createdAt should be set")
			}
			if tt.clientID == nil && entry.ClientID() != nil {
				t.Errorf("ClientID() should stay nil for unknown identities")
			}
		})
	}
}
