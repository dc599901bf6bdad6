package membership

import (
	"errors"
	"testing"
	"time"
)

func TestNewSubscription(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name       string
		sid        string
		clientID   uint
		planID     uint
		paidVisits int
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "valid subscription",
			sid:        "sub_test123",
			clientID:   1,
			planID:     2,
			paidVisits: 10,
			wantErr:    false,
		},
		{
			name:       "missing SID",
			sid:        "",
			clientID:   1,
			planID:     2,
			paidVisits: 10,
			wantErr:    true,
			errMsg:     "subscription SID is required",
		},
		{
			name:       "zero client ID",
			sid:        "sub_test123",
			clientID:   0,
			planID:     2,
			paidVisits: 10,
			wantErr:    true,
			errMsg:     "client ID is required",
		},
		{
			name:       "zero plan ID",
			sid:        "sub_test123",
			clientID:   1,
			planID:     0,
			paidVisits: 10,
			wantErr:    true,
			errMsg:     "plan ID is required",
		},
		{
			name:       "negative paid visits",
			sid:        "sub_test123",
			clientID:   1,
			planID:     2,
			paidVisits: -1,
			wantErr:    true,
			errMsg:     "paid visits cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := NewSubscription(tt.sid, tt.clientID, tt.planID, tt.paidVisits, now, nil)

			if tt.wantErr {
				if err == nil {
					t.Errorf("NewSubscription() expected error, got nil")
					return
				}
				if err.Error() != tt.errMsg {
					t.Errorf("NewSubscription() error = %v, want %v", err.Error(), tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Errorf("NewSubscription() unexpected error = %v", err)
				return
			}

			if !sub.Active() {
				t.Errorf("new subscription should be active")
			}
			if sub.UsedVisits() != 0 {
				t.Errorf("usedVisits = %d, want 0", sub.UsedVisits())
			}
			if sub.Version() != 1 {
				t.Errorf("version = %d, want 1", sub.Version())
			}
			if sub.LastAccessDate() != nil {
				t.Errorf("lastAccessDate should be nil for new subscription")
			}
		})
	}
}

func TestSubscriptionRemainingVisits(t *testing.T) {
	tests := []struct {
		name string
		paid int
		used int
		want int
	}{
		{"unused", 10, 0, 10},
		{"partially used", 10, 4, 6},
		{"exhausted", 10, 10, 0},
		{"overdrawn clamps to zero", 10, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := reconstructTestSubscription(t, tt.paid, tt.used, true, nil, nil)
			if got := sub.RemainingVisits(); got != tt.want {
				t.Errorf("RemainingVisits() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSubscriptionAddVisits(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		wantErr  bool
		wantPaid int
	}{
		{"positive count", 5, false, 15},
		{"zero count rejected", 0, true, 10},
		{"negative count rejected", -3, true, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := reconstructTestSubscription(t, 10, 4, true, nil, nil)

			err := sub.AddVisits(tt.count)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidExtension) {
					t.Errorf("AddVisits(%d) error = %v, want ErrInvalidExtension", tt.count, err)
				}
			} else if err != nil {
				t.Errorf("AddVisits(%d) unexpected error = %v", tt.count, err)
			}

			if sub.PaidVisits() != tt.wantPaid {
				t.Errorf("paidVisits = %d, want %d", sub.PaidVisits(), tt.wantPaid)
			}
			if sub.UsedVisits() != 4 {
				t.Errorf("usedVisits = %d, want 4 (extension must never touch used visits)", sub.UsedVisits())
			}
		})
	}
}

func TestSubscriptionIsValid(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(30 * 24 * time.Hour)

	tests := []struct {
		name      string
		paid      int
		used      int
		active    bool
		expiresAt *time.Time
		want      bool
	}{
		{"active with visits", 10, 4, true, nil, true},
		{"inactive", 10, 4, false, nil, false},
		{"exhausted", 10, 10, true, nil, false},
		{"expired", 10, 4, true, &past, false},
		{"not yet expired", 10, 4, true, &future, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := reconstructTestSubscription(t, tt.paid, tt.used, tt.active, nil, tt.expiresAt)
			if got := sub.IsValid(now); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

// reconstructTestSubscription builds a persisted-looking subscription for
// state machine tests.
func reconstructTestSubscription(t *testing.T, paid, used int, active bool, lastAccessDate, expiresAt *time.Time) *Subscription {
	t.Helper()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	sub, err := ReconstructSubscription(
		1, "sub_test123", 1, 1,
		created,
		paid, used,
		active,
		nil, lastAccessDate, expiresAt,
		1,
		created, created,
	)
	if err != nil {
		t.Fatalf("ReconstructSubscription() unexpected error = %v", err)
	}
	return sub
}
