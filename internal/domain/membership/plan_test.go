package membership

import (
	"testing"
	"time"
)

func TestNewPlan(t *testing.T) {
	tests := []struct {
		name         string
		planName     string
		unlimited    bool
		durationDays int
		visits       int
		priceCents   int64
		wantErr      bool
		errMsg       string
	}{
		{
			name:         "valid plan",
			planName:     "Standard",
			durationDays: 30,
			visits:       12,
			priceCents:   250000,
			wantErr:      false,
		},
		{
			name:       "unlimited plan ignores duration",
			planName:   "Trial",
			unlimited:  true,
			visits:     4,
			priceCents: 0,
			wantErr:    false,
		},
		{
			name:         "empty name",
			planName:     "  ",
			durationDays: 30,
			wantErr:      true,
			errMsg:       "plan name is required",
		},
		{
			name:     "zero duration on dated plan",
			planName: "Standard",
			wantErr:  true,
			errMsg:   "duration days must be positive for non-unlimited plans",
		},
		{
			name:         "negative visits",
			planName:     "Standard",
			durationDays: 30,
			visits:       -1,
			wantErr:      true,
			errMsg:       "visit allotment cannot be negative",
		},
		{
			name:         "negative price",
			planName:     "Standard",
			durationDays: 30,
			visits:       10,
			priceCents:   -100,
			wantErr:      true,
			errMsg:       "price cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewPlan("plan_test123", tt.planName, tt.unlimited, tt.durationDays, tt.visits, tt.priceCents, "RUB")

			if tt.wantErr {
				if err == nil {
					t.Errorf("NewPlan() expected error, got nil")
					return
				}
				if err.Error() != tt.errMsg {
					t.Errorf("NewPlan() error = %v, want %v", err.Error(), tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Errorf("NewPlan() unexpected error = %v", err)
				return
			}

			if !plan.Active() {
				t.Errorf("new plan should be active")
			}
		})
	}
}

func TestPlanExpiryFor(t *testing.T) {
	purchased := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	dated, err := NewPlan("plan_dated", "Standard", false, 30, 12, 250000, "RUB")
	if err != nil {
		t.Fatalf("NewPlan() error = %v", err)
	}

	expiry := dated.ExpiryFor(purchased)
	if expiry == nil {
		t.Fatalf("dated plan expiry should not be nil")
	}
	if want := purchased.Add(30 * 24 * time.Hour); !expiry.Equal(want) {
		t.Errorf("expiry = %v, want %v", expiry, want)
	}

	unlimited, err := NewPlan("plan_unlim", "Premium", true, 0, 100, 800000, "RUB")
	if err != nil {
		t.Fatalf("NewPlan() error = %v", err)
	}
	if unlimited.ExpiryFor(purchased) != nil {
		t.Errorf("unlimited plan must never expire")
	}
}
