package membership

import (
	"errors"
	"testing"
	"time"

	"gymgate/internal/shared/biztime"
)

// noon avoids business-timezone day-boundary surprises in date comparisons.
var noon = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestEvaluateAccess(t *testing.T) {
	yesterday := biztime.BusinessDate(noon.Add(-24 * time.Hour))
	today := biztime.BusinessDate(noon)
	expired := noon.Add(-time.Hour)

	tests := []struct {
		name           string
		paid           int
		used           int
		active         bool
		lastAccessDate *time.Time
		expiresAt      *time.Time
		wantState      AccessState
		wantGranted    bool
		wantDeduct     bool
	}{
		{
			name:        "first visit of the day deducts",
			paid:        10,
			used:        4,
			active:      true,
			wantState:   StateFirstVisitToday,
			wantGranted: true,
			wantDeduct:  true,
		},
		{
			name:           "first visit after a previous day deducts",
			paid:           10,
			used:           4,
			active:         true,
			lastAccessDate: &yesterday,
			wantState:      StateFirstVisitToday,
			wantGranted:    true,
			wantDeduct:     true,
		},
		{
			name:           "repeat visit same day grants without deduction",
			paid:           10,
			used:           5,
			active:         true,
			lastAccessDate: &today,
			wantState:      StateRepeatVisitToday,
			wantGranted:    true,
			wantDeduct:     false,
		},
		{
			name:           "repeat visit at zero remaining still grants",
			paid:           10,
			used:           10,
			active:         true,
			lastAccessDate: &today,
			wantState:      StateRepeatVisitToday,
			wantGranted:    true,
			wantDeduct:     false,
		},
		{
			name:        "zero remaining on a fresh day denies",
			paid:        10,
			used:        10,
			active:      true,
			wantState:   StateIneligible,
			wantGranted: false,
		},
		{
			name:           "zero remaining last accessed yesterday denies",
			paid:           10,
			used:           10,
			active:         true,
			lastAccessDate: &yesterday,
			wantState:      StateIneligible,
			wantGranted:    false,
		},
		{
			name:        "inactive subscription denies",
			paid:        10,
			used:        0,
			active:      false,
			wantState:   StateIneligible,
			wantGranted: false,
		},
		{
			name:           "inactive wins over same-day re-entry",
			paid:           10,
			used:           5,
			active:         false,
			lastAccessDate: &today,
			wantState:      StateIneligible,
			wantGranted:    false,
		},
		{
			name:        "expired subscription denies",
			paid:        10,
			used:        0,
			active:      true,
			expiresAt:   &expired,
			wantState:   StateIneligible,
			wantGranted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := reconstructTestSubscription(t, tt.paid, tt.used, tt.active, tt.lastAccessDate, tt.expiresAt)

			eval := sub.EvaluateAccess(noon)

			if eval.State != tt.wantState {
				t.Errorf("state = %v, want %v", eval.State, tt.wantState)
			}
			if eval.Granted != tt.wantGranted {
				t.Errorf("granted = %v, want %v", eval.Granted, tt.wantGranted)
			}
			if eval.Deduct != tt.wantDeduct {
				t.Errorf("deduct = %v, want %v", eval.Deduct, tt.wantDeduct)
			}
			if eval.Reason == "" {
				t.Errorf("reason must not be empty")
			}
		})
	}
}

func TestApplyAccessFirstVisit(t *testing.T) {
	sub := reconstructTestSubscription(t, 10, 9, true, nil, nil)

	eval := sub.EvaluateAccess(noon)
	if !eval.Granted || !eval.Deduct {
		t.Fatalf("expected granted first visit, got %+v", eval)
	}

	if err := sub.ApplyAccess(eval, noon); err != nil {
		t.Fatalf("ApplyAccess() unexpected error = %v", err)
	}

	if sub.UsedVisits() != 10 {
		t.Errorf("usedVisits = %d, want 10", sub.UsedVisits())
	}
	if sub.RemainingVisits() != 0 {
		t.Errorf("remainingVisits = %d, want 0", sub.RemainingVisits())
	}
	if sub.LastAccessDate() == nil || !biztime.SameBusinessDay(*sub.LastAccessDate(), noon) {
		t.Errorf("lastAccessDate = %v, want today", sub.LastAccessDate())
	}
	if sub.LastVisitAt() == nil || !sub.LastVisitAt().Equal(noon) {
		t.Errorf("lastVisitAt = %v, want %v", sub.LastVisitAt(), noon)
	}
}

// Two attempts the same day deduct exactly one visit total, and the repeat
// attempt still passes even though the balance is now zero.
func TestApplyAccessSameDayIdempotence(t *testing.T) {
	sub := reconstructTestSubscription(t, 10, 9, true, nil, nil)

	first := sub.EvaluateAccess(noon)
	if err := sub.ApplyAccess(first, noon); err != nil {
		t.Fatalf("first ApplyAccess() error = %v", err)
	}

	later := noon.Add(3 * time.Hour)
	second := sub.EvaluateAccess(later)
	if second.State != StateRepeatVisitToday {
		t.Fatalf("second attempt state = %v, want repeat visit", second.State)
	}
	if err := sub.ApplyAccess(second, later); err != nil {
		t.Fatalf("second ApplyAccess() error = %v", err)
	}

	if sub.UsedVisits() != 10 {
		t.Errorf("usedVisits = %d, want 10 (one deduction total)", sub.UsedVisits())
	}
	if sub.LastVisitAt() == nil || !sub.LastVisitAt().Equal(later) {
		t.Errorf("lastVisitAt = %v, want %v", sub.LastVisitAt(), later)
	}

	// Invariant holds after every ledger mutation.
	if want := sub.PaidVisits() - sub.UsedVisits(); want >= 0 && sub.RemainingVisits() != want {
		t.Errorf("RemainingVisits() = %d, want %d", sub.RemainingVisits(), want)
	}
}

func TestApplyAccessNextDayDeductsAgain(t *testing.T) {
	sub := reconstructTestSubscription(t, 10, 0, true, nil, nil)

	if err := sub.ApplyAccess(sub.EvaluateAccess(noon), noon); err != nil {
		t.Fatalf("day one ApplyAccess() error = %v", err)
	}

	nextDay := noon.Add(24 * time.Hour)
	eval := sub.EvaluateAccess(nextDay)
	if eval.State != StateFirstVisitToday {
		t.Fatalf("next day state = %v, want first visit", eval.State)
	}
	if err := sub.ApplyAccess(eval, nextDay); err != nil {
		t.Fatalf("day two ApplyAccess() error = %v", err)
	}

	if sub.UsedVisits() != 2 {
		t.Errorf("usedVisits = %d, want 2", sub.UsedVisits())
	}
}

func TestApplyAccessRejectsDeniedEvaluation(t *testing.T) {
	sub := reconstructTestSubscription(t, 10, 10, true, nil, nil)

	eval := sub.EvaluateAccess(noon)
	if eval.Granted {
		t.Fatalf("expected denied evaluation")
	}

	if err := sub.ApplyAccess(eval, noon); !errors.Is(err, ErrAccessNotGranted) {
		t.Errorf("ApplyAccess() error = %v, want ErrAccessNotGranted", err)
	}
	if sub.UsedVisits() != 10 {
		t.Errorf("denied apply must not mutate state")
	}
}

func TestEligible(t *testing.T) {
	today := biztime.BusinessDate(noon)

	tests := []struct {
		name           string
		paid           int
		used           int
		active         bool
		lastAccessDate *time.Time
		want           bool
	}{
		{"visits remaining", 10, 4, true, nil, true},
		{"exhausted fresh day", 10, 10, true, nil, false},
		{"exhausted but accessed today", 10, 10, true, &today, true},
		{"inactive with visits", 10, 4, false, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := reconstructTestSubscription(t, tt.paid, tt.used, tt.active, tt.lastAccessDate, nil)
			if got := sub.Eligible(noon); got != tt.want {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
		})
	}
}
