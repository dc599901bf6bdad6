package membership

import (
	"time"

	"gymgate/internal/shared/biztime"
)

// AccessState is the admission state machine outcome for one access attempt.
type AccessState int

const (
	// StateIneligible denies the attempt: inactive, expired, or no visits
	// remaining with no access earlier today.
	StateIneligible AccessState = iota
	// StateFirstVisitToday grants and deducts one visit.
	StateFirstVisitToday
	// StateRepeatVisitToday grants without deducting: today's visit was
	// already paid and the client is re-entering (e.g. back from a break).
	StateRepeatVisitToday
)

func (s AccessState) String() string {
	switch s {
	case StateFirstVisitToday:
		return "first_visit_today"
	case StateRepeatVisitToday:
		return "repeat_visit_today"
	default:
		return "ineligible"
	}
}

// AccessEvaluation is the admission policy verdict for one attempt. Granted
// and Deduct describe what ApplyAccess will do; Reason is human-readable
// and ends up in the audit log.
type AccessEvaluation struct {
	State   AccessState
	Granted bool
	Deduct  bool
	Reason  string
}

// EvaluateAccess runs the admission state machine against this subscription
// for an attempt at the given instant. It never mutates state; pass the
// evaluation to ApplyAccess to commit it.
//
// A same-day re-entry is granted even when the balance reached zero this
// morning: today's visit was already deducted, and denying would trap a
// client who stepped out for a break. A fresh day with zero remaining
// visits is always denied.
func (s *Subscription) EvaluateAccess(now time.Time) AccessEvaluation {
	if !s.active {
		return AccessEvaluation{
			State:  StateIneligible,
			Reason: "subscription is not active",
		}
	}
	if s.Expired(now) {
		return AccessEvaluation{
			State:  StateIneligible,
			Reason: "subscription expired",
		}
	}
	if s.AccessedToday(now) {
		return AccessEvaluation{
			State:   StateRepeatVisitToday,
			Granted: true,
			Reason:  "re-entry, visit already counted today",
		}
	}
	if s.RemainingVisits() == 0 {
		return AccessEvaluation{
			State:  StateIneligible,
			Reason: "no visits remaining",
		}
	}
	return AccessEvaluation{
		State:   StateFirstVisitToday,
		Granted: true,
		Deduct:  true,
		Reason:  "visit deducted",
	}
}

// ApplyAccess commits a granted evaluation: deducts the visit when the
// evaluation says so, stamps the access date, and always refreshes the last
// visit timestamp. Denied evaluations are rejected so the ledger can never
// record a mutation for a denied attempt.
func (s *Subscription) ApplyAccess(eval AccessEvaluation, now time.Time) error {
	if !eval.Granted {
		return ErrAccessNotGranted
	}
	if eval.Deduct {
		s.usedVisits++
		accessDate := biztime.BusinessDate(now)
		s.lastAccessDate = &accessDate
	}
	visitAt := now.UTC()
	s.lastVisitAt = &visitAt
	s.updatedAt = visitAt
	return nil
}
