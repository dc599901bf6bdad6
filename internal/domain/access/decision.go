package access

// ClientSnapshot is the client data returned to the turnstile gateway so it
// can greet the person at the gate.
type ClientSnapshot struct {
	SID       string
	FirstName string
	LastName  string
	PhotoRef  string
}

// SubscriptionSnapshot is the subscription state after the attempt.
type SubscriptionSnapshot struct {
	SID             string
	PlanName        string
	PaidVisits      int
	UsedVisits      int
	RemainingVisits int
}

// Decision is the admission outcome returned per turnstile event. Domain
// expected denials (unknown identity, no eligible subscription, exhausted
// visits) are ordinary Decision values, never errors.
type Decision struct {
	Granted      bool
	Deducted     bool
	Reason       string
	Client       *ClientSnapshot
	Subscription *SubscriptionSnapshot
}

// Denied builds a denial decision with the given reason.
func Denied(reason string) Decision {
	return Decision{Reason: reason}
}
