package domain

import "time"

type Device struct {
	ID         string    `db:"id"`
	CustomerID string    `db:"customer_id"`
	DeviceID   string    `db:"device_id"`
	FirstSeen  time.Time `db:"first_seen"`
	LastSeen   time.Time `db:"last_seen"`
}

// RegistrationOutcome is the result of the atomic register attempt for a
// (customer, device) pair.
type RegistrationOutcome int

const (
	OutcomeUnknown RegistrationOutcome = iota
	OutcomeRegistered
	OutcomeAlreadyRegistered
	OutcomeLimitExceeded
)

const (
	ReasonRegistered        = "registered"
	ReasonAlreadyRegistered = "already_registered"
	ReasonDenied            = "denied"
)

// Decision is the outcome of a device admission check. Message carries the
// user-facing text: a confirmation on allow, the configured block message on
// deny.
type Decision struct {
	Allowed bool
	Reason  string
	Message string
}
