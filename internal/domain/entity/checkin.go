// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CheckInResponse is a caretaker's answer to a check-in. The zero value is ResponseNone.
type CheckInResponse struct {
	tag string
}

var (
	// ResponseNone covers timeouts, dismissals and unreachable caretakers.
	ResponseNone = CheckInResponse{}
	// ResponseConfirmedActive means the caretaker says the freedge is running.
	ResponseConfirmedActive = CheckInResponse{tag: "confirmed_active"}
	// ResponseConfirmedInactive means the caretaker says the freedge is no longer running.
	ResponseConfirmedInactive = CheckInResponse{tag: "confirmed_inactive"}
)

// String returns the wire tag of the response.
func (r CheckInResponse) String() string {
	if r.tag == "" {
		return "no_response"
	}

	return r.tag
}

// ParseCheckInResponse converts a wire tag into a CheckInResponse.
func ParseCheckInResponse(raw string) (CheckInResponse, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "confirmed_active":
		return ResponseConfirmedActive, nil
	case "confirmed_inactive":
		return ResponseConfirmedInactive, nil
	case "no_response":
		return ResponseNone, nil
	default:
		return ResponseNone, errors.Errorf("unrecognized check-in response %q", raw)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r CheckInResponse) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *CheckInResponse) UnmarshalText(text []byte) error {
	parsed, err := ParseCheckInResponse(string(text))
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}

// AttemptState tracks a check-in attempt from dispatch to resolution.
type AttemptState string

const (
	// AttemptPending is waiting for the caretaker.
	AttemptPending AttemptState = "pending"
	// AttemptAnswered received a confirmation that was applied to the entry.
	AttemptAnswered AttemptState = "answered"
	// AttemptNoResponse closed without an answer.
	AttemptNoResponse AttemptState = "no_response"
	// AttemptSuperseded was replaced by a newer attempt before it resolved.
	AttemptSuperseded AttemptState = "superseded"
)

// String returns the string representation of the AttemptState.
func (s AttemptState) String() string {
	return string(s)
}

// IsValid checks if the AttemptState is a valid value.
func (s AttemptState) IsValid() bool {
	switch s {
	case AttemptPending, AttemptAnswered, AttemptNoResponse, AttemptSuperseded:
		return true
	default:
		return false
	}
}

// CheckInAttempt is one request asking a caretaker to reconfirm their freedge.
type CheckInAttempt struct {
	ID          uuid.UUID       // The Global Unique Identifier (GUID) for the attempt.
	FreedgeID   int64           // The entry being checked.
	Sequence    int             // Per-entry attempt counter, newest is highest.
	Method      ContactMethod   // Channel used for this attempt.
	Destination string          // Phone number or email address, may be empty.
	State       AttemptState    // Where the attempt is in its lifecycle.
	Response    CheckInResponse // The applied answer once resolved.
	CreatedAt   time.Time       // Timestamp of dispatch.
	ResolvedAt  *time.Time      // Timestamp of resolution, nil while pending.
}

// IsPending reports whether the attempt can still be resolved.
func (a *CheckInAttempt) IsPending() bool {
	return a.State == AttemptPending
}
