// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// Status is the activity state of a freedge. The zero value is StatusUnknown.
// Values outside the declared set cannot be constructed from other packages.
type Status struct {
	tag string
}

var (
	// StatusUnknown means the freedge has never been confirmed.
	StatusUnknown = Status{}
	// StatusActive means a caretaker confirmed the freedge is running.
	StatusActive = Status{tag: "ACTIVE"}
	// StatusSuspectedInactive means the freedge went unconfirmed for too long.
	StatusSuspectedInactive = Status{tag: "SUSPECTED INACTIVE"}
	// StatusConfirmedInactive means a caretaker reported the freedge is no longer running.
	StatusConfirmedInactive = Status{tag: "CONFIRMED INACTIVE"}
)

// Statuses lists every status in declaration order.
var Statuses = []Status{StatusActive, StatusSuspectedInactive, StatusConfirmedInactive, StatusUnknown}

// String returns the persisted tag of the status.
func (s Status) String() string {
	if s.tag == "" {
		return "UNKNOWN"
	}

	return s.tag
}

// ParseStatus converts a persisted tag back into a Status.
func ParseStatus(raw string) (Status, error) {
	tag := strings.ToUpper(strings.TrimSpace(raw))
	for _, s := range Statuses {
		if s.String() == tag {
			return s, nil
		}
	}

	return StatusUnknown, errors.Errorf("unrecognized status %q", raw)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}

// ContactMethod is a caretaker's preferred notification channel. The zero value is ContactSMS.
type ContactMethod struct {
	email bool
}

var (
	// ContactSMS prefers text messages to the phone number.
	ContactSMS = ContactMethod{}
	// ContactEmail prefers messages to the email address.
	ContactEmail = ContactMethod{email: true}
)

// String returns the persisted tag of the contact method.
func (c ContactMethod) String() string {
	if c.email {
		return "EMAIL"
	}

	return "SMS"
}

// ParseContactMethod converts a persisted tag back into a ContactMethod.
func ParseContactMethod(raw string) (ContactMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "SMS":
		return ContactSMS, nil
	case "EMAIL":
		return ContactEmail, nil
	default:
		return ContactSMS, errors.Errorf("unrecognized contact method %q", raw)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c ContactMethod) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ContactMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseContactMethod(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
