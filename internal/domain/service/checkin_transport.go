package service

import (
	"context"
	"errors"

	"freedge/internal/domain/entity"
)

// ErrAwaitingReply is returned by transports that deliver the question but receive the
// answer out of band. The attempt stays pending until the reply is recorded.
var ErrAwaitingReply = errors.New("check-in sent, awaiting reply")

// CheckInMessage is what a caretaker receives when asked to reconfirm their freedge
type CheckInMessage struct {
	AttemptID   string
	Method      entity.ContactMethod
	Destination string
	Body        string
}

// CheckInTransport delivers a check-in message and waits for the caretaker's answer.
// Timeouts, dismissals and unreachable caretakers are reported as entity.ResponseNone,
// errors are reserved for transport failures and ErrAwaitingReply.
type CheckInTransport interface {
	RequestCheckIn(ctx context.Context, message *CheckInMessage) (entity.CheckInResponse, error)
}
