package service

import (
	"fmt"

	"freedge/internal/domain/entity"

	"cloud.google.com/go/civil"
)

// NewCheckInMessage builds the message asking a caretaker to reconfirm their freedge.
func NewCheckInMessage(attempt *entity.CheckInAttempt, entry *entity.Freedge, today civil.Date) *CheckInMessage {
	lastUpdate := "unknown"
	if days, ok := entry.DaysSinceLastUpdate(today); ok {
		lastUpdate = fmt.Sprintf("%d days ago", days)
	}

	return &CheckInMessage{
		AttemptID:   attempt.ID.String(),
		Method:      attempt.Method,
		Destination: attempt.Destination,
		Body: fmt.Sprintf("Hello %s, is the freedge '%s' at %s still active? Last update: %s.",
			entry.CaretakerName, entry.ProjectName, entry.Address.Short(), lastUpdate),
	}
}
