package service

import (
	"testing"

	"freedge/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewCheckInMessage(t *testing.T) {
	today := civil.Date{Year: 2024, Month: 4, Day: 10}
	entry := &entity.Freedge{
		ID:               7,
		ProjectName:      "Elm St",
		CaretakerName:    "Ana",
		Address:          entity.Address{Street: "1 Elm St", City: "Eugene", State: "OR"},
		Status:           entity.StatusActive,
		ContactMethod:    entity.ContactEmail,
		EmailAddress:     "ana@example.org",
		LastStatusUpdate: civil.Date{Year: 2024, Month: 1, Day: 1},
	}
	attempt := &entity.CheckInAttempt{
		ID:          uuid.New(),
		FreedgeID:   7,
		Method:      entity.ContactEmail,
		Destination: "ana@example.org",
	}

	message := NewCheckInMessage(attempt, entry, today)

	assert.Equal(t, attempt.ID.String(), message.AttemptID)
	assert.Equal(t, entity.ContactEmail, message.Method)
	assert.Equal(t, "ana@example.org", message.Destination)
	assert.Equal(t,
		"Hello Ana, is the freedge 'Elm St' at "+entry.Address.Short()+" still active? Last update: 100 days ago.",
		message.Body)

	entry.LastStatusUpdate = civil.Date{}
	assert.Contains(t, NewCheckInMessage(attempt, entry, today).Body, "Last update: unknown.")

	entry.Status = entity.StatusUnknown
	entry.LastStatusUpdate = civil.Date{Year: 2024, Month: 1, Day: 1}
	assert.Contains(t, NewCheckInMessage(attempt, entry, today).Body, "Last update: unknown.")
}
