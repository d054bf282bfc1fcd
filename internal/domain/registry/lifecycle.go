package registry

import (
	"freedge/internal/domain/entity"

	"cloud.google.com/go/civil"
)

// DefaultThresholdDays is how long a confirmation stays fresh.
const DefaultThresholdDays = 90

// DefaultSuspectAfterDays is how long an active entry may go unconfirmed before it is suspected inactive.
const DefaultSuspectAfterDays = 365

// SelectOverdue returns entries confirmed more than thresholdDays ago.
// Notification consent is not considered here.
func SelectOverdue(entries []*entity.Freedge, today civil.Date, thresholdDays int) []*entity.Freedge {
	var overdue []*entity.Freedge
	for _, entry := range entries {
		if days, ok := entry.DaysSinceLastUpdate(today); ok && days > thresholdDays {
			overdue = append(overdue, entry)
		}
	}

	return overdue
}

// Notifiable keeps the entries whose caretakers consented to notifications.
func Notifiable(entries []*entity.Freedge) []*entity.Freedge {
	var eligible []*entity.Freedge
	for _, entry := range entries {
		if entry.CanNotify() {
			eligible = append(eligible, entry)
		}
	}

	return eligible
}

// ApplyResponse advances entry according to a caretaker's answer.
// ResponseNone returns entry itself and reports no change, so nothing must be written.
func ApplyResponse(entry *entity.Freedge, response entity.CheckInResponse, today civil.Date) (*entity.Freedge, bool) {
	switch response {
	case entity.ResponseConfirmedActive:
		return entry.Advance(entity.StatusActive, today), true
	case entity.ResponseConfirmedInactive:
		return entry.Advance(entity.StatusConfirmedInactive, today), true
	default:
		return entry, false
	}
}

// SelectStale returns copies of the active entries unconfirmed for more than suspectAfterDays,
// marked SuspectedInactive. A suspicion is not a confirmation, so the last update date is kept.
func SelectStale(entries []*entity.Freedge, today civil.Date, suspectAfterDays int) []*entity.Freedge {
	var stale []*entity.Freedge
	for _, entry := range entries {
		if entry.Status != entity.StatusActive {
			continue
		}
		if days, ok := entry.DaysSinceLastUpdate(today); ok && days > suspectAfterDays {
			suspected := *entry
			suspected.Status = entity.StatusSuspectedInactive
			stale = append(stale, &suspected)
		}
	}

	return stale
}
