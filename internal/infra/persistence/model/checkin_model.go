package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckInAttemptModel is the GORM-specific struct for the 'check_in_attempts' table.
type CheckInAttemptModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	FreedgeID   int64      `gorm:"not null;uniqueIndex:idx_check_in_attempts_freedge_sequence"`
	Sequence    int        `gorm:"not null;uniqueIndex:idx_check_in_attempts_freedge_sequence"`
	Method      string     `gorm:"type:varchar(10);not null"`
	Destination string     `gorm:"type:text;not null;default:''"`
	State       string     `gorm:"type:varchar(16);not null;default:'pending'"`
	Response    string     `gorm:"type:varchar(32);not null;default:'no_response'"`
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckInAttemptModel) TableName() string {
	return "check_in_attempts"
}
