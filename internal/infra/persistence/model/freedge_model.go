package model

import (
	"time"
)

// FreedgeModel is the GORM-specific struct for the 'freedges' table.
// Its address lives in 'freedge_addresses' under the same identity.
type FreedgeModel struct {
	ID                     int64      `gorm:"primaryKey;autoIncrement"`
	ProjectName            string     `gorm:"type:text;not null;index:idx_freedges_project_name"`
	NetworkName            string     `gorm:"type:text;not null;default:''"`
	CaretakerName          string     `gorm:"type:text;not null;default:''"`
	DateInstalled          *time.Time `gorm:"type:date"`
	PermissionToNotify     bool       `gorm:"not null;default:false"`
	PreferredContactMethod string     `gorm:"type:varchar(10);not null;default:'SMS'"`
	PhoneNumber            string     `gorm:"type:text;not null;default:''"`
	EmailAddress           string     `gorm:"type:text;not null;default:''"`
	Status                 string     `gorm:"type:varchar(32);not null;default:'UNKNOWN'"`
	LastStatusUpdate       *time.Time `gorm:"type:date"`
	CreatedAt              time.Time
	UpdatedAt              time.Time

	Address *FreedgeAddressModel `gorm:"foreignKey:FreedgeID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FreedgeModel) TableName() string {
	return "freedges"
}

// FreedgeAddressModel is the GORM-specific struct for the 'freedge_addresses' table.
type FreedgeAddressModel struct {
	FreedgeID     int64  `gorm:"primaryKey;autoIncrement:false"`
	StreetAddress string `gorm:"type:text;not null;default:''"`
	City          string `gorm:"type:text;not null;default:''"`
	StateProvince string `gorm:"type:text;not null;default:''"`
	ZipCode       string `gorm:"type:text;not null;default:''"`
	Country       string `gorm:"type:text;not null;default:''"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FreedgeAddressModel) TableName() string {
	return "freedge_addresses"
}
