package models

import (
	"time"

	"gorm.io/datatypes"

	"gymgate/internal/shared/constants"
)

// AccessLogModel represents the append-only audit table. ClientID is
// nullable: entries for unknown face tokens have no client, and entries
// survive client deletion with the reference set to NULL. Metadata carries
// the raw gateway payload for forensics.
type AccessLogModel struct {
	ID             uint  `gorm:"primarykey"`
	ClientID       *uint `gorm:"index:idx_access_client"`
	SubscriptionID *uint `gorm:"index:idx_access_subscription"`
	Granted        bool  `gorm:"not null;default:false;index:idx_access_granted"`
	Deducted       bool  `gorm:"not null;default:false"`
	Reason         string `gorm:"not null;size:255"`
	DeviceID       string `gorm:"size:100;index:idx_access_device"`
	FaceToken      string `gorm:"size:100"`
	Metadata       datatypes.JSON
	CreatedAt      time.Time `gorm:"index:idx_access_created"`
}

// TableName specifies the table name for GORM
func (AccessLogModel) TableName() string {
	return constants.TableAccessLogs
}
