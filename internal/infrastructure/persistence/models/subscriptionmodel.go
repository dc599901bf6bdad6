package models

import (
	"time"

	"gorm.io/gorm"

	"gymgate/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// subscriptions. Version backs the optimistic lock the usage ledger relies
// on; LastAccessDate is date-granular (business timezone midnight in UTC)
// while LastVisitAt is a full timestamp.
type SubscriptionModel struct {
	ID             uint      `gorm:"primarykey"`
	SID            string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: sub_xxx"`
	ClientID       uint      `gorm:"not null;index:idx_client_subscription"`
	PlanID         uint      `gorm:"not null;index:idx_plan_subscription"`
	PurchasedAt    time.Time `gorm:"not null"`
	PaidVisits     int       `gorm:"not null;default:0"`
	UsedVisits     int       `gorm:"not null;default:0"`
	Active         bool      `gorm:"not null;default:true;index:idx_sub_active"`
	LastVisitAt    *time.Time
	LastAccessDate *time.Time `gorm:"index:idx_last_access"`
	ExpiresAt      *time.Time `gorm:"index:idx_expires"`
	Version        int        `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
