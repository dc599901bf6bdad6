package models

import (
	"time"

	"gymgate/internal/shared/constants"
)

// PlanModel represents the database persistence model for subscription plans.
type PlanModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: plan_xxx"`
	Name           string `gorm:"not null;size:100"`
	Unlimited      bool   `gorm:"not null;default:false"`
	DurationDays   int    `gorm:"not null;default:30"`
	VisitAllotment int    `gorm:"not null;default:0"`
	PriceCents     int64  `gorm:"not null;default:0"`
	Currency       string `gorm:"not null;size:3;default:RUB"`
	Active         bool   `gorm:"not null;default:true;index:idx_plan_active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
