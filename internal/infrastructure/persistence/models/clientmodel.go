package models

import (
	"time"

	"gymgate/internal/shared/constants"
)

// ClientModel represents the database persistence model for clients.
// This is the anti-corruption layer between domain and database.
type ClientModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: clt_xxx"`
	FirstName string `gorm:"not null;size:100"`
	LastName  string `gorm:"not null;size:100"`
	FaceToken string `gorm:"uniqueIndex;not null;size:100;comment:turnstile face recognition ID"`
	Phone     string `gorm:"size:20"`
	Email     string `gorm:"size:255"`
	PhotoRef  string `gorm:"size:500"`
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ClientModel) TableName() string {
	return constants.TableClients
}
