package migration

import (
	"gymgate/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ClientModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
		&models.AccessLogModel{},
	}
}
