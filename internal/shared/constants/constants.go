// Package constants defines shared application constants.
package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Database table names
const (
	TableClients       = "clients"
	TablePlans         = "subscription_plans"
	TableSubscriptions = "subscriptions"
	TableAccessLogs    = "access_logs"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Context keys set by middleware
const (
	ContextKeyStaffUser = "staff_user"
	ContextKeyDeviceID  = "device_id"
)
