package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host" validate:"required"`
	Port           int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"required,oneof=mysql sqlite"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" validate:"required"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == "sqlite" {
		return d.Database
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=console json"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret" validate:"required"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes" validate:"required,min=1"`
}

// AuthConfig configures staff access to the admin API. The front desk is a
// single-operator deployment, so credentials live in config rather than a
// staff table. The hash is bcrypt.
type AuthConfig struct {
	JWT               JWTConfig `mapstructure:"jwt"`
	AdminUsername     string    `mapstructure:"admin_username" validate:"required"`
	AdminPasswordHash string    `mapstructure:"admin_password_hash"`
}

// TurnstileConfig configures the hardware gateway boundary.
type TurnstileConfig struct {
	// DeviceToken is the shared bearer token presented by the turnstile
	// bridge on every access request.
	DeviceToken string `mapstructure:"device_token"`
	// RequestsPerMinute limits access attempts per device over a sliding
	// minute window. Zero disables the limiter.
	RequestsPerMinute int `mapstructure:"requests_per_minute" validate:"min=0"`
	// MaxDecisionRetries bounds optimistic-lock retries when concurrent
	// scans race on the same subscription.
	MaxDecisionRetries int `mapstructure:"max_decision_retries" validate:"min=1"`
}

// BusinessConfig holds gym-level business settings.
type BusinessConfig struct {
	// Timezone is the gym's local timezone used for calendar-day
	// boundaries in the admission policy. Storage stays UTC.
	Timezone string `mapstructure:"timezone" validate:"required"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address" validate:"omitempty,email"`
	FromName     string `mapstructure:"from_name"`
	// AlertRecipients receive operator alerts when the turnstile endpoint
	// hits storage failures.
	AlertRecipients []string `mapstructure:"alert_recipients"`
}
