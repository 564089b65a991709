package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// DSN is either a plain file path for the SQLite store or a
// postgres:// URL for the Postgres store.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn" validate:"required"`
}

// AuthConfig contains all authentication settings, including the single
// configured administrator credential. The password is carried as a bcrypt
// hash; use cmd/hash-generator to produce one.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	AdminUsername        string `mapstructure:"admin_username"         validate:"required"`
	AdminPasswordHash    string `mapstructure:"admin_password_hash"    validate:"required"`
}
