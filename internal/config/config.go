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
type DatabaseConfig struct {
	URL             string `mapstructure:"url"                validate:"required"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"     validate:"gte=0"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"     validate:"gte=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	// BcryptCost is the bcrypt cost factor for password hashing. Zero
	// falls back to the library default.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=0,lte=31"`
}
