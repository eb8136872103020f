package config

import (
	"context" // Context for envconfig processing
	"fmt"     // Error wrapping
	"time"    // Durations for TTLs and timeouts

	"github.com/joho/godotenv"          // For loading .env files
	"github.com/sethvargo/go-envconfig" // Environment decoding into structs
)

// Config holds the application configuration
type Config struct {
	AppPort  string `env:"APP_PORT, default=5000"`  // Application port
	IsProd   bool   `env:"IS_PROD, default=false"`  // Is production environment
	LogLevel string `env:"LOG_LEVEL, default=info"` // Logrus level name

	DB    DBConfig
	JWT   JWTConfig
	Redis RedisConfig
	Mail  MailConfig
}

// DBConfig selects the GORM driver and its connection string
type DBConfig struct {
	Driver   string `env:"DB_DRIVER, default=sqlite"`  // sqlite, mysql or postgres
	DSN      string `env:"DB_DSN"`                     // Full connection string
	User     string `env:"DB_USER"`                    // Database user
	Password string `env:"DB_PASSWORD"`                // Database password
	Host     string `env:"DB_HOST, default=127.0.0.1"` // Database host
	Port     string `env:"DB_PORT"`                    // Database port, empty uses the driver default
	Name     string `env:"DB_NAME, default=planets"`   // Database name
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret string        `env:"JWT_SECRET, default=super-secret"` // JWT secret key
	TTL    time.Duration `env:"JWT_TTL, default=15m"`             // Token lifetime
}

// RedisConfig holds the optional planet cache settings
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`             // Redis server address, empty disables caching
	Password string        `env:"REDIS_PASS"`             // Redis password
	DB       int           `env:"REDIS_DB, default=0"`    // Redis database number
	TTL      time.Duration `env:"CACHE_TTL, default=60s"` // Cache entry lifetime
}

// MailConfig holds the SMTP transport settings
type MailConfig struct {
	Server   string        `env:"MAIL_SERVER, default=localhost"`             // SMTP host
	Port     int           `env:"MAIL_PORT, default=2525"`                    // SMTP port
	Username string        `env:"MAIL_USERNAME"`                              // SMTP user, empty disables auth
	Password string        `env:"MAIL_PASSWORD"`                              // SMTP password
	UseTLS   bool          `env:"MAIL_USE_TLS, default=false"`                // Require STARTTLS
	UseSSL   bool          `env:"MAIL_USE_SSL, default=false"`                // Implicit TLS
	From     string        `env:"MAIL_FROM, default=admin@planetary-api.com"` // Sender address
	Timeout  time.Duration `env:"MAIL_TIMEOUT, default=10s"`                  // Dial and send timeout
}

// LoadConfig loads configuration from the environment, reading .env first if present
func LoadConfig(ctx context.Context) (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// ConnString returns the DSN for the configured driver
func (c DBConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	switch c.Driver {
	case "mysql":
		return c.User + ":" + c.Password + "@tcp(" + c.Host + ":" + c.port("3306") + ")/" + c.Name + "?parseTime=true"
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", c.Host, c.User, c.Password, c.Name, c.port("5432"))
	default:
		return "planets.db"
	}
}

// port returns the configured port or def when unset
func (c DBConfig) port(def string) string {
	if c.Port == "" {
		return def
	}
	return c.Port
}
