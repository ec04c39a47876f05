package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service. It is built once
// at startup and passed by reference into the components that need it.
type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Storage   StorageConfig
	Mail      MailConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines admin authentication parameters. AdminPasswordHash is a
// bcrypt hash; a plaintext ADMIN_PASSWORD may be supplied in development and
// is hashed at startup by the auth service.
type AuthConfig struct {
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	TokenTTLHours     int
	BcryptCost        int
}

// RateLimitConfig bounds login attempts per source address.
type RateLimitConfig struct {
	WindowMinutes int
	MaxAttempts   int
}

// StorageConfig holds remote file storage credentials.
type StorageConfig struct {
	BaseURL   string
	CloudName string
	APIKey    string
	APISecret string
}

// MailConfig holds SMTP settings for outbound notifications.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	AdminTo  string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "studio-api"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			AdminEmail:        getEnv("ADMIN_EMAIL", "admin@example.com"),
			AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
			AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			JWTSecret:         getEnv("AUTH_JWT_SECRET", "dev-secret"),
			TokenTTLHours:     getEnvAsInt("AUTH_TOKEN_TTL_HOURS", 168),
			BcryptCost:        getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		RateLimit: RateLimitConfig{
			WindowMinutes: getEnvAsInt("LOGIN_RATE_WINDOW_MINUTES", 15),
			MaxAttempts:   getEnvAsInt("LOGIN_RATE_MAX_ATTEMPTS", 5),
		},
		Storage: StorageConfig{
			BaseURL:   getEnv("STORAGE_BASE_URL", "https://api.cloudinary.com"),
			CloudName: os.Getenv("STORAGE_CLOUD_NAME"),
			APIKey:    os.Getenv("STORAGE_API_KEY"),
			APISecret: os.Getenv("STORAGE_API_SECRET"),
		},
		Mail: MailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("MAIL_FROM", "noreply@example.com"),
			AdminTo:  os.Getenv("MAIL_ADMIN_TO"),
		},
	}

	if cfg.Auth.AdminPassword == "" && cfg.Auth.AdminPasswordHash == "" {
		return nil, fmt.Errorf("one of ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TokenTTL returns the access token lifetime.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLHours <= 0 {
		return 168 * time.Hour
	}
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// Window returns the login rate limit window.
func (r RateLimitConfig) Window() time.Duration {
	if r.WindowMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(r.WindowMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
