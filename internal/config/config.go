package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	Push     PushConfig     `json:"push"`
	CheckIn  CheckInConfig  `json:"checkin"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type PushConfig struct {
	GatewayURL string `json:"gateway_url"`
	Disabled   bool   `json:"disabled"`
	Workers    int    `json:"workers"`
}

// CheckInConfig carries the presence-engine timing and distance
// defaults. The defaults are load-bearing: the acceptance window, the
// pending-request expiry, the GPS TTL and the discovery radii must
// match the documented behavior exactly unless overridden.
type CheckInConfig struct {
	AcceptanceWindow     time.Duration `json:"acceptance_window"`
	PendingRequestExpiry time.Duration `json:"pending_request_expiry"`
	LocationTTL          time.Duration `json:"location_ttl"`
	TrainerRadiusMeters  float64       `json:"trainer_radius_meters"`
	NearTrainerMaxMeters float64       `json:"near_trainer_max_meters"`
	DefaultGymRadius     int           `json:"default_gym_radius"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "checkin_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", ""),
		Push: PushConfig{
			GatewayURL: getEnv("PUSH_GATEWAY_URL", ""),
			Disabled:   getEnvBool("PUSH_DISABLED", false),
			Workers:    getEnvInt("PUSH_WORKERS", 2),
		},
		CheckIn: CheckInConfig{
			AcceptanceWindow:     getEnvDuration("CHECKIN_ACCEPTANCE_WINDOW", 5*time.Minute),
			PendingRequestExpiry: getEnvDuration("CHECKIN_PENDING_EXPIRY", 20*time.Minute),
			LocationTTL:          getEnvDuration("TRAINER_LOCATION_TTL", 2*time.Hour),
			TrainerRadiusMeters:  getEnvFloat("TRAINER_DISCOVERY_RADIUS_M", 500),
			NearTrainerMaxMeters: getEnvFloat("NEAR_TRAINER_MAX_M", 200),
			DefaultGymRadius:     getEnvInt("DEFAULT_GYM_RADIUS_M", 100),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.CheckIn.AcceptanceWindow <= 0 {
		return errors.New("CHECKIN_ACCEPTANCE_WINDOW must be positive")
	}
	if c.CheckIn.LocationTTL <= 0 {
		return errors.New("TRAINER_LOCATION_TTL must be positive")
	}
	if c.CheckIn.TrainerRadiusMeters <= 0 || c.CheckIn.NearTrainerMaxMeters <= 0 {
		return errors.New("discovery radii must be positive")
	}
	if c.DefaultGymRadiusOutOfBounds() {
		return errors.New("DEFAULT_GYM_RADIUS_M must be within 10..1000")
	}
	return nil
}

func (c *Config) DefaultGymRadiusOutOfBounds() bool {
	return c.CheckIn.DefaultGymRadius < 10 || c.CheckIn.DefaultGymRadius > 1000
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
