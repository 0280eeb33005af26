package configs

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// =======================
// TYPED CONFIG
// =======================

type DBConfig struct {
	Driver   string `default:"postgres"`
	DSN      string
	Host     string `default:"localhost"`
	Port     string `default:"5432"`
	User     string `default:"postgres"`
	Password string
	Name     string `default:"attendance"`
	SSLMode  string `split_words:"true" default:"disable"`
	LogLevel string `split_words:"true" default:"warn"`

	MaxOpenConns    int           `split_words:"true" default:"20"`
	MaxIdleConns    int           `split_words:"true" default:"10"`
	ConnMaxIdleTime time.Duration `split_words:"true" default:"60s"`
	ConnMaxLifetime time.Duration `split_words:"true" default:"10m"`
}

// nested keys are prefixed with the parent field: DB_HOST, DB_SSL_MODE, JWT_SECRET, ...
type JWTConfig struct {
	Secret string
	TTL    time.Duration `default:"24h"`
}

type Config struct {
	Env              string        `envconfig:"APP_ENV" default:"development"`
	Port             string        `envconfig:"PORT" default:"3000"`
	RequestTimeout   time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`
	CORSAllowOrigins string        `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://127.0.0.1:5173"`

	// cron spec, robfig format (supports @daily, @every 1h, ...)
	BlacklistCleanupSpec string `envconfig:"TOKEN_BLACKLIST_CLEANUP_CRON" default:"@daily"`

	DB  DBConfig  `envconfig:"DB"`
	JWT JWTConfig `envconfig:"JWT"`
}

// Load reads the process environment (after LoadEnv) into Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.DB.Driver = strings.ToLower(strings.TrimSpace(cfg.DB.Driver))
	return &cfg, nil
}

// AllowOrigins returns the CORS origin list in the comma form fiber's cors expects.
func (c *Config) AllowOrigins() string {
	parts := strings.Split(c.CORSAllowOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

// =======================
// ENV LOADER
// =======================

func LoadEnv() {
	if GetEnv("RAILWAY_ENVIRONMENT") != "" {
		log.Println("🚀 Running in Railway, using system ENV")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
