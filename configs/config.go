package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Gemini struct {
	APIKey    string
	TextModel string
	FastModel string
	Timeout   time.Duration
}

type Config struct {
	Port             string
	Env              string
	StoreDriver      string
	PostgresURI      string
	RedisURI         string
	FrontendURL      string
	Gemini           Gemini
	R2               R2
	DefaultLanguage  string
	DefaultTimezone  string
	StatsCacheTTL    time.Duration
	CreditRefillSpec string
	SeedDemoData     bool
}

func LoadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		Env:         getEnv("APP_ENV", "development"),
		StoreDriver: getEnv("STORE_DRIVER", StoreMemory),
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		Gemini: Gemini{
			APIKey:    getEnv("GEMINI_API_KEY", ""),
			TextModel: getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-pro"),
			FastModel: getEnv("GEMINI_FAST_MODEL", "gemini-2.5-flash"),
			Timeout:   getDuration("AI_TIMEOUT", 60*time.Second),
		},
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		DefaultLanguage:  getEnv("DEFAULT_LANGUAGE", "es"),
		DefaultTimezone:  getEnv("DEFAULT_TIMEZONE", "Europe/Madrid"),
		StatsCacheTTL:    getDuration("STATS_CACHE_TTL", 5*time.Minute),
		CreditRefillSpec: getEnv("CREDIT_REFILL_SPEC", "@monthly"),
		SeedDemoData:     getBool("SEED_DEMO_DATA", true),
	}
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if c.PostgresURI == "" {
			return fmt.Errorf("POSTGRES_URI is required when STORE_DRIVER=%s", StorePostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if _, err := time.LoadLocation(c.DefaultTimezone); err != nil {
		return fmt.Errorf("invalid DEFAULT_TIMEZONE %q: %w", c.DefaultTimezone, err)
	}

	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive")
	}

	return nil
}

// R2Enabled reports whether image uploads can be stored.
func (c *Config) R2Enabled() bool {
	return c.R2.AccountID != "" && c.R2.AccessKey != "" && c.R2.SecretKey != "" && c.R2.BucketName != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return d
}

func getBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return b
}
