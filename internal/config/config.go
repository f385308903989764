package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	Database DatabaseConfig
	JWT      JWTConfig
	Market   MarketConfig
	Gemini   GeminiConfig
	Ledger   LedgerConfig
	TestMode bool

	// farmer codes allowed on /admin routes
	AdminFarmers []string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type MarketConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// LedgerConfig holds record-keeping policy switches.
type LedgerConfig struct {
	AllowPostHarvestExpenses bool
}

func Load() (*Config, error) {
	godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Market: MarketConfig{
			URL:     getEnv("MARKET_API_URL", "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070"),
			APIKey:  getEnv("MARKET_API_KEY", ""),
			Timeout: getDuration("MARKET_TIMEOUT", 5*time.Second),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout: getDuration("SCHEME_TIMEOUT", 30*time.Second),
		},
		Ledger: LedgerConfig{
			AllowPostHarvestExpenses: getEnv("ALLOW_POST_HARVEST_EXPENSES", "false") == "true",
		},
		TestMode:     getEnv("TEST_MODE", "false") == "true",
		AdminFarmers: getList("ADMIN_FARMERS"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getList(key string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, ""), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
