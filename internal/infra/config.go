package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"goaltracker/internal/money"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
	CORSAllowedOrigins []string

	CutPercent      decimal.Decimal
	DefaultCurrency string
	Location        *time.Location
	MaxImportBytes  int64

	GeoIPDBPath   string
	CampaignsFile string
	SeedDemo      bool

	YouTubeRefreshSchedule string
	YouTubeMockDelay       time.Duration
	YouTubeMockSeed        uint64
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:                 getEnv("APP_ENV", "development"),
		Port:                   getEnv("PORT", "8080"),
		HTTPReadTimeout:        time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:       time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:        time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:        getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		CORSAllowedOrigins:     splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		MaxImportBytes:         int64(getEnvInt("MAX_IMPORT_BYTES", 5<<20)),
		GeoIPDBPath:            os.Getenv("GEOIP_DB_PATH"),
		CampaignsFile:          os.Getenv("CAMPAIGNS_FILE"),
		SeedDemo:               getEnvBool("SEED_DEMO", false),
		YouTubeRefreshSchedule: strings.TrimSpace(os.Getenv("YOUTUBE_REFRESH_SCHEDULE")),
		YouTubeMockDelay:       time.Millisecond * time.Duration(getEnvInt("YOUTUBE_MOCK_DELAY_MS", 800)),
		YouTubeMockSeed:        uint64(getEnvInt("YOUTUBE_MOCK_SEED", int(time.Now().UnixNano()&0x7fffffff))),
	}

	cut, err := decimal.NewFromString(getEnv("PLATFORM_CUT_PERCENT", "30"))
	if err != nil {
		return nil, fmt.Errorf("PLATFORM_CUT_PERCENT: %w", err)
	}
	if cut.IsNegative() || cut.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("PLATFORM_CUT_PERCENT must be between 0 and 100, got %s", cut)
	}
	cfg.CutPercent = cut

	currency, err := money.NormalizeCode(getEnv("DEFAULT_CURRENCY", "USD"))
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_CURRENCY: %w", err)
	}
	cfg.DefaultCurrency = currency

	cfg.Location = time.Local
	if tz := strings.TrimSpace(os.Getenv("TIMEZONE")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("TIMEZONE: %w", err)
		}
		cfg.Location = loc
	}

	if cfg.MaxImportBytes <= 0 {
		return nil, fmt.Errorf("MAX_IMPORT_BYTES must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
