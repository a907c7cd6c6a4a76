package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/sdk/client"
)

// DefaultStoreTimeout bounds every repository call made by the orders service.
const DefaultStoreTimeout = 5 * time.Second

// Config carries environment-driven settings for the API process.
type Config struct {
	Port              string
	PostgresDSN       string
	StoreTimeout      time.Duration
	ReportTimezone    *time.Location
	KitchenWebhookURL string
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		StoreTimeout:      DefaultStoreTimeout,
		ReportTimezone:    time.UTC,
		KitchenWebhookURL: strings.TrimSpace(os.Getenv("KITCHEN_WEBHOOK_URL")),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
	}
	if raw := strings.TrimSpace(os.Getenv("STORE_TIMEOUT_SECONDS")); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("STORE_TIMEOUT_SECONDS must be a positive integer")
		}
		cfg.StoreTimeout = time.Duration(seconds) * time.Second
	}
	if raw := strings.TrimSpace(os.Getenv("REPORT_TIMEZONE")); raw != "" {
		loc, err := time.LoadLocation(raw)
		if err != nil {
			return Config{}, fmt.Errorf("REPORT_TIMEZONE must be an IANA timezone name: %w", err)
		}
		cfg.ReportTimezone = loc
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
