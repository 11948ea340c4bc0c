package config

import (
	"context"
	"os"
	"strings"
	"time"
)

// defaultDatasetURL points at the published flat order table the dashboard
// was built for. Override with DATASET_URL, or bypass the network entirely
// with DATASET_PATH (see cmd/fetchdata).
const defaultDatasetURL = "https://raw.githubusercontent.com/orlantha/e-commerce/refs/heads/main/dashboard/all_data.csv"

func Port() string {
	return getEnv("PORT", "8080")
}

// DatasetSource returns the local path when one is configured, otherwise the
// network URL.
func DatasetSource() string {
	if path := os.Getenv("DATASET_PATH"); path != "" {
		return path
	}
	return getEnv("DATASET_URL", defaultDatasetURL)
}

func AllowedOrigins() []string {
	raw := getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

// WithTimeout returns a context with a 10s timeout for outbound calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
