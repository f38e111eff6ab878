package helpers

import (
	"strings"
	"time"

	"github.com/yigit/enrollment/internal/pkg/logger"
)

// ParseDuration parses a duration string such as "90s" or "1h".
// An empty or invalid value falls back to defaultDuration.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	durationStr = strings.TrimSpace(durationStr)
	if durationStr == "" {
		return defaultDuration
	}

	duration, err := time.ParseDuration(durationStr)
	if err != nil || duration < 0 {
		logger.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
