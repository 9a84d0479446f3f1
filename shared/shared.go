package shared

import (
	"context"
	"strconv"
	"strings"

	"charter/shared/cache"
	"charter/shared/constant"

	"github.com/rs/zerolog/log"
)

func ConvertStringToInt(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}

// ConvertStringToFloat returns nil for an absent value so callers can tell
// "not supplied" apart from an explicit zero.
func ConvertStringToFloat(value string) *float64 {
	if value == constant.Empty {
		return nil
	}

	floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to float")

		return nil
	}

	return &floatValue
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}
