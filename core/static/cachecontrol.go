package static

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// defaultCacheControl is one year, the conventional "immutable asset"
// lifetime.
const defaultCacheControl = "public, max-age=31536000"

// lifetimeUnits maps spec suffixes to durations. "d", "w" and "y" are
// calendar-ish units the stdlib duration parser does not accept.
var lifetimeUnits = map[string]time.Duration{
	"ms": time.Millisecond,
	"s":  time.Second,
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  24 * time.Hour,
	"w":  7 * 24 * time.Hour,
	"y":  365 * 24 * time.Hour,
}

// parseLifetime parses a cache lifetime spec. A bare number is taken
// as milliseconds; otherwise the spec is a non-negative number
// followed by one of "ms", "s", "m", "h", "d", "w" or "y".
func parseLifetime(spec string) (time.Duration, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, fmt.Errorf("empty cache lifetime")
	}

	i := len(spec)
	for i > 0 && !isDigit(spec[i-1]) {
		i--
	}
	num, unit := spec[:i], spec[i:]

	n, err := strconv.ParseUint(num, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid cache lifetime %q", spec)
	}

	if unit == "" {
		return time.Duration(n) * time.Millisecond, nil
	}
	u, ok := lifetimeUnits[unit]
	if !ok {
		return 0, fmt.Errorf("invalid cache lifetime unit %q in %q", unit, spec)
	}
	return time.Duration(n) * u, nil
}

func formatCacheControl(d time.Duration) string {
	return fmt.Sprintf("public, max-age=%d", int64(d.Seconds()))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
