package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// largest millisecond count a time.Duration can hold
const maxMillis = math.MaxInt64 / int64(time.Millisecond)

var fieldMillis = [4]int64{3600000, 60000, 1000, 1}

// ParseTimestamp converts "HH:MM:SS,mmm" to a duration. It never fails:
// any structural problem, including a value too large for a duration,
// yields 0.
func ParseTimestamp(s string) time.Duration {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0
	}
	secParts := strings.Split(parts[2], ",")
	if len(secParts) != 2 {
		return 0
	}

	fields := [4]string{parts[0], parts[1], secParts[0], secParts[1]}
	var values [4]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil || v < 0 {
			return 0
		}
		values[i] = v
	}

	var ms int64
	for i, unit := range fieldMillis {
		if values[i] > (maxMillis-ms)/unit {
			return 0
		}
		ms += values[i] * unit
	}
	return time.Duration(ms) * time.Millisecond
}

// FormatTimestamp renders d as "HH:MM:SS,mmm". Negative input is clamped to 0.
func FormatTimestamp(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}

	hours := ms / 3600000
	ms %= 3600000
	minutes := ms / 60000
	ms %= 60000
	seconds := ms / 1000
	ms %= 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, ms)
}
