package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// isoDuration matches the ISO 8601 durations used by contentDetails.duration.
var isoDuration = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// helperFunctions returns the functions available to every expression.
// Names avoid expr's operators (contains, startsWith) and builtins (lower, now).
func helperFunctions() map[string]any {
	return map[string]any{
		"icontains":       icontains,
		"iprefix":         iprefix,
		"num":             num,
		"ageDays":         ageDays,
		"durationSeconds": durationSeconds,
	}
}

func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

// icontains is a case-insensitive substring test.
func icontains(str, substr any) bool {
	return strings.Contains(strings.ToLower(text(str)), strings.ToLower(text(substr)))
}

// iprefix is a case-insensitive prefix test.
func iprefix(str, prefix any) bool {
	return strings.HasPrefix(strings.ToLower(text(str)), strings.ToLower(text(prefix)))
}

// num converts the API's string counters ("viewCount": "1234") to numbers.
// Anything unparsable is 0.
func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ageDays returns the whole days elapsed since an RFC 3339 timestamp such
// as snippet.publishedAt, or -1 when it cannot be parsed.
func ageDays(v any) int {
	t, err := time.Parse(time.RFC3339, text(v))
	if err != nil {
		return -1
	}
	return int(time.Since(t).Hours() / 24)
}

// durationSeconds converts an ISO 8601 duration ("PT4M13S") to seconds,
// or -1 when it cannot be parsed.
func durationSeconds(v any) int {
	m := isoDuration.FindStringSubmatch(text(v))
	if m == nil || text(v) == "P" || text(v) == "PT" {
		return -1
	}
	multipliers := []int{86400, 3600, 60, 1}
	total := 0
	for i, mult := range multipliers {
		if m[i+1] == "" {
			continue
		}
		n, _ := strconv.Atoi(m[i+1])
		total += n * mult
	}
	return total
}
