package picker

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tolbek/spindle/internal/wheel"
)

// The external string grammars. Each mode converts a formatted string
// into per-wheel seed values and back; malformed input falls back to a
// well-defined default instead of failing (midnight, today, the domain
// minimum). None of these functions may panic on arbitrary input.

var timePattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*$`)

// parseTimeSeeds reads "HH:MM" (1–2 digit hour, exactly 2-digit
// minute). Anything else seeds midnight.
func parseTimeSeeds(s string) (hour, minute int) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return clampInt(hour, 0, 23), clampInt(minute, 0, 59)
}

func formatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// parseDecimalSeed reads a decimal-hours string ("7,50" or "7.50") and
// returns total minutes. Negative or non-finite input seeds zero; the
// result is capped at maxHours·60.
func parseDecimalSeed(s string, maxHours float64) float64 {
	v, err := wheel.ParseNumber(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		if strings.TrimSpace(s) != "" {
			slog.Debug("invalid decimal-hours value, seeding zero", "value", s)
		}
		v = 0
	}
	minutes := math.Round(v * 60)
	if limit := maxHours * 60; minutes > limit {
		minutes = limit
	}
	return minutes
}

func formatDecimal(minutes float64) string {
	return wheel.FormatNumber(minutes/60, 2)
}

// parseSpinSeed reads a numeric string (comma decimal accepted). A
// non-finite value seeds the domain minimum. A bounded spinner clamps
// to [min, max]; an unbounded one keeps the value itself, growing the
// effective domain.
func parseSpinSeed(s string, min, max float64, unbounded bool) float64 {
	v, err := wheel.ParseNumber(s)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		v = min
	}
	if v < min {
		v = min
	}
	if !unbounded && v > max {
		v = max
	}
	return v
}

var dateLayouts = []string{
	"02.01.2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// parseDateSeeds reads "DD.MM.YYYY", "YYYY-MM-DD", or any generically
// parsable date string. Invalid input defaults to now; the year is
// clamped into the picker's year window and the day to the resolved
// month's day count.
func parseDateSeeds(s string, now time.Time) (day, month, year int) {
	s = strings.TrimSpace(s)
	parsed := now
	if s != "" {
		found := false
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				parsed = t
				found = true
				break
			}
		}
		if !found {
			slog.Debug("unparsable date value, seeding today", "value", s)
		}
	}
	day, month, year = parsed.Day(), int(parsed.Month()), parsed.Year()
	year = clampInt(year, now.Year()-wheel.YearWindow, now.Year()+wheel.YearWindow)
	day = clampInt(day, 1, daysIn(month, year))
	return day, month, year
}

func formatDate(day, month, year int) string {
	return fmt.Sprintf("%02d.%02d.%04d", day, month, year)
}

// daysIn returns the day count of a month. Day zero of the following
// month normalizes to the last day of this one.
func daysIn(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// parseCustomSeeds converts the external custom value into one seed per
// wheel: empty input seeds each wheel's first element (or first key), a
// |-joined string seeds positionally, a JSON array/object string is
// parsed and flattened, and any other non-empty string is a single raw
// seed. The result always has exactly n entries.
func parseCustomSeeds(sources []any, s string, n int) []any {
	s = strings.TrimSpace(s)
	var seeds []any
	switch {
	case s == "":
		// Defaults only; filled below.
	case strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{"):
		seeds = flattenJSONSeeds(s)
	case strings.Contains(s, "|"):
		for _, part := range strings.Split(s, "|") {
			seeds = append(seeds, strings.TrimSpace(part))
		}
	default:
		seeds = []any{s}
	}

	out := make([]any, n)
	for i := 0; i < n; i++ {
		if i < len(seeds) {
			out[i] = seeds[i]
			continue
		}
		var src any
		if i < len(sources) {
			src = sources[i]
		}
		out[i] = defaultSeed(src)
	}
	return out
}

// flattenJSONSeeds parses a JSON array or object string into seeds. An
// array contributes its elements in order; an object contributes its
// keys (sorted, since JSON objects carry no order).
func flattenJSONSeeds(s string) []any {
	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		slog.Debug("invalid JSON custom value, using raw string", "value", s)
		return []any{s}
	}
	switch v := parsed.(type) {
	case []any:
		return v
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		seeds := make([]any, len(keys))
		for i, k := range keys {
			seeds[i] = k
		}
		return seeds
	default:
		return []any{parsed}
	}
}

// defaultSeed picks the first element (or first key) of a custom
// source as the seed when the external value names none.
func defaultSeed(src any) any {
	switch s := src.(type) {
	case []wheel.Option:
		if len(s) > 0 {
			return wheel.Captionize(s[0].Caption)
		}
	case []string:
		if len(s) > 0 {
			return s[0]
		}
	case string:
		parts := strings.SplitN(s, ",", 2)
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	case []float64:
		if len(s) > 0 {
			return s[0]
		}
	case []any:
		if len(s) > 0 {
			return s[0]
		}
	}
	return nil
}

// formatCustom joins the settled wheel values with "|", the inverse of
// the |-joined seed grammar.
func formatCustom(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, "|")
}

func formatValue(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
