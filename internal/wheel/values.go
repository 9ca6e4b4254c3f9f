package wheel

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownRole is returned by Generate for a role it has no table
// rules for. Callers must treat this as "cannot initialize the column".
var ErrUnknownRole = errors.New("wheel: unknown role")

// Option is one entry of an ordered key→value custom source. The
// caption is what the row displays; the value is what the wheel
// reports. A slice keeps the source ordered, which a Go map would not.
type Option struct {
	Caption string
	Value   any
}

// Config is the value table a wheel column is built from. Values and
// Captions (when set) are index-aligned; Captions overrides Format for
// object-shaped custom sources.
type Config struct {
	Values      []any
	Length      int
	ActiveIndex int
	Format      func(v any) string
	Captions    []string
}

// Caption returns the display caption for the i-th value.
func (c *Config) Caption(i int) string {
	if i < 0 || i >= c.Length {
		return ""
	}
	if c.Captions != nil {
		return c.Captions[i]
	}
	return c.Format(c.Values[i])
}

// Generate builds the value table for a role. The seed in p.Current is
// clamped into the role's domain first; the returned ActiveIndex points
// at the row matching the clamped seed. A role with no table rules
// yields a diagnostic log and ErrUnknownRole.
func Generate(role Role, p Params) (*Config, error) {
	p = role.coerce(p)
	switch role {
	case RoleSpin:
		return spinConfig(p), nil
	case RoleDecimal:
		return decimalConfig(p), nil
	case RoleHours:
		return rangeConfig(0, 23, current(p, 0), func(v any) string {
			return fmt.Sprintf("%02d", int(v.(float64)))
		}), nil
	case RoleMinutes:
		return minutesConfig(p), nil
	case RoleDay:
		return rangeConfig(1, 31, current(p, 1), func(v any) string {
			return fmt.Sprintf("%02d", int(v.(float64)))
		}), nil
	case RoleMonth:
		return rangeConfig(1, 12, current(p, 1), func(v any) string {
			return time.Month(int(v.(float64))).String()
		}), nil
	case RoleYear:
		year := time.Now().Year()
		return rangeConfig(year-YearWindow, year+YearWindow, current(p, float64(year)), func(v any) string {
			return strconv.Itoa(int(v.(float64)))
		}), nil
	case RoleCustom:
		return customConfig(p), nil
	default:
		slog.Error("no value table for wheel role", "role", int(role))
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(role))
	}
}

func current(p Params, fallback float64) float64 {
	if cur, ok := toFloat(p.Current); ok {
		return cur
	}
	return fallback
}

// spinConfig builds an arithmetic sequence from Min by Step. A bounded
// spinner stops at Max; an unbounded one stops at seed+3·Step so there
// is always room to scroll past the current value.
func spinConfig(p Params) *Config {
	step := p.Step
	if step <= 0 {
		step = 1
	}
	cur := current(p, p.Min)
	maxv := p.Max
	if p.Unbounded {
		maxv = cur + 3*step
	}
	n := int(math.Floor((maxv-p.Min)/step + floatTol))
	if n < 0 {
		n = 0
	}
	values := make([]any, 0, n+1)
	active := 0
	best := math.Inf(1)
	for i := 0; i <= n; i++ {
		v := p.Min + float64(i)*step
		// Tolerant match: biased step arithmetic (0.1 steps) must not
		// miss the seed. Nearest row wins when nothing matches exactly.
		if d := math.Abs(v - cur); d <= floatTol || d < best {
			active = i
			best = d
		}
		values = append(values, v)
	}
	prec := Precision(step)
	return &Config{
		Values:      values,
		Length:      len(values),
		ActiveIndex: active,
		Format: func(v any) string {
			return FormatNumber(v.(float64), prec)
		},
	}
}

// decimalConfig builds a minute-granularity table over [Min·60, Max·60]
// stepped by whole minutes. Captions render the hour fraction with two
// decimals, so 450 minutes displays as "7,50".
func decimalConfig(p Params) *Config {
	step := math.Round(p.Step)
	if step <= 0 {
		step = 1
	}
	lo := math.Round(p.Min * 60)
	hi := math.Round(p.Max * 60)
	cur := current(p, lo)
	values := make([]any, 0)
	active := 0
	for v := lo; v <= hi+floatTol; v += step {
		if math.Abs(v-cur) <= step/2 {
			active = len(values)
		}
		values = append(values, v)
	}
	return &Config{
		Values:      values,
		Length:      len(values),
		ActiveIndex: active,
		Format: func(v any) string {
			return FormatNumber(v.(float64)/60, 2)
		},
	}
}

// minutesConfig builds 0, Step, ... below 60. When the table is shorter
// than the visible window it is cyclically padded around the active
// value so the column still fills the viewport, and the active index is
// recentered inside the padded table.
func minutesConfig(p Params) *Config {
	step := int(math.Round(p.Step))
	if step <= 0 {
		step = 1
	}
	cur := current(p, 0)
	base := make([]float64, 0, 60/step)
	active := 0
	for v := 0; v < 60; v += step {
		if math.Abs(float64(v)-cur) <= float64(step)/2 {
			active = len(base)
		}
		base = append(base, float64(v))
	}
	format := func(v any) string {
		return fmt.Sprintf("%02d", int(v.(float64)))
	}
	if len(base) >= visibleWindow {
		values := make([]any, len(base))
		for i, v := range base {
			values[i] = v
		}
		return &Config{Values: values, Length: len(values), ActiveIndex: active, Format: format}
	}

	// Cyclic padding: lay the short table out around the active value
	// with the active row landing dead center of the window.
	center := visibleWindow / 2
	values := make([]any, visibleWindow)
	for i := 0; i < visibleWindow; i++ {
		values[i] = base[mod(active+i-center, len(base))]
	}
	return &Config{Values: values, Length: visibleWindow, ActiveIndex: center, Format: format}
}

func rangeConfig(lo, hi int, cur float64, format func(v any) string) *Config {
	values := make([]any, 0, hi-lo+1)
	active := 0
	for v := lo; v <= hi; v++ {
		if math.Abs(float64(v)-cur) < 0.5 {
			active = len(values)
		}
		values = append(values, float64(v))
	}
	return &Config{Values: values, Length: len(values), ActiveIndex: active, Format: format}
}

// customConfig accepts an ordered []Option (captions from keys), a
// plain value slice, or a comma-separated string. The active index is
// found by exact value match, falling back to caption match for
// option sources seeded with a key.
func customConfig(p Params) *Config {
	var (
		values   []any
		captions []string
	)
	switch src := p.Source.(type) {
	case []Option:
		captions = make([]string, len(src))
		for i, opt := range src {
			values = append(values, opt.Value)
			captions[i] = Captionize(opt.Caption)
		}
	case string:
		for _, part := range strings.Split(src, ",") {
			values = append(values, strings.TrimSpace(part))
		}
	case []string:
		for _, s := range src {
			values = append(values, s)
		}
	case []float64:
		for _, f := range src {
			values = append(values, f)
		}
	case []any:
		values = append(values, src...)
	case nil:
		// No source, no rows.
	default:
		values = []any{fmt.Sprint(src)}
	}

	active := 0
	for i, v := range values {
		if valueEqual(v, p.Current) {
			active = i
			break
		}
		if captions != nil {
			if seed, ok := p.Current.(string); ok && strings.EqualFold(captions[i], seed) {
				active = i
				break
			}
		}
	}
	cfg := &Config{
		Values:      values,
		Length:      len(values),
		ActiveIndex: active,
		Format:      func(v any) string { return fmt.Sprint(v) },
		Captions:    captions,
	}
	return cfg
}

// Precision derives display precision from the decimal digits of
// the step: step 0.25 renders two decimals, step 1 renders none.
func Precision(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// FormatNumber renders a float with the given precision using a
// decimal comma, the display convention every numeric column shares.
func FormatNumber(v float64, prec int) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', prec, 64), ".", ",", 1)
}

// ParseNumber is the inverse of FormatNumber: it accepts both comma
// and dot decimal separators.
func ParseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
