package wheel

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// Role is the semantic kind of a wheel column. It selects which value
// table Generate builds and which domain the seed value is clamped into.
type Role int

const (
	// RoleSpin is a plain numeric spinner over [Min, Max] by Step.
	RoleSpin Role = iota
	// RoleDecimal is an hours-as-decimal column backed by a
	// minute-granularity table (7.5 hours is stored as 450 minutes).
	RoleDecimal
	// RoleHours is a fixed 0..23 hour column.
	RoleHours
	// RoleMinutes is a 0..59 minute column stepped by Step.
	RoleMinutes
	// RoleDay is a 1..31 day-of-month column.
	RoleDay
	// RoleMonth is a 1..12 month column captioned with month names.
	RoleMonth
	// RoleYear is a year column windowed around the current year.
	RoleYear
	// RoleCustom is a caller-supplied value list (see Params.Source).
	RoleCustom
)

// YearWindow is the number of years the year column extends in each
// direction from the current year.
const YearWindow = 50

func (r Role) String() string {
	switch r {
	case RoleSpin:
		return "spin"
	case RoleDecimal:
		return "decimal"
	case RoleHours:
		return "hours"
	case RoleMinutes:
		return "minutes"
	case RoleDay:
		return "day"
	case RoleMonth:
		return "month"
	case RoleYear:
		return "year"
	case RoleCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Params carries the inputs Generate needs to build a value table.
// Numeric fields are ignored by roles that fix their own domain.
type Params struct {
	// Current is the seed value the column should start on. It is a
	// float64 for every role except custom, where strings are allowed.
	Current any

	Min  float64
	Max  float64
	Step float64

	// Unbounded marks a spin column with no fixed upper bound. The
	// table then runs to seed+3·Step, so a seed beyond Max silently
	// grows the effective domain.
	Unbounded bool

	// Source supplies the rows for a custom column: an ordered []Option,
	// a plain value slice, or a comma-separated string.
	Source any
}

// coerce clamps the seed value into the role's valid domain before the
// table is built, so an out-of-range seed can never produce an
// out-of-range active row.
func (r Role) coerce(p Params) Params {
	cur, ok := toFloat(p.Current)
	if !ok {
		return p
	}
	switch r {
	case RoleSpin:
		if cur < p.Min {
			cur = p.Min
		}
		if !p.Unbounded && cur > p.Max {
			cur = p.Max
		}
	case RoleDecimal:
		cur = clampFloat(cur, p.Min*60, p.Max*60)
	case RoleHours:
		cur = clampFloat(cur, 0, 23)
	case RoleMinutes:
		cur = clampFloat(cur, 0, 59)
	case RoleDay:
		cur = clampFloat(cur, 1, 31)
	case RoleMonth:
		cur = clampFloat(cur, 1, 12)
	case RoleYear:
		year := float64(time.Now().Year())
		cur = clampFloat(cur, year-YearWindow, year+YearWindow)
	}
	p.Current = cur
	return p
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// valueEqual compares two row values, tolerating float drift from
// repeated step addition (0.1+0.1+0.1 must still match 0.3).
func valueEqual(a, b any) bool {
	fa, aok := toFloat(a)
	fb, bok := toFloat(b)
	if aok && bok {
		return math.Abs(fa-fb) <= floatTol
	}
	sa, aok := a.(string)
	sb, bok := b.(string)
	return aok && bok && sa == sb
}

// Captionize turns a camelCase-like identifier into a display caption:
// "firstName" becomes "First Name", "hans" becomes "Hans".
func Captionize(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
