package picker

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Mode fixes how many wheel columns a picker owns and which roles they
// get. It also selects the external string grammar for seeding and
// formatting the combined value.
type Mode int

const (
	// ModeTime is an hours + minutes pair ("HH:MM").
	ModeTime Mode = iota
	// ModeHours is a single decimal-hours column ("7,50").
	ModeHours
	// ModeSpin is a single numeric spinner.
	ModeSpin
	// ModeDate is a day + month + year triple ("DD.MM.YYYY").
	ModeDate
	// ModeCustom holds 1–4 columns shaped from the data source.
	ModeCustom
)

var modeNames = []string{"time", "hours", "spin", "date", "custom"}

func (m Mode) String() string {
	if int(m) < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// ParseMode resolves a mode name. Unknown names return an error; use
// SuggestMode to offer the nearest valid name.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("picker: unknown mode %q", s)
}

// SuggestMode returns the valid mode name nearest to s, if any is
// within a small edit distance.
func SuggestMode(s string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	best := ""
	bestDist := 4
	for _, n := range modeNames {
		if d := levenshtein.ComputeDistance(name, n); d < bestDist {
			bestDist = d
			best = n
		}
	}
	return best, best != ""
}
