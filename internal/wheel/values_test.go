package wheel

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestSpinTableBounds(t *testing.T) {
	cfg, err := Generate(RoleSpin, Params{Current: 7.5, Min: 0, Max: 10, Step: 0.5})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if cfg.Length != 21 {
		t.Fatalf("spin 0..10 step 0.5: length = %d, want 21", cfg.Length)
	}
	if cfg.ActiveIndex != 15 {
		t.Fatalf("active index = %d, want 15 (value 7.5)", cfg.ActiveIndex)
	}
	if got := cfg.Format(cfg.Values[cfg.ActiveIndex]); got != "7,5" {
		t.Fatalf("format(7.5) = %q, want %q", got, "7,5")
	}
}

func TestSpinTableFloatTolerance(t *testing.T) {
	// 0.1+0.1+0.1 != 0.3 in floats; the lookup must still find it.
	cfg, err := Generate(RoleSpin, Params{Current: 0.3, Min: 0, Max: 1, Step: 0.1})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if cfg.ActiveIndex != 3 {
		t.Fatalf("active index = %d, want 3", cfg.ActiveIndex)
	}
}

func TestSpinUnboundedGrowsWithSeed(t *testing.T) {
	cfg, err := Generate(RoleSpin, Params{Current: 100.0, Min: 0, Step: 1, Unbounded: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	// Table runs to seed+3·step.
	last, _ := toFloat(cfg.Values[cfg.Length-1])
	if last != 103 {
		t.Fatalf("last value = %v, want 103", last)
	}
	if got, _ := toFloat(cfg.Values[cfg.ActiveIndex]); got != 100 {
		t.Fatalf("active value = %v, want 100", got)
	}
}

func TestSpinClampsSeedIntoDomain(t *testing.T) {
	cfg, err := Generate(RoleSpin, Params{Current: 99.0, Min: 0, Max: 10, Step: 1})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got, _ := toFloat(cfg.Values[cfg.ActiveIndex]); got != 10 {
		t.Fatalf("active value = %v, want clamped 10", got)
	}
}

func TestDecimalTable(t *testing.T) {
	cfg, err := Generate(RoleDecimal, Params{Current: 450.0, Min: 0, Max: 12, Step: 15})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got, _ := toFloat(cfg.Values[cfg.ActiveIndex]); got != 450 {
		t.Fatalf("active value = %v minutes, want 450", got)
	}
	if got := cfg.Format(450.0); got != "7,50" {
		t.Fatalf("format(450) = %q, want %q", got, "7,50")
	}
	if first, _ := toFloat(cfg.Values[0]); first != 0 {
		t.Fatalf("first value = %v, want 0", first)
	}
	if last, _ := toFloat(cfg.Values[cfg.Length-1]); last != 720 {
		t.Fatalf("last value = %v, want 720 (12 hours)", last)
	}
}

func TestHoursTable(t *testing.T) {
	cfg, err := Generate(RoleHours, Params{Current: 99.0})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if cfg.Length != 24 {
		t.Fatalf("length = %d, want 24", cfg.Length)
	}
	if cfg.ActiveIndex != 23 {
		t.Fatalf("active index = %d, want clamped 23", cfg.ActiveIndex)
	}
	if got := cfg.Format(cfg.Values[9]); got != "09" {
		t.Fatalf("format(9) = %q, want %q", got, "09")
	}
}

func TestMinutesCyclicPadding(t *testing.T) {
	cfg, err := Generate(RoleMinutes, Params{Current: 0.0, Step: 20})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	// Base table [0 20 40] is padded to the 7-row window with the
	// active value recentered.
	if cfg.Length != 7 {
		t.Fatalf("length = %d, want 7", cfg.Length)
	}
	if cfg.ActiveIndex != 3 {
		t.Fatalf("active index = %d, want centered 3", cfg.ActiveIndex)
	}
	if got, _ := toFloat(cfg.Values[cfg.ActiveIndex]); got != 0 {
		t.Fatalf("active value = %v, want 0", got)
	}
	want := []float64{0, 20, 40, 0, 20, 40, 0}
	for i, w := range want {
		if got, _ := toFloat(cfg.Values[i]); got != w {
			t.Fatalf("values[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestMinutesFullTableNotPadded(t *testing.T) {
	cfg, err := Generate(RoleMinutes, Params{Current: 45.0, Step: 5})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if cfg.Length != 12 {
		t.Fatalf("length = %d, want 12", cfg.Length)
	}
	if got, _ := toFloat(cfg.Values[cfg.ActiveIndex]); got != 45 {
		t.Fatalf("active value = %v, want 45", got)
	}
}

func TestMonthCaptions(t *testing.T) {
	cfg, err := Generate(RoleMonth, Params{Current: 2.0})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := cfg.Caption(0); got != "January" {
		t.Fatalf("caption(0) = %q, want %q", got, "January")
	}
	if got, _ := toFloat(cfg.Values[cfg.ActiveIndex]); got != 2 {
		t.Fatalf("active value = %v, want 2", got)
	}
}

func TestYearWindow(t *testing.T) {
	year := time.Now().Year()
	cfg, err := Generate(RoleYear, Params{Current: float64(year + 500)})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if cfg.Length != 2*YearWindow+1 {
		t.Fatalf("length = %d, want %d", cfg.Length, 2*YearWindow+1)
	}
	if got, _ := toFloat(cfg.Values[cfg.ActiveIndex]); got != float64(year+YearWindow) {
		t.Fatalf("active value = %v, want clamped %d", got, year+YearWindow)
	}
}

func TestCustomOptionSource(t *testing.T) {
	source := []Option{
		{Caption: "Anna", Value: 0.0},
		{Caption: "hans", Value: 12.0},
	}
	cfg, err := Generate(RoleCustom, Params{Current: "Anna", Source: source})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if cfg.Length != 2 {
		t.Fatalf("length = %d, want 2", cfg.Length)
	}
	if cfg.Captions[0] != "Anna" || cfg.Captions[1] != "Hans" {
		t.Fatalf("captions = %v, want [Anna Hans]", cfg.Captions)
	}
	if cfg.ActiveIndex != 0 {
		t.Fatalf("active index = %d, want 0 (seed matches first key)", cfg.ActiveIndex)
	}
	if got, _ := toFloat(cfg.Values[0]); got != 0 {
		t.Fatalf("values[0] = %v, want 0", got)
	}
}

func TestCustomCommaStringSource(t *testing.T) {
	cfg, err := Generate(RoleCustom, Params{Current: "b", Source: "a, b ,c"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if cfg.Length != 3 {
		t.Fatalf("length = %d, want 3", cfg.Length)
	}
	if cfg.ActiveIndex != 1 {
		t.Fatalf("active index = %d, want 1", cfg.ActiveIndex)
	}
	if got := cfg.Caption(2); got != "c" {
		t.Fatalf("caption(2) = %q, want %q", got, "c")
	}
}

func TestUnknownRole(t *testing.T) {
	_, err := Generate(Role(99), Params{})
	if !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("Generate(unknown role) error = %v, want ErrUnknownRole", err)
	}
}

func TestPrecision(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{1, 0},
		{0.5, 1},
		{0.25, 2},
		{0.1, 1},
		{5, 0},
	}
	for _, tt := range tests {
		if got := Precision(tt.step); got != tt.want {
			t.Errorf("Precision(%v) = %d, want %d", tt.step, got, tt.want)
		}
	}
}

func TestFormatParseNumberRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 7.5, -2.25, 100} {
		s := FormatNumber(v, 2)
		got, err := ParseNumber(s)
		if err != nil {
			t.Fatalf("ParseNumber(%q) error = %v", s, err)
		}
		if math.Abs(got-v) > 1e-9 {
			t.Fatalf("round trip %v -> %q -> %v", v, s, got)
		}
	}
}

func TestCaptionize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hans", "Hans"},
		{"Anna", "Anna"},
		{"firstName", "First Name"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Captionize(tt.in); got != tt.want {
			t.Errorf("Captionize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
