package picker

import (
	"fmt"
	"math"
	"time"

	"github.com/tolbek/spindle/internal/wheel"
)

// maxCustomWheels caps how many columns a sequence-shaped custom
// source may spread across.
const maxCustomWheels = 4

// Host supplies the per-column scroll surfaces and the delayed-task
// scheduler the wheels run on. The TUI implements it over the
// terminal; tests implement it with fakes.
type Host interface {
	Viewport(index int) wheel.Viewport
	Scheduler() wheel.Scheduler
}

// Options configures a picker.
type Options struct {
	Mode Mode

	// Value is the external string representation seeding the wheels,
	// in the mode's grammar. Malformed values fall back to defaults.
	Value string

	// Numeric domain for spin/hours modes and the minute step for time
	// mode. Zero values take sensible defaults.
	Min  float64
	Max  float64
	Step float64

	// Unbounded removes the spin mode's upper bound.
	Unbounded bool

	// Wrap controls endless scrolling for custom columns. Roles with a
	// naturally cyclic domain (hours, minutes, day, month) always wrap.
	Wrap bool

	// Source shapes custom mode: a single column source, or a []any of
	// per-column sources (capped at four columns).
	Source any

	// OnTick fires when any column's active row changes mid-scroll.
	OnTick func()

	// OnChange fires with the freshly formatted combined value after
	// any column settles.
	OnChange func(formatted string)
}

// Picker owns the wheel columns of one overlay session and aggregates
// their settled values into the mode's combined external value. The
// per-column values array is written only from each wheel's own snap
// callback; no polling, no shared state beyond it.
type Picker struct {
	mode   Mode
	opts   Options
	wheels []*wheel.Wheel
	values []any
}

// New builds the wheel columns for the mode, seeded from the external
// value string. A role configuration yielding zero rows fails the
// whole picker; a partially constructed picker is torn down.
func New(opts Options, host Host) (*Picker, error) {
	opts = withDefaults(opts)
	p := &Picker{mode: opts.Mode, opts: opts}

	specs, err := p.columnSpecs()
	if err != nil {
		return nil, err
	}

	for i, spec := range specs {
		i := i
		w, err := wheel.New(wheel.Options{
			Role:      spec.role,
			Params:    spec.params,
			Wrap:      spec.wrap,
			Viewport:  host.Viewport(i),
			Scheduler: host.Scheduler(),
			OnTick:    opts.OnTick,
			OnSnap: func(e wheel.SnapEvent) {
				p.wheelSettled(i, e)
			},
		})
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("column %d (%s): %w", i, spec.role, err)
		}
		p.wheels = append(p.wheels, w)
		p.values = append(p.values, w.Value())
	}

	if p.mode == ModeDate {
		p.clampDay()
	}
	return p, nil
}

type columnSpec struct {
	role   wheel.Role
	params wheel.Params
	wrap   bool
}

// columnSpecs derives the per-column roles and seed parameters from
// the mode and the external value.
func (p *Picker) columnSpecs() ([]columnSpec, error) {
	opts := p.opts
	switch opts.Mode {
	case ModeTime:
		hour, minute := parseTimeSeeds(opts.Value)
		return []columnSpec{
			{role: wheel.RoleHours, params: wheel.Params{Current: float64(hour)}, wrap: true},
			{role: wheel.RoleMinutes, params: wheel.Params{Current: float64(minute), Step: opts.Step}, wrap: true},
		}, nil
	case ModeHours:
		minutes := parseDecimalSeed(opts.Value, opts.Max)
		return []columnSpec{{
			role:   wheel.RoleDecimal,
			params: wheel.Params{Current: minutes, Min: opts.Min, Max: opts.Max, Step: opts.Step},
		}}, nil
	case ModeSpin:
		seed := parseSpinSeed(opts.Value, opts.Min, opts.Max, opts.Unbounded)
		return []columnSpec{{
			role: wheel.RoleSpin,
			params: wheel.Params{
				Current:   seed,
				Min:       opts.Min,
				Max:       opts.Max,
				Step:      opts.Step,
				Unbounded: opts.Unbounded,
			},
		}}, nil
	case ModeDate:
		day, month, year := parseDateSeeds(opts.Value, time.Now())
		return []columnSpec{
			{role: wheel.RoleDay, params: wheel.Params{Current: float64(day)}, wrap: true},
			{role: wheel.RoleMonth, params: wheel.Params{Current: float64(month)}, wrap: true},
			{role: wheel.RoleYear, params: wheel.Params{Current: float64(year)}},
		}, nil
	case ModeCustom:
		sources := customSources(opts.Source)
		if len(sources) == 0 {
			return nil, fmt.Errorf("picker: custom mode needs a data source")
		}
		seeds := parseCustomSeeds(sources, opts.Value, len(sources))
		specs := make([]columnSpec, len(sources))
		for i, src := range sources {
			specs[i] = columnSpec{
				role:   wheel.RoleCustom,
				params: wheel.Params{Current: seeds[i], Source: src},
				wrap:   opts.Wrap,
			}
		}
		return specs, nil
	default:
		return nil, fmt.Errorf("picker: unknown mode %d", int(opts.Mode))
	}
}

// customSources splits a custom data source into per-column sources: a
// []any is one source per column (capped at four), anything else is a
// single column.
func customSources(src any) []any {
	if src == nil {
		return nil
	}
	if seq, ok := src.([]any); ok {
		if len(seq) > maxCustomWheels {
			seq = seq[:maxCustomWheels]
		}
		out := make([]any, len(seq))
		copy(out, seq)
		return out
	}
	return []any{src}
}

// wheelSettled is the snap aggregation point: the wheel at position i
// settled on e.Value. Date mode additionally re-clamps the day column
// against the newly selected month/year.
func (p *Picker) wheelSettled(i int, e wheel.SnapEvent) {
	if i < 0 || i >= len(p.values) {
		return
	}
	p.values[i] = e.Value
	if p.mode == ModeDate {
		p.clampDay()
	}
	if p.opts.OnChange != nil {
		p.opts.OnChange(p.Format())
	}
}

// clampDay recomputes the day count for the selected month/year,
// disables day rows beyond it, and corrects an overshooting day by
// re-snapping to the last valid day. Corrective, not an error: the
// selection is silently repaired.
func (p *Picker) clampDay() {
	if len(p.wheels) < 3 {
		return
	}
	day := asInt(p.values[0])
	month := asInt(p.values[1])
	year := asInt(p.values[2])
	count := daysIn(month, year)

	dayWheel := p.wheels[0]
	dayWheel.DisableAbove(float64(count))
	if day > count {
		dayWheel.SnapToValue(float64(count), true)
	}
}

// Format renders the combined value from the settled per-column
// values, never from a value mid-scroll.
func (p *Picker) Format() string {
	switch p.mode {
	case ModeTime:
		return formatTime(asInt(p.values[0]), asInt(p.values[1]))
	case ModeHours:
		return formatDecimal(asFloat(p.values[0]))
	case ModeSpin:
		return wheel.FormatNumber(asFloat(p.values[0]), wheel.Precision(p.opts.Step))
	case ModeDate:
		return formatDate(asInt(p.values[0]), asInt(p.values[1]), asInt(p.values[2]))
	case ModeCustom:
		return formatCustom(p.values)
	default:
		return ""
	}
}

// Mode returns the picker's mode.
func (p *Picker) Mode() Mode { return p.mode }

// Wheels exposes the owned columns for rendering.
func (p *Picker) Wheels() []*wheel.Wheel { return p.wheels }

// Values returns a copy of the per-column settled values.
func (p *Picker) Values() []any {
	out := make([]any, len(p.values))
	copy(out, p.values)
	return out
}

// Close tears down every column. The picker is dead afterwards.
func (p *Picker) Close() {
	for _, w := range p.wheels {
		w.Close()
	}
}

// withDefaults fills the zero-value numeric options per mode.
func withDefaults(opts Options) Options {
	switch opts.Mode {
	case ModeTime:
		if opts.Step <= 0 {
			opts.Step = 1
		}
	case ModeHours:
		if opts.Max <= opts.Min {
			opts.Max = opts.Min + 12
		}
		if opts.Step <= 0 {
			opts.Step = 15
		}
	case ModeSpin:
		if opts.Step <= 0 {
			opts.Step = 1
		}
		if !opts.Unbounded && opts.Max < opts.Min {
			opts.Max = opts.Min
		}
	}
	return opts
}

func asInt(v any) int {
	return int(math.Round(asFloat(v)))
}

func asFloat(v any) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	if n, ok := v.(int); ok {
		return float64(n)
	}
	return 0
}
