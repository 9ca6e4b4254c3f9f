package picker

import (
	"testing"
	"time"

	"github.com/tolbek/spindle/internal/wheel"
)

// fakeViewport jumps instantly on ScrollTo and never emits events on
// its own; tests drive scrolling by hand.
type fakeViewport struct {
	offset   float64
	onScroll func()
	onClick  func(int)
}

func (v *fakeViewport) Offset() float64          { return v.offset }
func (v *fakeViewport) SetOffset(offset float64) { v.offset = offset }
func (v *fakeViewport) Height() int              { return 7 }
func (v *fakeViewport) RowHeight() int           { return 1 }
func (v *fakeViewport) OnScroll(fn func())       { v.onScroll = fn }
func (v *fakeViewport) OnRowClick(fn func(int))  { v.onClick = fn }

func (v *fakeViewport) ScrollTo(offset float64, animated bool) {
	v.offset = offset
}

type fakeTask struct {
	fn       func()
	fired    bool
	canceled bool
}

type fakeScheduler struct {
	tasks []*fakeTask
}

func (s *fakeScheduler) After(d time.Duration, fn func()) wheel.CancelFunc {
	task := &fakeTask{fn: fn}
	s.tasks = append(s.tasks, task)
	return func() { task.canceled = true }
}

// runAll drains pending tasks, including tasks scheduled while
// draining (a settle that triggers a corrective snap).
func (s *fakeScheduler) runAll() {
	for {
		var next *fakeTask
		for _, t := range s.tasks {
			if !t.fired && !t.canceled {
				next = t
				break
			}
		}
		if next == nil {
			return
		}
		next.fired = true
		next.fn()
	}
}

type fakeHost struct {
	vps   map[int]*fakeViewport
	sched *fakeScheduler
}

func newFakeHost() *fakeHost {
	return &fakeHost{vps: map[int]*fakeViewport{}, sched: &fakeScheduler{}}
}

func (h *fakeHost) Viewport(i int) wheel.Viewport {
	if vp, ok := h.vps[i]; ok {
		return vp
	}
	vp := &fakeViewport{}
	h.vps[i] = vp
	return vp
}

func (h *fakeHost) Scheduler() wheel.Scheduler { return h.sched }

func TestTimePicker(t *testing.T) {
	host := newFakeHost()
	p, err := New(Options{Mode: ModeTime, Value: "9:05"}, host)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Close()

	if len(p.Wheels()) != 2 {
		t.Fatalf("wheels = %d, want 2", len(p.Wheels()))
	}
	if role := p.Wheels()[0].Role(); role != wheel.RoleHours {
		t.Fatalf("column 0 role = %s, want hours", role)
	}
	if !p.Wheels()[0].Wraps() || !p.Wheels()[1].Wraps() {
		t.Fatal("time columns should wrap")
	}
	if got := p.Format(); got != "09:05" {
		t.Fatalf("Format() = %q, want %q", got, "09:05")
	}
}

func TestTimePickerSettleUpdatesValue(t *testing.T) {
	host := newFakeHost()
	var changes []string
	p, err := New(Options{
		Mode:     ModeTime,
		Value:    "9:05",
		OnChange: func(s string) { changes = append(changes, s) },
	}, host)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Close()

	p.Wheels()[1].SnapToValue(30.0, true)
	host.sched.runAll()

	if got := p.Format(); got != "09:30" {
		t.Fatalf("Format() = %q, want %q", got, "09:30")
	}
	if len(changes) != 1 || changes[0] != "09:30" {
		t.Fatalf("change notifications = %v, want [09:30]", changes)
	}
}

func TestHoursPicker(t *testing.T) {
	host := newFakeHost()
	p, err := New(Options{Mode: ModeHours, Value: "7,50"}, host)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Close()

	if len(p.Wheels()) != 1 {
		t.Fatalf("wheels = %d, want 1", len(p.Wheels()))
	}
	if role := p.Wheels()[0].Role(); role != wheel.RoleDecimal {
		t.Fatalf("role = %s, want decimal", role)
	}
	if got := p.Format(); got != "7,50" {
		t.Fatalf("Format() = %q, want %q", got, "7,50")
	}
}

func TestSpinPicker(t *testing.T) {
	host := newFakeHost()
	p, err := New(Options{Mode: ModeSpin, Value: "7,5", Min: 0, Max: 10, Step: 0.5}, host)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Close()

	if got := p.Format(); got != "7,5" {
		t.Fatalf("Format() = %q, want %q", got, "7,5")
	}

	p.Wheels()[0].SnapToValue(3.0, true)
	host.sched.runAll()
	if got := p.Format(); got != "3,0" {
		t.Fatalf("Format() after snap = %q, want %q", got, "3,0")
	}
}

func TestDatePickerClampsDayToMonth(t *testing.T) {
	host := newFakeHost()
	p, err := New(Options{Mode: ModeDate, Value: "31.01.2025"}, host)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Close()

	if got := p.Format(); got != "31.01.2025" {
		t.Fatalf("Format() = %q, want %q", got, "31.01.2025")
	}

	// Moving the month to February makes day 31 invalid: rows past 28
	// are disabled and the day column is re-snapped to the last valid
	// day.
	p.Wheels()[1].SnapToValue(2.0, true)
	host.sched.runAll()

	if got := p.Format(); got != "28.02.2025" {
		t.Fatalf("Format() = %q, want %q", got, "28.02.2025")
	}
	for _, row := range p.Wheels()[0].Rows() {
		if v, ok := row.Value.(float64); ok && v > 28 && !row.Disabled {
			t.Fatalf("day row %v not disabled", row.Value)
		}
	}
}

func TestDatePickerLeapYear(t *testing.T) {
	host := newFakeHost()
	p, err := New(Options{Mode: ModeDate, Value: "29.02.2024"}, host)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Close()

	// 2024 is a leap year; day 29 stays valid at construction.
	if got := p.Format(); got != "29.02.2024" {
		t.Fatalf("Format() = %q, want %q", got, "29.02.2024")
	}

	p.Wheels()[2].SnapToValue(2025.0, true)
	host.sched.runAll()
	if got := p.Format(); got != "28.02.2025" {
		t.Fatalf("Format() = %q, want %q", got, "28.02.2025")
	}
}

func TestCustomPickerDefaultSeed(t *testing.T) {
	host := newFakeHost()
	source := []wheel.Option{
		{Caption: "Anna", Value: 0.0},
		{Caption: "hans", Value: 12.0},
	}
	p, err := New(Options{Mode: ModeCustom, Source: source}, host)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Close()

	// Empty external value seeds the first key; the settled value is
	// the mapped value, not the caption.
	values := p.Values()
	if len(values) != 1 {
		t.Fatalf("values = %v, want one column", values)
	}
	if f, _ := values[0].(float64); f != 0 {
		t.Fatalf("values[0] = %v, want 0", values[0])
	}
	if got := p.Format(); got != "0" {
		t.Fatalf("Format() = %q, want %q", got, "0")
	}
}

func TestCustomPickerMultiColumn(t *testing.T) {
	host := newFakeHost()
	source := []any{
		[]string{"a", "b"},
		[]string{"x", "y"},
	}
	p, err := New(Options{Mode: ModeCustom, Source: source, Value: "b|y"}, host)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Close()

	if len(p.Wheels()) != 2 {
		t.Fatalf("wheels = %d, want 2", len(p.Wheels()))
	}
	if got := p.Format(); got != "b|y" {
		t.Fatalf("Format() = %q, want %q", got, "b|y")
	}
}

func TestCustomPickerColumnCap(t *testing.T) {
	host := newFakeHost()
	source := []any{
		[]string{"a"}, []string{"b"}, []string{"c"}, []string{"d"}, []string{"e"},
	}
	p, err := New(Options{Mode: ModeCustom, Source: source}, host)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer p.Close()

	if len(p.Wheels()) != maxCustomWheels {
		t.Fatalf("wheels = %d, want %d", len(p.Wheels()), maxCustomWheels)
	}
}

func TestCustomPickerNeedsSource(t *testing.T) {
	host := newFakeHost()
	if _, err := New(Options{Mode: ModeCustom}, host); err == nil {
		t.Fatal("New() without a source should fail")
	}
}

func TestWithDefaults(t *testing.T) {
	opts := withDefaults(Options{Mode: ModeHours})
	if opts.Max != 12 || opts.Step != 15 {
		t.Fatalf("hours defaults = max %v step %v, want 12/15", opts.Max, opts.Step)
	}

	opts = withDefaults(Options{Mode: ModeSpin, Min: 5})
	if opts.Step != 1 || opts.Max != 5 {
		t.Fatalf("spin defaults = step %v max %v, want 1/5", opts.Step, opts.Max)
	}

	opts = withDefaults(Options{Mode: ModeTime})
	if opts.Step != 1 {
		t.Fatalf("time default step = %v, want 1", opts.Step)
	}
}
