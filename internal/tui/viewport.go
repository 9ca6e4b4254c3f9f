package tui

import (
	"math"
	"time"

	"github.com/tolbek/spindle/internal/wheel"
)

// lerpFactor is how far an animated scroll travels toward its target
// per animation tick. 0.5 at a 30ms tick settles well inside the
// engine's 150ms settle window.
const lerpFactor = 0.5

// columnViewport is the terminal implementation of the wheel's
// scrollable surface. Offsets are measured in cells; animation is a
// target-offset lerp advanced from the tea tick loop.
type columnViewport struct {
	offset    float64
	target    float64
	animating bool

	height    int
	rowHeight int

	// Scroll bounds for non-wrapping columns. Wrapping columns leave
	// them infinite; the engine's re-centering keeps the offset sane.
	minOffset float64
	maxOffset float64

	onScroll func()
	onClick  func(index int)
}

func newColumnViewport(height, rowHeight int) *columnViewport {
	return &columnViewport{
		height:    height,
		rowHeight: rowHeight,
		minOffset: math.Inf(-1),
		maxOffset: math.Inf(1),
	}
}

func (v *columnViewport) Offset() float64 { return v.offset }

func (v *columnViewport) SetOffset(offset float64) {
	// Silent shift (wrap re-centering): keep a running animation
	// aligned by moving its target the same distance.
	if v.animating {
		v.target += offset - v.offset
	}
	v.offset = offset
}

func (v *columnViewport) ScrollTo(offset float64, animated bool) {
	offset = v.clamp(offset)
	if !animated {
		v.offset = offset
		v.animating = false
		v.notify()
		return
	}
	v.target = offset
	v.animating = true
}

func (v *columnViewport) Height() int    { return v.height }
func (v *columnViewport) RowHeight() int { return v.rowHeight }

func (v *columnViewport) OnScroll(fn func())      { v.onScroll = fn }
func (v *columnViewport) OnRowClick(fn func(int)) { v.onClick = fn }

// setBounds pins the scrollable range of a non-wrapping column.
func (v *columnViewport) setBounds(min, max float64) {
	v.minOffset = min
	v.maxOffset = max
}

// scrollBy moves the offset by a whole number of rows, as the key and
// mouse-wheel handlers do.
func (v *columnViewport) scrollBy(rows int) {
	v.animating = false
	v.offset = v.clamp(v.offset + float64(rows*v.rowHeight))
	v.notify()
}

// click reports a click on the row at the given position.
func (v *columnViewport) click(index int) {
	if v.onClick != nil {
		v.onClick(index)
	}
}

// step advances a running animation by one tick, emitting scroll
// events as the offset travels, like a native scroll surface would.
func (v *columnViewport) step() {
	if !v.animating {
		return
	}
	diff := v.target - v.offset
	if math.Abs(diff) < 0.05 {
		v.offset = v.target
		v.animating = false
	} else {
		v.offset += diff * lerpFactor
	}
	v.notify()
}

func (v *columnViewport) clamp(offset float64) float64 {
	if offset < v.minOffset {
		return v.minOffset
	}
	if offset > v.maxOffset {
		return v.maxOffset
	}
	return offset
}

func (v *columnViewport) notify() {
	if v.onScroll != nil {
		v.onScroll()
	}
}

// Compile-time verification that *columnViewport implements the
// wheel's viewport capability
var _ wheel.Viewport = (*columnViewport)(nil)

// tickScheduler is a single-threaded delayed-task scheduler drained
// from the tea tick loop. After returns a cancel func; rescheduling a
// concern means canceling the previous task first, which the engine
// already does.
type tickScheduler struct {
	nextID int
	tasks  map[int]scheduledTask
}

type scheduledTask struct {
	due time.Time
	fn  func()
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{tasks: make(map[int]scheduledTask)}
}

func (s *tickScheduler) After(d time.Duration, fn func()) wheel.CancelFunc {
	id := s.nextID
	s.nextID++
	s.tasks[id] = scheduledTask{due: time.Now().Add(d), fn: fn}
	return func() {
		delete(s.tasks, id)
	}
}

// run fires every task due at now. Tasks scheduled while running (a
// settle arming a follow-up snap) wait for the next drain.
func (s *tickScheduler) run(now time.Time) {
	var due []func()
	for id, task := range s.tasks {
		if !task.due.After(now) {
			due = append(due, task.fn)
			delete(s.tasks, id)
		}
	}
	for _, fn := range due {
		fn()
	}
}

var _ wheel.Scheduler = (*tickScheduler)(nil)
