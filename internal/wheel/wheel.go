package wheel

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

const (
	// visibleWindow is the row count of the selection viewport.
	visibleWindow = 7

	// snapDebounce is the scroll-inactivity delay before the column
	// snaps to the nearest row.
	snapDebounce = 75 * time.Millisecond

	// settleDelay is how long an animated scroll is given to finish
	// before the settle recompute runs.
	settleDelay = 150 * time.Millisecond

	// edgeFillers is the disabled padding on each end of a
	// non-wrapping column, so the selection window never shows a
	// missing row at the domain edge.
	edgeFillers = 3

	floatTol = 1e-9
)

// ErrNoRows is returned when a role configuration yields an empty value
// table. The column must not be displayed.
var ErrNoRows = errors.New("wheel: config produced no rows")

// SnapEvent is delivered to the snap callback every time the column
// settles on a row. It is the engine's only notification channel.
type SnapEvent struct {
	Role  Role
	Value any
	// Index is the real (base) index of the settled row.
	Index int
	Wheel *Wheel
}

// Options configures a new wheel column.
type Options struct {
	Role   Role
	Params Params

	// Wrap replicates the base rows into consecutive blocks so the
	// column appears to scroll forever.
	Wrap bool

	Viewport  Viewport
	Scheduler Scheduler

	// OnSnap is invoked after every settle with the snapped value.
	OnSnap func(SnapEvent)

	// OnTick is invoked when the active row changes mid-scroll,
	// typically wired to a haptic shim.
	OnTick func()
}

// Wheel is the virtual-scroll/snap engine for one picker column. It
// owns its rows, tracks a virtual index across the replicated blocks,
// debounces scroll activity into snap animations, and reports settled
// values through the snap callback. All state is single-threaded; the
// host delivers scroll events and scheduler firings from one loop.
type Wheel struct {
	*List

	role  Role
	cfg   *Config
	vp    Viewport
	sched Scheduler

	wrap        bool
	baseCount   int
	blocks      int
	middleBlock int

	rowHeight    int
	visibleRows  int
	centerOffset int
	blockSize    float64

	virtualIndex int
	realIndex    int
	activeValue  any

	debounceCancel CancelFunc
	settleCancel   CancelFunc
	snapping       bool
	closed         bool
	ready          bool

	onSnap func(SnapEvent)
	onTick func()
}

// New builds a wheel column from its role configuration, populates the
// replicated row set, and performs the initial non-animated scroll so
// the seed row lands in the selection window.
func New(opts Options) (*Wheel, error) {
	cfg, err := Generate(opts.Role, opts.Params)
	if err != nil {
		return nil, err
	}
	if cfg.Length == 0 {
		return nil, fmt.Errorf("%w (role %s)", ErrNoRows, opts.Role)
	}
	if opts.Viewport == nil || opts.Scheduler == nil {
		return nil, errors.New("wheel: viewport and scheduler are required")
	}

	w := &Wheel{
		List:   NewList(),
		role:   opts.Role,
		cfg:    cfg,
		vp:     opts.Viewport,
		sched:  opts.Scheduler,
		wrap:   opts.Wrap,
		onSnap: opts.OnSnap,
		onTick: opts.OnTick,
	}
	w.measure()
	w.buildRows()

	start := w.virtualFor(cfg.ActiveIndex, w.middleBlock)
	w.vp.SetOffset(float64(start-w.centerOffset) * float64(w.rowHeight))
	w.sync()
	w.ready = true

	w.vp.OnScroll(w.handleScroll)
	w.vp.OnRowClick(w.handleClick)
	return w, nil
}

func (w *Wheel) measure() {
	w.rowHeight = w.vp.RowHeight()
	if w.rowHeight <= 0 {
		w.rowHeight = 1
	}
	w.visibleRows = int(math.Round(float64(w.vp.Height()) / float64(w.rowHeight)))
	if w.visibleRows < 1 {
		w.visibleRows = 1
	}
	w.centerOffset = w.visibleRows / 2
	w.baseCount = w.cfg.Length
	w.blockSize = float64(w.baseCount * w.rowHeight)
}

// buildRows lays out the row arena. Wrap mode replicates the base rows
// into enough consecutive blocks that a full block always sits above
// and below the visible window; non-wrap mode pads each end with
// disabled fillers instead.
func (w *Wheel) buildRows() {
	if w.wrap {
		w.blocks = int(math.Ceil(float64(w.visibleRows+2*w.baseCount) / float64(w.baseCount)))
		if w.blocks < 3 {
			w.blocks = 3
		}
		w.middleBlock = w.blocks / 2
		for b := 0; b < w.blocks; b++ {
			for i := 0; i < w.baseCount; i++ {
				w.Add(w.cfg.Values[i], w.cfg.Caption(i), b*w.baseCount+i)
			}
		}
		return
	}

	w.blocks = 1
	w.middleBlock = 0
	for i := 0; i < edgeFillers; i++ {
		row := w.Add(nil, "", i)
		row.Filler = true
		row.Disabled = true
	}
	for i := 0; i < w.baseCount; i++ {
		w.Add(w.cfg.Values[i], w.cfg.Caption(i), edgeFillers+i)
	}
	for i := 0; i < edgeFillers; i++ {
		row := w.Add(nil, "", edgeFillers+w.baseCount+i)
		row.Filler = true
		row.Disabled = true
	}
}

// virtualFor maps a base index to its virtual index inside a block.
func (w *Wheel) virtualFor(baseIndex, block int) int {
	if w.wrap {
		return block*w.baseCount + baseIndex
	}
	return edgeFillers + baseIndex
}

// baseFor maps a virtual index back to its base index. The double
// modulo keeps negative intermediates in range.
func (w *Wheel) baseFor(virtualIndex int) int {
	if w.wrap {
		return mod(virtualIndex, w.baseCount)
	}
	return mod(virtualIndex-edgeFillers, w.baseCount)
}

// handleScroll runs at native event rate while the user scrolls. It
// must stay cheap and must never block or panic.
func (w *Wheel) handleScroll() {
	if w.closed {
		return
	}
	if w.wrap {
		w.recenter()
	}
	w.sync()
	if w.snapping {
		// An animated snap is in flight; its own settle supersedes the
		// debounce path.
		return
	}
	if w.debounceCancel != nil {
		w.debounceCancel()
	}
	w.debounceCancel = w.sched.After(snapDebounce, w.snapToNearest)
}

// recenter silently shifts the scroll offset by exactly one block size
// when it drifts out of the middle block's band. Block contents are
// identical, so the jump is invisible; this is what makes wrap feel
// endless without unbounded rows.
func (w *Wheel) recenter() {
	offset := w.vp.Offset()
	lower := (float64(w.middleBlock) - 0.5) * w.blockSize
	upper := (float64(w.middleBlock) + 0.5) * w.blockSize
	shifted := offset
	for shifted < lower {
		shifted += w.blockSize
	}
	for shifted > upper {
		shifted -= w.blockSize
	}
	if shifted != offset {
		w.vp.SetOffset(shifted)
	}
}

// sync recomputes the active virtual/real indices from the continuous
// scroll offset and restyles every row relative to the center.
func (w *Wheel) sync() {
	raw := w.vp.Offset() / float64(w.rowHeight)
	total := w.Len()
	vi := int(math.Round(raw)) + w.centerOffset
	if vi < 0 {
		vi = 0
	}
	if vi > total-1 {
		vi = total - 1
	}

	prevReal := w.realIndex
	w.virtualIndex = vi
	w.realIndex = w.baseFor(vi)
	w.activeValue = w.cfg.Values[w.realIndex]

	for _, row := range w.Rows() {
		off := row.Index - vi
		row.Offset = off
		row.Hidden = off < -w.centerOffset || off > w.centerOffset
		row.Active = off == 0 && !row.Filler
	}

	if w.ready && w.realIndex != prevReal && w.onTick != nil {
		w.onTick()
	}
}

// snapToNearest is the debounce timer target: settle on whatever row is
// nearest the current continuous offset.
func (w *Wheel) snapToNearest() {
	if w.closed || w.snapping {
		return
	}
	raw := w.vp.Offset() / float64(w.rowHeight)
	vi := int(math.Round(raw)) + w.centerOffset
	w.scrollToVirtual(vi, true)
}

// handleClick snaps straight to the clicked row, bypassing the
// debounce. Filler and disabled rows are not valid targets.
func (w *Wheel) handleClick(index int) {
	if w.closed || w.snapping {
		return
	}
	row, ok := w.At(index)
	if !ok || row.Filler || row.Disabled {
		return
	}
	w.scrollToVirtual(index, true)
}

// SnapToValue animates to the row holding value. Among the value's
// occurrences across all blocks the one nearest the current position
// wins, minimizing perceptible travel. A value absent from the base
// rows is a silent no-op; a snap already in flight suppresses the call.
func (w *Wheel) SnapToValue(value any, smooth bool) {
	if w.closed || w.snapping {
		return
	}
	base := -1
	for i := 0; i < w.baseCount; i++ {
		if valueEqual(w.cfg.Values[i], value) {
			base = i
			break
		}
	}
	if base < 0 {
		slog.Debug("snap target not in wheel", "role", w.role.String(), "value", value)
		return
	}

	target := w.virtualFor(base, 0)
	if w.wrap {
		bestDist := math.MaxInt
		for b := 0; b < w.blocks; b++ {
			vi := w.virtualFor(base, b)
			if d := abs(vi - w.virtualIndex); d < bestDist {
				bestDist = d
				target = vi
			}
		}
	}
	w.scrollToVirtual(target, smooth)
}

// scrollToVirtual is the single funnel every snap resolution goes
// through: clamp, convert to an offset, scroll, and schedule the
// settle recompute.
func (w *Wheel) scrollToVirtual(virtualIndex int, smooth bool) {
	if virtualIndex < 0 {
		virtualIndex = 0
	}
	if virtualIndex > w.Len()-1 {
		virtualIndex = w.Len() - 1
	}
	w.snapping = true
	if w.debounceCancel != nil {
		w.debounceCancel()
		w.debounceCancel = nil
	}
	w.vp.ScrollTo(float64(virtualIndex-w.centerOffset)*float64(w.rowHeight), smooth)

	delay := time.Duration(0)
	if smooth {
		delay = settleDelay
	}
	w.settleCancel = w.sched.After(delay, w.settle)
}

// settle finishes a snap: recompute from the final offset, re-center,
// release the snap guard, and notify the owner exactly once.
func (w *Wheel) settle() {
	if w.closed {
		return
	}
	if w.wrap {
		w.recenter()
	}
	w.sync()
	w.snapping = false
	if w.onSnap != nil {
		w.onSnap(SnapEvent{Role: w.role, Value: w.activeValue, Index: w.realIndex, Wheel: w})
	}
}

// DisableAbove disables every row whose numeric value exceeds limit and
// re-enables the rest. Used by the date orchestrator to gray out day
// rows past the month's day count.
func (w *Wheel) DisableAbove(limit float64) {
	for _, row := range w.Rows() {
		if row.Filler {
			continue
		}
		v, ok := toFloat(row.Value)
		row.Disabled = ok && v > limit+floatTol
	}
}

// Close tears the column down: timers canceled, listeners detached. A
// closed wheel has no further externally visible effects; in
// particular the snap callback can never fire again.
func (w *Wheel) Close() {
	if w.closed {
		return
	}
	w.closed = true
	if w.debounceCancel != nil {
		w.debounceCancel()
		w.debounceCancel = nil
	}
	if w.settleCancel != nil {
		w.settleCancel()
		w.settleCancel = nil
	}
	w.vp.OnScroll(nil)
	w.vp.OnRowClick(nil)
}

// Role returns the column's role.
func (w *Wheel) Role() Role { return w.role }

// Wraps reports whether the column scrolls endlessly.
func (w *Wheel) Wraps() bool { return w.wrap }

// Value returns the current logical value. Mid-scroll it tracks the
// row under the center; only the snap callback marks it settled.
func (w *Wheel) Value() any { return w.activeValue }

// RealIndex returns the base index of the active row.
func (w *Wheel) RealIndex() int { return w.realIndex }

// VirtualIndex returns the active position within the replicated rows.
func (w *Wheel) VirtualIndex() int { return w.virtualIndex }

// Config exposes the generated value table.
func (w *Wheel) Config() *Config { return w.cfg }

// Snapping reports whether a snap animation is in flight.
func (w *Wheel) Snapping() bool { return w.snapping }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
