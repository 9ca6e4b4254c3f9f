package wheel

import "time"

// Viewport is the scrollable surface a wheel column is bound to. Any
// host that can report an offset, a size, and scroll/click events can
// drive the engine; the bubbletea host and the test fakes both
// implement it.
type Viewport interface {
	// Offset is the current scroll offset in host units (terminal
	// cells, pixels — the engine only needs it consistent with
	// RowHeight).
	Offset() float64

	// SetOffset moves the scroll position without emitting a scroll
	// event. The wheel uses it for the silent wrap re-centering shift.
	SetOffset(offset float64)

	// ScrollTo moves toward offset, animated or instantly. Animated
	// scrolls emit ordinary scroll events as the offset travels.
	ScrollTo(offset float64, animated bool)

	// Height is the viewport extent in the same units as Offset.
	Height() int

	// RowHeight is the extent of a single row.
	RowHeight() int

	// OnScroll registers the scroll notification callback. Passing nil
	// detaches it.
	OnScroll(fn func())

	// OnRowClick registers the row click callback, keyed by the
	// clicked row's position in the column. Passing nil detaches it.
	OnRowClick(fn func(index int))
}

// CancelFunc cancels a scheduled task. Canceling an already-fired or
// already-canceled task is a no-op.
type CancelFunc func()

// Scheduler runs a function once after a delay. The engine relies on
// cancel-on-reschedule semantics for its snap debounce and on a zero
// delay standing in for "immediately after the current event". Hosts
// decide the clock: the TUI drains due tasks from its tick loop, tests
// fire tasks by hand.
type Scheduler interface {
	After(d time.Duration, fn func()) CancelFunc
}
