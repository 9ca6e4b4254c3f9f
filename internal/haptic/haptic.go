// Package haptic is the tactile-feedback seam between the wheel engine
// and whatever the host can actually do. The engine only sees a tick
// callback; the terminal host maps it to the bell, tests map it to a
// counter, and a native host could map it to real haptics.
package haptic

import "io"

// Ticker receives one Tick per active-row change during a scroll.
// Implementations must be cheap and non-blocking; Tick fires at scroll
// event rate.
type Ticker interface {
	Tick()
}

// Bell rings the terminal bell on every tick.
type Bell struct {
	W io.Writer
}

func (b *Bell) Tick() {
	if b.W != nil {
		io.WriteString(b.W, "\a")
	}
}

// Nop discards ticks. Used when haptics are disabled in config.
type Nop struct{}

func (Nop) Tick() {}

// Compile-time verification of the Ticker implementations
var (
	_ Ticker = (*Bell)(nil)
	_ Ticker = Nop{}
)
