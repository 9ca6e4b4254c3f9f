package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tolbek/spindle/internal/config"
	"github.com/tolbek/spindle/internal/haptic"
	"github.com/tolbek/spindle/internal/picker"
	"github.com/tolbek/spindle/internal/tui/theme"
	"github.com/tolbek/spindle/internal/wheel"
)

// tickInterval drives scroll animation and the delayed-task scheduler.
const tickInterval = 30 * time.Millisecond

type uiMode int

const (
	normalMode uiMode = iota
	helpMode
)

// session is the state shared between the model and the picker's
// callbacks. Bubble Tea copies the Model by value on every update, so
// anything a wheel callback writes has to live behind this pointer.
type session struct {
	picker    *picker.Picker
	formatted string
}

// Model represents the picker overlay state for the TUI
type Model struct {
	cfg  *config.Config
	keys keyMap
	sess *session

	viewports []*columnViewport
	sched     *tickScheduler

	focus  int
	width  int
	height int
	mode   uiMode

	// Result is the confirmed combined value, read by the command
	// layer after the program exits. Empty when the user cancelled.
	Result    string
	confirmed bool
	quitting  bool
}

type tickMsg time.Time

// termHost wires the picker's host capabilities to the terminal:
// one columnViewport per wheel, one shared tick scheduler.
type termHost struct {
	sched *tickScheduler
	vps   []*columnViewport
}

func (h *termHost) Viewport(index int) wheel.Viewport {
	for len(h.vps) <= index {
		h.vps = append(h.vps, newColumnViewport(wheelRows, 1))
	}
	return h.vps[index]
}

func (h *termHost) Scheduler() wheel.Scheduler { return h.sched }

// InitialModel creates the TUI model and the picker it hosts.
func InitialModel(cfg *config.Config, opts picker.Options) (Model, error) {
	theme.Init(cfg.ColorScheme)

	sess := &session{}
	host := &termHost{sched: newTickScheduler()}

	if cfg.Picker.Haptics {
		bell := &haptic.Bell{W: os.Stdout}
		opts.OnTick = bell.Tick
	}
	opts.OnChange = func(formatted string) {
		sess.formatted = formatted
	}

	p, err := picker.New(opts, host)
	if err != nil {
		return Model{}, err
	}
	sess.picker = p
	sess.formatted = p.Format()

	// Pin the scrollable range of non-wrapping columns; wrapping ones
	// are kept in place by the engine's own re-centering.
	for i, w := range p.Wheels() {
		if !w.Wraps() {
			host.vps[i].setBounds(0, float64(w.Len()-wheelRows))
		}
	}

	return Model{
		cfg:       cfg,
		keys:      newKeyMap(cfg.KeyMappings),
		sess:      sess,
		viewports: host.vps,
		sched:     host.sched,
	}, nil
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// wheels returns the hosted picker's columns.
func (m Model) wheels() []*wheel.Wheel {
	return m.sess.picker.Wheels()
}

// focusedViewport returns the viewport of the focused column.
func (m Model) focusedViewport() *columnViewport {
	if m.focus < 0 || m.focus >= len(m.viewports) {
		return nil
	}
	return m.viewports[m.focus]
}
