package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		// Fire due snap timers and settles, then advance animations.
		m.sched.run(time.Time(msg))
		for _, vp := range m.viewports {
			vp.step()
		}
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == helpMode {
		// Any bound key leaves the help screen.
		switch {
		case key.Matches(msg, m.keys.ShowHelp),
			key.Matches(msg, m.keys.Quit),
			key.Matches(msg, m.keys.Confirm),
			msg.String() == " ":
			m.mode = normalMode
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit(false)

	case key.Matches(msg, m.keys.Confirm):
		return m.quit(true)

	case key.Matches(msg, m.keys.ShowHelp):
		m.mode = helpMode

	case key.Matches(msg, m.keys.ScrollUp):
		if vp := m.focusedViewport(); vp != nil {
			vp.scrollBy(-1)
		}
	case key.Matches(msg, m.keys.ScrollDown):
		if vp := m.focusedViewport(); vp != nil {
			vp.scrollBy(1)
		}
	case key.Matches(msg, m.keys.PageUp):
		if vp := m.focusedViewport(); vp != nil {
			vp.scrollBy(-wheelRows + 1)
		}
	case key.Matches(msg, m.keys.PageDown):
		if vp := m.focusedViewport(); vp != nil {
			vp.scrollBy(wheelRows - 1)
		}

	case key.Matches(msg, m.keys.PrevWheel):
		if m.focus > 0 {
			m.focus--
		}
	case key.Matches(msg, m.keys.NextWheel):
		if m.focus < len(m.viewports)-1 {
			m.focus++
		}
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	col, row, ok := m.hitTest(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if ok {
			m.focus = col
		}
		if vp := m.focusedViewport(); vp != nil {
			vp.scrollBy(-1)
		}
	case tea.MouseButtonWheelDown:
		if ok {
			m.focus = col
		}
		if vp := m.focusedViewport(); vp != nil {
			vp.scrollBy(1)
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || !ok {
			return m, nil
		}
		m.focus = col
		// Translate the clicked visible row to its virtual index.
		w := m.wheels()[col]
		virtual := w.VirtualIndex() + row - wheelRows/2
		m.viewports[col].click(virtual)
	}

	return m, nil
}

func (m Model) quit(confirmed bool) (tea.Model, tea.Cmd) {
	m.quitting = true
	m.confirmed = confirmed
	if confirmed {
		m.Result = m.sess.picker.Format()
	}
	m.sess.picker.Close()
	return m, tea.Quit
}
