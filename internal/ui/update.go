package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stigoleg/arc-timer/internal/countdown"
)

// tickMsg is sent when the countdown timer ticks
type tickMsg struct {
	generation int
}

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width != m.termWidth {
			m.termWidth = msg.Width
			m.frame.stale = true
		}
		m.Help.Width = msg.Width
		return m, nil

	case DurationChangedMsg:
		m.syncDuration()
		return m, nil

	case tickMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		if m.Timer.Tick() {
			return m, tick(m.generation)
		}
		return m, nil

	case tea.KeyMsg:
		return handleKey(msg, m)
	}

	return m, nil
}

func handleKey(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ForceQuit, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Press):
		return press(m)
	case key.Matches(msg, m.Keys.Focus):
		if m.focus == focusInput {
			m.focus = focusDial
			m.Input.Blur()
		} else {
			m.focus = focusInput
			m.Input.Focus()
			m.ShowHelp = false
		}
		return m, nil
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		m.syncDuration()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.Keys.QuitShort):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Toggle):
		return press(m)
	case key.Matches(msg, m.Keys.ToggleHelp):
		m.ShowHelp = !m.ShowHelp
		m.Help.ShowAll = m.ShowHelp
	}
	return m, nil
}

// press applies the control button and, when the timer is now running,
// starts a new tick loop. Bumping the generation retires any tick still in
// flight from before a pause.
func press(m Model) (Model, tea.Cmd) {
	s := m.Timer.Press()
	if !s.Running {
		return m, nil
	}
	m.generation++
	return m, tick(m.generation)
}

func tick(generation int) tea.Cmd {
	return tea.Tick(countdown.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}
