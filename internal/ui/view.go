package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stigoleg/arc-timer/internal/countdown"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Arc Timer"))
	b.WriteString("\n\n")
	b.WriteString(m.Input.View())
	b.WriteString("\n\n")

	s := m.Timer.State()
	frameStyle := Current.DialFrame
	if m.focus == focusDial {
		frameStyle = Current.DialFocus
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		frameStyle.Render(dialView(m)),
		buttonView(s.Action()),
	)
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(Current.Status.Render(statusText(m.Timer)))
	b.WriteString("\n\n")

	b.WriteString(m.Help.View(m.Keys.ForScreen(m.focus, s.Action())))
	if m.ShowHelp && m.version != "" {
		b.WriteString("\n" + Current.Help.Render("arctimer "+m.version))
	}

	return b.String()
}

// dialView returns the dial frame, re-rendering it only after the timer
// reported a change or the terminal width changed.
func dialView(m Model) string {
	f := m.frame
	if !f.stale && f.view != "" {
		return f.view
	}
	d := m.currentDial()
	d.LabelStyle = Current.Seconds
	label := strconv.FormatInt(m.Timer.State().Seconds(), 10)
	f.view = d.Render(m.Timer.Fraction(), label)
	f.stale = false
	f.renders++
	return f.view
}

func buttonView(a countdown.Action) string {
	return Current.Button.
		Background(ButtonColor(a)).
		Render(a.Label())
}

func statusText(t *countdown.Timer) string {
	switch t.Phase() {
	case countdown.PhaseRunning:
		return "running"
	case countdown.PhaseExpired:
		if t.Config().Total == 0 {
			return "enter a duration to begin"
		}
		return "done"
	default:
		if t.Paused() {
			return "paused"
		}
		return "ready"
	}
}

// HelpText is the usage summary printed for --help.
func HelpText() string {
	help := `Arc Timer Help

Usage:
  arctimer [flags]

Flags:
  -s, --seconds string   Initial duration in seconds
  -w, --width int        Dial width in columns (8-80)
      --stroke int       Track thickness (1-3)
  -p, --plain            Count down on stdout without the TUI
      --log string       Write a debug log to this file
  -v, --version          Show version information
  -h, --help             Show help message

Keys:
  enter      : Start / Stop / Restart
  tab        : Switch focus between field and dial
  space      : Start / Stop / Restart (dial focused)
  ?          : Toggle full help (dial focused)
  q          : Quit (dial focused)
  esc/ctrl+c : Quit`

	return Current.Help.Render(help)
}
