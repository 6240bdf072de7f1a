package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stigoleg/arc-timer/internal/countdown"
	"github.com/stigoleg/arc-timer/internal/dial"
	"github.com/stigoleg/arc-timer/internal/util"
)

// DefaultDialWidth is the dial width in columns when none is configured.
const DefaultDialWidth = 24

// focus is the element receiving key input.
type focus int

const (
	focusInput focus = iota
	focusDial
)

// Options configures a new Model.
type Options struct {
	// Seconds is the initial text of the duration field.
	Seconds string
	// DialWidth is the preferred dial width in columns.
	DialWidth int
	// Template supplies stroke and colors; its Total is ignored.
	Template countdown.Config
	Version  string
}

// frame caches the rendered dial. The timer's observer marks it stale.
type frame struct {
	stale   bool
	view    string
	renders int
}

// Model holds the timer screen: the duration field, the timer built from it
// and the bookkeeping for the tick loop.
type Model struct {
	Input    DurationInput
	Timer    *countdown.Timer
	Keys     KeyMap
	Help     help.Model
	ShowHelp bool

	focus     focus
	template  countdown.Config
	dialWidth int
	termWidth int
	version   string

	// generation identifies the live tick loop; ticks from older loops
	// are dropped.
	generation  int
	frame       *frame
	unsubscribe func()
}

// InitialModel returns a model with an empty duration field.
func InitialModel() Model {
	return New(Options{})
}

// New returns a model configured by opts.
func New(opts Options) Model {
	if opts.DialWidth <= 0 {
		opts.DialWidth = DefaultDialWidth
	}
	if opts.Template == (countdown.Config{}) {
		opts.Template = countdown.DefaultConfig()
	}

	m := Model{
		Input:     NewDurationInput(opts.Seconds),
		Keys:      DefaultKeys(),
		Help:      NewHelpModel(),
		focus:     focusInput,
		template:  opts.Template,
		dialWidth: opts.DialWidth,
		version:   opts.Version,
		frame:     &frame{stale: true},
	}
	m.setTimer(util.ParseSeconds(m.Input.Value()))
	return m
}

// setTimer replaces the timer with a fresh one for total and invalidates any
// pending tick of the previous timer.
func (m *Model) setTimer(total time.Duration) {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.Timer = countdown.New(m.template.WithTotal(total))
	f := m.frame
	m.unsubscribe = m.Timer.Subscribe(func(countdown.State) { f.stale = true })
	m.generation++
	f.stale = true
	log.Printf("ui: timer configured (total=%s)", total)
}

// syncDuration rebuilds the timer when the field's text parses to a
// different total than the current timer's.
func (m *Model) syncDuration() {
	if total := util.ParseSeconds(m.Input.Value()); total != m.Timer.Config().Total {
		m.setTimer(total)
	}
}

// Close releases the subscription on the current timer.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.generation++
}

// Version returns the version string shown in the help view.
func (m Model) Version() string {
	return m.version
}

// SetVersion sets the version string shown in the help view.
func (m *Model) SetVersion(v string) {
	m.version = v
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// currentDial returns the dial sized for the terminal.
func (m Model) currentDial() dial.Dial {
	width := m.dialWidth
	if m.termWidth > 0 && m.termWidth-4 < width {
		width = m.termWidth - 4
	}
	if width < dial.MinWidth {
		width = dial.MinWidth
	}
	return dial.FromConfig(m.Timer.Config(), width)
}
