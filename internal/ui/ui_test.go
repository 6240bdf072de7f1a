package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stigoleg/arc-timer/internal/countdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// tickN delivers n ticks of the live loop.
func tickN(m Model, n int) Model {
	for i := 0; i < n; i++ {
		m, _ = Update(tickMsg{generation: m.generation}, m)
	}
	return m
}

// collect runs cmd and returns the messages it produces, expanding batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestInitialModel(t *testing.T) {
	m := InitialModel()

	if m.focus != focusInput {
		t.Error("expected initial focus on the duration field")
	}
	if m.Input.Value() != "" {
		t.Error("expected initial input to be empty")
	}
	if m.Timer.Config().Total != 0 {
		t.Errorf("expected zero total, got %v", m.Timer.Config().Total)
	}
	if m.Timer.IsRunning() {
		t.Error("expected timer to be stopped")
	}
}

func TestNewParsesSeconds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "valid", input: "5", want: 5 * time.Second},
		{name: "empty", input: "", want: 0},
		{name: "garbage", input: "abc", want: 0},
		{name: "negative", input: "-4", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(Options{Seconds: tt.input})
			if got := m.Timer.Config().Total; got != tt.want {
				t.Errorf("total = %v, want %v", got, tt.want)
			}
			if got := m.Timer.State().Remaining; got != tt.want {
				t.Errorf("remaining = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEndToEnd(t *testing.T) {
	m := New(Options{Seconds: "5"})
	require.Equal(t, 5000*time.Millisecond, m.Timer.Config().Total)

	m, cmd := Update(enterKey, m)
	require.NotNil(t, cmd, "start should schedule a tick")
	require.True(t, m.Timer.IsRunning())
	assert.Equal(t, countdown.ActionStop, m.Timer.State().Action())

	m = tickN(m, 50)

	s := m.Timer.State()
	assert.Equal(t, time.Duration(0), s.Remaining)
	assert.False(t, s.Running)
	assert.Equal(t, int64(0), s.Seconds())
	assert.Equal(t, countdown.ActionRestart, s.Action())
	assert.Equal(t, defaultColors.Go, ButtonColor(s.Action()))

	view := View(m)
	assert.Contains(t, view, "Restart")
	assert.Contains(t, view, "done")

	m, cmd = Update(enterKey, m)
	require.NotNil(t, cmd)
	s = m.Timer.State()
	assert.Equal(t, 5000*time.Millisecond, s.Remaining)
	assert.True(t, s.Running)
	assert.Equal(t, countdown.ActionStop, s.Action())
	assert.Equal(t, defaultColors.Halt, ButtonColor(s.Action()))
	assert.Contains(t, View(m), "Stop")
}

func TestTickReschedules(t *testing.T) {
	m := New(Options{Seconds: "1"})
	m, _ = Update(enterKey, m)

	m, cmd := Update(tickMsg{generation: m.generation}, m)
	assert.NotNil(t, cmd, "running timer should schedule the next tick")
	assert.Equal(t, 900*time.Millisecond, m.Timer.State().Remaining)

	m = tickN(m, 8)
	_, cmd = Update(tickMsg{generation: m.generation}, m)
	assert.Nil(t, cmd, "expiry should end the loop")
}

func TestPauseResume(t *testing.T) {
	m := New(Options{Seconds: "2"})
	m, _ = Update(enterKey, m)
	m = tickN(m, 5)

	// Pause.
	m, cmd := Update(enterKey, m)
	assert.Nil(t, cmd)
	require.False(t, m.Timer.IsRunning())
	require.Equal(t, 1500*time.Millisecond, m.Timer.State().Remaining)
	assert.Contains(t, View(m), "paused")
	pausedGen := m.generation

	// The tick that was in flight when we paused changes nothing.
	m, cmd = Update(tickMsg{generation: pausedGen}, m)
	assert.Nil(t, cmd)
	assert.Equal(t, 1500*time.Millisecond, m.Timer.State().Remaining)

	// Resume, then the stale tick from the first loop arrives late.
	m, cmd = Update(enterKey, m)
	require.NotNil(t, cmd)
	assert.Equal(t, 1500*time.Millisecond, m.Timer.State().Remaining)

	m, cmd = Update(tickMsg{generation: pausedGen}, m)
	assert.Nil(t, cmd)
	assert.Equal(t, 1500*time.Millisecond, m.Timer.State().Remaining)

	m = tickN(m, 15)
	assert.Equal(t, countdown.PhaseExpired, m.Timer.Phase())
}

func TestDurationChangeRecreatesTimer(t *testing.T) {
	m := New(Options{Seconds: "5"})
	m, _ = Update(enterKey, m)
	m = tickN(m, 3)
	oldTimer, oldGen := m.Timer, m.generation

	m, _ = Update(tea.KeyMsg{Type: tea.KeyBackspace}, m)
	m, _ = Update(runes("8"), m)
	require.Equal(t, "8", m.Input.Value())
	assert.NotSame(t, oldTimer, m.Timer)
	assert.Equal(t, 8*time.Second, m.Timer.State().Remaining)
	assert.False(t, m.Timer.IsRunning())

	// Ticks of the old loop no longer reach anything.
	m, cmd := Update(tickMsg{generation: oldGen}, m)
	assert.Nil(t, cmd)
	assert.Equal(t, 8*time.Second, m.Timer.State().Remaining)
	assert.Equal(t, 4700*time.Millisecond, oldTimer.State().Remaining)
}

func TestDurationChangeSameTotalKeepsTimer(t *testing.T) {
	m := New(Options{Seconds: "5"})
	before := m.Timer

	m, _ = Update(tea.KeyMsg{Type: tea.KeyHome}, m)
	m, _ = Update(runes("0"), m)
	require.Equal(t, "05", m.Input.Value())
	assert.Same(t, before, m.Timer)
}

func TestInitialSecondsMatchField(t *testing.T) {
	tests := []struct {
		name    string
		seconds string
		want    time.Duration
	}{
		{name: "seven digits", seconds: "1234567", want: 1234567 * time.Second},
		{name: "short", seconds: "42", want: 42 * time.Second},
		{name: "text", seconds: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(Options{Seconds: tt.seconds})
			assert.Equal(t, tt.seconds, m.Input.Value())
			assert.Equal(t, tt.want, m.Timer.Config().Total)
		})
	}
}

func TestEnterBeforeChangeMsgUsesTypedDuration(t *testing.T) {
	m := InitialModel()

	// The change notification is never delivered.
	m, _ = Update(runes("5"), m)
	require.Equal(t, 5*time.Second, m.Timer.Config().Total)

	m, cmd := Update(enterKey, m)
	assert.NotNil(t, cmd)
	assert.True(t, m.Timer.IsRunning())
	assert.Equal(t, 5*time.Second, m.Timer.State().Remaining)
}

func TestChangeMsgsOutOfOrder(t *testing.T) {
	m := InitialModel()

	m, first := Update(runes("5"), m)
	m, second := Update(runes("0"), m)
	require.Equal(t, "50", m.Input.Value())

	var msgs []tea.Msg
	msgs = append(msgs, collect(second)...)
	msgs = append(msgs, collect(first)...)
	for _, msg := range msgs {
		m, _ = Update(msg, m)
	}

	assert.Equal(t, 50*time.Second, m.Timer.Config().Total)
}

func TestStaleChangeMsgKeepsRunningTimer(t *testing.T) {
	m := New(Options{Seconds: "5"})
	m, _ = Update(enterKey, m)
	running := m.Timer

	m, _ = Update(DurationChangedMsg{Text: "9"}, m)
	assert.Same(t, running, m.Timer, "the field still reads 5")
	assert.True(t, m.Timer.IsRunning())
}

func TestTypingUpdatesTimer(t *testing.T) {
	m := InitialModel()

	m, cmd := Update(runes("7"), m)
	msgs := collect(cmd)
	require.Contains(t, msgs, tea.Msg(DurationChangedMsg{Text: "7"}))

	for _, msg := range msgs {
		m, _ = Update(msg, m)
	}
	assert.Equal(t, 7*time.Second, m.Timer.Config().Total)
	assert.Equal(t, "7", m.Input.Value())
}

func TestZeroDurationView(t *testing.T) {
	for _, input := range []string{"", "abc", "0"} {
		m := New(Options{Seconds: input})
		assert.NotPanics(t, func() {
			view := View(m)
			assert.NotContains(t, view, "NaN")
			assert.Contains(t, view, "Restart")
			assert.Contains(t, view, "enter a duration")
		}, "input %q", input)

		m, cmd := Update(enterKey, m)
		assert.Nil(t, cmd, "input %q", input)
		assert.False(t, m.Timer.IsRunning(), "input %q", input)
	}
}

func TestViewLayout(t *testing.T) {
	m := New(Options{Seconds: "5"})
	view := View(m)

	expected := []string{
		"Arc Timer",
		DurationLabel,
		"5",
		"Start",
		"ready",
		"enter",
	}
	for _, s := range expected {
		if !strings.Contains(view, s) {
			t.Errorf("expected view to contain %q", s)
		}
	}
}

func TestRedrawOnlyOnNotify(t *testing.T) {
	m := New(Options{Seconds: "3"})

	View(m)
	View(m)
	assert.Equal(t, 1, m.frame.renders, "unchanged timer should reuse the frame")

	m, _ = Update(enterKey, m)
	View(m)
	assert.Equal(t, 2, m.frame.renders)

	m = tickN(m, 1)
	View(m)
	View(m)
	assert.Equal(t, 3, m.frame.renders)

	m, _ = Update(tea.WindowSizeMsg{Width: 20, Height: 40}, m)
	View(m)
	assert.Equal(t, 4, m.frame.renders)

	// A stale tick is not a change.
	m, _ = Update(tickMsg{generation: m.generation - 1}, m)
	View(m)
	assert.Equal(t, 4, m.frame.renders)
}

func TestFocusSwitching(t *testing.T) {
	m := New(Options{Seconds: "5"})

	m, _ = Update(tabKey, m)
	assert.Equal(t, focusDial, m.focus)
	assert.False(t, m.Input.Focused())

	// Typing while the dial has focus does not edit the field.
	m, _ = Update(runes("9"), m)
	assert.Equal(t, "5", m.Input.Value())

	m, cmd := Update(spaceKey, m)
	assert.NotNil(t, cmd)
	assert.True(t, m.Timer.IsRunning())

	m, _ = Update(runes("?"), m)
	assert.True(t, m.ShowHelp)

	m, _ = Update(tabKey, m)
	assert.Equal(t, focusInput, m.focus)
	assert.True(t, m.Input.Focused())
	assert.False(t, m.ShowHelp)
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name     string
		focus    focus
		msg      tea.KeyMsg
		wantQuit bool
	}{
		{name: "ctrl+c in field", focus: focusInput, msg: tea.KeyMsg{Type: tea.KeyCtrlC}, wantQuit: true},
		{name: "esc in field", focus: focusInput, msg: tea.KeyMsg{Type: tea.KeyEsc}, wantQuit: true},
		{name: "q in field is text", focus: focusInput, msg: runes("q"), wantQuit: false},
		{name: "q on dial", focus: focusDial, msg: runes("q"), wantQuit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(Options{Seconds: "5"})
			if tt.focus == focusDial {
				m, _ = Update(tabKey, m)
			}
			_, cmd := Update(tt.msg, m)

			quit := false
			for _, msg := range collect(cmd) {
				if _, ok := msg.(tea.QuitMsg); ok {
					quit = true
				}
			}
			if quit != tt.wantQuit {
				t.Errorf("quit = %v, want %v", quit, tt.wantQuit)
			}
		})
	}
}

func TestNarrowTerminalShrinksDial(t *testing.T) {
	m := New(Options{Seconds: "5", DialWidth: 40})
	cols, _ := m.currentDial().Size()
	assert.Equal(t, 40, cols)

	m, _ = Update(tea.WindowSizeMsg{Width: 20, Height: 30}, m)
	cols, _ = m.currentDial().Size()
	assert.Equal(t, 16, cols)

	m, _ = Update(tea.WindowSizeMsg{Width: 5, Height: 30}, m)
	cols, _ = m.currentDial().Size()
	assert.Equal(t, 8, cols)
}

func TestClose(t *testing.T) {
	m := New(Options{Seconds: "5"})
	m, _ = Update(enterKey, m)
	gen := m.generation

	m.Close()
	m.Close()

	renders := m.frame.renders
	m.frame.stale = false
	m.Timer.Tick()
	assert.False(t, m.frame.stale, "closed model should not observe the timer")
	assert.Equal(t, renders, m.frame.renders)

	_, cmd := Update(tickMsg{generation: gen}, m)
	assert.Nil(t, cmd)
}
