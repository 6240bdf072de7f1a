// Package countdown implements the countdown timer state machine and the
// interval driver that advances it.
package countdown

import (
	"log"
	"sync"
	"time"
)

// TickInterval is both the firing period of the tick loop and the amount
// removed from the remaining time on each tick.
const TickInterval = 100 * time.Millisecond

// Phase is the visible state of a timer.
type Phase int

const (
	// PhaseStopped covers both a timer that was never started and a paused one.
	PhaseStopped Phase = iota
	PhaseRunning
	PhaseExpired
)

func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "Stopped"
	case PhaseRunning:
		return "Running"
	case PhaseExpired:
		return "Expired"
	default:
		return "Unknown"
	}
}

// Action is what the control button does when pressed.
type Action int

const (
	// ActionStart resumes or begins a stopped countdown.
	ActionStart Action = iota
	// ActionStop pauses a running countdown.
	ActionStop
	// ActionRestart refills an expired timer and starts it.
	ActionRestart
)

// Label returns the button caption for the action.
func (a Action) Label() string {
	switch a {
	case ActionStop:
		return "Stop"
	case ActionRestart:
		return "Restart"
	default:
		return "Start"
	}
}

// State is a snapshot of a timer.
type State struct {
	Remaining time.Duration
	Running   bool
}

// Seconds returns the remaining time truncated to whole seconds.
func (s State) Seconds() int64 {
	return s.Remaining.Milliseconds() / 1000
}

// Phase derives the phase from the snapshot.
func (s State) Phase() Phase {
	switch {
	case s.Remaining <= 0:
		return PhaseExpired
	case s.Running:
		return PhaseRunning
	default:
		return PhaseStopped
	}
}

// Action reports what pressing the control button would do.
func (s State) Action() Action {
	switch s.Phase() {
	case PhaseExpired:
		return ActionRestart
	case PhaseRunning:
		return ActionStop
	default:
		return ActionStart
	}
}

// Observer is notified with the new state after every change.
type Observer func(State)

// Timer owns the countdown state for one configured duration.
type Timer struct {
	mu        sync.Mutex
	cfg       Config
	remaining time.Duration
	running   bool

	observers []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Observer
}

// New returns a stopped timer with the full duration remaining.
func New(cfg Config) *Timer {
	if cfg.Total < 0 {
		cfg.Total = 0
	}
	return &Timer{
		cfg:       cfg,
		remaining: cfg.Total,
	}
}

// Config returns the timer's configuration.
func (t *Timer) Config() Config {
	return t.cfg
}

// State returns the current snapshot.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot()
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase {
	return t.State().Phase()
}

// IsRunning returns whether the countdown is active.
func (t *Timer) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Paused reports a stopped timer that has already consumed part of its duration.
func (t *Timer) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.running && t.remaining > 0 && t.remaining < t.cfg.Total
}

// Fraction returns remaining/total in [0,1]. A zero total yields 0.
func (t *Timer) Fraction() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cfg.Total <= 0 {
		return 0
	}
	f := float64(t.remaining) / float64(t.cfg.Total)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Press handles the control button. An expired timer restarts from the full
// duration; otherwise running is toggled and the remaining time is kept.
func (t *Timer) Press() State {
	t.mu.Lock()
	if t.remaining <= 0 {
		if t.cfg.Total <= 0 {
			// Nothing to count down.
			s := t.snapshot()
			t.mu.Unlock()
			return s
		}
		t.remaining = t.cfg.Total
		t.running = true
		log.Printf("timer: restarted (total=%s)", t.cfg.Total)
	} else {
		t.running = !t.running
		log.Printf("timer: running=%t remaining=%s", t.running, t.remaining)
	}
	s := t.snapshot()
	observers := t.observerList()
	t.mu.Unlock()

	notify(observers, s)
	return s
}

// Tick removes one TickInterval from a running timer and reports whether
// the timer is still running afterwards. Stopped or expired timers are left
// untouched.
func (t *Timer) Tick() bool {
	t.mu.Lock()
	if !t.running || t.remaining <= 0 {
		t.mu.Unlock()
		return false
	}

	t.remaining -= TickInterval
	if t.remaining <= 0 {
		t.remaining = 0
		t.running = false
		log.Printf("timer: expired")
	}
	s := t.snapshot()
	observers := t.observerList()
	t.mu.Unlock()

	notify(observers, s)
	return s.Running
}

// Subscribe registers fn for state-change notifications. The returned func
// removes the subscription and is safe to call more than once.
func (t *Timer) Subscribe(fn Observer) (unsubscribe func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	t.observers = append(t.observers, subscription{id: id, fn: fn})

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, sub := range t.observers {
			if sub.id == id {
				t.observers = append(t.observers[:i:i], t.observers[i+1:]...)
				return
			}
		}
	}
}

func (t *Timer) snapshot() State {
	return State{Remaining: t.remaining, Running: t.running}
}

// observerList copies the observers so they can be called without the lock.
func (t *Timer) observerList() []Observer {
	if len(t.observers) == 0 {
		return nil
	}
	list := make([]Observer, len(t.observers))
	for i, sub := range t.observers {
		list[i] = sub.fn
	}
	return list
}

func notify(observers []Observer, s State) {
	for _, fn := range observers {
		fn(s)
	}
}
