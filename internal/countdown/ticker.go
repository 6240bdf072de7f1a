package countdown

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// ErrTickerRunning is returned when Start is called on an active Ticker.
var ErrTickerRunning = errors.New("ticker already running")

// Ticker drives a Timer from a single goroutine, one Tick per firing, until
// the timer stops running, the context is cancelled, or Close is called.
type Ticker struct {
	timer    *Timer
	interval time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewTicker returns an idle ticker for t. A non-positive interval falls
// back to TickInterval.
func NewTicker(t *Timer, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = TickInterval
	}
	done := make(chan struct{})
	close(done)
	return &Ticker{
		timer:    t,
		interval: interval,
		done:     done,
	}
}

// Active returns whether the ticking goroutine is alive.
func (tk *Ticker) Active() bool {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	return tk.running
}

// Done is closed when the current run ends.
func (tk *Ticker) Done() <-chan struct{} {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	return tk.done
}

// Start launches the ticking goroutine.
func (tk *Ticker) Start(ctx context.Context) error {
	tk.mu.Lock()
	defer tk.mu.Unlock()

	if tk.running {
		return ErrTickerRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	tk.cancel = cancel
	tk.done = done
	tk.running = true

	go tk.loop(ctx, done)

	log.Printf("ticker: started (interval=%s)", tk.interval)
	return nil
}

func (tk *Ticker) loop(ctx context.Context, done chan struct{}) {
	defer func() {
		tk.mu.Lock()
		if tk.done == done {
			tk.running = false
		}
		tk.mu.Unlock()
		close(done)
	}()

	if !tk.timer.IsRunning() {
		return
	}

	clock := time.NewTicker(tk.interval)
	defer clock.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("ticker: cancelled")
			return
		case <-clock.C:
			if !tk.timer.Tick() {
				log.Printf("ticker: stopped")
				return
			}
		}
	}
}

// Close stops the ticker and waits for its goroutine to exit.
func (tk *Ticker) Close() error {
	return tk.CloseWithTimeout(0)
}

// CloseWithTimeout is Close with a bound on how long to wait.
func (tk *Ticker) CloseWithTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	tk.mu.Lock()
	if tk.cancel != nil {
		tk.cancel()
		tk.cancel = nil
	}
	done := tk.done
	tk.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		log.Printf("ticker: close timeout exceeded after %v", timeout)
		return context.DeadlineExceeded
	}
}
