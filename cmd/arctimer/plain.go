package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/stigoleg/arc-timer/internal/countdown"
	"github.com/stigoleg/arc-timer/internal/util"
)

var errNoDuration = errors.New("plain mode needs a duration\n\nPass a positive number of seconds with -s, e.g. 'arctimer -p -s 30'.")

// runPlain counts down without the TUI, writing every whole second as it is
// reached and the button caption once the timer expires.
func runPlain(ctx context.Context, seconds string, tmpl countdown.Config, out io.Writer) error {
	total := util.ParseSeconds(seconds)
	if total <= 0 {
		return errNoDuration
	}

	timer := countdown.New(tmpl.WithTotal(total))
	last := timer.State().Seconds()
	fmt.Fprintln(out, last)

	unsubscribe := timer.Subscribe(func(s countdown.State) {
		if sec := s.Seconds(); sec != last {
			last = sec
			fmt.Fprintln(out, sec)
		}
	})
	defer unsubscribe()

	timer.Press()
	ticker := countdown.NewTicker(timer, countdown.TickInterval)
	if err := ticker.Start(ctx); err != nil {
		return fmt.Errorf("start ticker: %w", err)
	}
	defer ticker.Close()

	select {
	case <-ticker.Done():
	case <-ctx.Done():
	}
	if err := ctx.Err(); err != nil {
		log.Printf("plain: interrupted at %s", timer.State().Remaining)
		return err
	}

	fmt.Fprintln(out, timer.State().Action().Label())
	return nil
}
