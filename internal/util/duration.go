// Package util holds small parsing helpers shared by the CLI and the TUI.
package util

import (
	"strconv"
	"time"
)

// maxSeconds is the largest whole-second count a time.Duration can hold.
const maxSeconds = int64(1<<63-1) / int64(time.Second)

// ParseSeconds interprets text as a whole number of seconds.
// Anything that is not a non-negative base-10 integer yields 0; the caller
// never sees an error.
func ParseSeconds(text string) time.Duration {
	seconds, err := strconv.ParseInt(text, 10, 64)
	if err != nil || seconds < 0 || seconds > maxSeconds {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
