package countdown

import "time"

// Config is the immutable configuration of one Timer.
type Config struct {
	Total         time.Duration
	StrokeWidth   int
	HandleColor   string
	ActiveColor   string
	InactiveColor string
}

// DefaultConfig returns the stock dial look with a zero duration.
func DefaultConfig() Config {
	return Config{
		StrokeWidth:   1,
		HandleColor:   "#00FF00",
		ActiveColor:   "#37B900",
		InactiveColor: "#444444",
	}
}

// WithTotal returns a copy of c with the given total duration.
func (c Config) WithTotal(total time.Duration) Config {
	c.Total = total
	return c
}
