package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stigoleg/arc-timer/internal/countdown"
	"github.com/stigoleg/arc-timer/internal/dial"
	"github.com/stigoleg/arc-timer/internal/ui"
)

const (
	maxWidth  = 80
	maxStroke = 3
)

// ErrVersion is returned by ParseArgs when --version was requested.
var ErrVersion = errors.New("version requested")

type Config struct {
	Seconds     string
	Width       int
	Stroke      int
	Plain       bool
	LogFile     string
	ShowVersion bool
}

// TimerConfig returns the timer template described by the flags.
func (c Config) TimerConfig() countdown.Config {
	tc := countdown.DefaultConfig()
	if c.Stroke > 0 {
		tc.StrokeWidth = c.Stroke
	}
	return tc
}

// FormatError renders a configuration error for the terminal.
func FormatError(err error) string {
	msg := err.Error()
	if header, details, ok := strings.Cut(msg, "\n\n"); ok {
		errorBox := ui.Current.Help.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF4040"))

		h := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4040")).
			Render(header)

		d := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Render(details)

		return errorBox.Render(fmt.Sprintf("%s\n\n%s", h, d))
	}
	return ui.Current.Error.Render(msg)
}

// ParseArgs parses command line arguments (without the program name).
// On -h the usage text is written to out and flag.ErrHelp is returned.
func ParseArgs(args []string, out io.Writer) (*Config, error) {
	flags := flag.NewFlagSet("arctimer", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {
		fmt.Fprintln(out, ui.HelpText())
	}

	cfg := &Config{}
	flags.StringVar(&cfg.Seconds, "seconds", "", "Initial duration in seconds")
	flags.StringVar(&cfg.Seconds, "s", "", "Initial duration in seconds")
	flags.IntVar(&cfg.Width, "width", ui.DefaultDialWidth, "Dial width in columns")
	flags.IntVar(&cfg.Width, "w", ui.DefaultDialWidth, "Dial width in columns")
	flags.IntVar(&cfg.Stroke, "stroke", 1, "Track thickness")
	flags.BoolVar(&cfg.Plain, "plain", false, "Count down on stdout without the TUI")
	flags.BoolVar(&cfg.Plain, "p", false, "Count down on stdout without the TUI")
	flags.StringVar(&cfg.LogFile, "log", "", "Write a debug log to this file")
	flags.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flags.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", flags.Arg(0))
	}
	if cfg.Width < dial.MinWidth || cfg.Width > maxWidth {
		return nil, fmt.Errorf("invalid width: %d\n\nThe dial width must be between %d and %d columns.",
			cfg.Width, dial.MinWidth, maxWidth)
	}
	if cfg.Stroke < 1 || cfg.Stroke > maxStroke {
		return nil, fmt.Errorf("invalid stroke: %d\n\nThe track thickness must be between 1 and %d.",
			cfg.Stroke, maxStroke)
	}
	if cfg.ShowVersion {
		return cfg, ErrVersion
	}
	return cfg, nil
}

// ParseFlags parses os.Args, printing help or version and exiting where the
// flags ask for it.
func ParseFlags(version string) (*Config, error) {
	cfg, err := ParseArgs(os.Args[1:], os.Stdout)
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.Is(err, ErrVersion):
		fmt.Printf("Arc Timer Version: %s\n", version)
		os.Exit(0)
	case err != nil:
		fmt.Println(FormatError(err))
		os.Exit(1)
	}
	return cfg, nil
}
