package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/stigoleg/arc-timer/internal/config"
	"github.com/stigoleg/arc-timer/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

const appVersion = "0.4.0"

func main() {
	cfg, err := config.ParseFlags(appVersion)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "arctimer")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), getSignalsForPlatform()...)
	defer stop()

	if cfg.Plain {
		err := runPlain(ctx, cfg.Seconds, cfg.TimerConfig(), os.Stdout)
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, config.FormatError(err))
			os.Exit(1)
		}
		return
	}

	model := ui.New(ui.Options{
		Seconds:   cfg.Seconds,
		DialWidth: cfg.Width,
		Template:  cfg.TimerConfig(),
		Version:   appVersion,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	// Handle signals in a separate goroutine
	go func() {
		<-ctx.Done()
		log.Printf("received shutdown signal")
		p.Quit()
	}()

	final, err := p.Run()
	if m, ok := final.(ui.Model); ok {
		m.Close()
	}
	if err != nil {
		log.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
