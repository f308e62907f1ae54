// Command tetris-term plays the game in a terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/deitrix/blocks/config"
	"github.com/deitrix/blocks/game"
	"github.com/deitrix/blocks/log"
	"github.com/deitrix/blocks/loop"
	"github.com/deitrix/blocks/piece"
	"github.com/deitrix/blocks/sound"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := config.Default().Parse(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to the configured log file. The terminal is owned by the screen, so without a
// file nothing is logged.
func newLogger(cfg config.Config) (*log.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return log.Discard(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	return log.New(f, "", log.DefaultFlags, level), f, nil
}

func run(cfg config.Config) error {
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	log.SetDefault(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	snd := sound.NewManager()
	if !cfg.Mute {
		if err := snd.Initialize(); err != nil {
			logger.Warn("Audio initialization failed: %v", err)
		}
	}
	defer snd.Cleanup()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	bag := piece.NewBag(cfg.BagSeed(time.Now()))
	d := loop.New(loop.Options{
		Game:       game.New(cfg.Board()),
		Next:       bag.Next,
		OnClear:    snd.PlayLineClear,
		OnGameOver: func(game.State) { snd.PlayGameOver() },
		Logger:     logger,
	})
	errc := make(chan error, 1)
	go func() {
		errc <- d.Run(ctx)
	}()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	logger.Info("Starting %dx%d board", cfg.Cols, cfg.Rows)
	render(screen, d.Snapshot())
	for {
		select {
		case err := <-errc:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		case <-d.Changes():
			render(screen, d.Snapshot())
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					cancel()
					continue
				}
				if c, ok := commandFor(ev); ok {
					d.Send(ctx, c)
				}
			case *tcell.EventResize:
				screen.Sync()
				render(screen, d.Snapshot())
			}
		}
	}
}
