package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-classic/audio"
	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/ui"
	"snake-classic/ui/terminal"
	"snake-classic/ui/window"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const soundVolume = 0.3

// frontend is a game.Frontend that owns a window or a terminal.
type frontend interface {
	game.Frontend
	Close()
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	g, err := game.NewGame(cfg.GameSettings(), rng)
	if err != nil {
		logger.Error("cannot start game", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger.Debug("starting", "seed", seed, "backend", cfg.Backend, "tick", cfg.TickInterval())

	fe, err := newFrontend(cfg, logger)
	if err != nil {
		logger.Error("cannot open frontend", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	sounds, closeSounds := newSounds(cfg, logger)
	defer closeSounds()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	loop := &game.Loop{
		Game:     g,
		Frontend: fe,
		Sounds:   sounds,
		Logger:   logger,
	}
	res, err := loop.Run(ctx, ticker.C)

	// The terminal must be restored before anything is printed to it.
	fe.Close()

	if err != nil {
		logger.Error("game aborted", "err", err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Println(ui.RenderOutcome(res))
		return 1
	}
	logger.Info("game finished", "status", res.Status, "score", res.Score, "ticks", res.Ticks, "elapsed", g.ElapsedTime())
	fmt.Println(ui.RenderOutcome(res))
	return 0
}

// newLogger writes to stderr for the window backend. The terminal backend
// owns the screen, so it only logs when a log file is configured.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "log level %q", cfg.LogLevel)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening log file")
		}
		w = f
		closer = func() { f.Close() }
	case cfg.Backend == config.BackendTerminal:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closer, nil
}

func newFrontend(cfg config.Config, logger *log.Logger) (frontend, error) {
	palette := ui.Palette{
		Background: cfg.BackgroundColor,
		Line:       cfg.LineColor,
		Border:     cfg.BorderColor,
	}
	switch cfg.Backend {
	case config.BackendTerminal:
		palette.Text = cfg.LineColor
		return terminal.New(palette, logger)
	default:
		return window.NewRenderer(window.Options{
			WindowSize: cfg.WindowSize,
			Rows:       cfg.Rows,
			LineWidth:  cfg.LineWidth,
			Palette:    palette,
		}, logger), nil
	}
}

func newSounds(cfg config.Config, logger *log.Logger) (game.Sounds, func()) {
	if !cfg.Sound {
		return audio.Nop{}, func() {}
	}
	p, err := audio.NewPlayer(soundVolume, logger)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return audio.Nop{}, func() {}
	}
	return p, p.Close
}
