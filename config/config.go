// Package config assembles the game settings from defaults, an optional .env
// file, SNAKE_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"

	envPrefix = "SNAKE_"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	HeadColor       types.Color
	BodyColor       types.Color
	BackgroundColor types.Color
	LineColor       types.Color
	SnackColor      types.Color
	BorderColor     types.Color

	WindowSize int // pixels per side
	Rows       int // grid cells per side, border ring included
	TickRate   int // game steps per second
	LineWidth  int

	MaxPlacementAttempts int
	Seed                 uint64 // 0 picks a time based seed

	Backend  string
	Sound    bool
	LogLevel string
	LogFile  string
}

// Default mirrors the classic 500px, 20 row board at 10 steps per second.
func Default() Config {
	return Config{
		HeadColor:       types.Color{R: 0, G: 255, B: 0},
		BodyColor:       types.Color{R: 0, G: 150, B: 0},
		BackgroundColor: types.Color{R: 0, G: 0, B: 0},
		LineColor:       types.Color{R: 255, G: 255, B: 255},
		SnackColor:      types.Color{R: 255, G: 0, B: 0},
		BorderColor:     types.Color{R: 150, G: 150, B: 150},

		WindowSize: 500,
		Rows:       20,
		TickRate:   10,
		LineWidth:  1,

		MaxPlacementAttempts: 1_000_000,

		Backend:  BackendWindow,
		LogLevel: "info",
	}
}

// Load starts from Default, loads the given .env files (missing files are
// skipped) and applies SNAKE_* environment variables.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if os.IsNotExist(errors.Cause(err)) {
				continue
			}
			return Config{}, errors.Wrapf(err, "loading %s", f)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for _, f := range c.fields() {
		v, ok := lookup(envPrefix + f.env)
		if !ok || v == "" {
			continue
		}
		if err := f.value.Set(v); err != nil {
			return errors.Wrapf(ErrInvalid, "%s%s=%q: %v", envPrefix, f.env, v, err)
		}
	}
	return nil
}

// BindFlags registers one flag per field on fs. Flags parsed afterwards
// override whatever Load produced.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	for _, f := range c.fields() {
		fs.Var(f.value, f.flag, f.usage)
	}
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.Rows < 3 {
		return errors.Wrapf(ErrInvalid, "rows must be at least 3, got %d", c.Rows)
	}
	if c.TickRate <= 0 {
		return errors.Wrapf(ErrInvalid, "tick rate must be positive, got %d", c.TickRate)
	}
	if c.WindowSize < c.Rows {
		return errors.Wrapf(ErrInvalid, "window size %d is smaller than %d rows", c.WindowSize, c.Rows)
	}
	if c.LineWidth < 0 {
		return errors.Wrapf(ErrInvalid, "line width must not be negative, got %d", c.LineWidth)
	}
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return errors.Wrapf(ErrInvalid, "unknown backend %q", c.Backend)
	}
	return nil
}

// TickInterval is the wall-clock time between two game steps.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func (c Config) GameSettings() game.Settings {
	return game.Settings{
		Rows:                 c.Rows,
		HeadColor:            c.HeadColor,
		BodyColor:            c.BodyColor,
		SnackColor:           c.SnackColor,
		MaxPlacementAttempts: c.MaxPlacementAttempts,
	}
}

type field struct {
	flag  string
	env   string
	usage string
	value flag.Value
}

func (c *Config) fields() []field {
	return []field{
		{"rows", "ROWS", "grid cells per side, border included", (*intValue)(&c.Rows)},
		{"window-size", "WINDOW_SIZE", "window size in pixels", (*intValue)(&c.WindowSize)},
		{"tick-rate", "TICK_RATE", "game steps per second", (*intValue)(&c.TickRate)},
		{"line-width", "LINE_WIDTH", "grid line width in pixels", (*intValue)(&c.LineWidth)},
		{"max-placement-attempts", "MAX_PLACEMENT_ATTEMPTS", "random draws before snack placement gives up", (*intValue)(&c.MaxPlacementAttempts)},
		{"seed", "SEED", "random seed, 0 for time based", (*uint64Value)(&c.Seed)},
		{"backend", "BACKEND", "frontend: window or terminal", (*stringValue)(&c.Backend)},
		{"sound", "SOUND", "play sound cues", (*boolValue)(&c.Sound)},
		{"log-level", "LOG_LEVEL", "debug, info, warn or error", (*stringValue)(&c.LogLevel)},
		{"log-file", "LOG_FILE", "write logs to this file", (*stringValue)(&c.LogFile)},
		{"head-color", "HEAD_COLOR", "snake head color (#rrggbb)", (*colorValue)(&c.HeadColor)},
		{"body-color", "BODY_COLOR", "snake body color (#rrggbb)", (*colorValue)(&c.BodyColor)},
		{"background-color", "BACKGROUND_COLOR", "background color (#rrggbb)", (*colorValue)(&c.BackgroundColor)},
		{"line-color", "LINE_COLOR", "grid line color (#rrggbb)", (*colorValue)(&c.LineColor)},
		{"snack-color", "SNACK_COLOR", "snack color (#rrggbb)", (*colorValue)(&c.SnackColor)},
		{"border-color", "BORDER_COLOR", "border color (#rrggbb)", (*colorValue)(&c.BorderColor)},
	}
}

// ParseColor reads "#rrggbb" or "rrggbb".
func ParseColor(s string) (types.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return types.Color{}, errors.Errorf("color %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return types.Color{}, errors.Wrapf(err, "color %q", s)
	}
	return types.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

type intValue int

func (v *intValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*v = intValue(n)
	return nil
}

func (v *intValue) String() string { return strconv.Itoa(int(*v)) }

type uint64Value uint64

func (v *uint64Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*v = uint64Value(n)
	return nil
}

func (v *uint64Value) String() string { return strconv.FormatUint(uint64(*v), 10) }

type stringValue string

func (v *stringValue) Set(s string) error {
	*v = stringValue(s)
	return nil
}

func (v *stringValue) String() string { return string(*v) }

type boolValue bool

func (v *boolValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*v = boolValue(b)
	return nil
}

func (v *boolValue) String() string { return strconv.FormatBool(bool(*v)) }

// IsBoolFlag lets -sound be given without a value.
func (v *boolValue) IsBoolFlag() bool { return true }

type colorValue types.Color

func (v *colorValue) Set(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	*v = colorValue(c)
	return nil
}

func (v *colorValue) String() string {
	return types.Color(*v).Hex()
}
