// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Player implements game.Sounds on top of the beep speaker.
type Player struct {
	rate   beep.SampleRate
	volume float64
	logger *log.Logger
	play   func(beep.Streamer)

	closeOnce sync.Once
}

// NewPlayer opens the speaker. The caller must Close the player.
func NewPlayer(volume float64, logger *log.Logger) (*Player, error) {
	rate := beep.SampleRate(defaultRateHertz)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "opening speaker")
	}
	logger.Debug("speaker ready", "rate", int(rate))
	return &Player{
		rate:   rate,
		volume: volume,
		logger: logger,
		play:   func(s beep.Streamer) { speaker.Play(s) },
	}, nil
}

func (p *Player) Eat() {
	p.play(EatSound(p.rate, p.volume))
}

// Lose and Win block until the cue has finished so the process does not
// exit mid-sound.
func (p *Player) Lose() {
	p.playAndWait(LoseSound(p.rate, p.volume))
}

func (p *Player) Win() {
	s, err := WinSound(p.rate, p.volume)
	if err != nil {
		p.logger.Warn("win sound unavailable", "err", err)
		return
	}
	p.playAndWait(s)
}

func (p *Player) playAndWait(s beep.Streamer) {
	done := make(chan struct{})
	p.play(beep.Seq(s, beep.Callback(func() { close(done) })))
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		p.logger.Warn("sound cue did not finish in time")
	}
}

func (p *Player) Close() {
	p.closeOnce.Do(speaker.Close)
}

// Nop is used when sound is disabled or no speaker is available.
type Nop struct{}

func (Nop) Eat()  {}
func (Nop) Lose() {}
func (Nop) Win()  {}
