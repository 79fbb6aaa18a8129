package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType selects the oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

const (
	eatNoteDuration  = 60 * time.Millisecond
	loseDuration     = 450 * time.Millisecond
	winNoteDuration  = 120 * time.Millisecond
	toneAttack       = 5 * time.Millisecond
	toneRelease      = 40 * time.Millisecond
	loseStartFreq    = 330.0
	loseEndFreq      = 110.0
	defaultRateHertz = 44100
)

// oscillator emits a fixed number of samples of a wave whose frequency
// slides linearly from freq to endFreq.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	position      int
	total         int
	wave          WaveType
	rate          beep.SampleRate
}

func newOscillator(freq, endFreq float64, d time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:    freq,
		endFreq: endFreq,
		total:   rate.N(d),
		wave:    wave,
		rate:    rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.total)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over its last release samples.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{s: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			gain = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales a stream linearly; vol <= 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(freq, freq, d, wave, rate), d, toneAttack, toneRelease, rate)
}

// EatSound is a short rising two-note blip.
func EatSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(beep.Seq(
		tone(659.25, eatNoteDuration, WaveSquare, rate),
		tone(987.77, eatNoteDuration, WaveSquare, rate),
	), vol)
}

// LoseSound is a falling saw buzz.
func LoseSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := newOscillator(loseStartFreq, loseEndFreq, loseDuration, WaveSaw, rate)
	return withVolume(newEnvelope(osc, loseDuration, toneAttack, 150*time.Millisecond, rate), vol)
}

// WinSound is a major arpeggio of sine notes.
func WinSound(rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		sine, err := generators.SineTone(rate, f)
		if err != nil {
			return nil, err
		}
		note := beep.Take(rate.N(winNoteDuration), sine)
		parts = append(parts, newEnvelope(note, winNoteDuration, toneAttack, toneRelease, rate))
	}
	return withVolume(beep.Seq(parts...), vol), nil
}
