package audio

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1.0001 || buf[j][0] > 1.0001 {
				t.Fatalf("sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never ended")
	return total
}

func TestOscillatorLength(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := newOscillator(440, 220, 50*time.Millisecond, tt.wave, testRate)
			if got, want := drain(t, osc), testRate.N(50*time.Millisecond); got != want {
				t.Errorf("streamed %d samples, want %d", got, want)
			}
			if osc.Err() != nil {
				t.Errorf("Err() = %v", osc.Err())
			}
		})
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	d := 40 * time.Millisecond
	osc := newOscillator(0, 0, d, WaveSquare, testRate) // constant +1
	env := newEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	samples := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("streamed %d, want %d", n, len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}
	if mid := samples[n/2][0]; mid != 1 {
		t.Errorf("sustain sample = %f, want 1", mid)
	}
	if last := samples[n-1][0]; last > 0.01 {
		t.Errorf("last sample = %f, want near 0", last)
	}
}

func TestCuesProduceSound(t *testing.T) {
	if n := drain(t, EatSound(testRate, 0.5)); n != 2*testRate.N(eatNoteDuration) {
		t.Errorf("eat cue has %d samples", n)
	}
	if n := drain(t, LoseSound(testRate, 0.5)); n != testRate.N(loseDuration) {
		t.Errorf("lose cue has %d samples", n)
	}
	win, err := WinSound(testRate, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if n := drain(t, win); n != 4*testRate.N(winNoteDuration) {
		t.Errorf("win cue has %d samples", n)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	s := EatSound(testRate, 0)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, buf[i])
		}
	}
}

func newTestPlayer(t *testing.T) (*Player, *[]beep.Streamer) {
	played := &[]beep.Streamer{}
	p := &Player{
		rate:   testRate,
		volume: 1,
		logger: log.New(io.Discard),
		play: func(s beep.Streamer) {
			*played = append(*played, s)
			drain(t, s)
		},
	}
	return p, played
}

func TestPlayerCues(t *testing.T) {
	p, played := newTestPlayer(t)

	p.Eat()
	p.Lose()
	p.Win()

	if len(*played) != 3 {
		t.Fatalf("played %d cues, want 3", len(*played))
	}
}

func TestNopSatisfiesCues(t *testing.T) {
	var n Nop
	n.Eat()
	n.Lose()
	n.Win()
}
