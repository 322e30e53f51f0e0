package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone is a sine wave at a fixed frequency with a linear fade-out.
type Tone struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
	total  int
	square bool
}

// NewTone creates a tone lasting d.
func NewTone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) *Tone {
	return &Tone{sr: sr, freq: freq, volume: volume, total: sr.N(d)}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(t.sr)
		v := math.Sin(phase)
		if t.square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		env := 1 - float64(t.pos)/float64(t.total)
		v *= t.volume * env
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }

// Chime is a rising two-note cue. Pitch climbs with points, capped at 5.
func Chime(points int) beep.Streamer {
	step := min(max(points, 0), 5)
	base := 660.0 * math.Pow(2, float64(step)/12)
	return beep.Seq(
		NewTone(sampleRate, base, 70*time.Millisecond, 0.2),
		NewTone(sampleRate, base*1.5, 120*time.Millisecond, 0.2),
	)
}

// Buzz is a short low square-ish tone.
func Buzz() beep.Streamer {
	t := NewTone(sampleRate, 140, 150*time.Millisecond, 0.12)
	t.square = true
	return t
}

// Fanfare is a major arpeggio.
func Fanfare() beep.Streamer {
	return beep.Seq(
		NewTone(sampleRate, 523.25, 110*time.Millisecond, 0.2),
		NewTone(sampleRate, 659.25, 110*time.Millisecond, 0.2),
		NewTone(sampleRate, 783.99, 260*time.Millisecond, 0.2),
	)
}
