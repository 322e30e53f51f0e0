// Package sound plays short feedback cues for answers and finished games.
package sound

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays feedback cues. Implementations must not block the caller.
type Player interface {
	Correct(points int)
	Miss()
	Fanfare()
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Correct(int) {}
func (Nop) Miss()       {}
func (Nop) Fanfare()    {}
func (Nop) Close()      {}

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker opens the audio device. When no device is available it
// returns Nop so callers never have to check.
func NewSpeaker() Player {
	s := &Speaker{mixer: &beep.Mixer{}}
	if err := s.init(); err != nil {
		log.Printf("sound: disabled: %v", err)
		return Nop{}
	}
	return s
}

func (s *Speaker) init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

func (s *Speaker) add(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Correct plays a rising chime; bigger rewards climb higher.
func (s *Speaker) Correct(points int) {
	s.add(Chime(points))
}

// Miss plays a short low buzz.
func (s *Speaker) Miss() {
	s.add(Buzz())
}

// Fanfare plays a three-note arpeggio.
func (s *Speaker) Fanfare() {
	s.add(Fanfare())
}

// Close silences any queued cues.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}
