package sfx

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays effects on the local audio device through a shared mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	gain   float64
	opened bool
}

// OpenSpeaker initializes the audio device. It fails when no device is
// available; callers fall back to Nop or Logger.
func OpenSpeaker(gain float64) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("error initializing speaker: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}, gain: gain, opened: true}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues e on the mixer and returns immediately.
func (s *Speaker) Play(e Effect) {
	st := Stream(e, sampleRate, s.gain)
	if st == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened {
		return
	}
	s.opened = false
	speaker.Clear()
	speaker.Close()
}
