package sfx

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Note frequencies in Hz.
const (
	noteC3 = 130.81
	noteE3 = 164.81
	noteG4 = 392.00
	noteC5 = 523.25
	noteC6 = 1046.50
	noteE6 = 1318.51
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone generates a wave whose frequency glides linearly from freq to end
// over its duration.
type tone struct {
	freq, end float64
	phase     float64
	position  int
	total     int
	wave      Wave
	rate      beep.SampleRate
}

// NewTone returns a streamer for a constant-pitch tone.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep returns a streamer gliding from freq to end.
func NewSweep(freq, end float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, end: end, total: rate.N(d), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		f := t.freq + (t.end-t.freq)*float64(t.position)/float64(t.total)
		t.phase += f / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a stream in over attack and out over the final release.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack/release shape.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{s: s, total: rate.N(d), attack: rate.N(attack), release: rate.N(release)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if rs := e.total - e.release; e.release > 0 && e.position >= rs {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// volume scales s linearly; zero silences it.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// voice is one shaped oscillator.
func voice(freq, end float64, d time.Duration, w Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(freq, end, d, w, rate), d, 4*time.Millisecond, d/3, rate)
}

// Stream builds a fresh streamer for e at the given sample rate. The result
// is finite; it returns nil for an unknown effect.
func Stream(e Effect, rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case Shoot:
		s = voice(noteE6, noteE6*0.9, 60*time.Millisecond, WaveSquare, rate)
	case Hit:
		d := 90 * time.Millisecond
		s = beep.Mix(
			volume(voice(noteG4, noteG4, d, WaveSquare, rate), 0.6),
			volume(voice(0, 0, d, WaveNoise, rate), 0.4),
		)
	case Bomb:
		d := 320 * time.Millisecond
		s = beep.Mix(
			volume(voice(noteC5, noteC3, d, WaveSaw, rate), 0.6),
			volume(voice(0, 0, d, WaveNoise, rate), 0.5),
		)
	case PowerUp:
		d := 80 * time.Millisecond
		s = beep.Seq(
			voice(noteC6, noteC6, d, WaveSine, rate),
			voice(noteE6, noteE6, d, WaveSine, rate),
		)
	case Win:
		d := 150 * time.Millisecond
		s = beep.Seq(
			voice(noteC6, noteC6, d, WaveSquare, rate),
			voice(noteE6, noteE6, 2*d, WaveSquare, rate),
		)
	case Lose:
		d := 200 * time.Millisecond
		s = beep.Seq(
			voice(noteE3, noteE3, d, WaveSquare, rate),
			voice(noteC3, noteC3, 2*d, WaveSquare, rate),
		)
	default:
		return nil
	}
	return volume(s, gain)
}
