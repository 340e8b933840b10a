package sfx

import (
	"bytes"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			require.LessOrEqual(t, smp[0], 1.0)
			require.GreaterOrEqual(t, smp[0], -1.0)
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never ended")
	return total
}

func TestStream_EveryEffectIsFinite(t *testing.T) {
	rate := beep.SampleRate(8000)
	for e := Shoot; e < numEffects; e++ {
		t.Run(e.String(), func(t *testing.T) {
			s := Stream(e, rate, 0.5)
			require.NotNil(t, s)
			n := drain(t, s)
			assert.Positive(t, n)
			assert.LessOrEqual(t, n, rate.N(time.Second))
		})
	}
}

func TestStream_UnknownEffect(t *testing.T) {
	assert.Nil(t, Stream(Effect(99), beep.SampleRate(8000), 1))
}

func TestTone_Length(t *testing.T) {
	rate := beep.SampleRate(1000)
	n := drain(t, NewTone(440, 100*time.Millisecond, WaveSquare, rate))
	assert.Equal(t, 100, n)
}

func TestEnvelope_StartsSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 50 * time.Millisecond
	s := NewEnvelope(NewTone(100, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, 1)
	_, ok := s.Stream(buf)
	require.True(t, ok)
	assert.Zero(t, buf[0][0])
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Play(Hit)
	r.Play(Shoot)
	r.Play(Hit)
	r.Play(Effect(-1))

	assert.Equal(t, 2, r.Count(Hit))
	assert.Equal(t, 1, r.Count(Shoot))
	assert.Equal(t, 3, r.Total())
	assert.Equal(t, []Effect{Hit, Shoot, Hit}, r.Played())

	r.Reset()
	assert.Zero(t, r.Total())
	assert.Zero(t, r.Count(Hit))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Log: zerolog.New(&buf).Level(zerolog.DebugLevel)}
	l.Play(Bomb)
	assert.Contains(t, buf.String(), `"effect":"bomb"`)
}

func TestEffectString(t *testing.T) {
	assert.Equal(t, "powerup", PowerUp.String())
	assert.Equal(t, "unknown", Effect(42).String())
}
