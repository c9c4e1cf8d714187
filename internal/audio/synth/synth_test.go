package synth

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-golf/internal/audio"
	"github.com/vovakirdan/tui-golf/internal/config"
)

func countSamples(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
		require.Less(t, total, 1<<20, "streamer never ends")
	}
}

func TestBuildSampleLengths(t *testing.T) {
	p := newBeepPlayer(config.AudioConfig{Enabled: true, SampleRate: 10000, Volume: 1})

	for _, s := range []audio.Sample{audio.SampleHit, audio.SampleTeeOff, audio.SampleHoled} {
		streamer, err := p.build(s)
		require.NoError(t, err, s.String())
		want := 0
		for _, seg := range tones[s] {
			want += beep.SampleRate(10000).N(seg.dur)
		}
		assert.Equal(t, want, countSamples(t, streamer), s.String())
	}

	_, err := p.build(audio.Sample(99))
	assert.Error(t, err)
}

func TestPlayFailureDisablesUntilReset(t *testing.T) {
	calls := 0
	p := newBeepPlayer(config.AudioConfig{Enabled: true, SampleRate: 8000, Volume: 1})
	p.sink = func(beep.Streamer) error {
		calls++
		return errors.New("no device")
	}

	p.Play(audio.SampleHit)
	p.Play(audio.SampleHoled)
	assert.Equal(t, 1, calls, "playback stops after the first failure")
	assert.True(t, p.disabled.Load())

	// A new match tries again
	p.Reset()
	assert.False(t, p.disabled.Load())
	p.Play(audio.SampleHit)
	assert.Equal(t, 2, calls)
	assert.True(t, p.disabled.Load())
}

func TestPlayQueuesStreamers(t *testing.T) {
	var queued []beep.Streamer
	p := newBeepPlayer(config.AudioConfig{Enabled: true, SampleRate: 8000, Volume: 0.5})
	p.sink = func(s beep.Streamer) error {
		queued = append(queued, s)
		return nil
	}

	p.Play(audio.SampleTeeOff)
	p.Play(audio.SampleHit)
	require.Len(t, queued, 2)
	assert.False(t, p.disabled.Load())

	vol, ok := queued[0].(*effects.Volume)
	require.True(t, ok)
	assert.Equal(t, -1.0, vol.Volume)
}

func TestZeroVolumeSkipsDevice(t *testing.T) {
	p := newBeepPlayer(config.AudioConfig{Enabled: true, SampleRate: 8000, Volume: 0})
	p.sink = func(beep.Streamer) error {
		t.Fatal("silent player must not touch the device")
		return nil
	}
	p.Play(audio.SampleHoled)
	assert.False(t, p.disabled.Load())
}

func TestNewDisabledIsNop(t *testing.T) {
	_, ok := New(config.AudioConfig{Enabled: false}).(audio.Nop)
	assert.True(t, ok)
}

func TestGain(t *testing.T) {
	assert.Equal(t, 0.0, Gain(1))
	assert.Equal(t, -1.0, Gain(0.5))
	assert.Equal(t, -10.0, Gain(0))
}
