// Package synth plays the game's sound effects on the system speaker,
// synthesizing each sample from sine tones.
package synth

import (
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-golf/internal/audio"
	"github.com/vovakirdan/tui-golf/internal/config"
)

// The speaker is a process-wide device, so its state is too.
var (
	speakerOnce sync.Once
	speakerErr  error
	mixer       = &beep.Mixer{}
)

// tone is one segment of a sample.
type tone struct {
	freq float64
	dur  time.Duration
}

var tones = map[audio.Sample][]tone{
	audio.SampleHit:    {{freq: 180, dur: 35 * time.Millisecond}},
	audio.SampleTeeOff: {{freq: 660, dur: 50 * time.Millisecond}},
	audio.SampleHoled: {
		{freq: 523.25, dur: 110 * time.Millisecond},
		{freq: 659.25, dur: 110 * time.Millisecond},
		{freq: 783.99, dur: 180 * time.Millisecond},
	},
}

// BeepPlayer synthesizes samples and mixes them into the speaker.
type BeepPlayer struct {
	rate   beep.SampleRate
	volume float64 // Beep volume units
	silent bool
	logger *log.Logger
	sink   func(beep.Streamer) error

	// disabled turns playback off after the device failed, until Reset.
	disabled atomic.Bool
}

var (
	_ audio.Player   = (*BeepPlayer)(nil)
	_ audio.Resetter = (*BeepPlayer)(nil)
)

// Option configures a BeepPlayer.
type Option func(*BeepPlayer)

// WithLogger sets the logger used to report the device going away.
func WithLogger(l *log.Logger) Option {
	return func(p *BeepPlayer) {
		p.logger = l
	}
}

// New returns a player for the configuration. A disabled configuration
// yields a silent player.
func New(cfg config.AudioConfig, opts ...Option) audio.Player {
	if !cfg.Enabled {
		return audio.Nop{}
	}
	p := newBeepPlayer(cfg, opts...)
	p.sink = speakerSink(p.rate)
	return p
}

func newBeepPlayer(cfg config.AudioConfig, opts ...Option) *BeepPlayer {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	p := &BeepPlayer{
		rate:   beep.SampleRate(rate),
		volume: Gain(cfg.Volume),
		silent: cfg.Volume <= 0,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// speakerSink initializes the speaker on first use and adds streamers to
// the shared mixer.
func speakerSink(rate beep.SampleRate) func(beep.Streamer) error {
	return func(s beep.Streamer) error {
		speakerOnce.Do(func() {
			speakerErr = speaker.Init(rate, rate.N(50*time.Millisecond))
			if speakerErr == nil {
				speaker.Play(mixer)
			}
		})
		if speakerErr != nil {
			return speakerErr
		}
		speaker.Lock()
		mixer.Add(s)
		speaker.Unlock()
		return nil
	}
}

// Play queues the sample and returns immediately. The first failure
// disables sound until Reset.
func (p *BeepPlayer) Play(s audio.Sample) {
	if p.silent || p.disabled.Load() {
		return
	}
	streamer, err := p.build(s)
	if err == nil {
		err = p.sink(streamer)
	}
	if err != nil {
		if p.disabled.CompareAndSwap(false, true) {
			p.logger.Warn("audio unavailable, continuing without sound", "sample", s, "err", err)
		}
	}
}

// Reset re-enables playback after a failure.
func (p *BeepPlayer) Reset() {
	p.disabled.Store(false)
}

// build synthesizes the tone sequence of a sample.
func (p *BeepPlayer) build(s audio.Sample) (beep.Streamer, error) {
	segments, ok := tones[s]
	if !ok {
		return nil, fmt.Errorf("synth: unknown sample %d", s)
	}
	parts := make([]beep.Streamer, 0, len(segments))
	for _, t := range segments {
		sine, err := generators.SineTone(p.rate, t.freq)
		if err != nil {
			return nil, fmt.Errorf("synth: %s tone: %w", s, err)
		}
		parts = append(parts, beep.Take(p.rate.N(t.dur), sine))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   p.volume,
	}, nil
}

// Gain converts a linear gain in (0,1] to beep volume units.
func Gain(linear float64) float64 {
	if linear <= 0 {
		return -10
	}
	return math.Log2(linear)
}
