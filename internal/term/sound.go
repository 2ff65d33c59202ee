package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"tiltsnake/internal/game"
	"tiltsnake/internal/sfx"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays effects through the beep speaker. A nil *Sound is silent.
type Sound struct {
	bank map[sfx.Kind][]float64
}

func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	s := &Sound{bank: make(map[sfx.Kind][]float64)}
	for _, k := range []sfx.Kind{sfx.Start, sfx.Coin, sfx.Grow, sfx.GameOver} {
		s.bank[k] = sfx.Generate(k, int(sampleRate))
	}
	return s, nil
}

// Attach plays the matching effect for every session event, plus a short
// blip when a coin appears.
func (s *Sound) Attach(bus *game.EventBus) {
	if s == nil {
		return
	}
	bus.SubscribeAll(func(e game.Event) {
		if e.Type == game.EventCoinSpawned {
			s.blip(1320, 40*time.Millisecond)
			return
		}
		if k, ok := sfx.ForEvent(e.Type); ok {
			s.Play(k)
		}
	})
}

func (s *Sound) Play(k sfx.Kind) {
	if s == nil {
		return
	}
	speaker.Play(&monoStreamer{samples: s.bank[k]})
}

func (s *Sound) blip(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), &effects.Gain{Streamer: sine, Gain: -0.8}))
}

func (s *Sound) Close() {
	if s == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}

// monoStreamer plays pre-rendered mono samples on both channels.
type monoStreamer struct {
	samples []float64
	pos     int
}

func (m *monoStreamer) Stream(buf [][2]float64) (n int, ok bool) {
	if m.pos >= len(m.samples) {
		return 0, false
	}
	for n < len(buf) && m.pos < len(m.samples) {
		v := m.samples[m.pos]
		buf[n][0], buf[n][1] = v, v
		n++
		m.pos++
	}
	return n, true
}

func (m *monoStreamer) Err() error { return nil }
