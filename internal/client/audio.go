package client

import (
	"bytes"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"tiltsnake/internal/game"
	"tiltsnake/internal/sfx"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Audio plays the pre-rendered effects through oto. A nil *Audio is silent,
// so callers can keep going when the device fails to open.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	bank   map[sfx.Kind][]byte
	volume float64
}

func NewAudio() (*Audio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	a := &Audio{ctx: ctx, ready: ready, bank: make(map[sfx.Kind][]byte), volume: 0.58}
	for _, k := range []sfx.Kind{sfx.Start, sfx.Coin, sfx.Grow, sfx.GameOver} {
		a.bank[k] = sfx.StereoF32(sfx.Generate(k, SampleRate))
	}
	return a, nil
}

// Attach plays the matching effect for every session event.
func (a *Audio) Attach(bus *game.EventBus) {
	if a == nil {
		return
	}
	bus.SubscribeAll(func(e game.Event) {
		if k, ok := sfx.ForEvent(e.Type); ok {
			a.Play(k)
		}
	})
}

// Play starts k and returns immediately. Effects requested before the device
// is ready are dropped.
func (a *Audio) Play(k sfx.Kind) {
	if a == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := a.bank[k]
	if len(samples) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}
