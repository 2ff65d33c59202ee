// Package sfx synthesises the game's sound effects as mono PCM so each front
// end can hand them to its own audio backend.
package sfx

import (
	"math"

	"tiltsnake/internal/game"
)

// Kind identifies a sound effect.
type Kind int

const (
	Start Kind = iota
	Coin
	Grow
	GameOver
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case Coin:
		return "coin"
	case Grow:
		return "grow"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// ForEvent maps session events to the effect that accompanies them.
func ForEvent(t game.EventType) (Kind, bool) {
	switch t {
	case game.EventSessionStarted:
		return Start, true
	case game.EventCoinCollected:
		return Coin, true
	case game.EventSegmentAdded:
		return Grow, true
	case game.EventGameOver:
		return GameOver, true
	}
	return 0, false
}

// Generate renders k at the given sample rate. Samples lie in [-1, 1].
func Generate(k Kind, rate int) []float64 {
	sr := float64(rate)
	switch k {
	case Start:
		return genStart(sr)
	case Coin:
		return genCoin(sr)
	case Grow:
		return genGrow(sr)
	case GameOver:
		return genGameOver(sr)
	}
	return nil
}

// genStart: crisp click with a falling high tone.
func genStart(sr float64) []float64 {
	n := int(0.065 * sr)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / sr
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		out[i] = softSat(fm(t, freq, 1.0, 0.6) * env * 0.38)
	}
	return out
}

// genCoin: bright FM pop rising in pitch.
func genCoin(sr float64) []float64 {
	n := int(0.09 * sr)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / sr
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 660 + 880*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		out[i] = softSat(s)
	}
	return out
}

// genGrow: two bell notes a fifth apart, the second ringing over the first.
func genGrow(sr float64) []float64 {
	notes := []float64{523.25, 783.99}
	step := int(0.06 * sr)
	total := len(notes)*step + int(0.12*sr)
	out := make([]float64, total)
	for k, freq := range notes {
		start := k * step
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / sr
			env := adsr(float64(j)/float64(dur), 0.003, 0.6, 0.05, 0.3)
			out[start+j] += fm(t, freq, 3.5, 4.0*env) * env * 0.26
		}
	}
	for i, s := range out {
		out[i] = softSat(s)
	}
	return out
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver(sr float64) []float64 {
	n := int(0.75 * sr)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	out := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * sr)
		for i := start; i < n; i++ {
			t := float64(i) / sr
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			out[i] += s
		}
	}
	for i, s := range out {
		out[i] = softSat(s)
	}
	return out
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// PutStereoF32 writes a [-1,1] sample as float32 LE to both channels of
// frame i.
func PutStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// StereoF32 encodes mono samples as interleaved stereo float32 LE.
func StereoF32(samples []float64) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		PutStereoF32(buf, i, s)
	}
	return buf
}
