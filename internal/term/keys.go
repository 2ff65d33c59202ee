package term

import "tiltsnake/internal/game"

// KeyHold is how long, in seconds, a key counts as held after its last press
// or auto-repeat. Terminals report presses, never releases.
const KeyHold = 0.25

type action int

const (
	actUp action = iota
	actDown
	actLeft
	actRight
	actCCW
	actCW
	numActions
)

// keyState latches key presses for KeyHold seconds and serves them as an
// input provider.
type keyState struct {
	until [numActions]float64
	now   float64
}

func (k *keyState) press(a action) { k.until[a] = k.now + KeyHold }

func (k *keyState) advance(now float64) { k.now = now }

func (k *keyState) held(a action) bool { return k.until[a] > k.now }

func (k *keyState) reset() { k.until = [numActions]float64{} }

func (k *keyState) Poll() game.Input {
	return game.Input{
		Steer: game.KeySteering(k.held(actUp), k.held(actDown), k.held(actLeft), k.held(actRight)),
		Turn:  game.TurnInput(k.held(actCCW), k.held(actCW)),
	}
}
