package game

import "math"

// Input is one tick's worth of steering. Steer is a planar vector (zero when
// absent); Turn is -1, 0 or +1, +1 turning counter-clockwise.
type Input struct {
	Steer Vec2
	Turn  int
}

// InputProvider is a steering source the front end polls each tick, such as a
// tilt sensor, a gamepad stick or the keyboard.
type InputProvider interface {
	Poll() Input
}

// InputFunc adapts a plain function to InputProvider.
type InputFunc func() Input

func (f InputFunc) Poll() Input { return f() }

// PollInputs merges providers in priority order: the first non-zero steering
// vector wins, and independently the first non-zero turn rate.
func PollInputs(providers ...InputProvider) Input {
	var out Input
	haveSteer := false
	for _, p := range providers {
		if p == nil {
			continue
		}
		in := p.Poll()
		if !haveSteer && !in.Steer.IsZero() {
			out.Steer = in.Steer
			haveSteer = true
		}
		if out.Turn == 0 && in.Turn != 0 {
			out.Turn = in.Turn
		}
		if haveSteer && out.Turn != 0 {
			break
		}
	}
	return out
}

// Tilt sensor shaping.
const (
	TiltMaxDegrees = 70.0
	TiltDeadZone   = 0.08
)

// TiltSteering turns a device orientation reading into a steering vector.
// beta is front-back tilt and gamma left-right tilt, both in degrees; tilting
// the top edge away from the player steers up the board (-Z). Readings inside
// the dead zone steer nowhere.
func TiltSteering(betaDeg, gammaDeg float64) Vec2 {
	beta := clampF(betaDeg, -TiltMaxDegrees, TiltMaxDegrees) * math.Pi / 180
	gamma := clampF(gammaDeg, -TiltMaxDegrees, TiltMaxDegrees) * math.Pi / 180
	v := Vec2{X: math.Sin(gamma), Z: -math.Sin(beta)}
	if v.Len() <= TiltDeadZone {
		return Vec2{}
	}
	return v.Normalize()
}

// TiltFromGravity converts an accelerometer reading in device axes (x right,
// y toward the top edge, z out of the screen) into the beta/gamma angles
// TiltSteering expects.
func TiltFromGravity(x, y, z float64) (betaDeg, gammaDeg float64) {
	betaDeg = math.Atan2(y, z) * 180 / math.Pi
	gammaDeg = math.Atan2(-x, z) * 180 / math.Pi
	return betaDeg, gammaDeg
}

// KeySteering builds the eight-way steering vector from held direction keys.
// Opposing keys cancel.
func KeySteering(up, down, left, right bool) Vec2 {
	var v Vec2
	if up {
		v.Z--
	}
	if down {
		v.Z++
	}
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	return v.Normalize()
}

// TurnInput converts a pair of held turn keys into a turn rate.
func TurnInput(ccw, cw bool) int {
	switch {
	case ccw && !cw:
		return 1
	case cw && !ccw:
		return -1
	}
	return 0
}

// Steer computes the tick's target direction from the previous target and
// the merged input, then fits it to the walls around head.
func Steer(target Vec2, in Input, head Vec2, cfg Config, bounds Boundary, dt float64) Vec2 {
	switch {
	case !in.Steer.IsZero():
		target = in.Steer.Normalize()
	case in.Turn != 0:
		target = target.Rotate(float64(in.Turn) * cfg.TurnRate * dt)
		if target.LenSq() < degenerateLenSq {
			target = Forward
		}
	}
	return bounds.Adjust(target, head).Normalize()
}
