//go:build !android

package client

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"tiltsnake/internal/game"
)

// StickDeadZone is the gamepad stick deflection treated as centred.
const StickDeadZone = 0.2

// keyboard steers from WASD/arrows and turns with Q/E.
type keyboard struct {
	win  *glfw.Window
	prev map[glfw.Key]bool
}

func newKeyboard(win *glfw.Window) *keyboard {
	return &keyboard{win: win, prev: make(map[glfw.Key]bool)}
}

func (k *keyboard) down(keys ...glfw.Key) bool {
	for _, key := range keys {
		if k.win.GetKey(key) == glfw.Press {
			return true
		}
	}
	return false
}

func (k *keyboard) Poll() game.Input {
	return game.Input{
		Steer: game.KeySteering(
			k.down(glfw.KeyW, glfw.KeyUp),
			k.down(glfw.KeyS, glfw.KeyDown),
			k.down(glfw.KeyA, glfw.KeyLeft),
			k.down(glfw.KeyD, glfw.KeyRight),
		),
		Turn: game.TurnInput(k.down(glfw.KeyQ), k.down(glfw.KeyE)),
	}
}

func (k *keyboard) JustPressed(key glfw.Key) bool {
	down := k.win.GetKey(key) == glfw.Press
	jp := down && !k.prev[key]
	k.prev[key] = down
	return jp
}

// gamepad reads the left stick of a joystick as an analogue tilt.
type gamepad struct {
	joy glfw.Joystick
}

func (g gamepad) Poll() game.Input {
	if !g.joy.Present() {
		return game.Input{}
	}
	axes := g.joy.GetAxes()
	if len(axes) < 2 {
		return game.Input{}
	}
	v := game.Vec2{X: float64(axes[0]), Z: float64(axes[1])}
	if v.Len() <= StickDeadZone {
		return game.Input{}
	}
	return game.Input{Steer: v.Normalize()}
}
