//go:build !android

package client

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"tiltsnake/internal/game"
	"tiltsnake/internal/scene"
)

// Run opens the desktop window and plays sessions until it is closed.
func Run(cfg game.Config, seed uint64) error {
	runtime.LockOSThread()

	session, err := game.NewSession(cfg, seed)
	if err != nil {
		return err
	}

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	audio, err := NewAudio()
	if err != nil {
		log.Printf("audio init failed (continuing without sound): %v", err)
	}
	audio.Attach(session.Events)
	session.Events.Subscribe(game.EventGameOver, func(e game.Event) {
		log.Printf("game over: score %d", e.Data)
	})

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	keys := newKeyboard(window)
	pad := gamepad{joy: glfw.Joystick1}

	var (
		snap  *game.Snapshot
		frame scene.Frame
		title string
	)
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		space := keys.JustPressed(glfw.KeySpace)
		enter := keys.JustPressed(glfw.KeyEnter)

		switch session.State {
		case game.StateIdle, game.StateGameOver:
			if space || enter {
				session.Restart()
			}
		case game.StateRunning:
			session.Tick(game.PollInputs(pad, keys), dt)
		}

		snap = session.Snapshot(snap)
		if t := scene.Status(snap); t != title {
			window.SetTitle(t)
			title = t
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		frame.Build(snap, cfg, now)
		rend.BeginFrame(fbW, fbH)
		rend.DrawFrame(&frame, scene.Fit(cfg, fbW, fbH), fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}
