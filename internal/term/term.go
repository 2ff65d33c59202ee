// Package term is a tcell front end: the board is drawn with block glyphs and
// steered from the keyboard.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"tiltsnake/internal/game"
)

// FrameInterval is the redraw and simulation period.
const FrameInterval = 16 * time.Millisecond

// Glyphs.
const (
	glyphHead  = '█'
	glyphBody  = '▓'
	glyphCoin  = '◆'
	glyphFloor = '·'
)

var (
	styleBase   = tcell.StyleDefault.Background(tcell.NewRGBColor(11, 15, 26))
	styleFloor  = styleBase.Foreground(tcell.NewRGBColor(45, 55, 80))
	styleWall   = styleBase.Foreground(tcell.NewRGBColor(90, 105, 140))
	styleHead   = styleBase.Foreground(tcell.NewRGBColor(0xff, 0x7a, 0x59))
	styleBody   = styleBase.Foreground(tcell.NewRGBColor(0x1d, 0xe9, 0xb6))
	styleBodyB  = styleBase.Foreground(tcell.NewRGBColor(0x17, 0xb7, 0x8f))
	styleCoin   = styleBase.Foreground(tcell.NewRGBColor(0xff, 0xf0, 0x66))
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

type Game struct {
	screen  tcell.Screen
	session *game.Session
	keys    keyState
	snap    *game.Snapshot
	start   time.Time
	last    time.Time
}

func New(screen tcell.Screen, session *game.Session) *Game {
	now := time.Now()
	return &Game{screen: screen, session: session, start: now, last: now}
}

// Run drives the session until Esc or Ctrl-C. The screen must already be
// initialised; Run does not call Fini.
func (g *Game) Run() {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()
	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			g.Step(now)
			g.Draw()
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.key(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// key applies one key press and reports whether to keep running.
func (g *Game) key(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		g.keys.press(actUp)
	case tcell.KeyDown:
		g.keys.press(actDown)
	case tcell.KeyLeft:
		g.keys.press(actLeft)
	case tcell.KeyRight:
		g.keys.press(actRight)
	case tcell.KeyEnter:
		g.restart()
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			g.keys.press(actUp)
		case 's', 'S':
			g.keys.press(actDown)
		case 'a', 'A':
			g.keys.press(actLeft)
		case 'd', 'D':
			g.keys.press(actRight)
		case 'q', 'Q':
			g.keys.press(actCCW)
		case 'e', 'E':
			g.keys.press(actCW)
		case ' ':
			g.restart()
		}
	}
	return true
}

func (g *Game) restart() {
	if g.session.State == game.StateRunning {
		return
	}
	g.keys.reset()
	g.session.Restart()
}

// Step advances the session to wall time now.
func (g *Game) Step(now time.Time) {
	dt := now.Sub(g.last).Seconds()
	g.last = now
	g.keys.advance(now.Sub(g.start).Seconds())
	if g.session.State == game.StateRunning {
		g.session.Tick(game.PollInputs(&g.keys), dt)
	}
	g.snap = g.session.Snapshot(g.snap)
}
