// Command tiltsnake-term plays the game in a terminal.
package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"tiltsnake/internal/game"
	"tiltsnake/internal/term"
	"tiltsnake/internal/tuning"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tiltsnake-term: ")

	configPath := flag.String("config", "", "YAML tuning file (defaults when empty)")
	seedFlag := flag.Uint64("seed", 0, "session seed (0 = SNAKE_SEED or clock)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	cfg, err := tuning.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	seed, err := tuning.Seed(*seedFlag)
	if err != nil {
		log.Printf("ignoring %v", err)
	}
	session, err := game.NewSession(cfg, seed)
	if err != nil {
		log.Fatal(err)
	}

	var sound *term.Sound
	if !*mute {
		if sound, err = term.NewSound(); err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		}
	}
	sound.Attach(session.Events)
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}

	best := 0
	session.Events.Subscribe(game.EventGameOver, func(e game.Event) {
		if e.Data > best {
			best = e.Data
		}
	})

	term.New(screen, session).Run()
	screen.Fini()
	log.Printf("best score %d", best)
}
