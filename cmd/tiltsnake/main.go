// Command tiltsnake runs the game in a desktop window, or as a gomobile app
// when built for Android.
package main

import (
	"flag"
	"log"

	"tiltsnake/internal/client"
	"tiltsnake/internal/tuning"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tiltsnake: ")

	configPath := flag.String("config", "", "YAML tuning file (defaults when empty)")
	seedFlag := flag.Uint64("seed", 0, "session seed (0 = SNAKE_SEED or clock)")
	flag.Parse()

	cfg, err := tuning.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	seed, err := tuning.Seed(*seedFlag)
	if err != nil {
		log.Printf("ignoring %v", err)
	}
	if err := client.Run(cfg, seed); err != nil {
		log.Fatal(err)
	}
}
