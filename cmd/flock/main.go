package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-flock-arena/internal/arena"
	"github.com/lao-tseu-is-alive/go-flock-arena/pkg/flock"
)

func main() {
	configFile := flag.String("config", "", "path to a JSON config file")
	schemaFile := flag.String("schema", "config/flock.schema.json", "path to the config JSON schema")
	flag.Parse()

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		loaded, err := flock.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("loading config %s: %v", *configFile, err)
		}
		cfg = loaded
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Flock Arena")

	if err := ebiten.RunGame(arena.NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
