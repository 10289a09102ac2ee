package main

import (
	"embed"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"colosseum/internal/catalog"
	"colosseum/internal/display"
	"colosseum/internal/engine"
	"colosseum/internal/server"
	"colosseum/internal/sim"
	"colosseum/internal/tui"
)

//go:embed web/static
var static embed.FS

var defaultNames = []string{"Aulus", "Brutus", "Cato", "Decimus", "Ennius"}

func main() {
	players := flag.Int("players", 3, "number of players (3-5)")
	names := flag.String("names", "", "comma-separated player names, overrides -players")
	seed := flag.Uint64("seed", 0, "market and dice seed, 0 picks one from the clock")
	port := flag.Int("port", 0, "spectator board port, 0 disables the server")
	eventsFile := flag.String("events", "", "alternate events file, default is built in")
	listing := flag.Bool("listing", false, "print the event program and exit")
	simulate := flag.Bool("sim", false, "autoplay a full game and print the scores")
	flag.Parse()

	cat, err := loadCatalog(*eventsFile)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	if *listing {
		fmt.Print(display.Listing(cat))
		return
	}

	playerNames := resolveNames(*names, *players)
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	if *simulate {
		runner, err := sim.New(playerNames, *seed)
		if err != nil {
			log.Fatalf("sim: %v", err)
		}
		scores, err := runner.Run()
		if err != nil {
			log.Fatalf("sim: %v", err)
		}
		fmt.Printf("seed %d\n", *seed)
		fmt.Print(display.Scoreboard(scores))
		return
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))

	cfg := engine.DefaultConfig()
	market := engine.BuildMarket(len(playerNames), cfg, rng)
	game, err := engine.NewGame(playerNames, cat, cfg, market)
	if err != nil {
		log.Fatalf("new game: %v", err)
	}

	var publish func(engine.PublicView, []engine.Event)
	if *port > 0 {
		srv := server.New(*port, static)
		publish = srv.Hub().Publish
		go func() {
			if err := srv.Start(); err != nil {
				log.Fatalf("server error: %v", err)
			}
		}()
		publish(game.PublicView(), nil)
	}

	log.Printf("starting game with seed %d", *seed)
	if err := tui.Run(game, rng, publish); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return catalog.Load(data)
}

func resolveNames(names string, players int) []string {
	if names != "" {
		parts := strings.Split(names, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	if players < 1 || players > len(defaultNames) {
		return defaultNames[:3]
	}
	return defaultNames[:players]
}
