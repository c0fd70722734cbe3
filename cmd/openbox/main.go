//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"openbox/internal/app"
	"openbox/internal/core"
	"openbox/internal/sandbox"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["sandbox"]
	if !ok {
		log.Fatal("sandbox sim not registered")
	}

	gw, gh := cfg.GridSize()
	sim := factory(map[string]string{
		"w":    strconv.Itoa(gw),
		"h":    strconv.Itoa(gh),
		"seed": strconv.FormatInt(cfg.Seed, 10),
	})
	world, ok := sim.(*sandbox.World)
	if !ok {
		log.Fatalf("unexpected sim type %T", sim)
	}
	world.Reset(cfg.Seed)

	game := app.New(world, cfg)

	ebiten.SetWindowTitle("openbox")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
