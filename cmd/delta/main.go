//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"rio-delta/internal/app"
	"rio-delta/internal/core"
	_ "rio-delta/internal/scene/delta"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Scenes()[cfg.Scene]
	if !ok {
		log.Fatalf("unknown scene %q", cfg.Scene)
	}

	scene := factory(nil)
	scene.Reset(cfg.Seed)

	game := app.New(scene, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("rio-delta — " + scene.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
