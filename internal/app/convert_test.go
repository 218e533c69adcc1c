package app

import (
	"flag"
	"testing"

	"rio-delta/internal/core"
)

func TestViewportToWorld(t *testing.T) {
	frame := core.Frame{Width: 2, Height: 2, Top: 1, Bottom: -1}

	cases := []struct {
		px, py float64
		x, y   float64
	}{
		{0, 0, 0, 1},
		{100, 100, 2, -1},
		{50, 50, 1, 0},
		{100, 0, 2, 1},
	}
	for _, tc := range cases {
		x, y := ViewportToWorld(frame, tc.px, tc.py, 100, 100)
		if x != tc.x || y != tc.y {
			t.Fatalf("ViewportToWorld(%f,%f) = (%f,%f), want (%f,%f)", tc.px, tc.py, x, y, tc.x, tc.y)
		}
	}
}

func TestViewportToWorldZeroViewport(t *testing.T) {
	frame := core.Frame{Width: 2, Height: 2, Top: 1, Bottom: -1}
	if x, y := ViewportToWorld(frame, 10, 10, 0, 100); x != 0 || y != 0 {
		t.Fatalf("degenerate viewport returned (%f,%f)", x, y)
	}
}

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	if err := fs.Parse([]string{"-scene", "delta", "-seed", "7", "-tps", "30", "-hud", "0"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Scene != "delta" || cfg.Seed != 7 || cfg.TPS != 30 || cfg.HUDWidth != 0 {
		t.Fatalf("parsed config %+v", cfg)
	}
	if cfg.WindowH != 540 {
		t.Fatalf("unset flag lost its default: %d", cfg.WindowH)
	}
}
