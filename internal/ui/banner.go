//go:build ebiten

package ui

import (
	"image/color"

	"rio-delta/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Banner presents stage intro/completion messages over the scene view,
// fading each one out after a hold period.
type Banner struct {
	source  core.EventSource
	message string
	left    float64
	hold    float64
}

// NewBanner constructs a Banner draining events from the scene.
func NewBanner(scene core.Scene, holdSeconds float64) *Banner {
	b := &Banner{hold: holdSeconds}
	if src, ok := scene.(core.EventSource); ok {
		b.source = src
	}
	return b
}

// Update drains newly queued events and ages the current message. The
// newest event supersedes whatever was showing.
func (b *Banner) Update(dt float64) {
	if b == nil {
		return
	}
	if b.source != nil {
		for _, ev := range b.source.DrainEvents() {
			if ev.Kind == core.EventAssetFallback {
				continue
			}
			b.message = ev.Message
			b.left = b.hold
		}
	}
	if b.left > 0 {
		b.left -= dt
		if b.left <= 0 {
			b.message = ""
		}
	}
}

// Draw paints the current message centered near the top of the view.
func (b *Banner) Draw(screen *ebiten.Image, viewW int) {
	if b == nil || b.message == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.message)
	x := (viewW - bounds.Dx()) / 2
	if x < 4 {
		x = 4
	}
	alpha := 1.0
	if b.left < 1 {
		alpha = b.left
	}
	a := uint8(alpha * 255)
	text.Draw(screen, b.message, face, x+1, 25, color.RGBA{A: a})
	text.Draw(screen, b.message, face, x, 24, color.RGBA{R: a, G: a, B: a, A: a})
}
