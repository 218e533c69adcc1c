//go:build !ebiten

package ui

import "rio-delta/internal/core"

// Banner is a placeholder for headless builds.
type Banner struct{}

// NewBanner returns a no-op Banner in the headless build.
func NewBanner(core.Scene, float64) *Banner { return &Banner{} }

// Update is a no-op placeholder.
func (b *Banner) Update(float64) {}

// Draw is a no-op placeholder to satisfy the GUI build's call shape.
func (b *Banner) Draw(any, int) {}
