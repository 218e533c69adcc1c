//go:build !ebiten

package ui

import "rio-delta/internal/core"

// HUD is a placeholder for headless builds.
type HUD struct{}

// NewHUD returns a no-op HUD in the headless build.
func NewHUD(core.Scene, int) *HUD { return &HUD{} }

// Update is a no-op placeholder.
func (h *HUD) Update() {}

// Draw is a no-op placeholder to satisfy the GUI build's call shape.
func (h *HUD) Draw(any, int, int) {}
