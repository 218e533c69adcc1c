//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"rio-delta/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the tool palette and parameter panel to the right of the
// scene view. Controls are keyboard driven: [ and ] cycle the selected
// parameter, - and = adjust it.
type HUD struct {
	scene core.Scene
	width int

	panel      *ebiten.Image
	lastHeight int

	tools       core.ToolProvider
	controls    []core.ParameterControl
	selected    int
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	snapshot    core.ParameterSnapshot
}

// NewHUD constructs a HUD for the provided scene and panel width.
func NewHUD(scene core.Scene, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{scene: scene, width: width}
	if tp, ok := scene.(core.ToolProvider); ok {
		h.tools = tp
	}
	if provider, ok := scene.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := scene.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := scene.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the parameter snapshot and handles HUD key input.
func (h *HUD) Update() {
	if h == nil || h.width <= 0 {
		return
	}
	if provider, ok := h.scene.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	if len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRightBracket) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		h.adjust(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		h.adjust(1)
	}
}

func (h *HUD) adjust(dir float64) {
	ctrl := h.controls[h.selected]
	current, ok := h.currentValue(ctrl.Key)
	if !ok {
		return
	}
	next := current + ctrl.Step*dir
	if ctrl.HasMin && next < ctrl.Min {
		next = ctrl.Min
	}
	if ctrl.HasMax && next > ctrl.Max {
		next = ctrl.Max
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(ctrl.Key, int(next))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(ctrl.Key, next)
		}
	}
}

func (h *HUD) currentValue(key string) (float64, bool) {
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if p.Key != key {
				continue
			}
			v, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 18, B: 22, A: 255})

	face := basicfont.Face7x13
	y := 18
	text.Draw(h.panel, "Delta", face, 10, y, color.White)
	y += 20

	if h.tools != nil {
		text.Draw(h.panel, "Herramientas", face, 10, y, color.RGBA{R: 150, G: 180, B: 200, A: 255})
		y += 16
		active := h.tools.ActiveTool()
		for i, tool := range h.tools.Tools() {
			marker := "  "
			if tool.ID == active {
				marker = "> "
			}
			col := color.RGBA{R: 110, G: 110, B: 110, A: 255}
			if tool.Enabled {
				col = color.RGBA{R: 220, G: 220, B: 220, A: 255}
			}
			text.Draw(h.panel, fmt.Sprintf("%s%d %s", marker, i+1, tool.Label), face, 10, y, col)
			y += 14
		}
		y += 10
	}

	if len(h.controls) > 0 {
		text.Draw(h.panel, "Parametros  [ ] - =", face, 10, y, color.RGBA{R: 150, G: 180, B: 200, A: 255})
		y += 16
		for i, ctrl := range h.controls {
			marker := "  "
			if i == h.selected {
				marker = "> "
			}
			value := "--"
			if v, ok := h.currentValue(ctrl.Key); ok {
				if ctrl.Type == core.ParamTypeInt {
					value = strconv.Itoa(int(v))
				} else {
					value = strconv.FormatFloat(v, 'f', 3, 64)
				}
			}
			text.Draw(h.panel, fmt.Sprintf("%s%s: %s", marker, ctrl.Label, value), face, 10, y, color.RGBA{R: 210, G: 210, B: 210, A: 255})
			y += 14
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
