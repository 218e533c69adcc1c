//go:build ebiten

package app

import (
	"time"

	"rio-delta/internal/core"
	"rio-delta/internal/render"
	"rio-delta/internal/scene/delta"
	"rio-delta/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type pointerHandler interface {
	PointerDown(x, y float64) bool
}

type waterLevelSetter interface {
	SetWaterLevel(index int)
}

// Game adapts a core scene to the ebiten.Game interface: fixed-step
// updates, pointer routing into the scene and HUD wiring.
type Game struct {
	scene  core.Scene
	ticker *core.FixedStep
	hud    *ui.HUD
	banner *ui.Banner

	viewW, viewH int
	hudW         int

	pixels    []byte
	frameImg  *ebiten.Image
	waterRows []int
	bedRows   []int

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided scene.
func New(scene core.Scene, cfg *Config) *Game {
	frame := scene.Frame()
	viewH := cfg.WindowH
	viewW := int(frame.Width/frame.Height*float64(viewH) + 0.5)
	g := &Game{
		scene:  scene,
		ticker: core.NewFixedStep(cfg.TPS),
		hud:    ui.NewHUD(scene, cfg.HUDWidth),
		banner: ui.NewBanner(scene, 6),
		viewW:  viewW,
		viewH:  viewH,
		hudW:   cfg.HUDWidth,
		pixels: make([]byte, viewW*viewH*4),
		seed:   cfg.Seed,
	}
	g.frameImg = ebiten.NewImage(viewW, viewH)
	return g
}

// Reset reinitializes the scene state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.scene.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if ls, ok := g.scene.(waterLevelSetter); ok {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyJ):
			ls.SetWaterLevel(0)
		case inpututil.IsKeyJustPressed(ebiten.KeyK):
			ls.SetWaterLevel(1)
		case inpututil.IsKeyJustPressed(ebiten.KeyL):
			ls.SetWaterLevel(2)
		}
	}

	if tp, ok := g.scene.(core.ToolProvider); ok {
		tools := tp.Tools()
		for i, key := range toolKeys {
			if i >= len(tools) {
				break
			}
			if inpututil.IsKeyJustPressed(key) {
				tp.SelectTool(tools[i].ID)
			}
		}
	}

	if ph, ok := g.scene.(pointerHandler); ok {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			px, py := ebiten.CursorPosition()
			if px >= 0 && px < g.viewW && py >= 0 && py < g.viewH {
				x, y := ViewportToWorld(g.scene.Frame(), float64(px), float64(py), g.viewW, g.viewH)
				ph.PointerDown(x, y)
			}
		}
	}

	g.hud.Update()
	g.banner.Update(g.ticker.DT())

	if g.paused {
		g.ticker.Skip()
		if g.tickOnce {
			g.scene.Update(g.ticker.DT())
			g.tickOnce = false
		}
		return nil
	}
	g.tickOnce = false
	for g.ticker.ShouldStep() {
		g.scene.Update(g.ticker.DT())
	}
	return nil
}

var toolKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Draw renders the current scene state.
func (g *Game) Draw(screen *ebiten.Image) {
	if ds, ok := g.scene.(*delta.Scene); ok {
		g.drawDelta(ds)
	}
	screen.DrawImage(g.frameImg, nil)
	g.banner.Draw(screen, g.viewW)
	g.hud.Draw(screen, g.viewW, g.viewH)
}

func (g *Game) drawDelta(ds *delta.Scene) {
	frame := ds.Frame()
	colors := ds.Colors()
	g.waterRows = render.SurfaceRows(ds.WaterField(), frame.Top, frame.Bottom, g.viewW, g.viewH, g.waterRows)
	g.bedRows = render.SurfaceRows(ds.BedField(), frame.Top, frame.Bottom, g.viewW, g.viewH, g.bedRows)
	render.FillStrip(g.pixels, g.viewW, g.viewH, g.waterRows, g.bedRows,
		render.RGB(colors.Sky), render.RGB(colors.Water), render.RGB(colors.Bed))

	sand := render.RGB([3]float64{0.78, 0.70, 0.50})
	for _, pv := range ds.SedimentViews() {
		px, py := g.worldToPixel(frame, pv.X, pv.Y)
		render.FillRect(g.pixels, g.viewW, g.viewH, px-1, py-1, px+2, py+2, sand)
	}

	plantCol := render.RGB(colors.Plant)
	blocked := render.RGB([3]float64{0.45, 0.45, 0.30})
	for _, p := range ds.Plants() {
		v := ds.PlantVisual(p)
		col := plantCol
		if p.CompetitionBlocked {
			col = blocked
		}
		halfW := 2 + p.StageIndex
		height := 4 + p.StageIndex*6
		if v.Kind == delta.VisualProcedural && v.Height > 0 {
			height = g.worldSpanToPixels(frame, v.Height)
			halfW = g.worldSpanToPixels(frame, v.Width) / 2
			if halfW < 1 {
				halfW = 1
			}
		}
		px, py := g.worldToPixel(frame, p.X, p.BaseY)
		render.FillRect(g.pixels, g.viewW, g.viewH, px-halfW, py-height, px+halfW+1, py, col)
	}

	g.frameImg.WritePixels(g.pixels)
	ds.WaterField().ClearDirty()
	ds.BedField().ClearDirty()
}

func (g *Game) worldToPixel(frame core.Frame, x, y float64) (int, int) {
	px := int(x / frame.Width * float64(g.viewW))
	py := int((frame.Top - y) / (frame.Top - frame.Bottom) * float64(g.viewH))
	return px, py
}

func (g *Game) worldSpanToPixels(frame core.Frame, span float64) int {
	return int(span / (frame.Top - frame.Bottom) * float64(g.viewH))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW + g.hudW, g.viewH
}
