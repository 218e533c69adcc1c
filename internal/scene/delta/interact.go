package delta

import "rio-delta/internal/core"

// Tool ids for the two fixed tools. Seed tools use their species id.
const (
	ToolSediment = "sediment"
	ToolRemove   = "remove"
)

// toolRouter maps pointer input plus the active tool onto scene actions,
// consulting the height fields to decide legality.
type toolRouter struct {
	cfg   InteractionConfig
	seeds *SeedsConfig

	active  string
	allowed map[string]bool
	order   []string
}

func newToolRouter(cfg InteractionConfig, seeds *SeedsConfig) *toolRouter {
	r := &toolRouter{cfg: cfg, seeds: seeds}
	r.order = append(r.order, ToolSediment, ToolRemove)
	for _, sp := range seeds.AllSpecies() {
		r.order = append(r.order, sp.ID)
	}
	r.allowed = map[string]bool{}
	return r
}

// recomputeAllowed rebuilds the allowed tool set from the stage's tool
// groups. Done once per stage transition, not per frame. When the active
// tool is no longer permitted it falls back to the sediment tool.
func (r *toolRouter) recomputeAllowed(groups []string) {
	r.allowed = map[string]bool{}
	want := map[string]bool{}
	for _, g := range groups {
		want[g] = true
	}
	if want["sediment"] {
		r.allowed[ToolSediment] = true
	}
	if want["remove"] {
		r.allowed[ToolRemove] = true
	}
	for _, sp := range r.seeds.AllSpecies() {
		if want[r.seeds.GroupOf(sp.ID)] {
			r.allowed[sp.ID] = true
		}
	}
	if r.active != "" && !r.allowed[r.active] {
		if r.allowed[ToolSediment] {
			r.active = ToolSediment
		} else {
			r.active = ""
		}
	}
}

// SelectTool toggles the active tool. Re-selecting the active tool
// deselects it; selecting a disallowed tool is a no-op.
func (r *toolRouter) SelectTool(id string) bool {
	if id == "" {
		r.active = ""
		return true
	}
	if !r.allowed[id] {
		return false
	}
	if r.active == id {
		r.active = ""
		return true
	}
	r.active = id
	return true
}

// Active reports the current tool id, empty when none is selected.
func (r *toolRouter) Active() string { return r.active }

// Tools lists every tool in presentation order with its allowed flag.
func (r *toolRouter) Tools() []core.ToolInfo {
	out := make([]core.ToolInfo, 0, len(r.order))
	for _, id := range r.order {
		label := id
		switch id {
		case ToolSediment:
			label = "Sedimento"
		case ToolRemove:
			label = "Quitar"
		default:
			if sp, ok := r.seeds.Species(id); ok {
				label = sp.Label
			}
		}
		out = append(out, core.ToolInfo{ID: id, Label: label, Enabled: r.allowed[id]})
	}
	return out
}

// CanSediment reports whether sediment may be released at a point: strictly
// submerged with margin, above the bed, and with a water column thick
// enough to be meaningful.
func (r *toolRouter) CanSediment(y, waterH, bedH float64) bool {
	eps := r.cfg.DepthMargin
	return y < waterH-eps && y > bedH+eps && waterH-bedH > 2*eps
}

// CanPlant reports whether a seed may be planted at a point: emerged ground
// and a click near the bed surface rather than floating above it.
func (r *toolRouter) CanPlant(y, waterH, bedH float64) bool {
	eps := r.cfg.DepthMargin
	return bedH > waterH+eps && y > waterH+eps && y <= bedH+r.cfg.SurfaceSlack
}
