package delta

import "fmt"

// SequenceState tracks the asynchronous life of a sprite sequence handle.
type SequenceState int

const (
	// SequenceLoading marks a handle whose frames are not available yet.
	SequenceLoading SequenceState = iota
	// SequenceReady marks a handle with usable frames.
	SequenceReady
	// SequenceError marks a handle whose load failed; the renderer falls
	// back to the procedural shape.
	SequenceError
)

// SpriteSequence is a future-like handle to one species/stage animation.
// The lifecycle state machine tolerates Loading as a legitimate transient
// state; nothing in the simulation blocks on it.
type SpriteSequence struct {
	SpeciesID string
	Stage     int
	State     SequenceState
	Frames    int
	Err       error
}

// SequenceCache hands out sequence handles and lets the external asset
// layer complete them. Handles are shared: every plant at the same
// species/stage sees the same state flip.
type SequenceCache struct {
	entries map[string]*SpriteSequence
}

func newSequenceCache() *SequenceCache {
	return &SequenceCache{entries: map[string]*SpriteSequence{}}
}

func sequenceKey(speciesID string, stage int) string {
	return fmt.Sprintf("%s/%d", speciesID, stage)
}

// Request returns the handle for a species/stage, creating it in the
// Loading state on first use.
func (c *SequenceCache) Request(speciesID string, stage int) *SpriteSequence {
	key := sequenceKey(speciesID, stage)
	if seq, ok := c.entries[key]; ok {
		return seq
	}
	seq := &SpriteSequence{SpeciesID: speciesID, Stage: stage}
	c.entries[key] = seq
	return seq
}

// Complete resolves a pending handle. The asset layer calls it from the
// same goroutine as the tick loop (run-to-completion event semantics).
func (c *SequenceCache) Complete(speciesID string, stage int, frames int, err error) {
	seq := c.Request(speciesID, stage)
	if err != nil {
		seq.State = SequenceError
		seq.Err = err
		return
	}
	seq.State = SequenceReady
	seq.Frames = frames
}

// ShapeKind enumerates the procedural fallback silhouettes.
type ShapeKind int

const (
	// ShapeSprout is the seed/germinated silhouette.
	ShapeSprout ShapeKind = iota
	// ShapeShrub is the small/medium silhouette.
	ShapeShrub
	// ShapeCanopy is the full-grown silhouette.
	ShapeCanopy
)

// VisualKind tags the Visual variants.
type VisualKind int

const (
	// VisualProcedural draws a simple parameterized shape.
	VisualProcedural VisualKind = iota
	// VisualSprite draws a frame from a ready sprite sequence.
	VisualSprite
)

// Visual is the tagged representation handed to the renderer. The core only
// decides which variant applies; drawing is an external concern.
type Visual struct {
	Kind VisualKind

	Sequence *SpriteSequence
	Frame    int

	Shape  ShapeKind
	Width  float64
	Height float64
}

// VisualFor chooses the representation for a plant: its stage sprite when
// the sequence is Ready, the procedural silhouette otherwise.
func (pf *plantField) VisualFor(p *Plant) Visual {
	sp, ok := pf.cfg.Species(p.SpeciesID)
	if !ok {
		return Visual{Kind: VisualProcedural, Shape: ShapeSprout}
	}
	if p.visual != nil && p.visual.State == SequenceReady && p.visual.Frames > 0 {
		frame := p.StageIndex % p.visual.Frames
		return Visual{Kind: VisualSprite, Sequence: p.visual, Frame: frame}
	}
	shape := ShapeSprout
	switch {
	case p.StageIndex >= PlantStageCount-1:
		shape = ShapeCanopy
	case p.StageIndex >= 2:
		shape = ShapeShrub
	}
	return Visual{
		Kind:   VisualProcedural,
		Shape:  shape,
		Width:  sp.Radius * 2,
		Height: pf.height(p, sp),
	}
}
