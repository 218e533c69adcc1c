package delta

import "math"

// PlantStageCount is the number of life stages every species moves through:
// seed, germinated, small, medium, large.
const PlantStageCount = 5

// Plant is one planted entity. BaseY is the riverbed height captured at
// plant time; it never tracks later bed deformation, so an anchor does not
// move when sediment lands nearby.
type Plant struct {
	ID        int
	SpeciesID string

	X     float64
	BaseY float64

	StageIndex int
	StageTimer float64

	CompetitionBlocked bool

	transitionLeft float64
	visual         *SpriteSequence
}

// plantField exclusively owns the plant list and runs the per-plant
// lifecycle state machine plus the neighborhood competition rule.
type plantField struct {
	cfg       SeedsConfig
	plants    []*Plant
	nextID    int
	sequences *SequenceCache
	advances  int
}

func newPlantField(cfg SeedsConfig, sequences *SequenceCache) *plantField {
	return &plantField{cfg: cfg, sequences: sequences}
}

func (pf *plantField) reset() {
	pf.plants = pf.plants[:0]
	pf.nextID = 0
	pf.advances = 0
}

// Plants exposes the owned list for the renderer and goal evaluation.
func (pf *plantField) Plants() []*Plant { return pf.plants }

// Plant creates a new plant anchored at the given bed height. Unknown
// species ids are skipped rather than reported.
func (pf *plantField) Plant(speciesID string, x, baseY float64) *Plant {
	if _, ok := pf.cfg.Species(speciesID); !ok {
		return nil
	}
	pf.nextID++
	p := &Plant{
		ID:        pf.nextID,
		SpeciesID: speciesID,
		X:         x,
		BaseY:     baseY,
		visual:    pf.sequences.Request(speciesID, 0),
	}
	pf.plants = append(pf.plants, p)
	return p
}

// RemoveAt removes and returns the nearest plant whose hit bounds contain
// the point, or nil when nothing was hit.
func (pf *plantField) RemoveAt(x, y float64) *Plant {
	bestIdx := -1
	bestDist := math.MaxFloat64
	for i, p := range pf.plants {
		sp, ok := pf.cfg.Species(p.SpeciesID)
		if !ok {
			continue
		}
		cx, cy := p.X, pf.midY(p, sp)
		r := sp.Radius
		if half := pf.height(p, sp) / 2; half > r {
			r = half
		}
		dx, dy := x-cx, y-cy
		d2 := dx*dx + dy*dy
		if d2 <= r*r && d2 < bestDist {
			bestDist = d2
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return nil
	}
	p := pf.plants[bestIdx]
	pf.plants = append(pf.plants[:bestIdx], pf.plants[bestIdx+1:]...)
	return p
}

// Update runs the lifecycle state machine for every plant. Stage advancement
// requires the submersion/emersion condition to hold continuously for the
// full transition duration; any interruption resets the timer to zero.
// Returns the number of stage advances this tick.
func (pf *plantField) Update(dt float64, water *waterSurface) int {
	advances := 0
	for _, p := range pf.plants {
		if p.transitionLeft > 0 {
			p.transitionLeft -= dt
			continue
		}
		if p.CompetitionBlocked {
			continue
		}
		need := pf.cfg.Stages[p.StageIndex]
		if need == NeedNone {
			continue
		}

		surface := water.field.HeightAt(p.X)
		met := false
		switch need {
		case NeedSubmerged:
			met = surface >= p.BaseY+pf.cfg.SubmergeOffset
		case NeedEmerged:
			met = surface <= p.BaseY-pf.cfg.EmergenceOffset
		}

		if !met {
			p.StageTimer = 0
			continue
		}
		p.StageTimer += dt
		if p.StageTimer < pf.cfg.TransitionDuration {
			continue
		}
		p.StageIndex++
		p.StageTimer = 0
		p.transitionLeft = pf.cfg.TransitionAnimation
		p.visual = pf.sequences.Request(p.SpeciesID, p.StageIndex)
		advances++
	}
	pf.evaluateCompetition()
	return advances
}

// evaluateCompetition blocks plants that are behind the mean stage of a
// crowded neighborhood. O(n²) over all plants; plant counts stay small by
// design. A plant with no neighbors in radius is never blocked.
func (pf *plantField) evaluateCompetition() {
	r2 := pf.cfg.NeighborRadius * pf.cfg.NeighborRadius
	for _, p := range pf.plants {
		sp, _ := pf.cfg.Species(p.SpeciesID)
		px, py := p.X, pf.midY(p, sp)

		count := 0
		stageSum := 0
		for _, q := range pf.plants {
			if q == p {
				continue
			}
			qsp, _ := pf.cfg.Species(q.SpeciesID)
			dx := q.X - px
			dy := pf.midY(q, qsp) - py
			if dx*dx+dy*dy > r2 {
				continue
			}
			count++
			stageSum += q.StageIndex
		}

		if count <= pf.cfg.MinNeighbors {
			p.CompetitionBlocked = false
			continue
		}
		mean := float64(stageSum) / float64(count)
		p.CompetitionBlocked = float64(p.StageIndex) < mean
	}
}

// CountAtTerminal reports how many plants of the species reached the last
// stage.
func (pf *plantField) CountAtTerminal(speciesID string) int {
	n := 0
	for _, p := range pf.plants {
		if p.SpeciesID == speciesID && p.StageIndex == PlantStageCount-1 {
			n++
		}
	}
	return n
}

func (pf *plantField) height(p *Plant, sp SpeciesConfig) float64 {
	return sp.Height * float64(p.StageIndex+1) / PlantStageCount
}

func (pf *plantField) midY(p *Plant, sp SpeciesConfig) float64 {
	return p.BaseY + pf.height(p, sp)/2
}
