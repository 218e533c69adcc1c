package delta

import "rio-delta/internal/core"

// progression is the ordered state machine over ecological stages. The
// stage index only increases; stageComplete latches the first goal hit so a
// scheduled advance is never retracted by later mutations.
type progression struct {
	cfg ProgressConfig

	stageIndex    int
	stageComplete bool
	victory       bool

	advancePending bool
	advanceLeft    float64

	events []core.Event
}

func newProgression(cfg ProgressConfig) *progression {
	return &progression{cfg: cfg}
}

func (pr *progression) reset() {
	pr.stageIndex = 0
	pr.stageComplete = false
	pr.victory = false
	pr.advancePending = false
	pr.advanceLeft = 0
	pr.events = pr.events[:0]
	if stage, ok := pr.Stage(); ok {
		pr.push(core.Event{Kind: core.EventStageIntro, StageID: stage.ID, Message: stage.Intro})
	}
}

// Stage returns the active stage definition, if any remain.
func (pr *progression) Stage() (StageConfig, bool) {
	if pr.victory || pr.stageIndex >= len(pr.cfg.Stages) {
		return StageConfig{}, false
	}
	return pr.cfg.Stages[pr.stageIndex], true
}

// goalMet evaluates the active stage goal against the world. A coverage
// threshold of zero is treated as immediately satisfied; an empty species
// map never completes.
func (pr *progression) goalMet(bed *riverbed, water *waterSurface, plants *plantField) bool {
	stage, ok := pr.Stage()
	if !ok {
		return false
	}
	switch stage.Goal.Kind {
	case GoalRiverbedCoverage:
		if stage.Goal.Coverage <= 0 {
			return true
		}
		threshold := water.MediumLevel() + stage.Goal.MinElevationAboveWater
		return bed.CoverageAbove(threshold) >= stage.Goal.Coverage
	case GoalPlantCounts:
		if len(stage.Goal.Species) == 0 {
			return false
		}
		for id, required := range stage.Goal.Species {
			if plants.CountAtTerminal(id) < required {
				return false
			}
		}
		return true
	}
	return false
}

// Evaluate latches completion and schedules the delayed advance on the
// first goal hit. Subsequent calls while complete are no-ops.
func (pr *progression) Evaluate(bed *riverbed, water *waterSurface, plants *plantField) {
	if pr.victory || pr.stageComplete {
		return
	}
	if !pr.goalMet(bed, water, plants) {
		return
	}
	stage, _ := pr.Stage()
	pr.stageComplete = true
	pr.advancePending = true
	pr.advanceLeft = pr.cfg.AdvanceDelay
	pr.push(core.Event{Kind: core.EventStageComplete, StageID: stage.ID, Message: stage.Completion})
}

// Update ticks the advance countdown. Returns true when a stage transition
// happened this tick (the scene recomputes allowed tools on it).
func (pr *progression) Update(dt float64) bool {
	if !pr.advancePending {
		return false
	}
	pr.advanceLeft -= dt
	if pr.advanceLeft > 0 {
		return false
	}
	pr.advancePending = false
	pr.stageIndex++
	pr.stageComplete = false
	if pr.stageIndex >= len(pr.cfg.Stages) {
		pr.victory = true
		pr.push(core.Event{Kind: core.EventVictory, Message: pr.cfg.VictoryMessage})
		return true
	}
	stage := pr.cfg.Stages[pr.stageIndex]
	pr.push(core.Event{Kind: core.EventStageIntro, StageID: stage.ID, Message: stage.Intro})
	return true
}

// Cancel clears any pending advance countdown. Called on scene teardown so
// no stale timer mutates a torn-down scene.
func (pr *progression) Cancel() {
	pr.advancePending = false
	pr.advanceLeft = 0
}

func (pr *progression) push(ev core.Event) {
	pr.events = append(pr.events, ev)
}

// DrainEvents hands the queued notifications to the UI and clears them.
func (pr *progression) DrainEvents() []core.Event {
	if len(pr.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(pr.events))
	copy(out, pr.events)
	pr.events = pr.events[:0]
	return out
}

// ProgressState is the serializable snapshot exposed for external
// persistence. The core does not persist anything itself.
type ProgressState struct {
	StageIndex    int  `json:"stageIndex"`
	StageComplete bool `json:"stageComplete"`
	Victory       bool `json:"victory"`
}

func (pr *progression) Snapshot() ProgressState {
	return ProgressState{
		StageIndex:    pr.stageIndex,
		StageComplete: pr.stageComplete,
		Victory:       pr.victory,
	}
}
