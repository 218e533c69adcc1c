package core

// EventKind enumerates scene notifications consumed by the UI shell.
type EventKind int

const (
	// EventStageIntro announces entry into a progression stage.
	EventStageIntro EventKind = iota
	// EventStageComplete announces a satisfied stage goal.
	EventStageComplete
	// EventVictory announces completion of the final stage.
	EventVictory
	// EventAssetFallback reports a visual sequence that failed to load and
	// fell back to a procedural representation. Diagnostic only.
	EventAssetFallback
)

// Event carries one scene notification. The simulation core queues events;
// the UI drains and presents them.
type Event struct {
	Kind    EventKind
	StageID string
	Message string
}

// EventSource is implemented by scenes that queue UI notifications.
type EventSource interface {
	DrainEvents() []Event
}

// ToolInfo describes one selectable interaction tool for presentation.
type ToolInfo struct {
	ID      string
	Label   string
	Enabled bool
}

// ToolProvider is implemented by scenes with a tool-driven interaction model.
type ToolProvider interface {
	Tools() []ToolInfo
	ActiveTool() string
	SelectTool(id string) bool
}
