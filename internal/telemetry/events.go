package telemetry

// Event names
const (
	EventRoadmapGenerated = "roadmap_generated"
	EventRoadmapFailed    = "roadmap_failed"
	EventCommandExecuted  = "command_executed"
)

