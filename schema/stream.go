// Package schema defines the wire-neutral chunk types streamed by crew
// executions. They are plain structs so any transport (gRPC streaming,
// websockets, in-process channels) can carry them.
package schema

// Stage identifies where in a crew execution a progress chunk was emitted.
type Stage string

const (
	StageCrewStarted    Stage = "crew_started"
	StageAgentStarted   Stage = "agent_started"
	StageAgentCompleted Stage = "agent_completed"
	StageSynthesis      Stage = "synthesis"
	StageFallback       Stage = "fallback"
	StageCompleted      Stage = "completed"
)

// CrewStreamChunk is one progress event. Exactly one of the pointer fields
// is set, mirroring a oneof.
type CrewStreamChunk struct {
	ProgressUpdate *ProgressUpdateChunk `json:"progress_update,omitempty"`
	AgentResult    *AgentResultChunk    `json:"agent_result,omitempty"`
	Complete       *CompleteChunk       `json:"complete,omitempty"`
	Error          *StreamErrorChunk    `json:"error,omitempty"`
}

// ProgressUpdateChunk reports a stage transition.
type ProgressUpdateChunk struct {
	Stage     Stage  `json:"stage"`
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message"`
}

// AgentResultChunk reports one agent's finished contribution.
type AgentResultChunk struct {
	Role       string  `json:"role"`
	Confidence float64 `json:"confidence"`
	Response   string  `json:"response"`
}

// CompleteChunk carries the final synthesized message.
type CompleteChunk struct {
	FinalOutput      string `json:"final_output"`
	AgentCount       int    `json:"agent_count"`
	ProcessingTimeMs int64  `json:"processing_time_ms"`
}

// StreamErrorChunk reports a degraded (but still successful) step.
type StreamErrorChunk struct {
	ErrorMessage string `json:"error_message"`
	ErrorCode    string `json:"error_code"`
}
