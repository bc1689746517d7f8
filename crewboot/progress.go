package crewboot

import (
	"time"

	"github.com/SaiNageswarS/crew-boot/schema"
	"google.golang.org/grpc"
)

// ProgressReporter streams execution milestones to an observer. The engine
// treats reporting as best-effort; a failing reporter never fails the run.
type ProgressReporter interface {
	Send(chunk *schema.CrewStreamChunk) error
}

// NoOpProgressReporter discards all chunks. It is the builder default so
// library callers pay nothing for streaming they did not ask for.
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) Send(chunk *schema.CrewStreamChunk) error { return nil }

// GrpcProgressReporter forwards chunks over a server-streaming gRPC call.
type GrpcProgressReporter struct {
	Stream grpc.ServerStreamingServer[schema.CrewStreamChunk]
}

func (g *GrpcProgressReporter) Send(chunk *schema.CrewStreamChunk) error {
	return g.Stream.Send(chunk)
}

func newProgressUpdate(stage schema.Stage, message string) *schema.CrewStreamChunk {
	return &schema.CrewStreamChunk{
		ProgressUpdate: &schema.ProgressUpdateChunk{
			Stage:     stage,
			Timestamp: time.Now().Unix(),
			Message:   message,
		},
	}
}

func newAgentResult(resp AgentResponse) *schema.CrewStreamChunk {
	return &schema.CrewStreamChunk{
		AgentResult: &schema.AgentResultChunk{
			Role:       resp.Role,
			Confidence: resp.Confidence,
			Response:   resp.Response,
		},
	}
}

func newStreamComplete(execution *CrewExecution) *schema.CrewStreamChunk {
	return &schema.CrewStreamChunk{
		Complete: &schema.CompleteChunk{
			FinalOutput:      execution.FinalOutput,
			AgentCount:       len(execution.Responses),
			ProcessingTimeMs: execution.Duration.Milliseconds(),
		},
	}
}
