package crewboot

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SaiNageswarS/crew-boot/llm"
	"github.com/SaiNageswarS/crew-boot/memory"
	"github.com/SaiNageswarS/crew-boot/parser"
	"github.com/SaiNageswarS/crew-boot/prompts"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"go.uber.org/zap"
)

const (
	memoryExcerptEntries = 3
	memoryExcerptRunes   = 240
)

// taskExecutor runs a single agent task: prompt assembly, one model call,
// structured parsing and the memory write. It never returns an error to the
// coordinator; a failed invocation degrades to the agent-level fallback.
type taskExecutor struct {
	client    llm.LLMClient
	store     *memory.Store
	fallback  *FallbackEngine
	parserCfg parser.Config
	maxTokens int
}

// Run executes one task for one agent. prior carries the responses of every
// agent that ran earlier in the same crew, in task order.
func (e *taskExecutor) Run(ctx context.Context, crew CrewDefinition, agent AgentDefinition, task Task, query string, crewCtx Context, prior []AgentResponse) AgentResponse {
	prompt, err := prompts.RenderAgentTaskPrompt(prompts.AgentTaskData{
		Role:           agent.Role,
		Goal:           agent.Goal,
		Backstory:      agent.Backstory,
		Tools:          strings.Join(agent.Tools, ", "),
		Task:           task.Description,
		ExpectedOutput: task.ExpectedOutput,
		ContextBlock:   contextBlock(crew.Domain, crewCtx),
		PriorOutputs:   priorOutputsBlock(prior),
		MemoryExcerpt:  e.memoryExcerpt(agent),
		Query:          query,
	})
	if err != nil {
		logger.Error("Failed to render agent task prompt", zap.String("role", agent.Role), zap.Error(err))
		return e.fallback.AgentFallback(agent)
	}

	if agent.Verbose || crew.Verbose {
		logger.Info("Running agent task",
			zap.String("role", agent.Role),
			zap.String("task", task.Description))
	}

	output, err := e.invoke(ctx, prompt)
	if err != nil {
		logger.Log.Warn("Agent invocation failed, using fallback response",
			zap.String("role", agent.Role), zap.Error(err))
		return e.fallback.AgentFallback(agent)
	}

	sections := parser.ExtractWith(e.parserCfg, output)
	response := AgentResponse{
		Role:            agent.Role,
		Response:        output,
		Confidence:      LiveConfidence,
		Recommendations: sections.Recommendations,
		Insights:        sections.Insights,
		NextSteps:       sections.NextSteps,
	}

	if agent.Memory {
		e.store.Append(agent.Role, memory.Entry{
			Query:    query,
			Response: output,
			Context:  crewCtx,
		})
	}
	return response
}

// invoke makes one model call and accumulates the streamed chunks. There are
// no retries: a failed call falls through to the fallback tier immediately.
func (e *taskExecutor) invoke(ctx context.Context, prompt string) (string, error) {
	resultChan := async.Go(func() (string, error) {
		var sb strings.Builder
		err := e.client.GenerateInference(ctx,
			[]llm.Message{{Role: "user", Content: prompt}},
			func(chunk string) error {
				sb.WriteString(chunk)
				return nil
			},
			llm.WithMaxTokens(e.maxTokens),
		)
		if err != nil {
			return "", err
		}
		return sb.String(), nil
	})

	output, err := async.Await(resultChan)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(output) == "" {
		return "", fmt.Errorf("model returned empty output")
	}
	return output, nil
}

// memoryExcerpt renders the agent's recent interactions as short Q/A pairs.
// Empty when the agent has memory disabled or no history yet.
func (e *taskExecutor) memoryExcerpt(agent AgentDefinition) string {
	if !agent.Memory {
		return ""
	}

	entries := e.store.Recent(agent.Role, memoryExcerptEntries)
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Earlier interactions with this user:\n")
	for _, entry := range entries {
		fmt.Fprintf(&sb, "Q: %s\nA: %s\n", truncate(entry.Query, memoryExcerptRunes), truncate(entry.Response, memoryExcerptRunes))
	}
	return sb.String()
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// contextBlock renders the caller's context fields for the prompt. The two
// built-in domains get a curated layout; anything else gets sorted key/value
// lines so custom crews still see their data.
func contextBlock(domain GoalDomain, crewCtx Context) string {
	if len(crewCtx) == 0 {
		return "No additional context was provided."
	}

	switch domain {
	case DomainSleep:
		return strings.Join([]string{
			"Target sleep hours: " + floatField(crewCtx, "targetSleepHours"),
			"Actual sleep hours: " + floatField(crewCtx, "actualSleepHours"),
			"Target bedtime: " + crewCtx.String("targetBedtime", "not set"),
			"Room temperature: " + floatField(crewCtx, "roomTemperature"),
		}, "\n")
	case DomainActivity:
		return strings.Join([]string{
			"Daily step target: " + floatField(crewCtx, "dailyStepTarget"),
			"Current steps: " + floatField(crewCtx, "currentSteps"),
			"Stride length: " + floatField(crewCtx, "strideLength"),
		}, "\n")
	}

	keys := make([]string, 0, len(crewCtx))
	for key := range crewCtx {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", key, crewCtx[key]))
	}
	return strings.Join(lines, "\n")
}

func floatField(crewCtx Context, key string) string {
	if !crewCtx.Has(key) {
		return "not set"
	}
	return fmt.Sprintf("%g", crewCtx.Float(key, 0))
}

// priorOutputsBlock chains earlier agents' full responses into the prompt,
// preserving task order.
func priorOutputsBlock(prior []AgentResponse) string {
	if len(prior) == 0 {
		return "You are the first agent in this crew; there is no earlier output to build on."
	}

	var sb strings.Builder
	sb.WriteString("Output from the agents that ran before you:\n")
	for _, resp := range prior {
		fmt.Fprintf(&sb, "\n### %s\n%s\n", resp.Role, resp.Response)
	}
	return sb.String()
}
