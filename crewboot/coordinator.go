package crewboot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SaiNageswarS/crew-boot/llm"
	"github.com/SaiNageswarS/crew-boot/memory"
	"github.com/SaiNageswarS/crew-boot/prompts"
	"github.com/SaiNageswarS/crew-boot/schema"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/linq"
	"go.uber.org/zap"
)

// Coordinator runs crews end to end: crew lookup, sequential agent
// execution with context chaining, final synthesis and fallback handling.
// Execute never fails; every degradation path still yields a successful
// execution with coherent content.
type Coordinator struct {
	registry   *Registry
	client     llm.LLMClient
	credential string
	store      *memory.Store
	fallback   *FallbackEngine
	executor   *taskExecutor
	progress   ProgressReporter
	maxTokens  int
}

// Execute answers a query with the crew registered for the goal domain.
// The live-versus-fallback decision is made exactly once, up front, so a
// single execution never mixes half-live output with whole-crew canned
// output.
func (c *Coordinator) Execute(ctx context.Context, domain GoalDomain, query string, crewCtx Context) *CrewExecution {
	start := time.Now()
	c.report(newProgressUpdate(schema.StageCrewStarted, fmt.Sprintf("Starting %s crew", domain)))

	if c.client == nil || !llm.Configured(c.credential) {
		logger.Info("Completion capability not configured, serving fallback plan",
			zap.String("domain", string(domain)))
		return c.completeFallback(domain, query, crewCtx)
	}

	crew, err := c.registry.Crew(domain)
	if err != nil {
		logger.Log.Warn("Crew lookup failed, serving fallback plan", zap.Error(err))
		return c.completeFallback(domain, query, crewCtx)
	}

	responses, err := c.runTasks(ctx, crew, query, crewCtx)
	if err != nil {
		logger.Error("Crew run aborted, serving fallback plan",
			zap.String("domain", string(domain)), zap.Error(err))
		return c.completeFallback(domain, query, crewCtx)
	}

	c.report(newProgressUpdate(schema.StageSynthesis, "Synthesizing final answer"))
	final, err := c.synthesize(ctx, query, responses)
	if err != nil {
		logger.Log.Warn("Synthesis failed, combining agent output locally", zap.Error(err))
		final = domainHeader(crew.Domain) + "\n\n" + CombineLocally(responses)
	}

	execution := &CrewExecution{
		Responses:   responses,
		FinalOutput: final,
		Duration:    time.Since(start),
		Success:     true,
	}
	c.report(newStreamComplete(execution))
	return execution
}

// runTasks walks the crew's tasks in order, feeding each agent everything
// produced before it. A panic anywhere in the chain is converted to an
// error so the caller can degrade instead of crash.
func (c *Coordinator) runTasks(ctx context.Context, crew CrewDefinition, query string, crewCtx Context) (responses []AgentResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("crew run panicked: %v", r)
		}
	}()

	for _, task := range crew.Tasks {
		agent, ok := crew.Agents[task.Agent]
		if !ok {
			return nil, fmt.Errorf("task references unknown agent %q", task.Agent)
		}

		c.report(newProgressUpdate(schema.StageAgentStarted, fmt.Sprintf("%s is working", agent.Role)))
		response := c.executor.Run(ctx, crew, agent, task, query, crewCtx, responses)
		responses = append(responses, response)
		c.report(newAgentResult(response))
		c.report(newProgressUpdate(schema.StageAgentCompleted, fmt.Sprintf("%s finished", agent.Role)))
	}
	return responses, nil
}

// synthesize merges all agent output into one user-facing message with a
// single model call.
func (c *Coordinator) synthesize(ctx context.Context, query string, responses []AgentResponse) (string, error) {
	sections := linq.Map(responses, func(resp AgentResponse) string {
		section := fmt.Sprintf("## %s\n%s", resp.Role, resp.Response)
		if len(resp.Recommendations) > 0 {
			section += "\n\nKey recommendations:\n- " + strings.Join(resp.Recommendations, "\n- ")
		}
		return section
	})

	prompt, err := prompts.RenderSynthesisPrompt(prompts.SynthesisData{
		Query:         query,
		AgentSections: strings.Join(sections, "\n\n"),
	})
	if err != nil {
		return "", err
	}
	return c.executor.invoke(ctx, prompt)
}

// completeFallback serves the whole-crew canned plan and emits the fallback
// and completion events around it.
func (c *Coordinator) completeFallback(domain GoalDomain, query string, crewCtx Context) *CrewExecution {
	c.report(newProgressUpdate(schema.StageFallback, "Serving pre-built guidance"))
	execution := c.fallback.WholeCrew(domain, query, crewCtx)
	c.report(newStreamComplete(execution))
	return execution
}

func (c *Coordinator) report(chunk *schema.CrewStreamChunk) {
	if err := c.progress.Send(chunk); err != nil {
		logger.Log.Warn("Failed to send progress chunk", zap.Error(err))
	}
}

// ClearMemory drops stored history for the given roles, or for every role
// when none are named.
func (c *Coordinator) ClearMemory(roles ...string) {
	c.store.Clear(roles...)
}

// GetMemory returns the stored history for one agent role, oldest first.
func (c *Coordinator) GetMemory(role string) []memory.Entry {
	return c.store.All(role)
}

// Domains lists the goal domains this coordinator can serve.
func (c *Coordinator) Domains() []GoalDomain {
	return c.registry.Domains()
}
