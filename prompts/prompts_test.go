package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAgentTaskPrompt(t *testing.T) {
	prompt, err := RenderAgentTaskPrompt(AgentTaskData{
		Role:           "Sleep Pattern Analyst",
		Goal:           "find what limits restorative sleep",
		Backstory:      "a researcher of sleep diaries",
		Tools:          "sleep diary review, sleep debt estimation",
		Task:           "Review the user's sleep context.",
		ExpectedOutput: "A short analysis with bullets.",
		ContextBlock:   "Target sleep hours: 8",
		PriorOutputs:   "You are the first agent in this crew; there is no earlier output to build on.",
		MemoryExcerpt:  "",
		Query:          "Why am I always tired?",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "You are Sleep Pattern Analyst.")
	assert.Contains(t, prompt, "Goal: find what limits restorative sleep")
	assert.Contains(t, prompt, "Target sleep hours: 8")
	assert.Contains(t, prompt, "first agent in this crew")
	assert.Contains(t, prompt, `"Recommendations:", "Insights:" and "Next Steps:"`)
	assert.Contains(t, prompt, "User query: Why am I always tired?")
}

func TestRenderSynthesisPrompt(t *testing.T) {
	prompt, err := RenderSynthesisPrompt(SynthesisData{
		Query:         "Help me move more",
		AgentSections: "## Movement Coach\nTake more walks.",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "User query: Help me move more")
	assert.Contains(t, prompt, "## Movement Coach")
	assert.Contains(t, prompt, "numbered priority list")
}
