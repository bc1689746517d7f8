package crewboot

import (
	"strconv"
	"time"
)

// GoalDomain selects which registered crew answers a query.
type GoalDomain string

const (
	DomainSleep    GoalDomain = "sleep"
	DomainActivity GoalDomain = "activity"
)

// Process defines how a crew's tasks are scheduled. Only sequential
// execution is implemented; hierarchical is a reserved value and crews
// declaring it are rejected at registration rather than silently run.
type Process string

const (
	ProcessSequential   Process = "sequential"
	ProcessHierarchical Process = "hierarchical"
)

// Confidence tiers attached to agent responses. These are fixed labels
// distinguishing live model output from canned fallback output, not
// measurements; a real confidence estimator remains an open question.
const (
	LiveConfidence     = 0.85
	FallbackConfidence = 0.6
)

// AgentDefinition is an immutable persona: who the agent is, what it is
// after, and which capabilities its prompt advertises. Tools are
// descriptive only and never invoked.
type AgentDefinition struct {
	Role      string   `json:"role"`
	Goal      string   `json:"goal"`
	Backstory string   `json:"backstory"`
	Tools     []string `json:"tools,omitempty"`
	Memory    bool     `json:"memory"`
	Verbose   bool     `json:"verbose"`
}

// Task is one unit of work bound to exactly one agent. Order within a crew
// is significant and fixed.
type Task struct {
	Description    string `json:"description"`
	Agent          string `json:"agent"`
	ExpectedOutput string `json:"expected_output"`
}

// CrewDefinition binds a goal domain to its agents and ordered tasks. It is
// read-only after construction.
type CrewDefinition struct {
	Domain  GoalDomain                 `json:"domain"`
	Agents  map[string]AgentDefinition `json:"agents"`
	Tasks   []Task                     `json:"tasks"`
	Process Process                    `json:"process"`
	Memory  bool                       `json:"memory"`
	Verbose bool                       `json:"verbose"`
}

// AgentResponse is one agent's structured contribution.
type AgentResponse struct {
	Role            string   `json:"role"`
	Response        string   `json:"response"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
	Insights        []string `json:"insights"`
	NextSteps       []string `json:"next_steps"`
}

// CrewExecution is the result handed back to the caller. Success is true by
// contract: failures degrade content, never the flag.
type CrewExecution struct {
	Responses   []AgentResponse `json:"responses"`
	FinalOutput string          `json:"final_output"`
	Duration    time.Duration   `json:"duration"`
	Success     bool            `json:"success"`
}

// Context is the caller-supplied key/value data rendered into prompts and
// fallback templates. The engine only reads named fields and tolerates any
// of them being absent.
type Context map[string]any

// Float reads a numeric field, accepting the numeric types a decoded JSON
// or YAML payload may carry. Missing or unreadable fields yield def.
func (c Context) Float(key string, def float64) float64 {
	v, ok := c[key]
	if !ok {
		return def
	}

	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	}
	return def
}

// String reads a text field; missing fields yield def.
func (c Context) String(key, def string) string {
	if v, ok := c[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}

// Has reports whether a field is present.
func (c Context) Has(key string) bool {
	_, ok := c[key]
	return ok
}
