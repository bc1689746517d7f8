package prompts

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed templates/*
var templatesFS embed.FS

// AgentTaskData fills the per-agent task prompt. Every field is preformatted
// text; the orchestrator owns formatting decisions like context layout and
// memory truncation.
type AgentTaskData struct {
	Role           string
	Goal           string
	Backstory      string
	Tools          string
	Task           string
	ExpectedOutput string
	ContextBlock   string
	PriorOutputs   string
	MemoryExcerpt  string
	Query          string
}

// SynthesisData fills the coordination prompt that merges all agent output.
type SynthesisData struct {
	Query         string
	AgentSections string
}

// RenderAgentTaskPrompt renders the single-message prompt sent for one
// agent task.
func RenderAgentTaskPrompt(data AgentTaskData) (string, error) {
	return render("templates/agent_task.md", data)
}

// RenderSynthesisPrompt renders the final coordination prompt.
func RenderSynthesisPrompt(data SynthesisData) (string, error) {
	return render("templates/synthesis.md", data)
}

func render(templatePath string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(templatesFS, templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
