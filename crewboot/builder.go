package crewboot

import (
	"github.com/SaiNageswarS/crew-boot/llm"
	"github.com/SaiNageswarS/crew-boot/memory"
	"github.com/SaiNageswarS/crew-boot/parser"
)

const defaultMaxTokens = 1024

// CoordinatorBuilder assembles a Coordinator with sensible defaults: the
// built-in registry, a fresh memory store at the default cap, the default
// section parser and no-op progress reporting. A coordinator built with no
// client runs entirely on the fallback engine.
type CoordinatorBuilder struct {
	registry   *Registry
	client     llm.LLMClient
	credential string
	store      *memory.Store
	parserCfg  parser.Config
	progress   ProgressReporter
	maxTokens  int
}

func NewCoordinatorBuilder() *CoordinatorBuilder {
	return &CoordinatorBuilder{
		registry:  NewRegistry(),
		store:     memory.NewStore(memory.DefaultCap),
		parserCfg: parser.DefaultConfig(),
		progress:  &NoOpProgressReporter{},
		maxTokens: defaultMaxTokens,
	}
}

// WithClient sets the model client used for live execution.
func (b *CoordinatorBuilder) WithClient(client llm.LLMClient) *CoordinatorBuilder {
	b.client = client
	return b
}

// WithCredential sets the credential whose presence gates live execution.
// For keyless local backends pass the endpoint URL instead.
func (b *CoordinatorBuilder) WithCredential(credential string) *CoordinatorBuilder {
	b.credential = credential
	return b
}

// WithRegistry replaces the built-in crew registry.
func (b *CoordinatorBuilder) WithRegistry(registry *Registry) *CoordinatorBuilder {
	b.registry = registry
	return b
}

// WithMemoryStore replaces the per-agent memory store, e.g. to share one
// store across coordinators or change its cap.
func (b *CoordinatorBuilder) WithMemoryStore(store *memory.Store) *CoordinatorBuilder {
	b.store = store
	return b
}

// WithMaxTokens caps the model output per call.
func (b *CoordinatorBuilder) WithMaxTokens(maxTokens int) *CoordinatorBuilder {
	if maxTokens > 0 {
		b.maxTokens = maxTokens
	}
	return b
}

// WithParserConfig replaces the section-heading vocabulary used to parse
// agent output.
func (b *CoordinatorBuilder) WithParserConfig(cfg parser.Config) *CoordinatorBuilder {
	b.parserCfg = cfg
	return b
}

// WithProgressReporter streams execution milestones to the given reporter.
func (b *CoordinatorBuilder) WithProgressReporter(progress ProgressReporter) *CoordinatorBuilder {
	b.progress = progress
	return b
}

// Build assembles the coordinator.
func (b *CoordinatorBuilder) Build() *Coordinator {
	fallback := NewFallbackEngine()
	return &Coordinator{
		registry:   b.registry,
		client:     b.client,
		credential: b.credential,
		store:      b.store,
		fallback:   fallback,
		progress:   b.progress,
		maxTokens:  b.maxTokens,
		executor: &taskExecutor{
			client:    b.client,
			store:     b.store,
			fallback:  fallback,
			parserCfg: b.parserCfg,
			maxTokens: b.maxTokens,
		},
	}
}
