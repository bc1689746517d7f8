package crewboot

import (
	"fmt"

	"github.com/SaiNageswarS/go-collection-boot/ds"
)

// Registry is the static catalog of crews, one per goal domain. Lookup is
// pure; an unknown domain is a configuration error, not a runtime one.
type Registry struct {
	crews map[GoalDomain]CrewDefinition
}

// NewRegistry builds the registry with the two built-in crews. Additional
// domains can be registered without touching the engine.
func NewRegistry() *Registry {
	r := &Registry{crews: make(map[GoalDomain]CrewDefinition)}

	// Registration of the built-ins cannot fail; a panic here means the
	// static definitions themselves are broken.
	for _, crew := range []CrewDefinition{sleepCrew(), activityCrew()} {
		if err := r.Register(crew); err != nil {
			panic(err)
		}
	}
	return r
}

// Register validates and adds a crew definition.
func (r *Registry) Register(crew CrewDefinition) error {
	if err := validateCrew(crew); err != nil {
		return fmt.Errorf("crew %q: %w", crew.Domain, err)
	}
	r.crews[crew.Domain] = crew
	return nil
}

// Crew returns the definition for a goal domain.
func (r *Registry) Crew(domain GoalDomain) (CrewDefinition, error) {
	crew, ok := r.crews[domain]
	if !ok {
		return CrewDefinition{}, fmt.Errorf("no crew registered for goal domain %q", domain)
	}
	return crew, nil
}

// Domains lists the registered goal domains.
func (r *Registry) Domains() []GoalDomain {
	domains := make([]GoalDomain, 0, len(r.crews))
	for domain := range r.crews {
		domains = append(domains, domain)
	}
	return domains
}

func validateCrew(crew CrewDefinition) error {
	switch crew.Process {
	case ProcessSequential:
	case ProcessHierarchical:
		return fmt.Errorf("process %q is reserved and not implemented", crew.Process)
	default:
		return fmt.Errorf("unknown process %q", crew.Process)
	}

	if len(crew.Tasks) == 0 {
		return fmt.Errorf("crew has no tasks")
	}

	roles := ds.NewSet[string]()
	for role := range crew.Agents {
		roles.Add(role)
	}
	for i, task := range crew.Tasks {
		if !roles.Contains(task.Agent) {
			return fmt.Errorf("task %d references unknown agent %q", i, task.Agent)
		}
	}
	return nil
}

func sleepCrew() CrewDefinition {
	return CrewDefinition{
		Domain:  DomainSleep,
		Process: ProcessSequential,
		Memory:  true,
		Agents: map[string]AgentDefinition{
			"sleep_analyst": {
				Role:      "Sleep Pattern Analyst",
				Goal:      "Analyze the user's sleep data and pinpoint what is holding their rest back",
				Backstory: "A sleep researcher who has reviewed thousands of sleep diaries and translates raw numbers into plain-language findings.",
				Tools:     []string{"sleep diary review", "sleep debt estimation"},
				Memory:    true,
			},
			"sleep_coach": {
				Role:      "Sleep Habit Coach",
				Goal:      "Turn the analyst's findings into realistic habit changes the user will actually keep",
				Backstory: "A behavior-change coach specializing in evening routines, wind-down rituals and sleep environment tweaks.",
				Tools:     []string{"habit design", "sleep hygiene checklist"},
				Memory:    true,
			},
			"circadian_specialist": {
				Role:      "Circadian Timing Specialist",
				Goal:      "Align the plan with the user's body clock: light exposure, meal timing and a consistent bedtime window",
				Backstory: "A chronobiology specialist who schedules light, caffeine and bedtime anchors around the circadian rhythm.",
				Tools:     []string{"light exposure planning", "bedtime anchoring"},
				Memory:    true,
			},
		},
		Tasks: []Task{
			{
				Description:    "Review the user's sleep context and identify the biggest obstacles to restorative sleep.",
				Agent:          "sleep_analyst",
				ExpectedOutput: "A short analysis with bulleted recommendations, insights and next steps.",
			},
			{
				Description:    "Build on the analysis to propose concrete evening-routine and environment changes.",
				Agent:          "sleep_coach",
				ExpectedOutput: "Practical habit recommendations as bullet points with insights and next steps.",
			},
			{
				Description:    "Anchor the proposed habits to circadian-friendly timing, including bedtime and light exposure.",
				Agent:          "circadian_specialist",
				ExpectedOutput: "A timing plan as bullet points with insights and next steps.",
			},
		},
	}
}

func activityCrew() CrewDefinition {
	return CrewDefinition{
		Domain:  DomainActivity,
		Process: ProcessSequential,
		Memory:  true,
		Agents: map[string]AgentDefinition{
			"activity_analyst": {
				Role:      "Activity Data Analyst",
				Goal:      "Assess the user's step counts against their target and find where movement is being lost",
				Backstory: "A movement scientist who reads step and stride data the way an accountant reads a ledger.",
				Tools:     []string{"step trend review", "gap analysis"},
				Memory:    true,
			},
			"movement_coach": {
				Role:      "Movement Coach",
				Goal:      "Design small, sustainable movement additions that close the gap to the daily step target",
				Backstory: "A coach who believes ten five-minute walks beat one punishing workout for building a lasting habit.",
				Tools:     []string{"walking plan design", "habit stacking"},
				Memory:    true,
			},
			"wellness_strategist": {
				Role:      "Wellness Strategist",
				Goal:      "Fit the movement plan into the user's wider day so it survives busy weeks",
				Backstory: "A strategist who connects activity goals with schedules, energy levels and recovery.",
				Tools:     []string{"weekly planning", "recovery balancing"},
				Memory:    true,
			},
		},
		Tasks: []Task{
			{
				Description:    "Review the user's current steps against their daily target and quantify the gap.",
				Agent:          "activity_analyst",
				ExpectedOutput: "A short analysis with bulleted recommendations, insights and next steps.",
			},
			{
				Description:    "Propose specific, low-friction ways to add steps that close the identified gap.",
				Agent:          "movement_coach",
				ExpectedOutput: "Practical movement recommendations as bullet points with insights and next steps.",
			},
			{
				Description:    "Shape the additions into a weekly rhythm that balances effort and recovery.",
				Agent:          "wellness_strategist",
				ExpectedOutput: "A weekly strategy as bullet points with insights and next steps.",
			},
		},
	}
}
