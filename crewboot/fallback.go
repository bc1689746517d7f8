package crewboot

import (
	"fmt"
	"strings"
	"time"
)

// fallbackElapsed is the nominal duration reported for fallback-only
// executions, which make no network calls.
const fallbackElapsed = 50 * time.Millisecond

// Stated defaults substituted when the caller's context omits a field.
const (
	defaultTargetSleepHours = 8.0
	defaultStepTarget       = 10000.0
)

// FallbackEngine produces canned, context-aware crew output whenever the
// completion capability is unconfigured or failing. It keeps the
// coordinator's contract intact: callers always get a successful execution.
type FallbackEngine struct{}

func NewFallbackEngine() *FallbackEngine {
	return &FallbackEngine{}
}

// WholeCrew substitutes an entire execution: a fixed per-domain pair of
// agent responses plus a combined final message. Output is deterministic
// for identical input.
func (f *FallbackEngine) WholeCrew(domain GoalDomain, query string, crewCtx Context) *CrewExecution {
	responses := f.Responses(domain, crewCtx)
	final := domainHeader(domain) + "\n\n" + CombineLocally(responses)

	return &CrewExecution{
		Responses:   responses,
		FinalOutput: final,
		Duration:    fallbackElapsed,
		Success:     true,
	}
}

// Responses returns the fixed per-domain response set: two agents per
// domain, matching the first two roles of the real crew, with numeric
// context fields interpolated into the pre-written text.
func (f *FallbackEngine) Responses(domain GoalDomain, crewCtx Context) []AgentResponse {
	switch domain {
	case DomainSleep:
		return sleepFallbackResponses(crewCtx)
	case DomainActivity:
		return activityFallbackResponses(crewCtx)
	default:
		return genericFallbackResponses()
	}
}

// AgentFallback is the single-agent substitute used when one invocation
// fails mid-run: generic but role-labeled guidance at the fallback
// confidence tier.
func (f *FallbackEngine) AgentFallback(agent AgentDefinition) AgentResponse {
	recommendations := []string{
		fmt.Sprintf("Keep a short daily note of what your %s would track", strings.ToLower(agent.Role)),
		"Pick one small change and repeat it for a week before adding another",
		"Review your progress at the same time each day",
	}

	return AgentResponse{
		Role: agent.Role,
		Response: fmt.Sprintf(
			"As your %s I could not run a full analysis right now, so here is dependable general guidance: %s. Consistency beats intensity — one small repeated change moves the needle more than an occasional overhaul.",
			agent.Role, agent.Goal),
		Confidence:      FallbackConfidence,
		Recommendations: recommendations,
		Insights:        []string{"Small consistent adjustments outperform drastic one-off changes"},
		NextSteps:       recommendations[:1],
	}
}

func sleepFallbackResponses(crewCtx Context) []AgentResponse {
	target := crewCtx.Float("targetSleepHours", defaultTargetSleepHours)
	actual := crewCtx.Float("actualSleepHours", target-1)
	bedtime := crewCtx.String("targetBedtime", "22:30")

	analyst := AgentResponse{
		Role: "Sleep Pattern Analyst",
		Response: fmt.Sprintf(
			"You are targeting %.0f hours of sleep and currently getting about %.1f. Closing that gap is the single highest-impact change available to you.",
			target, actual),
		Confidence: FallbackConfidence,
		Recommendations: []string{
			fmt.Sprintf("Protect a full %.0f hours in bed by working backwards from your wake-up time", target),
			fmt.Sprintf("Keep your bedtime within 30 minutes of %s every night, weekends included", bedtime),
			"Dim screens and bright lights in the last hour before bed",
		},
		Insights: []string{
			fmt.Sprintf("A consistent %.0f-hour window matters more than any single long night", target),
		},
		NextSteps: []string{
			fmt.Sprintf("Tonight, start winding down 45 minutes before %s", bedtime),
		},
	}

	coach := AgentResponse{
		Role: "Sleep Habit Coach",
		Response: fmt.Sprintf(
			"Build a repeatable wind-down ritual that lands you in bed by %s: same cue, same order, every evening.",
			bedtime),
		Confidence: FallbackConfidence,
		Recommendations: []string{
			"Set a nightly wind-down alarm one hour before bedtime",
			"Keep the bedroom cool, dark and quiet — around 18-20°C works for most people",
			"Reserve the bed for sleep so your brain keeps the association strong",
		},
		Insights: []string{
			"Your brain treats a fixed pre-sleep routine as a signal to start producing melatonin",
			"Temperature drop is one of the strongest natural sleep triggers",
		},
		NextSteps: []string{
			"Write down your three-step wind-down ritual and pin it where you will see it tonight",
		},
	}

	return []AgentResponse{analyst, coach}
}

func activityFallbackResponses(crewCtx Context) []AgentResponse {
	target := crewCtx.Float("dailyStepTarget", defaultStepTarget)
	current := crewCtx.Float("currentSteps", 0)
	gap := target - current
	if gap < 0 {
		gap = 0
	}

	analyst := AgentResponse{
		Role: "Activity Data Analyst",
		Response: fmt.Sprintf(
			"You are at %.0f steps against a %.0f-step daily target, leaving a gap of %.0f steps — roughly %.0f minutes of easy walking.",
			current, target, gap, gap/100),
		Confidence: FallbackConfidence,
		Recommendations: []string{
			fmt.Sprintf("Split the remaining %.0f steps into two or three short walks", gap),
			"Attach a 10-minute walk to an existing daily anchor like lunch or a phone call",
			fmt.Sprintf("Check your count mid-afternoon so %.0f steps never piles up into the evening", target),
		},
		Insights: []string{
			"Step gaps close far more reliably through scheduled short walks than leftover evening effort",
		},
		NextSteps: []string{
			"Schedule tomorrow's first 10-minute walk right now",
		},
	}

	coach := AgentResponse{
		Role: "Movement Coach",
		Response: fmt.Sprintf(
			"Treat the %.0f-step target as three appointments, not one mountain: morning, midday and early evening blocks keep it effortless.",
			target),
		Confidence: FallbackConfidence,
		Recommendations: []string{
			"Take walking meetings or calls whenever the conversation doesn't need a screen",
			"Park farther away or get off transit one stop early",
			"Use stairs for any trip under three floors",
		},
		Insights: []string{
			"Movement spread across the day also counteracts the metabolic cost of long sitting blocks",
			"Habit-stacked steps survive busy weeks far better than dedicated workout time",
		},
		NextSteps: []string{
			"Pick one recurring call this week and make it a walking call",
		},
	}

	return []AgentResponse{analyst, coach}
}

func genericFallbackResponses() []AgentResponse {
	advisor := AgentResponse{
		Role: "Wellness Advisor",
		Response: "Start with the fundamentals: consistent sleep, daily movement and regular meals. " +
			"Pick the one that feels most out of balance and improve it a little every day this week.",
		Confidence: FallbackConfidence,
		Recommendations: []string{
			"Choose one wellness area to focus on for the next seven days",
			"Track it with a simple daily yes/no note",
			"Review what changed at the end of the week",
		},
		Insights: []string{
			"Focusing on one habit at a time roughly doubles the odds it sticks",
		},
		NextSteps: []string{
			"Write down the one habit you will track starting today",
		},
	}

	coach := AgentResponse{
		Role: "Habit Coach",
		Response: "Tie the new habit to something you already do daily so it runs on an existing routine " +
			"instead of willpower.",
		Confidence: FallbackConfidence,
		Recommendations: []string{
			"Anchor the habit to an existing routine like a morning coffee",
			"Make the first version so small it takes under two minutes",
		},
		Insights: []string{
			"Habits anchored to existing routines form weeks faster than free-floating ones",
		},
		NextSteps: []string{
			"Decide tonight which routine the new habit attaches to",
		},
	}

	return []AgentResponse{advisor, coach}
}

func domainHeader(domain GoalDomain) string {
	switch domain {
	case DomainSleep:
		return "🌙 Your Sleep Optimization Plan"
	case DomainActivity:
		return "🏃 Your Activity Boost Plan"
	default:
		return "🌿 Your Wellness Plan"
	}
}

// CombineLocally is the deterministic merger used whenever LLM synthesis is
// unavailable: up to five recommendations and three insights pooled across
// agents in first-seen order (no deduplication), rendered as a numbered
// priority list, bulleted insights and a closing call to action.
func CombineLocally(responses []AgentResponse) string {
	var recommendations, insights []string
	for _, resp := range responses {
		recommendations = append(recommendations, resp.Recommendations...)
		insights = append(insights, resp.Insights...)
	}
	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	if len(insights) > 3 {
		insights = insights[:3]
	}

	var b strings.Builder
	b.WriteString("Here is your combined plan from the coaching team.\n")

	if len(recommendations) > 0 {
		b.WriteString("\nTop priorities:\n")
		for i, rec := range recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
	}

	if len(insights) > 0 {
		b.WriteString("\nKey insights:\n")
		for _, insight := range insights {
			fmt.Fprintf(&b, "- %s\n", insight)
		}
	}

	b.WriteString("\nStart with priority one today — small consistent steps add up faster than you expect!")
	return b.String()
}
