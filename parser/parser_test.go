package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_AllSections(t *testing.T) {
	text := `Here is my analysis of your sleep.

Recommendations:
- Go to bed at the same time every night
- Dim the lights an hour before bed
- Keep the bedroom cool

Insights:
- Your sleep debt is about 90 minutes per night

Next Steps:
- Set a wind-down alarm tonight`

	sections := Extract(text)

	assert.Equal(t, []string{
		"Go to bed at the same time every night",
		"Dim the lights an hour before bed",
		"Keep the bedroom cool",
	}, sections.Recommendations)
	assert.Equal(t, []string{"Your sleep debt is about 90 minutes per night"}, sections.Insights)
	assert.Equal(t, []string{"Set a wind-down alarm tonight"}, sections.NextSteps)
}

func TestExtract_MarkdownBoldHeadings(t *testing.T) {
	text := `**Recommendations:**
- Walk after lunch

**Insights:**
- Short walks add up`

	sections := Extract(text)
	assert.Equal(t, []string{"Walk after lunch"}, sections.Recommendations)
	assert.Equal(t, []string{"Short walks add up"}, sections.Insights)
}

func TestExtract_MixedBulletMarkers(t *testing.T) {
	text := `Recommendations:
• Take the stairs
* Park farther away
- Walk during calls`

	sections := Extract(text)
	assert.Equal(t, []string{"Take the stairs", "Park farther away", "Walk during calls"}, sections.Recommendations)
}

func TestExtract_BlankLineBetweenHeadingAndBullets(t *testing.T) {
	text := "Recommendations:\n\n- First item\n- Second item"

	sections := Extract(text)
	assert.Equal(t, []string{"First item", "Second item"}, sections.Recommendations)
}

func TestExtract_MissingNextStepsFallsBackToRecommendations(t *testing.T) {
	text := `Recommendations:
- One
- Two
- Three
- Four

Insights:
- An insight`

	sections := Extract(text)
	assert.Equal(t, []string{"One", "Two", "Three"}, sections.NextSteps)
	assert.Len(t, sections.Recommendations, 4)
}

func TestExtract_NoReverseMapping(t *testing.T) {
	text := `Next Steps:
- Do the thing`

	sections := Extract(text)
	assert.Empty(t, sections.Recommendations)
	assert.Equal(t, []string{"Do the thing"}, sections.NextSteps)
}

func TestExtract_CapsBulletsPerSection(t *testing.T) {
	text := `Recommendations:
- a
- b
- c
- d
- e
- f
- g`

	sections := Extract(text)
	assert.Len(t, sections.Recommendations, 5)
}

func TestExtract_UnstructuredTextYieldsEmptySections(t *testing.T) {
	sections := Extract("Just get more sleep and move more. That's really all there is to it.")

	assert.Empty(t, sections.Recommendations)
	assert.Empty(t, sections.Insights)
	assert.Empty(t, sections.NextSteps)
}

func TestExtract_EmptyInput(t *testing.T) {
	sections := Extract("")

	assert.Empty(t, sections.Recommendations)
	assert.Empty(t, sections.Insights)
	assert.Empty(t, sections.NextSteps)
}

func TestExtract_HeadingWithoutBullets(t *testing.T) {
	text := `Recommendations:
Nothing bulleted here, just prose.

Insights:
- A real insight`

	sections := Extract(text)
	assert.Empty(t, sections.Recommendations)
	assert.Equal(t, []string{"A real insight"}, sections.Insights)
}

func TestExtract_CaseSensitiveHeadings(t *testing.T) {
	text := `recommendations:
- should not be picked up`

	sections := Extract(text)
	assert.Empty(t, sections.Recommendations)
}

func TestExtractWith_CustomVocabulary(t *testing.T) {
	cfg := Config{
		RecommendationHeadings: []string{"Suggestions"},
		InsightHeadings:        []string{"Observations"},
		NextStepHeadings:       []string{"Tomorrow"},
		MaxPerSection:          2,
	}
	text := `Suggestions:
- s1
- s2
- s3

Observations:
- o1

Tomorrow:
- t1`

	sections := ExtractWith(cfg, text)
	assert.Equal(t, []string{"s1", "s2"}, sections.Recommendations)
	assert.Equal(t, []string{"o1"}, sections.Insights)
	assert.Equal(t, []string{"t1"}, sections.NextSteps)
}

func TestExtract_ActionItemsHeading(t *testing.T) {
	text := `Recommendations:
- r1

Action Items:
- a1
- a2`

	sections := Extract(text)
	assert.Equal(t, []string{"a1", "a2"}, sections.NextSteps)
}
