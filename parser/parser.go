// Package parser extracts structured fields from free-form model output.
// Extraction is best-effort by design: model phrasing varies, so a miss
// yields an empty field, never an error, and the raw text stays with the
// caller.
package parser

import "strings"

// Sections holds the fields extracted from one agent response.
type Sections struct {
	Recommendations []string
	Insights        []string
	NextSteps       []string
}

// Config is the tunable heading vocabulary. Matching is a case-sensitive
// substring test, so a single phrase also covers markdown-bold spellings
// like "**Recommendations**:".
type Config struct {
	RecommendationHeadings []string
	InsightHeadings        []string
	NextStepHeadings       []string

	// MaxPerSection bounds the run of bullet lines collected after a heading.
	MaxPerSection int
}

// DefaultConfig returns the vocabulary tuned against the coaching prompts
// shipped with this module.
func DefaultConfig() Config {
	return Config{
		RecommendationHeadings: []string{"Recommendations"},
		InsightHeadings:        []string{"Insights"},
		NextStepHeadings:       []string{"Next Steps", "Action Items", "Action items"},
		MaxPerSection:          5,
	}
}

var bulletMarkers = []string{"-", "•", "*"}

// Extract parses text with the default vocabulary.
func Extract(text string) Sections {
	return ExtractWith(DefaultConfig(), text)
}

// ExtractWith scans text line by line. A heading line opens a section; the
// contiguous run of bulleted lines that follows it is collected with markers
// stripped. Absent headings or empty runs leave the field empty. When no
// next-steps heading is found, the first three recommendations stand in;
// the reverse mapping is never applied.
func ExtractWith(cfg Config, text string) Sections {
	if cfg.MaxPerSection <= 0 {
		cfg.MaxPerSection = DefaultConfig().MaxPerSection
	}

	var out Sections
	lines := strings.Split(text, "\n")

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || isBullet(line) {
			continue
		}

		var field *[]string
		switch {
		case matchesHeading(line, cfg.RecommendationHeadings):
			field = &out.Recommendations
		case matchesHeading(line, cfg.InsightHeadings):
			field = &out.Insights
		case matchesHeading(line, cfg.NextStepHeadings):
			field = &out.NextSteps
		default:
			continue
		}

		items, consumed := collectBullets(lines[i+1:], cfg.MaxPerSection)
		*field = append(*field, items...)
		i += consumed
	}

	if len(out.NextSteps) == 0 && len(out.Recommendations) > 0 {
		n := len(out.Recommendations)
		if n > 3 {
			n = 3
		}
		out.NextSteps = append([]string(nil), out.Recommendations[:n]...)
	}

	return out
}

// collectBullets gathers the contiguous bulleted run following a heading,
// tolerating a blank line between the heading and the first bullet.
func collectBullets(lines []string, max int) (items []string, consumed int) {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		consumed++

		if line == "" {
			if len(items) == 0 {
				continue
			}
			return items, consumed
		}

		if !isBullet(line) {
			return items, consumed - 1
		}

		items = append(items, stripBullet(line))
		if len(items) >= max {
			return items, consumed
		}
	}
	return items, consumed
}

func matchesHeading(line string, vocabulary []string) bool {
	for _, phrase := range vocabulary {
		if strings.Contains(line, phrase) {
			return true
		}
	}
	return false
}

func isBullet(line string) bool {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker+" ") || line == marker {
			return true
		}
	}
	return false
}

func stripBullet(line string) string {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker))
		}
	}
	return line
}
