package heuristics

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// AssumptionCheck is the quality verdict for one assumption statement.
type AssumptionCheck struct {
	Score         int      `json:"score"`
	IsValidatable bool     `json:"isValidatable"`
	Issues        []string `json:"issues"`
}

// CheckAssumption scores an assumption starting from 100: -20 per distinct
// vague term found (one combined issue, not one per occurrence), -30 when
// the text is under 20 characters, -10 when it contains no digit. The
// score is clamped at 0 and the assumption counts as validatable above 60.
func (e *Engine) CheckAssumption(text string) AssumptionCheck {
	lower := strings.ToLower(text)

	score := 100
	issues := []string{}

	if found := matchTerms(lower, e.lex.Vague); len(found) > 0 {
		score -= 20 * len(found)
		issues = append(issues, fmt.Sprintf(
			"Vague Language: Usage of %q makes this assumption hard to validate. Be more specific.",
			strings.Join(found, ", ")))
	}

	if utf8.RuneCountInString(text) < 20 {
		score -= 30
		issues = append(issues, "Too Short: Short assumptions are often ambiguous. Add more detail about the 'who', 'what', and 'when'.")
	}

	if !strings.ContainsFunc(text, unicode.IsDigit) {
		score -= 10
		issues = append(issues, "Measurability: Lacks numbers or specific metrics. How will you measure if this is true?")
	}

	if score < 0 {
		score = 0
	}
	return AssumptionCheck{
		Score:         score,
		IsValidatable: score > 60,
		Issues:        issues,
	}
}
