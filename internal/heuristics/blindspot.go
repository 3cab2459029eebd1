package heuristics

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Psychological trace labels from the sentiment pass.
const (
	TraceStable   = "Stable"
	TraceOverload = "NEURAL OVERLOAD DETECTED"
	TraceFriction = "HIGH NEURAL FRICTION"
)

// BlindspotInput carries the free-text fields of one decision. Only Title
// is expected to be present; the rest default to empty.
type BlindspotInput struct {
	Title        string
	Context      string
	Decision     string
	Alternatives []string
}

// BlindspotReport lists the detected blindspots in fixed check order, plus
// the psychological trace derived from stress and contradiction markers.
type BlindspotReport struct {
	Blindspots         []string `json:"blindspots"`
	PsychologicalTrace string   `json:"psychologicalTrace"`
}

// AnalyzeBlindspots scans the combined decision text against the bias
// lexicons and structural checks. All checks are independent; several
// findings can co-occur.
func (e *Engine) AnalyzeBlindspots(in BlindspotInput) BlindspotReport {
	haystack := strings.ToLower(in.Title + " " + in.Context + " " + in.Decision)

	blindspots := []string{}

	// 1. Confirmation bias: strong absolute language.
	if found := matchTerms(haystack, e.lex.Bias); len(found) > 0 {
		blindspots = append(blindspots, fmt.Sprintf(
			"Potential Confirmation Bias: You used strong absolute words like %q. Consider if you are over-confident.",
			strings.Join(firstN(found, 3), ", ")))
	}

	// 2. Lack of alternatives.
	if len(in.Alternatives) <= 1 {
		blindspots = append(blindspots,
			"Lack of Alternatives: You haven't considered enough alternatives. Good decisions usually involve comparing at least 3 viable options.")
	}

	// 3. Groupthink.
	if strings.Contains(haystack, "agreed") || strings.Contains(haystack, "consensus") || strings.Contains(haystack, "everyone") {
		blindspots = append(blindspots,
			"Potential Groupthink: Emphasis on consensus might hide dissenting views. Have you actively assigned a 'Devil's Advocate'?")
	}

	// 4. Shallow context. Counted in runes so multi-byte text is not
	// over-credited.
	if utf8.RuneCountInString(in.Context) < 50 {
		blindspots = append(blindspots,
			"Shallow Context: The context provided is very brief. You might be missing important constraints or background information.")
	}

	// 5. Loss aversion.
	if found := matchTerms(haystack, e.lex.LossAversion); len(found) > 0 {
		blindspots = append(blindspots,
			"Potential Loss Aversion: You seem focused on avoiding losses rather than maximizing gains. Research shows humans overweigh the pain of a loss twice as much as the joy of a gain.")
	}

	// 6. Sunk cost fallacy.
	if found := matchTerms(haystack, e.lex.SunkCost); len(found) > 0 {
		blindspots = append(blindspots,
			"Sunk Cost Fallacy: You mentioned previous investments. Past costs should not influence future decisions - only future utility matters.")
	}

	// 7. Availability bias.
	if found := matchTerms(haystack, e.lex.Availability); len(found) > 0 {
		blindspots = append(blindspots,
			`Availability Bias: You're referencing recent or trending events. These are often more "available" in memory but not necessarily representative of long-term patterns.`)
	}

	// 8. Sentiment pass: overload outranks friction.
	trace := TraceStable
	overload := matchTerms(haystack, e.lex.Overload)
	friction := matchTerms(haystack, e.lex.Friction)
	if len(overload) > 2 {
		trace = TraceOverload
		blindspots = append(blindspots, fmt.Sprintf(
			"Neural Overload: Your language suggests high stress or urgency (%q). Stress narrows focus and leads to poor trade-off analysis.",
			strings.Join(firstN(overload, 2), ", ")))
	} else if len(friction) > 3 {
		trace = TraceFriction
		blindspots = append(blindspots,
			"Neural Friction: Significant internal contradictions detected. You are acknowledging data that conflicts with your choice - ensure this isn't being 'reasoned away'.")
	}

	return BlindspotReport{Blindspots: blindspots, PsychologicalTrace: trace}
}

// matchTerms returns the lexicon terms contained in haystack, in lexicon
// order.
func matchTerms(haystack string, terms []string) []string {
	var found []string
	for _, t := range terms {
		if strings.Contains(haystack, t) {
			found = append(found, t)
		}
	}
	return found
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
