package heuristics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Candidate is the text and metadata of one decision considered for
// similarity ranking. Tags may be nil; they are treated as an empty set.
type Candidate struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Status   string    `json:"status,omitempty"`
	Category string    `json:"category,omitempty"`
	MadeOn   time.Time `json:"madeOn,omitempty"`
	Context  string    `json:"context,omitempty"`
	Decision string    `json:"theDecision,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
}

// Match is one ranked similarity result. Similarity is an integer
// percentage and can exceed 100 when category and tag boosts stack on a
// high base score; it is reported unclamped.
type Match struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Status     string    `json:"status,omitempty"`
	Category   string    `json:"category,omitempty"`
	MadeOn     time.Time `json:"madeOn,omitempty"`
	Similarity int       `json:"similarity"`
}

// Similarity computes Jaccard similarity over the word sets of two texts.
// Words of length <= 2 are ignored. An empty union yields 0, not NaN.
func Similarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setB)
	for w := range setA {
		if !setB[w] {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if len(w) > 2 {
			set[w] = true
		}
	}
	return set
}

// FindSimilar ranks candidates against source by combined text similarity
// with a +0.20 boost for an exact category match and +0.10 per overlapping
// tag. Candidates scoring <= 0.10 are discarded. The sort is stable, so
// tied candidates keep their input order.
func FindSimilar(source Candidate, candidates []Candidate, limit int) []Match {
	sourceText := combinedText(source)

	type scored struct {
		candidate Candidate
		score     float64
	}
	var ranked []scored
	for _, c := range candidates {
		score := Similarity(sourceText, combinedText(c))
		if c.Category == source.Category {
			score += 0.20
		}
		// Overlap counts source tags found in the candidate, so a
		// candidate repeating a tag earns the boost once.
		candidateTags := make(map[string]bool, len(c.Tags))
		for _, t := range c.Tags {
			candidateTags[t] = true
		}
		for _, t := range source.Tags {
			if candidateTags[t] {
				score += 0.10
			}
		}
		if score > 0.10 {
			ranked = append(ranked, scored{candidate: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	matches := make([]Match, 0, len(ranked))
	for _, r := range ranked {
		matches = append(matches, Match{
			ID:         r.candidate.ID,
			Title:      r.candidate.Title,
			Status:     r.candidate.Status,
			Category:   r.candidate.Category,
			MadeOn:     r.candidate.MadeOn,
			Similarity: int(math.Round(r.score * 100)),
		})
	}
	return matches
}

func combinedText(c Candidate) string {
	return c.Title + " " + c.Context + " " + c.Decision
}
