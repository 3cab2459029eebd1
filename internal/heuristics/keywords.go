package heuristics

import (
	"sort"
	"strings"
)

// ExtractKeywords tokenizes text, ranks tokens by frequency and blends in
// any category keywords that appear in the original text. Returns at most
// five unique tags. Empty text yields an empty slice.
func (e *Engine) ExtractKeywords(text, category string) []string {
	if text == "" {
		return []string{}
	}

	lower := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return ' '
		}
	}, lower)

	type wordCount struct {
		word  string
		count int
	}
	counts := make(map[string]*wordCount)
	var order []*wordCount
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 2 || e.lex.StopWords[w] {
			continue
		}
		wc, ok := counts[w]
		if !ok {
			wc = &wordCount{word: w}
			counts[w] = wc
			order = append(order, wc)
		}
		wc.count++
	}

	// Stable sort: ties keep first-occurrence order.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	keywords := make([]string, 0, 10)
	for i, wc := range order {
		if i == 10 {
			break
		}
		keywords = append(keywords, wc.word)
	}

	// Category keywords match by substring containment on the raw text,
	// not by token, so multi-word phrases still hit.
	if category != "" {
		for _, kw := range e.lex.CategoryKeywords[category] {
			if strings.Contains(lower, kw) {
				keywords = append(keywords, kw)
			}
		}
	}

	seen := make(map[string]bool, len(keywords))
	tags := make([]string, 0, 5)
	for _, w := range keywords {
		if seen[w] {
			continue
		}
		seen[w] = true
		tags = append(tags, w)
		if len(tags) == 5 {
			break
		}
	}
	return tags
}

// DetectCategory returns the first category whose keyword list matches the
// text, or "" when none do. Scan order is fixed for determinism; categories
// added via a lexicon override are scanned after the built-in ones.
func (e *Engine) DetectCategory(text string) string {
	lower := strings.ToLower(text)
	known := make(map[string]bool, len(categoryOrder))

	for _, cat := range categoryOrder {
		known[cat] = true
		if e.matchesCategory(lower, cat) {
			return cat
		}
	}

	var extra []string
	for cat := range e.lex.CategoryKeywords {
		if !known[cat] {
			extra = append(extra, cat)
		}
	}
	sort.Strings(extra)
	for _, cat := range extra {
		if e.matchesCategory(lower, cat) {
			return cat
		}
	}
	return ""
}

func (e *Engine) matchesCategory(lower, category string) bool {
	for _, kw := range e.lex.CategoryKeywords[category] {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
