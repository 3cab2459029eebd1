// Package lexicon holds the static phrase lists behind the rule-based
// analyzers. The built-in set is hand-curated; deployments can replace
// individual lists from a YAML file without rebuilding.
package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Set is one immutable collection of heuristic phrase lists. It is built
// once at startup and shared read-only by every analyzer invocation.
type Set struct {
	StopWords        map[string]bool
	CategoryKeywords map[string][]string
	Bias             []string
	LossAversion     []string
	SunkCost         []string
	Availability     []string
	Vague            []string
	Overload         []string
	Friction         []string
}

// Default returns the built-in lexicon set.
func Default() *Set {
	stop := make(map[string]bool, len(stopWords))
	for _, w := range stopWords {
		stop[w] = true
	}

	categories := make(map[string][]string, len(categoryKeywords))
	for cat, words := range categoryKeywords {
		categories[cat] = append([]string(nil), words...)
	}

	return &Set{
		StopWords:        stop,
		CategoryKeywords: categories,
		Bias:             append([]string(nil), biasIndicators...),
		LossAversion:     append([]string(nil), lossAversionIndicators...),
		SunkCost:         append([]string(nil), sunkCostIndicators...),
		Availability:     append([]string(nil), availabilityIndicators...),
		Vague:            append([]string(nil), vagueTerms...),
		Overload:         append([]string(nil), overloadIndicators...),
		Friction:         append([]string(nil), frictionIndicators...),
	}
}

// fileSet mirrors the YAML override format. Any list present in the file
// replaces the built-in list wholesale; absent keys keep the defaults.
type fileSet struct {
	StopWords        []string            `yaml:"stop_words"`
	CategoryKeywords map[string][]string `yaml:"category_keywords"`
	Bias             []string            `yaml:"bias_indicators"`
	LossAversion     []string            `yaml:"loss_aversion"`
	SunkCost         []string            `yaml:"sunk_cost"`
	Availability     []string            `yaml:"availability_bias"`
	Vague            []string            `yaml:"vague_terms"`
	Overload         []string            `yaml:"neural_overload"`
	Friction         []string            `yaml:"neural_friction"`
}

// Load builds a set from the defaults overlaid with the YAML file at path.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}

	var f fileSet
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lexicon file: %w", err)
	}

	s := Default()
	if len(f.StopWords) > 0 {
		s.StopWords = make(map[string]bool, len(f.StopWords))
		for _, w := range f.StopWords {
			s.StopWords[w] = true
		}
	}
	if len(f.CategoryKeywords) > 0 {
		s.CategoryKeywords = f.CategoryKeywords
	}
	if len(f.Bias) > 0 {
		s.Bias = f.Bias
	}
	if len(f.LossAversion) > 0 {
		s.LossAversion = f.LossAversion
	}
	if len(f.SunkCost) > 0 {
		s.SunkCost = f.SunkCost
	}
	if len(f.Availability) > 0 {
		s.Availability = f.Availability
	}
	if len(f.Vague) > 0 {
		s.Vague = f.Vague
	}
	if len(f.Overload) > 0 {
		s.Overload = f.Overload
	}
	if len(f.Friction) > 0 {
		s.Friction = f.Friction
	}
	return s, nil
}
