// Package heuristics implements the rule-based analyzers behind the
// insight endpoints: keyword tagging, decision similarity, risk scoring,
// blindspot detection and assumption quality checks.
//
// Every analyzer is a pure function of its inputs and the shared lexicon
// set: no I/O, no retained state, no errors. Malformed optional input is
// absorbed by documented defaults rather than rejected, so concurrent
// callers need no coordination.
package heuristics

import "github.com/decislog/insight/internal/lexicon"

// Decision categories recognised by the keyword and similarity analyzers.
// The engine never validates these; an unknown category simply has no
// keyword list and contributes nothing.
const (
	CategoryProduct    = "PRODUCT"
	CategoryMarketing  = "MARKETING"
	CategorySales      = "SALES"
	CategoryHiring     = "HIRING"
	CategoryTech       = "TECH"
	CategoryOperations = "OPERATIONS"
	CategoryStrategic  = "STRATEGIC"
	CategoryOther      = "OTHER"
)

// categoryOrder fixes the scan order for category detection so identical
// inputs always produce identical tags.
var categoryOrder = []string{
	CategoryProduct, CategoryMarketing, CategorySales, CategoryHiring,
	CategoryTech, CategoryOperations, CategoryStrategic, CategoryOther,
}

// Engine evaluates the analyzers against one immutable lexicon set.
type Engine struct {
	lex *lexicon.Set
}

// New creates an engine. A nil set means the built-in lexicons.
func New(lex *lexicon.Set) *Engine {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Engine{lex: lex}
}
