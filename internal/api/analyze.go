package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/decislog/insight/internal/events"
	"github.com/decislog/insight/internal/heuristics"
)

// TagsRequest is the payload for POST /api/v1/analyze/tags.
type TagsRequest struct {
	Title    string `json:"title"`
	Context  string `json:"context,omitempty"`
	Decision string `json:"theDecision,omitempty"`
}

// TagsResponse carries the suggested tags.
type TagsResponse struct {
	Tags   []string `json:"tags"`
	Source string   `json:"source"`
}

// SimilarRequest is the payload for POST /api/v1/analyze/similar. The
// caller owns decision storage and supplies the candidate set inline.
// Limit is a pointer so an explicit 0 is rejected rather than defaulted.
type SimilarRequest struct {
	Decision   heuristics.Candidate   `json:"decision"`
	Candidates []heuristics.Candidate `json:"candidates"`
	Limit      *int                   `json:"limit,omitempty"`
}

// SimilarResponse carries the ranked matches.
type SimilarResponse struct {
	Similar []heuristics.Match `json:"similar"`
	Source  string             `json:"source"`
}

// RiskRequest is the payload for POST /api/v1/analyze/risk. Unrecognised
// enum values are absorbed by the scorer's defaults.
type RiskRequest struct {
	Impact            string   `json:"impact"`
	Reversibility     string   `json:"reversibility"`
	ConfidenceLevel   *float64 `json:"confidenceLevel,omitempty"`
	AlternativesCount int      `json:"alternativesCount,omitempty"`
	AssumptionsCount  int      `json:"assumptionsCount,omitempty"`
}

// BlindspotsRequest is the payload for POST /api/v1/analyze/blindspots.
type BlindspotsRequest struct {
	Title        string   `json:"title"`
	Context      string   `json:"context,omitempty"`
	Decision     string   `json:"theDecision,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// BlindspotsResponse carries the findings and the psychological trace.
type BlindspotsResponse struct {
	Blindspots         []string `json:"blindspots"`
	PsychologicalTrace string   `json:"psychologicalTrace"`
	AnalysisType       string   `json:"analysisType"`
}

// AssumptionRequest is the payload for POST /api/v1/analyze/assumption.
type AssumptionRequest struct {
	Text string `json:"text"`
}

func (s *Server) analyzeTags(w http.ResponseWriter, r *http.Request) {
	var req TagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "title is required")
		return
	}

	fullText := joinNonEmpty(req.Title, req.Context, req.Decision)
	tags := s.engine.ExtractKeywords(fullText, "")

	// A detected category leads the tag list, ahead of raw keywords.
	if cat := s.engine.DetectCategory(fullText); cat != "" {
		tags = dedupeCap(append([]string{strings.ToLower(cat)}, tags...), 5)
	}

	s.publish(events.AnalysisEvent{Kind: "tags", Findings: len(tags)})
	writeData(w, http.StatusOK, TagsResponse{Tags: tags, Source: "rule-based"})
}

func (s *Server) analyzeSimilar(w http.ResponseWriter, r *http.Request) {
	var req SimilarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if req.Decision.Title == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "decision.title is required")
		return
	}
	limit := 3
	if req.Limit != nil {
		limit = *req.Limit
	}
	if limit < 1 || limit > 10 {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "limit must be between 1 and 10")
		return
	}

	similar := heuristics.FindSimilar(req.Decision, req.Candidates, limit)

	s.publish(events.AnalysisEvent{Kind: "similar", Findings: len(similar)})
	writeData(w, http.StatusOK, SimilarResponse{Similar: similar, Source: "text-matching"})
}

func (s *Server) analyzeRisk(w http.ResponseWriter, r *http.Request) {
	var req RiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	assessment := heuristics.ComputeRisk(heuristics.RiskFactors{
		Impact:            req.Impact,
		Reversibility:     req.Reversibility,
		ConfidenceLevel:   req.ConfidenceLevel,
		AlternativesCount: req.AlternativesCount,
		AssumptionsCount:  req.AssumptionsCount,
	})

	s.publish(events.AnalysisEvent{Kind: "risk", RiskLevel: assessment.RiskLevel, Score: assessment.RiskScore})
	writeData(w, http.StatusOK, assessment)
}

func (s *Server) analyzeBlindspots(w http.ResponseWriter, r *http.Request) {
	var req BlindspotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "title is required")
		return
	}

	report := s.engine.AnalyzeBlindspots(heuristics.BlindspotInput{
		Title:        req.Title,
		Context:      req.Context,
		Decision:     req.Decision,
		Alternatives: req.Alternatives,
	})

	s.publish(events.AnalysisEvent{Kind: "blindspot", Findings: len(report.Blindspots)})
	writeData(w, http.StatusOK, BlindspotsResponse{
		Blindspots:         report.Blindspots,
		PsychologicalTrace: report.PsychologicalTrace,
		AnalysisType:       "neural-strategic-v1",
	})
}

func (s *Server) analyzeAssumption(w http.ResponseWriter, r *http.Request) {
	var req AssumptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("invalid JSON: %v", err))
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "text is required")
		return
	}

	check := s.engine.CheckAssumption(req.Text)

	s.publish(events.AnalysisEvent{Kind: "assumption", Score: check.Score, Findings: len(check.Issues)})
	writeData(w, http.StatusOK, check)
}

// publish ships the event when a broker is configured. Failures are logged
// and never fail the request.
func (s *Server) publish(ev events.AnalysisEvent) {
	if err := s.events.AnalysisCompleted(ev); err != nil {
		slog.Warn("failed to publish analysis event", "kind", ev.Kind, "error", err)
	}
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func dedupeCap(tags []string, n int) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, n)
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
		if len(out) == n {
			break
		}
	}
	return out
}
