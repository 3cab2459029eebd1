package heuristics

import "math"

// Impact levels and reversibility grades accepted by the risk scorer.
// Unrecognised values fall back to the documented defaults, never to an
// error.
const (
	ImpactLow      = "LOW"
	ImpactMedium   = "MEDIUM"
	ImpactHigh     = "HIGH"
	ImpactCritical = "CRITICAL"

	ReversibilityEasy         = "EASY"
	ReversibilityModerate     = "MODERATE"
	ReversibilityHard         = "HARD"
	ReversibilityIrreversible = "IRREVERSIBLE"
)

// Risk levels derived from the final score.
const (
	RiskLow      = "LOW"
	RiskMedium   = "MEDIUM"
	RiskHigh     = "HIGH"
	RiskCritical = "CRITICAL"
)

const (
	neuralHighInsight = "NEURAL OVERLOAD: This decision is high-impact and low-reversibility. The strategic vector suggests extreme caution."
	neuralSafeInsight = "Trace parameters operating within safe margins."
)

// RiskFactors are the scalar inputs to the risk scorer. ConfidenceLevel is
// nil when the caller supplied none, which disables the confidence
// adjustment entirely.
type RiskFactors struct {
	Impact            string
	Reversibility     string
	ConfidenceLevel   *float64
	AlternativesCount int
	AssumptionsCount  int
}

// RiskBreakdown exposes the intermediate terms of the score for display.
type RiskBreakdown struct {
	Baseline          int     `json:"baseline"`
	Confidence        int     `json:"confidence"`
	DepthBonus        int     `json:"depthBonus"`
	CompoundingFactor float64 `json:"compoundingFactor"`
}

// RiskAssessment is the scorer's verdict.
type RiskAssessment struct {
	RiskScore     int           `json:"riskScore"`
	RiskLevel     string        `json:"riskLevel"`
	IsNeuralHigh  bool          `json:"isNeuralHigh"`
	Factors       RiskBreakdown `json:"factors"`
	NeuralInsight string        `json:"neuralInsight"`
}

// impactWeight returns the baseline points for an impact level.
func impactWeight(impact string) float64 {
	switch impact {
	case ImpactLow:
		return 5
	case ImpactMedium:
		return 15
	case ImpactHigh:
		return 30
	case ImpactCritical:
		return 40
	default:
		return 15
	}
}

// reversibilityMultiplier returns the compounding factor for a
// reversibility grade. Irreversible doubles the baseline.
func reversibilityMultiplier(reversibility string) float64 {
	switch reversibility {
	case ReversibilityEasy:
		return 1.0
	case ReversibilityModerate:
		return 1.2
	case ReversibilityHard:
		return 1.5
	case ReversibilityIrreversible:
		return 2.0
	default:
		return 1.2
	}
}

// ComputeRisk scores a decision on a 5..100 scale.
//
// Formula: baseline = impact x reversibility, plus a confidence adjustment
// (overconfidence with <2 alternatives is penalised 15, self-admitted
// uncertainty below 40 is penalised 20, otherwise (100-confidence) x 0.15
// rounded), minus a depth bonus for >=3 alternatives (+10) and >=4
// assumptions (+5).
func ComputeRisk(f RiskFactors) RiskAssessment {
	baseline := impactWeight(f.Impact) * reversibilityMultiplier(f.Reversibility)

	var confidenceRisk float64
	if f.ConfidenceLevel != nil {
		confidence := *f.ConfidenceLevel
		switch {
		case confidence > 90 && f.AlternativesCount < 2:
			confidenceRisk = 15
		case confidence < 40:
			confidenceRisk = 20
		default:
			confidenceRisk = math.Round((100 - confidence) * 0.15)
		}
	}

	var depthBonus float64
	if f.AlternativesCount >= 3 {
		depthBonus += 10
	}
	if f.AssumptionsCount >= 4 {
		depthBonus += 5
	}

	final := baseline + confidenceRisk - depthBonus
	final = math.Min(100, math.Max(5, final))

	level := RiskLow
	switch {
	case final >= 75:
		level = RiskCritical
	case final >= 50:
		level = RiskHigh
	case final >= 25:
		level = RiskMedium
	}

	neuralHigh := final > 80
	insight := neuralSafeInsight
	if neuralHigh {
		insight = neuralHighInsight
	}

	return RiskAssessment{
		RiskScore:    int(math.Round(final)),
		RiskLevel:    level,
		IsNeuralHigh: neuralHigh,
		Factors: RiskBreakdown{
			Baseline:          int(math.Round(baseline)),
			Confidence:        int(confidenceRisk),
			DepthBonus:        -int(depthBonus),
			CompoundingFactor: reversibilityMultiplier(f.Reversibility),
		},
		NeuralInsight: insight,
	}
}
