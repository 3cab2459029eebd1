package lexicon

// Common stop words filtered out before keyword ranking.
var stopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
	"by", "from", "as", "is", "was", "are", "were", "been", "be", "have", "has", "had",
	"do", "does", "did", "will", "would", "could", "should", "may", "might", "must",
	"this", "that", "these", "those", "it", "its", "we", "our", "you", "your", "they",
	"their", "what", "which", "who", "when", "where", "why", "how", "all", "each",
	"every", "both", "few", "more", "most", "other", "some", "such", "no", "not",
	"only", "same", "so", "than", "too", "very", "can", "just", "into", "also",
}

// Per-category keyword suggestions used to bias tag selection.
var categoryKeywords = map[string][]string{
	"PRODUCT":    {"feature", "roadmap", "launch", "mvp", "user", "ux", "design", "release"},
	"MARKETING":  {"campaign", "brand", "content", "seo", "advertising", "growth", "audience"},
	"SALES":      {"revenue", "pipeline", "lead", "conversion", "pricing", "deal", "quota"},
	"HIRING":     {"candidate", "interview", "onboarding", "team", "culture", "role", "talent"},
	"TECH":       {"infrastructure", "stack", "api", "database", "security", "performance", "migration"},
	"OPERATIONS": {"process", "workflow", "efficiency", "automation", "tools", "productivity"},
	"STRATEGIC":  {"vision", "pivot", "partnership", "expansion", "investment", "acquisition"},
	"OTHER":      {"decision", "change", "improvement", "analysis"},
}

// Emotional/absolute words that suggest confirmation bias.
var biasIndicators = []string{
	"absolutely", "always", "never", "obviously", "undoubtedly", "perfect",
	"impossible", "must", "everyone", "nobody", "definitely", "clearly",
	"fail-safe", "guaranteed", "no-brainer", "common sense", "natural choice",
}

var lossAversionIndicators = []string{
	"avoid losing", "prevent loss", "at all costs", "safe bet", "don't want to fail",
	"fear", "scared", "worried about drop", "high stakes if we don't",
}

var sunkCostIndicators = []string{
	"already spent", "already invested", "cannot waste", "keep going because",
	"put too much in", "can't turn back now",
}

var availabilityIndicators = []string{
	"just saw", "recently heard", "in the news", "trending", "everyone is talking about",
	"latest hype", "neighbor said", "saw on twitter", "saw on x",
}

// Weak words that make an assumption hard to validate.
var vagueTerms = []string{
	"might", "maybe", "probably", "possibly", "believe", "feel", "guess",
	"assume", "hope", "think", "some", "many", "few", "stuff", "things",
}

// Stress and urgency markers for the psychological trace.
var overloadIndicators = []string{
	"panicked", "stressful", "urgent", "emergency", "asap", "overwhelmed",
	"scared", "worried", "dreading", "rushed", "hurry",
}

// Internal-contradiction markers for the psychological trace.
var frictionIndicators = []string{
	"however", "but then", "on the other hand", "despite", "conflicting",
	"unsure if", "contradicts", "clash",
}
