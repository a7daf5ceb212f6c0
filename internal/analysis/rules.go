package analysis

// classificationRule pairs a predicate with its verdict. Rules are
// evaluated in declaration order and the first match wins, making the
// precedence contract explicit and testable per rule.
type classificationRule struct {
	name    string
	matches func(ratio float64, trend Direction) bool
	result  Classification
}

var classificationRules = []classificationRule{
	{
		name: "near-baseline and steady",
		matches: func(ratio float64, trend Direction) bool {
			return ratio < 1.1 && trend == TrendStable
		},
		result: Classification{Type: "stable", Confidence: 0.9},
	},
	{
		name: "well above baseline or rising",
		matches: func(ratio float64, trend Direction) bool {
			return ratio > 1.5 || trend == TrendIncreasing
		},
		result: Classification{Type: "increasing", Confidence: 0.8},
	},
	{
		name: "moderately above baseline",
		matches: func(ratio float64, trend Direction) bool {
			return ratio > 1.2
		},
		result: Classification{Type: "variable", Confidence: 0.7},
	},
}

// classify runs the ordered rules; anything unmatched is irregular.
func classify(ratio float64, trend Direction) Classification {
	for _, rule := range classificationRules {
		if rule.matches(ratio, trend) {
			return rule.result
		}
	}
	return Classification{Type: "irregular", Confidence: 0.6}
}
