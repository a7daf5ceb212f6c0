package analysis

import (
	"fmt"
	"math"

	"github.com/tremorlog/tremorlog/internal/session"
)

// Correlation gating: both groups need more than minGroupSize sessions
// and the group means must differ by more than minEffectSize before an
// entry is emitted. Below either bar the flag is silently skipped — a
// false-positive guard, not an omission.
const (
	minGroupSize  = 2
	minEffectSize = 0.10
)

// contextFlag is one tracked annotation flag.
type contextFlag struct {
	name string
	set  func(*session.Context) bool
}

var trackedFlags = []contextFlag{
	{name: "caffeine", set: func(c *session.Context) bool { return c.Caffeine }},
	{name: "stress", set: func(c *session.Context) bool { return c.Stress }},
}

// correlations partitions the history per tracked flag and compares
// group-average variability. The flagged group running higher is a
// negative impact (worse stability), lower is positive.
func correlations(history []session.RecordingSession) []Correlation {
	results := []Correlation{}

	for _, flag := range trackedFlags {
		var flagged, unflagged []session.RecordingSession
		for _, sess := range history {
			if sess.Context != nil && flag.set(sess.Context) {
				flagged = append(flagged, sess)
			} else {
				unflagged = append(unflagged, sess)
			}
		}

		if len(flagged) <= minGroupSize || len(unflagged) <= minGroupSize {
			continue
		}

		flaggedAvg := averageVariability(flagged)
		unflaggedAvg := averageVariability(unflagged)
		if unflaggedAvg == 0 {
			continue
		}

		diff := (flaggedAvg - unflaggedAvg) / unflaggedAvg
		if math.Abs(diff) <= minEffectSize {
			continue
		}

		impact := "positive"
		comparative := "lower"
		if diff > 0 {
			impact = "negative"
			comparative = "higher"
		}

		results = append(results, Correlation{
			Context: flag.name,
			Impact:  impact,
			Description: fmt.Sprintf("Sessions with %s show %.0f%% %s variability.",
				flag.name, math.Abs(diff)*100, comparative),
		})
	}

	return results
}
