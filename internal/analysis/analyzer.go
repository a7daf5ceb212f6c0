/*
Package analysis derives a trend report from a history of recording
sessions: a median baseline, a trend direction over the recent window,
an ordered-rule stability classification, a 0-100 stability score, an
anomaly summary for the latest session, and context correlations.

Everything here is a pure function of the passed-in history and clock;
no state survives between invocations, and calling Analyze twice on
the same history yields identical reports. The outputs are transparent
rule-based statistics, deliberately free of any model or inference.
*/
package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tremorlog/tremorlog/internal/session"
	"github.com/tremorlog/tremorlog/internal/signal"
)

// Direction is the variability trend over the recent window.
type Direction string

const (
	TrendStable     Direction = "stable"
	TrendIncreasing Direction = "increasing"
	TrendDecreasing Direction = "decreasing"
)

// Classification is the stability verdict for the latest session
// relative to baseline. Recomputed fresh on every run, never persisted.
type Classification struct {
	// Type is one of stable, variable, increasing, irregular.
	Type string `json:"type"`

	// Confidence is in [0, 1].
	Confidence float64 `json:"confidence"`
}

// Correlation associates one context flag with a variability effect.
type Correlation struct {
	// Context is the flag name ("caffeine", "stress").
	Context string `json:"context"`

	// Impact is "positive", "negative", or "neutral".
	Impact string `json:"impact"`

	// Description is a human-readable percentage summary.
	Description string `json:"description"`
}

// TrendAnalysis is the disposable report produced per invocation. It
// holds no references back into the session history.
type TrendAnalysis struct {
	// StabilityScore is 0-100; higher means more consistent motion
	// relative to baseline.
	StabilityScore int `json:"stabilityScore"`

	Classification Classification `json:"classification"`

	// Summary is one or two template sentences.
	Summary string `json:"summary"`

	// Anomalies holds at most one descriptive string per run.
	Anomalies []string `json:"anomalies"`

	Correlations []Correlation `json:"correlations"`
}

// Analysis window parameters.
const (
	// recencyWindow bounds the sessions considered for trend direction.
	recencyWindow = 7 * 24 * time.Hour

	// minTrendSessions is the least history needed before a trend
	// direction is computed; below it the trend defaults to stable.
	minTrendSessions = 3

	// trendChangeThreshold is the relative half-over-half variability
	// change that counts as a direction.
	trendChangeThreshold = 0.15

	// anomalyRateThreshold is the share of anomalous samples in the
	// latest session above which the report carries an anomaly entry.
	anomalyRateThreshold = 0.10
)

// Analyze produces the trend report for the given history. The clock
// is explicit so the 7-day recency window is testable; callers pass
// time.Now().
func Analyze(history []session.RecordingSession, now time.Time) *TrendAnalysis {
	if len(history) == 0 {
		return &TrendAnalysis{
			StabilityScore: 50,
			Classification: Classification{Type: "stable", Confidence: 0.5},
			Summary:        "Not enough data yet. Record a few sessions to see your trend.",
			Anomalies:      []string{},
			Correlations:   []Correlation{},
		}
	}

	byTimeDesc := sortedByTimeDesc(history)
	latest := byTimeDesc[0]

	baseline := Baseline(history)
	recent := recentSessions(byTimeDesc, now)
	trend := trendDirection(history, recent)

	// Baseline 0 means a flat history; treat as 1 so the ratio stays
	// defined.
	effectiveBaseline := baseline
	if effectiveBaseline == 0 {
		effectiveBaseline = 1
	}
	ratio := latest.Stats.Variability / effectiveBaseline

	report := &TrendAnalysis{
		StabilityScore: stabilityScore(ratio),
		Classification: classify(ratio, trend),
		Summary:        summaryText(trend, recent, baseline),
		Anomalies:      []string{},
		Correlations:   correlations(history),
	}

	if desc, ok := anomalySummary(latest); ok {
		report.Anomalies = append(report.Anomalies, desc)
	}

	return report
}

// Baseline returns the median variability across the history. The
// median resists the occasional wild session better than a mean; an
// even-length list averages the two middle values.
func Baseline(history []session.RecordingSession) float64 {
	if len(history) == 0 {
		return 0
	}

	variabilities := make([]float64, len(history))
	for i, sess := range history {
		variabilities[i] = sess.Stats.Variability
	}
	sort.Float64s(variabilities)

	mid := len(variabilities) / 2
	if len(variabilities)%2 == 0 {
		return (variabilities[mid-1] + variabilities[mid]) / 2
	}
	return variabilities[mid]
}

// sortedByTimeDesc returns a copy of the history ordered newest first.
func sortedByTimeDesc(history []session.RecordingSession) []session.RecordingSession {
	sorted := make([]session.RecordingSession, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	return sorted
}

// recentSessions filters a newest-first history to the recency window.
func recentSessions(byTimeDesc []session.RecordingSession, now time.Time) []session.RecordingSession {
	cutoff := now.Add(-recencyWindow)
	var recent []session.RecordingSession
	for _, sess := range byTimeDesc {
		if sess.Timestamp.After(cutoff) {
			recent = append(recent, sess)
		}
	}
	return recent
}

// trendDirection compares average variability of the later half of the
// recent window against the earlier half. With too little data (fewer
// than three sessions overall or in the window) the trend defaults to
// stable rather than reading a direction into noise.
func trendDirection(history, recentDesc []session.RecordingSession) Direction {
	if len(history) < minTrendSessions || len(recentDesc) < minTrendSessions {
		return TrendStable
	}

	// Time-ascending; with an odd count the later half is the larger one.
	asc := make([]session.RecordingSession, len(recentDesc))
	for i, sess := range recentDesc {
		asc[len(recentDesc)-1-i] = sess
	}
	split := len(asc) / 2

	firstAvg := averageVariability(asc[:split])
	secondAvg := averageVariability(asc[split:])

	if firstAvg == 0 {
		if secondAvg > 0 {
			return TrendIncreasing
		}
		return TrendStable
	}

	change := (secondAvg - firstAvg) / firstAvg
	switch {
	case change > trendChangeThreshold:
		return TrendIncreasing
	case change < -trendChangeThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

func averageVariability(sessions []session.RecordingSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	sum := 0.0
	for _, sess := range sessions {
		sum += sess.Stats.Variability
	}
	return sum / float64(len(sessions))
}

// stabilityScore maps the latest/baseline ratio onto 0-100 for
// display: 100 at or below baseline, losing 50 points per doubling of
// the ratio, clamped.
func stabilityScore(ratio float64) int {
	score := 100 - (ratio-1)*50
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}

// anomalySummary runs outlier detection over the latest session's
// magnitude series and reports one descriptive entry when more than
// anomalyRateThreshold of the samples are anomalous.
func anomalySummary(latest session.RecordingSession) (string, bool) {
	if len(latest.Magnitude) == 0 {
		return "", false
	}

	anomalies := signal.DetectAnomalies(latest.Magnitude, signal.DefaultAnomalyThreshold)
	rate := float64(len(anomalies)) / float64(len(latest.Magnitude))
	if rate <= anomalyRateThreshold {
		return "", false
	}

	return fmt.Sprintf(
		"Latest session has an unusual number of outlier samples (%d of %d, %.0f%%).",
		len(anomalies), len(latest.Magnitude), rate*100,
	), true
}

// summaryText picks one or two fixed sentences from the trend direction
// and how the recent average compares to baseline.
func summaryText(trend Direction, recentDesc []session.RecordingSession, baseline float64) string {
	var first string
	switch trend {
	case TrendIncreasing:
		first = "Your variability has been trending up over the past week."
	case TrendDecreasing:
		first = "Your variability has been trending down over the past week."
	default:
		first = "Your variability has been steady recently."
	}

	recentAvg := averageVariability(recentDesc)
	if baseline > 0 && recentAvg > baseline*1.2 {
		return first + " Recent sessions are running noticeably above your baseline."
	}
	return first
}
