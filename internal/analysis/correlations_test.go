package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/tremorlog/tremorlog/internal/session"
)

func flaggedSession(age time.Duration, variability float64, ctx *session.Context) session.RecordingSession {
	sess := sessionWith(age, variability)
	sess.Context = ctx
	return sess
}

// Five caffeine sessions at 15 vs five clean sessions at 10: a +50%
// difference, well over the 10% effect-size gate, flagged group worse.
func TestCorrelationCaffeineNegative(t *testing.T) {
	var history []session.RecordingSession
	for i := 0; i < 5; i++ {
		history = append(history,
			flaggedSession(time.Duration(i+1)*24*time.Hour, 15, &session.Context{Caffeine: true}),
			flaggedSession(time.Duration(i+1)*24*time.Hour, 10, &session.Context{}),
		)
	}

	results := correlations(history)
	if len(results) != 1 {
		t.Fatalf("expected 1 correlation, got %d: %+v", len(results), results)
	}

	c := results[0]
	if c.Context != "caffeine" {
		t.Errorf("context = %s, want caffeine", c.Context)
	}
	if c.Impact != "negative" {
		t.Errorf("impact = %s, want negative (flagged group worse)", c.Impact)
	}
	if !strings.Contains(c.Description, "50%") || !strings.Contains(c.Description, "higher") {
		t.Errorf("description should cite 50%% higher variability, got %q", c.Description)
	}
}

func TestCorrelationPositiveWhenFlaggedLower(t *testing.T) {
	var history []session.RecordingSession
	for i := 0; i < 4; i++ {
		history = append(history,
			flaggedSession(time.Duration(i+1)*time.Hour, 8, &session.Context{Stress: true}),
			flaggedSession(time.Duration(i+1)*time.Hour, 16, nil),
		)
	}

	results := correlations(history)
	if len(results) != 1 || results[0].Context != "stress" {
		t.Fatalf("expected one stress correlation, got %+v", results)
	}
	if results[0].Impact != "positive" {
		t.Errorf("impact = %s, want positive (flagged group lower)", results[0].Impact)
	}
}

// With two or fewer sessions in either group, no correlation is
// computed regardless of the difference.
func TestCorrelationInsufficientSamples(t *testing.T) {
	history := []session.RecordingSession{
		flaggedSession(1*time.Hour, 100, &session.Context{Caffeine: true}),
		flaggedSession(2*time.Hour, 100, &session.Context{Caffeine: true}),
		flaggedSession(3*time.Hour, 1, nil),
		flaggedSession(4*time.Hour, 1, nil),
		flaggedSession(5*time.Hour, 1, nil),
	}

	if results := correlations(history); len(results) != 0 {
		t.Errorf("expected no correlations with only 2 flagged sessions, got %+v", results)
	}
}

func TestCorrelationBelowEffectSize(t *testing.T) {
	var history []session.RecordingSession
	for i := 0; i < 4; i++ {
		history = append(history,
			// 5% apart: under the 10% gate.
			flaggedSession(time.Duration(i+1)*time.Hour, 10.5, &session.Context{Caffeine: true}),
			flaggedSession(time.Duration(i+1)*time.Hour, 10, nil),
		)
	}

	if results := correlations(history); len(results) != 0 {
		t.Errorf("expected no correlations below the effect-size gate, got %+v", results)
	}
}
