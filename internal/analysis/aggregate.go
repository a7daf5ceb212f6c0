package analysis

import (
	"sort"
	"time"

	"github.com/tremorlog/tremorlog/internal/session"
)

// DailyVariability is one calendar day's sessions reduced to an
// average variability. Consumed by presentation only.
type DailyVariability struct {
	Day         time.Time `json:"day"`
	Sessions    int       `json:"sessions"`
	Variability float64   `json:"variability"`
}

// GroupByDay folds the history into per-calendar-day averages, oldest
// day first. Days without sessions are absent, and an empty history
// yields an empty result.
func GroupByDay(history []session.RecordingSession) []DailyVariability {
	byDay := make(map[time.Time][]session.RecordingSession)
	for _, sess := range history {
		day := sess.Timestamp.Truncate(24 * time.Hour)
		byDay[day] = append(byDay[day], sess)
	}

	days := make([]DailyVariability, 0, len(byDay))
	for day, sessions := range byDay {
		days = append(days, DailyVariability{
			Day:         day,
			Sessions:    len(sessions),
			Variability: averageVariability(sessions),
		})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day.Before(days[j].Day)
	})
	return days
}

// RollingAverage smooths the per-day averages with a trailing window of
// windowDays calendar days, one output point per populated day. Days
// with no sessions contribute nothing to the window.
func RollingAverage(history []session.RecordingSession, windowDays int) []DailyVariability {
	daily := GroupByDay(history)
	if windowDays < 1 {
		windowDays = 1
	}

	out := make([]DailyVariability, len(daily))
	for i, day := range daily {
		cutoff := day.Day.AddDate(0, 0, -(windowDays - 1))

		sum := 0.0
		count := 0
		for j := i; j >= 0 && !daily[j].Day.Before(cutoff); j-- {
			sum += daily[j].Variability
			count++
		}

		out[i] = DailyVariability{
			Day:         day.Day,
			Sessions:    day.Sessions,
			Variability: sum / float64(count),
		}
	}
	return out
}
