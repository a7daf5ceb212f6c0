/*
Package export renders the session history for external consumption.

JSON output is the verbatim serialized history, pretty-printed. CSV
output is one summary row per session under a fixed header, with stats
at four decimal places, ISO-8601 timestamps, and Yes/No context flags.
*/
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/tremorlog/tremorlog/internal/session"
)

// CSVHeader is the fixed column set of the CSV export.
var CSVHeader = []string{
	"ID", "Timestamp", "Duration",
	"Mean Amplitude", "Variability", "Peak Amplitude",
	"Caffeine", "Sleep Deprived", "Stress", "Notes",
}

// WriteJSON writes the pretty-printed session history.
func WriteJSON(w io.Writer, history []session.RecordingSession) error {
	if history == nil {
		history = []session.RecordingSession{}
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON export: %w", err)
	}
	return nil
}

// WriteCSV writes one row per session under CSVHeader.
func WriteCSV(w io.Writer, history []session.RecordingSession) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, sess := range history {
		caffeine, sleepDeprived, stress := false, false, false
		notes := ""
		if sess.Context != nil {
			caffeine = sess.Context.Caffeine
			sleepDeprived = sess.Context.SleepDeprived
			stress = sess.Context.Stress
			notes = sess.Context.Notes
		}

		row := []string{
			sess.ID,
			sess.Timestamp.Format(time.RFC3339),
			strconv.Itoa(int(sess.Duration.Seconds())),
			fmt.Sprintf("%.4f", sess.Stats.MeanAmplitude),
			fmt.Sprintf("%.4f", sess.Stats.Variability),
			fmt.Sprintf("%.4f", sess.Stats.PeakAmplitude),
			yesNo(caffeine),
			yesNo(sleepDeprived),
			yesNo(stress),
			notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV export: %w", err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
