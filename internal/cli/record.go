package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	osignal "os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/tremorlog/tremorlog/internal/recorder"
	"github.com/tremorlog/tremorlog/internal/session"
	"github.com/tremorlog/tremorlog/internal/storage"
)

// NewRecordCmd creates the 'record' command.
func NewRecordCmd() *cobra.Command {
	var durationSec int
	var rate string
	var caffeine, sleepDeprived, stress bool
	var notes string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a new session",
		Long: `Record one timed session from the IMU pair and persist it.

A short countdown precedes collection; Ctrl-C during collection aborts
and discards the buffer. Duration and sampling rate default to the
saved settings. The built-in simulated sensor pair stands in for device
hardware.`,
		Example: `  tremorlog record
  tremorlog record --duration 30 --rate high
  tremorlog record --caffeine --notes "after two espressos"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var recCtx *session.Context
			if caffeine || sleepDeprived || stress || notes != "" {
				recCtx = &session.Context{
					Caffeine:      caffeine,
					SleepDeprived: sleepDeprived,
					Stress:        stress,
					Notes:         notes,
				}
			}

			store := openStore()
			defer store.Close()
			return runRecord(store, durationSec, rate, recCtx)
		},
	}

	cmd.Flags().IntVarP(&durationSec, "duration", "d", 0, "Recording duration in seconds (default from settings)")
	cmd.Flags().StringVarP(&rate, "rate", "r", "", "Sampling rate: low, medium, high (default from settings)")
	cmd.Flags().BoolVar(&caffeine, "caffeine", false, "Mark the session as after caffeine")
	cmd.Flags().BoolVar(&sleepDeprived, "sleep-deprived", false, "Mark the session as sleep deprived")
	cmd.Flags().BoolVar(&stress, "stress", false, "Mark the session as under stress")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Free-text notes for the session")

	return cmd
}

// runRecord resolves effective settings, runs the countdown, records,
// and reports the derived stats.
func runRecord(store storage.Store, durationSec int, rate string, recCtx *session.Context) error {
	settings, err := store.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if durationSec > 0 {
		settings.RecordingDuration = durationSec
	}
	if rate != "" {
		settings.SamplingRate = rate
	}
	settings.Normalize()

	rec := recorder.New(
		recorder.NewSimulatedAccelerometer(),
		recorder.NewSimulatedGyroscope(),
		store,
	)

	ctx, stop := osignal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for i := 3; i > 0; i-- {
		fmt.Printf("Recording in %d...\n", i)
		select {
		case <-ctx.Done():
			fmt.Println("Cancelled.")
			return nil
		case <-time.After(time.Second):
		}
	}
	fmt.Printf("Recording for %ds at %s rate (Ctrl-C to abort)...\n",
		settings.RecordingDuration, settings.SamplingRate)

	sess, err := rec.Record(ctx, recorder.Options{
		Duration: settings.Duration(),
		Interval: settings.SampleInterval(),
		Context:  recCtx,
	})
	switch {
	case errors.Is(err, recorder.ErrAborted):
		fmt.Println("Recording aborted; nothing was saved.")
		return nil
	case errors.Is(err, session.ErrNoData):
		return fmt.Errorf("no data collected")
	case err != nil && sess != nil:
		// Recorded but not persisted; the session data is intact, so tell
		// the user instead of dropping it on the floor.
		return fmt.Errorf("recording succeeded but saving failed (retry with a working store): %w", err)
	case err != nil:
		return err
	}

	fmt.Printf("\nSession %s saved.\n", sess.ID)
	fmt.Printf("  Samples:        %d\n", len(sess.Magnitude))
	fmt.Printf("  Mean amplitude: %.4f\n", sess.Stats.MeanAmplitude)
	fmt.Printf("  Variability:    %.4f\n", sess.Stats.Variability)
	fmt.Printf("  Peak amplitude: %.4f\n", sess.Stats.PeakAmplitude)
	return nil
}
