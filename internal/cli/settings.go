package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tremorlog/tremorlog/internal/config"
	"github.com/tremorlog/tremorlog/internal/storage"
)

// NewSettingsCmd creates the 'settings' command.
func NewSettingsCmd() *cobra.Command {
	var rate string
	var durationSec int
	var theme string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		Long: `Without flags, print the current settings. With flags, update the
given fields and persist them. Unrecognized stored values fall back to
defaults on load.`,
		Example: `  tremorlog settings
  tremorlog settings --rate high --duration 30
  tremorlog settings --theme light`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore()
			defer store.Close()
			return runSettings(store, rate, durationSec, theme)
		},
	}

	cmd.Flags().StringVar(&rate, "rate", "", "Sampling rate: low, medium, high")
	cmd.Flags().IntVar(&durationSec, "duration", 0, "Recording duration in seconds")
	cmd.Flags().StringVar(&theme, "theme", "", "Theme: light, dark, auto")

	return cmd
}

func runSettings(store storage.Store, rate string, durationSec int, theme string) error {
	settings, err := store.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	changed := false
	if rate != "" {
		if rate != config.SamplingLow && rate != config.SamplingMedium && rate != config.SamplingHigh {
			return fmt.Errorf("unknown sampling rate %q (expected low, medium, or high)", rate)
		}
		settings.SamplingRate = rate
		changed = true
	}
	if durationSec > 0 {
		settings.RecordingDuration = durationSec
		changed = true
	}
	if theme != "" {
		if theme != config.ThemeLight && theme != config.ThemeDark && theme != config.ThemeAuto {
			return fmt.Errorf("unknown theme %q (expected light, dark, or auto)", theme)
		}
		settings.Theme = theme
		changed = true
	}

	if changed {
		if err := store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings saved.")
	}

	fmt.Printf("Sampling rate:      %s (%v interval)\n", settings.SamplingRate, settings.SampleInterval())
	fmt.Printf("Recording duration: %ds\n", settings.RecordingDuration)
	fmt.Printf("Theme:              %s\n", settings.Theme)
	return nil
}
