/*
Package config defines the tremorlog settings surface and its defaults.

Settings persist through the storage layer and are merged over defaults
on load: any missing or unrecognized field falls back to its default
value rather than failing validation, so settings written by newer
versions keep loading (forward-compatible merge, not strict
validation).

Schema:

	{
	  "samplingRate": "low" | "medium" | "high",
	  "recordingDuration": 10,
	  "theme": "light" | "dark" | "auto"
	}
*/
package config

import "time"

// Sampling rates. The names map to tick intervals, not raw hardware
// rates: low 20 Hz, medium 50 Hz, high 100 Hz.
const (
	SamplingLow    = "low"
	SamplingMedium = "medium"
	SamplingHigh   = "high"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Defaults applied for missing or unrecognized fields.
const (
	DefaultSamplingRate      = SamplingMedium
	DefaultRecordingDuration = 10
	DefaultTheme             = ThemeDark
)

// Settings is the user-configurable surface.
type Settings struct {
	// SamplingRate selects the collection tick frequency.
	SamplingRate string `json:"samplingRate"`

	// RecordingDuration is the nominal recording length in seconds.
	RecordingDuration int `json:"recordingDuration"`

	// Theme is consumed by presentation only.
	Theme string `json:"theme"`
}

// DefaultSettings returns the settings used before the user has saved
// any.
func DefaultSettings() *Settings {
	return &Settings{
		SamplingRate:      DefaultSamplingRate,
		RecordingDuration: DefaultRecordingDuration,
		Theme:             DefaultTheme,
	}
}

// Normalize merges loaded settings over the defaults in place: each
// missing or unrecognized field is replaced by its default,
// recognized fields are kept as-is.
func (s *Settings) Normalize() {
	switch s.SamplingRate {
	case SamplingLow, SamplingMedium, SamplingHigh:
	default:
		s.SamplingRate = DefaultSamplingRate
	}

	if s.RecordingDuration <= 0 {
		s.RecordingDuration = DefaultRecordingDuration
	}

	switch s.Theme {
	case ThemeLight, ThemeDark, ThemeAuto:
	default:
		s.Theme = DefaultTheme
	}
}

// SampleInterval returns the collection tick interval for the
// configured sampling rate.
func (s *Settings) SampleInterval() time.Duration {
	switch s.SamplingRate {
	case SamplingLow:
		return 50 * time.Millisecond // 20 Hz
	case SamplingHigh:
		return 10 * time.Millisecond // 100 Hz
	default:
		return 20 * time.Millisecond // 50 Hz
	}
}

// Duration returns the nominal recording duration.
func (s *Settings) Duration() time.Duration {
	return time.Duration(s.RecordingDuration) * time.Second
}
