package config

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.SamplingRate != SamplingMedium {
		t.Errorf("default sampling rate should be medium, got %q", s.SamplingRate)
	}
	if s.RecordingDuration != 10 {
		t.Errorf("default recording duration should be 10, got %d", s.RecordingDuration)
	}
	if s.Theme != ThemeDark {
		t.Errorf("default theme should be dark, got %q", s.Theme)
	}
}

func TestNormalizeKeepsRecognizedValues(t *testing.T) {
	s := &Settings{SamplingRate: SamplingHigh, RecordingDuration: 30, Theme: ThemeLight}
	s.Normalize()

	if s.SamplingRate != SamplingHigh || s.RecordingDuration != 30 || s.Theme != ThemeLight {
		t.Errorf("Normalize should not touch recognized values, got %+v", s)
	}
}

func TestNormalizeReplacesUnrecognized(t *testing.T) {
	s := &Settings{SamplingRate: "turbo", RecordingDuration: -5, Theme: "solarized"}
	s.Normalize()

	if s.SamplingRate != DefaultSamplingRate {
		t.Errorf("unrecognized sampling rate should fall back, got %q", s.SamplingRate)
	}
	if s.RecordingDuration != DefaultRecordingDuration {
		t.Errorf("non-positive duration should fall back, got %d", s.RecordingDuration)
	}
	if s.Theme != DefaultTheme {
		t.Errorf("unrecognized theme should fall back, got %q", s.Theme)
	}
}

// Settings written by a newer version with extra fields must still
// load; unknown JSON fields are ignored, missing fields get defaults.
func TestForwardCompatibleLoad(t *testing.T) {
	raw := []byte(`{"samplingRate":"high","hapticFeedback":true}`)

	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		t.Fatalf("unknown fields should not break parsing: %v", err)
	}
	s.Normalize()

	if s.SamplingRate != SamplingHigh {
		t.Errorf("sampling rate = %q, want high", s.SamplingRate)
	}
	if s.RecordingDuration != DefaultRecordingDuration {
		t.Errorf("missing duration should default, got %d", s.RecordingDuration)
	}
	if s.Theme != DefaultTheme {
		t.Errorf("missing theme should default, got %q", s.Theme)
	}
}

func TestSampleInterval(t *testing.T) {
	tests := []struct {
		rate string
		want time.Duration
	}{
		{SamplingLow, 50 * time.Millisecond},
		{SamplingMedium, 20 * time.Millisecond},
		{SamplingHigh, 10 * time.Millisecond},
	}

	for _, tt := range tests {
		s := &Settings{SamplingRate: tt.rate}
		if got := s.SampleInterval(); got != tt.want {
			t.Errorf("SampleInterval(%s) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
