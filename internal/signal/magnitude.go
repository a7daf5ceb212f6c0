/*
Package signal implements the pure signal-processing core: magnitude
series derivation from tri-axial samples, summary statistics,
moving-average smoothing, and z-score anomaly detection.

Every function in this package is a total, deterministic function of its
inputs. Empty and degenerate series are valid inputs and yield zero
values, never errors.
*/
package signal

import "math"

// Stats holds the summary statistics derived from a magnitude series.
// All fields are non-negative.
type Stats struct {
	// MeanAmplitude is the mean absolute deviation from the series mean.
	MeanAmplitude float64 `json:"meanAmplitude"`

	// Variability is the population standard deviation of the series.
	Variability float64 `json:"variability"`

	// PeakAmplitude is the maximum absolute deviation from the series mean.
	PeakAmplitude float64 `json:"peakAmplitude"`
}

// Magnitude returns the Euclidean norm of a tri-axial sample.
func Magnitude(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// MagnitudeSeries maps Magnitude over three per-axis sequences.
//
// The result has min(len(x), len(y), len(z)) elements; longer axes are
// silently truncated. Axis lengths only diverge when a sensor callback
// was interrupted mid-triple, so the tail samples carry no usable data.
func MagnitudeSeries(x, y, z []float64) []float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if len(z) < n {
		n = len(z)
	}

	series := make([]float64, n)
	for i := 0; i < n; i++ {
		series[i] = Magnitude(x[i], y[i], z[i])
	}
	return series
}

// Mean returns the arithmetic mean of the series, or 0 for an empty series.
func Mean(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// MeanAmplitude returns the mean absolute deviation from the series mean.
// Returns 0 for an empty series.
func MeanAmplitude(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	mean := Mean(series)
	sum := 0.0
	for _, v := range series {
		sum += math.Abs(v - mean)
	}
	return sum / float64(len(series))
}

// Variability returns the population standard deviation of the series
// (divide by N, not N-1). Returns 0 for an empty series.
func Variability(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	mean := Mean(series)
	sumSq := 0.0
	for _, v := range series {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(series)))
}

// PeakAmplitude returns the maximum absolute deviation from the series
// mean. Returns 0 for an empty series.
func PeakAmplitude(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	mean := Mean(series)
	peak := 0.0
	for _, v := range series {
		if d := math.Abs(v - mean); d > peak {
			peak = d
		}
	}
	return peak
}

// ComputeStats bundles MeanAmplitude, Variability, and PeakAmplitude
// over one magnitude series.
func ComputeStats(series []float64) Stats {
	return Stats{
		MeanAmplitude: MeanAmplitude(series),
		Variability:   Variability(series),
		PeakAmplitude: PeakAmplitude(series),
	}
}
