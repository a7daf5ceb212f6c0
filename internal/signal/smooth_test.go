package signal

import "testing"

func TestSmoothPreservesLength(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	for _, w := range []int{1, 2, 3, 5, 7} {
		out := Smooth(series, w)
		if len(out) != len(series) {
			t.Errorf("window %d: length %d, want %d", w, len(out), len(series))
		}
	}
}

func TestSmoothIdentityForLargeWindow(t *testing.T) {
	series := []float64{4, 8, 15, 16}
	out := Smooth(series, len(series))
	for i := range series {
		if out[i] != series[i] {
			t.Fatalf("window >= len should return input unchanged, got %v", out)
		}
	}
}

// TestSmoothBoundaryClipping checks the asymmetric window at the edges:
// the divisor is the count of points actually inside [i-half, i+half].
func TestSmoothBoundaryClipping(t *testing.T) {
	series := []float64{0, 10, 20, 30, 40, 50}
	out := Smooth(series, 3)

	// Index 0: window [0, 1] -> (0+10)/2 = 5
	if !almostEqual(out[0], 5) {
		t.Errorf("out[0] = %v, want 5", out[0])
	}
	// Index 2: full window [1, 3] -> (10+20+30)/3 = 20
	if !almostEqual(out[2], 20) {
		t.Errorf("out[2] = %v, want 20", out[2])
	}
	// Last index: window [4, 5] -> (40+50)/2 = 45
	if !almostEqual(out[5], 45) {
		t.Errorf("out[5] = %v, want 45", out[5])
	}
}

func TestSmoothFlattensSpike(t *testing.T) {
	series := []float64{1, 1, 1, 100, 1, 1, 1}
	out := Smooth(series, 5)
	if out[3] >= 100 {
		t.Errorf("smoothing should reduce the spike, got %v", out[3])
	}
}

func TestDetectAnomaliesFindsOutlier(t *testing.T) {
	series := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 50}
	anomalies := DetectAnomalies(series, DefaultAnomalyThreshold)
	if len(anomalies) != 1 || anomalies[0] != 9 {
		t.Errorf("expected anomaly at index 9, got %v", anomalies)
	}
}

// Constant series has stddev 0; the documented policy is no anomalies
// rather than a division by zero.
func TestDetectAnomaliesConstantSeries(t *testing.T) {
	series := []float64{5, 5, 5, 5, 5}
	if anomalies := DetectAnomalies(series, 2); len(anomalies) != 0 {
		t.Errorf("constant series should yield no anomalies, got %v", anomalies)
	}
}

func TestDetectAnomaliesEmpty(t *testing.T) {
	if anomalies := DetectAnomalies(nil, 2); len(anomalies) != 0 {
		t.Errorf("empty series should yield no anomalies, got %v", anomalies)
	}
}
