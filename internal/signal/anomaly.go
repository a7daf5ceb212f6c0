package signal

import "math"

// DefaultAnomalyThreshold is the z-score above which a sample counts as
// an outlier.
const DefaultAnomalyThreshold = 2.0

// DetectAnomalies returns the indices whose z-score
// |value - mean| / stddev exceeds the threshold.
//
// Policy for constant series: when the standard deviation is 0 the
// z-score is undefined, and a constant series has no outliers by
// definition, so the result is empty. Callers must not rely on a
// division-by-zero result.
func DetectAnomalies(series []float64, threshold float64) []int {
	stddev := Variability(series)
	if stddev == 0 {
		return nil
	}

	mean := Mean(series)
	var anomalies []int
	for i, v := range series {
		if math.Abs(v-mean)/stddev > threshold {
			anomalies = append(anomalies, i)
		}
	}
	return anomalies
}
