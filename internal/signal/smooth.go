package signal

// DefaultSmoothingWindow is the moving-average window used when callers
// have no reason to pick another one.
const DefaultSmoothingWindow = 5

// Smooth applies a centered moving average with the given window size.
//
// The output always has the same length as the input. When windowSize
// is at least the series length, the input is returned unchanged. At
// the boundaries the window clips asymmetrically: each element is
// averaged over however many points actually exist within
// [i-half, i+half], half = windowSize/2, with the divisor being that
// actual count.
func Smooth(series []float64, windowSize int) []float64 {
	if windowSize >= len(series) {
		return series
	}

	half := windowSize / 2
	out := make([]float64, len(series))
	for i := range series {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(series)-1 {
			hi = len(series) - 1
		}

		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += series[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}
