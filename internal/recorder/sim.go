package recorder

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/tremorlog/tremorlog/internal/session"
)

// SimulatedSource generates plausible IMU samples without hardware:
// a constant baseline (gravity for the accelerometer, zero for the
// gyroscope) plus a low-frequency oscillation and Gaussian noise. It
// stands in for the device acquisition collaborator in tests and in
// `record --simulate`.
type SimulatedSource struct {
	// Baseline is the constant component on the z axis.
	Baseline float64

	// OscillationHz and OscillationAmp shape the periodic component.
	OscillationHz  float64
	OscillationAmp float64

	// NoiseStdDev scales the random component per axis.
	NoiseStdDev float64
}

// NewSimulatedAccelerometer returns a source resembling a hand at rest:
// gravity on z, a faint 5 Hz oscillation, mild noise.
func NewSimulatedAccelerometer() *SimulatedSource {
	return &SimulatedSource{
		Baseline:       9.81,
		OscillationHz:  5,
		OscillationAmp: 0.4,
		NoiseStdDev:    0.15,
	}
}

// NewSimulatedGyroscope returns a source with small angular velocities
// around zero.
func NewSimulatedGyroscope() *SimulatedSource {
	return &SimulatedSource{
		OscillationHz:  5,
		OscillationAmp: 0.05,
		NoiseStdDev:    0.02,
	}
}

// Available always reports true.
func (s *SimulatedSource) Available() bool {
	return true
}

// Subscribe emits samples on its own ticker until ctx is cancelled.
// The delivery clock is independent of the recorder's collection tick,
// which exercises the latest-value sampling the same way real sensor
// callbacks do.
func (s *SimulatedSource) Subscribe(ctx context.Context, interval time.Duration) (<-chan session.Triple, error) {
	ch := make(chan session.Triple, 1)

	go func() {
		defer close(ch)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		start := time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				t := now.Sub(start).Seconds()
				osc := s.OscillationAmp * math.Sin(2*math.Pi*s.OscillationHz*t)
				sample := session.Triple{
					X: osc + rand.NormFloat64()*s.NoiseStdDev,
					Y: osc/2 + rand.NormFloat64()*s.NoiseStdDev,
					Z: s.Baseline + osc + rand.NormFloat64()*s.NoiseStdDev,
				}
				select {
				case ch <- sample:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
