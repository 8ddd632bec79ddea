package ribbon

import (
	"time"

	"github.com/lixenwraith/rainbow-bench/parameter"
)

// Sampler accumulates frame and unit counts (bytes or cells, per the
// configured throughput unit) and converts them to per-second rates at
// window boundaries. Rates always reflect the previous full window, never a
// partial one; there is no exponential smoothing.
//
// Time is passed in explicitly so the window logic is testable.
type Sampler struct {
	windowStart time.Time
	frames      uint64
	units       uint64

	frameRate float64
	unitRate  float64
}

// NewSampler opens the first measurement window at now
func NewSampler(now time.Time) *Sampler {
	return &Sampler{windowStart: now}
}

// Record accumulates one composed frame and its unit count
func (s *Sampler) Record(units int) {
	s.frames++
	s.units += uint64(units)
}

// Roll closes the window if at least StatsWindow has elapsed, replacing the
// published rates and resetting the accumulators. Returns true when the
// window closed.
func (s *Sampler) Roll(now time.Time) bool {
	elapsed := now.Sub(s.windowStart)
	if elapsed < parameter.StatsWindow {
		return false
	}

	secs := elapsed.Seconds()
	s.frameRate = float64(s.frames) / secs
	s.unitRate = float64(s.units) / secs

	s.windowStart = now
	s.frames = 0
	s.units = 0
	return true
}

// Rates returns the most recently published per-second rates
func (s *Sampler) Rates() (frameRate, unitRate float64) {
	return s.frameRate, s.unitRate
}
