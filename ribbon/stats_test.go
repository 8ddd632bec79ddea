package ribbon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSampler_RatesFromFullWindow(t *testing.T) {
	t0 := time.Unix(1000, 0)
	s := NewSampler(t0)

	// 120 frames totalling 2000 units over a measured 1.0 second window
	for i := 0; i < 119; i++ {
		s.Record(0)
	}
	s.Record(2000)

	require.True(t, s.Roll(t0.Add(time.Second)))

	fps, rate := s.Rates()
	require.InDelta(t, 120.0, fps, 1e-9)
	require.InDelta(t, 2000.0, rate, 1e-9)
}

func TestSampler_NoRollBeforeWindowCloses(t *testing.T) {
	t0 := time.Unix(1000, 0)
	s := NewSampler(t0)

	s.Record(500)
	require.False(t, s.Roll(t0.Add(999*time.Millisecond)))

	// Rates still reflect the previous (empty) window
	fps, rate := s.Rates()
	require.Zero(t, fps)
	require.Zero(t, rate)
}

func TestSampler_WindowResetsAccumulators(t *testing.T) {
	t0 := time.Unix(1000, 0)
	s := NewSampler(t0)

	s.Record(100)
	s.Record(100)
	require.True(t, s.Roll(t0.Add(time.Second)))

	// Next window starts clean: 1 frame, 60 units over 2 seconds
	s.Record(60)
	require.True(t, s.Roll(t0.Add(3*time.Second)))

	fps, rate := s.Rates()
	require.InDelta(t, 0.5, fps, 1e-9)
	require.InDelta(t, 30.0, rate, 1e-9)
}

func TestSampler_ElapsedScaling(t *testing.T) {
	t0 := time.Unix(1000, 0)
	s := NewSampler(t0)

	for i := 0; i < 90; i++ {
		s.Record(10)
	}

	// Window closes late: rates use the real elapsed time, not the nominal window
	require.True(t, s.Roll(t0.Add(1500*time.Millisecond)))

	fps, rate := s.Rates()
	require.InDelta(t, 60.0, fps, 1e-9)
	require.InDelta(t, 600.0, rate, 1e-9)
}
