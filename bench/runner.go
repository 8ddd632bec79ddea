package bench

import (
	"fmt"
	"time"

	"github.com/lixenwraith/rainbow-bench/ribbon"
	"github.com/lixenwraith/rainbow-bench/terminal"
)

// Console is the narrow view of the terminal session the run loop needs.
// Tests drive the loop with an in-memory implementation.
type Console interface {
	Write(p []byte) error
	Size() (width, height int, err error)
}

// Unit selects what the throughput metric counts
type Unit uint8

const (
	UnitBytes Unit = iota // raw bytes written
	UnitCells             // viewport cells painted
)

// Options configures a benchmark run
type Options struct {
	Colors   int              // palette size, pre-clamped
	Mode     ribbon.ColorMode // cell color mode
	Glyph    []byte           // fixed glyph override, nil for cycling ASCII
	Unit     Unit             // throughput unit
	Duration time.Duration    // stop after this long; 0 runs until interrupted
}

// Summary reports run totals after the loop exits
type Summary struct {
	Width   int
	Height  int
	Frames  uint64
	Bytes   uint64
	Elapsed time.Duration
}

// Runner owns the render loop state: ring, viewport, tick counter and stats
// all live on the single consumer goroutine. The only cross-goroutine
// traffic is the signal Notifier.
type Runner struct {
	console Console
	signals *Notifier
	opts    Options

	palette []terminal.RGB
	ring    *ribbon.Ring
	vp      ribbon.Viewport
	comp    ribbon.Compositor
}

// NewRunner creates a runner. The palette depends only on the color count
// and is built once; the ring is rebuilt per confirmed resize.
func NewRunner(console Console, signals *Notifier, opts Options) *Runner {
	return &Runner{
		console: console,
		signals: signals,
		opts:    opts,
		palette: ribbon.BuildPalette(opts.Colors),
	}
}

// Run executes the benchmark loop until interrupted, the configured
// duration elapses, or a fatal terminal error occurs. Terminal mode
// restoration is the caller's responsibility (scoped session lifecycle).
func (r *Runner) Run() (Summary, error) {
	// Starting: synchronous initial size determination and ring build
	if err := r.rebuild(); err != nil {
		return Summary{}, err
	}

	start := time.Now()
	sampler := ribbon.NewSampler(start)

	var frames, bytes uint64

	summary := func() Summary {
		return Summary{
			Width:   r.vp.Width,
			Height:  r.vp.Height,
			Frames:  frames,
			Bytes:   bytes,
			Elapsed: time.Since(start),
		}
	}

	// Running: one frame per tick; pending signals are consumed exactly
	// once per tick before composing, so no frame is built from a
	// half-rebuilt ring
	for tick := 0; ; tick++ {
		pending := r.signals.Drain()
		if pending&SignalInterrupt != 0 {
			break
		}
		if pending&SignalResize != 0 {
			if err := r.rebuild(); err != nil {
				return summary(), err
			}
		}

		frame := r.comp.Compose(r.ring, r.vp, tick, r.status(sampler))
		if err := r.console.Write(frame); err != nil {
			return summary(), fmt.Errorf("frame write: %w", err)
		}

		units := len(frame)
		if r.opts.Unit == UnitCells {
			units = r.vp.Area()
		}
		sampler.Record(units)

		frames++
		bytes += uint64(len(frame))

		now := time.Now()
		sampler.Roll(now)

		if r.opts.Duration > 0 && now.Sub(start) >= r.opts.Duration {
			break
		}
	}

	return summary(), nil
}

// rebuild queries the viewport and rebuilds the ring under the new
// dimensions. The viewport is replaced wholesale, never patched.
func (r *Runner) rebuild() error {
	w, h, err := r.console.Size()
	if err != nil {
		return fmt.Errorf("viewport size: %w", err)
	}

	r.vp = ribbon.Viewport{Width: w, Height: h}
	r.ring = ribbon.NewRing(ribbon.Config{
		Colors: r.opts.Colors,
		Width:  w,
		Mode:   r.opts.Mode,
		Glyph:  r.opts.Glyph,
	}, r.palette)
	return nil
}

// status formats the rolling rates for the overlay line
func (r *Runner) status(s *ribbon.Sampler) string {
	fps, unitRate := s.Rates()
	if r.opts.Unit == UnitCells {
		return fmt.Sprintf("%.1f fps | %.3f Mcells/s", fps, unitRate/1e6)
	}
	return fmt.Sprintf("%.1f fps | %.3f MB/s", fps, unitRate/1e6)
}
