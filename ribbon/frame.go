package ribbon

import (
	"github.com/lixenwraith/rainbow-bench/parameter"
	"github.com/lixenwraith/rainbow-bench/terminal"
)

// Viewport holds the active terminal dimensions. The controller replaces it
// wholesale on every confirmed resize; it is never mutated field-by-field.
type Viewport struct {
	Width  int
	Height int
}

// Area returns the cell count of the viewport
func (v Viewport) Area() int {
	return v.Width * v.Height
}

// Compositor assembles one full-screen update per tick from ring windows.
// The output buffer is reused across ticks; after warmup a frame composes
// with zero allocations.
type Compositor struct {
	buf []byte
}

// Compose builds the frame for the given tick: a synchronized-update
// bracket around cursor-home, color reset, the status line, and one ring
// window per row. Each row's cycle position advances by RowPhaseStride per
// row, producing the diagonal scroll as tick advances.
//
// The returned slice is valid until the next Compose call.
func (c *Compositor) Compose(ring *Ring, vp Viewport, tick int, status string) []byte {
	colors := ring.cfg.Colors

	c.buf = c.buf[:0]
	c.buf = append(c.buf, terminal.SyncBegin...)
	c.buf = append(c.buf, terminal.Home...)
	c.buf = append(c.buf, terminal.ResetColors...)

	if len(status) > vp.Width {
		status = status[:vp.Width]
	}
	c.buf = append(c.buf, status...)

	// Remainder of row 0. The phase is advanced by the status length so the
	// ribbon stays visually aligned with row 1 despite the intrusion
	if n := vp.Width - len(status); n > 0 {
		pos := (tick + len(status)) % colors
		c.buf = append(c.buf, ring.Window(pos, n)...)
	}

	for y := 1; y < vp.Height; y++ {
		pos := (tick + y*parameter.RowPhaseStride) % colors
		c.buf = append(c.buf, ring.Window(pos, vp.Width)...)
	}

	c.buf = append(c.buf, terminal.SyncEnd...)
	return c.buf
}
