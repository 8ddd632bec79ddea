package ribbon

import (
	"github.com/lixenwraith/rainbow-bench/parameter"
	"github.com/lixenwraith/rainbow-bench/terminal"
)

// ColorMode selects which palette colors a cell's control sequence sets
type ColorMode uint8

const (
	ColorAll        ColorMode = iota // bg from palette, fg offset by a small stride
	ColorForeground                  // fg only
	ColorBackground                  // bg only
	ColorNone                        // bare glyphs
)

// Config fully determines Ring content; rebuilding with an identical Config
// yields byte-identical output
type Config struct {
	Colors int       // palette size, pre-clamped to [1, MaxRainbowColors]
	Width  int       // active viewport width in cells
	Mode   ColorMode // which colors each cell's control sequence sets
	Glyph  []byte    // fixed UTF-8 glyph override; nil means cycling ASCII
}

// Ring is the precomputed cyclic cell sequence. It holds Colors+Width cells
// so any Width-sized window starting at a cycle position in [0, Colors) is a
// single contiguous byte range, no wraparound splicing.
//
// offsets has Colors+Width+1 monotone entries; offsets[k+1]-offsets[k] is
// the encoded length of cell k, so a window is two lookups and one slice.
type Ring struct {
	cfg     Config
	buf     []byte
	offsets []int
}

// NewRing builds the ring for cfg. Cost is O(Colors+Width); all per-cell
// work is paid here, none at composition time.
func NewRing(cfg Config, palette []terminal.RGB) *Ring {
	count := cfg.Colors + cfg.Width
	r := &Ring{
		cfg:     cfg,
		buf:     make([]byte, 0, count*cellSizeHint(cfg)),
		offsets: make([]int, 0, count+1),
	}

	off := fgOffset(cfg.Colors)

	for i := 0; i < count; i++ {
		r.offsets = append(r.offsets, len(r.buf))

		switch cfg.Mode {
		case ColorAll:
			bg := palette[i%cfg.Colors]
			fg := palette[(i+off)%cfg.Colors]
			r.buf = terminal.AppendBgFgRGB(r.buf, bg, fg)
		case ColorForeground:
			r.buf = terminal.AppendFgRGB(r.buf, palette[i%cfg.Colors])
		case ColorBackground:
			r.buf = terminal.AppendBgRGB(r.buf, palette[i%cfg.Colors])
		case ColorNone:
		}

		if cfg.Glyph != nil {
			r.buf = append(r.buf, cfg.Glyph...)
		} else {
			r.buf = append(r.buf, cycleGlyph(i))
		}
	}

	r.offsets = append(r.offsets, len(r.buf))
	return r
}

// Window returns the contiguous byte range of n cells starting at cycle
// position pos. Valid for pos in [0, Colors) and n <= Width.
func (r *Ring) Window(pos, n int) []byte {
	return r.buf[r.offsets[pos]:r.offsets[pos+n]]
}

// Cells returns the number of encoded cells
func (r *Ring) Cells() int {
	return len(r.offsets) - 1
}

// Config returns the configuration the ring was built from
func (r *Ring) Config() Config {
	return r.cfg
}

// fgOffset is the palette stride between a cell's background and foreground
// in ColorAll mode. Empirical visual constant, no derivation
func fgOffset(numColors int) int {
	off := (numColors + 5) / 10
	if off < 1 {
		off = 1
	}
	return off
}

// cycleGlyph returns the printable ASCII glyph for cell i: one glyph per
// cell through '!'..'~', with cell 0 rendering the cycle origin
func cycleGlyph(i int) byte {
	shift := int(parameter.GlyphCycleOrigin - parameter.GlyphCycleFirst)
	return parameter.GlyphCycleFirst + byte((shift+i)%parameter.GlyphCycleCount)
}

// cellSizeHint estimates encoded bytes per cell for buffer preallocation
func cellSizeHint(cfg Config) int {
	glyph := 1
	if cfg.Glyph != nil {
		glyph = len(cfg.Glyph)
	}
	switch cfg.Mode {
	case ColorAll:
		return 38 + glyph // ESC[48;2;R;G;B;38;2;R;G;Bm worst case
	case ColorForeground, ColorBackground:
		return 20 + glyph
	default:
		return glyph
	}
}

// EncodeGlyph encodes a Unicode code point into its UTF-8 byte sequence for
// use as a fixed glyph override. Returns nil for out-of-range values, which
// callers treat as "no override".
func EncodeGlyph(cp uint32) []byte {
	switch {
	case cp < 0x80:
		return []byte{byte(cp)}
	case cp < 0x800:
		return []byte{
			0xc0 | byte(cp>>6),
			0x80 | byte(cp&0x3f),
		}
	case cp < 0x10000:
		return []byte{
			0xe0 | byte(cp>>12),
			0x80 | byte(cp>>6&0x3f),
			0x80 | byte(cp&0x3f),
		}
	case cp <= 0x110000:
		return []byte{
			0xf0 | byte(cp>>18),
			0x80 | byte(cp>>12&0x3f),
			0x80 | byte(cp>>6&0x3f),
			0x80 | byte(cp&0x3f),
		}
	}
	return nil
}
