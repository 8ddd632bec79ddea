package ribbon

import (
	"math"

	"github.com/lixenwraith/rainbow-bench/parameter"
	"github.com/lixenwraith/rainbow-bench/terminal"
)

// BuildPalette generates numColors RGB triples forming a continuous hue
// rotation that wraps from the last index back to the first.
//
// Six-sector HSV approximation: h = i/n*360, v ramps 0..255 within each
// 60 degree sector, alternating ascending/descending channels. Pure and
// deterministic; numColors must already be clamped to [1, MaxRainbowColors].
func BuildPalette(numColors int) []terminal.RGB {
	colors := make([]terminal.RGB, numColors)

	for i := 0; i < numColors; i++ {
		h := float64(i) / float64(numColors) * 360.0
		sector := int(h/60.0) % 6
		v := int(math.Round(256.0 / 60.0 * math.Mod(h, 60.0)))
		if v > 255 {
			v = 255
		}

		var r, g, b uint8
		switch sector {
		case 0:
			r, g, b = 255, uint8(v), 0
		case 1:
			r, g, b = uint8(255-v), 255, 0
		case 2:
			r, g, b = 0, 255, uint8(v)
		case 3:
			r, g, b = 0, uint8(255-v), 255
		case 4:
			r, g, b = uint8(v), 0, 255
		case 5:
			r, g, b = 255, 0, uint8(255-v)
		}

		colors[i] = terminal.RGB{R: r, G: g, B: b}
	}

	return colors
}

// ClampColors bounds a requested palette size to the achievable range
func ClampColors(n int) int {
	if n < 1 {
		return 1
	}
	if n > parameter.MaxRainbowColors {
		return parameter.MaxRainbowColors
	}
	return n
}
