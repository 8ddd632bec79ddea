// @focus: #terminal { ansi }
package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// Screen modes
	AltScreenEnter = []byte("\x1b[?1049h")
	AltScreenExit  = []byte("\x1b[?1049l")

	// DECTCEM cursor visibility
	CursorHide = []byte("\x1b[?25l")
	CursorShow = []byte("\x1b[?25h")

	// Synchronized update bracket (mode 2026), prevents partial-frame tearing
	SyncBegin = []byte("\x1b[?2026h")
	SyncEnd   = []byte("\x1b[?2026l")

	// Cursor Position (CUP) to home
	Home = []byte("\x1b[H")

	// SGR default foreground/background, emitted at frame start
	ResetColors = []byte("\x1b[39;49m")

	// Full SGR reset
	SGR0 = []byte("\x1b[0m")

	// RIS: Reset to Initial State (emergency)
	RIS = []byte("\x1bc")

	// Cursor position query: park at bottom-right, then DSR 6.
	// The parked position makes the report double as a size probe
	CursorToCorner = []byte("\x1b[9999;9999H")
	CursorReport   = []byte("\x1b[6n")

	// Truecolor SGR prefixes
	sgrFgRGB   = []byte("\x1b[38;2;")
	sgrBgRGB   = []byte("\x1b[48;2;")
	sgrFgParam = []byte(";38;2;")
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// AppendInt appends the decimal form of n without allocation.
// Optimized for SGR parameters (0-255) and screen coordinates
func AppendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	return append(dst, buf[i+1:]...)
}

// appendRGBParams appends "R;G;B" for an SGR color sequence
func appendRGBParams(dst []byte, c RGB) []byte {
	dst = AppendInt(dst, int(c.R))
	dst = append(dst, ';')
	dst = AppendInt(dst, int(c.G))
	dst = append(dst, ';')
	dst = AppendInt(dst, int(c.B))
	return dst
}

// AppendFgRGB appends a complete truecolor foreground sequence: ESC[38;2;R;G;Bm
func AppendFgRGB(dst []byte, fg RGB) []byte {
	dst = append(dst, sgrFgRGB...)
	dst = appendRGBParams(dst, fg)
	return append(dst, 'm')
}

// AppendBgRGB appends a complete truecolor background sequence: ESC[48;2;R;G;Bm
func AppendBgRGB(dst []byte, bg RGB) []byte {
	dst = append(dst, sgrBgRGB...)
	dst = appendRGBParams(dst, bg)
	return append(dst, 'm')
}

// AppendBgFgRGB appends a combined sequence: ESC[48;2;R;G;B;38;2;R;G;Bm
// One CSI for both colors halves the control-byte overhead per cell
func AppendBgFgRGB(dst []byte, bg, fg RGB) []byte {
	dst = append(dst, sgrBgRGB...)
	dst = appendRGBParams(dst, bg)
	dst = append(dst, sgrFgParam...)
	dst = appendRGBParams(dst, fg)
	return append(dst, 'm')
}
