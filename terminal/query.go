package terminal

import (
	"fmt"

	"github.com/lixenwraith/rainbow-bench/parameter"
)

// Cursor position report parsing: ESC [ <row> ; <col> R
//
// Used as the size probe where no asynchronous resize notification exists,
// and as the startup fallback when the platform size query reports nothing.
// The parser is an incremental byte classifier so a report split across
// reads is assembled correctly; any malformed byte discards partial state
// and scanning restarts at the next escape byte.

const (
	reportGround = iota // discard until escape byte
	reportBracket       // escape seen, expect '['
	reportRow           // accumulating row digits
	reportCol           // accumulating col digits
)

type reportParser struct {
	state     int
	row, col  int
	rowDigits int
	colDigits int
}

func (p *reportParser) reset() {
	*p = reportParser{}
}

// feed consumes one byte, returning true once a complete report is parsed.
// Row and col are left in p; caller clamps.
func (p *reportParser) feed(b byte) bool {
	switch p.state {
	case reportGround:
		if b == 0x1b {
			p.state = reportBracket
		}

	case reportBracket:
		if b == '[' {
			p.state = reportRow
			p.row, p.rowDigits = 0, 0
		} else {
			p.restart(b)
		}

	case reportRow:
		switch {
		case b >= '0' && b <= '9':
			p.row = p.row*10 + int(b-'0')
			if p.row > 99999 {
				p.row = 99999
			}
			p.rowDigits++
		case b == ';' && p.rowDigits > 0:
			p.state = reportCol
			p.col, p.colDigits = 0, 0
		default:
			p.restart(b)
		}

	case reportCol:
		switch {
		case b >= '0' && b <= '9':
			p.col = p.col*10 + int(b-'0')
			if p.col > 99999 {
				p.col = 99999
			}
			p.colDigits++
		case b == 'R' && p.colDigits > 0:
			return true
		default:
			p.restart(b)
		}
	}
	return false
}

// restart discards partial state; an escape byte immediately begins the
// next scan so back-to-back reports survive a malformed first one
func (p *reportParser) restart(b byte) {
	p.reset()
	if b == 0x1b {
		p.state = reportBracket
	}
}

func clampDim(n int) int {
	if n < parameter.MinQueriedDim {
		return parameter.MinQueriedDim
	}
	if n > parameter.MaxQueriedDim {
		return parameter.MaxQueriedDim
	}
	return n
}

// QueryDimensions determines the viewport size by parking the cursor at the
// bottom-right corner and requesting a cursor position report. Blocks until
// the terminal replies; acceptable outside the steady-state render loop.
func (s *Session) QueryDimensions() (width, height int, err error) {
	if err := s.backend.Write(CursorToCorner); err != nil {
		return 0, 0, fmt.Errorf("size query: %w", err)
	}
	if err := s.backend.Write(CursorReport); err != nil {
		return 0, 0, fmt.Errorf("size query: %w", err)
	}

	var p reportParser
	for {
		data, err := s.backend.Read(s.stopCh)
		if err != nil {
			return 0, 0, fmt.Errorf("size query: %w", err)
		}
		if len(data) == 0 {
			return 0, 0, fmt.Errorf("size query: no cursor report before input closed")
		}

		for _, b := range data {
			if p.feed(b) {
				return clampDim(p.col), clampDim(p.row), nil
			}
		}
	}
}
