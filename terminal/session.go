package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Session owns the terminal for the duration of a benchmark run: raw mode,
// alternate screen buffer, hidden cursor. Fini restores the prior state and
// is safe to call multiple times and from any exit path.
type Session struct {
	backend Backend

	stopCh chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewSession creates a session over the platform backend
func NewSession() *Session {
	return &Session{
		backend: newBackend(),
		stopCh:  make(chan struct{}),
	}
}

// newSessionWith allows tests to inject a fake backend
func newSessionWith(b Backend) *Session {
	return &Session{
		backend: b,
		stopCh:  make(chan struct{}),
	}
}

// Init enters raw mode, switches to the alternate screen buffer and hides
// the cursor
func (s *Session) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := s.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	if err := s.backend.Write(AltScreenEnter); err != nil {
		s.backend.Fini()
		return fmt.Errorf("terminal init: %w", err)
	}
	s.backend.Write(CursorHide)

	s.initialized = true
	return nil
}

// Fini restores terminal state: close any open synchronized update, show
// the cursor, leave the alternate screen, reset SGR, restore cooked mode
func (s *Session) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}

	close(s.stopCh)

	s.backend.Write(SyncEnd)
	s.backend.Write(CursorShow)
	s.backend.Write(AltScreenExit)
	s.backend.Write(SGR0)

	s.backend.Fini()

	s.finalized = true
}

// Write writes a composed frame to the terminal
func (s *Session) Write(p []byte) error {
	return s.backend.Write(p)
}

// Size returns the viewport dimensions. The platform query is preferred;
// when it reports nothing usable, the cursor-position protocol is the only
// remaining source and its failure is fatal to the caller.
func (s *Session) Size() (int, int, error) {
	w, h := s.backend.Size()
	if w > 0 && h > 0 {
		return w, h, nil
	}
	return s.QueryDimensions()
}

// EmergencyReset attempts to restore terminal to sane state.
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(SyncEnd)
	w.Write(CursorShow)
	w.Write(AltScreenExit)
	w.Write(SGR0)
	w.Write(RIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	// Best-effort; ignore errors in crash context
	resetTerminalMode()
}
