package terminal

// Backend abstracts platform-specific console operations.
// The benchmark core never touches a platform API directly; it sees only
// this interface plus the Session lifecycle built on top of it.
type Backend interface {
	// Lifecycle
	// Init enters raw mode. Fini restores the prior mode and is safe to
	// call when Init failed or was never called.
	Init() error
	Fini()

	// Size returns current viewport dimensions, or (0, 0) when the
	// platform cannot report them (the caller falls back to a cursor
	// position query).
	Size() (width, height int)

	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// Read blocks until input is available, the stop channel is closed,
	// or an error occurs. A nil slice without error means stop/EOF.
	Read(stopCh <-chan struct{}) ([]byte, error)
}
