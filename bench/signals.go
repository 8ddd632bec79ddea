package bench

import "sync/atomic"

// Signal bits accumulated between ticks
type Signal uint32

const (
	SignalInterrupt Signal = 1 << 0
	SignalResize    Signal = 1 << 1
)

// Notifier is the pending-event accumulator between the platform signal
// listener and the render loop. Single producer, single consumer: the
// listener ORs bits in, the loop exchanges-and-clears exactly once per
// tick. Atomic flag semantics only; no locks, no queues.
type Notifier struct {
	bits atomic.Uint32
}

// Post marks a signal pending. Posting an already-pending signal is a no-op;
// notifications coalesce until the next drain.
func (n *Notifier) Post(s Signal) {
	n.bits.Or(uint32(s))
}

// Drain atomically takes and clears all pending signals, guaranteeing each
// notification is observed exactly once and at a single point per tick
func (n *Notifier) Drain() Signal {
	return Signal(n.bits.Swap(0))
}
