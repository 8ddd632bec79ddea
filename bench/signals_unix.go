//go:build unix

package bench

import (
	"os"
	"os/signal"
	"syscall"
)

// Watch installs the platform signal listener: SIGWINCH posts a resize,
// SIGINT/SIGTERM post an interrupt. The returned stop function uninstalls
// the handler and waits for the listener goroutine to exit.
func Watch(n *Notifier) func() {
	sigCh := make(chan os.Signal, 4)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGWINCH)

	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	go func() {
		defer close(doneCh)
		for {
			select {
			case <-stopCh:
				return
			case sig := <-sigCh:
				if sig == syscall.SIGWINCH {
					n.Post(SignalResize)
				} else {
					n.Post(SignalInterrupt)
				}
			}
		}
	}()

	var stopped bool
	return func() {
		if stopped {
			return
		}
		stopped = true
		signal.Stop(sigCh)
		close(stopCh)
		<-doneCh
	}
}
