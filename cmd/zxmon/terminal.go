package main

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/term"

	spectrum48 "github.com/retrospec-go/spectrum48"
)

// rawTerminal reads raw stdin and presses/releases the corresponding
// Spectrum key for each byte. It is the only goroutine anywhere in this
// module: the core itself stays single-threaded, and this is the "host"
// responsibility of turning host keystrokes into matrix presses.
type rawTerminal struct {
	stopCh chan struct{}
	done   chan struct{}
	fd     int
	old    *term.State
}

func startRawTerminal(core *spectrum48.Core) *rawTerminal {
	t := &rawTerminal{
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
		fd:     int(os.Stdin.Fd()),
	}

	old, err := term.MakeRaw(t.fd)
	if err != nil {
		close(t.done)
		return t
	}
	t.old = old

	if err := syscall.SetNonblock(t.fd, true); err != nil {
		_ = term.Restore(t.fd, t.old)
		t.old = nil
		close(t.done)
		return t
	}

	go func() {
		defer close(t.done)
		buf := make([]byte, 1)
		for {
			select {
			case <-t.stopCh:
				return
			default:
			}

			n, err := syscall.Read(t.fd, buf)
			if n > 0 {
				if key, ok := hostKeyToSpectrum[buf[0]]; ok {
					core.Press(key)
					core.Release(key)
				}
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK || n == 0 {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
		}
	}()

	return t
}

// Stop terminates the stdin-reading goroutine and restores the terminal.
func (t *rawTerminal) Stop() {
	close(t.stopCh)
	<-t.done
	_ = syscall.SetNonblock(t.fd, false)
	if t.old != nil {
		_ = term.Restore(t.fd, t.old)
	}
}
