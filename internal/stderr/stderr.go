//go:build !windows

// Package stderr captures output written straight to file descriptor 2
// (Go runtime warnings, cgo resolvers, terminal helpers) while the TUI owns
// the screen, so stray lines cannot corrupt the layout.
package stderr

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// Capture redirects fd 2 into a pipe and hands every non-empty line to
// sink until Stop is called.
type Capture struct {
	orig  int
	read  *os.File
	write *os.File
	done  chan struct{}
}

// Start begins capturing stderr. The program can continue without capture
// when it returns an error.
func Start(sink func(line string)) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{orig: orig, read: r, write: w, done: make(chan struct{})}
	go func() {
		defer close(c.done)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				sink(line)
			}
		}
	}()
	return c, nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = unix.Write(c.orig, []byte(msg))
}

// Stop restores the original stderr and waits for buffered lines to reach
// the sink.
func (c *Capture) Stop() {
	_ = unix.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = unix.Close(c.orig)

	// fd 2 no longer refers to the pipe, so closing the write end ends the
	// reader.
	c.write.Close()
	<-c.done
	c.read.Close()
}
