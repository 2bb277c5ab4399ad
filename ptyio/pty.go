// Package ptyio spawns a child shell on a PTY and bridges it to the
// terminal core: a reader goroutine delivers byte batches, and writes are
// a synchronous sink (spec.md §4.6).
package ptyio

import (
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"
)

// readChunkSize matches the 1 KiB chunking the reader goroutine uses,
// grounded on the background-thread pattern the original backend used
// for posting PTY output to the event loop.
const readChunkSize = 1024

// Session owns one PTY master/shell-slave pair. Read returns byte
// batches via the channel from Batches; Write and Resize are safe to
// call only from the coordinator goroutine.
type Session struct {
	cmd  *exec.Cmd
	pty  *os.File
	mu   sync.Mutex
	out  chan []byte
}

// Spawn opens a PTY sized (rows, cols) and starts the user's shell on it.
// SHELL is read from the environment; if unset, bash is used (spec.md §6).
func Spawn(rows, cols int) (*Session, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "bash"
	}

	cmd := exec.Command(shell)
	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, fmt.Errorf("spawn shell %q: %w", shell, err)
	}

	s := &Session{
		cmd: cmd,
		pty: f,
		out: make(chan []byte, 64),
	}
	go s.readLoop()
	return s, nil
}

// Batches returns the channel the reader goroutine posts byte batches on.
// It is closed when the reader hits EOF or a read error.
func (s *Session) Batches() <-chan []byte {
	return s.out
}

// readLoop is the dedicated reader thread from spec.md §4.6: blocking
// reads up to 1 KiB, delivered as opaque batches. It exits silently on
// error or EOF, closing the channel so the coordinator can stop draining.
func (s *Session) readLoop() {
	defer close(s.out)
	buf := make([]byte, readChunkSize)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			batch := make([]byte, n)
			copy(batch, buf[:n])
			s.out <- batch
		}
		if err != nil {
			return
		}
	}
}

// Write sends bytes to the shell. Errors are swallowed per spec.md §7;
// the keystroke is simply dropped.
func (s *Session) Write(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.pty.Write(data)
}

// Resize changes the PTY's window size. Per spec.md §4.6 the caller must
// resize the grid first and the PTY second; Resize only does the latter.
func (s *Session) Resize(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = pty.Setsize(s.pty, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// Close kills the shell and closes the PTY master, which causes the
// reader goroutine's next read to return and the shell to receive
// SIGHUP.
func (s *Session) Close() error {
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	return s.pty.Close()
}
