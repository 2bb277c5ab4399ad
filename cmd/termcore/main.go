// Command termcore runs the terminal core against the real host
// terminal: it puts stdin into raw mode, spawns a shell on a PTY, and
// bridges the two through the coordinator.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	term "github.com/fernlabs/termcore"
	"github.com/fernlabs/termcore/config"
	"github.com/fernlabs/termcore/coordinator"
	"github.com/fernlabs/termcore/ptyio"
	xterm "golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "termcore:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if cfg.Shell != "" {
		os.Setenv("SHELL", cfg.Shell)
	}

	stdinFd := int(os.Stdin.Fd())
	oldState, err := xterm.MakeRaw(stdinFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer xterm.Restore(stdinFd, oldState)

	cols, rows, err := xterm.GetSize(stdinFd)
	if err != nil {
		cols, rows = 80, 24
	}

	clipboard := newStdioClipboard()
	t := term.New(rows, cols,
		term.WithScrollback(term.NewScrollback()),
		term.WithClipboard(clipboard),
	)

	session, err := ptyio.Spawn(rows, cols)
	if err != nil {
		return fmt.Errorf("spawn shell: %w", err)
	}
	defer session.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	c := coordinator.New(t, session, func() {
		redraw(out, t)
		out.Flush()
	}, cfg.KeyRepeatDelay, cfg.KeyRepeatInterval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watchResize(ctx, stdinFd, c)
	go readInput(ctx, c, cancel)

	c.Run(ctx)
	return nil
}

// readInput decodes host keystrokes into coordinator events until ctx is
// canceled or stdin closes.
func readInput(ctx context.Context, c *coordinator.Coordinator, cancel context.CancelFunc) {
	defer cancel()
	r := bufio.NewReader(os.Stdin)
	for {
		ev, err := readKeyEvent(r)
		if err != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
			c.Send(coordinator.Event{Kind: coordinator.EventKey, Key: ev})
		}
	}
}

// watchResize listens for SIGWINCH and forwards the new host terminal
// size to the coordinator (spec.md §4.6: grid resizes before the PTY).
func watchResize(ctx context.Context, fd int, c *coordinator.Coordinator) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGWINCH)
	defer signal.Stop(sigs)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sigs:
			cols, rows, err := xterm.GetSize(fd)
			if err != nil {
				continue
			}
			c.Send(coordinator.Event{
				Kind:    coordinator.EventResized,
				Resized: struct{ Cols, Rows int }{Cols: cols, Rows: rows},
			})
		}
	}
}

// stdioClipboard is a minimal ClipboardProvider for the CLI host: an
// in-process buffer. A real GUI host would back this with the system
// clipboard; spec.md abstracts it as "Clipboard { get, set }" precisely
// so this implementation can be swapped without touching the core.
type stdioClipboard struct {
	data string
}

func newStdioClipboard() *stdioClipboard {
	return &stdioClipboard{}
}

func (c *stdioClipboard) Get() string     { return c.data }
func (c *stdioClipboard) Set(data string) { c.data = data }
