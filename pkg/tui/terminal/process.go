// ABOUTME: ProcessTerminal implements Terminal over os.Stdin/os.Stdout and golang.org/x/term
// ABOUTME: Raw mode makes every key press (arrows, enter, backspace) readable immediately

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by the process standard streams.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	oldState *term.State
}

// NewProcessTerminal returns a ProcessTerminal reading os.Stdin and writing os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{in: os.Stdin, out: os.Stdout}
}

// IsTerminal reports whether both standard streams are attached to a TTY.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// EnterRawMode switches stdin to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Read reads raw input bytes from stdin.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	n, err := t.in.Read(p)
	if err != nil {
		return n, fmt.Errorf("reading stdin: %w", err)
	}
	return n, nil
}

// Write sends bytes to stdout.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to stdout: %w", err)
	}
	return n, nil
}
