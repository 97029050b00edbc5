// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace
// ABOUTME: Deferred by the CLI so a crashing popup never leaves the TTY raw with a hidden cursor

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/x/ansi"
)

// Restore shows the cursor, resets styling, and leaves raw mode.
// Errors are ignored: this runs on the way out.
func Restore(t Terminal) {
	_, _ = io.WriteString(t, ansi.ResetStyle+ansi.ShowCursor)
	_ = t.ExitRawMode()
}

// RestoreOnPanic should be deferred at the top of main. On panic it
// restores the terminal, prints the panic value and stack trace, then
// exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	Restore(t)

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
