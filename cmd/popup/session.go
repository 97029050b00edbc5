// ABOUTME: Runs a popup either directly on the controlling terminal or inside Bubble Tea
// ABOUTME: Ctrl+C cancels either way; the raw terminal is always restored, even after a panic

package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	pilog "github.com/mauromedda/termpopup/internal/log"
	"github.com/mauromedda/termpopup/pkg/popup"
	"github.com/mauromedda/termpopup/pkg/popup/teapopup"
	"github.com/mauromedda/termpopup/pkg/tui/key"
	"github.com/mauromedda/termpopup/pkg/tui/screen"
	"github.com/mauromedda/termpopup/pkg/tui/terminal"
)

var (
	errNotTerminal = errors.New("stdin and stdout must be a terminal")
	errCanceled    = errors.New("canceled")
)

// show runs p to completion. Read the result from p afterwards.
func (a *app) show(p popup.Interactive) error {
	if a.tea {
		pilog.Debug("running popup in bubble tea")
		err := teapopup.Run(p, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
		if errors.Is(err, teapopup.ErrCanceled) {
			return errCanceled
		}
		return err
	}
	return withScreen(func(scr screen.Screen) error {
		return popup.Run(interruptible{scr}, p, a.x, a.y)
	})
}

// interruptible turns Ctrl+C into errCanceled. Raw mode delivers Ctrl+C
// as a key, not as SIGINT.
type interruptible struct {
	screen.Screen
}

func (s interruptible) ReadKey() (key.Key, error) {
	k, err := s.Screen.ReadKey()
	if err == nil && k.Type == key.KeyCtrlC {
		return k, errCanceled
	}
	return k, err
}

// withScreen opens the process terminal in raw mode for the duration of fn.
func withScreen(fn func(screen.Screen) error) (err error) {
	t := terminal.NewProcessTerminal()
	if !t.IsTerminal() {
		return errNotTerminal
	}
	scr, err := screen.Open(t)
	if err != nil {
		return err
	}
	defer terminal.RestoreOnPanic(t)
	defer func() {
		if cerr := scr.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("restoring terminal: %w", cerr)
		}
	}()
	return fn(scr)
}
