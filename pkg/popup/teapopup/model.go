// ABOUTME: Model hosts any popup inside a Bubble Tea program
// ABOUTME: Key messages drive the popup; the view is the popup drawn on a Canvas the size of the window

package teapopup

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/termpopup/pkg/popup"
	"github.com/mauromedda/termpopup/pkg/tui/key"
	"github.com/mauromedda/termpopup/pkg/tui/screen"
)

// ErrCanceled is returned by Run when the user pressed Ctrl+C.
var ErrCanceled = errors.New("popup canceled")

// Default canvas size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model adapts a popup.Interactive to tea.Model. The popup itself holds
// the result once the model reports Done.
type Model struct {
	popup    popup.Interactive
	rc       popup.RenderContext
	canvas   *screen.Canvas
	done     bool
	canceled bool
}

// New wraps p. The popup is reset when the program starts.
func New(p popup.Interactive) Model {
	return Model{
		popup:  p,
		rc:     p.Context(),
		canvas: screen.NewCanvas(defaultWidth, defaultHeight),
	}
}

// Done reports whether the popup finished with a terminating key.
func (m Model) Done() bool { return m.done }

// Canceled reports whether the user aborted with Ctrl+C.
func (m Model) Canceled() bool { return m.canceled }

// Init resets the popup; no commands are needed at startup.
func (m Model) Init() tea.Cmd {
	m.popup.Reset()
	return nil
}

// Update resizes the canvas on window changes and feeds keys to the popup.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.canceled = true
			return m, tea.Quit
		}
		for _, k := range Translate(msg) {
			if m.popup.HandleKey(k) {
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View draws the popup centred on a blank canvas.
func (m Model) View() string {
	if m.done || m.canceled {
		return ""
	}
	_ = m.canvas.Clear()
	if err := m.popup.Render(m.canvas, m.rc, popup.Auto, popup.Auto); err != nil {
		return err.Error()
	}
	return m.canvas.String()
}

var keyTypes = map[tea.KeyType]key.KeyType{
	tea.KeyEnter:     key.KeyEnter,
	tea.KeyTab:       key.KeyTab,
	tea.KeyBackspace: key.KeyBackspace,
	tea.KeyDelete:    key.KeyDelete,
	tea.KeyUp:        key.KeyUp,
	tea.KeyDown:      key.KeyDown,
	tea.KeyLeft:      key.KeyLeft,
	tea.KeyRight:     key.KeyRight,
	tea.KeyHome:      key.KeyHome,
	tea.KeyEnd:       key.KeyEnd,
	tea.KeyPgUp:      key.KeyPageUp,
	tea.KeyPgDown:    key.KeyPageDown,
	tea.KeyEsc:       key.KeyEscape,
	tea.KeyCtrlD:     key.KeyCtrlD,
}

// Translate converts a Bubble Tea key message into popup keys. Rune
// messages carrying several runes (pastes) become one key per rune.
func Translate(msg tea.KeyMsg) []key.Key {
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]key.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, key.Key{Type: key.KeyRune, Rune: r, Alt: msg.Alt})
		}
		return keys
	case tea.KeySpace:
		return []key.Key{{Type: key.KeyRune, Rune: ' ', Alt: msg.Alt}}
	case tea.KeyCtrlC:
		return []key.Key{{Type: key.KeyCtrlC}}
	}
	if kt, ok := keyTypes[msg.Type]; ok {
		return []key.Key{{Type: kt, Alt: msg.Alt}}
	}
	return []key.Key{{Type: key.KeyUnknown}}
}

// Run shows p in its own Bubble Tea program and blocks until it finishes.
// Read the result from p afterwards.
func Run(p popup.Interactive, opts ...tea.ProgramOption) error {
	final, err := tea.NewProgram(New(p), opts...).Run()
	if err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	if m, ok := final.(Model); ok && m.canceled {
		return ErrCanceled
	}
	return nil
}
