// ABOUTME: The blocking interaction loop shared by every popup variant
// ABOUTME: Renders, reads one key, updates state; always restores the cursor and clears on exit

package popup

import (
	"errors"
	"fmt"

	"github.com/mauromedda/termpopup/pkg/tui/key"
	"github.com/mauromedda/termpopup/pkg/tui/screen"
)

// Interactive is implemented by every popup variant. Render draws the box
// followed by the variant's own rows; HandleKey updates state and reports
// whether the popup is finished; Reset returns to the initial state.
type Interactive interface {
	Context() RenderContext
	Render(scr screen.Screen, rc RenderContext, x, y int) error
	HandleKey(k key.Key) bool
	Reset()
}

var (
	_ Interactive = (*Message)(nil)
	_ Interactive = (*Select)(nil)
	_ Interactive = (*TextPrompt)(nil)
	_ Interactive = (*Palette)(nil)
)

// Run drives p on scr until it finishes. The popup starts from its initial
// state. The cursor is hidden while it runs; on every return path it is
// shown again and the screen cleared.
func Run(scr screen.Screen, p Interactive, x, y int) (err error) {
	p.Reset()
	logf := loggerOf(p)

	defer func() {
		cerr := errors.Join(scr.SetCursorVisible(true), scr.Clear())
		if err == nil && cerr != nil {
			err = fmt.Errorf("restoring screen: %w", cerr)
		}
	}()
	if err := scr.SetCursorVisible(false); err != nil {
		return fmt.Errorf("hiding cursor: %w", err)
	}

	rc := p.Context()
	for {
		if err := p.Render(scr, rc, x, y); err != nil {
			return fmt.Errorf("rendering popup: %w", err)
		}
		k, err := scr.ReadKey()
		if err != nil {
			return err
		}
		logf("popup key %s", k)
		if p.HandleKey(k) {
			return nil
		}
	}
}

type logged interface {
	debugf(format string, args ...any)
}

func loggerOf(p Interactive) LogFunc {
	if l, ok := p.(logged); ok {
		return l.debugf
	}
	return func(string, ...any) {}
}
