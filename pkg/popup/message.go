// ABOUTME: Message is the plain popup: a boxed text that closes on any key
// ABOUTME: Show returns the key that dismissed it

package popup

import (
	"github.com/mauromedda/termpopup/pkg/tui/key"
	"github.com/mauromedda/termpopup/pkg/tui/screen"
)

// Message is a popup without interaction state.
type Message struct {
	Base
	last key.Key
}

// NewMessage wraps content into a new message popup.
func NewMessage(content string, opts ...Option) (*Message, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	m := &Message{Base: newBase(o)}
	if err := m.SetContent(content, o.wrap); err != nil {
		return nil, err
	}
	return m, nil
}

// SetContent re-wraps the message and recomputes the box size.
func (m *Message) SetContent(content string, wrap int) error {
	if err := m.wrapContent(content, wrap); err != nil {
		return err
	}
	m.resize(0, 0)
	return nil
}

// Render draws the box.
func (m *Message) Render(scr screen.Screen, rc RenderContext, x, y int) error {
	_, _, _, err := m.renderBase(scr, rc, x, y)
	return err
}

// HandleKey records k; any key closes a message.
func (m *Message) HandleKey(k key.Key) bool {
	m.last = k
	return true
}

// Reset forgets the last key.
func (m *Message) Reset() { m.last = key.Key{} }

// Key returns the key that closed the popup.
func (m *Message) Key() key.Key { return m.last }

// Show displays the message and waits for one key press.
func (m *Message) Show(scr screen.Screen, x, y int) (key.Key, error) {
	if err := Run(scr, m, x, y); err != nil {
		return key.Key{}, err
	}
	return m.last, nil
}
