// ABOUTME: One-call helpers that build a popup and show it centred
// ABOUTME: Construction errors and loop errors are returned unchanged

package popup

import (
	"github.com/mauromedda/termpopup/pkg/tui/key"
	"github.com/mauromedda/termpopup/pkg/tui/screen"
)

// Quick shows a centred message and returns the key that closed it.
func Quick(scr screen.Screen, content string, opts ...Option) (key.Key, error) {
	m, err := NewMessage(content, opts...)
	if err != nil {
		return key.Key{}, err
	}
	return m.Show(scr, Auto, Auto)
}

// QuickSelect shows a centred select popup and returns the chosen option.
func QuickSelect(scr screen.Screen, content string, options []string, opts ...Option) (string, error) {
	s, err := NewSelect(content, options, opts...)
	if err != nil {
		return "", err
	}
	return s.Show(scr, Auto, Auto)
}

// QuickTextPrompt shows a centred text prompt and returns the entered text.
func QuickTextPrompt(scr screen.Screen, content string, opts ...Option) (string, error) {
	p, err := NewTextPrompt(content, opts...)
	if err != nil {
		return "", err
	}
	return p.Show(scr, Auto, Auto)
}

// QuickPalette shows a centred palette picker and returns the chosen index.
func QuickPalette(scr screen.Screen, content string, opts ...Option) (int, error) {
	p, err := NewPalette(content, opts...)
	if err != nil {
		return 0, err
	}
	return p.Show(scr, Auto, Auto)
}
