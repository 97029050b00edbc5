// ABOUTME: Select is a single-choice list popup navigated with Up/Down
// ABOUTME: Rows are numbered with zero-padded indices; Enter returns the highlighted option

package popup

import (
	"fmt"
	"strconv"

	"github.com/mauromedda/termpopup/pkg/tui/key"
	"github.com/mauromedda/termpopup/pkg/tui/screen"
	"github.com/mauromedda/termpopup/pkg/tui/width"
)

// Select asks the user to pick one of a fixed list of options.
type Select struct {
	Base
	options  []string
	selected int
}

// NewSelect builds a select popup. options must not be empty.
func NewSelect(content string, options []string, opts ...Option) (*Select, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	s := &Select{Base: newBase(o)}
	if err := s.wrapContent(content, o.wrap); err != nil {
		return nil, err
	}
	if err := s.SetOptions(options); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSelectFrom builds a select popup whose options are the names of values.
func NewSelectFrom[T fmt.Stringer](content string, values []T, opts ...Option) (*Select, error) {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return NewSelect(content, names, opts...)
}

// SetContent re-wraps the message and recomputes the box size.
func (s *Select) SetContent(content string, wrap int) error {
	if err := s.wrapContent(content, wrap); err != nil {
		return err
	}
	s.layout()
	return nil
}

// SetOptions replaces the option list and moves the selection to the first entry.
func (s *Select) SetOptions(options []string) error {
	if len(options) == 0 {
		return ErrNoOptions
	}
	s.options = append([]string(nil), options...)
	s.selected = 0
	s.layout()
	return nil
}

// Options returns the option list.
func (s *Select) Options() []string { return s.options }

// Selected returns the highlighted index.
func (s *Select) Selected() int { return s.selected }

// Value returns the highlighted option.
func (s *Select) Value() string { return s.options[s.selected] }

func (s *Select) digits() int {
	return len(strconv.Itoa(len(s.options) - 1))
}

func (s *Select) layout() {
	minWidth := 0
	for _, opt := range s.options {
		minWidth = max(minWidth, width.VisibleWidth(opt)+2+s.digits())
	}
	s.resize(minWidth, len(s.options)+1)
}

// Render draws the box, a separator, and the numbered options.
func (s *Select) Render(scr screen.Screen, rc RenderContext, x, y int) error {
	x, y, ok, err := s.renderBase(scr, rc, x, y)
	if err != nil || !ok {
		return err
	}
	if err := s.renderSeparator(scr, rc, x, y, len(s.lines)); err != nil {
		return err
	}
	top := y + len(s.lines) + 2
	for i, opt := range s.options {
		label := fmt.Sprintf("%0*d. %s", s.digits(), i, opt)
		if i == s.selected {
			label = rc.Palette.Selection.Apply(label)
		}
		if err := scr.WriteAt(x+2, top+i, label); err != nil {
			return err
		}
	}
	return nil
}

// HandleKey moves the highlight or, on Enter, finishes.
func (s *Select) HandleKey(k key.Key) bool {
	switch k.Type {
	case key.KeyUp:
		if s.selected > 0 {
			s.selected--
		}
	case key.KeyDown:
		if s.selected < len(s.options)-1 {
			s.selected++
		}
	case key.KeyEnter:
		return true
	}
	return false
}

// Reset moves the highlight back to the first option.
func (s *Select) Reset() { s.selected = 0 }

// Show runs the popup and returns the chosen option.
func (s *Select) Show(scr screen.Screen, x, y int) (string, error) {
	if err := Run(scr, s, x, y); err != nil {
		return "", err
	}
	return s.Value(), nil
}
