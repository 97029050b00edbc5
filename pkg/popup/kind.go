// ABOUTME: Kind is the semantic category of a popup (Info, Question, Warning, Error, Custom)
// ABOUTME: Each kind picks a default icon and color from the render context

package popup

import (
	"fmt"
	"strings"
)

// Kind selects the default icon and color of a popup.
type Kind int

const (
	Info Kind = iota
	Question
	Warning
	Error
	Custom
)

var kindNames = [...]string{
	Info:     "Info",
	Question: "Question",
	Warning:  "Warning",
	Error:    "Error",
	Custom:   "Custom",
}

// String returns the kind's display name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{Info, Question, Warning, Error, Custom}
}

// ParseKind looks a kind up by name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
