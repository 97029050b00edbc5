// ABOUTME: Sentinel errors returned when a popup is constructed with invalid arguments
// ABOUTME: Each error names the argument that was rejected; match them with errors.Is

package popup

import "errors"

// Construction errors. Callers can match them with errors.Is.
var (
	ErrInvalidWrap  = errors.New("popup: wrap width must be at least 1")
	ErrNoOptions    = errors.New("popup: select needs at least one option")
	ErrInvalidLimit = errors.New("popup: prompt limit must not be negative")
	ErrUnknownKind  = errors.New("popup: unknown kind")
)
