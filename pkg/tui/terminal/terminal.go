// ABOUTME: Defines the Terminal interface for raw mode, size queries, input, and output
// ABOUTME: Abstracts the process TTY so popups can target real or virtual terminals

package terminal

import "io"

// Terminal abstracts low-level terminal operations: raw mode, size
// queries, and the byte streams in both directions.
type Terminal interface {
	io.ReadWriter
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
}
