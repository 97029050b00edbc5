// ABOUTME: CLI entry point for popup: shows one modal popup and prints its result
// ABOUTME: Results go to stdout so the command composes in shell scripts

package main

import (
	"errors"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/termpopup/internal/termfix"
)

// exitCanceled follows the shell convention for SIGINT (128+2).
const exitCanceled = 130

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errCanceled) {
			os.Exit(exitCanceled)
		}
		os.Exit(1)
	}
}
