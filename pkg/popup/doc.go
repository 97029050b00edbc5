// ABOUTME: Package documentation for popup: variants, layout, and the interaction loop
// ABOUTME: Points readers at Wrap, Run, RenderContext, and the screen port

// Package popup draws modal dialog boxes in a character terminal and runs
// their key-driven interaction: plain messages, single-choice lists, text
// prompts, and a 16-color palette picker.
//
// Every popup wraps its message with [Wrap], sizes a box around it, and is
// driven by [Run] against a [screen.Screen]. Rendering reads only the
// popup and the [RenderContext] it is given.
package popup
