// ABOUTME: Tests for RestoreOnPanic when no panic is in flight
// ABOUTME: Verifies the deferred call is a no-op on normal return

package terminal

import "testing"

func TestRestoreOnPanic_NoPanic(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	_ = vt.EnterRawMode()

	func() {
		defer RestoreOnPanic(vt)
	}()

	if !vt.IsRawMode() {
		t.Error("RestoreOnPanic should not touch the terminal when no panic occurs")
	}
	if vt.Output() != "" {
		t.Errorf("unexpected output %q", vt.Output())
	}
}
