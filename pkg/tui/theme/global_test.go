// ABOUTME: Tests for the process-wide theme pointer: Current, Set, concurrent access
// ABOUTME: Verifies atomic swap semantics and default theme initialization

package theme

import (
	"sync"
	"testing"
)

func TestCurrent_ReturnsDefault(t *testing.T) {
	th := Current()
	if th == nil {
		t.Fatal("Current() returned nil")
	}
	if th.Name != "default" {
		t.Errorf("Current().Name = %q; want %q", th.Name, "default")
	}
}

func TestSet_ChangesCurrent(t *testing.T) {
	old := Current()
	defer Set(old)

	Set(&Theme{Name: "custom", Palette: DefaultPalette()})
	if got := Current(); got.Name != "custom" {
		t.Errorf("after Set(), Current().Name = %q; want %q", got.Name, "custom")
	}

	Set(nil)
	if got := Current(); got == nil || got.Name != "custom" {
		t.Error("Set(nil) should be ignored")
	}
}

func TestCurrent_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			_ = Current()
		})
	}
	wg.Wait()
}
