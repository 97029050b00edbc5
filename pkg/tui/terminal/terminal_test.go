// ABOUTME: Tests for VirtualTerminal verifying raw mode tracking, output capture, and input replay
// ABOUTME: Uses table-driven and parallel sub-tests

package terminal

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
)

// compile-time checks: both terminals must satisfy Terminal.
var (
	_ Terminal = (*VirtualTerminal)(nil)
	_ Terminal = (*ProcessTerminal)(nil)
)

func TestVirtualTerminal_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		width  int
		height int
	}{
		{name: "standard 80x24", width: 80, height: 24},
		{name: "tiny 5x5", width: 5, height: 5},
		{name: "zero dimensions", width: 0, height: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(tt.width, tt.height)

			w, h, err := vt.Size()
			if err != nil {
				t.Fatalf("Size() unexpected error: %v", err)
			}
			if w != tt.width || h != tt.height {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.width, tt.height)
			}
		})
	}
}

func TestVirtualTerminal_RawMode(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off initially")
	}
	if err := vt.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() unexpected error: %v", err)
	}
	if !vt.IsRawMode() {
		t.Fatal("expected raw mode to be on after EnterRawMode")
	}
	if err := vt.ExitRawMode(); err != nil {
		t.Fatalf("ExitRawMode() unexpected error: %v", err)
	}
	if vt.IsRawMode() {
		t.Fatal("expected raw mode to be off after ExitRawMode")
	}
	if vt.EnterCount() != 1 || vt.ExitCount() != 1 {
		t.Errorf("counts = (%d, %d), want (1, 1)", vt.EnterCount(), vt.ExitCount())
	}
}

func TestVirtualTerminal_WriteAccumulates(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	for _, s := range []string{"╔", "═", "╗"} {
		if _, err := vt.Write([]byte(s)); err != nil {
			t.Fatal(err)
		}
	}
	if got := vt.Output(); got != "╔═╗" {
		t.Errorf("Output() = %q, want %q", got, "╔═╗")
	}

	vt.Reset()
	if got := vt.Output(); got != "" {
		t.Errorf("Output() after Reset = %q, want empty", got)
	}
}

func TestVirtualTerminal_ReadQueuedInput(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)
	vt.SendInput("\x1b[B\r")

	data, err := io.ReadAll(vt)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if string(data) != "\x1b[B\r" {
		t.Errorf("read %q, want %q", data, "\x1b[B\r")
	}

	buf := make([]byte, 8)
	if _, err := vt.Read(buf); !errors.Is(err, io.EOF) {
		t.Errorf("Read() on empty queue = %v, want io.EOF", err)
	}
}

func TestVirtualTerminal_SetSize(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)
	vt.SetSize(5, 5)

	w, h, _ := vt.Size()
	if w != 5 || h != 5 {
		t.Errorf("Size() after SetSize = (%d, %d), want (5, 5)", w, h)
	}
}

func TestRestore_ShowsCursorAndExitsRaw(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)
	_ = vt.EnterRawMode()

	Restore(vt)

	if vt.IsRawMode() {
		t.Error("Restore() left raw mode on")
	}
	if !strings.Contains(vt.Output(), "\x1b[?25h") {
		t.Errorf("Restore() output %q missing show-cursor", vt.Output())
	}
}

func TestVirtualTerminal_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	var wg sync.WaitGroup
	const goroutines = 10

	wg.Add(goroutines * 2)
	for range goroutines {
		go func() {
			defer wg.Done()
			_, _ = vt.Write([]byte("x"))
		}()
		go func() {
			defer wg.Done()
			_, _, _ = vt.Size()
		}()
	}
	wg.Wait()

	if len(vt.Output()) != goroutines {
		t.Errorf("Output length = %d, want %d", len(vt.Output()), goroutines)
	}
}
