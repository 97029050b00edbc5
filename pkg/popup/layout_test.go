// ABOUTME: Tests for the greedy word-wrap layout
// ABOUTME: Covers hard breaks, over-length words, idempotence, and the reported max width

package popup

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wrap    int
		want    []string
		widest  int
	}{
		{"empty", "", 32, []string{""}, 0},
		{"fits", "Hello world", 32, []string{"Hello world"}, 11},
		{"crossing word stays", "aaaa bbbb cccc dddd", 10, []string{"aaaa bbbb cccc", "dddd"}, 14},
		{"long word alone", "supercalifragilistic", 5, []string{"supercalifragilistic"}, 20},
		{"hard breaks", "one\ntwo\n\nthree", 32, []string{"one", "two", "", "three"}, 5},
		{"only breaks", "\n\n", 32, []string{"", "", ""}, 0},
		{"trimmed", "  padded  \n x", 32, []string{"padded", "x"}, 6},
		{"break inside bucket", "alpha beta\ngamma", 100, []string{"alpha beta", "gamma"}, 10},
		{"break resets bucket length", "aaaa bbbb\ncccc dddd", 10, []string{"aaaa bbbb", "cccc dddd"}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, widest := Wrap(tt.content, tt.wrap)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap(%q, %d) lines mismatch (-want +got):\n%s", tt.content, tt.wrap, diff)
			}
			if widest != tt.widest {
				t.Errorf("Wrap(%q, %d) width = %d, want %d", tt.content, tt.wrap, widest, tt.widest)
			}
		})
	}
}

func TestWrap_HardBreakStartsFreshBucket(t *testing.T) {
	t.Parallel()

	// Counting "bbbb\ncccc" as one word would flush after cccc and leave
	// dddd alone on a third line.
	lines, _ := Wrap("aaaa bbbb\ncccc dddd", 10)
	want := []string{"aaaa bbbb", "cccc dddd"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("Wrap() mismatch (-want +got):\n%s", diff)
	}

	again, _ := Wrap(strings.Join(lines, "\n"), 10)
	if diff := cmp.Diff(lines, again); diff != "" {
		t.Errorf("rewrapping changed the lines (-first +second):\n%s", diff)
	}
}

// randomText builds n space-separated lowercase words of 1 to 9 letters.
func randomText(r *rand.Rand, n int) []string {
	words := make([]string, n)
	for i := range words {
		b := make([]byte, 1+r.IntN(9))
		for j := range b {
			b[j] = byte('a' + r.IntN(26))
		}
		words[i] = string(b)
	}
	return words
}

// fill greedily packs words into lines of at most wrap columns.
func fill(words []string, wrap int) []string {
	var lines []string
	cur := ""
	for _, w := range words {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) <= wrap:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	return append(lines, cur)
}

func TestWrap_IdempotentOnWrappedText(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		wrap := 10 + r.IntN(30)
		lines := fill(randomText(r, 1+r.IntN(40)), wrap)

		got, _ := Wrap(strings.Join(lines, "\n"), wrap)
		if diff := cmp.Diff(lines, got); diff != "" {
			t.Fatalf("re-wrapping at %d changed lines (-want +got):\n%s", wrap, diff)
		}
	}
}

func TestWrap_WidthIsTrueMax(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		wrap := 1 + r.IntN(40)
		content := strings.Join(randomText(r, 1+r.IntN(30)), " ")
		if r.IntN(2) == 0 {
			content = strings.Replace(content, " ", "\n", 2)
		}

		lines, widest := Wrap(content, wrap)
		want := 0
		for _, l := range lines {
			want = max(want, len(l))
		}
		if widest != want {
			t.Fatalf("Wrap(%q, %d) width = %d, want %d", content, wrap, widest, want)
		}
	}
}

func TestWrap_HardBreaksNeverMerge(t *testing.T) {
	t.Parallel()

	content := "first part\nsecond\nthird and last"
	lines, _ := Wrap(content, 100)
	if len(lines) < 3 {
		t.Fatalf("got %d lines, want at least 3", len(lines))
	}
	for _, l := range lines {
		if strings.Contains(l, "part second") || strings.Contains(l, "second third") {
			t.Errorf("line %q merges segments across a hard break", l)
		}
	}
}
