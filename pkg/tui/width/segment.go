// ABOUTME: Splits styled text into escape sequences and visible grapheme clusters
// ABOUTME: Consumers (the screen canvas) place clusters into cells in order

package width

import "github.com/rivo/uniseg"

// Segment is either an escape sequence (Width 0, Escape true) or one
// visible grapheme cluster.
type Segment struct {
	Text   string
	Width  int
	Escape bool
}

// Segments breaks s into escape sequences and grapheme clusters, in order.
func Segments(s string) []Segment {
	segs := make([]Segment, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			end := SequenceEnd(s, i)
			segs = append(segs, Segment{Text: s[i:end], Escape: true})
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		segs = append(segs, Segment{Text: cluster, Width: ClusterWidth(cluster)})
		i += len(s[i:]) - len(rest)
	}
	return segs
}

// TruncateToWidth cuts s down to at most maxWidth visible columns,
// keeping escape sequences and closing with a reset when anything was cut.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	var out []byte
	col := 0
	for _, seg := range Segments(s) {
		if seg.Escape {
			out = append(out, seg.Text...)
			continue
		}
		if col+seg.Width > maxWidth {
			break
		}
		out = append(out, seg.Text...)
		col += seg.Width
	}
	return string(out) + "\x1b[0m"
}
