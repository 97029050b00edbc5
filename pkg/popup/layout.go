// ABOUTME: Greedy word-wrap layout used to size every popup box
// ABOUTME: Hard breaks split paragraphs; a bucket flushes once its length exceeds the wrap width

package popup

import (
	"strings"

	"github.com/mauromedda/termpopup/pkg/tui/width"
)

// DefaultWrap is the ideal number of columns per content line.
const DefaultWrap = 32

// Wrap splits content into lines of roughly wrap columns and returns them
// together with the widest line's width.
//
// Words are separated by single spaces and accumulated into a bucket; once
// the bucket's length (words plus joining spaces) exceeds wrap it becomes a
// line, including the word that pushed it over. A word longer than wrap is
// never split. Lines are trimmed. Empty content yields a single empty line.
//
// Every '\n' in content starts a new line and a new, empty bucket: words on
// either side of a break are never counted together. Wrapping the joined
// result again with the same width therefore returns the same lines.
func Wrap(content string, wrap int) ([]string, int) {
	var lines []string
	widest := 0
	for _, para := range strings.Split(content, "\n") {
		for _, line := range wrapParagraph(para, wrap) {
			line = strings.TrimSpace(line)
			widest = max(widest, width.VisibleWidth(line))
			lines = append(lines, line)
		}
	}
	return lines, widest
}

func wrapParagraph(para string, wrap int) []string {
	var (
		out    []string
		bucket []string
		length int
	)
	for _, word := range strings.Split(para, " ") {
		if len(bucket) > 0 {
			length++
		}
		bucket = append(bucket, word)
		length += width.VisibleWidth(word)
		if length > wrap {
			out = append(out, strings.Join(bucket, " "))
			bucket = bucket[:0]
			length = 0
		}
	}
	if len(bucket) > 0 || len(out) == 0 {
		out = append(out, strings.Join(bucket, " "))
	}
	return out
}
