// ABOUTME: Reader turns a raw byte stream into a sequence of Key events
// ABOUTME: Buffers sequences split across reads; a lone ESC is released after a short timeout

package key

import (
	"fmt"
	"io"
	"time"
	"unicode/utf8"
)

const (
	readChunk  = 256
	escTimeout = 50 * time.Millisecond
)

// readResult holds the outcome of a single Read call.
type readResult struct {
	data []byte
	err  error
}

// Reader decodes keys from an input stream such as a raw-mode stdin.
// A trailing incomplete escape sequence or UTF-8 rune is kept back until
// the next read completes it. It is not safe for concurrent use.
//
// When a lone ESC times out, one Read on src may still be outstanding;
// its bytes are delivered by the following Next call.
type Reader struct {
	src      io.Reader
	buf      []byte
	pending  []string
	results  chan readResult
	inFlight bool
	err      error
}

// NewReader returns a Reader pulling bytes from src.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, results: make(chan readResult, 1)}
}

// Next blocks until a key is available and returns it.
func (r *Reader) Next() (Key, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			if len(r.buf) == 0 {
				return Key{}, fmt.Errorf("reading key: %w", r.err)
			}
			r.decode(true)
			continue
		}

		var wait time.Duration
		if len(r.buf) > 0 && r.buf[0] == 0x1b {
			wait = escTimeout
		}
		if !r.fill(wait) {
			// No more bytes arrived: the held-back ESC stands alone.
			r.decode(true)
			continue
		}
		r.decode(false)
	}
	tok := r.pending[0]
	r.pending = r.pending[1:]
	return ParseKey(tok), nil
}

// fill appends the next chunk from src to the buffer. With a non-zero wait
// it gives up after that long and reports false.
func (r *Reader) fill(wait time.Duration) bool {
	if !r.inFlight {
		r.inFlight = true
		go func() {
			tmp := make([]byte, readChunk)
			n, err := r.src.Read(tmp)
			r.results <- readResult{data: tmp[:n], err: err}
		}()
	}

	var timeout <-chan time.Time
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case res := <-r.results:
		r.inFlight = false
		r.buf = append(r.buf, res.data...)
		if res.err != nil {
			r.err = res.err
		}
		return true
	case <-timeout:
		return false
	}
}

// decode moves complete tokens from the buffer to the pending queue. When
// final is set, a trailing incomplete token is emitted as-is.
func (r *Reader) decode(final bool) {
	data := string(r.buf)
	i := 0
	for i < len(data) {
		end, complete := tokenEnd(data, i)
		if !complete && !final {
			break
		}
		r.pending = append(r.pending, data[i:end])
		i = end
	}
	r.buf = append(r.buf[:0], data[i:]...)
}

// Split breaks raw input into one token per key press. Incomplete trailing
// sequences become tokens of their own.
func Split(data string) []string {
	var toks []string
	i := 0
	for i < len(data) {
		end, _ := tokenEnd(data, i)
		toks = append(toks, data[i:end])
		i = end
	}
	return toks
}

// tokenEnd returns the end index of the key token starting at data[i] and
// whether the token is complete. Incomplete tokens run to the end of data.
func tokenEnd(data string, i int) (int, bool) {
	if data[i] != 0x1b {
		if data[i] < utf8.RuneSelf {
			return i + 1, true
		}
		if !utf8.FullRuneInString(data[i:]) {
			return len(data), false
		}
		_, size := utf8.DecodeRuneInString(data[i:])
		return i + size, true
	}
	if i+1 >= len(data) {
		return i + 1, false
	}
	switch data[i+1] {
	case '[':
		for j := i + 2; j < len(data); j++ {
			if b := data[j]; b >= 0x40 && b <= 0x7e {
				return j + 1, true
			}
		}
		return len(data), false
	case 'O':
		if i+2 < len(data) {
			return i + 3, true
		}
		return i + 2, false
	case 0x1b:
		// Double ESC: the first one stands alone.
		return i + 1, true
	default:
		if data[i+1] >= 0x20 && data[i+1] <= 0x7e {
			return i + 2, true
		}
		return i + 1, true
	}
}
