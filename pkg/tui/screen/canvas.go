// ABOUTME: Canvas is an in-memory Screen backed by a styled cell grid
// ABOUTME: Used by tests (scripted keys, write log) and by the Bubble Tea adapter's View

package screen

import (
	"strings"

	"github.com/mauromedda/termpopup/pkg/tui/key"
	"github.com/mauromedda/termpopup/pkg/tui/width"
)

// Cell is one grid position. Wide clusters occupy their first cell;
// the following cell is left with an empty Text.
type Cell struct {
	Text  string
	Style string
}

// Write records one WriteAt call.
type Write struct {
	X, Y int
	Text string
}

// Canvas implements Screen without a terminal. Writes outside the grid
// are clipped. It is not safe for concurrent use.
type Canvas struct {
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	keys          []key.Key
	writes        []Write
	clears        int
}

// NewCanvas returns a blank canvas of the given size with a visible cursor.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{cursorVisible: true}
	c.Resize(width, height)
	return c
}

// Resize discards the grid and allocates a blank one of the new size.
func (c *Canvas) Resize(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	c.cells = make([][]Cell, c.height)
	c.blank()
}

// Feed queues keys to be returned by ReadKey.
func (c *Canvas) Feed(keys ...key.Key) {
	c.keys = append(c.keys, keys...)
}

// Size reports the grid dimensions.
func (c *Canvas) Size() (int, int, error) {
	return c.width, c.height, nil
}

// WriteAt places text at (x, y), interpreting SGR sequences as cell styles.
// The cursor ends one column past the last cell written.
func (c *Canvas) WriteAt(x, y int, text string) error {
	c.writes = append(c.writes, Write{X: x, Y: y, Text: text})

	var sgr width.ActiveSGR
	col := x
	for _, seg := range width.Segments(text) {
		if seg.Escape {
			sgr.Apply(seg.Text)
			continue
		}
		if seg.Width == 0 {
			continue
		}
		c.set(col, y, Cell{Text: seg.Text, Style: sgr.String()})
		for i := 1; i < seg.Width; i++ {
			c.set(col+i, y, Cell{Style: sgr.String()})
		}
		col += seg.Width
	}
	c.cursorX, c.cursorY = col, y
	return nil
}

// ReadKey pops the next scripted key, or returns ErrNoInput.
func (c *Canvas) ReadKey() (key.Key, error) {
	if len(c.keys) == 0 {
		return key.Key{}, ErrNoInput
	}
	k := c.keys[0]
	c.keys = c.keys[1:]
	return k, nil
}

// SetCursorVisible records cursor visibility.
func (c *Canvas) SetCursorVisible(visible bool) error {
	c.cursorVisible = visible
	return nil
}

// Clear blanks every cell and homes the cursor.
func (c *Canvas) Clear() error {
	c.clears++
	c.blank()
	c.cursorX, c.cursorY = 0, 0
	return nil
}

func (c *Canvas) blank() {
	for y := range c.cells {
		row := make([]Cell, c.width)
		for x := range row {
			row[x] = Cell{Text: " "}
		}
		c.cells[y] = row
	}
}

func (c *Canvas) set(x, y int, cell Cell) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = cell
}

// --- Inspection helpers ---

// Cell returns the cell at (x, y); out-of-range positions yield a zero Cell.
func (c *Canvas) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{}
	}
	return c.cells[y][x]
}

// Line returns row y as plain text with trailing blanks removed.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var b strings.Builder
	for _, cell := range c.cells[y] {
		b.WriteString(cell.Text)
	}
	return strings.TrimRight(b.String(), " ")
}

// Text returns all rows as plain text, one line per row.
func (c *Canvas) Text() string {
	lines := make([]string, c.height)
	for y := range lines {
		lines[y] = c.Line(y)
	}
	return strings.Join(lines, "\n")
}

// String renders the grid with its styles, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		style := ""
		for _, cell := range row {
			if cell.Style != style {
				if style != "" {
					b.WriteString("\x1b[0m")
				}
				b.WriteString(cell.Style)
				style = cell.Style
			}
			b.WriteString(cell.Text)
		}
		if style != "" {
			b.WriteString("\x1b[0m")
		}
	}
	return b.String()
}

// Cursor returns the cursor position left by the last write.
func (c *Canvas) Cursor() (x, y int) {
	return c.cursorX, c.cursorY
}

// CursorVisible reports the last visibility set.
func (c *Canvas) CursorVisible() bool {
	return c.cursorVisible
}

// Writes returns the log of WriteAt calls since the last ResetLog.
func (c *Canvas) Writes() []Write {
	return c.writes
}

// Clears returns how many times Clear was called.
func (c *Canvas) Clears() int {
	return c.clears
}

// PendingKeys reports how many scripted keys remain unread.
func (c *Canvas) PendingKeys() int {
	return len(c.keys)
}

// ResetLog forgets recorded writes and clears.
func (c *Canvas) ResetLog() {
	c.writes = nil
	c.clears = 0
}
