package engine

// Position addresses a word in the buffer.
type Position struct {
	Row    int
	Column int
}

// Cursor tracks the word being typed and grows the buffer one row ahead of
// consumption.
type Cursor struct {
	buf *Buffer
	src WordSource
	pos Position
}

// NewCursor places a cursor at the first word of buf.
func NewCursor(buf *Buffer, src WordSource) *Cursor {
	return &Cursor{buf: buf, src: src}
}

// Position returns the current cursor position.
func (c *Cursor) Position() Position {
	return c.pos
}

// Word returns the word under the cursor.
func (c *Cursor) Word() (string, error) {
	return c.buf.Word(c.pos.Row, c.pos.Column)
}

// Advance moves to the next word. Landing on the last existing row appends
// a new row first; if that fails the cursor does not move.
func (c *Cursor) Advance() error {
	last := c.buf.Layout().WordsPerRow - 1
	if c.pos.Column < last {
		c.pos.Column++
		return nil
	}
	next := Position{Row: c.pos.Row + 1}
	if next.Row == c.buf.LastRowIndex() {
		words, err := nextRow(c.src, c.buf.Layout().WordsPerRow)
		if err != nil {
			return err
		}
		if err := c.buf.AppendRow(words); err != nil {
			return err
		}
	}
	c.pos = next
	return nil
}

// Retreat moves to the previous word and reports whether the cursor moved.
// It is a no-op at the first word.
func (c *Cursor) Retreat() bool {
	switch {
	case c.pos.Column > 0:
		c.pos.Column--
	case c.pos.Row > 0:
		c.pos.Row--
		c.pos.Column = c.buf.Layout().WordsPerRow - 1
	default:
		return false
	}
	return true
}
