package script

import (
	"fmt"
	"strings"
)

// ParseError describes a script problem with its 1-based position. The CLI
// boundary decides whether to print it and exit; the parser itself never
// terminates the process.
type ParseError struct {
	Msg  string
	Line int
	Col  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("at %d:%d, %s", e.Line, e.Col, e.Msg)
}

// Cursor is a character-level reader over the full script text. It tracks
// the byte offset plus line and column for diagnostics.
type Cursor struct {
	text string
	pos  int
	end  int
	line int
	col  int
}

// NewCursor creates a cursor positioned at the start of text.
func NewCursor(text string) *Cursor {
	return &Cursor{
		text: text,
		end:  len(text),
		line: 1,
		col:  1,
	}
}

// Position returns the current 1-based line and column.
func (c *Cursor) Position() (line, col int) {
	return c.line, c.col
}

// AtEnd reports whether the cursor has consumed the whole text.
func (c *Cursor) AtEnd() bool {
	return c.pos >= c.end
}

// Peek returns the current character without advancing, or 0 at the end.
func (c *Cursor) Peek() byte {
	if c.pos < c.end {
		return c.text[c.pos]
	}
	return 0
}

// Next returns the current character and advances one position, keeping the
// line and column counters current. Advancing when already past the end is
// an error, never a silent clamp.
func (c *Cursor) Next() (byte, error) {
	if c.pos > c.end {
		return 0, c.errorf("reached end of file")
	}

	ch := c.Peek()
	c.pos++

	if ch == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}

	return ch, nil
}

// NextN advances count characters.
func (c *Cursor) NextN(count int) error {
	for i := 0; i < count; i++ {
		if _, err := c.Next(); err != nil {
			return err
		}
	}
	return nil
}

// SkipWhitespace consumes spaces, and newlines too when asked, until a
// non-matching character or the end of the text.
func (c *Cursor) SkipWhitespace(includeNewlines bool) {
	for !c.AtEnd() {
		ch := c.Peek()
		if ch == ' ' || (includeNewlines && ch == '\n') {
			c.Next()
			continue
		}
		return
	}
}

// rest returns the unconsumed text, empty once the cursor is at or past end.
func (c *Cursor) rest() string {
	if c.pos >= c.end {
		return ""
	}
	return c.text[c.pos:]
}

// Expect consumes the given literal, or fails with a position-stamped error
// when the upcoming characters differ. The cursor does not move on failure.
func (c *Cursor) Expect(literal string) error {
	if !strings.HasPrefix(c.rest(), literal) {
		// a raw newline would print badly inside quotes
		if literal == "\n" {
			return c.errorf("expected newline")
		}
		return c.errorf("expected '%s'", literal)
	}
	return c.NextN(len(literal))
}

// Check consumes word and returns true iff the upcoming text equals word and
// the character after it cannot belong to the same token. The boundary test
// keeps "image" from matching inside "imageDir". On failure the cursor is
// unchanged.
func (c *Cursor) Check(word string) bool {
	rest := c.rest()
	if !strings.HasPrefix(rest, word) {
		return false
	}
	if len(rest) > len(word) {
		after := rest[len(word)]
		if isDigit(after) || isAlpha(after) {
			return false
		}
	}
	c.NextN(len(word))
	return true
}

// errorf builds a ParseError stamped with the cursor's current position.
func (c *Cursor) errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{
		Msg:  fmt.Sprintf(format, args...),
		Line: c.line,
		Col:  c.col,
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
