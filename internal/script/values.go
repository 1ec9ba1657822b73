package script

import (
	"github.com/nhamil/slideshow/internal/timeline"
)

// Float reads a decimal number: optional leading '-', at least one integer
// digit, optional '.' with any number of fractional digits. No exponents and
// no leading '+'. The sign is applied once after the magnitude is read.
func (c *Cursor) Float() (float64, error) {
	value := 0.0
	valid := false
	negative := false

	if c.Peek() == '-' {
		c.Next()
		negative = true
	}

	for !c.AtEnd() && isDigit(c.Peek()) {
		valid = true
		ch, _ := c.Next()
		value = value*10 + float64(ch-'0')
	}

	if !valid {
		return 0, c.errorf("expected number")
	}

	if c.Peek() == '.' {
		c.Next()

		mul := 0.1
		for !c.AtEnd() && isDigit(c.Peek()) {
			ch, _ := c.Next()
			value += float64(ch-'0') * mul
			mul *= 0.1
		}
	}

	if negative {
		value = -value
	}

	return value, nil
}

// Vec2 reads two floats separated by a comma and optional spaces.
func (c *Cursor) Vec2() (timeline.Vec2, error) {
	var v timeline.Vec2

	x, err := c.Float()
	if err != nil {
		return v, err
	}
	c.SkipWhitespace(false)
	if err := c.Expect(","); err != nil {
		return v, err
	}
	c.SkipWhitespace(false)
	y, err := c.Float()
	if err != nil {
		return v, err
	}

	v.X = x
	v.Y = y
	return v, nil
}

// QuotedString reads the raw bytes between a pair of double quotes. There is
// no escape-sequence support; reaching the end of the text before the
// closing quote is an error.
func (c *Cursor) QuotedString() (string, error) {
	if err := c.Expect("\""); err != nil {
		return "", err
	}

	start := c.pos
	for !c.AtEnd() {
		if c.Peek() == '"' {
			s := c.text[start:c.pos]
			c.Next()
			return s, nil
		}
		c.Next()
	}

	return "", c.errorf("expected '\"'")
}

// AssignFloat reads a "= <float>" tail for a property line. A trailing
// newline is tolerated but not required; both historical script variants
// parse either way.
func (c *Cursor) AssignFloat() (float64, error) {
	c.SkipWhitespace(false)
	if err := c.Expect("="); err != nil {
		return 0, err
	}
	c.SkipWhitespace(false)
	f, err := c.Float()
	if err != nil {
		return 0, err
	}
	c.SkipWhitespace(false)
	return f, nil
}

// AssignVec2 reads a "= <float>, <float>" tail for a property line.
func (c *Cursor) AssignVec2() (timeline.Vec2, error) {
	c.SkipWhitespace(false)
	if err := c.Expect("="); err != nil {
		return timeline.Vec2{}, err
	}
	c.SkipWhitespace(false)
	v, err := c.Vec2()
	if err != nil {
		return timeline.Vec2{}, err
	}
	c.SkipWhitespace(false)
	return v, nil
}
