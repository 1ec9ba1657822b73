package script

import (
	"fmt"
	"math"
	"testing"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"0", 0},
		{"5", 5},
		{"42", 42},
		{"12.5", 12.5},
		{"0.125", 0.125},
		{"-3.25", -3.25},
		{"-7", -7},
		{"10.", 10},
		{"3.000", 3},
	}

	for _, tt := range tests {
		c := NewCursor(tt.input)
		got, err := c.Float()
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.input, err)
			continue
		}
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("%q: expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}

func TestFloatRoundTrip(t *testing.T) {
	values := []float64{0, 0.5, 1.5, 3.141593, 12.25, 99.999999, 1234.567891}

	for _, v := range values {
		text := fmt.Sprintf("%.6f", v)
		c := NewCursor(text)
		got, err := c.Float()
		if err != nil {
			t.Errorf("%q: unexpected error: %v", text, err)
			continue
		}
		if math.Abs(got-v) > 1e-5 {
			t.Errorf("%q: round trip drifted, expected %v, got %v", text, v, got)
		}
	}
}

func TestFloatErrors(t *testing.T) {
	for _, input := range []string{"", "-", "abc", ".5", "- 1"} {
		c := NewCursor(input)
		_, err := c.Float()
		if err == nil {
			t.Errorf("%q: expected error", input)
			continue
		}
		if pe := err.(*ParseError); pe.Msg != "expected number" {
			t.Errorf("%q: unexpected message %q", input, pe.Msg)
		}
	}
}

func TestVec2(t *testing.T) {
	c := NewCursor("3, 4.5")
	v, err := c.Vec2()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.X != 3 || v.Y != 4.5 {
		t.Errorf("expected (3, 4.5), got (%v, %v)", v.X, v.Y)
	}

	c = NewCursor("1 , 2")
	if _, err := c.Vec2(); err != nil {
		t.Errorf("spaces around the comma should parse: %v", err)
	}

	c = NewCursor("1 2")
	_, err = c.Vec2()
	if err == nil {
		t.Fatal("expected error for missing comma")
	}
	if pe := err.(*ParseError); pe.Msg != "expected ','" {
		t.Errorf("unexpected message: %q", pe.Msg)
	}
}

func TestQuotedString(t *testing.T) {
	c := NewCursor("\"hello world\" rest")
	s, err := c.QuotedString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", s)
	}
	if c.Peek() != ' ' {
		t.Errorf("cursor should sit after the closing quote, got %q", c.Peek())
	}

	c = NewCursor("\"\"")
	s, err = c.QuotedString()
	if err != nil || s != "" {
		t.Errorf("empty string should parse, got %q, %v", s, err)
	}
}

func TestQuotedStringUnterminated(t *testing.T) {
	c := NewCursor("\"abc")
	_, err := c.QuotedString()
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}
	pe := err.(*ParseError)
	if pe.Msg != "expected '\"'" {
		t.Errorf("unexpected message: %q", pe.Msg)
	}
	if pe.Line != 1 || pe.Col != 5 {
		t.Errorf("expected position 1:5, got %d:%d", pe.Line, pe.Col)
	}
}

func TestAssignFloat(t *testing.T) {
	c := NewCursor(" = 4.5 ")
	f, err := c.AssignFloat()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 4.5 {
		t.Errorf("expected 4.5, got %v", f)
	}

	// a trailing newline is tolerated but never required
	c = NewCursor(" = 2\n")
	if _, err := c.AssignFloat(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	c = NewCursor(" 4.5")
	if _, err := c.AssignFloat(); err == nil {
		t.Error("expected error for missing '='")
	}
}

func TestAssignVec2(t *testing.T) {
	c := NewCursor(" = 1920, 1080")
	v, err := c.AssignVec2()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.X != 1920 || v.Y != 1080 {
		t.Errorf("expected (1920, 1080), got (%v, %v)", v.X, v.Y)
	}
}
