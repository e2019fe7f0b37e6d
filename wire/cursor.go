package wire

// eos is returned by peek and next once the Cursor is exhausted. Zero is
// never a valid wire character, so it doubles as an end-of-stream marker
// without an extra ok bool on every call site.
const eos rune = 0

// Cursor is a random-access character stream over an immutable rune
// sequence. Position is monotonic only in the sense that callers advance
// it by reading; SetPosition allows checkpoint/rewind for the block framer.
//
// All accessors fail gracefully at end-of-stream: peek and next return eos,
// NChars and Until never panic, and NextLine returns "" once exhausted.
type Cursor struct {
	data []rune
	pos  int
}

// NewCursor returns a Cursor positioned at the start of s.
func NewCursor(s string) *Cursor {
	return &Cursor{data: []rune(s)}
}

// Len returns the total number of characters in the stream.
func (c *Cursor) Len() int { return len(c.data) }

// Position returns the current offset, in [0, Len()].
func (c *Cursor) Position() int { return c.pos }

// SetPosition moves the cursor to an arbitrary offset. Callers are
// responsible for keeping it within [0, Len()]; out-of-range values make
// subsequent reads behave as if already at end-of-stream (if too large) or
// replay prior content (if valid but earlier).
func (c *Cursor) SetPosition(pos int) { c.pos = pos }

// HasMore reports whether at least one more character remains.
func (c *Cursor) HasMore() bool { return c.pos < len(c.data) }

// Peek returns the next character without consuming it, or eos at end of
// stream.
func (c *Cursor) Peek() rune {
	if !c.HasMore() {
		return eos
	}
	return c.data[c.pos]
}

// Next consumes and returns the next character, or eos at end of stream.
func (c *Cursor) Next() rune {
	if !c.HasMore() {
		return eos
	}
	r := c.data[c.pos]
	c.pos++
	return r
}

// NChars consumes and returns exactly n characters. It fails with
// ReasonUnexpectedEnd, and consumes nothing, if fewer than n remain.
func (c *Cursor) NChars(n int) (string, error) {
	if c.pos+n > len(c.data) {
		return "", errUnexpectedEnd("fixed-width field")
	}
	s := string(c.data[c.pos : c.pos+n])
	c.pos += n
	return s, nil
}

// Until consumes characters up to and including the first occurrence of r,
// returning the prefix excluding r. If r never occurs, Until consumes to
// end-of-stream and returns the remainder; this is a greedy read, not a
// required match, so it never errors.
func (c *Cursor) Until(r rune) string {
	if c.pos >= len(c.data) {
		return ""
	}
	start := c.pos
	for c.pos < len(c.data) {
		if c.data[c.pos] == r {
			s := string(c.data[start:c.pos])
			c.pos++ // consume r itself
			return s
		}
		c.pos++
	}
	return string(c.data[start:c.pos])
}

// NextLine consumes one line. The terminator is LF alone or CRLF; a lone
// CR is not a terminator and is retained verbatim in the returned text.
// When CR is immediately followed by LF, the pair is consumed and excluded
// from the result. A final unterminated line returns whatever remains,
// including a trailing lone CR. At end-of-stream, NextLine returns "".
func (c *Cursor) NextLine() string {
	var out []rune
	hasCR := false

	for c.pos < len(c.data) {
		r := c.data[c.pos]
		c.pos++

		switch r {
		case '\r':
			if hasCR {
				out = append(out, '\r')
			}
			hasCR = true
			continue
		case '\n':
			return string(out)
		default:
			if hasCR {
				out = append(out, '\r')
			}
			out = append(out, r)
		}
		hasCR = false
	}

	if hasCR {
		out = append(out, '\r')
	}
	return string(out)
}
