package wire

import "testing"

func TestCursorNextLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain CRLF",
			input: "Hello world!\r\nWhat is going on?\r\nSomething",
			want:  []string{"Hello world!", "What is going on?", "Something"},
		},
		{
			name:  "lone CR preserved",
			input: "Hello world!\r\r\nWhat is going on?\rab\r\n\rSomething",
			want:  []string{"Hello world!\r", "What is going on?\rab", "\rSomething"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{""},
		},
		{
			name:  "unterminated final line",
			input: "Random text",
			want:  []string{"Random text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.input)
			for i, want := range tt.want {
				got := c.NextLine()
				if got != want {
					t.Errorf("line %d: got %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestCursorUntil(t *testing.T) {
	c := NewCursor("{1:asdf}{2:asdafaae}{3:asdf")
	if got, want := c.Until('}'), "{1:asdf"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := c.Until('}'), "{2:asdafaae"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := c.Until('}'), "{3:asdf"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	c2 := NewCursor("Random text")
	if got, want := c2.Until('$'), "Random text"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCursorNChars(t *testing.T) {
	c := NewCursor("ABCD")
	if got, err := c.NChars(2); err != nil || got != "AB" {
		t.Fatalf("NChars(2) = %q, %v", got, err)
	}
	if c.Position() != 2 {
		t.Fatalf("position = %d, want 2", c.Position())
	}
	if _, err := c.NChars(3); err == nil {
		t.Fatal("expected error reading past end")
	}
	if c.Position() != 2 {
		t.Fatalf("failed NChars must not consume, position = %d", c.Position())
	}
}

func TestCursorHasMoreAndPeek(t *testing.T) {
	c := NewCursor("ABCD")
	if !c.HasMore() {
		t.Fatal("expected more")
	}
	c.Next()
	if !c.HasMore() {
		t.Fatal("expected more")
	}
	c.NextLine()
	if c.HasMore() {
		t.Fatal("expected exhausted")
	}
	if c.Peek() != eos {
		t.Fatal("expected eos at end")
	}
}
