package parser

import (
	"testing"
)

func TestOffsetForPosition(t *testing.T) {
	content := []byte("(define\n  (domain d))")

	tests := []struct {
		name      string
		line      int
		character int
		want      int
	}{
		{"start", 0, 0, 0},
		{"mid first line", 0, 3, 3},
		{"second line", 1, 2, 10},
		{"past line end clamps", 0, 99, 7},
		{"past last line clamps", 5, 0, len(content)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OffsetForPosition(content, tt.line, tt.character)
			if got != tt.want {
				t.Errorf("OffsetForPosition = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPositionForOffset(t *testing.T) {
	content := []byte("(define\n  (domain d))")

	line, character := PositionForOffset(content, 10)
	if line != 1 || character != 2 {
		t.Errorf("PositionForOffset = %d:%d, want 1:2", line, character)
	}

	line, character = PositionForOffset(content, 0)
	if line != 0 || character != 0 {
		t.Errorf("PositionForOffset = %d:%d, want 0:0", line, character)
	}
}

func TestPositionsUTF16(t *testing.T) {
	// "ü" is two bytes but one UTF-16 unit; "𝜑" is four bytes and two units.
	content := []byte("(über 𝜑x)")

	offset := OffsetForPosition(content, 0, 8)
	if content[offset] != 'x' {
		t.Errorf("offset %d points at %q, want x", offset, content[offset])
	}

	line, character := PositionForOffset(content, offset)
	if line != 0 || character != 8 {
		t.Errorf("round trip = %d:%d, want 0:8", line, character)
	}
}
