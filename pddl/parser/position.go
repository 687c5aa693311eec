package parser

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Editor positions arrive as line / UTF-16 code unit pairs (the LSP
// convention); the tree works in byte offsets. These helpers convert between
// the two. Out-of-range positions clamp instead of failing: a stale position
// from the editor should degrade, not error.

// OffsetForPosition converts a 0-based line and UTF-16 character to a byte
// offset into content.
func OffsetForPosition(content []byte, line, character int) int {
	offset := 0
	for l := 0; l < line; l++ {
		next := indexByteFrom(content, offset, '\n')
		if next < 0 {
			return len(content)
		}
		offset = next + 1
	}

	units := 0
	for offset < len(content) && content[offset] != '\n' && units < character {
		r, size := utf8.DecodeRune(content[offset:])
		units += len(utf16.Encode([]rune{r}))
		offset += size
	}
	return offset
}

// PositionForOffset converts a byte offset into a 0-based line and UTF-16
// character pair.
func PositionForOffset(content []byte, offset int) (line, character int) {
	if offset > len(content) {
		offset = len(content)
	}
	lineStart := 0
	for i := 0; i < offset; i++ {
		if content[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	for i := lineStart; i < offset; {
		r, size := utf8.DecodeRune(content[i:])
		character += len(utf16.Encode([]rune{r}))
		i += size
	}
	return line, character
}

func indexByteFrom(content []byte, from int, b byte) int {
	for i := from; i < len(content); i++ {
		if content[i] == b {
			return i
		}
	}
	return -1
}
