package runes

import (
	"bufio"
	"io"
	"unicode/utf8"
)

type Reader struct {
	*bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{bufio.NewReader(r)}
}

// Returns up to n upcoming runes without consuming them. Fewer runes are
// returned when the input ends first. Invalid bytes decode to
// utf8.RuneError, one per byte, matching ReadRune.
func (r *Reader) PeekRunes(n int) ([]rune, error) {
	if n < 1 {
		return nil, nil
	}

	word := []rune{}
	peekOffset := 0

	for i := 0; i < n; i++ {
		b, err := r.Peek(peekOffset + utf8.UTFMax)
		if len(b) <= peekOffset {
			if err == nil || err == io.EOF {
				break
			}
			return word, err
		}

		char, size := utf8.DecodeRune(b[peekOffset:])
		peekOffset += size
		word = append(word, char)
	}

	return word, nil
}
