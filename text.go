package faststring

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rawbytedev/faststring/internal/common"
)

var (
	ErrCapacityExceeded = errors.New("faststring: capacity exceeded")
	ErrMalformedText    = errors.New("faststring: invalid UTF-8")
)

// invalidPlaceholder is what String prints for content that is not UTF-8.
const invalidPlaceholder = "<invalid UTF-8 string>"

// TryFromString copies text into a new String, or returns
// ErrCapacityExceeded if it does not fit.
func TryFromString[B Storage](text string) (String[B], error) {
	if n := Capacity[B](); len(text) > n {
		return String[B]{}, fmt.Errorf("%w: converting a %d byte string into a String with capacity %d", ErrCapacityExceeded, len(text), n)
	}
	return FromString[B](text), nil
}

// AsText returns the content as a string without copying. The result shares
// the String's storage: it stays valid while s is alive and is not decoded
// into again. Appending does not disturb it.
func (s *String[B]) AsText() (string, error) {
	b := s.Bytes()
	if !utf8.Valid(b) {
		return "", ErrMalformedText
	}
	return common.String(b), nil
}

// Text returns an owned copy of the content, or ErrMalformedText.
func (s String[B]) Text() (string, error) {
	b := s.raw()[:s.n]
	if !utf8.Valid(b) {
		return "", ErrMalformedText
	}
	return string(b), nil
}

// String implements fmt.Stringer. Content that is not valid UTF-8 prints
// as a placeholder.
func (s String[B]) String() string {
	text, err := s.Text()
	if err != nil {
		return invalidPlaceholder
	}
	return text
}

// Valid reports whether the content is valid UTF-8.
func (s *String[B]) Valid() bool {
	return utf8.Valid(s.Bytes())
}

// Equal compares content only; storage past Len is ignored.
func (s String[B]) Equal(other String[B]) bool {
	return bytes.Equal(s.raw()[:s.n], other.raw()[:other.n])
}
