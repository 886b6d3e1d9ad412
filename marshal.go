package faststring

import (
	"encoding"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = String[[32]byte]{}
	_ encoding.TextUnmarshaler = (*String[[32]byte])(nil)
	_ yaml.Marshaler           = String[[32]byte]{}
	_ yaml.Unmarshaler         = (*String[[32]byte])(nil)
)

// MarshalText fails with ErrMalformedText if the content is not UTF-8.
func (s String[B]) MarshalText() ([]byte, error) {
	text, err := s.Text()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// UnmarshalText fails with ErrCapacityExceeded if text does not fit.
func (s *String[B]) UnmarshalText(text []byte) error {
	if n := Capacity[B](); len(text) > n {
		return fmt.Errorf("%w: %d bytes of text for capacity %d", ErrCapacityExceeded, len(text), n)
	}
	*s = FromSlice[B](text)
	return nil
}

func (s String[B]) MarshalYAML() (any, error) {
	return s.Text()
}

func (s *String[B]) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	v, err := TryFromString[B](text)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = v
	return nil
}
