package faststring

import (
	"testing"
	"testing/quick"
	"unicode/utf8"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestTryFromStringRoundTrip(t *testing.T) {
	condition := func(text string) bool {
		if len(text) > 32 || !utf8.ValidString(text) {
			return true
		}
		s, err := TryFromString[[32]byte](text)
		if err != nil {
			return false
		}
		out, err := s.Text()
		return err == nil && out == text
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestTryFromStringTooLong(t *testing.T) {
	_, err := TryFromString[[4]byte]("hello")
	require.ErrorIs(t, err, ErrCapacityExceeded)
	require.Contains(t, err.Error(), "capacity 4")

	condition := func(text string) bool {
		if len(text) <= 4 {
			return true
		}
		_, err := TryFromString[[4]byte](text)
		return err != nil
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestTryFromStringExactFit(t *testing.T) {
	s, err := TryFromString[[4]byte]("hell")
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())
}

func TestMultiByteText(t *testing.T) {
	s, err := TryFromString[[10]byte]("héllo")
	require.NoError(t, err)
	require.Equal(t, 6, s.Len())
	text, err := s.Text()
	require.NoError(t, err)
	require.Equal(t, "héllo", text)

	// 'é' is two bytes, so a 4-byte capacity cuts it in half
	var cut tiny
	cut.ExtendSafe("abcé")
	require.Equal(t, 4, cut.Len())
	require.False(t, cut.Valid())
	_, err = cut.Text()
	require.ErrorIs(t, err, ErrMalformedText)
}

func TestAsTextSharesStorage(t *testing.T) {
	s := FromString[[32]byte]("view")
	text, err := s.AsText()
	require.NoError(t, err)
	require.Equal(t, "view", text)
	require.True(t, unsafe.StringData(text) == &s.Bytes()[0])

	// appending writes past the viewed bytes
	s.Extend("er")
	require.Equal(t, "view", text)
	require.Equal(t, "viewer", s.String())
}

func TestAsTextEmpty(t *testing.T) {
	var s name
	text, err := s.AsText()
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestMalformedText(t *testing.T) {
	s := FromSlice[[10]byte]([]byte{'o', 'k', 0xc3})
	_, err := s.AsText()
	require.ErrorIs(t, err, ErrMalformedText)
	_, err = s.Text()
	require.ErrorIs(t, err, ErrMalformedText)
	require.False(t, s.Valid())
}
