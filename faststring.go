// Package faststring implements String, a fixed-capacity string stored
// inline in its value instead of on the heap.
//
// On the wire a String is identical to an ordinary string field: a u32
// length followed by the raw UTF-8 bytes. Values of either kind can be
// decoded as the other, as long as the content fits the capacity.
//
// Overflow is handled two ways. Constructors and appends whose capacity a
// correct caller can check statically (FromSlice, FromString, Push, Extend)
// panic. Paths fed by untrusted input (TryFromString, ExtendSafe, Decode)
// return ErrCapacityExceeded or truncate.
package faststring

import (
	"fmt"
	"unsafe"

	"github.com/rawbytedev/faststring/internal/common"
)

// Storage lists the backing arrays a String can be instantiated with. The
// capacity of String[B] is len(B).
type Storage interface {
	~[4]byte | ~[8]byte | ~[10]byte | ~[12]byte | ~[16]byte | ~[20]byte |
		~[24]byte | ~[32]byte | ~[40]byte | ~[48]byte | ~[64]byte | ~[80]byte |
		~[96]byte | ~[100]byte | ~[128]byte | ~[160]byte | ~[192]byte |
		~[200]byte | ~[255]byte | ~[256]byte | ~[300]byte | ~[384]byte |
		~[500]byte | ~[512]byte | ~[1000]byte | ~[1024]byte | ~[2048]byte |
		~[4096]byte
}

// String holds up to len(B) bytes of text inline. The zero value is an
// empty string. Copying a String copies its bytes.
type String[B Storage] struct {
	buf B
	n   int
}

// Capacity returns the fixed capacity of String[B].
func Capacity[B Storage]() int {
	var b B
	return len(b)
}

// New returns an empty String.
func New[B Storage]() String[B] {
	return String[B]{}
}

// FromBuffer wraps a full storage array whose first n bytes are the content.
// It panics if n is negative or larger than the capacity.
func FromBuffer[B Storage](buf B, n int) String[B] {
	if n < 0 || n > len(buf) {
		panic(fmt.Sprintf("faststring: length %d out of range for capacity %d", n, len(buf)))
	}
	return String[B]{buf: buf, n: n}
}

// FromSlice copies data into a new String. It panics if data does not fit;
// use TryFromString when the length is not known to fit.
func FromSlice[B Storage](data []byte) String[B] {
	var s String[B]
	if len(data) > len(s.buf) {
		panic(fmt.Sprintf("faststring: cannot create a String with %d bytes, capacity is %d", len(data), len(s.buf)))
	}
	s.n = copy(s.raw(), data)
	return s
}

// FromString copies text into a new String. It panics if text does not fit.
func FromString[B Storage](text string) String[B] {
	var s String[B]
	if len(text) > len(s.buf) {
		panic(fmt.Sprintf("faststring: cannot create a String with %d bytes, capacity is %d", len(text), len(s.buf)))
	}
	s.n = copy(s.raw(), text)
	return s
}

// raw views the whole storage array.
func (s *String[B]) raw() []byte {
	return common.Bytes(unsafe.Pointer(&s.buf), len(s.buf))
}

func (s String[B]) Len() int { return s.n }

func (s String[B]) IsEmpty() bool { return s.n == 0 }

// Cap returns the capacity, which is the same for every String[B].
func (s String[B]) Cap() int { return len(s.buf) }

// Push appends one byte. It panics when the String is full.
func (s *String[B]) Push(c byte) {
	if s.n >= len(s.buf) {
		panic(fmt.Sprintf("faststring: buffer overflow (writing beyond capacity of %d)", len(s.buf)))
	}
	s.raw()[s.n] = c
	s.n++
}

// Extend appends the bytes of text one at a time and panics on overflow.
// Bytes appended before the overflow are kept.
func (s *String[B]) Extend(text string) {
	for i := 0; i < len(text); i++ {
		s.Push(text[i])
	}
}

// ExtendSafe is like Extend but stops silently once the String is full.
// The cut may land inside a multi-byte character.
func (s *String[B]) ExtendSafe(text string) {
	free := len(s.buf) - s.n
	if len(text) > free {
		text = text[:free]
	}
	s.n += copy(s.raw()[s.n:], text)
}

// Bytes returns the content bytes. The slice aliases the String's storage.
func (s *String[B]) Bytes() []byte {
	return s.raw()[:s.n:s.n]
}
