package faststring

import (
	"fmt"

	"github.com/rawbytedev/faststring/bytebuf"
	"github.com/rawbytedev/faststring/internal/common"
)

// Wire layout, shared with plain string fields:
//
//	[u32 length][length bytes of content]
//
// Only the content is written, never the unused capacity.

var (
	_ bytebuf.Encodable = (*String[[32]byte])(nil)
	_ bytebuf.Decodable = (*String[[32]byte])(nil)
	_ bytebuf.KnownSize = String[[32]byte]{}
)

// EncodedSize returns the largest encoding of a String[B]: the length
// prefix plus a full buffer.
func EncodedSize[B Storage]() int {
	return common.SizeUint32 + Capacity[B]()
}

// EncodedSize is the worst-case encoded size, used to pre-size a FastBuffer.
func (s String[B]) EncodedSize() int {
	return EncodedSize[B]()
}

func (s *String[B]) encode(w bytebuf.Writer) {
	w.WriteUint32(uint32(s.n))
	w.WriteBytes(s.raw()[:s.n])
}

// Encode appends the wire form to a growable buffer.
func (s *String[B]) Encode(buf *bytebuf.Buffer) {
	s.encode(buf)
}

// EncodeFast writes the wire form into a pre-sized buffer. The output is
// byte-for-byte the same as Encode. It panics if buf has too little room.
func (s *String[B]) EncodeFast(buf *bytebuf.FastBuffer) {
	s.encode(buf)
}

// decode reads the length prefix, rejects it before touching the content
// if it exceeds the capacity, then reads exactly that many bytes. The
// content is not checked for UTF-8 here; AsText and Text do that.
func (s *String[B]) decode(src bytebuf.Source) error {
	l, err := src.ReadUint32()
	if err != nil {
		return err
	}
	capacity := len(s.buf)
	if uint64(l) > uint64(capacity) {
		return fmt.Errorf("%w: string is too long (%d bytes) to fit into a String with capacity %d", ErrCapacityExceeded, l, capacity)
	}
	var tmp String[B]
	if err := src.ReadFull(tmp.raw()[:l]); err != nil {
		return err
	}
	tmp.n = int(l)
	*s = tmp
	return nil
}

// Decode replaces s with a String read from buf's read cursor. On error s
// is left unchanged.
func (s *String[B]) Decode(buf *bytebuf.Buffer) error {
	return s.decode(buf)
}

// DecodeFrom replaces s with a String read from a stream. On error s is
// left unchanged.
func (s *String[B]) DecodeFrom(r *bytebuf.Reader) error {
	return s.decode(r)
}

// Decode reads a new String[B] from buf.
func Decode[B Storage](buf *bytebuf.Buffer) (String[B], error) {
	var s String[B]
	err := s.Decode(buf)
	return s, err
}

// DecodeFrom reads a new String[B] from r.
func DecodeFrom[B Storage](r *bytebuf.Reader) (String[B], error) {
	var s String[B]
	err := s.DecodeFrom(r)
	return s, err
}
