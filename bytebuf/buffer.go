// Package bytebuf provides the byte buffers the wire types encode into and
// decode from.
//
// Buffer is growable and carries its own read cursor. FastBuffer writes into
// a caller-owned, pre-sized slice and never grows. Reader consumes values
// from any io.Reader. All three default to little-endian integers; set Order
// to change that.
package bytebuf

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/rawbytedev/faststring/internal/common"
)

var ErrShortRead = errors.New("bytebuf: not enough bytes to read")

// Writer is the primitive write side shared by Buffer and FastBuffer.
type Writer interface {
	WriteUint8(v uint8)
	WriteUint32(v uint32)
	WriteBytes(p []byte)
}

// Source is the primitive read side shared by Buffer and Reader.
type Source interface {
	ReadUint8() (uint8, error)
	ReadUint32() (uint32, error)
	ReadFull(p []byte) error
}

type Buffer struct {
	Order binary.ByteOrder
	data  []byte
	rpos  int
}

// NewBuffer returns an empty buffer with room for size bytes.
func NewBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, 0, size)}
}

// BufferFrom wraps b for reading. Writes append after the existing bytes
// and may reuse b's spare capacity.
func BufferFrom(b []byte) *Buffer {
	return &Buffer{data: b}
}

func (b *Buffer) order() binary.ByteOrder { return common.OrderOr(b.Order) }

func (b *Buffer) WriteUint8(v uint8) {
	b.data = append(b.data, v)
}

func (b *Buffer) WriteUint32(v uint32) {
	var scratch [common.SizeUint32]byte
	b.order().PutUint32(scratch[:], v)
	b.data = append(b.data, scratch[:]...)
}

func (b *Buffer) WriteBytes(p []byte) {
	b.data = append(b.data, p...)
}

func (b *Buffer) ReadUint8() (uint8, error) {
	if err := b.need(common.SizeUint8); err != nil {
		return 0, err
	}
	v := b.data[b.rpos]
	b.rpos++
	return v, nil
}

func (b *Buffer) ReadUint32() (uint32, error) {
	if err := b.need(common.SizeUint32); err != nil {
		return 0, err
	}
	v := b.order().Uint32(b.data[b.rpos:])
	b.rpos += common.SizeUint32
	return v, nil
}

// ReadFull copies exactly len(p) unread bytes into p.
func (b *Buffer) ReadFull(p []byte) error {
	if err := b.need(len(p)); err != nil {
		return err
	}
	b.rpos += copy(p, b.data[b.rpos:])
	return nil
}

func (b *Buffer) need(n int) error {
	if rem := len(b.data) - b.rpos; rem < n {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrShortRead, n, rem)
	}
	return nil
}

// Bytes returns every byte written so far, read or not.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Len() int { return len(b.data) }

// Remaining is the number of bytes not yet consumed by reads.
func (b *Buffer) Remaining() int { return len(b.data) - b.rpos }

// Reset empties the buffer and rewinds the read cursor, keeping capacity.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.rpos = 0
}
