package bytebuf

import (
	"encoding/binary"
	"fmt"

	"github.com/rawbytedev/faststring/internal/common"
)

// FastBuffer writes into a destination sized up front by the caller,
// usually from EncodedSizeOf. It never reallocates; writing past the end
// of the destination panics.
type FastBuffer struct {
	Order binary.ByteOrder
	dst   []byte
	pos   int
}

// NewFastBuffer writes into dst[:cap(dst)].
func NewFastBuffer(dst []byte) *FastBuffer {
	return &FastBuffer{dst: dst[:cap(dst)]}
}

func (f *FastBuffer) ensure(n int) {
	if f.pos+n > len(f.dst) {
		panic(fmt.Sprintf("bytebuf: fast buffer overflow (writing %d bytes with %d available)", n, len(f.dst)-f.pos))
	}
}

func (f *FastBuffer) WriteUint8(v uint8) {
	f.ensure(common.SizeUint8)
	f.dst[f.pos] = v
	f.pos++
}

func (f *FastBuffer) WriteUint32(v uint32) {
	f.ensure(common.SizeUint32)
	common.OrderOr(f.Order).PutUint32(f.dst[f.pos:], v)
	f.pos += common.SizeUint32
}

func (f *FastBuffer) WriteBytes(p []byte) {
	f.ensure(len(p))
	f.pos += copy(f.dst[f.pos:], p)
}

// Bytes returns the written prefix of the destination.
func (f *FastBuffer) Bytes() []byte { return f.dst[:f.pos] }

func (f *FastBuffer) Len() int { return f.pos }

func (f *FastBuffer) Available() int { return len(f.dst) - f.pos }

func (f *FastBuffer) Reset() { f.pos = 0 }
