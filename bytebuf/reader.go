package bytebuf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/rawbytedev/faststring/internal/common"
)

// Reader decodes primitives from a stream.
type Reader struct {
	Order   binary.ByteOrder
	r       io.Reader
	scratch [common.SizeUint32]byte
	off     int64
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReaderFrom reads from an in-memory slice.
func ReaderFrom(b []byte) *Reader {
	return NewReader(bytes.NewReader(b))
}

func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.fill(r.scratch[:common.SizeUint8]); err != nil {
		return 0, err
	}
	return r.scratch[0], nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.fill(r.scratch[:]); err != nil {
		return 0, err
	}
	return common.OrderOr(r.Order).Uint32(r.scratch[:]), nil
}

// ReadFull reads exactly len(p) bytes into p.
func (r *Reader) ReadFull(p []byte) error {
	return r.fill(p)
}

func (r *Reader) fill(p []byte) error {
	n, err := io.ReadFull(r.r, p)
	r.off += int64(n)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrShortRead, len(p), n)
	}
	return err
}

// Offset is the number of bytes consumed from the stream.
func (r *Reader) Offset() int64 { return r.off }
