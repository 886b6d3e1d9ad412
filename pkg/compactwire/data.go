package compactwire

import (
	"fmt"

	"github.com/rawbytedev/faststring/bytebuf"
	"github.com/rawbytedev/faststring/internal/common"
	"go.uber.org/zap"
)

// DataFrame builds and parses data frames. It reuses its body buffer
// between calls and is not safe for concurrent use.
type DataFrame struct {
	body    *bytebuf.Buffer
	payload *bytebuf.Buffer
}

// EncodeDataFrame wraps payload. With FlagHasOffsetTable the offsets are
// written ahead of the payload; with FlagCompressed the payload is
// compressed.
func (d *DataFrame) EncodeDataFrame(payload []byte, flags byte, offsets []uint32) ([]byte, error) {
	if d.body == nil {
		d.body = bytebuf.NewBuffer(len(payload) + common.SizeUint32*(len(offsets)+1))
	}
	d.body.Reset()
	if flags&FlagHasOffsetTable != 0 {
		d.body.WriteUint32(uint32(len(offsets)))
		for _, off := range offsets {
			d.body.WriteUint32(off)
		}
	}
	if flags&FlagCompressed != 0 {
		packed, err := compress(payload)
		if err != nil {
			return nil, err
		}
		payload = packed
	}
	d.body.WriteBytes(payload)
	return sealFrame(TypeData, flags, d.body.Bytes()), nil
}

// EncodeFields encodes each field into the payload in order and records
// where each one starts.
func (d *DataFrame) EncodeFields(flags byte, fields ...bytebuf.Encodable) ([]byte, error) {
	if d.payload == nil {
		d.payload = bytebuf.NewBuffer(64)
	}
	d.payload.Reset()
	var offsets []uint32
	if flags&FlagHasOffsetTable != 0 {
		offsets = make([]uint32, 0, len(fields))
	}
	for _, f := range fields {
		if offsets != nil {
			offsets = append(offsets, uint32(d.payload.Len()))
		}
		d.payload.WriteValue(f)
	}
	return d.EncodeDataFrame(d.payload.Bytes(), flags, offsets)
}

// DecodeDataFrame checks a data frame and returns its payload, offsets
// and flags. A compressed payload is returned decompressed.
func (d *DataFrame) DecodeDataFrame(data []byte) ([]byte, []uint32, byte, error) {
	flags, body, err := openFrame(data, TypeData, ErrNotDataFrame)
	if err != nil {
		return nil, nil, 0, err
	}
	buf := bytebuf.BufferFrom(body)
	var offsets []uint32
	if flags&FlagHasOffsetTable != 0 {
		cnt, err := buf.ReadUint32()
		if err != nil {
			return nil, nil, 0, fmt.Errorf("%w: offset count: %w", ErrShortFrame, err)
		}
		if uint64(cnt)*common.SizeUint32 > uint64(buf.Remaining()) {
			return nil, nil, 0, fmt.Errorf("%w: %d offsets declared", ErrShortFrame, cnt)
		}
		offsets = make([]uint32, cnt)
		for i := range offsets {
			offsets[i], _ = buf.ReadUint32()
		}
	}
	payload := body[len(body)-buf.Remaining():]
	if flags&FlagCompressed != 0 {
		payload, err = decompress(payload)
		if err != nil {
			Logger().Debug("frame payload did not decompress", zap.Error(err))
			return nil, nil, 0, fmt.Errorf("compactwire: decompress payload: %w", err)
		}
	}
	for _, off := range offsets {
		if uint64(off) > uint64(len(payload)) {
			return nil, nil, 0, fmt.Errorf("%w: offset %d past payload of %d bytes", ErrShortFrame, off, len(payload))
		}
	}
	return payload, offsets, flags, nil
}

// DecodeFields decodes a data frame and reads its payload into fields in
// order. Every payload byte must be consumed.
func (d *DataFrame) DecodeFields(data []byte, fields ...bytebuf.Decodable) error {
	payload, _, _, err := d.DecodeDataFrame(data)
	if err != nil {
		return err
	}
	buf := bytebuf.BufferFrom(payload)
	for i, f := range fields {
		if err := buf.ReadValue(f); err != nil {
			return fmt.Errorf("compactwire: field %d: %w", i, err)
		}
	}
	if buf.Remaining() != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingBytes, buf.Remaining())
	}
	return nil
}
