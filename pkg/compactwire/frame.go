package compactwire

import (
	"fmt"
	"hash/crc32"

	"github.com/rawbytedev/faststring/bytebuf"
	"go.uber.org/zap"
)

// sealFrame writes the envelope around body into an exactly sized buffer.
func sealFrame(typ, flags byte, body []byte) []byte {
	total := headerSize + len(body) + crcSize
	fb := bytebuf.NewFastBuffer(make([]byte, total))
	fb.WriteBytes(magic[:])
	fb.WriteUint8(typ)
	fb.WriteUint32(uint32(total))
	fb.WriteUint8(flags)
	fb.WriteBytes(body)
	fb.WriteUint32(crc32.ChecksumIEEE(fb.Bytes()[len(magic):]))
	return fb.Bytes()
}

// openFrame validates the envelope and returns the flags and body.
// notType is returned when the frame has a different type than want.
func openFrame(data []byte, want byte, notType error) (byte, []byte, error) {
	if len(data) < MinFrameSize {
		return 0, nil, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(data))
	}
	if data[0] != magic[0] || data[1] != magic[1] {
		return 0, nil, ErrBadMagic
	}
	hdr := bytebuf.BufferFrom(data[len(magic):headerSize])
	typ, _ := hdr.ReadUint8()
	total, _ := hdr.ReadUint32()
	flags, _ := hdr.ReadUint8()
	if typ != want {
		return 0, nil, fmt.Errorf("%w: type 0x%02x", notType, typ)
	}
	if uint64(total) != uint64(len(data)) {
		Logger().Debug("frame length mismatch",
			zap.Uint32("declared", total),
			zap.Int("actual", len(data)))
		return 0, nil, fmt.Errorf("%w: header says %d, got %d", ErrLengthMismatch, total, len(data))
	}
	end := len(data) - crcSize
	want32, _ := bytebuf.BufferFrom(data[end:]).ReadUint32()
	if got := crc32.ChecksumIEEE(data[len(magic):end]); got != want32 {
		Logger().Debug("frame crc mismatch",
			zap.Uint8("type", typ),
			zap.Uint32("want", want32),
			zap.Uint32("got", got))
		return 0, nil, ErrCRCMismatch
	}
	return flags, data[headerSize:end], nil
}
