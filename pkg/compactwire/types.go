// Package compactwire frames encoded fields for transport.
//
// Every frame has the same envelope:
//
//	magic "FS" | type u8 | total length u32 | flags u8 | body | crc32 u32
//
// The total length covers the whole frame including the CRC. The CRC-32
// (IEEE) covers everything after the magic up to the end of the body.
// Integers are little-endian.
package compactwire

import (
	"errors"

	"github.com/rawbytedev/faststring/internal/common"
)

const (
	TypeData      byte = 0x01
	TypeError     byte = 0x02
	TypeHandshake byte = 0x03
)

const (
	// FlagHasOffsetTable: the body starts with a u32 count and that many
	// u32 field offsets into the payload.
	FlagHasOffsetTable byte = 0x01
	// FlagCompressed: the payload is zstd compressed. Offsets refer to the
	// decompressed payload.
	FlagCompressed byte = 0x02
)

const (
	headerSize = 2 + common.SizeUint8 + common.SizeUint32 + common.SizeUint8
	crcSize    = common.SizeUint32
	// MinFrameSize is the size of a frame with an empty body.
	MinFrameSize = headerSize + crcSize
	// MaxPayloadSize bounds decompressed payloads.
	MaxPayloadSize = 1 << 20
)

var magic = [2]byte{'F', 'S'}

var (
	ErrShortFrame     = errors.New("compactwire: frame too short")
	ErrBadMagic       = errors.New("compactwire: bad magic")
	ErrNotDataFrame   = errors.New("compactwire: not a data frame")
	ErrNotErrorFrame  = errors.New("compactwire: not an error frame")
	ErrNotHandshake   = errors.New("compactwire: not a handshake frame")
	ErrLengthMismatch = errors.New("compactwire: length mismatch")
	ErrCRCMismatch    = errors.New("compactwire: crc mismatch")
	ErrTrailingBytes  = errors.New("compactwire: trailing bytes in frame body")
)
