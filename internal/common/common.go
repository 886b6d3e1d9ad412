package common

import (
	"encoding/binary"
	"unsafe"
)

// SizeUint8 and SizeUint32 are the wire widths of the integer primitives.
const (
	SizeUint8  = 1
	SizeUint32 = 4
)

// DefaultOrder is the byte order used when a buffer does not set one.
var DefaultOrder binary.ByteOrder = binary.LittleEndian

// OrderOr returns o, or DefaultOrder when o is nil.
func OrderOr(o binary.ByteOrder) binary.ByteOrder {
	if o == nil {
		return DefaultOrder
	}
	return o
}

// String aliases b as a string without copying.
// The caller must not modify b while the string is in use.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// Bytes aliases the backing array of p as a byte slice of length n.
// It is used to view fixed-size byte arrays that are only known
// through a type parameter.
func Bytes(p unsafe.Pointer, n int) []byte {
	return unsafe.Slice((*byte)(p), n)
}
