package compactwire

import (
	"fmt"

	"github.com/rawbytedev/faststring"
	"github.com/rawbytedev/faststring/bytebuf"
)

// ClientName identifies the peer in a handshake.
type ClientName = faststring.String[[32]byte]

// HandshakeFrame opens a session. Its fields have fixed worst-case sizes,
// so it always encodes through a FastBuffer.
type HandshakeFrame struct {
	Protocol  uint32
	MTU       uint32
	TimeoutMS uint32
	Client    ClientName
}

func (h *HandshakeFrame) EncodedSize() int {
	return 3*4 + h.Client.EncodedSize()
}

func (h *HandshakeFrame) EncodeHandshake() ([]byte, error) {
	fb := bytebuf.NewFastBuffer(make([]byte, h.EncodedSize()))
	fb.WriteUint32(h.Protocol)
	fb.WriteUint32(h.MTU)
	fb.WriteUint32(h.TimeoutMS)
	h.Client.EncodeFast(fb)
	return sealFrame(TypeHandshake, 0, fb.Bytes()), nil
}

func (h *HandshakeFrame) DecodeHandshake(data []byte) error {
	_, body, err := openFrame(data, TypeHandshake, ErrNotHandshake)
	if err != nil {
		return err
	}
	var out HandshakeFrame
	buf := bytebuf.BufferFrom(body)
	for _, dst := range []*uint32{&out.Protocol, &out.MTU, &out.TimeoutMS} {
		if *dst, err = buf.ReadUint32(); err != nil {
			return fmt.Errorf("%w: %w", ErrShortFrame, err)
		}
	}
	if err := out.Client.Decode(buf); err != nil {
		return fmt.Errorf("compactwire: client name: %w", err)
	}
	if buf.Remaining() != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingBytes, buf.Remaining())
	}
	*h = out
	return nil
}
