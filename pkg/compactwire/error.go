package compactwire

import (
	"fmt"

	"github.com/rawbytedev/faststring"
	"github.com/rawbytedev/faststring/bytebuf"
)

// ErrorMessage is the bounded message carried by an error frame.
type ErrorMessage = faststring.String[[256]byte]

// ErrorFrame reports a failure to the peer.
type ErrorFrame struct {
	Code    byte
	Message ErrorMessage
}

// NewErrorFrame builds an error frame, truncating msg to the message
// capacity.
func NewErrorFrame(code byte, msg string) *ErrorFrame {
	e := &ErrorFrame{Code: code}
	e.Message.ExtendSafe(msg)
	return e
}

// EncodeErrorFrame serializes the frame as code followed by the message in
// its string wire form.
func (e *ErrorFrame) EncodeErrorFrame() ([]byte, error) {
	fb := bytebuf.NewFastBuffer(make([]byte, 1+e.Message.EncodedSize()))
	fb.WriteUint8(e.Code)
	e.Message.EncodeFast(fb)
	return sealFrame(TypeError, 0, fb.Bytes()), nil
}

// DecodeErrorFrame replaces e with the frame in data. The message is not
// checked for UTF-8; read it with Text or AsText.
func (e *ErrorFrame) DecodeErrorFrame(data []byte) error {
	_, body, err := openFrame(data, TypeError, ErrNotErrorFrame)
	if err != nil {
		return err
	}
	buf := bytebuf.BufferFrom(body)
	code, err := buf.ReadUint8()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrShortFrame, err)
	}
	var msg ErrorMessage
	if err := msg.Decode(buf); err != nil {
		return fmt.Errorf("compactwire: error message: %w", err)
	}
	if buf.Remaining() != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingBytes, buf.Remaining())
	}
	e.Code = code
	e.Message = msg
	return nil
}

func (e *ErrorFrame) Error() string {
	return fmt.Sprintf("peer error %d: %s", e.Code, e.Message)
}
