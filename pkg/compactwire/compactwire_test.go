package compactwire

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rawbytedev/faststring"
	"github.com/rawbytedev/faststring/bytebuf"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type (
	playerName = faststring.String[[32]byte]
	chatLine   = faststring.String[[300]byte]
)

func TestDataFrameRoundTrip(t *testing.T) {
	var d DataFrame
	payload := []byte("raw payload bytes")
	out, err := d.EncodeDataFrame(payload, 0, nil)
	require.NoError(t, err)
	require.Len(t, out, MinFrameSize+len(payload))
	require.Equal(t, []byte("FS"), out[:2])

	got, offsets, flags, err := d.DecodeDataFrame(out)
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.Nil(t, offsets)
	require.Zero(t, flags)
}

func TestDataFrameFields(t *testing.T) {
	for _, flags := range []byte{0, FlagHasOffsetTable, FlagCompressed, FlagHasOffsetTable | FlagCompressed} {
		name := faststring.FromString[[32]byte]("alice")
		line := faststring.FromString[[300]byte](strings.Repeat("gg ", 50))

		var d DataFrame
		out, err := d.EncodeFields(flags, &name, &line)
		require.NoError(t, err)

		payload, offsets, gotFlags, err := d.DecodeDataFrame(out)
		require.NoError(t, err)
		require.Equal(t, flags, gotFlags)
		if flags&FlagHasOffsetTable != 0 {
			require.Equal(t, []uint32{0, 9}, offsets)
		} else {
			require.Nil(t, offsets)
		}
		require.Len(t, payload, 9+4+150)

		var gotName playerName
		var gotLine chatLine
		require.NoError(t, d.DecodeFields(out, &gotName, &gotLine))
		require.True(t, gotName.Equal(name))
		require.True(t, gotLine.Equal(line))
	}
}

func TestCompressionShrinksRepetitivePayload(t *testing.T) {
	line := faststring.FromString[[300]byte](strings.Repeat("a", 300))
	var d DataFrame
	plain, err := d.EncodeFields(0, &line)
	require.NoError(t, err)
	plain = bytes.Clone(plain)
	packed, err := d.EncodeFields(FlagCompressed, &line)
	require.NoError(t, err)
	require.Less(t, len(packed), len(plain))
}

func TestDecodeFieldsRejectsOversizedString(t *testing.T) {
	long := faststring.FromString[[300]byte](strings.Repeat("x", 40))
	var d DataFrame
	out, err := d.EncodeFields(0, &long)
	require.NoError(t, err)

	var short playerName
	err = d.DecodeFields(out, &short)
	require.ErrorIs(t, err, faststring.ErrCapacityExceeded)
	require.True(t, short.IsEmpty())
}

func TestDecodeFieldsTrailingBytes(t *testing.T) {
	a := faststring.FromString[[32]byte]("a")
	b := faststring.FromString[[32]byte]("b")
	var d DataFrame
	out, err := d.EncodeFields(0, &a, &b)
	require.NoError(t, err)

	var only playerName
	require.ErrorIs(t, d.DecodeFields(out, &only), ErrTrailingBytes)
}

func TestFrameValidation(t *testing.T) {
	var d DataFrame
	good, err := d.EncodeDataFrame([]byte("payload"), 0, nil)
	require.NoError(t, err)
	good = bytes.Clone(good)

	_, _, _, err = d.DecodeDataFrame(good[:MinFrameSize-1])
	require.ErrorIs(t, err, ErrShortFrame)

	badMagic := bytes.Clone(good)
	badMagic[0] = 'X'
	_, _, _, err = d.DecodeDataFrame(badMagic)
	require.ErrorIs(t, err, ErrBadMagic)

	_, _, _, err = d.DecodeDataFrame(good[:len(good)-1])
	require.ErrorIs(t, err, ErrLengthMismatch)

	tampered := bytes.Clone(good)
	tampered[headerSize] ^= 0xff
	_, _, _, err = d.DecodeDataFrame(tampered)
	require.ErrorIs(t, err, ErrCRCMismatch)

	var e ErrorFrame
	require.ErrorIs(t, e.DecodeErrorFrame(good), ErrNotErrorFrame)
	var h HandshakeFrame
	require.ErrorIs(t, h.DecodeHandshake(good), ErrNotHandshake)
}

func TestOffsetTableBounds(t *testing.T) {
	var d DataFrame
	out, err := d.EncodeDataFrame([]byte("abc"), FlagHasOffsetTable, []uint32{10})
	require.NoError(t, err)
	_, _, _, err = d.DecodeDataFrame(out)
	require.ErrorIs(t, err, ErrShortFrame)

	body := bytebuf.NewBuffer(0)
	body.WriteUint32(1 << 30)
	frame := sealFrame(TypeData, FlagHasOffsetTable, body.Bytes())
	_, _, _, err = d.DecodeDataFrame(frame)
	require.ErrorIs(t, err, ErrShortFrame)
}

func TestErrorFrameRoundTrip(t *testing.T) {
	in := NewErrorFrame(4, "room is full")
	out, err := in.EncodeErrorFrame()
	require.NoError(t, err)

	var got ErrorFrame
	require.NoError(t, got.DecodeErrorFrame(out))
	require.Equal(t, byte(4), got.Code)
	require.Equal(t, "room is full", got.Message.String())
	require.EqualError(t, &got, "peer error 4: room is full")
}

func TestErrorFrameTruncatesMessage(t *testing.T) {
	in := NewErrorFrame(1, strings.Repeat("z", 400))
	require.Equal(t, 256, in.Message.Len())
	out, err := in.EncodeErrorFrame()
	require.NoError(t, err)
	require.Len(t, out, MinFrameSize+1+4+256)
}

func TestErrorFrameInvalidUTF8IsLazy(t *testing.T) {
	body := bytebuf.NewBuffer(0)
	body.WriteUint8(2)
	body.WriteUint32(2)
	body.WriteBytes([]byte{0xc3, 0x28})
	var got ErrorFrame
	require.NoError(t, got.DecodeErrorFrame(sealFrame(TypeError, 0, body.Bytes())))
	_, err := got.Message.Text()
	require.ErrorIs(t, err, faststring.ErrMalformedText)
}

func TestHandshakeRoundTrip(t *testing.T) {
	in := HandshakeFrame{
		Protocol:  1,
		MTU:       1400,
		TimeoutMS: 15000,
		Client:    faststring.FromString[[32]byte]("globed-client"),
	}
	out, err := in.EncodeHandshake()
	require.NoError(t, err)

	var got HandshakeFrame
	require.NoError(t, got.DecodeHandshake(out))
	require.Equal(t, in.Protocol, got.Protocol)
	require.Equal(t, in.MTU, got.MTU)
	require.Equal(t, in.TimeoutMS, got.TimeoutMS)
	require.True(t, got.Client.Equal(in.Client))
}

func TestRejectedFramesAreLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	var d DataFrame
	good, err := d.EncodeDataFrame([]byte("payload"), 0, nil)
	require.NoError(t, err)
	tampered := bytes.Clone(good)
	tampered[len(tampered)-1] ^= 0xff
	_, _, _, err = d.DecodeDataFrame(tampered)
	require.ErrorIs(t, err, ErrCRCMismatch)
	require.Equal(t, 1, logs.FilterMessage("frame crc mismatch").Len())
}
