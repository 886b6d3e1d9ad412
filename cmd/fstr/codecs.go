package main

import (
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/rawbytedev/faststring"
	"github.com/rawbytedev/faststring/bytebuf"
)

// decoded is the JSON report printed by the decode command.
type decoded struct {
	Capacity int    `json:"capacity"`
	Length   int    `json:"length"`
	Valid    bool   `json:"valid"`
	Text     string `json:"text"`
	Hex      string `json:"hex"`
	Trailing int    `json:"trailing,omitempty"`
}

// codec binds the commands to one String instantiation.
type codec struct {
	capacity int
	value    func(text string, truncate bool) (bytebuf.Encodable, error)
	decode   func(payload []byte) (decoded, error)
}

func newCodec[B faststring.Storage]() codec {
	return codec{
		capacity: faststring.Capacity[B](),
		value: func(text string, truncate bool) (bytebuf.Encodable, error) {
			var s faststring.String[B]
			if truncate {
				s.ExtendSafe(text)
				return &s, nil
			}
			s, err := faststring.TryFromString[B](text)
			if err != nil {
				return nil, err
			}
			return &s, nil
		},
		decode: func(payload []byte) (decoded, error) {
			buf := bytebuf.BufferFrom(payload)
			s, err := faststring.Decode[B](buf)
			if err != nil {
				return decoded{}, err
			}
			return decoded{
				Capacity: s.Cap(),
				Length:   s.Len(),
				Valid:    s.Valid(),
				Text:     s.String(),
				Hex:      hex.EncodeToString(s.Bytes()),
				Trailing: buf.Remaining(),
			}, nil
		},
	}
}

var codecs = map[int]codec{}

func init() {
	for _, c := range []codec{
		newCodec[[4]byte](),
		newCodec[[8]byte](),
		newCodec[[16]byte](),
		newCodec[[32]byte](),
		newCodec[[64]byte](),
		newCodec[[128]byte](),
		newCodec[[256]byte](),
		newCodec[[300]byte](),
		newCodec[[512]byte](),
		newCodec[[1024]byte](),
		newCodec[[4096]byte](),
	} {
		codecs[c.capacity] = c
	}
}

func codecFor(capacity int) (codec, error) {
	c, ok := codecs[capacity]
	if !ok {
		return codec{}, fmt.Errorf("unsupported capacity %d (supported: %v)", capacity, capacities())
	}
	return c, nil
}

func capacities() []int {
	out := make([]int, 0, len(codecs))
	for n := range codecs {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
