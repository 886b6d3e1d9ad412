package bytebuf

// Encodable types serialize themselves into either buffer kind. Both
// methods must produce the same bytes.
type Encodable interface {
	Encode(buf *Buffer)
	EncodeFast(buf *FastBuffer)
}

// Decodable types rebuild themselves from a buffer or a stream.
type Decodable interface {
	Decode(buf *Buffer) error
	DecodeFrom(r *Reader) error
}

// KnownSize reports the worst-case encoded size of a value, used to size a
// FastBuffer before encoding several fields into it.
type KnownSize interface {
	EncodedSize() int
}

// EncodedSizeOf sums the worst-case sizes of vals.
func EncodedSizeOf(vals ...KnownSize) int {
	total := 0
	for _, v := range vals {
		total += v.EncodedSize()
	}
	return total
}

func (b *Buffer) WriteValue(v Encodable) { v.Encode(b) }

func (b *Buffer) ReadValue(v Decodable) error { return v.Decode(b) }

func (f *FastBuffer) WriteValue(v Encodable) { v.EncodeFast(f) }

func (r *Reader) ReadValue(v Decodable) error { return v.DecodeFrom(r) }
