package leb128

import (
	"io"

	"github.com/arloliu/leb128/internal/buffer"
)

// encodeUnsigned writes the canonical encoding of v to w one byte at a time and
// returns the number of bytes written.
func encodeUnsigned[T Unsigned](w io.ByteWriter, v T) (int, error) {
	n := 0
	for {
		b := byte(v & payloadMask)
		v >>= 7
		if v != 0 {
			b |= continuationBit
		}

		if err := w.WriteByte(b); err != nil {
			return n, err
		}
		n++

		if b&continuationBit == 0 {
			return n, nil
		}
	}
}

// encodeSigned is encodeUnsigned with an arithmetic shift. It stops once the
// remaining value is all sign bits and bit 6 of the last group agrees with it.
func encodeSigned[T Signed](w io.ByteWriter, v T) (int, error) {
	n := 0
	for {
		b := byte(v & payloadMask)
		v >>= 7

		done := (v == 0 && b&signBit == 0) || (v == -1 && b&signBit != 0)
		if !done {
			b |= continuationBit
		}

		if err := w.WriteByte(b); err != nil {
			return n, err
		}
		n++

		if done {
			return n, nil
		}
	}
}

// EncodeUnsigned returns the canonical LEB128 encoding of v in a newly allocated slice.
//
// The result is between 1 and MaxLen[T]() bytes long. Zero encodes as a single 0x00 byte.
//
// Example:
//
//	leb128.EncodeUnsigned(uint8(128)) // [0x80 0x01]
func EncodeUnsigned[T Unsigned](v T) []byte {
	bb := buffer.NewByteBuffer(MaxLen[T]())
	_, _ = encodeUnsigned(bb, v)

	return bb.Bytes()
}

// EncodeSigned returns the canonical signed LEB128 encoding of v in a newly allocated slice.
//
// Example:
//
//	leb128.EncodeSigned(int8(-65)) // [0xbf 0x7f]
func EncodeSigned[T Signed](v T) []byte {
	bb := buffer.NewByteBuffer(MaxLen[T]())
	_, _ = encodeSigned(bb, v)

	return bb.Bytes()
}

// AppendUnsigned appends the canonical LEB128 encoding of v to dst and returns
// the extended slice.
func AppendUnsigned[T Unsigned](dst []byte, v T) []byte {
	bb := buffer.Wrap(dst)
	_, _ = encodeUnsigned(bb, v)

	return bb.Bytes()
}

// AppendSigned appends the canonical signed LEB128 encoding of v to dst and
// returns the extended slice.
func AppendSigned[T Signed](dst []byte, v T) []byte {
	bb := buffer.Wrap(dst)
	_, _ = encodeSigned(bb, v)

	return bb.Bytes()
}

// WriteUnsigned writes the canonical LEB128 encoding of v to w, one byte per write.
//
// Parameters:
//   - w: Destination sink. If it implements io.ByteWriter, WriteByte is used.
//   - v: Value to encode
//
// Returns:
//   - int: Number of bytes written, also on error
//   - error: *IOError wrapping the sink's error
func WriteUnsigned[T Unsigned](w io.Writer, v T) (int, error) {
	n, err := encodeUnsigned(newByteSink(w), v)
	if err != nil {
		return n, &IOError{Op: "write", Err: err}
	}

	return n, nil
}

// WriteSigned writes the canonical signed LEB128 encoding of v to w, one byte per write.
//
// Parameters:
//   - w: Destination sink. If it implements io.ByteWriter, WriteByte is used.
//   - v: Value to encode
//
// Returns:
//   - int: Number of bytes written, also on error
//   - error: *IOError wrapping the sink's error
func WriteSigned[T Signed](w io.Writer, v T) (int, error) {
	n, err := encodeSigned(newByteSink(w), v)
	if err != nil {
		return n, &IOError{Op: "write", Err: err}
	}

	return n, nil
}

// byteSink adapts an io.Writer to io.ByteWriter with single-byte writes.
type byteSink struct {
	w   io.Writer
	buf [1]byte
}

func newByteSink(w io.Writer) io.ByteWriter {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw
	}

	return &byteSink{w: w}
}

func (s *byteSink) WriteByte(c byte) error {
	s.buf[0] = c

	n, err := s.w.Write(s.buf[:])
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}

	return nil
}
