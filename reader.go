package leb128

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/leb128/internal/options"
)

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*Reader]

// WithBaseOffset sets the offset reported for the first byte read. It is useful
// when the stream starts in the middle of a larger file or section.
func WithBaseOffset(offset int64) ReaderOption {
	return options.New(func(r *Reader) error {
		if offset < 0 {
			return fmt.Errorf("invalid base offset: %d", offset)
		}
		r.offset = offset

		return nil
	})
}

// WithBufferedSource wraps the source in a bufio.Reader. The Reader then reads
// ahead of the value it decodes, so the source must not be shared.
func WithBufferedSource() ReaderOption {
	return options.NoError(func(r *Reader) {
		br := bufio.NewReader(r.src)
		r.src = br
		r.br = br
	})
}

// Reader decodes LEB128 values from an io.Reader with the streaming decoders.
//
// Each byte is fetched with its own read, so the Reader never consumes bytes past
// the end of the value it decodes. Wrap slow sources in a bufio.Reader if that
// property is not needed, or pass WithBufferedSource. Decode errors carry the offset at which the failing
// value started and still match ErrMalformed and *IOError.
type Reader struct {
	src    io.Reader
	br     io.ByteReader
	offset int64
	buf    [1]byte
}

var _ io.ByteReader = (*Reader)(nil)

// NewReader creates a Reader over src.
//
// Parameters:
//   - src: Underlying source
//   - opts: Optional settings (see WithBaseOffset)
//
// Returns:
//   - *Reader: The reader
//   - error: An error if an option is invalid
func NewReader(src io.Reader, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{src: src}
	if br, ok := src.(io.ByteReader); ok {
		r.br = br
	}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// ReadByte reads a single byte and advances the offset.
func (r *Reader) ReadByte() (byte, error) {
	if r.br != nil {
		b, err := r.br.ReadByte()
		if err != nil {
			return 0, err
		}
		r.offset++

		return b, nil
	}

	if _, err := io.ReadFull(r.src, r.buf[:]); err != nil {
		return 0, err
	}
	r.offset++

	return r.buf[0], nil
}

// Offset returns the offset of the next byte to be read.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadUint8 decodes an unsigned value as uint8.
func (r *Reader) ReadUint8() (uint8, error) { return readAt(r, ReadUnsigned[uint8]) }

// ReadUint16 decodes an unsigned value as uint16.
func (r *Reader) ReadUint16() (uint16, error) { return readAt(r, ReadUnsigned[uint16]) }

// ReadUint32 decodes an unsigned value as uint32.
func (r *Reader) ReadUint32() (uint32, error) { return readAt(r, ReadUnsigned[uint32]) }

// ReadUint64 decodes an unsigned value as uint64.
func (r *Reader) ReadUint64() (uint64, error) { return readAt(r, ReadUnsigned[uint64]) }

// ReadInt8 decodes a signed value as int8.
func (r *Reader) ReadInt8() (int8, error) { return readAt(r, ReadSigned[int8]) }

// ReadInt16 decodes a signed value as int16.
func (r *Reader) ReadInt16() (int16, error) { return readAt(r, ReadSigned[int16]) }

// ReadInt32 decodes a signed value as int32.
func (r *Reader) ReadInt32() (int32, error) { return readAt(r, ReadSigned[int32]) }

// ReadInt64 decodes a signed value as int64.
func (r *Reader) ReadInt64() (int64, error) { return readAt(r, ReadSigned[int64]) }

func readAt[T Integer](r *Reader, read func(io.ByteReader) (T, error)) (T, error) {
	start := r.offset

	v, err := read(r)
	if err != nil {
		// A clean end of stream between values is passed through untouched.
		var ioErr *IOError
		if errors.As(err, &ioErr) && ioErr.Err == io.EOF {
			return 0, err
		}

		return 0, fmt.Errorf("offset %d: %w", start, err)
	}

	return v, nil
}
