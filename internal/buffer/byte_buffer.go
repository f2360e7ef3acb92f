// Package buffer provides the in-memory byte sink used by the buffered encoders.
package buffer

import "io"

// ByteBuffer is a growable byte slice that satisfies io.ByteWriter and io.Writer.
// Writes never fail.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

var (
	_ io.ByteWriter = (*ByteBuffer)(nil)
	_ io.Writer     = (*ByteBuffer)(nil)
)

// NewByteBuffer creates an empty ByteBuffer with the given capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Wrap returns a ByteBuffer that appends to dst.
func Wrap(dst []byte) *ByteBuffer {
	return &ByteBuffer{B: dst}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// WriteByte appends c. It always returns nil.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Write appends data. It always returns len(data), nil.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}
