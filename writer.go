package leb128

import "io"

// Writer encodes LEB128 values to an io.Writer and counts the bytes written.
//
// Bytes reach the underlying writer as soon as they are produced; wrap dst in a
// bufio.Writer to batch them.
type Writer struct {
	dst   io.Writer
	bw    io.ByteWriter
	count int64
	buf   [1]byte
}

var (
	_ io.ByteWriter = (*Writer)(nil)
	_ io.Writer     = (*Writer)(nil)
)

// NewWriter creates a Writer over dst.
func NewWriter(dst io.Writer) *Writer {
	w := &Writer{dst: dst}
	if bw, ok := dst.(io.ByteWriter); ok {
		w.bw = bw
	}

	return w
}

// WriteByte writes a single byte.
func (w *Writer) WriteByte(c byte) error {
	if w.bw != nil {
		if err := w.bw.WriteByte(c); err != nil {
			return err
		}
		w.count++

		return nil
	}

	w.buf[0] = c
	n, err := w.dst.Write(w.buf[:])
	w.count += int64(n)
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}

	return nil
}

// Write writes p unchanged, for mixing raw bytes with encoded values.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.dst.Write(p)
	w.count += int64(n)

	return n, err
}

// Count returns the number of bytes written so far.
func (w *Writer) Count() int64 {
	return w.count
}

// WriteUint8 writes the unsigned encoding of v and returns its length.
func (w *Writer) WriteUint8(v uint8) (int, error) { return WriteUnsigned(w, v) }

// WriteUint16 writes the unsigned encoding of v and returns its length.
func (w *Writer) WriteUint16(v uint16) (int, error) { return WriteUnsigned(w, v) }

// WriteUint32 writes the unsigned encoding of v and returns its length.
func (w *Writer) WriteUint32(v uint32) (int, error) { return WriteUnsigned(w, v) }

// WriteUint64 writes the unsigned encoding of v and returns its length.
func (w *Writer) WriteUint64(v uint64) (int, error) { return WriteUnsigned(w, v) }

// WriteInt8 writes the signed encoding of v and returns its length.
func (w *Writer) WriteInt8(v int8) (int, error) { return WriteSigned(w, v) }

// WriteInt16 writes the signed encoding of v and returns its length.
func (w *Writer) WriteInt16(v int16) (int, error) { return WriteSigned(w, v) }

// WriteInt32 writes the signed encoding of v and returns its length.
func (w *Writer) WriteInt32(v int32) (int, error) { return WriteSigned(w, v) }

// WriteInt64 writes the signed encoding of v and returns its length.
func (w *Writer) WriteInt64(v int64) (int, error) { return WriteSigned(w, v) }
