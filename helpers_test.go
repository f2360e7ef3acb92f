package leb128

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsignedSamples returns boundary values of T: the extremes and every power of
// two with its neighbours.
func unsignedSamples[T Unsigned]() []T {
	maxV := ^T(0)
	samples := []T{0, 1, 2, 3, maxV - 3, maxV - 2, maxV - 1, maxV}
	for s := uint(1); s < bitWidth[T](); s++ {
		p := T(1) << s
		samples = append(samples, p-1, p, p+1)
	}

	return samples
}

// signedSamples returns boundary values of T: the extremes, zero, and every
// power of two with its neighbours on both sides of zero.
func signedSamples[T Signed]() []T {
	minV := T(-1) << (bitWidth[T]() - 1)
	maxV := ^minV
	samples := []T{minV, minV + 1, minV + 2, minV + 3, -1, 0, 1, maxV - 3, maxV - 2, maxV - 1, maxV}
	for s := uint(1); s < bitWidth[T]()-1; s++ {
		p := T(1) << s
		samples = append(samples, p-1, p, p+1, -p-1, -p, -p+1)
	}

	return samples
}

func requireUnsignedRoundTrip[T Unsigned](t *testing.T, v T) []byte {
	t.Helper()

	enc := EncodeUnsigned(v)
	require.NotEmpty(t, enc)
	require.LessOrEqual(t, len(enc), MaxLen[T](), "value %d", v)
	require.Equal(t, SizeUnsigned(v), len(enc), "value %d", v)

	got, n, err := DecodeUnsigned[T](enc)
	require.NoError(t, err, "value %d", v)
	require.Equal(t, v, got)
	require.Equal(t, len(enc), n)

	var buf bytes.Buffer
	wn, err := WriteUnsigned(&buf, v)
	require.NoError(t, err)
	require.Equal(t, len(enc), wn)
	require.Equal(t, enc, buf.Bytes())

	sgot, err := ReadUnsigned[T](&buf)
	require.NoError(t, err, "value %d encoded % x", v, enc)
	require.Equal(t, v, sgot)
	require.Zero(t, buf.Len(), "streaming decode must consume exactly the encoding")

	return enc
}

func requireSignedRoundTrip[T Signed](t *testing.T, v T) []byte {
	t.Helper()

	enc := EncodeSigned(v)
	require.NotEmpty(t, enc)
	require.LessOrEqual(t, len(enc), MaxLen[T](), "value %d", v)
	require.Equal(t, SizeSigned(v), len(enc), "value %d", v)

	got, n, err := DecodeSigned[T](enc)
	require.NoError(t, err, "value %d", v)
	require.Equal(t, v, got)
	require.Equal(t, len(enc), n)

	var buf bytes.Buffer
	wn, err := WriteSigned(&buf, v)
	require.NoError(t, err)
	require.Equal(t, len(enc), wn)
	require.Equal(t, enc, buf.Bytes())

	sgot, err := ReadSigned[T](&buf)
	require.NoError(t, err, "value %d encoded % x", v, enc)
	require.Equal(t, v, sgot)
	require.Zero(t, buf.Len(), "streaming decode must consume exactly the encoding")

	return enc
}

// errWriter fails every write.
type errWriter struct {
	err error
}

func (w *errWriter) Write([]byte) (int, error) {
	return 0, w.err
}

// limitWriter accepts limit bytes and then fails.
type limitWriter struct {
	limit int
	data  []byte
}

var errWriterFull = errors.New("writer full")

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(w.data)+len(p) > w.limit {
		return 0, errWriterFull
	}
	w.data = append(w.data, p...)

	return len(p), nil
}

// zeroWriter reports success without consuming anything.
type zeroWriter struct{}

func (zeroWriter) Write([]byte) (int, error) {
	return 0, nil
}

// errByteReader returns data and then err.
type errByteReader struct {
	data []byte
	err  error
}

func (r *errByteReader) ReadByte() (byte, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	b := r.data[0]
	r.data = r.data[1:]

	return b, nil
}
