// Package compress wraps LEB128 value streams in optional stream compression.
//
// Supported algorithms:
//   - None: bytes pass through unchanged
//   - Zstd: klauspost/compress/zstd frames
//   - S2: klauspost/compress/s2 stream format
//   - LZ4: pierrec/lz4 frame format
//
// All readers and writers are streaming, so values can be decoded one at a
// time without holding the whole payload in memory.
package compress

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Kind identifies a stream compression algorithm.
type Kind uint8

const (
	None Kind = 0x1 // None represents no compression.
	Zstd Kind = 0x2 // Zstd represents Zstandard compression.
	S2   Kind = 0x3 // S2 represents S2 compression.
	LZ4  Kind = 0x4 // LZ4 represents LZ4 compression.
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ParseKind returns the Kind named by s, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return None, nil
	case "zstd":
		return Zstd, nil
	case "s2":
		return S2, nil
	case "lz4":
		return LZ4, nil
	default:
		return 0, fmt.Errorf("unsupported compression: %q", s)
	}
}

// NewReader returns a reader that decompresses r with the given algorithm.
// Closing the returned reader does not close r.
func NewReader(kind Kind, r io.Reader) (io.ReadCloser, error) {
	switch kind {
	case None:
		return io.NopCloser(r), nil
	case Zstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}

		return dec.IOReadCloser(), nil
	case S2:
		return io.NopCloser(s2.NewReader(r)), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", kind)
	}
}

// NewWriter returns a writer that compresses into w with the given algorithm.
// The returned writer must be closed to flush the final frame; closing it does
// not close w.
func NewWriter(kind Kind, w io.Writer) (io.WriteCloser, error) {
	switch kind {
	case None:
		return nopWriteCloser{w}, nil
	case Zstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}

		return enc, nil
	case S2:
		return s2.NewWriter(w), nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", kind)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
