// Package leb128 encodes and decodes LEB128 (Little Endian Base 128) integers.
//
// LEB128 stores an integer as a sequence of bytes, least significant group first.
// Each byte carries 7 payload bits in its low bits and a continuation flag in its
// high bit. Signed values use two's complement and the final byte's bit 6 as the
// sign. The format is used by DWARF debug info, WebAssembly modules and several
// other binary formats.
//
// The target width and signedness come from the type parameter. All of
// uint8, uint16, uint32, uint64 and their signed counterparts are supported.
//
// # Profiles
//
// The package offers two profiles that share the same bit algorithm.
//
// The buffered profile works on byte slices:
//
//	buf := leb128.EncodeUnsigned(uint32(624485)) // e5 8e 26
//	v, n, err := leb128.DecodeUnsigned[uint32](buf)
//
// The buffered decoder accumulates into a 128-bit intermediate and narrows the
// result at the end. It accepts non-canonical (over-long) encodings as long as
// the decoded value fits the target type.
//
// The streaming profile writes to an io.Writer and reads from an io.ByteReader,
// one byte at a time:
//
//	_, err := leb128.WriteSigned(w, int64(-2))
//	v, err := leb128.ReadSigned[int64](r)
//
// The streaming decoder accumulates at the exact target width. It rejects any
// byte that would set bits past the target width and any non-canonical encoding
// with ErrMalformed.
//
// # Errors
//
// Buffered decoding fails with ErrTooLongBytes, ErrOverflow or ErrTruncated.
// Streaming decoding fails with ErrMalformed or an *IOError wrapping the
// underlying read error. No partial value is returned on error.
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use on distinct buffers,
// readers and writers. Reader and Writer values are not safe for concurrent use.
package leb128

import "unsafe"

const (
	continuationBit = 0x80
	payloadMask     = 0x7f
	signBit         = 0x40
)

// Maximum encoded lengths per width: ceil(width / 7).
const (
	MaxLen8  = 2
	MaxLen16 = 3
	MaxLen32 = 5
	MaxLen64 = 10
)

// Unsigned is the set of unsigned integer types the codec handles.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Signed is the set of signed integer types the codec handles.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Integer is any integer type the codec handles.
type Integer interface {
	Unsigned | Signed
}

// MaxLen returns the maximum number of bytes an encoded T can occupy.
func MaxLen[T Integer]() int {
	return int(bitWidth[T]()+6) / 7
}

func bitWidth[T Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}
