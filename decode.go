package leb128

import "github.com/arloliu/leb128/internal/wide"

// DecodeUnsigned decodes an unsigned LEB128 value from the start of buf.
//
// The payload groups are accumulated into a 128-bit intermediate. Decoding stops at
// the first byte with a clear continuation bit; any bytes after it are ignored.
// Non-canonical encodings (for example [0x81 0x00] for 1) are accepted.
//
// Parameters:
//   - buf: Input bytes
//
// Returns:
//   - T: Decoded value (zero on error)
//   - int: Number of bytes consumed (zero on error)
//   - error: ErrTooLongBytes if the accumulator width is reached, ErrOverflow if the
//     value does not fit T, ErrTruncated if buf ends without a terminating byte
func DecodeUnsigned[T Unsigned](buf []byte) (T, int, error) {
	acc, n, _, err := accumulate(buf)
	if err != nil {
		return 0, 0, err
	}

	if !acc.FitsUnsigned(bitWidth[T]()) {
		return 0, 0, overflowError[T]()
	}

	return T(acc.Lo), n, nil
}

// DecodeSigned decodes a signed LEB128 value from the start of buf.
//
// If bit 6 of the terminating byte is set, the intermediate is sign-extended above
// the consumed bits before it is narrowed to T.
//
// Parameters:
//   - buf: Input bytes
//
// Returns:
//   - T: Decoded value (zero on error)
//   - int: Number of bytes consumed (zero on error)
//   - error: ErrTooLongBytes, ErrOverflow or ErrTruncated, as for DecodeUnsigned
func DecodeSigned[T Signed](buf []byte) (T, int, error) {
	acc, n, shift, err := accumulate(buf)
	if err != nil {
		return 0, 0, err
	}

	if buf[n-1]&signBit != 0 {
		acc = acc.Or(wide.OnesFrom(shift))
	}

	if !acc.FitsSigned(bitWidth[T]()) {
		return 0, 0, overflowError[T]()
	}

	return T(int64(acc.Lo)), n, nil //nolint:gosec
}

// accumulate folds the payload groups of buf into a 128-bit value up to and
// including the first terminating byte. It returns the value, the bytes consumed
// and the total shift.
func accumulate(buf []byte) (wide.Uint128, int, uint, error) {
	var (
		acc   wide.Uint128
		shift uint
	)

	for i, b := range buf {
		acc = acc.OrShifted(uint64(b&payloadMask), shift)
		shift += 7

		if shift >= wide.Bits {
			return wide.Uint128{}, 0, 0, ErrTooLongBytes
		}

		if b&continuationBit == 0 {
			return acc, i + 1, shift, nil
		}
	}

	return wide.Uint128{}, 0, 0, ErrTruncated
}
