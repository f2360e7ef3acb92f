package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/leb128"
)

// intType binds one concrete integer type to the codec entry points the
// commands need. Values travel as decimal text so the commands stay untyped.
type intType struct {
	name   string
	encode func(text string) ([]byte, error)
	decode func(buf []byte) (string, int, error)
	read   func(r io.ByteReader) (string, error)
	write  func(w *leb128.Writer, text string) (int, error)
	next   func(r *leb128.Reader) (string, error)
}

var intTypes = map[string]intType{
	"u8":  unsignedType("u8", 8, (*leb128.Reader).ReadUint8),
	"u16": unsignedType("u16", 16, (*leb128.Reader).ReadUint16),
	"u32": unsignedType("u32", 32, (*leb128.Reader).ReadUint32),
	"u64": unsignedType("u64", 64, (*leb128.Reader).ReadUint64),
	"i8":  signedType("i8", 8, (*leb128.Reader).ReadInt8),
	"i16": signedType("i16", 16, (*leb128.Reader).ReadInt16),
	"i32": signedType("i32", 32, (*leb128.Reader).ReadInt32),
	"i64": signedType("i64", 64, (*leb128.Reader).ReadInt64),
}

func lookupType(name string) (intType, error) {
	typ, ok := intTypes[name]
	if !ok {
		return intType{}, fmt.Errorf("unknown integer type: %q", name)
	}

	return typ, nil
}

func unsignedType[T leb128.Unsigned](name string, bits int, next func(*leb128.Reader) (T, error)) intType {
	parse := func(text string) (T, error) {
		v, err := strconv.ParseUint(text, 0, bits)
		if err != nil {
			return 0, fmt.Errorf("parse %s: %w", name, err)
		}

		return T(v), nil
	}
	format := func(v T) string {
		return strconv.FormatUint(uint64(v), 10)
	}

	return intType{
		name: name,
		encode: func(text string) ([]byte, error) {
			v, err := parse(text)
			if err != nil {
				return nil, err
			}

			return leb128.EncodeUnsigned(v), nil
		},
		decode: func(buf []byte) (string, int, error) {
			v, n, err := leb128.DecodeUnsigned[T](buf)
			if err != nil {
				return "", 0, err
			}

			return format(v), n, nil
		},
		read: func(r io.ByteReader) (string, error) {
			v, err := leb128.ReadUnsigned[T](r)
			if err != nil {
				return "", err
			}

			return format(v), nil
		},
		write: func(w *leb128.Writer, text string) (int, error) {
			v, err := parse(text)
			if err != nil {
				return 0, err
			}

			return leb128.WriteUnsigned(w, v)
		},
		next: func(r *leb128.Reader) (string, error) {
			v, err := next(r)
			if err != nil {
				return "", err
			}

			return format(v), nil
		},
	}
}

func signedType[T leb128.Signed](name string, bits int, next func(*leb128.Reader) (T, error)) intType {
	parse := func(text string) (T, error) {
		v, err := strconv.ParseInt(text, 0, bits)
		if err != nil {
			return 0, fmt.Errorf("parse %s: %w", name, err)
		}

		return T(v), nil
	}
	format := func(v T) string {
		return strconv.FormatInt(int64(v), 10)
	}

	return intType{
		name: name,
		encode: func(text string) ([]byte, error) {
			v, err := parse(text)
			if err != nil {
				return nil, err
			}

			return leb128.EncodeSigned(v), nil
		},
		decode: func(buf []byte) (string, int, error) {
			v, n, err := leb128.DecodeSigned[T](buf)
			if err != nil {
				return "", 0, err
			}

			return format(v), n, nil
		},
		read: func(r io.ByteReader) (string, error) {
			v, err := leb128.ReadSigned[T](r)
			if err != nil {
				return "", err
			}

			return format(v), nil
		},
		write: func(w *leb128.Writer, text string) (int, error) {
			v, err := parse(text)
			if err != nil {
				return 0, err
			}

			return leb128.WriteSigned(w, v)
		},
		next: func(r *leb128.Reader) (string, error) {
			v, err := next(r)
			if err != nil {
				return "", err
			}

			return format(v), nil
		},
	}
}

// parseHex accepts "e58e26", "e5 8e 26", "0xe5,0x8e,0x26" and similar forms.
func parseHex(text string) ([]byte, error) {
	cleaned := strings.NewReplacer(" ", "", ",", "", ":", "", "0x", "", "0X", "").Replace(text)

	buf, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input %q: %w", text, err)
	}

	return buf, nil
}
