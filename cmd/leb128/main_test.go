package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/leb128"
)

func testLogger(w io.Writer) *slog.Logger {
	return newLogger(w, 2)
}

func TestEncodeCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &EncodeCmd{Type: "i8", Values: []string{"64", "-64", "-65", "127"}}

	require.NoError(t, cmd.Run(testLogger(io.Discard), &out))
	require.Equal(t, "64\tc0 00\n-64\t40\n-65\tbf 7f\n127\tff 00\n", out.String())
}

func TestEncodeCmd_OutOfRange(t *testing.T) {
	cmd := &EncodeCmd{Type: "u8", Values: []string{"256"}}

	err := cmd.Run(testLogger(io.Discard), io.Discard)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse u8")
}

func TestDecodeCmd(t *testing.T) {
	tests := []struct {
		name   string
		cmd    DecodeCmd
		want   string
		errIs  error
		logHas string
	}{
		{name: "unsigned", cmd: DecodeCmd{Type: "u32", Hex: "e5 8e 26"}, want: "624485\t(3 bytes)\n"},
		{name: "signed", cmd: DecodeCmd{Type: "i64", Hex: "0x9b,0xf1,0x59"}, want: "-624485\t(3 bytes)\n"},
		{name: "non-canonical accepted", cmd: DecodeCmd{Type: "u8", Hex: "8100"}, want: "1\t(2 bytes)\n"},
		{name: "non-canonical strict", cmd: DecodeCmd{Type: "u8", Hex: "8100", Strict: true}, errIs: leb128.ErrMalformed},
		{name: "overflow", cmd: DecodeCmd{Type: "u8", Hex: "8002"}, errIs: leb128.ErrOverflow},
		{name: "strict", cmd: DecodeCmd{Type: "u8", Hex: "ff01", Strict: true}, want: "255\t(2 bytes)\n"},
		{name: "trailing", cmd: DecodeCmd{Type: "u16", Hex: "7f 01"}, want: "127\t(1 bytes)\n", logHas: "trailing bytes ignored"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, logs bytes.Buffer

			err := tt.cmd.Run(testLogger(&logs), &out)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, out.String())
			if tt.logHas != "" {
				require.Contains(t, logs.String(), tt.logHas)
			}
		})
	}
}

func TestDecodeCmd_InvalidHex(t *testing.T) {
	cmd := &DecodeCmd{Type: "u8", Hex: "zz"}
	err := cmd.Run(testLogger(io.Discard), io.Discard)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid hex input")
}

func TestPackDump_RoundTrip(t *testing.T) {
	values := []string{"0", "1", "-1", "300", "-123456", "9223372036854775807", "-9223372036854775808"}
	want := "0\t0\n1\t1\n2\t-1\n3\t300\n5\t-123456\n8\t9223372036854775807\n18\t-9223372036854775808\n"

	for _, compression := range []string{"none", "zstd", "s2", "lz4"} {
		t.Run(compression, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "values.bin")

			var packLogs bytes.Buffer
			pack := &PackCmd{Type: "i64", Compression: compression, Out: path, Values: values}
			require.NoError(t, pack.Run(testLogger(&packLogs)))
			require.Contains(t, packLogs.String(), "packed")
			require.Contains(t, packLogs.String(), "values=7")
			require.Contains(t, packLogs.String(), "bytes=28")

			var out, dumpLogs bytes.Buffer
			dump := &DumpCmd{Type: "i64", Compression: compression, File: path}
			require.NoError(t, dump.Run(testLogger(&dumpLogs), &out))
			require.Equal(t, want, out.String())
			require.Contains(t, dumpLogs.String(), "values=7")
			require.Contains(t, dumpLogs.String(), "bytes=28")
		})
	}
}

func TestPack_FailedWriteRemovesOutput(t *testing.T) {
	for _, compression := range []string{"none", "zstd"} {
		t.Run(compression, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "partial.bin")

			pack := &PackCmd{Type: "u8", Compression: compression, Out: path, Values: []string{"1", "2", "256"}}
			err := pack.Run(testLogger(io.Discard))
			require.Error(t, err)
			require.Contains(t, err.Error(), `write "256"`)

			_, statErr := os.Stat(path)
			require.ErrorIs(t, statErr, os.ErrNotExist)
		})
	}
}

func TestDump_Truncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x80, 0x80}, 0o600))

	var out bytes.Buffer
	dump := &DumpCmd{Type: "u32", Compression: "none", File: path}
	err := dump.Run(testLogger(io.Discard), &out)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Contains(t, err.Error(), "offset 1")
	require.Equal(t, "0\t1\n", out.String())
}

func TestCLI_Parse(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("leb128"))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"-v", "-v", "decode", "-t", "i16", "--strict", "ff7e"})
	require.NoError(t, err)
	require.Equal(t, "decode <hex>", ctx.Command())
	require.Equal(t, 2, cli.Verbose)
	require.Equal(t, "i16", cli.Decode.Type)
	require.True(t, cli.Decode.Strict)
	require.Equal(t, "ff7e", cli.Decode.Hex)

	_, err = parser.Parse([]string{"encode", "-t", "u128", "1"})
	require.Error(t, err)
}
