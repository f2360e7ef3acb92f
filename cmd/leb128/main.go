// Command leb128 encodes, decodes and inspects LEB128 integers.
//
// Usage:
//
//	leb128 encode -t i32 -- -123456
//	leb128 decode -t u32 "e5 8e 26"
//	leb128 decode -t u8 --strict 8100
//	leb128 pack -t u64 -c zstd -o values.bin 1 300 624485
//	leb128 dump -t u64 -c zstd values.bin
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// CLI is the root command.
type CLI struct {
	Verbose int `short:"v" type:"counter" help:"Log verbosity (-v info, -vv debug)."`

	Encode EncodeCmd `cmd:"" help:"Encode values and print their bytes as hex."`
	Decode DecodeCmd `cmd:"" help:"Decode one value from hex bytes."`
	Pack   PackCmd   `cmd:"" help:"Write values to a file as consecutive LEB128 integers."`
	Dump   DumpCmd   `cmd:"" help:"Print every LEB128 integer stored in a file."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("leb128"),
		kong.Description("Encode, decode and inspect LEB128 integers."),
		kong.UsageOnError(),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	logger := newLogger(os.Stderr, cli.Verbose)
	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}

// newLogger maps verbosity 0, 1 and 2+ to warn, info and debug.
func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}
