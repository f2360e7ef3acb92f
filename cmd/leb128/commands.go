package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arloliu/leb128"
	"github.com/arloliu/leb128/internal/compress"
	"github.com/arloliu/leb128/internal/hash"
)

// EncodeCmd prints the buffered encoding of each value.
type EncodeCmd struct {
	Type   string   `short:"t" enum:"u8,u16,u32,u64,i8,i16,i32,i64" default:"u64" help:"Integer type (${enum})."`
	Values []string `arg:"" name:"value" help:"Values to encode (decimal, 0x hex or 0o octal)."`
}

func (c *EncodeCmd) Run(logger *slog.Logger, out io.Writer) error {
	typ, err := lookupType(c.Type)
	if err != nil {
		return err
	}

	for _, text := range c.Values {
		enc, err := typ.encode(text)
		if err != nil {
			return err
		}
		logger.Debug("encoded", "type", typ.name, "value", text, "len", len(enc))
		fmt.Fprintf(out, "%s\t% x\n", text, enc)
	}

	return nil
}

// DecodeCmd decodes one value from hex input.
type DecodeCmd struct {
	Type   string `short:"t" enum:"u8,u16,u32,u64,i8,i16,i32,i64" default:"u64" help:"Integer type (${enum})."`
	Strict bool   `help:"Use the streaming decoder, which rejects non-canonical encodings."`
	Hex    string `arg:"" name:"hex" help:"Encoded bytes in hex, e.g. \"e5 8e 26\"."`
}

func (c *DecodeCmd) Run(logger *slog.Logger, out io.Writer) error {
	typ, err := lookupType(c.Type)
	if err != nil {
		return err
	}

	buf, err := parseHex(c.Hex)
	if err != nil {
		return err
	}

	var (
		text string
		n    int
	)
	if c.Strict {
		r := bytes.NewReader(buf)
		text, err = typ.read(r)
		n = len(buf) - r.Len()
	} else {
		text, n, err = typ.decode(buf)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", typ.name, err)
	}

	if n < len(buf) {
		logger.Warn("trailing bytes ignored", "consumed", n, "total", len(buf))
	}
	fmt.Fprintf(out, "%s\t(%d bytes)\n", text, n)

	return nil
}

// PackCmd writes values to a file through an optional compressor.
type PackCmd struct {
	Type        string   `short:"t" enum:"u8,u16,u32,u64,i8,i16,i32,i64" default:"u64" help:"Integer type (${enum})."`
	Compression string   `short:"c" enum:"none,zstd,s2,lz4" default:"none" help:"Stream compression (${enum})."`
	Out         string   `short:"o" required:"" type:"path" help:"Output file."`
	Values      []string `arg:"" name:"value" help:"Values to write."`
}

func (c *PackCmd) Run(logger *slog.Logger) (err error) {
	typ, err := lookupType(c.Type)
	if err != nil {
		return err
	}
	kind, err := compress.ParseKind(c.Compression)
	if err != nil {
		return err
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		_ = f.Close()
		if err != nil {
			_ = os.Remove(c.Out)
		}
	}()

	cw, err := compress.NewWriter(kind, f)
	if err != nil {
		return err
	}
	defer cw.Close()

	digest := hash.NewDigest()
	bw := bufio.NewWriter(io.MultiWriter(cw, digest))
	w := leb128.NewWriter(bw)

	for _, text := range c.Values {
		if _, err := typ.write(w, text); err != nil {
			return fmt.Errorf("write %q: %w", text, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("close %s stream: %w", kind, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	logger.Info("packed",
		"file", c.Out,
		"type", typ.name,
		"compression", kind.String(),
		"values", len(c.Values),
		"bytes", w.Count(),
		"xxhash", fmt.Sprintf("%016x", digest.Sum64()),
	)

	return nil
}

// DumpCmd prints every value in a file written by pack.
type DumpCmd struct {
	Type        string `short:"t" enum:"u8,u16,u32,u64,i8,i16,i32,i64" default:"u64" help:"Integer type (${enum})."`
	Compression string `short:"c" enum:"none,zstd,s2,lz4" default:"none" help:"Stream compression (${enum})."`
	File        string `arg:"" type:"existingfile" help:"Input file."`
}

func (c *DumpCmd) Run(logger *slog.Logger, out io.Writer) error {
	typ, err := lookupType(c.Type)
	if err != nil {
		return err
	}
	kind, err := compress.ParseKind(c.Compression)
	if err != nil {
		return err
	}

	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	cr, err := compress.NewReader(kind, f)
	if err != nil {
		return err
	}
	defer cr.Close()

	digest := hash.NewDigest()
	r, err := leb128.NewReader(io.TeeReader(cr, digest), leb128.WithBufferedSource())
	if err != nil {
		return err
	}

	count := 0
	for {
		offset := r.Offset()
		text, err := typ.next(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("dump %s: %w", c.File, err)
		}

		fmt.Fprintf(out, "%d\t%s\n", offset, text)
		count++
	}

	logger.Info("dumped",
		"file", c.File,
		"type", typ.name,
		"compression", kind.String(),
		"values", count,
		"bytes", digest.Len(),
		"xxhash", fmt.Sprintf("%016x", digest.Sum64()),
	)

	return nil
}
