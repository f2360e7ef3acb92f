// Package hash computes xxHash64 digests of encoded value streams.
package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Digest is a running xxHash64 that also counts the bytes it has seen.
type Digest struct {
	d *xxhash.Digest
	n int64
}

var _ io.Writer = (*Digest)(nil)

// NewDigest creates an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Write adds p to the digest. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	d.n += int64(len(p))
	return d.d.Write(p)
}

// Sum64 returns the current digest.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

// Len returns the number of bytes written.
func (d *Digest) Len() int64 {
	return d.n
}
