package hex

import (
	"fmt"
	"math"
)

// Case selects which digit table an encode uses.
type Case no

const (
	Lower Case = iota
	Upper
)

const (
	lowerTable = "0123456789abcdef"
	upperTable = "0123456789ABCDEF"
)

func (c Case) table() st {
	if c == Upper {
		return upperTable
	}
	return lowerTable
}

// capacities a BufEncoder buffer may have: doublings of the digest and key
// lengths that get hex encoded in practice, plus 66 and 130 for serialized
// compressed and uncompressed public keys. A guard against handing the
// encoder an unrelated buffer, not a security boundary.
var capacities = [...]no{
	2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32,
	64, 66, 128, 130, 256, 512, 1024, 2048, 4096, 8192,
}

// BufEncoder hex-encodes bytes into a caller-owned, fixed-capacity buffer.
// It never allocates after construction; Clear makes the buffer reusable
// across any number of encode cycles. Bytes [0,pos) are always valid ASCII
// hex digits.
//
// Capacity violations are caller programming errors and panic rather than
// returning an error: buffer sizing is fixed at construction and is never
// influenced by the data being encoded.
type BufEncoder struct {
	buf by
	pos no
}

// NewBufEncoder wraps buf, which is usually a zeroed array on the caller's
// stack. The length of buf must be one of the supported capacities or the
// call panics.
func NewBufEncoder(buf by) (e *BufEncoder) {
	for _, c := range capacities {
		if len(buf) == c {
			return &BufEncoder{buf: buf}
		}
	}
	panic(fmt.Sprintf("hex: unsupported encode buffer capacity %d", len(buf)))
}

// PutByte appends the two digits of b in the given case. Panics if the
// buffer is full.
func (e *BufEncoder) PutByte(b byte, c Case) {
	if len(e.buf)-e.pos < 2 {
		panic("hex: encode buffer is full")
	}
	t := c.table()
	e.buf[e.pos] = t[b>>4]
	e.buf[e.pos+1] = t[b&0x0f]
	e.pos += 2
}

// PutBytes appends the digits of every byte of p in the given case. The
// required space is checked before anything is written, so a panic from an
// oversized p leaves the buffer untouched.
func (e *BufEncoder) PutBytes(p by, c Case) {
	if len(p) > math.MaxInt/2 {
		panic("hex: encoded length overflows")
	}
	if len(p)*2 > len(e.buf)-e.pos {
		panic(fmt.Sprintf("hex: %d bytes do not fit %d remaining in encode buffer",
			len(p), len(e.buf)-e.pos))
	}
	for _, b := range p {
		e.PutByte(b, c)
	}
}

// IsFull reports whether no more bytes can be written.
func (e *BufEncoder) IsFull() bo { return e.pos == len(e.buf) }

// String returns the written digits as text. Always valid ASCII because
// only hex digits are ever written.
func (e *BufEncoder) String() st { return st(e.buf[:e.pos]) }

// Clear empties the encoder so the buffer can be reused. The buffer
// contents are left as-is, only the cursor moves.
func (e *BufEncoder) Clear() { e.pos = 0 }
