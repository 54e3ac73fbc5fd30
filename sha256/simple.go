package sha256

import (
	"encoding/binary"
	"math/bits"
)

// sumSimple hashes data in one pass with no streaming buffer: the padded
// message is materialized up front and compressed block by block with its
// own copy of the round schedule. It is deliberately independent of the
// engine so the two can cross-check each other; tests assert they agree on
// every input length. Not reachable from production code.
func sumSimple(data by) (digest [Size]byte) {
	msg := make(by, 0, len(data)+BlockSize+8)
	msg = append(msg, data...)
	msg = append(msg, 0x80)
	for len(msg)%BlockSize != 56 {
		msg = append(msg, 0)
	}
	msg = binary.BigEndian.AppendUint64(msg, uint64(len(data))*8)
	h := [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	var w [64]uint32
	for off := 0; off < len(msg); off += BlockSize {
		blk := msg[off : off+BlockSize]
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(blk[i*4:])
		}
		for i := 16; i < 64; i++ {
			s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
			s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
			w[i] = w[i-16] + s0 + w[i-7] + s1
		}
		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for i := 0; i < 64; i++ {
			s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
			ch := (e & f) ^ (^e & g)
			t1 := hh + s1 + ch + _K[i] + w[i]
			s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
			maj := (a & b) ^ (a & c) ^ (b & c)
			t2 := s0 + maj
			hh, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
		}
		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh
	}
	for i, v := range h {
		binary.BigEndian.PutUint32(digest[i*4:], v)
	}
	return
}
