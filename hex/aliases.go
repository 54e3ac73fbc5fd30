// Package hex bundles the hexadecimal encoding tools used across this
// module: short aliases over the standard library codec, append-style
// helpers using the SIMD accelerated xhex codec, and an allocation-free
// BufEncoder for rendering digests into a caller-owned buffer.
package hex

import (
	"encoding/hex"

	"github.com/templexxx/xhex"

	"hashes.mleku.dev/chk"
)

var Enc = hex.EncodeToString
var EncBytes = hex.Encode
var Dec = hex.DecodeString
var DecBytes = hex.Decode

var DecLen = hex.DecodedLen

type InvalidByteError = hex.InvalidByteError

// EncAppend appends the hex encoding of src to dst.
func EncAppend(dst, src by) (b by) {
	l := len(dst)
	dst = append(dst, make(by, len(src)*2)...)
	xhex.Encode(dst[l:], src)
	return dst
}

// DecAppend appends the decoded bytes of the hex in src to dst.
func DecAppend(dst, src by) (b by, err er) {
	l := len(dst)
	b = dst
	b = append(b, make(by, len(src)/2)...)
	if err = xhex.Decode(b[l:], src); chk.E(err) {
		return
	}
	return
}
