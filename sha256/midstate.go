package sha256

import (
	"encoding/binary"
	"fmt"
)

// Midstate is the unfinalized state of an engine: the 8 compression words
// serialized big-endian plus the number of bytes hashed to reach them. It is
// only extractable, and only meaningful, at 64 byte block boundaries.
//
// A midstate is not a hash. Used as one it is trivially vulnerable to length
// extension. Its purpose is to cache the compression work of a fixed,
// block-aligned prefix, most usefully the sha256(tag)||sha256(tag) preamble
// of BIP-340 tagged hashes.
type Midstate struct {
	b           [Size]byte
	bytesHashed uint64
}

// NewMidstate builds a Midstate from a serialized state and the byte count
// that produced it. It returns a *MidstateError if bytesHashed is not a
// multiple of BlockSize, never a silently rounded value.
func NewMidstate(state [Size]byte, bytesHashed uint64) (m Midstate, err er) {
	if bytesHashed%BlockSize != 0 {
		err = &MidstateError{BytesHashed: bytesHashed}
		return
	}
	m = Midstate{b: state, bytesHashed: bytesHashed}
	return
}

// AsParts deconstructs the Midstate into its serialized state words and the
// number of bytes hashed.
func (m Midstate) AsParts() (state [Size]byte, bytesHashed uint64) {
	return m.b, m.bytesHashed
}

// String renders the midstate bytes as lowercase hex with the byte count
// appended, for logs.
func (m Midstate) String() st {
	return fmt.Sprintf("%x/%d", m.b, m.bytesHashed)
}

// CanExtractMidstate reports whether the engine sits on a block boundary,
// the only positions where Midstate succeeds.
func (d *Digest) CanExtractMidstate() bo { return d.len%BlockSize == 0 }

// Midstate extracts the engine's midstate. Off a block boundary it returns a
// *MidstateError carrying the offending byte count so the caller can see
// exactly how far past the boundary the engine is.
func (d *Digest) Midstate() (m Midstate, err er) {
	if !d.CanExtractMidstate() {
		err = &MidstateError{BytesHashed: d.len}
		return
	}
	m = d.midstate()
	return
}

// midstate serializes without the boundary check. The buffer is ignored,
// callers must know it is empty.
func (d *Digest) midstate() (m Midstate) {
	for i, v := range d.h {
		binary.BigEndian.PutUint32(m.b[i*4:], v)
	}
	m.bytesHashed = d.len
	return
}

// HashTag computes the midstate of an engine that has absorbed sha256(tag)
// repeated to fill one block, with no padding applied. Seeding engines from
// the result makes every digest equal to
//
//	sha256(sha256(tag) || sha256(tag) || message)
//
// while the preamble's compression is paid once, typically in a package
// level variable.
func HashTag(tag by) (m Midstate) {
	th := Sum256(tag)
	var buf [BlockSize]byte
	for i := range buf {
		buf[i] = th[i%Size]
	}
	d := New()
	d.Write(buf[:])
	return d.midstate()
}

// MidstateError reports a midstate extraction or construction attempted off
// a block boundary.
type MidstateError struct {
	// BytesHashed is the invalid byte count that was rejected.
	BytesHashed uint64
}

func (e *MidstateError) Error() st {
	return fmt.Sprintf("invalid number of bytes hashed %d (should have been a multiple of %d)",
		e.BytesHashed, BlockSize)
}
