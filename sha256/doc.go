// Package sha256 implements the SHA256 hash algorithm as defined in FIPS
// 180-4, as a plain Go streaming engine.
//
// Beyond the usual New/Write/Sum surface this package exposes the engine
// midstate: the running compression state together with the number of bytes
// hashed so far. A midstate is only meaningful at 64 byte block boundaries
// and lets a caller resume hashing from a previously computed, block-aligned
// prefix without paying for its compression again. The main use of this is
// BIP-340 style tagged hashes, which always begin with the same fixed 64
// byte prefix sha256(tag)||sha256(tag); see HashTag.
//
// The compression function has no data-dependent branches or memory
// indexing, so hashing confidential content is constant-time to the extent
// the rotate and boolean operations of the platform allow.
package sha256
