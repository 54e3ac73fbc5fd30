// Package hashes is a small, dependency-light implementation of the SHA256
// hash function as a streaming engine with block-boundary midstate
// extraction and restoration, and a buffered hexadecimal encoder for
// rendering digests without allocation.
//
// The interesting parts live in the sha256 and hex packages; this root
// package only carries the version string for tools built from this module.
package hashes

import (
	_ "embed"
)

//go:embed version
var Version string
