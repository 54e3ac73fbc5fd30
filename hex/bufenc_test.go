package hex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"hashes.mleku.dev/sha256"
)

func TestBufEncoderEmpty(t *testing.T) {
	e := NewBufEncoder(make(by, 2))
	require.Equal(t, "", e.String())
	require.False(t, e.IsFull())
}

func TestPutByteExactBuf(t *testing.T) {
	e := NewBufEncoder(make(by, 2))
	e.PutByte(42, Lower)
	require.Equal(t, "2a", e.String())
	require.True(t, e.IsFull())
	e.Clear()
	require.False(t, e.IsFull())
	e.PutByte(42, Upper)
	require.Equal(t, "2A", e.String())
	require.True(t, e.IsFull())
}

func TestPutByteOversizedBuf(t *testing.T) {
	e := NewBufEncoder(make(by, 4))
	e.PutByte(42, Lower)
	require.Equal(t, "2a", e.String())
	require.False(t, e.IsFull())
	e.PutByte(255, Lower)
	require.Equal(t, "2aff", e.String())
	require.True(t, e.IsFull())
	e.Clear()
	e.PutByte(42, Upper)
	e.PutByte(255, Upper)
	require.Equal(t, "2AFF", e.String())
}

func TestPutByteWhenFull(t *testing.T) {
	e := NewBufEncoder(make(by, 2))
	e.PutByte(1, Lower)
	require.Panics(t, func() { e.PutByte(2, Lower) })
}

func TestParityWithFmt(t *testing.T) {
	e := NewBufEncoder(make(by, 2))
	for i := 0; i <= 255; i++ {
		e.PutByte(byte(i), Lower)
		require.Equal(t, fmt.Sprintf("%02x", i), e.String())
		e.Clear()
		e.PutByte(byte(i), Upper)
		require.Equal(t, fmt.Sprintf("%02X", i), e.String())
		e.Clear()
	}
}

func TestPutBytesAllOrNothing(t *testing.T) {
	e := NewBufEncoder(make(by, 8))
	e.PutBytes(by{0xde, 0xad}, Lower)
	require.Equal(t, "dead", e.String())
	// three more bytes cannot fit the remaining four digits and must not
	// touch the buffer
	require.Panics(t, func() { e.PutBytes(by{1, 2, 3}, Lower) })
	require.Equal(t, "dead", e.String())
	e.PutBytes(by{0xbe, 0xef}, Lower)
	require.Equal(t, "deadbeef", e.String())
	require.True(t, e.IsFull())
}

func TestUnsupportedCapacity(t *testing.T) {
	require.Panics(t, func() { NewBufEncoder(make(by, 3)) })
	require.Panics(t, func() { NewBufEncoder(nil) })
	require.Panics(t, func() { NewBufEncoder(make(by, 34)) })
}

func TestDigestRoundTrip(t *testing.T) {
	sum := sha256.Sum256(by("some arbitrary bytes"))
	e := NewBufEncoder(make(by, 2*sha256.Size))
	e.PutBytes(sum[:], Lower)
	decoded, err := Dec(e.String())
	require.NoError(t, err)
	require.Equal(t, sum[:], decoded)
	var appended by
	appended, err = DecAppend(nil, by(e.String()))
	require.NoError(t, err)
	require.Equal(t, sum[:], appended)
}

func TestEncAppendMatchesEnc(t *testing.T) {
	sum := sha256.Sum256(by("encode me"))
	require.Equal(t, Enc(sum[:]), st(EncAppend(nil, sum[:])))
}
