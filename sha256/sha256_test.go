package sha256

import (
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"hashes.mleku.dev/hex"
)

var seed = Sum256(by(`
The tao that can be told
is not the eternal Tao
The name that can be named
is not the eternal Name

The unnamable is the eternally real
Naming is the origin of all particular things
`))

var src = frand.NewCustom(seed[:], 32, 12)

func TestVectors(t *testing.T) {
	tests := []struct {
		input  st
		output st
	}{
		{
			"",
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			"The quick brown fox jumps over the lazy dog",
			"d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592",
		},
		{
			"The quick brown fox jumps over the lazy dog.",
			"ef537f25c895bfa782526529a9b63d97aa631564d5d789c2b765448c8635fb6c",
		},
	}
	for _, test := range tests {
		sum := Sum256(by(test.input))
		require.Equal(t, test.output, hex.Enc(sum[:]))
		want, err := hex.Dec(test.output)
		require.NoError(t, err)
		require.Equal(t, want, sum[:])
		// the engine must agree when fed one byte at a time
		d := New()
		for i := 0; i < len(test.input); i++ {
			d.Write(by{test.input[i]})
		}
		require.Equal(t, sum, d.CheckSum())
		require.Equal(t, sum[:], d.Sum(nil))
	}
}

func TestStreamingEquivalence(t *testing.T) {
	for trial := 0; trial < 64; trial++ {
		data := src.Bytes(src.Intn(1024) + 1)
		whole := Sum256(data)
		d := New()
		rem := data
		for len(rem) > 0 {
			n := src.Intn(len(rem)) + 1
			d.Write(rem[:n])
			rem = rem[n:]
		}
		require.Equal(t, whole, d.CheckSum(),
			"chunked digest diverged for length %d", len(data))
	}
}

func TestSimpleEquivalence(t *testing.T) {
	data := make(by, 256)
	for i := range data {
		data[i] = byte(i)
	}
	for i := 0; i <= 256; i++ {
		require.Equal(t, Sum256(data[:i]), sumSimple(data[:i]),
			"digests diverge at length %d", i)
	}
}

func TestSumDoesNotConsume(t *testing.T) {
	d := New()
	d.Write(by("partial "))
	first := d.CheckSum()
	require.Equal(t, first, d.CheckSum())
	d.Write(by("input"))
	require.Equal(t, Sum256(by("partial input")), d.CheckSum())
}

func TestReset(t *testing.T) {
	d := New()
	d.Write(src.Bytes(129))
	d.Reset()
	d.Write(by("abc"))
	require.Equal(t, Sum256(by("abc")), d.CheckSum())
}

func BenchmarkSum256_1k(b *testing.B) {
	data := src.Bytes(1024)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		Sum256(data)
	}
}

func BenchmarkEngineWrite64k(b *testing.B) {
	data := src.Bytes(65536)
	d := New()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		d.Write(data)
	}
}
