package sha256_test

import (
	gosha256 "crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"massnet.org/rsha/crypto/sha256"
	"massnet.org/rsha/testutil"
)

type sha256Test struct {
	out string
	in  string
}

var golden = []sha256Test{
	{"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ""},
	{"ca978112ca1bbdcafac231b39a23dc4da786eff8147c4e72b9807785afee48bb", "a"},
	{"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", "abc"},
	{"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", "hello world"},
	{"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"},
	{"cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"},
}

func TestGolden(t *testing.T) {
	for _, g := range golden {
		assert.Equal(t, g.out, sha256.Hash([]byte(g.in)), "Hash(%q)", g.in)

		sum := sha256.Sum256([]byte(g.in))
		assert.Equal(t, g.out, hex.EncodeToString(sum[:]), "Sum256(%q)", g.in)

		h := sha256.New()
		h.Write([]byte(g.in))
		assert.Equal(t, g.out, fmt.Sprintf("%x", h.Sum(nil)), "New(%q)", g.in)
	}
}

func TestMillionA(t *testing.T) {
	testutil.SkipCI(t)

	got := sha256.Hash([]byte(strings.Repeat("a", 1000000)))
	assert.Equal(t, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0", got)
}

func TestHashArr(t *testing.T) {
	assert.Equal(t, [8]uint32{
		0xe3b0c442, 0x98fc1c14, 0x9afbf4c8, 0x996fb924,
		0x27ae41e4, 0x649b934c, 0xa495991b, 0x7852b855,
	}, sha256.HashArr(nil))

	for _, g := range golden {
		arr := sha256.HashArr([]byte(g.in))
		var sb strings.Builder
		for _, w := range arr {
			fmt.Fprintf(&sb, "%08x", w)
		}
		assert.Equal(t, g.out, sb.String(), "HashArr(%q)", g.in)
	}
}

func TestHashFormat(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 64; i++ {
		in := make([]byte, r.Intn(512))
		r.Read(in)

		s := sha256.Hash(in)
		require.Len(t, s, 64)
		assert.Equal(t, strings.ToLower(s), s)
		_, err := hex.DecodeString(s)
		assert.NoError(t, err)
	}
}

// Lengths around every block boundary must agree with the standard library.
func TestCrossCheck(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n <= 300; n++ {
		in := make([]byte, n)
		r.Read(in)

		want := gosha256.Sum256(in)
		assert.Equal(t, want, sha256.Sum256(in), "length %d", n)
	}
}

func TestBoundaries(t *testing.T) {
	for _, n := range []int{55, 56, 63, 64, 119, 120} {
		in := []byte(strings.Repeat("x", n))
		assert.Equal(t, gosha256.Sum256(in), sha256.Sum256(in), "length %d", n)
		assert.Zero(t, sha256.PaddedLen(n)%sha256.BlockSize, "length %d", n)
	}
}

func TestDeterministic(t *testing.T) {
	in := []byte("TestDeterministic")
	first := sha256.Hash(in)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, sha256.Hash(in))
	}
	assert.Equal(t, "TestDeterministic", string(in))
}

func TestAvalanche(t *testing.T) {
	in := []byte("hello world")
	base := sha256.HashArr(in)
	for i := 0; i < len(in)*8; i++ {
		flipped := append([]byte(nil), in...)
		flipped[i/8] ^= 1 << uint(i%8)
		assert.NotEqual(t, base, sha256.HashArr(flipped), "bit %d", i)
	}
	assert.NotEqual(t, sha256.Hash(nil), sha256.Hash([]byte{0}))
}

func TestConcurrent(t *testing.T) {
	inputs := make([][]byte, 32)
	for i := range inputs {
		inputs[i] = []byte(strings.Repeat("m", i*7))
	}

	results := make([]string, len(inputs))
	var wg sync.WaitGroup
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = sha256.Hash(inputs[i])
		}(i)
	}
	wg.Wait()

	for i, in := range inputs {
		assert.Equal(t, sha256.Hash(in), results[i])
	}
}

func BenchmarkHash8Bytes(b *testing.B) {
	benchmarkSize(b, 8)
}

func BenchmarkHash1K(b *testing.B) {
	benchmarkSize(b, 1024)
}

func BenchmarkHash8K(b *testing.B) {
	benchmarkSize(b, 8192)
}

func benchmarkSize(b *testing.B, size int) {
	buf := make([]byte, size)
	b.SetBytes(int64(size))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sha256.HashArr(buf)
	}
}
