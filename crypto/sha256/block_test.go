package sha256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedule(t *testing.T) {
	var w [64]uint32
	schedule(&w, Pad([]byte("abc")))

	// first words of the FIPS 180-4 "abc" example
	assert.Equal(t, uint32(0x61626380), w[0])
	for i := 1; i < 15; i++ {
		assert.Equal(t, uint32(0), w[i], "w[%d]", i)
	}
	assert.Equal(t, uint32(0x00000018), w[15])
	assert.Equal(t, uint32(0x61626380), w[16])
	assert.Equal(t, uint32(0x000f0000), w[17])
	assert.Equal(t, uint32(0x12b1edeb), w[63])
}

func TestSigma(t *testing.T) {
	assert.Equal(t, uint32(0x80000000), rotr(1, 1))
	assert.Equal(t, uint32(0x00000001), rotr(0x80000000, 31))
	assert.Equal(t, uint32(0), sigma0(0))
	assert.Equal(t, uint32(0), sigma1(0))
	assert.Equal(t, uint32(0x02004000), sigma0(1))
	assert.Equal(t, uint32(0x0000a000), sigma1(1))
	assert.Equal(t, uint32(0x40080400), bigSigma0(1))
	assert.Equal(t, uint32(0x04200080), bigSigma1(1))
}

func TestChMaj(t *testing.T) {
	assert.Equal(t, uint32(0xff00ff00), ch(0xffff0000, 0xff00ff00, 0x0000ff00))
	assert.Equal(t, uint32(0x0000ffff), ch(0, 0xffffffff, 0x0000ffff))
	assert.Equal(t, uint32(0xf0f0f0f0), maj(0xf0f0f0f0, 0xf0f0f0f0, 0x0f0f0f0f))
	assert.Equal(t, uint32(0x00ff0000), maj(0x00ff0000, 0x00ff00ff, 0xffff0000))
}

func TestBlockSingle(t *testing.T) {
	h := [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	block(&h, Pad([]byte("abc")))
	assert.Equal(t, [8]uint32{
		0xba7816bf, 0x8f01cfea, 0x414140de, 0x5dae2223,
		0xb00361a3, 0x96177a9c, 0xb410ff61, 0xf20015ad,
	}, h)
}

func TestBlockIgnoresPartialChunk(t *testing.T) {
	p := Pad([]byte("abc"))
	h1 := [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	h2 := h1
	block(&h1, p)
	block(&h2, append(p, 1, 2, 3))
	assert.Equal(t, h1, h2)

	h3 := [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	block(&h3, p[:chunk-1])
	assert.Equal(t, [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}, h3)
}

func TestBlockChaining(t *testing.T) {
	// compressing two blocks at once equals compressing them one by one
	p := Pad([]byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"))
	assert.Len(t, p, 128)

	whole := [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	block(&whole, p)

	split := [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	block(&split, p[:chunk])
	block(&split, p[chunk:])

	assert.Equal(t, whole, split)
	assert.Equal(t, uint32(0x248d6a61), whole[0])
	assert.Equal(t, uint32(0x19db06c1), whole[7])
}
