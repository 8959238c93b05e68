// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4.
//
// The whole message is padded in memory before any block is compressed, so
// every entry point holds its complete input.
package sha256

import (
	"encoding/binary"
	"encoding/hex"
)

// Size is the size of a SHA-256 checksum in bytes.
const Size = 32

// BlockSize is the block size of SHA-256 in bytes.
const BlockSize = 64

const (
	chunk = BlockSize
	init0 = 0x6A09E667
	init1 = 0xBB67AE85
	init2 = 0x3C6EF372
	init3 = 0xA54FF53A
	init4 = 0x510E527F
	init5 = 0x9B05688C
	init6 = 0x1F83D9AB
	init7 = 0x5BE0CD19
)

// HashArr returns the SHA-256 digest of input as eight words, index 0 being
// the most significant.
func HashArr(input []byte) [8]uint32 {
	h := [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	block(&h, Pad(input))
	return h
}

// Hash returns the SHA-256 digest of input as 64 lowercase hex digits.
func Hash(input []byte) string {
	sum := Sum256(input)
	return hex.EncodeToString(sum[:])
}

// Sum256 returns the SHA-256 checksum of the data.
func Sum256(data []byte) [Size]byte {
	return wordsToBytes(HashArr(data))
}

func wordsToBytes(h [8]uint32) [Size]byte {
	var digest [Size]byte
	for i, v := range h {
		binary.BigEndian.PutUint32(digest[i*4:], v)
	}
	return digest
}
