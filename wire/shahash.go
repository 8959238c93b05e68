package wire

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"massnet.org/rsha/crypto/sha256"
)

// HashSize is the array size used to store sha256 digests.  See Hash.
const HashSize = sha256.Size

// WordCount is the number of 32-bit words in a digest.
const WordCount = HashSize / 4

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a hash
// string that has too many characters.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)

// Hash is a sha256 digest in big-endian byte order.
type Hash [HashSize]byte

// Sum returns the sha256 digest of data as a Hash.
func Sum(data []byte) Hash {
	return Hash(sha256.Sum256(data))
}

// String returns the Hash as 64 lowercase hexadecimal digits.
func (hash Hash) String() string {
	return hex.EncodeToString(hash[:])
}

// Bytes returns the bytes which represent the hash as a byte slice.
//
// NOTE: This makes a copy of the bytes.  It is generally cheaper to just
// slice the hash directly.
func (hash *Hash) Bytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, hash[:])

	return newHash
}

// SetBytes sets the bytes which represent the hash.  An error is returned if
// the number of bytes passed in is not HashSize.
func (hash *Hash) SetBytes(newHash []byte) error {
	nhlen := len(newHash)
	if nhlen != HashSize {
		return fmt.Errorf("invalid sha length of %v, want %v", nhlen,
			HashSize)
	}
	copy(hash[:], newHash)

	return nil
}

// IsEqual returns true if target is the same as hash.
func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// Words returns the digest as eight big-endian words, the array form of the
// hash driver.
func (hash Hash) Words() [WordCount]uint32 {
	var words [WordCount]uint32
	for i := range words {
		words[i] = binary.BigEndian.Uint32(hash[i*4:])
	}
	return words
}

// NewHashFromWords builds a Hash from the array form of a digest.
func NewHashFromWords(words [WordCount]uint32) Hash {
	var hash Hash
	for i, w := range words {
		binary.BigEndian.PutUint32(hash[i*4:], w)
	}
	return hash
}

// NewHash returns a new Hash from a byte slice.  An error is returned if
// the number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, err
}

// NewHashFromStr creates a Hash from a hash string.  Missing leading
// characters result in zero padding at the front of the Hash.
func NewHashFromStr(hash string) (*Hash, error) {
	ret := new(Hash)
	err := Decode(ret, hash)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the hexadecimal string encoding of a Hash to a destination.
func Decode(dst *Hash, src string) error {
	// Return error if hash string is too long.
	if len(src) > MaxHashStringSize {
		return ErrHashStrSize
	}

	// Hex decoder expects the hash to be a multiple of two.  When not, pad
	// with a leading zero.
	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+len(src))
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}

	// Hex decode the source bytes to a temporary destination.
	var result Hash
	_, err := hex.Decode(result[HashSize-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return err
	}

	copy((*dst)[:], result[:])

	return nil
}
