package massutil

import (
	"fmt"
	"hash"

	"golang.org/x/crypto/ripemd160"

	"massnet.org/rsha/crypto/sha256"
)

// Kind names a digest built on top of sha256.
type Kind string

const (
	// KindSha256 is sha256(data).
	KindSha256 Kind = "sha256"
	// KindHash256 is sha256(sha256(data)).
	KindHash256 Kind = "sha256d"
	// KindHash160 is ripemd160(sha256(data)).
	KindHash160 Kind = "hash160"
)

// Kinds lists every supported Kind.
var Kinds = []Kind{KindSha256, KindHash256, KindHash160}

// ParseKind converts a name into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown digest kind %q, want one of %v", s, Kinds)
}

// Sum returns the digest of data.
func (k Kind) Sum(data []byte) []byte {
	switch k {
	case KindHash256:
		return Hash256(data)
	case KindHash160:
		return Hash160(data)
	default:
		return Sha256(data)
	}
}

// FromSha256 derives the digest from sum, an already computed sha256 of the
// data, so callers hashing large inputs only read them once.
func (k Kind) FromSha256(sum []byte) []byte {
	switch k {
	case KindHash256:
		return Sha256(sum)
	case KindHash160:
		return Ripemd160(sum)
	default:
		return append([]byte(nil), sum...)
	}
}

// Calculate the hash of hasher over buf.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Hash160 returns ripemd160(sha256(b)).
func Hash160(data []byte) []byte {
	return Ripemd160(Sha256(data))
}

// Hash256 returns sha256(sha256(data))
func Hash256(data []byte) []byte {
	return Sha256(Sha256(data))
}

// Sha256 returns sha256(data)
func Sha256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// Ripemd160 return ripemd160(data)
func Ripemd160(data []byte) []byte {
	return calcHash(data, ripemd160.New())
}
