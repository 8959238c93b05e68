package sha256

import "encoding/binary"

// lengthSize is the number of trailing bytes holding the message bit length.
const lengthSize = 8

// ZeroPadLen returns the number of zero BITS that follow the mandatory 1 bit
// so that the padded length is congruent to 448 modulo 512.
func ZeroPadLen(bitLen uint64) uint64 {
	return (447 - bitLen&511) & 511
}

// PaddedLen returns the length in bytes of the padded form of an n byte message.
func PaddedLen(n int) int {
	bitLen := uint64(n) << 3
	return int((bitLen + 1 + ZeroPadLen(bitLen) + lengthSize*8) >> 3)
}

// Pad returns msg followed by the 0x80 marker, the zero padding and the
// big-endian bit length. The result is a fresh slice; msg is not modified.
// A bit length that does not fit in 64 bits silently wraps.
func Pad(msg []byte) []byte {
	total := PaddedLen(len(msg))
	p := make([]byte, total)
	copy(p, msg)
	p[len(msg)] = 0x80
	binary.BigEndian.PutUint64(p[total-lengthSize:], uint64(len(msg))<<3)
	return p
}
