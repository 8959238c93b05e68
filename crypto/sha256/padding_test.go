package sha256

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroPadLen(t *testing.T) {
	tests := []struct {
		bytes int
		bits  uint64
	}{
		{0, 447},
		{1, 439},
		{3, 423},
		{55, 7},
		{56, 511},
		{63, 455},
		{64, 447},
		{119, 7},
		{120, 511},
	}

	for _, test := range tests {
		got := ZeroPadLen(uint64(test.bytes) << 3)
		assert.Equal(t, test.bits, got, "length %d", test.bytes)
		// the marker bit plus the zero bits always fill whole bytes
		assert.Equal(t, uint64(0), (got+1)%8, "length %d", test.bytes)
	}
}

func TestPaddedLen(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 64},
		{1, 64},
		{55, 64},
		{56, 128},
		{63, 128},
		{64, 128},
		{119, 128},
		{120, 192},
		{1000, 1024},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, PaddedLen(test.n), "length %d", test.n)
	}
}

func TestPadEmpty(t *testing.T) {
	p := Pad(nil)
	require.Len(t, p, 64)
	assert.Equal(t, byte(0x80), p[0])
	assert.Equal(t, make([]byte, 63), p[1:])
}

func TestPadLayout(t *testing.T) {
	for n := 0; n <= 300; n++ {
		msg := bytes.Repeat([]byte{0xa5}, n)
		p := Pad(msg)

		require.True(t, len(p) > 0 && len(p)%64 == 0, "length %d: padded to %d", n, len(p))
		zeros := len(p) - n - 1 - lengthSize
		require.True(t, zeros >= 0 && zeros <= 63, "length %d: %d zero bytes", n, zeros)

		assert.Equal(t, msg, p[:n])
		assert.Equal(t, byte(0x80), p[n])
		assert.Equal(t, make([]byte, zeros), p[n+1:n+1+zeros])
		assert.Equal(t, uint64(n)*8, binary.BigEndian.Uint64(p[len(p)-lengthSize:]))
	}
}

func TestPadDoesNotAliasInput(t *testing.T) {
	msg := make([]byte, 3, 64)
	copy(msg, "abc")
	p := Pad(msg)
	p[0] = 'x'
	assert.Equal(t, "abc", string(msg))
	assert.Equal(t, 3, len(msg))
}
