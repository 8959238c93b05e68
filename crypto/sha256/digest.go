// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha256

import (
	"encoding/binary"
	"errors"
	"hash"
)

const (
	magic         = "rsha\x01"
	marshaledHead = len(magic) + 8
)

// digest buffers everything written to it. Compression only happens in Sum,
// over the padded form of the whole buffer.
type digest struct {
	buf []byte
}

// New returns a new hash.Hash computing the SHA-256 checksum. The returned
// value also implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler to save and restore the buffered message.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) MarshalBinary() ([]byte, error) {
	b := make([]byte, marshaledHead, marshaledHead+len(d.buf))
	copy(b, magic)
	binary.BigEndian.PutUint64(b[len(magic):], uint64(len(d.buf)))
	return append(b, d.buf...), nil
}

func (d *digest) UnmarshalBinary(data []byte) error {
	if len(data) < marshaledHead || string(data[:len(magic)]) != magic {
		return errors.New("crypto/sha256: invalid hash state identifier")
	}
	n := binary.BigEndian.Uint64(data[len(magic):marshaledHead])
	if uint64(len(data)-marshaledHead) != n {
		return errors.New("crypto/sha256: invalid hash state size")
	}
	d.buf = append(d.buf[:0], data[marshaledHead:]...)
	return nil
}

func (d *digest) Reset() { d.buf = d.buf[:0] }

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (nn int, err error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// Sum appends the current checksum to in. The buffered message is left
// untouched so the caller can keep writing and summing.
func (d *digest) Sum(in []byte) []byte {
	sum := Sum256(d.buf)
	return append(in, sum[:]...)
}
