// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

// Int returns a non-negative pseudo-random 62-bit integer.
func (r *Rand) Int() int {
	r.Encrypt(r.blk[:], r.blk[:])
	return int(binary.LittleEndian.Uint64(r.blk[:]) >> 2)
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// Letters returns n random lowercase ASCII letters.
func (r *Rand) Letters(n int) []byte {
	b := r.Bytes(n)
	for i := range b {
		b[i] = 'a' + b[i]%26
	}
	return b
}

// Repeats returns n bytes where most of the data is a copy of some earlier
// section of the output. Literal stretches are random while copies reach back
// up to a few KiB, which gives the block sort long shared contexts.
func (r *Rand) Repeats(n int) []byte {
	b := make([]byte, 0, n)
	for len(b) < n {
		l := 4 << uint(r.Intn(7)) // 4..256
		l += r.Intn(l)
		if len(b) == 0 || r.Intn(4) == 0 {
			b = append(b, r.Bytes(l)...)
			continue
		}
		d := 1 + r.Intn(minInt(len(b), 4096))
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}
	return b[:n]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
