// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package blocksort

// The forward transform sorts all rotations of the block and emits the byte
// that cyclically precedes each rotation. The index of the row holding the
// unrotated block is returned as the primary index; the inverse cannot be
// computed without it.
//
// The suffix array is built by prefix doubling (see internal/suffix). Equal
// rotations only occur in periodic blocks and are ordered by start index. The
// inverse assigns equal bytes to sorted rows in left to right order. In a
// periodic block this links the rows into cycles of one period rather than a
// single chain over all n rows. Following the cycle from the primary row for
// n steps still reproduces the block, which is a repetition of that period.
// A chain that does not return to its start after n steps means the input is
// inconsistent.
//
// References:
//	Burrows M and Wheeler D, "A block sorting lossless data compression algorithm"
//	https://github.com/cscott/compressjs/blob/master/lib/BWT.js

import (
	"github.com/dsnet/blocksort/internal/errors"
	"github.com/dsnet/blocksort/internal/suffix"
)

type burrowsWheelerTransform struct {
	buf []byte
	sa  []int
	tt  []int
}

// Encode applies the forward transform to buf in place and returns the
// primary index. The primary index of an empty block is -1.
func (bwt *burrowsWheelerTransform) Encode(buf []byte) (ptr int) {
	if len(buf) == 0 {
		return -1
	}

	bwt.buf = append(bwt.buf[:0], buf...)
	if cap(bwt.sa) < len(buf) {
		bwt.sa = make([]int, len(buf))
	}
	sa := bwt.sa[:len(buf)]
	suffix.ComputeSA(bwt.buf, sa)
	return transformBlock(buf, bwt.buf, sa)
}

// transformBlock stores in dst the byte preceding each rotation listed in sa
// and returns the row of the rotation starting at offset 0.
func transformBlock(dst, src []byte, sa []int) (ptr int) {
	for i, idx := range sa {
		if idx == 0 {
			ptr = i
			idx = len(src)
		}
		dst[i] = src[idx-1]
	}
	return ptr
}

// Decode applies the inverse transform to buf in place using the primary
// index returned by Encode.
func (bwt *burrowsWheelerTransform) Decode(buf []byte, ptr int) error {
	if len(buf) == 0 {
		return nil
	}
	if ptr < 0 || ptr >= len(buf) {
		return errorf(errors.Corrupted, "primary index %d out of range [0, %d)", ptr, len(buf))
	}

	var c [256]int
	for _, v := range buf {
		c[v]++
	}

	var sum int
	for i, v := range c {
		sum += v
		c[i] = sum - v
	}

	if cap(bwt.tt) < len(buf) {
		bwt.tt = make([]int, len(buf))
	}
	tt := bwt.tt[:len(buf)]
	for i, b := range buf {
		tt[c[b]] = i
		c[b]++
	}

	bwt.buf = append(bwt.buf[:0], buf...)
	start := tt[ptr]
	tPos := start
	for i := range buf {
		buf[i] = bwt.buf[tPos]
		tPos = tt[tPos]
	}
	if tPos != start {
		return errorf(errors.Internal, "inverse chain from row %d does not close after %d steps", ptr, len(buf))
	}
	return nil
}
