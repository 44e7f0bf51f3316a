// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of tables and limits shared by the
// block-sorting stages.
//
// For performance reasons, these packages lack strong error checking and
// require that the caller to ensure that strict invariants are kept.
package internal

const (
	// MaxRunLen is the largest count a single run token can carry.
	MaxRunLen = 255

	// DefaultMaxBlockSize bounds the size of a block when no other limit
	// is configured.
	DefaultMaxBlockSize = 64 << 20
)

// IdentityLUT returns the input key itself. It is the initial ordering of
// the move-to-front recency list.
var IdentityLUT [256]byte

func init() {
	for i := range IdentityLUT {
		IdentityLUT[i] = uint8(i)
	}
}
