// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package blocksort implements a reversible block-sorting compressor for a
// single, bounded block of bytes.
//
// Compression applies three stages in order: the Burrows-Wheeler transform
// (computed from a suffix array over the rotations of the block), a
// move-to-front recoding, and a run-length coding of the resulting ranks.
// Decompression applies the inverse stages in reverse order.
//
// The compressed form of a non-empty block is the primary index of the
// transform encoded as an unsigned varint, followed by a sequence of two byte
// (symbol, count) run tokens where 1 <= count <= 255. Runs longer than 255 are
// split across several tokens. The empty block compresses to an empty buffer.
// There is no magic number, checksum, or framing of multiple blocks.
//
// All functions are safe for concurrent use on independent blocks.
package blocksort

import (
	"fmt"

	"github.com/dsnet/blocksort/internal/errors"
)

const pkgName = "blocksort"

var (
	// ErrMalformedInput reports compressed data that could not have been
	// produced by Compress.
	ErrMalformedInput error = errors.Error{Code: errors.Corrupted, Pkg: pkgName}

	// ErrUnsupportedRunLength reports a run that does not fit in a single run
	// token while StrictRuns is set.
	ErrUnsupportedRunLength error = errors.Error{Code: errors.Unsupported, Pkg: pkgName}

	// ErrIndexConsistency reports that the inverse transform did not form a
	// closed chain over the block.
	ErrIndexConsistency error = errors.Error{Code: errors.Internal, Pkg: pkgName}

	// ErrBlockTooLarge reports a block that exceeds the configured maximum.
	ErrBlockTooLarge error = errors.Error{Code: errors.Invalid, Pkg: pkgName}

	// ErrClosed reports the use of a closed Reader or Writer.
	ErrClosed error = errors.Error{Code: errors.Closed, Pkg: pkgName}
)

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: pkgName, Msg: fmt.Sprintf(f, a...)}
}
