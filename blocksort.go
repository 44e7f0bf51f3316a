// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package blocksort

import (
	"encoding/binary"

	"github.com/dsnet/blocksort/internal"
	"github.com/dsnet/blocksort/internal/errors"
)

// DefaultMaxBlockSize is the block limit used when Config.MaxBlockSize is
// not positive.
const DefaultMaxBlockSize = internal.DefaultMaxBlockSize

// Config configures a Codec. The zero value selects the defaults.
type Config struct {
	// MaxBlockSize is the largest block accepted by Compress and produced by
	// Decompress. Values less than or equal to zero select DefaultMaxBlockSize.
	MaxBlockSize int

	// StrictRuns makes Compress fail with ErrUnsupportedRunLength when a run
	// of ranks does not fit in a single token, instead of splitting the run.
	StrictRuns bool

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// Codec compresses and decompresses single blocks.
// A Codec holds no state between calls.
type Codec struct {
	maxSize int
	strict  bool
}

// NewCodec returns a Codec with the given configuration.
// If conf is nil, then default configuration values are used.
func NewCodec(conf *Config) *Codec {
	c := &Codec{maxSize: DefaultMaxBlockSize}
	if conf != nil {
		if conf.MaxBlockSize > 0 {
			c.maxSize = conf.MaxBlockSize
		}
		c.strict = conf.StrictRuns
	}
	return c
}

// MaxBlockSize reports the largest block the codec handles.
func (c *Codec) MaxBlockSize() int { return c.maxSize }

// Compress returns the compressed form of block. The input is not modified.
func (c *Codec) Compress(block []byte) ([]byte, error) {
	if len(block) > c.maxSize {
		return nil, errorf(errors.Invalid, "block of %d bytes exceeds limit of %d", len(block), c.maxSize)
	}
	if len(block) == 0 {
		return []byte{}, nil
	}

	var (
		bwt burrowsWheelerTransform
		mtf moveToFront
	)
	rle := runLengthEncoding{Strict: c.strict}

	buf := append([]byte(nil), block...)
	ptr := bwt.Encode(buf)
	mtf.Init(internal.IdentityLUT[:])
	mtf.Encode(buf)
	toks, err := rle.Encode(buf)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, binary.MaxVarintLen64+2*len(toks))
	out = binary.AppendUvarint(out, uint64(ptr))
	return appendTokens(out, toks), nil
}

// Decompress returns the block that Compress turned into buf.
func (c *Codec) Decompress(buf []byte) ([]byte, error) {
	if len(buf) == 0 {
		return []byte{}, nil
	}

	ptr, n := binary.Uvarint(buf)
	if n <= 0 {
		return nil, errorf(errors.Corrupted, "invalid primary index header")
	}
	toks, err := parseTokens(buf[n:])
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, errorf(errors.Corrupted, "primary index without any run tokens")
	}

	var (
		bwt burrowsWheelerTransform
		mtf moveToFront
	)
	rle := runLengthEncoding{MaxSize: c.maxSize}

	vals, err := rle.Decode(toks)
	if err != nil {
		return nil, err
	}
	if ptr >= uint64(len(vals)) {
		return nil, errorf(errors.Corrupted, "primary index %d out of range [0, %d)", ptr, len(vals))
	}
	mtf.Init(internal.IdentityLUT[:])
	if err := mtf.Decode(vals); err != nil {
		return nil, err
	}
	if err := bwt.Decode(vals, int(ptr)); err != nil {
		return nil, err
	}
	return vals, nil
}

var defaultCodec = NewCodec(nil)

// Compress compresses block using the default configuration.
func Compress(block []byte) ([]byte, error) {
	return defaultCodec.Compress(block)
}

// Decompress decompresses buf using the default configuration.
func Decompress(buf []byte) ([]byte, error) {
	return defaultCodec.Decompress(buf)
}
