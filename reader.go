// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package blocksort

import (
	"encoding/binary"
	"io"

	"github.com/dsnet/blocksort/internal/errors"
)

type ReaderConfig struct {
	Config

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// Reader decompresses a single block. The first call to Read consumes the
// whole underlying io.Reader.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd      io.Reader
	codec   *Codec
	buf     []byte
	decoded bool
	err     error
}

// NewReader returns a new Reader that decompresses from r.
// If conf is nil, then default configuration values are used.
func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	var c Config
	if conf != nil {
		c = conf.Config
	}
	zr := &Reader{codec: NewCodec(&c)}
	zr.Reset(r)
	return zr, nil
}

func (zr *Reader) Read(buf []byte) (int, error) {
	if zr.err != nil {
		return 0, zr.err
	}
	if !zr.decoded {
		func() {
			defer errors.Recover(&zr.err)
			zr.decodeBlock()
		}()
		if zr.err != nil {
			return 0, zr.err
		}
	}
	if len(zr.buf) == 0 {
		zr.err = io.EOF
		return 0, zr.err
	}
	n := copy(buf, zr.buf)
	zr.buf = zr.buf[n:]
	zr.OutputOffset += int64(n)
	return n, nil
}

// decodeBlock reads the entire compressed block and decompresses it.
// Every output byte costs at most two input bytes, which bounds the input.
// Failures are raised with errors.Panic.
func (zr *Reader) decodeBlock() {
	limit := int64(binary.MaxVarintLen64) + 2*int64(zr.codec.maxSize)
	in, err := io.ReadAll(io.LimitReader(zr.rd, limit+1))
	zr.InputOffset += int64(len(in))
	if err != nil {
		errors.Panic(err)
	}
	if int64(len(in)) > limit {
		errors.Panic(errorf(errors.Corrupted, "compressed block exceeds %d bytes", limit))
	}
	if zr.buf, err = zr.codec.Decompress(in); err != nil {
		errors.Panic(err)
	}
	zr.decoded = true
}

// Close ends the Reader. It does not close the underlying io.Reader.
func (zr *Reader) Close() error {
	if zr.err == ErrClosed {
		return nil
	}
	if zr.err != nil && zr.err != io.EOF {
		return zr.err
	}
	zr.err = ErrClosed
	zr.rd = nil // Release reference to underlying Reader
	zr.buf = nil
	return nil
}

// Reset discards the Reader's state and makes it equivalent to the result
// of a call to NewReader with the same configuration, but reading from r.
func (zr *Reader) Reset(r io.Reader) error {
	*zr = Reader{rd: r, codec: zr.codec}
	return nil
}
