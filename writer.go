// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package blocksort

import (
	"io"

	"github.com/dsnet/blocksort/internal/errors"
)

type WriterConfig struct {
	Config

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// Writer gathers a whole block in memory and emits its compressed form on
// Close. Writing more than the configured block size fails with
// ErrBlockTooLarge; the Writer does not split its input into several blocks.
type Writer struct {
	InputOffset  int64 // Total number of bytes issued to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer

	wr    io.Writer
	codec *Codec
	buf   []byte
	err   error
}

// NewWriter returns a new Writer that compresses into w.
// If conf is nil, then default configuration values are used.
func NewWriter(w io.Writer, conf *WriterConfig) (*Writer, error) {
	var c Config
	if conf != nil {
		c = conf.Config
	}
	zw := &Writer{codec: NewCodec(&c)}
	zw.Reset(w)
	return zw, nil
}

func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	if len(zw.buf)+len(buf) > zw.codec.maxSize {
		zw.err = errorf(errors.Invalid, "block exceeds limit of %d bytes", zw.codec.maxSize)
		return 0, zw.err
	}
	zw.buf = append(zw.buf, buf...)
	zw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Close compresses the buffered block and writes it to the underlying
// io.Writer. It does not close the underlying io.Writer.
func (zw *Writer) Close() error {
	if zw.err == ErrClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}

	out, err := zw.codec.Compress(zw.buf)
	if err != nil {
		zw.err = err
		return err
	}
	n, err := zw.wr.Write(out)
	zw.OutputOffset += int64(n)
	if err == nil && n < len(out) {
		err = io.ErrShortWrite
	}
	if err != nil {
		zw.err = err
		return err
	}

	zw.err = ErrClosed
	zw.wr = nil // Release reference to underlying Writer
	zw.buf = nil
	return nil
}

// Reset discards the Writer's state and makes it equivalent to the result
// of a call to NewWriter with the same configuration, but writing to w.
func (zw *Writer) Reset(w io.Writer) error {
	*zw = Writer{
		wr:    w,
		codec: zw.codec,
		buf:   zw.buf[:0],
	}
	return nil
}
