// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/andybalholm/brotli"
	"github.com/dsnet/blocksort"
	"github.com/dsnet/golib/errs"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Registered codec names.
const (
	NameBlockSort = "bs"
	NameGzip      = "gz"
	NameZstd      = "zstd"
	NameXZ        = "xz"
	NameBrotli    = "br"
	NameSnappy    = "snappy"
	NameLZ4       = "lz4"
)

// BlockConfig configures the block-sorting codec used by the registry.
var BlockConfig blocksort.Config

func init() {
	// The block codec has no levels; lvl is ignored.
	RegisterEncoder(NameBlockSort,
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := blocksort.NewWriter(w, &blocksort.WriterConfig{Config: BlockConfig})
			errs.Panic(err)
			return zw
		})
	RegisterDecoder(NameBlockSort,
		func(r io.Reader) io.ReadCloser {
			zr, err := blocksort.NewReader(r, &blocksort.ReaderConfig{Config: BlockConfig})
			errs.Panic(err)
			return zr
		})

	RegisterEncoder(NameGzip,
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := gzip.NewWriterLevel(w, lvl)
			errs.Panic(err)
			return zw
		})
	RegisterDecoder(NameGzip,
		func(r io.Reader) io.ReadCloser {
			zr, err := gzip.NewReader(r)
			errs.Panic(err)
			return zr
		})

	RegisterEncoder(NameZstd,
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(lvl)))
			errs.Panic(err)
			return zw
		})
	RegisterDecoder(NameZstd,
		func(r io.Reader) io.ReadCloser {
			zr, err := zstd.NewReader(r)
			errs.Panic(err)
			return zr.IOReadCloser()
		})

	// The xz package exposes no compression levels.
	RegisterEncoder(NameXZ,
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := xz.NewWriter(w)
			errs.Panic(err)
			return zw
		})
	RegisterDecoder(NameXZ,
		func(r io.Reader) io.ReadCloser {
			zr, err := xz.NewReader(r)
			errs.Panic(err)
			return io.NopCloser(zr)
		})

	RegisterEncoder(NameBrotli,
		func(w io.Writer, lvl int) io.WriteCloser {
			return brotli.NewWriterLevel(w, lvl)
		})
	RegisterDecoder(NameBrotli,
		func(r io.Reader) io.ReadCloser {
			return io.NopCloser(brotli.NewReader(r))
		})

	RegisterEncoder(NameSnappy,
		func(w io.Writer, lvl int) io.WriteCloser {
			return snappy.NewBufferedWriter(w)
		})
	RegisterDecoder(NameSnappy,
		func(r io.Reader) io.ReadCloser {
			return io.NopCloser(snappy.NewReader(r))
		})

	RegisterEncoder(NameLZ4,
		func(w io.Writer, lvl int) io.WriteCloser {
			return lz4.NewWriter(w)
		})
	RegisterDecoder(NameLZ4,
		func(r io.Reader) io.ReadCloser {
			return io.NopCloser(lz4.NewReader(r))
		})
}
