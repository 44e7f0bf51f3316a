// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"context"
	"fmt"
	"hash/crc32"

	"github.com/dsnet/blocksort"
	hashutil "github.com/dsnet/golib/hashmerge"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// Verification is the outcome of VerifyBlocks.
type Verification struct {
	Blocks     int    // Number of blocks
	InputSize  int64  // Total size of the raw input
	OutputSize int64  // Total size of all compressed blocks
	Checksum   uint32 // CRC-32 of the reassembled output
}

// VerifyBlocks splits input into blocks of at most blockSize bytes and checks
// that every block survives a round trip through codec. At most jobs blocks
// are processed at once; jobs <= 0 means no limit.
//
// A failure in one block does not stop the others. All failures are returned
// together as a *multierror.Error.
func VerifyBlocks(ctx context.Context, codec *blocksort.Codec, input []byte, blockSize, jobs int) (Verification, error) {
	if blockSize <= 0 || blockSize > codec.MaxBlockSize() {
		blockSize = codec.MaxBlockSize()
	}
	var blocks [][]byte
	for b := input; len(b) > 0; {
		n := blockSize
		if n > len(b) {
			n = len(b)
		}
		blocks = append(blocks, b[:n])
		b = b[n:]
	}

	var (
		crcs  = make([]uint32, len(blocks))
		sizes = make([]int64, len(blocks))
		fails = make([]error, len(blocks))
	)
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, block := range blocks {
		i, block := i, block
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			comp, err := codec.Compress(block)
			if err != nil {
				fails[i] = fmt.Errorf("block %d: compress: %w", i, err)
				return nil
			}
			sizes[i] = int64(len(comp))
			out, err := codec.Decompress(comp)
			if err != nil {
				fails[i] = fmt.Errorf("block %d: decompress: %w", i, err)
				return nil
			}
			if !bytes.Equal(out, block) {
				fails[i] = fmt.Errorf("block %d: round trip mismatch", i)
			}
			crcs[i] = crc32.ChecksumIEEE(out)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Verification{}, err
	}

	var result error
	v := Verification{Blocks: len(blocks), InputSize: int64(len(input))}
	for i, block := range blocks {
		if fails[i] != nil {
			result = multierror.Append(result, fails[i])
		}
		v.OutputSize += sizes[i]
		v.Checksum = hashutil.CombineCRC32(crc32.IEEE, v.Checksum, crcs[i], int64(len(block)))
	}
	if want := crc32.ChecksumIEEE(input); result == nil && v.Checksum != want {
		result = multierror.Append(result, fmt.Errorf("checksum mismatch: got 0x%08x, want 0x%08x", v.Checksum, want))
	}
	return v, result
}
