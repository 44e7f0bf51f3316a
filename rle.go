// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package blocksort

import (
	"github.com/dsnet/blocksort/internal"
	"github.com/dsnet/blocksort/internal/errors"
)

// runToken is a maximal run of Count copies of Sym, where
// 1 <= Count <= internal.MaxRunLen.
type runToken struct {
	Sym   uint8
	Count int
}

// runLengthEncoding collapses runs of equal ranks into tokens.
//
// A run longer than internal.MaxRunLen is split into several tokens unless
// Strict is set, in which case encoding fails. Splitting keeps the count field
// at one byte; a decoder simply expands adjacent tokens with the same symbol.
//
// For example, 300 zero ranks encode as:
//	toks: []runToken{{0, 255}, {0, 45}}
type runLengthEncoding struct {
	Strict  bool // Reject long runs instead of splitting them
	MaxSize int  // Upper bound on the decoded length; zero means unbounded
}

func (rle *runLengthEncoding) Encode(idxs []uint8) ([]runToken, error) {
	var toks []runToken
	for i := 0; i < len(idxs); {
		j := i + 1
		for j < len(idxs) && idxs[j] == idxs[i] {
			j++
		}
		run := j - i
		if run > internal.MaxRunLen && rle.Strict {
			return nil, errorf(errors.Unsupported, "run of %d copies of rank %d at offset %d exceeds %d", run, idxs[i], i, internal.MaxRunLen)
		}
		for ; run > 0; run -= internal.MaxRunLen {
			cnt := run
			if cnt > internal.MaxRunLen {
				cnt = internal.MaxRunLen
			}
			toks = append(toks, runToken{Sym: idxs[i], Count: cnt})
		}
		i = j
	}
	return toks, nil
}

func (rle *runLengthEncoding) Decode(toks []runToken) ([]uint8, error) {
	var total int
	for i, tok := range toks {
		if tok.Count < 1 || tok.Count > internal.MaxRunLen {
			return nil, errorf(errors.Corrupted, "token %d has invalid count %d", i, tok.Count)
		}
		total += tok.Count
		if rle.MaxSize > 0 && total > rle.MaxSize {
			return nil, errorf(errors.Corrupted, "decoded length exceeds limit of %d bytes", rle.MaxSize)
		}
	}

	idxs := make([]uint8, 0, total)
	for _, tok := range toks {
		for j := 0; j < tok.Count; j++ {
			idxs = append(idxs, tok.Sym)
		}
	}
	return idxs, nil
}

// appendTokens appends the two byte form of each token to dst.
func appendTokens(dst []byte, toks []runToken) []byte {
	for _, tok := range toks {
		dst = append(dst, tok.Sym, uint8(tok.Count))
	}
	return dst
}

// parseTokens is the inverse of appendTokens.
func parseTokens(buf []byte) ([]runToken, error) {
	if len(buf)%2 != 0 {
		return nil, errorf(errors.Corrupted, "truncated run token at offset %d", len(buf)-1)
	}
	toks := make([]runToken, 0, len(buf)/2)
	for i := 0; i < len(buf); i += 2 {
		if buf[i+1] == 0 {
			return nil, errorf(errors.Corrupted, "zero length run at offset %d", i)
		}
		toks = append(toks, runToken{Sym: buf[i], Count: int(buf[i+1])})
	}
	return toks, nil
}
