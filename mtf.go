// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package blocksort

import "github.com/dsnet/blocksort/internal/errors"

// moveToFront replaces every symbol with its position in a recency list and
// then moves the symbol to the front of that list.
//
// For example, with the dictionary {a, b, n}:
//	vals: "banana"
//	idxs: []uint8{1, 1, 2, 1, 1, 1}
type moveToFront struct {
	dictBuf [256]uint8
	dictLen int
}

// Init initializes the moveToFront codec. The dict must contain all of the
// symbols in the alphabet used in future operations. A copy of the input dict
// will be made so that it will not be mutated.
func (m *moveToFront) Init(dict []uint8) {
	if len(dict) > len(m.dictBuf) {
		panic("alphabet too large")
	}
	copy(m.dictBuf[:], dict)
	m.dictLen = len(dict)
}

// Encode replaces each value in buf with its rank. Every value must be in the
// dictionary given to Init.
func (m *moveToFront) Encode(buf []byte) {
	dict := m.dictBuf[:m.dictLen]
	for i, val := range buf {
		idx := -1 // Reverse lookup idx in dict
		for di, dv := range dict {
			if dv == val {
				idx = di
				break
			}
		}
		if idx < 0 {
			panic("symbol not in dictionary")
		}
		copy(dict[1:], dict[:idx])
		dict[0] = val
		buf[i] = uint8(idx)
	}
}

// Decode replaces each rank in buf with the value it stands for.
func (m *moveToFront) Decode(buf []byte) error {
	dict := m.dictBuf[:m.dictLen]
	for i, idx := range buf {
		if int(idx) >= len(dict) {
			return errorf(errors.Corrupted, "rank %d at offset %d outside dictionary of %d symbols", idx, i, len(dict))
		}
		val := dict[idx] // Forward lookup val in dict
		copy(dict[1:], dict[:idx])
		dict[0] = val
		buf[i] = val
	}
	return nil
}
