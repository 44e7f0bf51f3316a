// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffix

import (
	"bytes"
	"strings"
	"testing"

	"github.com/boljen/go-bitmap"
	"github.com/dsnet/blocksort/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestComputeSA(t *testing.T) {
	var vectors = []struct {
		input  string
		output []int
	}{
		{"", []int{}},
		{"a", []int{0}},
		{"ba", []int{1, 0}},
		{"banana", []int{5, 3, 1, 0, 4, 2}},
		{"mississippi", []int{10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}},
		{"abab", []int{0, 2, 1, 3}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"abcabc", []int{0, 3, 1, 4, 2, 5}},
		{"0123456789", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"9876543210", []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}},
	}

	for i, v := range vectors {
		sa := make([]int, len(v.input))
		ComputeSA([]byte(v.input), sa)
		if diff := cmp.Diff(v.output, sa); diff != "" {
			t.Errorf("test %d (%q), suffix array mismatch (-want +got):\n%s", i, v.input, diff)
		}
	}
}

func TestComputeSAProperties(t *testing.T) {
	rand := testutil.NewRand(0)
	var inputs [][]byte
	for _, n := range []int{2, 3, 7, 16, 100, 1000, 4096} {
		inputs = append(inputs, rand.Bytes(n))
		inputs = append(inputs, lowAlphabet(rand, n, 2))
		inputs = append(inputs, lowAlphabet(rand, n, 4))
		inputs = append(inputs, bytes.Repeat([]byte{'z'}, n))
	}
	inputs = append(inputs,
		[]byte(strings.Repeat("abc", 333)),
		[]byte(strings.Repeat("ab", 512)+"a"),
		bytes.Repeat(lowAlphabet(rand, 13, 3), 40),
	)

	for i, b := range inputs {
		sa := make([]int, len(b))
		ComputeSA(b, sa)
		if err := checkPermutation(sa); err != "" {
			t.Errorf("test %d, %s", i, err)
			continue
		}
		for j := 1; j < len(sa); j++ {
			c := bytes.Compare(rotation(b, sa[j-1]), rotation(b, sa[j]))
			if c > 0 || (c == 0 && sa[j-1] > sa[j]) {
				t.Errorf("test %d, rotations %d and %d out of order", i, sa[j-1], sa[j])
				break
			}
		}
	}
}

func TestComputeSAMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on mismatching sizes")
		}
	}()
	ComputeSA([]byte("abc"), make([]int, 2))
}

func checkPermutation(sa []int) string {
	seen := bitmap.New(len(sa))
	for _, v := range sa {
		if v < 0 || v >= len(sa) {
			return "index out of range"
		}
		if seen.Get(v) {
			return "duplicate index"
		}
		seen.Set(v, true)
	}
	return ""
}

func rotation(b []byte, i int) []byte {
	return append(append([]byte(nil), b[i:]...), b[:i]...)
}

func lowAlphabet(rand *testutil.Rand, n, k int) []byte {
	b := rand.Bytes(n)
	for i := range b {
		b[i] = 'a' + b[i]%byte(k)
	}
	return b
}

func BenchmarkComputeSA(b *testing.B) {
	input := testutil.NewRand(0).Bytes(1 << 16)
	sa := make([]int, len(input))
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ComputeSA(input, sa)
	}
}
