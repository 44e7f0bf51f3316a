// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package suffix implements a prefix doubling suffix array over the rotations
// of a block.
//
// Every rotation is assigned a rank from its first k bytes. Each pass pairs
// the rank of a rotation with the rank of the rotation k bytes later, sorts
// the pairs, and renumbers them so that the ranks describe the first 2k bytes.
// Sorting uses two stable counting sorts (least significant key first), so
// each pass runs in O(n) and the whole construction runs in O(n log n).
//
// Rotations that compare equal over their full length can only occur in
// periodic blocks. They keep ascending order of their start index since every
// pass begins from the identity order and both counting sorts are stable.
//
// References:
//	https://en.wikipedia.org/wiki/Suffix_array#Construction_algorithms
//	https://cp-algorithms.com/string/suffix-array.html
package suffix

// ComputeSA computes the sorted rotation order of T and places the result
// in SA. Both T and SA must be the same length.
func ComputeSA(T []byte, SA []int) {
	if len(SA) != len(T) {
		panic("mismatching sizes")
	}
	n := len(T)
	for i := range SA {
		SA[i] = i
	}
	if n <= 1 {
		return
	}

	rank := make([]int, n)
	next := make([]int, n)
	tmp := make([]int, n)
	cnt := make([]int, maxInt(n, 256))
	for i, c := range T {
		rank[i] = int(c)
	}
	numRanks := 256

	for k := 1; ; k <<= 1 {
		for i := range next {
			next[i] = rank[(i+k)%n]
		}

		// Sort by the secondary key starting from the identity order,
		// then stably by the primary key.
		for i := range tmp {
			tmp[i] = i
		}
		countingSort(SA, tmp, next, cnt[:numRanks])
		countingSort(tmp, SA, rank, cnt[:numRanks])
		copy(SA, tmp)

		// Renumber so that equal (rank, next) pairs share a rank.
		r := 0
		tmp[SA[0]] = 0
		for i := 1; i < n; i++ {
			p, c := SA[i-1], SA[i]
			if rank[p] != rank[c] || next[p] != next[c] {
				r++
			}
			tmp[c] = r
		}
		rank, tmp = tmp, rank
		numRanks = r + 1

		if numRanks == n || 2*k >= n {
			return
		}
	}
}

// countingSort stably sorts the indexes in src by key and stores them in dst.
// The length of cnt must exceed every key.
func countingSort(dst, src, key, cnt []int) {
	for i := range cnt {
		cnt[i] = 0
	}
	for _, i := range src {
		cnt[key[i]]++
	}
	var sum int
	for i, v := range cnt {
		cnt[i] = sum
		sum += v
	}
	for _, i := range src {
		dst[cnt[key[i]]] = i
		cnt[key[i]]++
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
