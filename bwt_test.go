// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package blocksort

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/dsnet/blocksort/internal/errors"
	"github.com/dsnet/blocksort/internal/testutil"
)

func TestBurrowsWheelerTransform(t *testing.T) {
	var ss = func(s string) string {
		const limit = 256
		if len(s) > limit {
			return fmt.Sprintf("%q...", s[:limit])
		}
		return fmt.Sprintf("%q", s)
	}

	var vectors = []struct {
		input  string // The input test string
		output string // Expected output string after BWT (skip if empty)
		ptr    int    // The BWT origin pointer
	}{{
		input:  "",
		output: "",
		ptr:    -1,
	}, {
		input:  "a",
		output: "a",
		ptr:    0,
	}, {
		input:  "banana",
		output: "nnbaaa",
		ptr:    3,
	}, {
		input:  "abab",
		output: "bbaa",
		ptr:    0,
	}, {
		input:  "aaaa",
		output: "aaaa",
		ptr:    0,
	}, {
		input:  "abcabc",
		output: "ccaabb",
		ptr:    0,
	}, {
		input:  "Hello, world!",
		output: ",do!lHrellwo ",
		ptr:    3,
	}, {
		input:  "SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES",
		output: "TEXYDST.E.IXIXIXXSSMPPS.B..E.S.EUSFXDIIOIIIT",
		ptr:    29,
	}, {
		input:  "0123456789",
		output: "9012345678",
		ptr:    0,
	}, {
		input:  "9876543210",
		output: "1234567890",
		ptr:    9,
	}, {
		input:  "The quick brown fox jumped over the lazy dog.",
		output: "kynxederg.l ie hhpv otTu c uwd rfm eb qjoooza",
		ptr:    9,
	}, {
		input: "Mary had a little lamb, its fleece was white as snow" +
			"Mary had a little lamb, its fleece was white as snow" +
			"Mary had a little lamb, its fleece was white as snow" +
			"Mary had a little lamb, its fleece was white as snow" +
			"Mary had a little lamb, its fleece was white as snow" +
			"Mary had a little lamb, its fleece was white as snow" +
			"Mary had a little lamb, its fleece was white as snow" +
			"Mary had a little lamb, its fleece was white as snow" +
			"Nary had a little lamb, its fleece was white as snow",
		output: "dddddddddeeeeeeeeesssssssssyyyyyyyyy,,,,,,,,,eeeeeee" +
			"eeaaaaaaaaassssssssseeeeeeeeesssssssssbbbbbbbbbwwwww" +
			"wwww         hhhhhhhhhlllllllllNMMMMMMMM         www" +
			"wwwwwwmmmmmmmmmeeeeeeeeeaaaaaaaaatttttttttlllllllllc" +
			"cccccccceeeeeeeeelllllllll                  wwwwwwww" +
			"whhhhhhhhh         lllllllll         tttttttttffffff" +
			"fff         aaaaaaaaasssssssssnnnnnnnnnaaaaaaaaatttt" +
			"tttttaaaaaaaaaaaaaaaaaa         iiiiiiiiitttttttttii" +
			"iiiiiiiiiiiiiiiiooooooooo                  rrrrrrrrr",
		ptr: 99,
	}, {
		input: "AGCTTTTCATTCTGACTGCAACGGGCAATATGTCTCTGTGTGGATTAAAAAAAGAGTCTCTGAC" +
			"AGCAGCTTCTGAACTGGTTACCTGCCGTGAGTAAATTAAAATTTTATTGACTTAGGTCACTAAA" +
			"TACTTTAACCAATATAGGCATAGCGCACAGACAGATAAAAATTACAGAGTACACAACATCCATG" +
			"AAACGCATTAGCACCACCATTACCACCACCATCACCACCACCATCACCATTACCATTACCACAG" +
			"GTAACGGTGCGGGCTGACGCGTACAGGAAACACAGAAAAAAGCCCGCACCTGACAGTGCGGGCT" +
			"TTTTTTTCGACCAAAGGTAACGAGGTAACAACCATGCGAGTGTTGAAGTTCGGCGGTACATCAG" +
			"TGGCAAATGCAGAACGTTTTCTGCGGGTTGCCGATATTCTGGAAAGCAATGCCAGGCAGGGGCA",
		output: "TAGAATAAATGGAGACTCTAATACTCTACTGGAAACAGACCACAAACATACCTGGTCGTAGATT" +
			"CCCCCCATCCCTAAGAAACGAGTCCCCACATCATCACCTCGACTGGGCCGAGACTAAGCCCCCA" +
			"ACTGAACCCCCTTACGAAGGCGGAAGCTCCGCCCTGTAGAAAAGACGAATGCCAACCCCCGTAA" +
			"AAAAAAGAATAAAAGGCGAATAGCGCAATAGGGGAGCAATTTTCGTACTTATAGAGGAGTGATT" +
			"ATTCTTTCTAACACGGTGGACACTAGGCTATTTATTTGCGAAGATTTGGAACGGGCCCACAAAC" +
			"ACTGAGGGACGGATCGATATAGATGCTATCGGTGGGTGGTTTTATAATAAATAAGATATTGGTC" +
			"TTTCACTCCCCTGCAATCAGGCCGGCAGCGAATAAAAGACTTTGCATAGAGCTTTTACTGTTTC",
		ptr: 99,
	}}

	bwt := new(burrowsWheelerTransform)
	for i, v := range vectors {
		b := []byte(v.input)
		p := bwt.Encode(b)
		output := string(b)
		if err := bwt.Decode(b, p); err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
		}
		input := string(b)

		if input != v.input {
			t.Errorf("test %d, input mismatch:\ngot  %v\nwant %v", i, ss(input), ss(v.input))
		}
		if output != v.output {
			t.Errorf("test %d, output mismatch:\ngot  %v\nwant %v", i, ss(output), ss(v.output))
		}
		if p != v.ptr {
			t.Errorf("test %d, pointer mismatch: got %d, want %d", i, p, v.ptr)
		}
	}
}

// TestBurrowsWheelerPeriodic checks blocks made of repeated copies of a
// shorter period, where several rotations are identical.
func TestBurrowsWheelerPeriodic(t *testing.T) {
	rand := testutil.NewRand(0)
	var inputs [][]byte
	for _, period := range []int{1, 2, 3, 7, 64} {
		unit := rand.Letters(period)
		for _, k := range []int{1, 2, 5, 32} {
			inputs = append(inputs, bytes.Repeat(unit, k))
		}
	}
	inputs = append(inputs, []byte(strings.Repeat("ab", 500)+"b"))

	bwt := new(burrowsWheelerTransform)
	for i, want := range inputs {
		b := append([]byte(nil), want...)
		p := bwt.Encode(b)
		if err := bwt.Decode(b, p); err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		if !bytes.Equal(b, want) {
			t.Errorf("test %d, round trip mismatch:\ngot  %q\nwant %q", i, b, want)
		}
	}
}

func TestBurrowsWheelerDecodeErrors(t *testing.T) {
	var vectors = []struct {
		input string
		ptr   int
		errf  func(error) bool
	}{
		{"banana", -1, errors.IsCorrupted},
		{"banana", 6, errors.IsCorrupted},
		{"aba", 1, errors.IsInternal},
		{"abaa", 1, errors.IsInternal},
	}

	bwt := new(burrowsWheelerTransform)
	for i, v := range vectors {
		err := bwt.Decode([]byte(v.input), v.ptr)
		if !v.errf(err) {
			t.Errorf("test %d, unexpected error: %v", i, err)
		}
	}
}

func BenchmarkEncodeBWT(b *testing.B) {
	input := testutil.NewRand(0).Repeats(1 << 16)
	buf := make([]byte, len(input))
	bwt := new(burrowsWheelerTransform)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, input)
		bwt.Encode(buf)
	}
}

func BenchmarkDecodeBWT(b *testing.B) {
	input := testutil.NewRand(0).Repeats(1 << 16)
	bwt := new(burrowsWheelerTransform)
	ptr := bwt.Encode(input)
	buf := make([]byte, len(input))
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, input)
		if err := bwt.Decode(buf, ptr); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
