// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bsort compresses single blocks with the block-sorting codec and
// benchmarks it against other compressors.
//
// Example usage:
//	$ bsort compress twain.txt twain.bs
//	$ bsort decompress twain.bs twain.out
//	$ bsort verify --block-size 1Mi --jobs 8 twain.txt
//	$ bsort bench --codecs bs,zstd,xz --inputs text,repeats --sizes 1e4,1e5
//
//	BENCHMARK: ratio
//		benchmark           bs ratio  delta      zstd ratio  delta      xz ratio  delta
//		text:6:1e4             1.53x  1.00x           1.62x  1.06x         1.57x  1.03x
//		repeats:6:1e4          2.18x  1.00x           3.47x  1.59x         3.30x  1.51x
package main

import (
	"log"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.SetFlags(0)
		log.SetPrefix("bsort: ")
		log.Fatalf("fatal error: %v", err)
	}
}
