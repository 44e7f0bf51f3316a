// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/dsnet/blocksort/internal/testutil"
)

// Generators produce synthetic inputs of a requested size. Any input name
// that is not a generator is loaded as a file from Paths.
var Generators = map[string]func(n int) []byte{
	"text":    func(n int) []byte { return testutil.NewRand(0).Letters(n) },
	"random":  func(n int) []byte { return testutil.NewRand(0).Bytes(n) },
	"repeats": func(n int) []byte { return testutil.NewRand(0).Repeats(n) },
	"digits":  testutil.Digits,
	"zeros":   func(n int) []byte { return make([]byte, n) },
}

// GeneratorNames returns the sorted names of all generators.
func GeneratorNames() []string {
	var s []string
	for k := range Generators {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

// LoadInput returns n bytes of the named input. Files shorter than n are
// replicated by testutil.ResizeData. If n < 0, files are returned whole.
func LoadInput(name string, n int) ([]byte, error) {
	if gen, ok := Generators[name]; ok {
		if n < 0 {
			n = 0
		}
		return gen(n), nil
	}
	b, err := os.ReadFile(getPath(name))
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return b, nil
	}
	return testutil.ResizeData(b, n), nil
}

func getPath(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	for _, p := range Paths {
		p = filepath.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}
