// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"fmt"

	"github.com/BurntSushi/toml"
	strconv "github.com/dsnet/golib/unitconv"
	"github.com/hashicorp/go-multierror"
)

const (
	defaultLevel = "6"
	defaultSizes = "1e4,1e5,1e6"
)

// Profile selects which benchmarks to run. It is usually decoded from a
// TOML file such as:
//
//	tests  = ["encRate", "ratio"]
//	codecs = ["bs", "zstd", "xz"]
//	inputs = ["text", "repeats", "twain.txt"]
//	paths  = ["testdata"]
//	levels = ["6"]
//	sizes  = ["1e4", "64Ki"]
//	format = "csv"
type Profile struct {
	Tests  []string `toml:"tests"`
	Codecs []string `toml:"codecs"`
	Inputs []string `toml:"inputs"`
	Paths  []string `toml:"paths"`
	Levels []string `toml:"levels"`
	Sizes  []string `toml:"sizes"`
	Format string   `toml:"format"` // Either "text" or "csv"

	MaxBlockSize string `toml:"max_block_size"`
	StrictRuns   bool   `toml:"strict_runs"`
}

// DefaultProfile runs every suite for every registered codec on every
// generated input.
func DefaultProfile() *Profile {
	var tests []string
	for t := TestEncodeRate; t <= TestCompressRatio; t++ {
		tests = append(tests, enumToTest[t])
	}
	return &Profile{
		Tests:  tests,
		Codecs: Codecs(),
		Inputs: GeneratorNames(),
		Levels: []string{defaultLevel},
		Sizes:  SplitList(defaultSizes),
		Format: FormatText,
	}
}

// LoadProfile decodes the TOML file at path on top of DefaultProfile.
func LoadProfile(path string) (*Profile, error) {
	p := DefaultProfile()
	md, err := toml.DecodeFile(path, p)
	if err != nil {
		return nil, err
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("bench: unknown profile keys %v", keys)
	}
	return p, p.Validate()
}

// Validate reports every invalid entry of the profile at once.
func (p *Profile) Validate() error {
	var result error
	for _, t := range p.Tests {
		if _, ok := testToEnum[t]; !ok {
			result = multierror.Append(result, fmt.Errorf("invalid test %q", t))
		}
	}
	for _, c := range p.Codecs {
		_, okEnc := Encoders[c]
		_, okDec := Decoders[c]
		if !okEnc || !okDec {
			result = multierror.Append(result, fmt.Errorf("unknown codec %q", c))
		}
	}
	if _, err := parseInts(p.Levels); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := parseInts(p.Sizes); err != nil {
		result = multierror.Append(result, err)
	}
	if p.MaxBlockSize != "" {
		if _, err := parseInts([]string{p.MaxBlockSize}); err != nil {
			result = multierror.Append(result, err)
		}
	}
	switch p.Format {
	case FormatText, FormatCSV:
	default:
		result = multierror.Append(result, fmt.Errorf("invalid format %q", p.Format))
	}
	return result
}

// TestIDs returns the suites named by the profile.
func (p *Profile) TestIDs() []int {
	var ts []int
	for _, s := range p.Tests {
		if t, ok := testToEnum[s]; ok {
			ts = append(ts, t)
		}
	}
	return ts
}

func (p *Profile) LevelValues() ([]int, error) { return parseInts(p.Levels) }
func (p *Profile) SizeValues() ([]int, error)  { return parseInts(p.Sizes) }

// BlockSize returns the configured maximum block size, or zero if unset.
func (p *Profile) BlockSize() int {
	if p.MaxBlockSize == "" {
		return 0
	}
	n, _ := parseInts([]string{p.MaxBlockSize})
	if len(n) == 0 {
		return 0
	}
	return n[0]
}

// parseInts parses values such as "6", "1e6", or "64Ki".
func parseInts(ss []string) ([]int, error) {
	var vs []int
	for _, s := range ss {
		f, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil || f < 0 || f != float64(int(f)) {
			return nil, fmt.Errorf("invalid number %q", s)
		}
		vs = append(vs, int(f))
	}
	return vs, nil
}
