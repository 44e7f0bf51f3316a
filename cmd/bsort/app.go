// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dsnet/blocksort"
	"github.com/dsnet/blocksort/internal/tool/bench"
	strconv "github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
)

var (
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Log progress to standard error",
		EnvVars: []string{"BSORT_VERBOSE"},
	}
	maxBlockFlag = &cli.StringFlag{
		Name:    "max-block-size",
		Usage:   "Largest block to accept, such as 1e6 or 64Mi",
		EnvVars: []string{"BSORT_MAX_BLOCK_SIZE"},
	}
	strictFlag = &cli.BoolFlag{
		Name:    "strict",
		Usage:   "Reject runs longer than a single token instead of splitting them",
		EnvVars: []string{"BSORT_STRICT_RUNS"},
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "bsort",
		Usage: "Block-sorting compressor",
		Flags: []cli.Flag{verboseFlag, maxBlockFlag, strictFlag},
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress a single block",
				ArgsUsage: "INPUT OUTPUT",
				Action:    compressAction,
			},
			{
				Name:      "decompress",
				Usage:     "Decompress a single block",
				ArgsUsage: "INPUT OUTPUT",
				Action:    decompressAction,
			},
			{
				Name:      "verify",
				Usage:     "Round trip a file split into blocks",
				ArgsUsage: "INPUT",
				Action:    verifyAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "block-size", Value: "1Mi", Usage: "Size of each block"},
					&cli.IntFlag{Name: "jobs", Value: 4, Usage: "Number of blocks processed at once"},
				},
			},
			{
				Name:   "bench",
				Usage:  "Compare the codec against other compressors",
				Action: benchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "profile", Usage: "TOML file selecting the benchmarks", EnvVars: []string{"BSORT_BENCH_PROFILE"}},
					&cli.StringFlag{Name: "tests", Usage: "List of benchmark suites"},
					&cli.StringFlag{Name: "codecs", Usage: "List of codecs to benchmark"},
					&cli.StringFlag{Name: "inputs", Usage: "List of generated inputs or files"},
					&cli.StringFlag{Name: "paths", Usage: "List of paths to search for input files"},
					&cli.StringFlag{Name: "levels", Usage: "List of compression levels"},
					&cli.StringFlag{Name: "sizes", Usage: "List of input sizes"},
					&cli.StringFlag{Name: "format", Usage: "Report format: text or csv"},
				},
			},
		},
	}
}

// logger returns a logger for progress messages, which are discarded
// unless --verbose is set.
func logger(c *cli.Context) *log.Logger {
	w := io.Discard
	if c.Bool(verboseFlag.Name) {
		w = c.App.ErrWriter
		if w == nil {
			w = os.Stderr
		}
	}
	return log.New(w, "bsort: ", 0)
}

func codecConfig(c *cli.Context) (blocksort.Config, error) {
	conf := blocksort.Config{StrictRuns: c.Bool(strictFlag.Name)}
	if s := c.String(maxBlockFlag.Name); s != "" {
		n, err := parseSize(s)
		if err != nil {
			return conf, err
		}
		conf.MaxBlockSize = n
	}
	return conf, nil
}

func parseSize(s string) (int, error) {
	f, err := strconv.ParsePrefix(s, strconv.AutoParse)
	if err != nil || f <= 0 || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	return int(f), nil
}

func twoArgs(c *cli.Context) (string, string, error) {
	if c.NArg() != 2 {
		return "", "", fmt.Errorf("%s: expected INPUT and OUTPUT arguments", c.Command.Name)
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

func openInput(c *cli.Context, name string) (io.ReadCloser, error) {
	if name == "-" {
		r := c.App.Reader
		if r == nil {
			r = os.Stdin
		}
		return io.NopCloser(r), nil
	}
	return os.Open(name)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func createOutput(c *cli.Context, name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopWriteCloser{c.App.Writer}, nil
	}
	return os.Create(name)
}

func compressAction(c *cli.Context) error {
	conf, err := codecConfig(c)
	if err != nil {
		return err
	}
	return transcode(c, func(w io.Writer) (io.WriteCloser, error) {
		return blocksort.NewWriter(w, &blocksort.WriterConfig{Config: conf})
	}, nil)
}

func decompressAction(c *cli.Context) error {
	conf, err := codecConfig(c)
	if err != nil {
		return err
	}
	return transcode(c, nil, func(r io.Reader) (io.ReadCloser, error) {
		return blocksort.NewReader(r, &blocksort.ReaderConfig{Config: conf})
	})
}

// transcode copies INPUT to OUTPUT through either an encoder or a decoder.
func transcode(c *cli.Context, enc func(io.Writer) (io.WriteCloser, error), dec func(io.Reader) (io.ReadCloser, error)) (err error) {
	inName, outName, err := twoArgs(c)
	if err != nil {
		return err
	}
	lg := logger(c)

	in, err := openInput(c, inName)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := createOutput(c, outName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	src, dst := io.Reader(in), io.Writer(out)
	var closer io.Closer
	if enc != nil {
		zw, err := enc(out)
		if err != nil {
			return err
		}
		dst, closer = zw, zw
	} else {
		zr, err := dec(in)
		if err != nil {
			return err
		}
		src, closer = zr, zr
	}

	ts := time.Now()
	n, err := io.Copy(dst, src)
	if err != nil {
		return err
	}
	if err := closer.Close(); err != nil {
		return err
	}
	lg.Printf("%s: %d bytes from %s to %s in %v", c.Command.Name, n, inName, outName, time.Since(ts))
	return nil
}

func verifyAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("verify: expected INPUT argument")
	}
	conf, err := codecConfig(c)
	if err != nil {
		return err
	}
	blockSize, err := parseSize(c.String("block-size"))
	if err != nil {
		return err
	}
	input, err := os.ReadFile(c.Args().First())
	if err != nil {
		return err
	}

	lg := logger(c)
	ts := time.Now()
	v, err := bench.VerifyBlocks(context.Background(), blocksort.NewCodec(&conf), input, blockSize, c.Int("jobs"))
	if err != nil {
		return err
	}
	lg.Printf("verify: %d blocks in %v", v.Blocks, time.Since(ts))
	fmt.Fprintf(c.App.Writer, "blocks=%d input=%d output=%d crc32=0x%08x\n",
		v.Blocks, v.InputSize, v.OutputSize, v.Checksum)
	return nil
}

func benchAction(c *cli.Context) error {
	p := bench.DefaultProfile()
	if path := c.String("profile"); path != "" {
		var err error
		if p, err = bench.LoadProfile(path); err != nil {
			return err
		}
	}

	// Flags override the profile.
	for name, dst := range map[string]*[]string{
		"tests": &p.Tests, "codecs": &p.Codecs, "inputs": &p.Inputs,
		"paths": &p.Paths, "levels": &p.Levels, "sizes": &p.Sizes,
	} {
		if c.IsSet(name) {
			*dst = bench.SplitList(c.String(name))
		}
	}
	if c.IsSet("format") {
		p.Format = c.String("format")
	}
	if c.IsSet(maxBlockFlag.Name) {
		p.MaxBlockSize = c.String(maxBlockFlag.Name)
	}
	if c.IsSet(strictFlag.Name) {
		p.StrictRuns = c.Bool(strictFlag.Name)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	levels, _ := p.LevelValues()
	sizes, _ := p.SizeValues()

	bench.Paths = p.Paths
	bench.BlockConfig = blocksort.Config{MaxBlockSize: p.BlockSize(), StrictRuns: p.StrictRuns}

	lg := logger(c)
	ts := time.Now()
	var tbls []*bench.Table
	for _, t := range p.TestIDs() {
		var cnt int
		total := len(p.Codecs) * len(p.Inputs) * len(levels) * len(sizes)
		tick := func() {
			cnt++
			lg.Printf("%s: %d of %d", bench.TestName(t), cnt, total)
		}
		tbl, err := bench.RunSuite(t, p.Codecs, p.Inputs, levels, sizes, tick)
		if err != nil {
			return err
		}
		tbls = append(tbls, tbl)
	}

	if p.Format == bench.FormatCSV {
		return bench.WriteCSV(c.App.Writer, tbls)
	}
	var sb strings.Builder
	for _, tbl := range tbls {
		fmt.Fprintf(&sb, "BENCHMARK: %s\n", bench.TestName(tbl.Test))
		if err := tbl.WriteText(&sb); err != nil {
			return err
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "RUNTIME: %v\n", time.Since(ts))
	_, err := io.WriteString(c.App.Writer, sb.String())
	return err
}
