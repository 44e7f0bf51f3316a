// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gocarina/gocsv"
)

// Report output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
)

// Row is a single measurement in a flattened report.
type Row struct {
	Test  string  `csv:"test"`
	Name  string  `csv:"benchmark"`
	Codec string  `csv:"codec"`
	Value float64 `csv:"value"`
	Delta float64 `csv:"delta"`
}

// Table holds the results of one suite.
type Table struct {
	Test    int
	Codecs  []string
	Names   []string
	Results [][]Result
}

// RunSuite runs the suite t over every combination of codecs, inputs,
// levels, and sizes.
func RunSuite(t int, codecs, inputs []string, levels, sizes []int, tick func()) (*Table, error) {
	tbl := &Table{Test: t, Codecs: codecs}
	switch t {
	case TestEncodeRate:
		tbl.Results, tbl.Names = BenchmarkEncoderSuite(codecs, inputs, levels, sizes, tick)
	case TestDecodeRate:
		tbl.Results, tbl.Names = BenchmarkDecoderSuite(codecs, inputs, levels, sizes, tick)
	case TestCompressRatio:
		tbl.Results, tbl.Names = BenchmarkRatioSuite(codecs, inputs, levels, sizes, tick)
	default:
		return nil, fmt.Errorf("bench: unknown test %d", t)
	}
	return tbl, nil
}

// Rows flattens the table, skipping measurements that failed.
func (tbl *Table) Rows() []Row {
	var rows []Row
	for j, row := range tbl.Results {
		for i, r := range row {
			if !isValid(r.R) {
				continue
			}
			d := r.D
			if !isValid(d) {
				d = 0
			}
			rows = append(rows, Row{
				Test:  enumToTest[tbl.Test],
				Name:  tbl.Names[j],
				Codec: tbl.Codecs[i],
				Value: r.R,
				Delta: d,
			})
		}
	}
	return rows
}

// WriteCSV writes the rows of all tables as a single CSV document.
func WriteCSV(w io.Writer, tbls []*Table) error {
	rows := []Row{}
	for _, tbl := range tbls {
		rows = append(rows, tbl.Rows()...)
	}
	return gocsv.Marshal(rows, w)
}

// WriteText writes the table as padded columns with one value and one delta
// column per codec.
func (tbl *Table) WriteText(w io.Writer) error {
	title, suffix := "MB/s", ""
	if tbl.Test == TestCompressRatio {
		title, suffix = "ratio", "x"
	}

	// Allocate result table.
	cells := make([][]string, 1+len(tbl.Names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(tbl.Codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range tbl.Codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range tbl.Results {
		cells[1+j][0] = tbl.Names[j]
		for i, r := range row {
			if isValid(r.R) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if isValid(r.D) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(tbl.Codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	var sb strings.Builder
	for _, row := range cells {
		sb.WriteString("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				sb.WriteString(s + strings.Repeat(" ", maxLens[i]-len(s)))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				sb.WriteString(strings.Repeat(" ", 6+maxLens[i]-len(s)) + s)
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				sb.WriteString(strings.Repeat(" ", 2+maxLens[i]-len(s)) + s)
			}
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func isValid(f float64) bool {
	return f != 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// SplitList splits a flag value separated by commas or colons.
func SplitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ':' })
}
