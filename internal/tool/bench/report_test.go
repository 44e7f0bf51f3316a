// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testTable() *Table {
	return &Table{
		Test:   TestCompressRatio,
		Codecs: []string{"bs", "gz"},
		Names:  []string{"text:6:1e4", "zeros:6:1e4"},
		Results: [][]Result{
			{{R: 2, D: 1}, {R: 3, D: 1.5}},
			{{R: 100, D: 1}, {R: math.NaN(), D: math.NaN()}},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := testTable().WriteText(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "" +
		"\tbenchmark        bs ratio  delta      gz ratio  delta\n" +
		"\ttext:6:1e4          2.00x  1.00x         3.00x  1.50x\n" +
		"\tzeros:6:1e4       100.00x  1.00x                     \n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRows(t *testing.T) {
	want := []Row{
		{Test: "ratio", Name: "text:6:1e4", Codec: "bs", Value: 2, Delta: 1},
		{Test: "ratio", Name: "text:6:1e4", Codec: "gz", Value: 3, Delta: 1.5},
		{Test: "ratio", Name: "zeros:6:1e4", Codec: "bs", Value: 100, Delta: 1},
	}
	if diff := cmp.Diff(want, testTable().Rows()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []*Table{testTable()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("line count: got %d, want 4\n%s", len(lines), buf.String())
	}
	if lines[0] != "test,benchmark,codec,value,delta" {
		t.Errorf("header mismatch: got %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "ratio,text:6:1e4,gz,") {
		t.Errorf("row mismatch: got %q", lines[2])
	}
}

func TestRunSuite(t *testing.T) {
	tbl, err := RunSuite(TestCompressRatio, []string{NameBlockSort, NameGzip}, []string{"zeros"}, []int{6}, []int{4096}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tbl.Names) != 1 || !strings.HasPrefix(tbl.Names[0], "zeros:6:") {
		t.Errorf("names mismatch: got %v", tbl.Names)
	}
	for i, r := range tbl.Results[0] {
		if r.R <= 1 {
			t.Errorf("codec %s, ratio too low: %v", tbl.Codecs[i], r.R)
		}
	}
	if tbl.Results[0][0].D != 1 {
		t.Errorf("reference delta: got %v, want 1", tbl.Results[0][0].D)
	}

	if _, err := RunSuite(42, nil, nil, nil, nil, nil); err == nil {
		t.Errorf("unexpected success with unknown test")
	}
}
