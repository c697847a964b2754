// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package interval

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const monomerList = "track name=monomers\n" +
	"# sample\tstart\tend\tlabel\n" +
	"HG1\t340\t511\tS1C1H1L.2\textra\n" +
	"\n" +
	"HG1\t0\t171\tS1C1H1L.1\n" +
	"HG1\t171\t340\tS1C1H1L.3\n"

func TestRead(t *testing.T) {
	rows, err := Read(strings.NewReader(monomerList))
	expect.NoError(t, err)
	expect.EQ(t, rows, []Monomer{
		{"HG1", 340, 511, "S1C1H1L.2"},
		{"HG1", 0, 171, "S1C1H1L.1"},
		{"HG1", 171, 340, "S1C1H1L.3"},
	})
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		input string
		line  int
		field string
	}{
		{"HG1\t0\t171\n", 1, ""},
		{"# header\nHG1\tx\t171\tA\n", 2, "start"},
		{"HG1\t0\t171\tA\nHG1\t171\t3.5\tB\n", 2, "end"},
		{"HG1\t0\t171\tA\"b\n", 1, "label"},
		{"HG1\t0\t171\t-\n", 1, "label"},
		{"HG1\t0\t171\tA\n\"HG1\"\t171\t340\tB\n", 2, "sample"},
	}
	for _, tt := range tests {
		_, err := Read(strings.NewReader(tt.input))
		require.Error(t, err, tt.input)
		perr, ok := errors.Cause(err).(*ParseError)
		require.True(t, ok, "%v", err)
		expect.EQ(t, perr.Line, tt.line)
		expect.EQ(t, perr.Field, tt.field)
	}
}

func TestPrepare(t *testing.T) {
	rows, err := Read(strings.NewReader(monomerList))
	expect.NoError(t, err)
	prepared := Prepare(rows)
	expect.EQ(t, len(prepared), 4)
	expect.EQ(t, prepared[0], Sentinel("HG1"))
	expect.True(t, prepared[0].IsGap())
	for i, want := range []int{0, 171, 340} {
		expect.EQ(t, prepared[i+1].Start, want)
	}

	empty := Prepare(nil)
	expect.EQ(t, empty, []Monomer{Sentinel("")})
}

func TestSortByStartIsStable(t *testing.T) {
	rows := []Monomer{{"s", 5, 6, "B"}, {"s", 1, 2, "A"}, {"s", 5, 6, "C"}}
	SortByStart(rows)
	expect.EQ(t, []string{rows[0].Label, rows[1].Label, rows[2].Label}, []string{"A", "B", "C"})
}

func TestPlaceholder(t *testing.T) {
	m := Monomer{"HG2", 100, 270, "S1C1H1L.4"}
	expect.EQ(t, m.Placeholder(), Monomer{"HG2", 100, 100, Gap})
}

func TestReadPath(t *testing.T) {
	ctx := vcontext.Background()
	tmpDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	plain := filepath.Join(tmpDir, "source.bed")
	require.NoError(t, ioutil.WriteFile(plain, []byte(monomerList), 0644))

	var sb strings.Builder
	zw := gzip.NewWriter(&sb)
	_, err := zw.Write([]byte(monomerList))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	compressed := filepath.Join(tmpDir, "source.bed.gz")
	require.NoError(t, ioutil.WriteFile(compressed, []byte(sb.String()), 0644))

	for _, path := range []string{plain, compressed} {
		rows, err := ReadPath(ctx, path)
		expect.NoError(t, err)
		expect.EQ(t, len(rows), 3)
		expect.EQ(t, rows[1].Label, "S1C1H1L.1")
	}

	_, err = ReadPath(ctx, filepath.Join(tmpDir, "missing.bed"))
	expect.True(t, err != nil)
}
