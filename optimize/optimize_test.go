// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package optimize

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/horscan/align"
	"github.com/grailbio/horscan/alignment"
	"github.com/grailbio/horscan/interval"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

// rows builds records from "source/target" label pairs, e.g. "A/-".  Each
// side gets distinct coordinates so that moved monomers can be told apart.
func rows(pairs ...string) []alignment.Record {
	recs := make([]alignment.Record, len(pairs))
	for k, pair := range pairs {
		labels := strings.Split(pair, "/")
		recs[k].Source = interval.Monomer{Sample: "s", Start: k * 10, End: k*10 + 5, Label: labels[0]}
		recs[k].Target = interval.Monomer{Sample: "t", Start: k * 20, End: k*20 + 5, Label: labels[1]}
		recs[k].Tag = alignment.Classify(recs[k].Source, recs[k].Target)
	}
	return recs
}

func labels(recs []alignment.Record) []string {
	out := make([]string, len(recs))
	for k, rec := range recs {
		out[k] = rec.Source.Label + "/" + rec.Target.Label + ":" + rec.Tag.String()
	}
	return out
}

func TestRecords(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			// The deleted monomer slides forward onto the insertion with the
			// same label; its row is left empty and dropped.
			"forward",
			[]string{"X/-", "-/Y", "-/X", "-/Z"},
			[]string{"-/Y:INS", "X/X:MTH", "-/Z:INS"},
		},
		{
			"backward",
			[]string{"-/A", "A/B"},
			[]string{"A/A:MTH", "-/B:INS"},
		},
		{
			"forward-first",
			[]string{"-/A", "A/B", "-/A"},
			[]string{"-/A:INS", "-/B:INS", "A/A:MTH"},
		},
		{
			"target-side",
			[]string{"-/X", "X/-"},
			[]string{"X/X:MTH"},
		},
		{
			"both-sides",
			[]string{"B/-", "A/B", "-/A"},
			[]string{"B/B:MTH", "A/A:MTH"},
		},
		{
			// The occupied row between the deletion and the insertion ends the
			// search.
			"boundary",
			[]string{"A/-", "C/D", "-/A"},
			[]string{"A/-:DEL", "C/D:MIS", "-/A:INS"},
		},
		{
			"nothing-to-do",
			[]string{"A/A", "B/C", "D/D"},
			[]string{"A/A:MTH", "B/C:MIS", "D/D:MTH"},
		},
	}
	for _, tt := range tests {
		got := Records(rows(tt.in...))
		expect.EQ(t, labels(got), tt.want, tt.name)
	}
}

func TestRecordsMovesWholeMonomer(t *testing.T) {
	recs := rows("X/-", "-/Y", "-/X")
	moved := recs[0].Source
	got := Records(recs)
	expect.EQ(t, len(got), 2)
	expect.EQ(t, got[1].Source, moved)
	expect.EQ(t, got[1].Target.Start, 40)
}

func TestRecordsSecondPassKeepsCounts(t *testing.T) {
	for _, in := range [][]string{
		{"X/-", "-/Y", "-/X", "-/Z"},
		{"B/-", "A/B", "-/A", "C/-", "-/D"},
		{"-/A", "A/B", "-/A"},
	} {
		once := Records(rows(in...))
		want := alignment.Count(once)
		twice := Records(append([]alignment.Record(nil), once...))
		expect.EQ(t, alignment.Count(twice), want, in)
	}
}

func TestRecordsRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	list := func(sample string) []interval.Monomer {
		ms := make([]interval.Monomer, r.Intn(40))
		for k := range ms {
			ms[k] = interval.Monomer{Sample: sample, Start: k * 171, End: (k + 1) * 171, Label: string(rune('A' + r.Intn(5)))}
		}
		return interval.Prepare(ms)
	}
	for iter := 0; iter < 100; iter++ {
		source, target := list("s"), list("t")
		recs, err := align.Records(source, target, align.Extract(align.Fill(source, target, align.DefaultScoring)))
		require.NoError(t, err)
		before := alignment.Count(recs)
		got := Records(recs)
		after := alignment.Count(got)
		require.True(t, after.MTH >= before.MTH)
		require.Equal(t, len(got), after.Total())
		for _, rec := range got {
			require.NotEqual(t, alignment.UNX, rec.Tag)
			require.Equal(t, alignment.Classify(rec.Source, rec.Target), rec.Tag, "%v", rec)
		}
	}
}

func TestFile(t *testing.T) {
	ctx := vcontext.Background()
	tmpDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := filepath.Join(tmpDir, "run"+alignment.Suffix)
	require.NoError(t, alignment.WritePath(ctx, path, rows("X/-", "-/Y", "-/X", "-/Z")))

	before, after, err := File(ctx, path)
	require.NoError(t, err)
	expect.EQ(t, before, alignment.TypeCount{INS: 3, DEL: 1})
	expect.EQ(t, after, alignment.TypeCount{MTH: 1, INS: 2})

	recs, err := alignment.ReadPath(ctx, path)
	require.NoError(t, err)
	expect.EQ(t, labels(recs), []string{"-/Y:INS", "X/X:MTH", "-/Z:INS"})

	// A second run leaves the counts alone.
	before, after, err = File(ctx, path)
	require.NoError(t, err)
	expect.EQ(t, before, after)
}

type captureOutputter struct {
	level log.Level
	lines []string
}

func (o *captureOutputter) Level() log.Level { return o.level }

func (o *captureOutputter) Output(calldepth int, level log.Level, s string) error {
	o.lines = append(o.lines, s)
	return nil
}

func TestRecordsDebugLog(t *testing.T) {
	out := &captureOutputter{level: log.Debug}
	old := log.SetOutputter(out)
	defer log.SetOutputter(old)

	Records(rows("X/-", "-/Y", "-/X"))
	require.Len(t, out.lines, 1)
	require.Contains(t, out.lines[0], "optimize: row 0 source")

	out.lines, out.level = nil, log.Info
	Records(rows("X/-", "-/Y", "-/X"))
	require.Empty(t, out.lines)
}
