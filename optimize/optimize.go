// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package optimize repairs gap runs of a finished alignment.  A row that is
// not a match can often be fixed by moving one of its monomers onto an
// adjacent placeholder whose other side carries the same label; the row
// order and the DP result are otherwise left alone.
package optimize

import (
	"context"

	"github.com/grailbio/base/log"
	"github.com/grailbio/horscan/alignment"
)

// findTargetMatch looks for a row whose target label equals the source
// label of recs[i], within the run of source placeholders directly after
// and then directly before row i.  It returns -1 if there is none.
func findTargetMatch(recs []alignment.Record, i int) int {
	label := recs[i].Source.Label
	matches := func(k int) bool {
		return !recs[k].Target.IsGap() && recs[k].Target.Label == label
	}
	for k := i + 1; k < len(recs) && recs[k].Source.IsGap(); k++ {
		if matches(k) {
			return k
		}
	}
	for k := i - 1; k >= 0 && recs[k].Source.IsGap(); k-- {
		if matches(k) {
			return k
		}
	}
	return -1
}

// findSourceMatch is findTargetMatch with the roles of source and target
// exchanged.
func findSourceMatch(recs []alignment.Record, i int) int {
	label := recs[i].Target.Label
	matches := func(k int) bool {
		return !recs[k].Source.IsGap() && recs[k].Source.Label == label
	}
	for k := i + 1; k < len(recs) && recs[k].Target.IsGap(); k++ {
		if matches(k) {
			return k
		}
	}
	for k := i - 1; k >= 0 && recs[k].Target.IsGap(); k-- {
		if matches(k) {
			return k
		}
	}
	return -1
}

// swapSource exchanges the source monomers of rows i and j.  Row j becomes
// a match; row i is left with a source placeholder.
func swapSource(recs []alignment.Record, i, j int) {
	recs[i].Source, recs[j].Source = recs[j].Source, recs[i].Source
	recs[j].Tag = alignment.MTH
	recs[i].Tag = alignment.Classify(recs[i].Source, recs[i].Target)
}

// swapTarget exchanges the target monomers of rows i and j.  Row j becomes
// a match; row i is left with a target placeholder.
func swapTarget(recs []alignment.Record, i, j int) {
	recs[i].Target, recs[j].Target = recs[j].Target, recs[i].Target
	recs[j].Tag = alignment.MTH
	recs[i].Tag = alignment.Classify(recs[i].Source, recs[i].Target)
}

// Records runs one optimization sweep over recs and returns the surviving
// rows.  recs is modified in place and must not be used afterwards.
//
// Rows are visited once, in order.  For each row that is not a match both
// rescues are searched before either swap is applied.  Rows emptied on both
// sides are dropped at the end.
func Records(recs []alignment.Record) []alignment.Record {
	for i := range recs {
		if recs[i].Tag == alignment.MTH {
			continue
		}
		sourceSwap := findTargetMatch(recs, i)
		targetSwap := findSourceMatch(recs, i)
		if sourceSwap >= 0 {
			if log.At(log.Debug) {
				log.Debug.Printf("optimize: row %d source %v -> row %d", i, recs[i].Source, sourceSwap)
			}
			swapSource(recs, i, sourceSwap)
		}
		if targetSwap >= 0 {
			if log.At(log.Debug) {
				log.Debug.Printf("optimize: row %d target %v -> row %d", i, recs[i].Target, targetSwap)
			}
			swapTarget(recs, i, targetSwap)
		}
	}
	kept := recs[:0]
	for _, rec := range recs {
		if rec.Tag != alignment.UNX {
			kept = append(kept, rec)
		}
	}
	return kept
}

// File rereads the alignment at path, optimizes it and rewrites it in place.
// It returns the tag counts before and after optimization.
func File(ctx context.Context, path string) (before, after alignment.TypeCount, err error) {
	recs, err := alignment.ReadPath(ctx, path)
	if err != nil {
		return
	}
	before = alignment.Count(recs)
	log.Printf("optimize %s: before %v", path, before)
	recs = Records(recs)
	after = alignment.Count(recs)
	log.Printf("optimize %s: after %v", path, after)
	err = alignment.WritePath(ctx, path, recs)
	return
}
