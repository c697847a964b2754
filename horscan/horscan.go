// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

/*Package horscan aligns the monomer lists of two samples and writes the
  optimized alignment to <OutputPrefix>.alignment.

  A run reads both lists, sorts them by start, prefixes the sentinel, fills
  the score matrix, backtraces one path, writes one row per path step and
  finally reruns the optimizer over the written file.  Any failure aborts
  the run.
*/
package horscan

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/horscan/align"
	"github.com/grailbio/horscan/alignment"
	"github.com/grailbio/horscan/interval"
	"github.com/grailbio/horscan/optimize"
)

// Opts configures Run.
type Opts struct {
	// SourcePath and TargetPath name the two monomer lists.
	SourcePath string
	TargetPath string
	// OutputPrefix is the alignment path without the ".alignment" suffix.
	OutputPrefix string
	Scoring      align.Scoring
	// SkipOptimize leaves the raw DP alignment in place.
	SkipOptimize bool
}

// DefaultOpts holds the default values of Opts.
var DefaultOpts = Opts{
	OutputPrefix: "horscan",
	Scoring:      align.DefaultScoring,
}

// Summary describes a finished run.
type Summary struct {
	// Path is the alignment file written.
	Path string
	// Raw counts the rows of the DP alignment; Optimized counts the rows
	// left after optimization (equal to Raw when it was skipped).
	Raw, Optimized alignment.TypeCount
}

func readList(ctx context.Context, role, path string) ([]interval.Monomer, error) {
	rows, err := interval.ReadPath(ctx, path)
	if err != nil {
		return nil, errors.E(err, "read", role, "monomers:", path)
	}
	if len(rows) == 0 {
		log.Error.Printf("%s %s: no monomers", role, path)
	}
	prepared := interval.Prepare(rows)
	log.Printf("%s sample: %s monomers: %s", role, interval.Sample(rows), humanize.Comma(int64(len(rows))))
	return prepared, nil
}

// Run executes the whole pipeline.
func Run(ctx context.Context, opts Opts) (Summary, error) {
	summary := Summary{Path: opts.OutputPrefix + alignment.Suffix}
	source, err := readList(ctx, "source", opts.SourcePath)
	if err != nil {
		return summary, err
	}
	target, err := readList(ctx, "target", opts.TargetPath)
	if err != nil {
		return summary, err
	}

	log.Printf("scoring: %v", opts.Scoring)
	log.Printf("filling %s x %s score matrix", humanize.Comma(int64(len(source))), humanize.Comma(int64(len(target))))
	m := align.Fill(source, target, opts.Scoring)
	path := align.Extract(m)
	recs, err := align.Records(source, target, path)
	if err != nil {
		return summary, err
	}
	summary.Raw = alignment.Count(recs)
	summary.Optimized = summary.Raw
	if err = alignment.WritePath(ctx, summary.Path, recs); err != nil {
		return summary, errors.E(err, "write alignment:", summary.Path)
	}
	log.Printf("wrote %s alignment rows to %s", humanize.Comma(int64(len(recs))), summary.Path)
	if opts.SkipOptimize {
		return summary, nil
	}
	if _, summary.Optimized, err = optimize.File(ctx, summary.Path); err != nil {
		return summary, errors.E(err, "optimize alignment:", summary.Path)
	}
	return summary, nil
}
