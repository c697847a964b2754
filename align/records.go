// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package align

import (
	"fmt"

	"github.com/grailbio/horscan/alignment"
	"github.com/grailbio/horscan/interval"
)

// AlignmentError reports a path that violates the invariants Extract
// guarantees.  It indicates a bug, not bad input.
type AlignmentError struct {
	Step Step
	Msg  string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("align: step (%d, %d, %v): %s", e.Step.I, e.Step.J, e.Step.Kind, e.Msg)
}

// Records maps path onto the prepared lists and returns one record per
// step in genomic order.  The (0, 0) sentinel step is skipped.
func Records(source, target []interval.Monomer, path Path) ([]alignment.Record, error) {
	recs := make([]alignment.Record, 0, len(path))
	for _, step := range path.Reverse() {
		if step.I == 0 && step.J == 0 {
			continue
		}
		if step.I < 0 || step.I >= len(source) || step.J < 0 || step.J >= len(target) {
			return nil, &AlignmentError{Step: step, Msg: "index out of range"}
		}
		rec := alignment.Record{Source: source[step.I], Target: target[step.J]}
		switch step.Kind {
		case SourceGap:
			rec.Target = rec.Target.Placeholder()
		case TargetGap:
			rec.Source = rec.Source.Placeholder()
		case Diagonal:
		default:
			return nil, &AlignmentError{Step: step, Msg: "unknown step kind"}
		}
		rec.Tag = alignment.Classify(rec.Source, rec.Target)
		recs = append(recs, rec)
	}
	return recs, nil
}
