// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package align

import "fmt"

// Scoring holds the scores used to fill the matrix.  Mismatch and Gap are
// normally negative; Gap is charged per consumed monomer.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring is used when no complete mode is supplied.
var DefaultScoring = Scoring{
	Match:    4,
	Mismatch: -5,
	Gap:      -2,
}

// ScoringFromMode converts the user-facing mode triple (match,
// mismatch magnitude, gap magnitude) to a Scoring.  The second return value
// is false, and DefaultScoring is returned, when fewer than three values are
// given.  Values past the third are ignored.
func ScoringFromMode(mode []int) (Scoring, bool) {
	if len(mode) < 3 {
		return DefaultScoring, false
	}
	return Scoring{
		Match:    mode[0],
		Mismatch: -mode[1],
		Gap:      -mode[2],
	}, true
}

func (s Scoring) String() string {
	return fmt.Sprintf("match=%d mismatch=%d gap=%d", s.Match, s.Mismatch, s.Gap)
}
