// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package interval

import (
	"fmt"
	"sort"
)

// Gap is the reserved label of a placeholder monomer.
const Gap = "-"

// Monomer is one row of a monomer list.
type Monomer struct {
	Sample string
	Start  int
	End    int
	Label  string
}

// IsGap reports whether m is a placeholder rather than a real monomer.
func (m Monomer) IsGap() bool { return m.Label == Gap }

// Placeholder returns the zero-length gap monomer anchored at m's start.
func (m Monomer) Placeholder() Monomer {
	return Monomer{Sample: m.Sample, Start: m.Start, End: m.Start, Label: Gap}
}

func (m Monomer) String() string {
	return fmt.Sprintf("%s:%d-%d(%s)", m.Sample, m.Start, m.End, m.Label)
}

// Sentinel returns the synthetic monomer stored at index 0 of a prepared
// list.
func Sentinel(sample string) Monomer {
	return Monomer{Sample: sample, Label: Gap}
}

// Sample returns the sample name of the list, taken from its first row.  It
// returns "" for an empty list.
func Sample(ms []Monomer) string {
	if len(ms) == 0 {
		return ""
	}
	return ms[0].Sample
}

// SortByStart sorts ms by start coordinate.  Monomers with equal starts keep
// their input order.
func SortByStart(ms []Monomer) {
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Start < ms[j].Start })
}

// Prepare sorts ms and returns a new slice with the sentinel at index 0 and
// the sorted monomers at 1..len(ms).  ms itself is sorted in place.
func Prepare(ms []Monomer) []Monomer {
	SortByStart(ms)
	prepared := make([]Monomer, 0, len(ms)+1)
	prepared = append(prepared, Sentinel(Sample(ms)))
	return append(prepared, ms...)
}
