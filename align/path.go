// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package align

import "fmt"

// StepKind says how a step moved through the matrix.
type StepKind uint8

const (
	// Diagonal pairs source[i] with target[j].
	Diagonal StepKind = iota
	// SourceGap consumes source[i]; the target side is a placeholder.
	SourceGap
	// TargetGap consumes target[j]; the source side is a placeholder.
	TargetGap
)

func (k StepKind) String() string {
	switch k {
	case Diagonal:
		return "diagonal"
	case SourceGap:
		return "source-gap"
	case TargetGap:
		return "target-gap"
	}
	return fmt.Sprintf("StepKind(%d)", uint8(k))
}

// Step is one cell of an alignment path.
type Step struct {
	I, J int
	Kind StepKind
}

// Path lists steps from the end point back towards (0, 0).  Reverse it to
// read the alignment in genomic order.
type Path []Step

// Reverse returns a copy of p in genomic order.
func (p Path) Reverse() Path {
	r := make(Path, len(p))
	for k, s := range p {
		r[len(p)-1-k] = s
	}
	return r
}

// endPoint picks the cell the backtrace starts from and returns the
// trailing gap steps skipped to reach it.
//
// The last column is scanned first, then the last row, against one running
// maximum that starts at the corner.  Only one axis is ever trimmed: the
// source axis when its best cell is strictly better than the target axis'
// best, the target axis otherwise.
func endPoint(m *Matrix) (i, j int, trail Path) {
	i, j = m.rows-1, m.cols-1
	best := m.At(i, j)
	maxI, maxJ := i, j
	for k := 0; k < i; k++ {
		if v := m.At(k, j); v > best {
			best, maxI = v, k
		}
	}
	for k := 0; k < j; k++ {
		if v := m.At(i, k); v > best {
			best, maxJ = v, k
		}
	}
	switch {
	case maxI == i && maxJ == j:
	case m.At(maxI, j) > m.At(i, maxJ):
		for k := i; k > maxI; k-- {
			trail = append(trail, Step{k, j, SourceGap})
		}
		i = maxI
	default:
		for k := j; k > maxJ; k-- {
			trail = append(trail, Step{i, k, TargetGap})
		}
		j = maxJ
	}
	return i, j, trail
}

// Extract backtraces one optimal path through m.
//
// Moves are recomputed from the filled matrix: from (i, j) the walk goes to
// whichever of (i-1, j-1), (i-1, j) and (i, j-1) scores highest, preferring
// them in that order on ties.  Cells on the first row or column are emitted
// as a run of gap steps down to, and including, the axis origin.
func Extract(m *Matrix) Path {
	i, j, path := endPoint(m)
	if i > 0 && j > 0 {
		path = append(path, Step{i, j, Diagonal})
	}
	for i > 0 && j > 0 {
		kind := Diagonal
		ni, nj, best := i-1, j-1, m.At(i-1, j-1)
		if v := m.At(i-1, j); v > best {
			kind, ni, nj, best = SourceGap, i-1, j, v
		}
		if v := m.At(i, j-1); v > best {
			kind, ni, nj = TargetGap, i, j-1
		}
		i, j = ni, nj
		if i > 0 && j > 0 {
			path = append(path, Step{i, j, kind})
		}
	}
	switch {
	case i > 0:
		for k := i; k >= 0; k-- {
			path = append(path, Step{k, 0, SourceGap})
		}
	case j > 0:
		for k := j; k >= 0; k-- {
			path = append(path, Step{0, k, TargetGap})
		}
	}
	return path
}
