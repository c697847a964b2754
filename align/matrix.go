// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package align

import (
	"github.com/grailbio/horscan/interval"
)

// Matrix is a dense score matrix.  Row i corresponds to source index i and
// column j to target index j, both counting the sentinel at 0.
type Matrix struct {
	rows, cols int
	scores     []int
}

func newMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, scores: make([]int, rows*cols)}
}

func (m *Matrix) idx(i, j int) int { return i*m.cols + j }

// Rows returns the number of source positions, sentinel included.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of target positions, sentinel included.
func (m *Matrix) Cols() int { return m.cols }

// At returns score[i][j].
func (m *Matrix) At(i, j int) int { return m.scores[m.idx(i, j)] }

func (m *Matrix) set(i, j, v int) { m.scores[m.idx(i, j)] = v }

// Fill computes the score matrix of prepared lists source and target.
//
// The first row and column hold the cumulative gap score.  Every other cell
// is the maximum of the diagonal, up and left moves and 0, so a cell never
// drops below zero however long the unrelated stretch before it.
func Fill(source, target []interval.Monomer, sc Scoring) *Matrix {
	m := newMatrix(len(source), len(target))
	for i := 0; i < m.rows; i++ {
		m.set(i, 0, sc.Gap*i)
	}
	for j := 0; j < m.cols; j++ {
		m.set(0, j, sc.Gap*j)
	}
	for i := 1; i < m.rows; i++ {
		label := source[i].Label
		prev := m.scores[m.idx(i-1, 0):m.idx(i, 0)]
		cur := m.scores[m.idx(i, 0):m.idx(i+1, 0)]
		for j := 1; j < m.cols; j++ {
			diag := prev[j-1] + sc.Mismatch
			if label == target[j].Label {
				diag = prev[j-1] + sc.Match
			}
			up := prev[j] + sc.Gap
			left := cur[j-1] + sc.Gap
			cur[j] = max(up, left, diag, 0)
		}
	}
	return m
}
