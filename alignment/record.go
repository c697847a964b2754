// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package alignment defines the rows of a monomer alignment and their
// tab-separated on-disk form.
package alignment

import (
	"fmt"

	"github.com/grailbio/horscan/interval"
	"github.com/pkg/errors"
)

// Tag classifies one aligned row.
type Tag uint8

const (
	// MTH: both sides carry the same label.
	MTH Tag = iota
	// MIS: both sides carry a monomer, with different labels.
	MIS
	// INS: only the target carries a monomer.
	INS
	// DEL: only the source carries a monomer.
	DEL
	// UNX: both sides are placeholders.  Such rows only exist while the
	// optimizer runs and are never written.
	UNX
	numTags
)

var tagNames = [numTags]string{"MTH", "MIS", "INS", "DEL", "UNX"}

func (t Tag) String() string {
	if t < numTags {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// ParseTag is the inverse of Tag.String.
func ParseTag(s string) (Tag, error) {
	for i, name := range tagNames {
		if name == s {
			return Tag(i), nil
		}
	}
	return 0, errors.Errorf("unknown alignment tag %q", s)
}

// Record is one row of an alignment: a source monomer, a target monomer
// (either may be a placeholder) and the tag relating them.
type Record struct {
	Source interval.Monomer
	Target interval.Monomer
	Tag    Tag
}

// Classify returns the tag implied by the labels of source and target.
func Classify(source, target interval.Monomer) Tag {
	switch {
	case source.IsGap() && target.IsGap():
		return UNX
	case source.IsGap():
		return INS
	case target.IsGap():
		return DEL
	case source.Label == target.Label:
		return MTH
	default:
		return MIS
	}
}

func (r Record) String() string {
	return fmt.Sprintf("%v\t%v\t%v", r.Source, r.Target, r.Tag)
}

// TypeCount tallies records per tag.
type TypeCount struct {
	MTH, INS, DEL, MIS int
}

// Count tallies recs.  UNX rows are not counted.
func Count(recs []Record) TypeCount {
	var c TypeCount
	for i := range recs {
		switch recs[i].Tag {
		case MTH:
			c.MTH++
		case INS:
			c.INS++
		case DEL:
			c.DEL++
		case MIS:
			c.MIS++
		}
	}
	return c
}

// Total returns the number of counted rows.
func (c TypeCount) Total() int { return c.MTH + c.INS + c.DEL + c.MIS }

func (c TypeCount) String() string {
	return fmt.Sprintf("MTH=%d INS=%d DEL=%d MIS=%d", c.MTH, c.INS, c.DEL, c.MIS)
}
