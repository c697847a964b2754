// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package alignment

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/horscan/interval"
	"github.com/pkg/errors"
)

// Suffix is appended to the output prefix to name the alignment file.
const Suffix = ".alignment"

// numColumns is the width of an alignment row: source sample, start, end and
// label, the same four for the target, then the tag.
const numColumns = 9

// checkField rejects text the TSV reader cannot return unchanged.
func checkField(s string) error {
	if strings.ContainsAny(s, "\"\t\n") {
		return errors.Errorf("field %q contains a quote, tab or newline", s)
	}
	return nil
}

// ParseError describes a malformed alignment row.
type ParseError struct {
	// Record is the 1-based index of the row among the non-comment rows.
	Record int
	Field  string
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("alignment record %d: bad %s field %q: %v", e.Record, e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseMonomer(n int, fields []string) (interval.Monomer, error) {
	m := interval.Monomer{Sample: fields[0], Label: fields[3]}
	var err error
	if m.Start, err = strconv.Atoi(fields[1]); err != nil {
		return m, &ParseError{Record: n, Field: "start", Text: fields[1], Err: err}
	}
	if m.End, err = strconv.Atoi(fields[2]); err != nil {
		return m, &ParseError{Record: n, Field: "end", Text: fields[2], Err: err}
	}
	return m, nil
}

// Read parses an alignment.  Lines starting with '#' or "track" are skipped.
func Read(r io.Reader) ([]Record, error) {
	reader := tsv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var recs []Record
	for n := 1; ; n++ {
		fields, err := reader.Reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "alignment record %d", n)
		}
		if strings.HasPrefix(fields[0], "track") {
			n--
			continue
		}
		if len(fields) != numColumns {
			return nil, &ParseError{
				Record: n,
				Field:  "row",
				Text:   strings.Join(fields, "\t"),
				Err:    errors.Errorf("got %d columns, want %d", len(fields), numColumns),
			}
		}
		var rec Record
		if rec.Source, err = parseMonomer(n, fields[0:4]); err != nil {
			return nil, err
		}
		if rec.Target, err = parseMonomer(n, fields[4:8]); err != nil {
			return nil, err
		}
		if rec.Tag, err = ParseTag(fields[8]); err != nil {
			return nil, &ParseError{Record: n, Field: "type", Text: fields[8], Err: err}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Writer serializes records one per line.
type Writer struct {
	w *tsv.Writer
}

// NewWriter returns a Writer on top of w.  Flush must be called once all
// records are written.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: tsv.NewWriter(w)}
}

func (w *Writer) writeMonomer(m interval.Monomer) {
	w.w.WriteString(m.Sample)
	w.w.WriteInt64(int64(m.Start))
	w.w.WriteInt64(int64(m.End))
	w.w.WriteString(m.Label)
}

func checkMonomer(m interval.Monomer) error {
	if err := checkField(m.Sample); err != nil {
		return err
	}
	return checkField(m.Label)
}

// Write appends one record.  UNX records are rejected since they never
// belong to a finished alignment.
func (w *Writer) Write(rec Record) error {
	if rec.Tag == UNX || rec.Tag >= numTags {
		return errors.Errorf("alignment.Writer: refusing to write %v record", rec.Tag)
	}
	for _, m := range []interval.Monomer{rec.Source, rec.Target} {
		if err := checkMonomer(m); err != nil {
			return errors.Wrap(err, "alignment.Writer")
		}
	}
	w.writeMonomer(rec.Source)
	w.writeMonomer(rec.Target)
	w.w.WriteString(rec.Tag.String())
	return w.w.EndLine()
}

// Flush flushes buffered rows to the underlying writer.
func (w *Writer) Flush() error { return w.w.Flush() }

// Write serializes recs to w.
func Write(w io.Writer, recs []Record) error {
	aw := NewWriter(w)
	for _, rec := range recs {
		if err := aw.Write(rec); err != nil {
			return err
		}
	}
	return aw.Flush()
}

// ReadPath reads the alignment stored at path.
func ReadPath(ctx context.Context, path string) (recs []Record, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if recs, err = Read(in.Reader(ctx)); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return recs, nil
}

// WritePath writes recs to path, replacing any existing file.
func WritePath(ctx context.Context, path string, recs []Record) (err error) {
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.CloseAndReport(ctx, out, &err)
	if err = Write(out.Writer(ctx), recs); err != nil {
		return errors.Wrap(err, path)
	}
	return nil
}
