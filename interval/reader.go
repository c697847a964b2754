// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package interval

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// minFields is the number of leading columns a monomer line must carry.
const minFields = 4

// ParseError describes a malformed monomer line.
type ParseError struct {
	// Line is the 1-based line number.
	Line int
	// Field names the column that failed to parse.  It is empty when the line
	// as a whole is malformed.
	Field string
	// Text is the offending line (or field value, when Field is set).
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: bad %s field %q: %v", e.Line, e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// skipLine reports whether the line carries no monomer.
func skipLine(line string) bool {
	return strings.HasPrefix(line, "track") || strings.HasPrefix(line, "#") || strings.TrimSpace(line) == ""
}

func parseCoord(s, field string, lineIdx int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Line: lineIdx, Field: field, Text: s, Err: err}
	}
	return v, nil
}

// parseName checks a sample or label column.  Quotes are refused since the
// alignment file could not carry them through unchanged, and a label may not
// be the gap marker.
func parseName(s, field string, lineIdx int) (string, error) {
	if strings.ContainsRune(s, '"') {
		return "", &ParseError{Line: lineIdx, Field: field, Text: s, Err: errors.New("quote character not allowed")}
	}
	if field == "label" && s == Gap {
		return "", &ParseError{Line: lineIdx, Field: field, Text: s, Err: errors.Errorf("%q is reserved for gaps", Gap)}
	}
	return s, nil
}

// Read parses a monomer list.  Rows are returned in file order.
func Read(r io.Reader) ([]Monomer, error) {
	var (
		scanner = bufio.NewScanner(r)
		rows    []Monomer
		lineIdx int
	)
	for scanner.Scan() {
		lineIdx++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if skipLine(line) {
			continue
		}
		tokens := strings.Split(line, "\t")
		if len(tokens) < minFields {
			return nil, &ParseError{
				Line: lineIdx,
				Text: line,
				Err:  errors.Errorf("need at least %d columns, found %d", minFields, len(tokens)),
			}
		}
		sample, err := parseName(tokens[0], "sample", lineIdx)
		if err != nil {
			return nil, err
		}
		label, err := parseName(tokens[3], "label", lineIdx)
		if err != nil {
			return nil, err
		}
		start, err := parseCoord(tokens[1], "start", lineIdx)
		if err != nil {
			return nil, err
		}
		end, err := parseCoord(tokens[2], "end", lineIdx)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Monomer{
			Sample: sample,
			Start:  start,
			End:    end,
			Label:  label,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "interval.Read")
	}
	return rows, nil
}

// ReadPath is a wrapper for Read that takes a path instead of an io.Reader.
// Gzip-compressed input is detected from the file extension.
func ReadPath(ctx context.Context, path string) (rows []Monomer, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return nil, errors.Wrapf(err, "gunzip %s", path)
		}
	}
	if rows, err = Read(reader); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return rows, nil
}
