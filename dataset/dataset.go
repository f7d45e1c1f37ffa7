// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads objective tables for mooplot.
//
// The text format has one point per line, written as
// whitespace-separated numbers. Text after a '#' is a comment. In a
// Pareto front file, one or more blank lines separate sets, and the
// readers append a set number, counting from 1, to every row. In an
// EAF file, the last number of each row is already its percentile.
//
// Spreadsheets (.xlsx) follow the same rules, reading the first sheet:
// an empty row separates sets, and rows with any cell that is not a
// number, such as headers, are skipped.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrRaggedRow is returned when a row has a different number of
// columns from the rows before it.
var ErrRaggedRow = errors.New("row has a different number of columns")

// A SyntaxError records the line (or spreadsheet row) of a parse
// error, counting from 1.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse reads a Pareto front file from r.
func Parse(r io.Reader) ([][]float64, error) {
	return parseText(r, &builder{addSet: true})
}

// ParseEAF reads an EAF file from r.
func ParseEAF(r io.Reader) ([][]float64, error) {
	return parseText(r, &builder{})
}

func parseText(r io.Reader, b *builder) ([][]float64, error) {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()

		comment := false
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text, comment = text[:i], true
		}
		f := strings.Fields(text)
		if len(f) == 0 {
			if !comment {
				b.blank()
			}
			continue
		}
		if err := b.add(line, f); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.rows, nil
}

// ParseSpreadsheet reads the first sheet of the .xlsx workbook in r.
// eaf selects the EAF format.
func ParseSpreadsheet(r io.Reader, eaf bool) ([][]float64, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	b := &builder{addSet: !eaf}
	for i, cells := range rows {
		var fields []string
		for _, c := range cells {
			if c = strings.TrimSpace(c); c != "" {
				fields = append(fields, c)
			}
		}
		if len(fields) == 0 {
			b.blank()
			continue
		}
		if !numeric(fields) {
			continue
		}
		if err := b.add(i+1, fields); err != nil {
			return nil, err
		}
	}
	return b.rows, nil
}

func numeric(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	return true
}

// ReadFile reads a table from path, choosing the spreadsheet reader
// for .xlsx files. A path of "-" reads text from standard input.
func ReadFile(path string, eaf bool) ([][]float64, error) {
	parse := Parse
	if eaf {
		parse = ParseEAF
	}
	if path == "-" {
		return parse(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]float64
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = ParseSpreadsheet(f, eaf)
	} else {
		rows, err = parse(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// builder accumulates rows, numbering sets if addSet is set.
type builder struct {
	addSet bool
	set    int
	gap    bool
	ncols  int
	rows   [][]float64
}

// blank records a set separator.
func (b *builder) blank() {
	b.gap = true
}

func (b *builder) add(line int, fields []string) error {
	row := make([]float64, len(fields), len(fields)+1)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return &SyntaxError{line, err}
		}
		row[i] = v
	}
	if b.ncols == 0 {
		b.ncols = len(row)
	} else if len(row) != b.ncols {
		return &SyntaxError{line, fmt.Errorf("%w: got %d, want %d", ErrRaggedRow, len(row), b.ncols)}
	}
	if b.addSet {
		if b.set == 0 || b.gap {
			b.set++
		}
		row = append(row, float64(b.set))
	}
	b.gap = false
	b.rows = append(b.rows, row)
	return nil
}
