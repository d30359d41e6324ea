// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package table prints API response items as CSV or as aligned text.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/iterator"
)

// Row interface that a table row representation must implement.
type Row interface {
	CSV() []string // an encoding/csv compatible row representation
}

// Record is a Row which also names its columns. All the list items of the
// marketstack package are Records.
type Record interface {
	Row
	CSVHeader() []string
}

// Table container.
//
// A typical use:
//
//	it := api.Iter[marketstack.SplitsDataItem](ctx, q, c)
//	t := table.FromRecords[marketstack.SplitsDataItem](it)
//	if err := it.Err(); err != nil { ... }
//	t.Write(os.Stdout, table.Params{CSV: true})
type Table struct {
	Header []string // optional, may be nil
	Rows   []Row
}

// NewTable creates a new Table instance with optional column headers.  It is
// expected that, when present, the number of column headers is the same as the
// number of elements in each Row.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// FromRecords drains the iterator into a new Table. The header is taken from
// the zero value of R, so it is present even when there are no rows.
func FromRecords[R Record](it iterator.Iterator[R]) *Table {
	var zero R
	return iterator.Reduce[R, *Table](it, NewTable(zero.CSVHeader()...),
		func(r R, t *Table) *Table {
			t.AddRow(r)
			return t
		})
}

// AddRow adds one or more rows to the table.
func (t *Table) AddRow(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Params are parameters for pretty-printing or CSV export of Table data.
type Params struct {
	Rows        int  // max. number of rows to write; 0 = unlimited (default)
	NoHeader    bool // whether to print the header, default - yes
	MaxColWidth int  // for text only; 0 = unlimited, otherwise must be >= 4
	CSV         bool // Write() uses CSV format; default: text
}

func (t *Table) header(p Params) []string {
	if p.NoHeader {
		return nil
	}
	return t.Header
}

func (t *Table) rows(p Params) []Row {
	if p.Rows > 0 && p.Rows < len(t.Rows) {
		return t.Rows[:p.Rows]
	}
	return t.Rows
}

// Write the table in the format selected by p.CSV.
func (t *Table) Write(w io.Writer, p Params) error {
	if p.CSV {
		return t.WriteCSV(w, p)
	}
	return t.WriteText(w, p)
}

// WriteCSV writes the entire table to w in CSV format.
func (t *Table) WriteCSV(w io.Writer, p Params) error {
	cw := csv.NewWriter(w)
	if h := t.header(p); len(h) > 0 {
		if err := cw.Write(h); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
	}
	for _, r := range t.rows(p) {
		if err := cw.Write(r.CSV()); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Annotate(err, "failed to flush written rows")
	}
	return nil
}

// columnWidths computes the width of each column, capped at maxWidth when
// it's positive.
func columnWidths(lines [][]string, maxWidth int) ([]int, error) {
	var widths []int
	for _, row := range lines {
		if len(row) == 0 {
			return nil, errors.Reason("row size = 0")
		}
		if widths == nil {
			widths = make([]int, len(row))
		}
		if len(row) != len(widths) {
			return nil, errors.Reason("row size [%d] != expected size [%d]",
				len(row), len(widths))
		}
		for i, s := range row {
			n := len([]rune(s))
			if maxWidth > 0 && n > maxWidth {
				n = maxWidth
			}
			if widths[i] < n {
				widths[i] = n
			}
		}
	}
	return widths, nil
}

// WriteText writes the table as a text formatted for ease of reading.
func (t *Table) WriteText(w io.Writer, p Params) error {
	if p.MaxColWidth != 0 && p.MaxColWidth < 4 {
		return errors.Reason("MaxColWidth [%d] must be 0 or >= 4", p.MaxColWidth)
	}
	header := t.header(p)
	var lines [][]string
	if len(header) > 0 {
		lines = append(lines, header)
	}
	for _, r := range t.rows(p) {
		lines = append(lines, r.CSV())
	}
	widths, err := columnWidths(lines, p.MaxColWidth)
	if err != nil {
		return errors.Annotate(err, "failed to compute column widths")
	}

	write := func(row []string) error {
		cells := make([]string, len(row))
		for i, s := range row {
			if r := []rune(s); len(r) > widths[i] {
				s = string(r[:widths[i]-2]) + ".."
			}
			cells[i] = fmt.Sprintf("%[2]*[1]s", s, widths[i])
		}
		_, err := fmt.Fprintf(w, "%s\n", strings.Join(cells, " | "))
		return err
	}

	for i, line := range lines {
		if err := write(line); err != nil {
			return errors.Annotate(err, "failed to write line %d", i)
		}
		if i == 0 && len(header) > 0 {
			dashes := make([]string, len(widths))
			for j, n := range widths {
				dashes[j] = strings.Repeat("-", n)
			}
			if err := write(dashes); err != nil {
				return errors.Annotate(err, "failed to write header separator")
			}
		}
	}
	return nil
}
