// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// ColorFunc maps a cell value to a colored string.
type ColorFunc func(value string) string

// Column describes a single table column. Color, when set, is applied to
// data cells after padding has been measured.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table is an aligned, two-space indented text table. Widths are measured
// in runes so labels such as "Employment rate (16–64)" line up.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Extra values are dropped and missing ones are empty.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Render writes the header, a dashed rule and every row to w.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}
	widths := t.widths()

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	rule := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = bold.Sprint(pad(col.Header, widths[i], col.Align))
		rule[i] = strings.Repeat("-", widths[i])
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	if err := writeLine(w, rule); err != nil {
		return err
	}

	cells := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, col := range t.columns {
			cells[i] = pad(row[i], widths[i], col.Align)
			if col.Color != nil && row[i] != "" {
				cells[i] = strings.Replace(cells[i], row[i], col.Color(row[i]), 1)
			}
		}
		if err := writeLine(w, cells); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	return widths
}

func pad(s string, width int, align Alignment) string {
	gap := strings.Repeat(" ", max(0, width-utf8.RuneCountInString(s)))
	if align == AlignRight {
		return gap + s
	}
	return s + gap
}

func writeLine(w io.Writer, cells []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(cells, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
