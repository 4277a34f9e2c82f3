// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tlg-eval/chartspec/internal/series"
)

// Column suffixes recognized in wide CSV files.
const (
	suffixEstimate = "_pct"
	suffixMargin   = "_conf"
	periodColumn   = "Date"
)

// ParseError reports a malformed CSV cell.
type ParseError struct {
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %s: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type csvColumns struct {
	key      string
	estimate int
	margin   int
}

// ParseCSV reads a wide table with a Date column and one <key>_pct /
// <key>_conf column pair per indicator. Other columns are ignored.
// Rows are kept in file order; validation is deferred to Dataset.Table.
func ParseCSV(name string, r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse csv: empty file")
		}
		return nil, fmt.Errorf("parse csv header: %w", err)
	}

	positions := make(map[string]int, len(header))
	for i, h := range header {
		positions[strings.TrimSpace(h)] = i
	}

	periodIdx, ok := positions[periodColumn]
	if !ok {
		return nil, fmt.Errorf("parse csv: missing %q column", periodColumn)
	}

	var cols []csvColumns
	for _, h := range header {
		h = strings.TrimSpace(h)
		key, found := strings.CutSuffix(h, suffixEstimate)
		if !found || key == "" {
			continue
		}
		mi, ok := positions[key+suffixMargin]
		if !ok {
			continue
		}
		cols = append(cols, csvColumns{key: key, estimate: positions[h], margin: mi})
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("parse csv: no <key>%s/<key>%s column pairs", suffixEstimate, suffixMargin)
	}

	d := &Dataset{Name: name}
	for _, c := range cols {
		label, ok := Labels[c.key]
		if !ok {
			label = c.key
		}
		d.Indicators = append(d.Indicators, Indicator{Key: c.key, Label: label})
	}

	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("parse csv line %d: %w", line, err)
		}

		period := series.Period(strings.TrimSpace(rec[periodIdx]))
		for i, c := range cols {
			est, err := parseCell(rec, c.estimate, line, header)
			if err != nil {
				return nil, err
			}
			margin, err := parseCell(rec, c.margin, line, header)
			if err != nil {
				return nil, err
			}
			d.Indicators[i].Rows = append(d.Indicators[i].Rows, series.Row{
				Period:   period,
				Estimate: est,
				Margin:   margin,
			})
		}
	}

	return d, nil
}

func parseCell(rec []string, idx, line int, header []string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx]), 64)
	if err != nil {
		return 0, &ParseError{Line: line, Column: header[idx], Err: err}
	}
	return v, nil
}
