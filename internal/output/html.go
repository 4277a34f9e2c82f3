// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/yuin/goldmark"

	"github.com/tlg-eval/chartspec/internal/pipeline"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes charts as a self-contained HTML page with inline SVG.
type HTMLFormatter struct {
	// Title is the page heading. Defaults to "Indicator charts".
	Title string

	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

func pageTemplate() *template.Template {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("page").Parse(htmlTemplate))
	})
	return htmlTmpl
}

// Format writes all charts as one HTML page to w.
func (h *HTMLFormatter) Format(results []pipeline.Result, w io.Writer) error {
	now := time.Now()
	if h.nowFunc != nil {
		now = h.nowFunc()
	}

	title := h.Title
	if title == "" {
		title = "Indicator charts"
	}

	data, err := buildHTMLData(title, results, now)
	if err != nil {
		return err
	}
	if err := pageTemplate().Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the page.
type htmlData struct {
	Title       string
	GeneratedAt string
	Charts      []htmlChart
}

type htmlChart struct {
	Name   string
	Title  string
	SVG    svgChart
	Legend []htmlLegend
	Rows   []htmlRow
	Notes  template.HTML
}

type htmlLegend struct {
	Label string
	Class string
}

type htmlRow struct {
	Segment  string
	Period   string
	Estimate string
	Lower    string
	Upper    string
}

func buildHTMLData(title string, results []pipeline.Result, now time.Time) (htmlData, error) {
	data := htmlData{
		Title:       title,
		GeneratedAt: now.UTC().Format("2006-01-02 15:04 UTC"),
	}

	for _, r := range results {
		c := htmlChart{
			Name:  r.Name,
			Title: r.Spec.Title,
			SVG:   buildSVG(r.Spec),
		}
		for _, seg := range r.Spec.Segments {
			c.Legend = append(c.Legend, htmlLegend{Label: seg.Label, Class: seg.Style.String()})
			for i, p := range seg.Points {
				row := htmlRow{
					Segment:  seg.Label,
					Period:   string(p.Period),
					Estimate: formatPercent(p.Estimate),
					Lower:    "–",
					Upper:    "–",
				}
				if seg.Band != nil {
					row.Lower = formatPercent(seg.Band[i].Lower)
					row.Upper = formatPercent(seg.Band[i].Upper)
				}
				c.Rows = append(c.Rows, row)
			}
		}

		notes, err := RenderNotes(r.Notes)
		if err != nil {
			return htmlData{}, fmt.Errorf("chart %s notes: %w", r.Name, err)
		}
		c.Notes = notes

		data.Charts = append(data.Charts, c)
	}
	return data, nil
}

// RenderNotes converts Markdown chart notes to HTML. Raw HTML in the source
// is omitted by goldmark's default renderer.
func RenderNotes(md string) (template.HTML, error) {
	if md == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // goldmark escapes raw HTML by default
}
