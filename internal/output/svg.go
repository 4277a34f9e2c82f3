// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/tlg-eval/chartspec/internal/chart"
	"github.com/tlg-eval/chartspec/internal/series"
)

// Plot geometry in SVG user units.
const (
	svgWidth     = 760
	svgHeight    = 380
	svgMarginL   = 56
	svgMarginR   = 16
	svgMarginT   = 16
	svgMarginB   = 96
	svgTickCount = 5
)

// svgChart is the pre-computed geometry for one chart. All coordinates are
// formatted strings so the template does no arithmetic.
type svgChart struct {
	Width   int
	Height  int
	PlotX0  string
	PlotX1  string
	PlotY1  string
	Bands   []svgShape
	Lines   []svgShape
	Markers []svgMarker
	Ref     *svgRef
	YTicks  []svgTick
	XTicks  []svgTick
}

type svgShape struct {
	Points string
	Class  string
	Label  string
}

type svgMarker struct {
	X, Y  string
	Class string
	Title string
}

type svgRef struct {
	Y     string
	Label string
}

type svgTick struct {
	Pos   string
	Label string
}

// buildSVG lays out spec on a categorical x-axis (periods in first-seen
// order across segments) and a linear y-axis taken from spec.YRange, or from
// the data extent when no range is given.
func buildSVG(spec *chart.Spec) svgChart {
	periods := orderedPeriods(spec)
	lo, hi := yExtent(spec)

	plotW := float64(svgWidth - svgMarginL - svgMarginR)
	plotH := float64(svgHeight - svgMarginT - svgMarginB)

	xpos := make(map[series.Period]float64, len(periods))
	for i, p := range periods {
		if len(periods) == 1 {
			xpos[p] = svgMarginL + plotW/2
			continue
		}
		xpos[p] = svgMarginL + plotW*float64(i)/float64(len(periods)-1)
	}
	y := func(v float64) float64 {
		return svgMarginT + plotH*(hi-v)/(hi-lo)
	}

	out := svgChart{
		Width:  svgWidth,
		Height: svgHeight,
		PlotX0: num(svgMarginL),
		PlotX1: num(svgMarginL + plotW),
		PlotY1: num(svgMarginT + plotH),
	}

	for _, seg := range spec.Segments {
		class := seg.Style.String()

		if len(seg.Band) > 0 {
			// Upper bounds left to right, then lower bounds right to left,
			// closes the ribbon polygon.
			pts := make([]string, 0, 2*len(seg.Band))
			for _, b := range seg.Band {
				pts = append(pts, pair(xpos[b.Period], y(b.Upper)))
			}
			for i := len(seg.Band) - 1; i >= 0; i-- {
				b := seg.Band[i]
				pts = append(pts, pair(xpos[b.Period], y(b.Lower)))
			}
			out.Bands = append(out.Bands, svgShape{Points: strings.Join(pts, " "), Class: "band-" + class, Label: seg.Label})
		}

		pts := make([]string, 0, len(seg.Points))
		for _, p := range seg.Points {
			pts = append(pts, pair(xpos[p.Period], y(p.Estimate)))
			out.Markers = append(out.Markers, svgMarker{
				X:     num(xpos[p.Period]),
				Y:     num(y(p.Estimate)),
				Class: "marker-" + class,
				Title: fmt.Sprintf("%s: %.1f%%", p.Period, p.Estimate),
			})
		}
		out.Lines = append(out.Lines, svgShape{Points: strings.Join(pts, " "), Class: "line-" + class, Label: seg.Label})
	}

	if spec.ReferenceLine != nil {
		out.Ref = &svgRef{Y: num(y(spec.ReferenceLine.Value)), Label: spec.ReferenceLine.Label}
	}

	for i := 0; i < svgTickCount; i++ {
		v := lo + (hi-lo)*float64(i)/float64(svgTickCount-1)
		out.YTicks = append(out.YTicks, svgTick{Pos: num(y(v)), Label: trimFloat(v)})
	}
	for _, p := range periods {
		out.XTicks = append(out.XTicks, svgTick{Pos: num(xpos[p]), Label: string(p)})
	}
	return out
}

func orderedPeriods(spec *chart.Spec) []series.Period {
	seen := make(map[series.Period]bool)
	var out []series.Period
	for _, seg := range spec.Segments {
		for _, p := range seg.Points {
			if !seen[p.Period] {
				seen[p.Period] = true
				out = append(out, p.Period)
			}
		}
	}
	return out
}

// yExtent returns the y-axis bounds. Without a range hint it spans every
// estimate, band bound and the reference line, padded by 5%.
func yExtent(spec *chart.Spec) (lo, hi float64) {
	if spec.YRange != nil && spec.YRange.Max > spec.YRange.Min {
		return spec.YRange.Min, spec.YRange.Max
	}

	lo, hi = math.Inf(1), math.Inf(-1)
	see := func(v float64) {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	for _, seg := range spec.Segments {
		for _, p := range seg.Points {
			see(p.Estimate)
		}
		for _, b := range seg.Band {
			see(b.Lower)
			see(b.Upper)
		}
	}
	if spec.ReferenceLine != nil {
		see(spec.ReferenceLine.Value)
	}
	if math.IsInf(lo, 0) {
		return 0, 100
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}

func num(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func pair(x, y float64) string {
	return num(x) + "," + num(y)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
