// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package output

const htmlCSS = `
:root {
  --bg: #fff; --fg: #0b0c0c; --muted: #6f777b; --grid: #e5e5e5;
  --primary: #12436d; --secondary: #6f777b; --ref: #d4351c;
}
* { box-sizing: border-box; }
body { font-family: Arial, sans-serif; background: var(--bg); color: var(--fg); margin: 0 auto; padding: 1.5rem 3rem 3rem; max-width: 1100px; }
header h1 { font-size: 1.6rem; margin: 0 0 .25rem; }
header p { color: var(--muted); font-size: .875rem; margin: 0 0 1.5rem; }
section.chart { border-top: 1px solid var(--grid); padding-top: 1rem; margin-bottom: 2rem; }
section.chart h2 { font-size: 1.15rem; margin: 0 0 .5rem; }
svg { width: 100%; height: auto; }
.axis { stroke: var(--fg); stroke-width: 1; }
.grid { stroke: var(--grid); stroke-width: 1; }
.tick { font-size: 11px; fill: var(--fg); }
.band-primary { fill: rgba(18, 67, 109, .2); stroke: none; }
.band-secondary { fill: rgba(111, 119, 123, .2); stroke: none; }
.line-primary { fill: none; stroke: var(--primary); stroke-width: 3; }
.line-secondary { fill: none; stroke: var(--secondary); stroke-width: 3; }
.marker-primary { fill: var(--primary); }
.marker-secondary { fill: var(--secondary); }
.ref { stroke: var(--ref); stroke-width: 1.5; stroke-dasharray: 6 4; }
.ref-label { font-size: 12px; fill: var(--ref); }
.legend { display: flex; gap: 1rem; font-size: .8125rem; margin: .25rem 0 .75rem; }
.legend span::before { content: ""; display: inline-block; width: 1.5em; height: 3px; margin-right: .4em; vertical-align: middle; }
.legend .primary::before { background: var(--primary); }
.legend .secondary::before { background: var(--secondary); }
details { font-size: .8125rem; margin-top: .5rem; }
table { border-collapse: collapse; margin-top: .5rem; }
th, td { padding: .25rem .75rem; border-bottom: 1px solid var(--grid); text-align: right; }
th:first-child, td:first-child, th:nth-child(2), td:nth-child(2) { text-align: left; }
.notes { font-size: .9rem; }
`

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>` + htmlCSS + `</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<p>Generated {{.GeneratedAt}} &middot; {{len .Charts}} chart(s)</p>
</header>
{{- range .Charts}}
{{- $svg := .SVG}}
<section class="chart" id="chart-{{.Name}}">
<h2>{{.Title}}</h2>
<div class="legend">{{range .Legend}}<span class="{{.Class}}">{{.Label}}</span>{{end}}</div>
<svg viewBox="0 0 {{$svg.Width}} {{$svg.Height}}" role="img" aria-label="{{.Title}}">
{{- range $svg.YTicks}}
<line class="grid" x1="{{$svg.PlotX0}}" y1="{{.Pos}}" x2="{{$svg.PlotX1}}" y2="{{.Pos}}"/>
<text class="tick" x="{{$svg.PlotX0}}" y="{{.Pos}}" dx="-6" dy="4" text-anchor="end">{{.Label}}</text>
{{- end}}
<line class="axis" x1="{{$svg.PlotX0}}" y1="{{$svg.PlotY1}}" x2="{{$svg.PlotX1}}" y2="{{$svg.PlotY1}}"/>
{{- range $svg.XTicks}}
<text class="tick" transform="translate({{.Pos}},{{$svg.PlotY1}}) rotate(-35)" dy="14" text-anchor="end">{{.Label}}</text>
{{- end}}
{{- range $svg.Bands}}
<polygon class="{{.Class}}" points="{{.Points}}"><title>{{.Label}}</title></polygon>
{{- end}}
{{- with $svg.Ref}}
<line class="ref" x1="{{$svg.PlotX0}}" y1="{{.Y}}" x2="{{$svg.PlotX1}}" y2="{{.Y}}"/>
<text class="ref-label" x="{{$svg.PlotX1}}" y="{{.Y}}" dy="-5" text-anchor="end">{{.Label}}</text>
{{- end}}
{{- range $svg.Lines}}
<polyline class="{{.Class}}" points="{{.Points}}"/>
{{- end}}
{{- range $svg.Markers}}
<circle class="{{.Class}}" cx="{{.X}}" cy="{{.Y}}" r="4"><title>{{.Title}}</title></circle>
{{- end}}
</svg>
{{- if .Notes}}
<div class="notes">{{.Notes}}</div>
{{- end}}
<details>
<summary>Data table</summary>
<table>
<thead><tr><th>Segment</th><th>Period</th><th>Estimate</th><th>Lower</th><th>Upper</th></tr></thead>
<tbody>
{{- range .Rows}}
<tr><td>{{.Segment}}</td><td>{{.Period}}</td><td>{{.Estimate}}</td><td>{{.Lower}}</td><td>{{.Upper}}</td></tr>
{{- end}}
</tbody>
</table>
</details>
</section>
{{- end}}
</body>
</html>
`
