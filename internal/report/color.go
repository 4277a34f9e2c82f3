// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package report

import (
	"github.com/fatih/color"

	"github.com/tlg-eval/chartspec/internal/series"
)

// Shared color printers for report sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBlue   = color.New(color.FgBlue)
	colorFaint  = color.New(color.Faint)
	colorBold   = color.New(color.Bold)
)

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// ColorStyle colors segment style hints: primary is blue, secondary faint.
func ColorStyle(val string) string {
	switch val {
	case "primary":
		return colorBlue.Sprint(val)
	case "secondary":
		return colorFaint.Sprint(val)
	default:
		return val
	}
}

// ColorDirection colors change directions.
func ColorDirection(val string) string {
	switch series.Direction(val) {
	case series.DirectionUp:
		return colorGreen.Sprint(val)
	case series.DirectionDown:
		return colorRed.Sprint(val)
	default:
		return val
	}
}

// ColorOverlap highlights changes that fall outside sampling variation.
func ColorOverlap(val string) string {
	switch val {
	case "no":
		return colorYellow.Sprint(val)
	default:
		return val
	}
}
