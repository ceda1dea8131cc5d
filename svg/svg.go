// github.com/masonium/vectorfoil - hidden-line removal for 3D vector drawings
// Copyright (C) 2026  The vectorfoil authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package svg writes the output of a vectorfoil render as a standalone
// SVG document. Lines are styled per edge class through a CSS
// stylesheet, so the visual treatment of visible, hidden, split and
// culled edges can be adjusted without touching the geometry.
package svg

import (
	"fmt"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo/float"
	"seehuhn.de/go/pdf/graphics"

	"github.com/masonium/vectorfoil"
)

// Style describes the stroke styling of one edge class. Widths and
// dash lengths are in normalized device coordinates; the document
// transform scales them to the viewport.
type Style struct {
	// Width is the stroke width.
	Width float64

	// Color is the stroke color, in any form SVG accepts.
	Color string

	// Dash is the alternating on/off dash pattern. Nil means solid.
	Dash []float64

	// Cap sets the line cap style at segment ends.
	Cap graphics.LineCapStyle

	// Join sets the join style where segments meet.
	Join graphics.LineJoinStyle
}

// Options configures a standalone SVG document.
type Options struct {
	// Width and Height give the document size in pixels.
	Width, Height float64

	// ByLayer groups the output lines into one <g> element per edge
	// class instead of tagging each line individually.
	ByLayer bool

	// PointRadius is the radius used to plot points. Zero selects a
	// small default.
	PointRadius float64

	// Styles maps each edge class to its stroke styling. Nil selects
	// [DefaultStyles].
	Styles map[vectorfoil.EdgeType]Style
}

// edgeClasses lists all edge classes in a fixed order, so that
// stylesheet and layer output are deterministic.
var edgeClasses = []vectorfoil.EdgeType{
	vectorfoil.Visible,
	vectorfoil.Invisible,
	vectorfoil.Hidden,
	vectorfoil.Split,
	vectorfoil.Culled,
}

// DefaultStyles returns the default per-class styling: solid dark
// strokes for visible edges, light dashed strokes for everything else.
func DefaultStyles() map[vectorfoil.EdgeType]Style {
	return map[vectorfoil.EdgeType]Style{
		vectorfoil.Visible:   {Width: 0.005, Color: "#444444"},
		vectorfoil.Invisible: {Width: 0.001, Color: "#aaaaaa", Dash: []float64{0.001, 0.001}},
		vectorfoil.Hidden:    {Width: 0.002, Color: "#2222cc", Dash: []float64{0.01, 0.005}},
		vectorfoil.Split:     {Width: 0.001, Color: "#22cc22", Dash: []float64{0.002, 0.002}},
		vectorfoil.Culled:    {Width: 0.001, Color: "#cc2222", Dash: []float64{0.005, 0.005}},
	}
}

// Standalone writes rp as a complete SVG document. The normalized
// device coordinate square [-1,1]x[-1,1] is mapped to the full
// document, with y pointing up.
func Standalone(w io.Writer, rp *vectorfoil.RenderPaths, opt *Options) {
	styles := opt.Styles
	if styles == nil {
		styles = DefaultStyles()
	}
	pointRadius := opt.PointRadius
	if pointRadius == 0 {
		pointRadius = 0.005
	}

	halfW := opt.Width * 0.5
	halfH := opt.Height * 0.5

	canvas := svgo.New(w)
	canvas.Start(opt.Width, opt.Height)
	canvas.Style("text/css", stylesheet(styles))
	canvas.Gtransform(fmt.Sprintf("translate(%g %g) scale(%g %g)", halfW, halfH, halfW, -halfH))

	if opt.ByLayer {
		for _, e := range edgeClasses {
			first := true
			for _, l := range rp.Lines {
				if l.Edge != e {
					continue
				}
				if first {
					canvas.Group(fmt.Sprintf("class=%q", e.ClassName()))
					first = false
				}
				canvas.Line(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
			}
			if !first {
				canvas.Gend()
			}
		}
	} else {
		for _, l := range rp.Lines {
			canvas.Line(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, fmt.Sprintf("class=%q", l.Edge.ClassName()))
		}
	}

	for _, p := range rp.Points {
		canvas.Circle(p.X, p.Y, pointRadius, `class="point"`)
	}

	canvas.Gend()
	canvas.End()
}

// stylesheet renders the per-class styles as CSS rules.
func stylesheet(styles map[vectorfoil.EdgeType]Style) string {
	var sb strings.Builder
	for _, e := range edgeClasses {
		s, ok := styles[e]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, ".%s { fill: none; stroke: %s; stroke-width: %g;",
			e.ClassName(), s.Color, s.Width)
		if len(s.Dash) > 0 {
			sb.WriteString(" stroke-dasharray:")
			for _, d := range s.Dash {
				fmt.Fprintf(&sb, " %g", d)
			}
			sb.WriteString(";")
		}
		fmt.Fprintf(&sb, " stroke-linecap: %s; stroke-linejoin: %s; }\n",
			capName(s.Cap), joinName(s.Join))
	}
	sb.WriteString(".point { fill: #444444; stroke: none; }")
	return sb.String()
}

func capName(c graphics.LineCapStyle) string {
	switch c {
	case graphics.LineCapRound:
		return "round"
	case graphics.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

func joinName(j graphics.LineJoinStyle) string {
	switch j {
	case graphics.LineJoinRound:
		return "round"
	case graphics.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}
