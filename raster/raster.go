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

// Package raster renders the output of a vectorfoil render into a
// coverage image, for quick previews and for image-based tests. The
// heavy lifting is done by golang.org/x/image/vector; this package
// only turns tagged line segments into stroke quads.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"github.com/masonium/vectorfoil"
)

// Preview rasterises rp into an alpha image of the given size. The
// normalized device coordinate square [-1,1]x[-1,1] fills the image,
// with y pointing up. All lines are drawn with the given stroke width
// in pixels, regardless of edge class; filter the paths first (for
// example with RenderPaths.VisibleOnly) to draw a subset. Points are
// plotted as squares of the same width.
func Preview(rp *vectorfoil.RenderPaths, width, height int, lineWidth float64) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	if rp.IsEmpty() {
		return dst
	}

	r := vector.NewRasterizer(width, height)
	src := image.NewUniform(color.Alpha{A: 255})

	halfW := float64(width) * 0.5
	halfH := float64(height) * 0.5
	device := func(p vec.Vec2) (float32, float32) {
		return float32(halfW + p.X*halfW), float32(halfH - p.Y*halfH)
	}

	half := float32(lineWidth / 2)
	for _, l := range rp.Lines {
		x0, y0 := device(l.P0)
		x1, y1 := device(l.P1)

		dx := x1 - x0
		dy := y1 - y0
		len2d := float32(math.Hypot(float64(dx), float64(dy)))
		if len2d == 0 {
			continue
		}

		// Unit normal, scaled to half the stroke width.
		nx := -dy / len2d * half
		ny := dx / len2d * half

		r.MoveTo(x0+nx, y0+ny)
		r.LineTo(x1+nx, y1+ny)
		r.LineTo(x1-nx, y1-ny)
		r.LineTo(x0-nx, y0-ny)
		r.ClosePath()
	}

	for _, p := range rp.Points {
		x, y := device(p)
		h := half
		r.MoveTo(x-h, y-h)
		r.LineTo(x+h, y-h)
		r.LineTo(x+h, y+h)
		r.LineTo(x-h, y+h)
		r.ClosePath()
	}

	r.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}
