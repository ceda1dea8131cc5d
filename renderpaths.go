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

package vectorfoil

import "seehuhn.de/go/geom/vec"

// RenderLine is a single output line segment in normalized device
// coordinates, tagged with the visibility class of the edge it came
// from.
type RenderLine struct {
	P0, P1 vec.Vec2
	Edge   EdgeType
}

// RenderPaths is the output of [Renderer.Render]: the accepted
// primitives flattened into 2D points and tagged line segments. It is
// produced once at the end of rendering and never mutated afterwards.
type RenderPaths struct {
	Points []vec.Vec2
	Lines  []RenderLine
}

// IsEmpty reports whether there is nothing to draw.
func (rp *RenderPaths) IsEmpty() bool {
	return len(rp.Points) == 0 && len(rp.Lines) == 0
}

// VisibleOnly returns a copy of rp with all non-Visible lines removed.
// Points are kept unchanged.
func (rp *RenderPaths) VisibleOnly() *RenderPaths {
	out := &RenderPaths{
		Points: rp.Points,
	}
	for _, l := range rp.Lines {
		if l.Edge == Visible {
			out.Lines = append(out.Lines, l)
		}
	}
	return out
}
