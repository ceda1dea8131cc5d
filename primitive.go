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

import (
	"maps"

	"github.com/go-gl/mathgl/mgl64"
)

// EdgeType classifies a triangle edge or an output line.
type EdgeType int

const (
	// Visible marks an edge that is part of the drawing proper.
	Visible EdgeType = iota

	// Invisible marks an interior edge created when a polygon is
	// fan-triangulated.
	Invisible

	// Hidden marks an edge that is fully occluded by nearer geometry.
	// Once an edge is Hidden it is never reclassified.
	Hidden

	// Split marks an edge newly created by cutting a triangle.
	Split

	// Culled marks an edge of a back-facing triangle.
	Culled
)

// ClassName returns the CSS class name used for this edge type in SVG
// output.
func (e EdgeType) ClassName() string {
	switch e {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Hidden:
		return "hidden"
	case Split:
		return "split"
	case Culled:
		return "culled"
	default:
		return "unknown"
	}
}

// Winding is the rotational order of a triangle's vertices in 2D.
type Winding int

const (
	Clockwise Winding = iota
	CounterClockwise
	Degenerate
)

// Tri is a triangle in clip space. P holds the three vertices in the
// form (x/w, y/w, z/w, w); E holds the edge classifications, where edge
// i runs from vertex i to vertex (i+1)%3. All operations on Tri keep P
// and E aligned under this convention.
type Tri struct {
	P [3]mgl64.Vec4
	E [3]EdgeType
}

// Hide marks all three edges as Hidden.
func (t *Tri) Hide() {
	t.E[0] = Hidden
	t.E[1] = Hidden
	t.E[2] = Hidden
}

// IsHidden reports whether all three edges are Hidden.
func (t *Tri) IsHidden() bool {
	return t.E[0] == Hidden && t.E[1] == Hidden && t.E[2] == Hidden
}

// Cull returns a copy of the triangle with all edges marked Culled.
func (t Tri) Cull() Tri {
	t.E = [3]EdgeType{Culled, Culled, Culled}
	return t
}

// IsCulled reports whether all three edges are Culled.
func (t *Tri) IsCulled() bool {
	return t.E[0] == Culled && t.E[1] == Culled && t.E[2] == Culled
}

// Winding2D returns the winding of the triangle's 2D projection. The
// signed-area threshold scales with the adjacent edge lengths, so the
// answer does not depend on the overall coordinate magnitude.
func (t *Tri) Winding2D() Winding {
	p01 := t.P[1].Sub(t.P[0])
	p12 := t.P[2].Sub(t.P[1])
	area := p01.X()*p12.Y() - p01.Y()*p12.X()
	threshold := Eps * p01.Vec2().Len() * p12.Vec2().Len()
	switch {
	case area > threshold:
		return CounterClockwise
	case area < -threshold:
		return Clockwise
	default:
		return Degenerate
	}
}

// Reverse returns the triangle with its vertex order reversed. Edge
// tags follow their vertices: swapping vertices 1 and 2 turns edge 0
// into edge 2 and vice versa, while edge 1 keeps its tag.
func (t Tri) Reverse() Tri {
	t.P[1], t.P[2] = t.P[2], t.P[1]
	t.E[0], t.E[2] = t.E[2], t.E[0]
	return t
}

// Primitive is a single drawable: a point, a line segment, or a
// triangle. The three concrete types are [Point], [Line] and
// [Triangle].
type Primitive interface {
	// Centroid returns the arithmetic mean of the primitive's
	// dehomogenized vertex positions.
	Centroid() mgl64.Vec3

	isPrimitive()
}

// Point is a single point primitive.
type Point struct {
	P mgl64.Vec4
}

// Line is a line segment primitive.
type Line struct {
	P [2]mgl64.Vec4
}

// Triangle is a triangle primitive.
type Triangle struct {
	Tri Tri
}

func (p Point) Centroid() mgl64.Vec3 {
	return p.P.Vec3()
}

func (l Line) Centroid() mgl64.Vec3 {
	return l.P[0].Add(l.P[1]).Vec3().Mul(0.5)
}

func (t Triangle) Centroid() mgl64.Vec3 {
	return t.Tri.P[0].Add(t.Tri.P[1]).Add(t.Tri.P[2]).Vec3().Mul(1.0 / 3.0)
}

func (Point) isPrimitive()    {}
func (Line) isPrimitive()     {}
func (Triangle) isPrimitive() {}

// splitKey identifies one edge of one entry in the renderer's accepted
// list.
type splitKey struct {
	prim int // index into the accepted list
	edge int // edge index, 0-2
}

// zsortPrim wraps a primitive queued for rendering. The depth key
// orders the work queue nearest-first; presplit records which accepted
// edges this primitive (or an ancestor before a split) has already been
// tested against, so that no lineage is cut twice by the same edge.
type zsortPrim struct {
	p        Primitive
	depth    float64
	presplit map[splitKey]struct{}
}

// newZsortPrim builds a queue entry, inheriting a copy of the parent's
// presplit set. parent may be nil.
func newZsortPrim(p Primitive, parent map[splitKey]struct{}) *zsortPrim {
	z := &zsortPrim{
		p:     p,
		depth: p.Centroid().Z(),
	}
	if parent != nil {
		z.presplit = maps.Clone(parent)
	} else {
		z.presplit = make(map[splitKey]struct{})
	}
	return z
}

func (z *zsortPrim) alreadyChecked(prim, edge int) bool {
	_, ok := z.presplit[splitKey{prim, edge}]
	return ok
}

// primHeap is a min-heap of queued primitives ordered by depth, so that
// the primitive nearest the camera is popped first. It implements
// container/heap.Interface.
type primHeap []*zsortPrim

func (h primHeap) Len() int           { return len(h) }
func (h primHeap) Less(i, j int) bool { return h[i].depth < h[j].depth }
func (h primHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *primHeap) Push(x any) {
	*h = append(*h, x.(*zsortPrim))
}

func (h *primHeap) Pop() any {
	old := *h
	n := len(old)
	z := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return z
}
