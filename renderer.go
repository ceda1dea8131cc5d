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
	"container/heap"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/vec"
)

// Renderer accumulates 3D primitives and resolves their mutual
// occlusion into a 2D vector drawing.
//
// A Renderer is not safe for concurrent use; in particular no
// primitive may be added while [Renderer.Render] is running.
type Renderer struct {
	// CullBackFaces controls what happens to clockwise (back-facing)
	// triangles. When false, they are re-wound to counter-clockwise
	// and take part in occlusion like any other triangle. When true,
	// they are tagged Culled and passed straight to the output,
	// neither occluding nor being occluded.
	CullBackFaces bool

	clip       mgl64.Mat4
	prims      []Primitive
	depthRange [2]float64
}

// New returns a Renderer projecting through the given clip transform,
// typically a projection matrix composed with a view matrix. The
// default depth range is [-1, 1].
func New(clip mgl64.Mat4) *Renderer {
	return &Renderer{
		clip:       clip,
		depthRange: [2]float64{-1, 1},
	}
}

// SetDepthRange sets the near/far interval used for conservative
// depth rejection of projected primitives.
func (r *Renderer) SetDepthRange(near, far float64) {
	r.depthRange = [2]float64{near, far}
}

// AddPrimitive appends a primitive to the render list.
func (r *Renderer) AddPrimitive(p Primitive) {
	r.prims = append(r.prims, p)
}

// AddPoint adds a single point.
func (r *Renderer) AddPoint(p mgl64.Vec3) {
	r.AddPrimitive(Point{P: p.Vec4(1)})
}

// AddLine adds a line segment.
func (r *Renderer) AddLine(p0, p1 mgl64.Vec3) {
	r.AddPrimitive(Line{P: [2]mgl64.Vec4{p0.Vec4(1), p1.Vec4(1)}})
}

// AddTriangle adds a triangle with all edges Visible.
func (r *Renderer) AddTriangle(p0, p1, p2 mgl64.Vec3) {
	r.AddPrimitive(Triangle{Tri: Tri{
		P: [3]mgl64.Vec4{p0.Vec4(1), p1.Vec4(1), p2.Vec4(1)},
		E: [3]EdgeType{Visible, Visible, Visible},
	}})
}

// AddPolygon fan-triangulates an ordered convex polygon around its
// first vertex. Polygon boundary edges are Visible; the spoke edges
// shared between consecutive fan triangles are Invisible. A polygon
// with fewer than three points contributes nothing.
func (r *Renderer) AddPolygon(pts []mgl64.Vec3) {
	n := len(pts)
	if n < 3 {
		return
	}
	for i := 1; i < n-1; i++ {
		e0, e2 := Invisible, Invisible
		if i == 1 {
			e0 = Visible
		}
		if i == n-2 {
			e2 = Visible
		}
		r.AddPrimitive(Triangle{Tri: Tri{
			P: [3]mgl64.Vec4{pts[0].Vec4(1), pts[i].Vec4(1), pts[i+1].Vec4(1)},
			E: [3]EdgeType{e0, Visible, e2},
		}})
	}
}

// project maps a homogeneous point through the clip transform and
// performs the perspective divide, keeping w for later
// perspective-correct interpolation.
func (r *Renderer) project(p mgl64.Vec4) mgl64.Vec4 {
	c := r.clip.Mul4x1(mgl64.Vec4{p.X(), p.Y(), p.Z(), 1})
	w := c.W()
	return mgl64.Vec4{c.X() / w, c.Y() / w, c.Z() / w, w}
}

// projectPrimitive projects every vertex of a primitive.
func (r *Renderer) projectPrimitive(p Primitive) Primitive {
	switch p := p.(type) {
	case Point:
		return Point{P: r.project(p.P)}
	case Line:
		return Line{P: [2]mgl64.Vec4{r.project(p.P[0]), r.project(p.P[1])}}
	case Triangle:
		t := p.Tri
		return Triangle{Tri: Tri{
			P: [3]mgl64.Vec4{r.project(t.P[0]), r.project(t.P[1]), r.project(t.P[2])},
			E: t.E,
		}}
	default:
		return p
	}
}

// isClipped reports whether a projected primitive can be trivially
// rejected: all of its vertices lie on the wrong side of one of the
// six axis-aligned clipping planes. Primitives straddling a plane are
// never clipped, only rejected whole or passed through untouched.
func (r *Renderer) isClipped(p Primitive) bool {
	var pts []mgl64.Vec4
	switch p := p.(type) {
	case Point:
		pts = []mgl64.Vec4{p.P}
	case Line:
		pts = p.P[:]
	case Triangle:
		pts = p.Tri.P[:]
	}

	outside := func(f func(mgl64.Vec4) bool) bool {
		for _, v := range pts {
			if !f(v) {
				return false
			}
		}
		return true
	}

	return outside(func(v mgl64.Vec4) bool { return v.X() < -1 }) ||
		outside(func(v mgl64.Vec4) bool { return v.X() > 1 }) ||
		outside(func(v mgl64.Vec4) bool { return v.Y() < -1 }) ||
		outside(func(v mgl64.Vec4) bool { return v.Y() > 1 }) ||
		outside(func(v mgl64.Vec4) bool { return v.Z() < r.depthRange[0] }) ||
		outside(func(v mgl64.Vec4) bool { return v.Z() > r.depthRange[1] })
}

// push wraps p in a queue entry and adds it to the work queue. extra,
// if non-nil, is recorded in the entry's presplit set in addition to
// the inherited parent set. A NaN depth key would make the queue
// order undefined, so it is rejected as fatal.
func push(h *primHeap, p Primitive, parent map[splitKey]struct{}, extra *splitKey) error {
	z := newZsortPrim(p, parent)
	if math.IsNaN(z.depth) {
		return fmt.Errorf("NaN depth key on %T: %w", p, ErrInvariant)
	}
	if extra != nil {
		z.presplit[*extra] = struct{}{}
	}
	heap.Push(h, z)
	return nil
}

// Render projects, culls and occlusion-resolves the accumulated
// primitives, returning the flattened 2D result. On error the partial
// result is discarded and must not be used.
//
// Triangles are processed nearest-first. Whenever an edge of an
// already-accepted triangle crosses the silhouette of the current
// triangle, the current triangle is split along that edge and its
// pieces are re-queued; a triangle whose 2D silhouette is completely
// contained in an accepted triangle is marked Hidden. Points and
// lines are passed through without occlusion testing.
func (r *Renderer) Render() (*RenderPaths, error) {
	var h primHeap
	var culled []Tri

	for _, p := range r.prims {
		pp := r.projectPrimitive(p)
		if r.isClipped(pp) {
			continue
		}
		if t, ok := pp.(Triangle); ok {
			switch t.Tri.Winding2D() {
			case Degenerate:
				continue
			case Clockwise:
				if r.CullBackFaces {
					culled = append(culled, t.Tri.Cull())
					continue
				}
				pp = Triangle{Tri: t.Tri.Reverse()}
			}
		}
		if err := push(&h, pp, nil, nil); err != nil {
			return nil, err
		}
	}

	var accepted []Primitive
	for h.Len() > 0 {
		x := heap.Pop(&h).(*zsortPrim)

		t, ok := x.p.(Triangle)
		if !ok {
			// Points and lines are rendered unconditionally.
			accepted = append(accepted, x.p)
			continue
		}

		tri := t.Tri
		switch tri.Winding2D() {
		case Degenerate:
			// Splitting can produce slivers; drop them here.
			continue
		case Clockwise:
			tri = tri.Reverse()
		}

		requeued, err := r.occlude(&tri, x, accepted, &h)
		if err != nil {
			return nil, err
		}
		if requeued {
			continue
		}
		accepted = append(accepted, Triangle{Tri: tri})
	}

	return flatten(accepted, culled), nil
}

// occlude tests tri against every accepted triangle. If an accepted
// edge splits tri, the pieces are pushed onto the queue and occlude
// reports true; the caller must then abandon tri. Otherwise tri may
// have been marked Hidden in place and the caller should accept it.
func (r *Renderer) occlude(tri *Tri, x *zsortPrim, accepted []Primitive, h *primHeap) (requeued bool, err error) {
	for ri, ap := range accepted {
		rt, ok := ap.(Triangle)
		if !ok || rt.Tri.IsHidden() {
			continue
		}

		didSplit := false
		for ei := range 3 {
			if x.alreadyChecked(ri, ei) {
				continue
			}
			a := rt.Tri.P[ei].Vec2()
			b := rt.Tri.P[(ei+1)%3].Vec2()

			res, err := SplitTriangleBySegment(tri, a, b)
			if err != nil {
				return false, err
			}
			if res.Kind != SplitPieces {
				continue
			}

			key := splitKey{prim: ri, edge: ei}
			for _, child := range res.Tris {
				if err := push(h, Triangle{Tri: child}, x.presplit, &key); err != nil {
					return false, err
				}
			}
			didSplit = true
			break
		}
		if didSplit {
			return true, nil
		}

		// No accepted edge cuts tri. If tri's whole silhouette lies
		// within this nearer triangle, it is occluded; the first
		// container found is authoritative because rendering
		// proceeds nearest-first.
		if TriangleInTriangle2D(tri, &rt.Tri) {
			tri.Hide()
			return false, nil
		}
	}
	return false, nil
}

// flatten converts the accepted primitives (and any culled triangles)
// into the final 2D output.
func flatten(accepted []Primitive, culled []Tri) *RenderPaths {
	rp := &RenderPaths{}
	for _, p := range accepted {
		switch p := p.(type) {
		case Point:
			rp.Points = append(rp.Points, xy(p.P))
		case Line:
			rp.Lines = append(rp.Lines, RenderLine{
				P0:   xy(p.P[0]),
				P1:   xy(p.P[1]),
				Edge: Visible,
			})
		case Triangle:
			appendTriLines(rp, &p.Tri)
		}
	}
	for i := range culled {
		appendTriLines(rp, &culled[i])
	}
	return rp
}

func appendTriLines(rp *RenderPaths, t *Tri) {
	for i := range 3 {
		rp.Lines = append(rp.Lines, RenderLine{
			P0:   xy(t.P[i]),
			P1:   xy(t.P[(i+1)%3]),
			Edge: t.E[i],
		})
	}
}

func xy(p mgl64.Vec4) vec.Vec2 {
	return vec.Vec2{X: p.X(), Y: p.Y()}
}
