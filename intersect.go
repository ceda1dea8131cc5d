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
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Numerical tolerances. These are process-wide tuning constants; all
// coordinate-range comparisons share the same epsilon rather than
// taking per-call thresholds.
const (
	// Eps is the comparison epsilon for coordinate-range and
	// parameter-range tests.
	Eps = 1e-5

	// MinEdgeLength is the minimum edge length below which a
	// triangle edge is considered degenerate.
	MinEdgeLength = 1e-5
)

// ErrInvariant reports that a geometric invariant was violated. It
// signals a programming error or NaN input, not a recoverable
// degeneracy; a render that encounters it must be discarded.
var ErrInvariant = errors.New("vectorfoil: geometric invariant violated")

// RayIntKind enumerates the variants of [RayInt].
type RayIntKind int

const (
	// RayColinear means the two lines lie on the same infinite line.
	RayColinear RayIntKind = iota

	// RayParallel means the two lines never meet.
	RayParallel

	// RayIntersecting means the two lines cross at the parameters
	// carried by the RayInt.
	RayIntersecting
)

// RayInt is the classification of two infinite lines, each defined by
// two points. T1 and T2 are the affine parameters along the first and
// second line where the intersection occurs (0 = first point, 1 =
// second point); they are meaningful only when Kind is
// RayIntersecting.
type RayInt struct {
	Kind   RayIntKind
	T1, T2 float64
}

// IsLineLine reports whether the intersection is a genuine crossing of
// the two finite segments, rather than of their infinite extensions.
func (ri RayInt) IsLineLine() bool {
	return ri.Kind == RayIntersecting && insideLineRange(ri.T1) && insideLineRange(ri.T2)
}

// insideLineRange reports whether t lies strictly within the open
// interval (0, 1), with Eps of slack on both ends.
func insideLineRange(t float64) bool {
	return t >= Eps && t <= 1.0-Eps
}

// onLineRange reports whether t is within Eps of 0 or 1.
func onLineRange(t float64) bool {
	return math.Abs(t) < Eps || math.Abs(1.0-t) < Eps
}

// IsDegenerateTriangle reports whether (p0, p1, p2) form a degenerate
// triangle: either adjacent edge is shorter than [MinEdgeLength], or
// the unscaled signed area is below Eps times the product of the edge
// lengths. The area test is scale-relative, so triangles are judged
// the same way regardless of coordinate magnitude.
func IsDegenerateTriangle(p0, p1, p2 mgl64.Vec2) bool {
	p01 := p1.Sub(p0)
	p12 := p2.Sub(p1)

	l01 := p01.Len()
	l12 := p12.Len()
	if l01 <= MinEdgeLength || l12 <= MinEdgeLength {
		return true
	}

	area := p01.X()*p12.Y() - p01.Y()*p12.X()
	return math.Abs(area) <= Eps*l01*l12
}

// BarycentricCoords returns the barycentric coordinates of p with
// respect to tri's 2D projection, solving the 3x3 system that maps
// (x, y, 1) to a weighted combination of the triangle's vertices. The
// weights sum to 1. ok is false if the system is singular, i.e. the
// projected triangle is colinear.
func BarycentricCoords(p mgl64.Vec2, tri *Tri) (v mgl64.Vec3, ok bool) {
	m := mgl64.Mat3FromRows(
		mgl64.Vec3{tri.P[0].X(), tri.P[1].X(), tri.P[2].X()},
		mgl64.Vec3{tri.P[0].Y(), tri.P[1].Y(), tri.P[2].Y()},
		mgl64.Vec3{1, 1, 1},
	)
	if m.Det() == 0 {
		return mgl64.Vec3{}, false
	}
	return m.Inv().Mul3x1(mgl64.Vec3{p.X(), p.Y(), 1}), true
}

// PointTriClass enumerates the variants of [PointTriTest].
type PointTriClass int

const (
	// PointInside means the point is strictly within the triangle.
	PointInside PointTriClass = iota

	// PointOnEdge means the point lies on one of the triangle's
	// edges.
	PointOnEdge

	// PointOutside means the point is outside the triangle.
	PointOutside
)

// PointTriTest is the classification of a 2D point against a
// triangle's 2D projection.
type PointTriTest struct {
	Class PointTriClass

	// Bary holds the barycentric coordinates of the point. Valid
	// only when Class is PointInside.
	Bary mgl64.Vec3

	// Edge is the index of the edge the point lies on. Valid only
	// when Class is PointOnEdge.
	Edge int
}

// PointTriangleTest classifies p against tri using barycentric
// coordinates. A point counts as inside only when all three weights
// are strictly within (Eps, 1-Eps). If the barycentric system is
// singular the point is reported as outside.
//
// The weight-to-edge mapping in the PointOnEdge case is asymmetric:
// the weight for vertex 1 selects edge 1, vertex 2 selects edge 2, and
// vertex 0 selects edge 0. The triangle splitter's edge-index
// bookkeeping depends on exactly this mapping.
func PointTriangleTest(p mgl64.Vec2, tri *Tri) PointTriTest {
	v, ok := BarycentricCoords(p, tri)
	if !ok {
		return PointTriTest{Class: PointOutside}
	}
	switch {
	case insideLineRange(v.X()) && insideLineRange(v.Y()) && insideLineRange(v.Z()):
		return PointTriTest{Class: PointInside, Bary: v}
	case v.X() < -Eps || v.Y() < -Eps || v.Z() < -Eps:
		return PointTriTest{Class: PointOutside}
	case onLineRange(v.X()):
		return PointTriTest{Class: PointOnEdge, Edge: 1}
	case onLineRange(v.Y()):
		return PointTriTest{Class: PointOnEdge, Edge: 2}
	case onLineRange(v.Z()):
		return PointTriTest{Class: PointOnEdge, Edge: 0}
	default:
		return PointTriTest{Class: PointOutside}
	}
}

// ImplicitRayIntersect classifies the intersection of two infinite
// lines, the first through a0 and a1, the second through b0 and b1.
// Any finite parameters count as an intersection; use [LineIntersect]
// to restrict the result to the finite segments.
func ImplicitRayIntersect(a0, a1, b0, b1 mgl64.Vec2) RayInt {
	da := a1.Sub(a0)
	db := b1.Sub(b0)

	// The 2x2 solve below can succeed even in cases we consider
	// degenerate, so the degeneracy checks must come first.
	if IsDegenerateTriangle(a0, a1, b0) && IsDegenerateTriangle(a0, a1, b1) {
		return RayInt{Kind: RayColinear}
	}
	if IsDegenerateTriangle(mgl64.Vec2{}, da, db) {
		return RayInt{Kind: RayParallel}
	}

	m := mgl64.Mat2{da.X(), da.Y(), -db.X(), -db.Y()}
	if m.Det() == 0 {
		return RayInt{Kind: RayParallel}
	}
	t := m.Inv().Mul2x1(b0.Sub(a0))
	return RayInt{Kind: RayIntersecting, T1: t.X(), T2: t.Y()}
}

// LineIntersect classifies the intersection of the two finite
// segments a0-a1 and b0-b1. An intersection of the infinite
// extensions whose parameters fall outside (Eps, 1-Eps) on either
// segment is reported as RayParallel.
func LineIntersect(a0, a1, b0, b1 mgl64.Vec2) RayInt {
	isect := ImplicitRayIntersect(a0, a1, b0, b1)
	if isect.Kind == RayIntersecting && !isect.IsLineLine() {
		return RayInt{Kind: RayParallel}
	}
	return isect
}

// TriangleInTriangle2D reports whether every vertex of inner lies
// inside or on the boundary of outer, in 2D.
func TriangleInTriangle2D(inner, outer *Tri) bool {
	for i := range 3 {
		switch PointTriangleTest(inner.P[i].Vec2(), outer).Class {
		case PointInside, PointOnEdge:
		default:
			return false
		}
	}
	return true
}

// SplitKind enumerates the variants of [SplitResult].
type SplitKind int

const (
	// SplitUnchanged means the segment does not cut the triangle's
	// interior; the triangle survives as-is.
	SplitUnchanged SplitKind = iota

	// SplitPieces means the triangle was cut into the sub-triangles
	// carried by the SplitResult.
	SplitPieces

	// SplitDegenerate means the triangle is too thin or small to cut
	// meaningfully; the caller should drop it rather than re-queue
	// it.
	SplitDegenerate
)

// SplitResult is the outcome of [SplitTriangleBySegment]. Tris is
// populated only when Kind is SplitPieces.
type SplitResult struct {
	Kind SplitKind
	Tris []Tri
}

// SplitTriangleBySegment cuts tri along the line carrying the segment
// p0-p1, yielding two or three sub-triangles whose union covers the
// original. Edges created by the cut are tagged [Split]; surviving
// portions of original edges keep their tags.
//
// The caller must ensure the segment is "on top of" the triangle in
// screen space; the result is unspecified when this precondition is
// violated. A non-nil error wraps [ErrInvariant] and means the case
// analysis observed an impossible combination (typically NaN input or
// a broken precondition); the surrounding render must be aborted.
func SplitTriangleBySegment(tri *Tri, p0, p1 mgl64.Vec2) (SplitResult, error) {
	var isects [3]RayInt
	for i := range 3 {
		isects[i] = ImplicitRayIntersect(p0, p1, tri.P[i].Vec2(), tri.P[(i+1)%3].Vec2())
	}

	// A genuine segment-segment crossing with an edge forces a split
	// on the first such edge in index order.
	for i := range 3 {
		if isects[i].IsLineLine() {
			return splitOnEdge(tri, i, &isects)
		}
	}

	// If any edge is colinear with the segment, the cut runs along
	// the boundary and no interior split is needed.
	for i := range 3 {
		if isects[i].Kind == RayColinear {
			return SplitResult{Kind: SplitUnchanged}, nil
		}
	}

	e0 := PointTriangleTest(p0, tri)
	e1 := PointTriangleTest(p1, tri)

	switch {
	case e0.Class == PointOutside && e1.Class == PointOutside:
		// A segment crossing the triangle with both endpoints
		// outside necessarily crosses at least one edge, which was
		// handled above.
		return SplitResult{Kind: SplitUnchanged}, nil

	case e0.Class == PointInside && e1.Class == PointInside:
		// Both endpoints strictly inside: extend the segment and
		// split on the nearest edge crossing in the segment's
		// direction from p0.
		best := -1
		bestT := math.Inf(1)
		for i := range 3 {
			if isects[i].Kind == RayIntersecting && isects[i].T1 > 0 && isects[i].T1 < bestT {
				best = i
				bestT = isects[i].T1
			}
		}
		if best < 0 {
			return SplitResult{}, fmt.Errorf("interior segment has no positive edge crossing: %w", ErrInvariant)
		}
		return splitOnEdge(tri, best, &isects)

	case e0.Class == PointOnEdge && e1.Class == PointInside:
		return splitOnEdge(tri, e0.Edge, &isects)

	case e0.Class == PointInside && e1.Class == PointOnEdge:
		return splitOnEdge(tri, e1.Edge, &isects)

	case e0.Class == PointOnEdge && e1.Class == PointOnEdge:
		if e0.Edge == e1.Edge {
			return SplitResult{Kind: SplitUnchanged}, nil
		}
		if isects[e0.Edge].Kind == RayIntersecting {
			return splitOnEdge(tri, e0.Edge, &isects)
		}
		return splitOnEdge(tri, e1.Edge, &isects)

	case e0.Class == PointOutside && e1.Class == PointOnEdge,
		e0.Class == PointOnEdge && e1.Class == PointOutside:
		return SplitResult{Kind: SplitUnchanged}, nil

	default:
		if IsDegenerateTriangle(tri.P[0].Vec2(), tri.P[1].Vec2(), tri.P[2].Vec2()) {
			return SplitResult{Kind: SplitDegenerate}, nil
		}
		return SplitResult{}, fmt.Errorf("unhandled point classification %v/%v: %w", e0.Class, e1.Class, ErrInvariant)
	}
}

// perspectiveLerp interpolates between two points of the form
// (x/w, y/w, z/w, w). The dehomogenized components interpolate
// linearly in t; w interpolates harmonically, so that the result is
// the correct screen-space-linear, depth-nonlinear blend. Note the
// reversal in the denominator: w(0) = p0.W().
func perspectiveLerp(t float64, p0, p1 mgl64.Vec4) mgl64.Vec4 {
	p := p0.Vec3().Mul(1 - t).Add(p1.Vec3().Mul(t))
	w := p0.W() * p1.W() / ((1-t)*p1.W() + t*p0.W())
	return mgl64.Vec4{p.X(), p.Y(), p.Z(), w}
}

// splitOnEdge cuts tri along the splitting segment, entering through
// edge e at that edge's stored intersection parameter. Depending on
// whether the cut exits through one of the other two edges or through
// the opposite vertex, the result is three or two sub-triangles.
func splitOnEdge(tri *Tri, e int, isects *[3]RayInt) (SplitResult, error) {
	e1 := (e + 1) % 3
	e2 := (e + 2) % 3

	if isects[e].Kind != RayIntersecting {
		return SplitResult{}, fmt.Errorf("split edge %d has no intersection parameter: %w", e, ErrInvariant)
	}
	p := perspectiveLerp(isects[e].T2, tri.P[e], tri.P[e1])

	// Exit through edge e+1.
	if isects[e1].Kind == RayIntersecting && insideLineRange(isects[e1].T2) {
		q := perspectiveLerp(isects[e1].T2, tri.P[e1], tri.P[e2])
		return SplitResult{Kind: SplitPieces, Tris: []Tri{
			{
				P: [3]mgl64.Vec4{p, tri.P[e1], q},
				E: [3]EdgeType{tri.E[e], tri.E[e1], Split},
			},
			{
				P: [3]mgl64.Vec4{p, q, tri.P[e2]},
				E: [3]EdgeType{Split, tri.E[e1], Split},
			},
			{
				P: [3]mgl64.Vec4{p, tri.P[e2], tri.P[e]},
				E: [3]EdgeType{Split, tri.E[e2], tri.E[e]},
			},
		}}, nil
	}

	// Exit through edge e+2.
	if isects[e2].Kind == RayIntersecting && insideLineRange(isects[e2].T2) {
		q := perspectiveLerp(isects[e2].T2, tri.P[e2], tri.P[e])
		return SplitResult{Kind: SplitPieces, Tris: []Tri{
			{
				P: [3]mgl64.Vec4{p, tri.P[e1], tri.P[e2]},
				E: [3]EdgeType{tri.E[e], tri.E[e1], Split},
			},
			{
				P: [3]mgl64.Vec4{p, tri.P[e2], q},
				E: [3]EdgeType{Split, tri.E[e2], Split},
			},
			{
				P: [3]mgl64.Vec4{p, q, tri.P[e]},
				E: [3]EdgeType{Split, tri.E[e2], tri.E[e]},
			},
		}}, nil
	}

	// Otherwise the cut exits through the opposite vertex.
	return SplitResult{Kind: SplitPieces, Tris: []Tri{
		{
			P: [3]mgl64.Vec4{p, tri.P[e1], tri.P[e2]},
			E: [3]EdgeType{tri.E[e], tri.E[e1], Split},
		},
		{
			P: [3]mgl64.Vec4{p, tri.P[e2], tri.P[e]},
			E: [3]EdgeType{Split, tri.E[e2], tri.E[e]},
		},
	}}, nil
}
