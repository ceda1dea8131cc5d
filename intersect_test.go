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
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approxEq(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// unitTri is the right triangle (0,0), (1,0), (0,1) with w=1
// everywhere and distinct edge tags, so that tag propagation through
// splits is observable.
func unitTri() Tri {
	return Tri{
		P: [3]mgl64.Vec4{
			{0, 0, 0, 1},
			{1, 0, 0, 1},
			{0, 1, 0, 1},
		},
		E: [3]EdgeType{Visible, Invisible, Culled},
	}
}

// triArea2D returns the unsigned area of the triangle's 2D projection.
func triArea2D(t *Tri) float64 {
	p01 := t.P[1].Sub(t.P[0])
	p02 := t.P[2].Sub(t.P[0])
	return 0.5 * math.Abs(p01.X()*p02.Y()-p01.Y()*p02.X())
}

func TestLineIntersectCross(t *testing.T) {
	// Slide one diagonal along its own direction; the crossing with
	// the other diagonal stays at the origin.
	const n = 11
	for i := range n {
		dt := float64(i) / float64(n+1)
		dv := mgl64.Vec2{dt, dt}

		isect := LineIntersect(
			mgl64.Vec2{-1, -1}.Add(dv),
			mgl64.Vec2{1, 1}.Add(dv),
			mgl64.Vec2{-1, 1},
			mgl64.Vec2{1, -1},
		)
		if isect.Kind != RayIntersecting {
			t.Fatalf("dt=%g: got kind %v, want RayIntersecting", dt, isect.Kind)
		}
		if !approxEq(isect.T1, 0.5*(1-dt), 1e-9) || !approxEq(isect.T2, 0.5, 1e-9) {
			t.Errorf("dt=%g: got (%g, %g), want (%g, 0.5)", dt, isect.T1, isect.T2, 0.5*(1-dt))
		}

		// Round trip: both parameterizations reproduce the same
		// crossing point.
		ax := (-1 + dt) + isect.T1*2
		ay := (-1 + dt) + isect.T1*2
		bx := -1 + isect.T2*2
		by := 1 - isect.T2*2
		if !approxEq(ax, bx, 1e-9) || !approxEq(ay, by, 1e-9) {
			t.Errorf("dt=%g: crossing points differ: (%g,%g) vs (%g,%g)", dt, ax, ay, bx, by)
		}
	}
}

func TestLineIntersectColinear(t *testing.T) {
	// A segment sliding along the same infinite line classifies as
	// colinear regardless of offset.
	const n = 11
	for i := range n {
		dt := float64(i) / float64(n+1)
		dv := mgl64.Vec2{dt, dt}

		isect := LineIntersect(
			mgl64.Vec2{-1, -1}.Add(dv),
			mgl64.Vec2{1, 1}.Add(dv),
			mgl64.Vec2{-1, -1},
			mgl64.Vec2{1, 1},
		)
		if isect.Kind != RayColinear {
			t.Errorf("dt=%g: got kind %v, want RayColinear", dt, isect.Kind)
		}
	}
}

func TestLineIntersectParallel(t *testing.T) {
	const n = 11
	for i := 1; i < n; i++ {
		dt := float64(i) / float64(n+1)
		dv := mgl64.Vec2{-dt, dt}

		isect := LineIntersect(
			mgl64.Vec2{-1, -1}.Add(dv),
			mgl64.Vec2{1, 1}.Add(dv),
			mgl64.Vec2{-1, -1},
			mgl64.Vec2{1, 1},
		)
		if isect.Kind != RayParallel {
			t.Errorf("dt=%g: got kind %v, want RayParallel", dt, isect.Kind)
		}
	}
}

func TestLineIntersectOutOfRange(t *testing.T) {
	// The infinite lines cross, but outside both segments.
	isect := LineIntersect(
		mgl64.Vec2{2, 2}, mgl64.Vec2{3, 3},
		mgl64.Vec2{-1, 1}, mgl64.Vec2{1, -1},
	)
	if isect.Kind != RayParallel {
		t.Errorf("got kind %v, want RayParallel", isect.Kind)
	}
}

func TestIsDegenerateTriangle(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 mgl64.Vec2
		want       bool
	}{
		{"right", mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1}, false},
		{"tiny_but_fat", mgl64.Vec2{0, 0}, mgl64.Vec2{1e-3, 0}, mgl64.Vec2{0, 1e-3}, false},
		{"colinear", mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1}, mgl64.Vec2{2, 2}, true},
		{"short_edge", mgl64.Vec2{0, 0}, mgl64.Vec2{1e-7, 0}, mgl64.Vec2{0, 1}, true},
		{"near_colinear", mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{2, 1e-7}, true},
		{"large_scale", mgl64.Vec2{0, 0}, mgl64.Vec2{1e6, 0}, mgl64.Vec2{0, 1e6}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDegenerateTriangle(tc.p0, tc.p1, tc.p2); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBarycentricCoords(t *testing.T) {
	tri := unitTri()

	points := []mgl64.Vec2{
		{0.25, 0.25},
		{0.1, 0.1},
		{0.5, 0},
		{0, 0},
		{2, 3},
		{-0.5, 0.25},
	}
	for _, p := range points {
		v, ok := BarycentricCoords(p, &tri)
		if !ok {
			t.Fatalf("%v: no solution for non-degenerate triangle", p)
		}
		if !approxEq(v.X()+v.Y()+v.Z(), 1, Eps) {
			t.Errorf("%v: weights sum to %g, want 1", p, v.X()+v.Y()+v.Z())
		}

		// The weights must reproduce the point.
		rx := v.X()*tri.P[0].X() + v.Y()*tri.P[1].X() + v.Z()*tri.P[2].X()
		ry := v.X()*tri.P[0].Y() + v.Y()*tri.P[1].Y() + v.Z()*tri.P[2].Y()
		if !approxEq(rx, p.X(), Eps) || !approxEq(ry, p.Y(), Eps) {
			t.Errorf("%v: weights reconstruct (%g, %g)", p, rx, ry)
		}
	}

	// A colinear triangle has no solution.
	degen := Tri{P: [3]mgl64.Vec4{
		{0, 0, 0, 1},
		{1, 1, 0, 1},
		{2, 2, 0, 1},
	}}
	if _, ok := BarycentricCoords(mgl64.Vec2{0.5, 0.5}, &degen); ok {
		t.Error("expected no solution for colinear triangle")
	}
}

func TestPointTriangleTest(t *testing.T) {
	tri := unitTri()

	tests := []struct {
		name  string
		p     mgl64.Vec2
		class PointTriClass
		edge  int
	}{
		{"inside_center", mgl64.Vec2{0.25, 0.25}, PointInside, 0},
		{"inside_near_corner", mgl64.Vec2{0.01, 0.01}, PointInside, 0},
		{"outside_right", mgl64.Vec2{2, 0.5}, PointOutside, 0},
		{"outside_below", mgl64.Vec2{0.5, -0.5}, PointOutside, 0},
		{"on_edge0", mgl64.Vec2{0.5, 0}, PointOnEdge, 0},
		{"on_edge1", mgl64.Vec2{0.5, 0.5}, PointOnEdge, 1},
		{"on_edge2", mgl64.Vec2{0, 0.5}, PointOnEdge, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PointTriangleTest(tc.p, &tri)
			if got.Class != tc.class {
				t.Fatalf("got class %v, want %v", got.Class, tc.class)
			}
			if tc.class == PointOnEdge && got.Edge != tc.edge {
				t.Errorf("got edge %d, want %d", got.Edge, tc.edge)
			}
			if tc.class == PointInside {
				sum := got.Bary.X() + got.Bary.Y() + got.Bary.Z()
				if !approxEq(sum, 1, Eps) {
					t.Errorf("barycentric weights sum to %g", sum)
				}
			}
		})
	}

	// A colinear triangle classifies everything as outside.
	degen := Tri{P: [3]mgl64.Vec4{
		{0, 0, 0, 1},
		{1, 1, 0, 1},
		{2, 2, 0, 1},
	}}
	if got := PointTriangleTest(mgl64.Vec2{1, 1}, &degen); got.Class != PointOutside {
		t.Errorf("degenerate triangle: got class %v, want PointOutside", got.Class)
	}
}

func TestTriangleInTriangle2D(t *testing.T) {
	outer := unitTri()

	// Containment is reflexive (boundary-inclusive).
	if !TriangleInTriangle2D(&outer, &outer) {
		t.Error("triangle not contained in itself")
	}

	inner := Tri{P: [3]mgl64.Vec4{
		{0.1, 0.1, 0, 1},
		{0.5, 0.1, 0, 1},
		{0.1, 0.5, 0, 1},
	}}
	if !TriangleInTriangle2D(&inner, &outer) {
		t.Error("strictly interior triangle not contained")
	}
	if TriangleInTriangle2D(&outer, &inner) {
		t.Error("outer triangle contained in inner")
	}

	poking := Tri{P: [3]mgl64.Vec4{
		{0.1, 0.1, 0, 1},
		{2, 0.1, 0, 1},
		{0.1, 0.5, 0, 1},
	}}
	if TriangleInTriangle2D(&poking, &outer) {
		t.Error("triangle with outside vertex reported contained")
	}
}

func TestSplitTriangleBySegment(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 mgl64.Vec2
		kind   SplitKind
		pieces int
	}{
		// Vertical segment crossing edges 0 and 1.
		{"through_two_edges", mgl64.Vec2{0.5, -0.5}, mgl64.Vec2{0.5, 0.5}, SplitPieces, 3},
		// Endpoint on edge 0, other endpoint inside.
		{"on_edge_to_inside", mgl64.Vec2{0.5, 0}, mgl64.Vec2{0.5, 0.25}, SplitPieces, 3},
		// Both endpoints strictly inside; the extended cut exits
		// through vertex 0, so only two pieces result.
		{"interior_segment", mgl64.Vec2{0.2, 0.2}, mgl64.Vec2{0.3, 0.3}, SplitPieces, 2},
		// Segment colinear with edge 2.
		{"along_edge", mgl64.Vec2{0, 0}, mgl64.Vec2{0, 1}, SplitUnchanged, 0},
		// Both endpoints outside, infinite line missing the triangle.
		{"fully_outside", mgl64.Vec2{2, 2}, mgl64.Vec2{3, 3}, SplitUnchanged, 0},
		// One endpoint on an edge, other outside.
		{"on_edge_to_outside", mgl64.Vec2{0.5, 0}, mgl64.Vec2{0.5, -0.5}, SplitUnchanged, 0},
		// Both endpoints on the same edge.
		{"both_on_same_edge", mgl64.Vec2{0.25, 0}, mgl64.Vec2{0.75, 0}, SplitUnchanged, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tri := unitTri()
			res, err := SplitTriangleBySegment(&tri, tc.p0, tc.p1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Kind != tc.kind {
				t.Fatalf("got kind %v, want %v", res.Kind, tc.kind)
			}
			if res.Kind != SplitPieces {
				return
			}
			if len(res.Tris) != tc.pieces {
				t.Fatalf("got %d pieces, want %d", len(res.Tris), tc.pieces)
			}

			// The pieces must cover the original triangle exactly.
			total := 0.0
			for i := range res.Tris {
				total += triArea2D(&res.Tris[i])
			}
			if want := triArea2D(&tri); !approxEq(total, want, 1e-9) {
				t.Errorf("piece areas sum to %g, want %g", total, want)
			}
		})
	}
}

func TestSplitEdgeTagsThreeWay(t *testing.T) {
	// Vertical cut at x=0.5 enters through edge 0 and exits through
	// edge 1, producing three pieces with a fixed tag layout.
	tri := unitTri()
	res, err := SplitTriangleBySegment(&tri, mgl64.Vec2{0.5, -0.5}, mgl64.Vec2{0.5, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if res.Kind != SplitPieces || len(res.Tris) != 3 {
		t.Fatalf("got %v with %d pieces, want SplitPieces with 3", res.Kind, len(res.Tris))
	}

	wantTags := [3][3]EdgeType{
		{tri.E[0], tri.E[1], Split},
		{Split, tri.E[1], Split},
		{Split, tri.E[2], tri.E[0]},
	}
	for i, want := range wantTags {
		if res.Tris[i].E != want {
			t.Errorf("piece %d: got tags %v, want %v", i, res.Tris[i].E, want)
		}
	}

	// The cut points are on edges 0 and 1.
	p := res.Tris[0].P[0]
	if !approxEq(p.X(), 0.5, Eps) || !approxEq(p.Y(), 0, Eps) {
		t.Errorf("first cut point at (%g, %g), want (0.5, 0)", p.X(), p.Y())
	}
	q := res.Tris[0].P[2]
	if !approxEq(q.X(), 0.5, Eps) || !approxEq(q.Y(), 0.5, Eps) {
		t.Errorf("second cut point at (%g, %g), want (0.5, 0.5)", q.X(), q.Y())
	}
}

func TestSplitEdgeTagsTwoWay(t *testing.T) {
	// A cut entering through edge 0 and exiting exactly through the
	// opposite vertex produces two pieces.
	tri := Tri{
		P: [3]mgl64.Vec4{
			{0, 0, 0, 1},
			{2, 0, 0, 1},
			{0, 2, 0, 1},
		},
		E: [3]EdgeType{Visible, Invisible, Culled},
	}

	// The segment lies on the line through (1,0) and the opposite
	// vertex (0,2), with both endpoints outside the triangle.
	res, err := SplitTriangleBySegment(&tri, mgl64.Vec2{1.5, -1}, mgl64.Vec2{-0.25, 2.5})
	if err != nil {
		t.Fatal(err)
	}
	if res.Kind != SplitPieces || len(res.Tris) != 2 {
		t.Fatalf("got %v with %d pieces, want SplitPieces with 2", res.Kind, len(res.Tris))
	}

	wantTags := [2][3]EdgeType{
		{tri.E[0], tri.E[1], Split},
		{Split, tri.E[2], tri.E[0]},
	}
	for i, want := range wantTags {
		if res.Tris[i].E != want {
			t.Errorf("piece %d: got tags %v, want %v", i, res.Tris[i].E, want)
		}
	}

	total := triArea2D(&res.Tris[0]) + triArea2D(&res.Tris[1])
	if want := triArea2D(&tri); !approxEq(total, want, 1e-9) {
		t.Errorf("piece areas sum to %g, want %g", total, want)
	}
}

// TestSplitRegression replays previously-crashing inputs: thin
// triangles and segments grazing a vertex. Only absence of invariant
// errors is checked.
func TestSplitRegression(t *testing.T) {
	cases := []struct {
		v      [3]mgl64.Vec4
		p0, p1 mgl64.Vec2
	}{
		{
			v: [3]mgl64.Vec4{
				{0.1888026940, -0.0181302809, 0, 1},
				{-0.0983901363, 0.3401342839, 0, 1},
				{-0.0802953986, -0.0308423169, 0, 1},
			},
			p0: mgl64.Vec2{0.1580475040, 0.0202359093},
			p1: mgl64.Vec2{0.1888026940, -0.0181302809},
		},
		{
			v: [3]mgl64.Vec4{
				{0.1970887057, 0.0546750164, 0, 1},
				{0.1888026940, -0.0181302809, 0, 1},
				{0.1528945590, 0.0266640559, 0, 1},
			},
			p0: mgl64.Vec2{0.1714282130, 0.0384109837},
			p1: mgl64.Vec2{0.1970887057, 0.0546750164},
		},
		{
			v: [3]mgl64.Vec4{
				{0.1528945590039597, 0.026664055882639027, 0, 1},
				{0.15289455900395973, 0.02666405588263901, 0, 1},
				{0.1970887056666544, 0.05467501637773782, 0, 1},
			},
			p0: mgl64.Vec2{0.15825014652177105, 0.030058513332726834},
			p1: mgl64.Vec2{0.19404721329525543, 0.027950849718747416},
		},
	}

	for i, tc := range cases {
		tri := Tri{P: tc.v, E: [3]EdgeType{Visible, Visible, Visible}}
		if _, err := SplitTriangleBySegment(&tri, tc.p0, tc.p1); err != nil {
			t.Errorf("case %d: %v", i, err)
		}
	}
}

func TestPerspectiveLerp(t *testing.T) {
	p0 := mgl64.Vec4{0, 0, 0, 1}
	p1 := mgl64.Vec4{1, 1, 1, 3}

	// Endpoints are reproduced exactly.
	if got := perspectiveLerp(0, p0, p1); got != p0 {
		t.Errorf("t=0: got %v, want %v", got, p0)
	}
	if got := perspectiveLerp(1, p0, p1); got != p1 {
		t.Errorf("t=1: got %v, want %v", got, p1)
	}

	// Screen coordinates interpolate linearly; 1/w interpolates
	// linearly as well.
	for _, tt := range []float64{0.25, 0.5, 0.75} {
		got := perspectiveLerp(tt, p0, p1)
		if !approxEq(got.X(), tt, 1e-12) || !approxEq(got.Y(), tt, 1e-12) || !approxEq(got.Z(), tt, 1e-12) {
			t.Errorf("t=%g: screen coords %v, want (%g,%g,%g)", tt, got, tt, tt, tt)
		}
		wantInvW := (1-tt)/p0.W() + tt/p1.W()
		if !approxEq(1/got.W(), wantInvW, 1e-12) {
			t.Errorf("t=%g: got w=%g, want 1/w=%g", tt, got.W(), wantInvW)
		}
	}
}

func TestSplitPreservesW(t *testing.T) {
	// A triangle with non-uniform w: cut points must get the
	// harmonic w, not the linear blend.
	tri := Tri{
		P: [3]mgl64.Vec4{
			{0, 0, 0, 1},
			{1, 0, 0.5, 2},
			{0, 1, 1, 4},
		},
		E: [3]EdgeType{Visible, Visible, Visible},
	}
	res, err := SplitTriangleBySegment(&tri, mgl64.Vec2{0.5, -0.5}, mgl64.Vec2{0.5, 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if res.Kind != SplitPieces {
		t.Fatalf("got kind %v, want SplitPieces", res.Kind)
	}

	// Cut point on edge 0 at t=0.5 between w=1 and w=2.
	p := res.Tris[0].P[0]
	if want := 1.0 * 2.0 / (0.5*2.0 + 0.5*1.0); !approxEq(p.W(), want, 1e-9) {
		t.Errorf("cut point w=%g, want %g", p.W(), want)
	}
}
