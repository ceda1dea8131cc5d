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

// Package testscenes defines small example scenes shared by tests,
// benchmarks and the gensvg generator.
package testscenes

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/masonium/vectorfoil"
)

// Scene is a named renderer setup.
type Scene struct {
	Name   string // lowercase a-z and _ only
	Width  float64
	Height float64
	Build  func() *vectorfoil.Renderer
}

// All lists every scene.
var All = []Scene{
	{Name: "two_triangles", Width: 720, Height: 504, Build: TwoTriangles},
	{Name: "cube", Width: 720, Height: 720, Build: Cube},
	{Name: "ortho_lines", Width: 720, Height: 720, Build: OrthoLines},
	{Name: "clip_z", Width: 720, Height: 720, Build: ClipZ},
}

// TwoTriangles places a small triangle in front of a larger one, with
// overlapping screen footprints. The far triangle must come out split
// along the near triangle's silhouette.
func TwoTriangles() *vectorfoil.Renderer {
	view := mgl64.LookAtV(
		mgl64.Vec3{0, 0, 4},
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)
	proj := mgl64.Perspective(math.Pi/2, 10.0/7.0, 1, 9)
	r := vectorfoil.New(proj.Mul4(view))

	r.AddTriangle(
		mgl64.Vec3{-1, -1, 1},
		mgl64.Vec3{0.5, 0, 1},
		mgl64.Vec3{-1, 1, 1},
	)
	r.AddTriangle(
		mgl64.Vec3{-0.5, 0, -1},
		mgl64.Vec3{1, -1, -1},
		mgl64.Vec3{1, 1, -1},
	)
	return r
}

// Cube builds a unit cube from quads, with a stack of smaller
// triangles floating in front of its front face.
func Cube() *vectorfoil.Renderer {
	view := mgl64.LookAtV(
		mgl64.Vec3{1.5, 2, 3},
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)
	proj := mgl64.Perspective(math.Pi/2, 1, 1, 9)
	r := vectorfoil.New(proj.Mul4(view))

	// front
	r.AddPolygon([]mgl64.Vec3{
		{1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}, {1, -1, 1},
	})
	for i := 1; i <= 5; i++ {
		z := 1.0 + float64(i)*0.2
		r.AddPolygon([]mgl64.Vec3{{1, 1, z}, {-1, 1, z}, {-1, -1, z}})
	}
	// back
	r.AddPolygon([]mgl64.Vec3{
		{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
	})
	// right
	r.AddPolygon([]mgl64.Vec3{
		{1, 1, -1}, {1, 1, 1}, {1, -1, 1}, {1, -1, -1},
	})
	// left
	r.AddPolygon([]mgl64.Vec3{
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1},
	})
	// top
	r.AddPolygon([]mgl64.Vec3{
		{1, 1, -1}, {-1, 1, -1}, {-1, 1, 1}, {1, 1, 1},
	})
	// bottom
	r.AddPolygon([]mgl64.Vec3{
		{1, -1, -1}, {-1, -1, -1}, {-1, -1, 1}, {1, -1, 1},
	})
	return r
}

// OrthoLines views a line segment and two disjoint triangles through
// an orthographic projection, with back-face culling enabled.
func OrthoLines() *vectorfoil.Renderer {
	view := mgl64.LookAtV(
		mgl64.Vec3{0, 0, 5},
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)
	proj := mgl64.Ortho(-10, 10, -10, 10, 0, 10)
	r := vectorfoil.New(proj.Mul4(view))
	r.CullBackFaces = true

	r.AddLine(mgl64.Vec3{-1, -1, 0}, mgl64.Vec3{1, 1, 0})
	r.AddTriangle(mgl64.Vec3{3, 0, 0}, mgl64.Vec3{3, 1, 0}, mgl64.Vec3{2, 0, 0})
	r.AddTriangle(mgl64.Vec3{-3, 0, 0}, mgl64.Vec3{-3, 1, 0}, mgl64.Vec3{-2, 0, 0})
	return r
}

// ClipZ places one triangle inside the view volume, one behind the
// camera and one beyond the far plane. Only the first survives the
// conservative depth rejection.
func ClipZ() *vectorfoil.Renderer {
	view := mgl64.LookAtV(
		mgl64.Vec3{0, 0, 5},
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)
	proj := mgl64.Perspective(math.Pi/2, 1, 1, 9)
	r := vectorfoil.New(proj.Mul4(view))

	r.AddTriangle(mgl64.Vec3{-1, -1, 0}, mgl64.Vec3{1, -1, 0}, mgl64.Vec3{0, 1, 0})
	r.AddTriangle(mgl64.Vec3{-1, -1, 7}, mgl64.Vec3{1, -1, 7}, mgl64.Vec3{0, 1, 7})
	r.AddTriangle(mgl64.Vec3{-1, -1, -6}, mgl64.Vec3{1, -1, -6}, mgl64.Vec3{0, 1, -6})
	return r
}
