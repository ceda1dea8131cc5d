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

// Package vectorfoil converts 3D points, lines and triangles into a 2D
// vector drawing in which occlusion between triangles has been resolved
// exactly, by geometric subdivision, rather than by depth-buffering or
// screen sampling.
//
// A [Renderer] holds a 4x4 clip transform and a list of input primitives.
// [Renderer.Render] projects the primitives into normalized device
// coordinates, conservatively rejects primitives outside the view volume,
// and then processes the survivors nearest-first: whenever the projected
// silhouette of a farther triangle is crossed by an edge of a nearer,
// already-rendered triangle, the farther triangle is cut along that edge
// and its pieces are fed back into the work queue. The result is a flat
// list of 2D line segments, each tagged with an [EdgeType] describing why
// it is (or is not) visible.
//
// All coordinates handed to the renderer are ordinary 3D points; after
// projection the package keeps them in the form (x/w, y/w, z/w, w) so
// that new vertices introduced by cutting can be interpolated
// perspective-correctly.
package vectorfoil
