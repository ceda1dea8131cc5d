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

package testscenes

import "testing"

func TestScenes(t *testing.T) {
	seen := make(map[string]bool)
	for _, scene := range All {
		t.Run(scene.Name, func(t *testing.T) {
			if seen[scene.Name] {
				t.Fatalf("duplicate scene name %q", scene.Name)
			}
			seen[scene.Name] = true
			if scene.Width <= 0 || scene.Height <= 0 {
				t.Errorf("bad size %gx%g", scene.Width, scene.Height)
			}

			rp, err := scene.Build().Render()
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			if rp.IsEmpty() {
				t.Error("scene renders to nothing")
			}
		})
	}
}

func TestClipZDropsOutOfRange(t *testing.T) {
	rp, err := ClipZ().Render()
	if err != nil {
		t.Fatal(err)
	}
	// Only the in-view triangle survives.
	if got := len(rp.Lines); got != 3 {
		t.Errorf("got %d lines, want 3", got)
	}
}
