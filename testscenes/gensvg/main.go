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

// Command gensvg renders every test scene to an SVG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/masonium/vectorfoil/svg"
	"github.com/masonium/vectorfoil/testscenes"
)

func main() {
	dir := flag.String("dir", "out", "output directory")
	byLayer := flag.Bool("bylayer", false, "group lines by edge class")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, scene := range testscenes.All {
		rp, err := scene.Build().Render()
		if err != nil {
			log.Fatalf("%s: %v", scene.Name, err)
		}

		path := filepath.Join(*dir, scene.Name+".svg")
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		svg.Standalone(f, rp, &svg.Options{
			Width:   scene.Width,
			Height:  scene.Height,
			ByLayer: *byLayer,
		})
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("wrote", path)
	}
}
