package ux

import (
	"fmt"
	"strings"

	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/geometry"
	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/material"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Warn prints a single non-fatal notice.
func Warn(msg string) {
	fmt.Printf("%swarning:%s %s\n", Yellow, Reset, msg)
}

// Warnings prints every notice collected by a read or write path.
func Warnings(msgs []string) {
	for _, m := range msgs {
		Warn(m)
	}
}

// Saved prints the path an edited file was written to.
func Saved(path string) {
	fmt.Printf("%s✓ Saved%s %s\n", Green, Reset, path)
}

// RenderMaterials prints a database summary: count, names and the
// behaviors attached to each material.
func RenderMaterials(db *material.Database) {
	mats := db.Materials()
	noun := "materials"
	if len(mats) == 1 {
		noun = "material"
	}
	fmt.Printf("%s%d %s%s\n", Bold, len(mats), noun, Reset)
	for _, m := range mats {
		if len(m.Behaviors) == 0 {
			fmt.Printf("  %s\n", m.Name)
			continue
		}
		names := make([]string, len(m.Behaviors))
		for i, b := range m.Behaviors {
			names[i] = b.Name
		}
		fmt.Printf("  %-24s %s(%s)%s\n", m.Name, Dim, strings.Join(names, ", "), Reset)
	}
}

// RenderNodes prints a geometry summary.
func RenderNodes(g *geometry.Geometry) {
	noun := "nodes"
	if g.Len() == 1 {
		noun = "node"
	}
	fmt.Printf("%s%d %s%s\n", Bold, g.Len(), noun, Reset)
}
