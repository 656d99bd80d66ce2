// Package geometry reads, scales and rewrites the *Node block of an
// Abaqus input file. Node rows stay as text fields; only scaling
// parses coordinates numerically.
package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/inp"
	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/inpfile"
)

var (
	ErrAlreadyLoaded = errors.New("geometry already loaded; use a new instance for another file")
	ErrEmptyGeometry = errors.New("geometry is empty; load a file first")
)

// Geometry holds the node rows of one input file. Field 0 of each row
// is the node id; the remaining fields are coordinates.
type Geometry struct {
	path   string
	span   inp.Range
	loaded bool
	nodes  [][]string
}

// New returns an empty geometry.
func New() *Geometry { return &Geometry{} }

var family = inp.Family{
	Name:  "node",
	Start: inp.IsNodeStart,
}

// Len returns the number of node rows.
func (g *Geometry) Len() int { return len(g.nodes) }

// Nodes returns the node rows in file order.
func (g *Geometry) Nodes() [][]string { return g.nodes }

// Span returns the line range the node block occupied in the source
// file, valid only after a successful Read.
func (g *Geometry) Span() inp.Range { return g.span }

// Read populates the geometry from the node block of the input file
// at path. It returns non-fatal validation warnings. A geometry can
// be populated only once; a failed read leaves it untouched.
func (g *Geometry) Read(path string, mode inp.Mode) ([]string, error) {
	if g.loaded {
		return nil, ErrAlreadyLoaded
	}
	warnings, err := inpfile.Validate(path, inpfile.CallerRead)
	if err != nil {
		return warnings, err
	}
	lines, err := inpfile.ReadLines(path)
	if err != nil {
		return warnings, err
	}
	span, err := inp.Locate(lines, family, mode)
	if err != nil {
		return warnings, err
	}
	var nodes [][]string
	for _, raw := range lines[span.Begin : span.End+1] {
		if inp.Classify(raw).Kind == inp.KindData {
			nodes = append(nodes, inp.Fields(raw))
		}
	}
	g.path = path
	g.span = span
	g.nodes = nodes
	g.loaded = true
	return warnings, nil
}

// Scale multiplies every nodal coordinate by factor, in place. The
// node id field is left untouched; every other field is re-rendered
// from its numeric value.
func (g *Geometry) Scale(factor float64) error {
	if len(g.nodes) == 0 {
		return ErrEmptyGeometry
	}
	for _, node := range g.nodes {
		for i := 1; i < len(node); i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(node[i]), 64)
			if err != nil {
				return fmt.Errorf("node %s: coordinate %q: %w", strings.TrimSpace(node[0]), node[i], err)
			}
			node[i] = " " + inp.FormatFloat(v*factor)
		}
	}
	return nil
}

// Format serializes the node block: the *NODE keyword line followed
// by one data line per node row.
func (g *Geometry) Format() []string {
	out := []string{"*NODE\n"}
	for _, node := range g.nodes {
		out = append(out, strings.Join(node, ",")+"\n")
	}
	return out
}

// Write splices the serialized node block over the original one and
// writes the result, returning the path written and any validation
// warnings. The default output name inserts "_mod" before the
// extension.
func (g *Geometry) Write(output string) (string, []string, error) {
	if len(g.nodes) == 0 {
		return "", nil, ErrEmptyGeometry
	}
	if output == "" {
		output = inpfile.WithSuffix(g.path, inpfile.DefaultSuffix)
	}
	old, err := inpfile.ReadLines(g.path)
	if err != nil {
		return "", nil, err
	}
	content, err := inp.Splice(old, g.span, g.Format())
	if err != nil {
		return "", nil, err
	}
	warnings, err := inpfile.Validate(output, inpfile.CallerWrite)
	if err != nil {
		return "", warnings, err
	}
	if err := inpfile.WriteFileAtomic(output, []byte(strings.Join(content, "")), 0644); err != nil {
		return "", warnings, err
	}
	return output, warnings, nil
}

// String summarizes the geometry: node count.
func (g *Geometry) String() string {
	if len(g.nodes) == 1 {
		return "1 node.\n"
	}
	return fmt.Sprintf("%d nodes.\n", len(g.nodes))
}
