// Package material reads, edits and rewrites the *Material block of
// an Abaqus input file. Materials, their behaviors and their
// parameter rows keep the order they were defined in, so an unedited
// database round-trips through read and write unchanged.
package material

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/inp"
	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/inpfile"
)

// Behavior names used by the add helpers. Names read from a file keep
// whatever case the file used.
const (
	Elastic = "Elastic"
	Plastic = "Plastic"
)

var (
	ErrAlreadyLoaded           = errors.New("material database already loaded; use a new instance for another file")
	ErrEmptyDatabase           = errors.New("material database is empty; nothing to write")
	ErrNoSuchMaterial          = errors.New("material does not exist")
	ErrBehaviorExists          = errors.New("behavior already exists for material")
	ErrBehaviorOutsideMaterial = errors.New("behavior keyword before any *Material")
	ErrDataOutsideBehavior     = errors.New("data line before any behavior keyword")
)

// Behavior is one named physical-property rule of a material, with
// its parameter rows. Fields stay as text: no numeric parsing or
// rounding touches values read from a file.
type Behavior struct {
	Name string
	Rows [][]string
}

// Material is one named material and its behaviors, in definition
// order.
type Material struct {
	Name      string
	Behaviors []Behavior
}

// Database holds the materials of one input file. It is empty at
// construction and populated either by a single Read or by the add
// methods, never both.
type Database struct {
	path      string
	span      inp.Range
	loaded    bool
	materials []Material
}

// New returns an empty database.
func New() *Database { return &Database{} }

var family = inp.Family{
	Name: "material",
	Start: func(s string) bool {
		_, ok := inp.MaterialName(s)
		return ok
	},
	Member: func(s string) bool {
		_, ok := inp.BehaviorName(s)
		return ok
	},
}

// Empty reports whether the database holds no materials.
func (db *Database) Empty() bool { return len(db.materials) == 0 }

// Len returns the number of materials.
func (db *Database) Len() int { return len(db.materials) }

// Materials returns the materials in definition order.
func (db *Database) Materials() []Material { return db.materials }

// Names returns the material names in definition order.
func (db *Database) Names() []string {
	names := make([]string, len(db.materials))
	for i, m := range db.materials {
		names[i] = m.Name
	}
	return names
}

// Span returns the line range the material block occupied in the
// source file, valid only after a successful Read.
func (db *Database) Span() inp.Range { return db.span }

func (db *Database) find(name string) *Material {
	for i := range db.materials {
		if db.materials[i].Name == name {
			return &db.materials[i]
		}
	}
	return nil
}

// Add defines a new material by name. Adding a name that already
// exists leaves the database unchanged and reports false.
func (db *Database) Add(name string) bool {
	if db.find(name) != nil {
		return false
	}
	db.materials = append(db.materials, Material{Name: name})
	return true
}

// AddElastic attaches linear elastic behavior (Young's modulus,
// Poisson's ratio) to an existing material.
func (db *Database) AddElastic(name string, young, poisson float64) error {
	row := []string{inp.FormatFloat(young), " " + inp.FormatFloat(poisson)}
	return db.addBehavior(name, Elastic, row)
}

// AddPlastic attaches metal plasticity behavior (yield stress,
// plastic strain) to an existing material.
func (db *Database) AddPlastic(name string, yield, strain float64) error {
	row := []string{inp.FormatFloat(yield), " " + inp.FormatFloat(strain)}
	return db.addBehavior(name, Plastic, row)
}

func (db *Database) addBehavior(name, behavior string, row []string) error {
	m := db.find(name)
	if m == nil {
		return fmt.Errorf("%w: %s", ErrNoSuchMaterial, name)
	}
	for _, b := range m.Behaviors {
		if strings.EqualFold(b.Name, behavior) {
			return fmt.Errorf("%w: %s on %s; remove it first to add a new one", ErrBehaviorExists, behavior, name)
		}
	}
	m.Behaviors = append(m.Behaviors, Behavior{Name: behavior, Rows: [][]string{row}})
	return nil
}

// Read populates the database from the material block of the input
// file at path. It returns non-fatal validation warnings. A database
// can be populated only once; a failed read leaves it untouched.
func (db *Database) Read(path string, mode inp.Mode) ([]string, error) {
	if db.loaded {
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
	materials, err := parseBlock(lines[span.Begin : span.End+1])
	if err != nil {
		return warnings, err
	}
	db.path = path
	db.span = span
	db.materials = materials
	db.loaded = true
	return warnings, nil
}

// parseBlock extracts the material hierarchy from the lines of a
// located block. The cursor is an explicit state machine — outside
// any material, inside a material, inside a behavior — so out-of-order
// lines fail with a named error instead of a stray crash.
func parseBlock(lines []string) ([]Material, error) {
	var materials []Material
	mat := -1
	beh := -1
	for i, raw := range lines {
		if name, ok := inp.MaterialName(raw); ok {
			mat = -1
			for j := range materials {
				if materials[j].Name == name {
					// redefinition: keep the position, restart the behaviors
					materials[j].Behaviors = nil
					mat = j
					break
				}
			}
			if mat < 0 {
				materials = append(materials, Material{Name: name})
				mat = len(materials) - 1
			}
			beh = -1
			continue
		}
		if name, ok := inp.BehaviorName(raw); ok {
			if mat < 0 {
				return nil, fmt.Errorf("%w: line %d", ErrBehaviorOutsideMaterial, i+1)
			}
			materials[mat].Behaviors = append(materials[mat].Behaviors, Behavior{Name: name})
			beh = len(materials[mat].Behaviors) - 1
			continue
		}
		if inp.Classify(raw).Kind == inp.KindData {
			if beh < 0 {
				return nil, fmt.Errorf("%w: line %d", ErrDataOutsideBehavior, i+1)
			}
			b := &materials[mat].Behaviors[beh]
			b.Rows = append(b.Rows, inp.Fields(raw))
		}
	}
	return materials, nil
}

// Format serializes the hierarchy to Abaqus input lines, one string
// per line, each newline-terminated. An empty database yields nil.
// Format performs no I/O and never mutates the database.
func (db *Database) Format() []string {
	var out []string
	for _, m := range db.materials {
		out = append(out, fmt.Sprintf("*Material, name=%s\n", m.Name))
		for _, b := range m.Behaviors {
			out = append(out, fmt.Sprintf("*%s\n", b.Name))
			for _, row := range b.Rows {
				out = append(out, strings.Join(row, ",")+"\n")
			}
		}
	}
	return out
}

// Write persists the database and returns the path written along with
// any validation warnings. For a database read from a file, the new
// block replaces the original one and everything around it is carried
// over byte-for-byte; the default output name inserts "_mod" before
// the extension. For a database built from scratch, the output holds
// only the serialized block and defaults to a fresh, non-colliding
// materials.inp in the current directory.
func (db *Database) Write(output string) (string, []string, error) {
	if db.Empty() {
		return "", nil, ErrEmptyDatabase
	}
	content := db.Format()
	if db.loaded {
		if output == "" {
			output = inpfile.WithSuffix(db.path, inpfile.DefaultSuffix)
		}
		old, err := inpfile.ReadLines(db.path)
		if err != nil {
			return "", nil, err
		}
		content, err = inp.Splice(old, db.span, content)
		if err != nil {
			return "", nil, err
		}
	} else if output == "" {
		name, err := inpfile.FreshDatabaseName(".")
		if err != nil {
			return "", nil, err
		}
		output = name
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

// Remove strips the material block from the file at path and writes
// the result. The default output name inserts "_mod" before the
// extension.
func Remove(path, output string, mode inp.Mode) (string, []string, error) {
	db := New()
	warnings, err := db.Read(path, mode)
	if err != nil {
		return "", warnings, err
	}
	lines, err := inpfile.ReadLines(path)
	if err != nil {
		return "", warnings, err
	}
	stripped, err := inp.Splice(lines, db.span, nil)
	if err != nil {
		return "", warnings, err
	}
	if output == "" {
		output = inpfile.WithSuffix(path, inpfile.DefaultSuffix)
	}
	more, err := inpfile.Validate(output, inpfile.CallerWrite)
	warnings = append(warnings, more...)
	if err != nil {
		return "", warnings, err
	}
	if err := inpfile.WriteFileAtomic(output, []byte(strings.Join(stripped, "")), 0644); err != nil {
		return "", warnings, err
	}
	return output, warnings, nil
}

// String summarizes the database: material count and names.
func (db *Database) String() string {
	var sb strings.Builder
	n := len(db.materials)
	if n == 1 {
		fmt.Fprintf(&sb, "%d material.\n", n)
	} else {
		fmt.Fprintf(&sb, "%d materials.\n", n)
	}
	for _, m := range db.materials {
		fmt.Fprintf(&sb, "    %s\n", m.Name)
	}
	return sb.String()
}
