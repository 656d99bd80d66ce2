package material

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/inp"
	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/inpfile"
)

const sampleInput = `** Generated input
*Heading
test job
*Material, name=steel
*Elastic
210000.0, 0.3
*Plastic
355.0, 0.0
*Material, name=aluminium
*Elastic
70000.0, 0.33
*Step
1.0, 1.0
*End Step
`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.inp")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead_Hierarchy(t *testing.T) {
	path := writeSample(t, sampleInput)

	db := New()
	if _, err := db.Read(path, inp.ModeStrict); err != nil {
		t.Fatal(err)
	}

	if got, want := db.Names(), []string{"steel", "aluminium"}; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("names: got %q, want %q", got, want)
	}

	steel := db.Materials()[0]
	if len(steel.Behaviors) != 2 || steel.Behaviors[0].Name != "Elastic" || steel.Behaviors[1].Name != "Plastic" {
		t.Fatalf("steel behaviors: got %+v", steel.Behaviors)
	}
	row := steel.Behaviors[0].Rows[0]
	if len(row) != 2 || row[0] != "210000.0" || row[1] != " 0.3" {
		t.Fatalf("elastic row: got %q", row)
	}

	// the block spans *Material, name=steel .. 70000.0, 0.33
	if r := db.Span(); r.Begin != 3 || r.End != 10 {
		t.Fatalf("span: got [%d, %d], want [3, 10]", r.Begin, r.End)
	}
}

func TestRead_Twice(t *testing.T) {
	path := writeSample(t, sampleInput)

	db := New()
	if _, err := db.Read(path, inp.ModeStrict); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Read(path, inp.ModeStrict); !errors.Is(err, ErrAlreadyLoaded) {
		t.Fatalf("got %v, want ErrAlreadyLoaded", err)
	}
	// the first read's data is unaffected
	if db.Len() != 2 {
		t.Fatalf("len after rejected re-read: got %d, want 2", db.Len())
	}
}

func TestRead_MissingFile(t *testing.T) {
	db := New()
	_, err := db.Read(filepath.Join(t.TempDir(), "nope.inp"), inp.ModeStrict)
	if !errors.Is(err, inpfile.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestRead_EmptyFile(t *testing.T) {
	path := writeSample(t, "")
	db := New()
	if _, err := db.Read(path, inp.ModeStrict); !errors.Is(err, inpfile.ErrEmptyFile) {
		t.Fatalf("got %v, want ErrEmptyFile", err)
	}
}

func TestRead_FailureLeavesDatabaseUntouched(t *testing.T) {
	// a data line directly under *Material is an illegal transition
	path := writeSample(t, "*Material, name=A\n1.0, 2.0\n")

	db := New()
	_, err := db.Read(path, inp.ModeStrict)
	if !errors.Is(err, ErrDataOutsideBehavior) {
		t.Fatalf("got %v, want ErrDataOutsideBehavior", err)
	}
	if !db.Empty() {
		t.Fatal("failed read mutated the database")
	}

	// the instance is still usable for a valid file
	good := writeSample(t, sampleInput)
	if _, err := db.Read(good, inp.ModeStrict); err != nil {
		t.Fatal(err)
	}
	if db.Len() != 2 {
		t.Fatalf("got %d materials, want 2", db.Len())
	}
}

func TestAdd_DuplicateIsSoftRejected(t *testing.T) {
	db := New()
	if !db.Add("steel") {
		t.Fatal("first add rejected")
	}
	if err := db.AddElastic("steel", 210000, 0.3); err != nil {
		t.Fatal(err)
	}
	if db.Add("steel") {
		t.Fatal("duplicate add accepted")
	}
	if db.Len() != 1 || len(db.Materials()[0].Behaviors) != 1 {
		t.Fatal("duplicate add changed the hierarchy")
	}
}

func TestAddBehavior_Guards(t *testing.T) {
	db := New()
	if err := db.AddElastic("ghost", 1, 0.3); !errors.Is(err, ErrNoSuchMaterial) {
		t.Fatalf("got %v, want ErrNoSuchMaterial", err)
	}
	db.Add("steel")
	if err := db.AddPlastic("steel", 355, 0); err != nil {
		t.Fatal(err)
	}
	if err := db.AddPlastic("steel", 400, 0.1); !errors.Is(err, ErrBehaviorExists) {
		t.Fatalf("got %v, want ErrBehaviorExists", err)
	}
}

func TestFormat(t *testing.T) {
	db := New()
	db.Add("steel")
	if err := db.AddElastic("steel", 210000, 0.3); err != nil {
		t.Fatal(err)
	}
	if err := db.AddPlastic("steel", 355, 0); err != nil {
		t.Fatal(err)
	}

	got := strings.Join(db.Format(), "")
	want := "*Material, name=steel\n*Elastic\n210000.0, 0.3\n*Plastic\n355.0, 0.0\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormat_Empty(t *testing.T) {
	if lines := New().Format(); len(lines) != 0 {
		t.Fatalf("empty database serialized to %q", lines)
	}
}

func TestWrite_EmptyDatabase(t *testing.T) {
	if _, _, err := New().Write("out.inp"); !errors.Is(err, ErrEmptyDatabase) {
		t.Fatalf("got %v, want ErrEmptyDatabase", err)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := writeSample(t, sampleInput)

	db := New()
	if _, err := db.Read(path, inp.ModeStrict); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(filepath.Dir(path), "job_mod.inp")
	written, _, err := db.Write(out)
	if err != nil {
		t.Fatal(err)
	}
	if written != out {
		t.Fatalf("written to %q, want %q", written, out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// the sample block is already in canonical form, so an unmodified
	// database reproduces the file byte-for-byte
	if string(data) != sampleInput {
		t.Fatalf("round trip changed the file:\n%s", string(data))
	}
}

func TestWrite_EditedBlockSplicedIntoOriginal(t *testing.T) {
	path := writeSample(t, sampleInput)

	db := New()
	if _, err := db.Read(path, inp.ModeStrict); err != nil {
		t.Fatal(err)
	}
	db.Add("titanium")
	if err := db.AddElastic("titanium", 110000, 0.34); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(filepath.Dir(path), "edited.inp")
	if _, _, err := db.Write(out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "** Generated input\n*Heading\ntest job\n") {
		t.Fatalf("lines before the block not preserved:\n%s", content)
	}
	if !strings.HasSuffix(content, "*Step\n1.0, 1.0\n*End Step\n") {
		t.Fatalf("lines after the block not preserved:\n%s", content)
	}
	if !strings.Contains(content, "*Material, name=titanium\n*Elastic\n110000.0, 0.34\n") {
		t.Fatalf("new material missing:\n%s", content)
	}
}

func TestWrite_FromScratch(t *testing.T) {
	db := New()
	db.Add("steel")
	if err := db.AddElastic("steel", 210000, 0.3); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "materials.inp")
	if _, _, err := db.Write(out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != strings.Join(db.Format(), "") {
		t.Fatalf("from-scratch file is not the serialized block:\n%s", string(data))
	}
}

func TestSerialize_Idempotent(t *testing.T) {
	db := New()
	db.Add("steel")
	if err := db.AddElastic("steel", 210000, 0.3); err != nil {
		t.Fatal(err)
	}
	db.Add("aluminium")
	if err := db.AddPlastic("aluminium", 95, 0.05); err != nil {
		t.Fatal(err)
	}

	first := strings.Join(db.Format(), "")
	path := filepath.Join(t.TempDir(), "db.inp")
	if err := os.WriteFile(path, []byte(first), 0644); err != nil {
		t.Fatal(err)
	}

	reread := New()
	if _, err := reread.Read(path, inp.ModeStrict); err != nil {
		t.Fatal(err)
	}
	if second := strings.Join(reread.Format(), ""); second != first {
		t.Fatalf("serialize not idempotent:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestRemove(t *testing.T) {
	path := writeSample(t, sampleInput)
	out := filepath.Join(filepath.Dir(path), "stripped.inp")

	written, _, err := Remove(path, out, inp.ModeStrict)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(written)
	if err != nil {
		t.Fatal(err)
	}
	want := "** Generated input\n*Heading\ntest job\n*Step\n1.0, 1.0\n*End Step\n"
	if string(data) != want {
		t.Fatalf("got:\n%q\nwant:\n%q", string(data), want)
	}
}

func TestString(t *testing.T) {
	db := New()
	if got := db.String(); got != "0 materials.\n" {
		t.Fatalf("got %q", got)
	}
	db.Add("steel")
	if got := db.String(); got != "1 material.\n    steel\n" {
		t.Fatalf("got %q", got)
	}
}
