package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/inp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Mode != ModeStrict || cfg.OutputSuffix != "_mod" {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.BlockMode() != inp.ModeStrict {
		t.Fatal("default BlockMode is not strict")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "mode: permissive\noutput-suffix: -edited\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != ModePermissive || cfg.OutputSuffix != "-edited" {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.BlockMode() != inp.ModePermissive {
		t.Fatal("BlockMode is not permissive")
	}
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := writeConfig(t, "mode: strict\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputSuffix != "_mod" {
		t.Fatalf("suffix default not applied: %q", cfg.OutputSuffix)
	}
}

func TestValidate_UnknownMode(t *testing.T) {
	cfg := &Config{Mode: "greedy"}
	if err := Validate(cfg); err == nil {
		t.Fatal("unknown mode accepted")
	}
}

func TestValidate_SuffixWithSeparator(t *testing.T) {
	cfg := &Config{OutputSuffix: "a/b"}
	if err := Validate(cfg); err == nil {
		t.Fatal("suffix with path separator accepted")
	}
}
