package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/inp"
)

// FileName is the editor configuration file, discovered by walking up
// from the working directory.
const FileName = ".inpmod.yaml"

// Parsing mode names accepted in the config file and on the command
// line.
const (
	ModeStrict     = "strict"
	ModePermissive = "permissive"
)

type Config struct {
	Mode         string `yaml:"mode"`
	OutputSuffix string `yaml:"output-suffix"`
}

// Default returns the built-in configuration used when no config file
// exists.
func Default() *Config {
	return &Config{Mode: ModeStrict, OutputSuffix: "_mod"}
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// BlockMode converts the configured mode name to the block locator's
// mode.
func (c *Config) BlockMode() inp.Mode {
	if c.Mode == ModePermissive {
		return inp.ModePermissive
	}
	return inp.ModeStrict
}
