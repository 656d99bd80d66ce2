package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	cli "github.com/urfave/cli/v3"

	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/config"
	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/docs"
	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/geometry"
	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/inp"
	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/inpfile"
	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/material"
	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/scaffold"
	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/ux"
)

func main() {
	app := &cli.Command{
		Name:        "inpmod",
		Usage:       "Edit material and node definitions in Abaqus .inp files",
		Description: "Run 'inpmod docs' for documentation on the input format, parsing modes, and more.",
		Commands: []*cli.Command{
			showCmd(),
			addCmd(),
			newCmd(),
			removeCmd(),
			scaleCmd(),
			inspectCmd(),
			initCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func modeFlag() *cli.StringFlag {
	return &cli.StringFlag{Name: "mode", Usage: "Parsing mode: strict or permissive (overrides config)"}
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file (default: input with the configured suffix)"}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the material block of an input file",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{modeFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.Args().First()
			if file == "" {
				return fmt.Errorf("file argument is required")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			mode, err := resolveMode(cmd, cfg)
			if err != nil {
				return err
			}

			db := material.New()
			warnings, err := db.Read(file, mode)
			ux.Warnings(warnings)
			if err != nil {
				return err
			}
			fmt.Print(strings.Join(db.Format(), ""))
			fmt.Println()
			ux.RenderMaterials(db)
			return nil
		},
	}
}

func addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a material and its behaviors to an input file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "material", Aliases: []string{"m"}, Usage: "Material name", Required: true},
			&cli.StringFlag{Name: "elastic", Usage: "Linear elastic behavior as E,NU (Young's modulus, Poisson's ratio)"},
			&cli.StringFlag{Name: "plastic", Usage: "Metal plasticity as SY,EP (yield stress, plastic strain)"},
			outputFlag(),
			modeFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.Args().First()
			if file == "" {
				return fmt.Errorf("file argument is required")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			mode, err := resolveMode(cmd, cfg)
			if err != nil {
				return err
			}

			db := material.New()
			warnings, err := db.Read(file, mode)
			ux.Warnings(warnings)
			if err != nil {
				return err
			}
			if err := applyAdds(db, cmd); err != nil {
				return err
			}

			output := cmd.String("output")
			if output == "" {
				output = inpfile.WithSuffix(file, cfg.OutputSuffix)
			}
			return writeDatabase(db, output)
		},
	}
}

func newCmd() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "Build a material database from scratch and write it to a fresh file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "material", Aliases: []string{"m"}, Usage: "Material name", Required: true},
			&cli.StringFlag{Name: "elastic", Usage: "Linear elastic behavior as E,NU (Young's modulus, Poisson's ratio)"},
			&cli.StringFlag{Name: "plastic", Usage: "Metal plasticity as SY,EP (yield stress, plastic strain)"},
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			db := material.New()
			if err := applyAdds(db, cmd); err != nil {
				return err
			}
			return writeDatabase(db, cmd.String("output"))
		},
	}
}

func removeCmd() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "Strip all material definitions from an input file",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{outputFlag(), modeFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.Args().First()
			if file == "" {
				return fmt.Errorf("file argument is required")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			mode, err := resolveMode(cmd, cfg)
			if err != nil {
				return err
			}

			output := cmd.String("output")
			if output == "" {
				output = inpfile.WithSuffix(file, cfg.OutputSuffix)
			}
			path, warnings, err := material.Remove(file, output, mode)
			ux.Warnings(warnings)
			if err != nil {
				return err
			}
			ux.Saved(path)
			return nil
		},
	}
}

func scaleCmd() *cli.Command {
	return &cli.Command{
		Name:      "scale",
		Usage:     "Scale every nodal coordinate by a factor",
		ArgsUsage: "<file> <factor>",
		Flags:     []cli.Flag{outputFlag(), modeFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.Args().First()
			if file == "" {
				return fmt.Errorf("file argument is required")
			}
			factorArg := cmd.Args().Get(1)
			if factorArg == "" {
				return fmt.Errorf("factor argument is required")
			}
			factor, err := strconv.ParseFloat(factorArg, 64)
			if err != nil {
				return fmt.Errorf("invalid factor %q: %w", factorArg, err)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			mode, err := resolveMode(cmd, cfg)
			if err != nil {
				return err
			}

			g := geometry.New()
			warnings, err := g.Read(file, mode)
			ux.Warnings(warnings)
			if err != nil {
				return err
			}
			if err := g.Scale(factor); err != nil {
				return err
			}

			output := cmd.String("output")
			if output == "" {
				output = inpfile.WithSuffix(file, cfg.OutputSuffix)
			}
			path, warnings, err := g.Write(output)
			ux.Warnings(warnings)
			if err != nil {
				return err
			}
			ux.RenderNodes(g)
			ux.Saved(path)
			return nil
		},
	}
}

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "List the keyword lines of an input file with their parameters",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file := cmd.Args().First()
			if file == "" {
				return fmt.Errorf("file argument is required")
			}
			warnings, err := inpfile.Validate(file, inpfile.CallerRead)
			ux.Warnings(warnings)
			if err != nil {
				return err
			}
			lines, err := inpfile.ReadLines(file)
			if err != nil {
				return err
			}
			for i, raw := range lines {
				if inp.Classify(raw).Kind != inp.KindKeyword {
					continue
				}
				kw, err := inp.ParseKeyword(raw)
				if err != nil {
					continue
				}
				params := make([]string, len(kw.Params))
				for j, p := range kw.Params {
					if p.Value == "" {
						params[j] = p.Key
					} else {
						params[j] = p.Key + "=" + p.Value
					}
				}
				fmt.Printf("  %s%4d%s  %s*%s%s  %s%s%s\n",
					ux.Dim, i+1, ux.Reset, ux.Bold, kw.Name, ux.Reset, ux.Dim, strings.Join(params, ", "), ux.Reset)
			}
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a default .inpmod.yaml in the current directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'inpmod docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// applyAdds grows the database from the --material/--elastic/--plastic
// flags. Duplicate materials and behaviors are notices, not failures.
func applyAdds(db *material.Database, cmd *cli.Command) error {
	name := cmd.String("material")
	if !db.Add(name) {
		ux.Warn(fmt.Sprintf("material %s already exists", name))
	}
	if s := cmd.String("elastic"); s != "" {
		young, poisson, err := parsePair(s)
		if err != nil {
			return fmt.Errorf("--elastic: %w", err)
		}
		if err := db.AddElastic(name, young, poisson); err != nil {
			if !softAddError(err) {
				return err
			}
			ux.Warn(err.Error())
		}
	}
	if s := cmd.String("plastic"); s != "" {
		yield, strain, err := parsePair(s)
		if err != nil {
			return fmt.Errorf("--plastic: %w", err)
		}
		if err := db.AddPlastic(name, yield, strain); err != nil {
			if !softAddError(err) {
				return err
			}
			ux.Warn(err.Error())
		}
	}
	return nil
}

// softAddError reports whether an add failure is informational only.
func softAddError(err error) bool {
	return errors.Is(err, material.ErrBehaviorExists) || errors.Is(err, material.ErrNoSuchMaterial)
}

func writeDatabase(db *material.Database, output string) error {
	path, warnings, err := db.Write(output)
	ux.Warnings(warnings)
	if err != nil {
		return err
	}
	ux.RenderMaterials(db)
	ux.Saved(path)
	return nil
}

// parsePair splits "a,b" into two floats.
func parsePair(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected two comma-separated values, got %q", s)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func resolveMode(cmd *cli.Command, cfg *config.Config) (inp.Mode, error) {
	s := cmd.String("mode")
	switch s {
	case "":
		return cfg.BlockMode(), nil
	case config.ModeStrict:
		return inp.ModeStrict, nil
	case config.ModePermissive:
		return inp.ModePermissive, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (must be strict or permissive)", s)
	}
}

// loadConfig walks up from cwd looking for .inpmod.yaml. A missing
// config file means the built-in defaults.
func loadConfig() (*config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	for {
		path := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(path); err == nil {
			cfg, err := config.Load(path)
			if err != nil {
				return nil, fmt.Errorf("loading config: %w", err)
			}
			return cfg, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return config.Default(), nil
		}
		dir = parent
	}
}
