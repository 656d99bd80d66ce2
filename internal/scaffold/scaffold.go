package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/config"
	"github.com/CsatiZoltan/Polycrystalline-microstructures/internal/ux"
)

var configTemplate = `# inpmod configuration
# strict: Abaqus-generated files, block ends at the next keyword
# permissive: third-party files, the whole file is scanned
mode: strict

# inserted before the extension of default output names:
# job.inp -> job_mod.inp
output-suffix: _mod
`

// Init creates a default .inpmod.yaml in targetDir.
func Init(targetDir string) error {
	path := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, targetDir)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.FileName, err)
	}

	fmt.Printf("\n%s%s✓ Created %s%s\n\n", ux.Bold, ux.Green, config.FileName, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Edit %s%s%s to set the parsing mode and output suffix\n", ux.Cyan, config.FileName, ux.Reset)
	fmt.Printf("    2. Run %sinpmod docs%s for the format and command reference\n\n", ux.Cyan, ux.Reset)

	return nil
}
