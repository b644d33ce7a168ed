package hooks

import (
	"context"
	"path/filepath"

	"github.com/cruzalex/shade/internal/palette"
)

// ColorsHook writes the resolved palette cache consumed by the shell
// prompt and user scripts. It runs before every application hook so that
// later hooks (and external scripts) can assume the palette is already
// extracted.
type ColorsHook struct{}

func (ColorsHook) Name() string { return "colors" }
func (ColorsHook) Order() int   { return 10 }

func (ColorsHook) Apply(_ context.Context, ec Context, pal palette.Palette) error {
	path := filepath.Join(ec.StateDir, "colors.sh")
	return writeFileIfChanged(path, []byte(pal.Shell()), 0o644)
}
