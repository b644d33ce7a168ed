// Package hooks defines the per-application theming hooks and their
// registry. A hook idempotently mutates exactly one target application's
// configuration from the resolved palette and may trigger a best-effort
// live reload.
package hooks

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cruzalex/shade/internal/palette"
)

// Context carries the execution context for one hook invocation. It is an
// explicit value object: hooks receive everything they need here instead
// of reading global environment state.
type Context struct {
	// ThemeName is the theme being applied.
	ThemeName string

	// ThemeDir is the resolved theme directory.
	ThemeDir string

	// ConfigHome is the XDG config home holding target application
	// configs (~/.config).
	ConfigHome string

	// ConfigDir is the cruzalex configuration root.
	ConfigDir string

	// StateDir is the durable state directory.
	StateDir string
}

// Environ renders the context as environment variables for script hooks.
func (c Context) Environ() []string {
	return append(os.Environ(),
		"SHADE_THEME="+c.ThemeName,
		"SHADE_THEME_DIR="+c.ThemeDir,
		"SHADE_CONFIG_DIR="+c.ConfigDir,
		"SHADE_STATE_DIR="+c.StateDir,
	)
}

// Hook applies one theme aspect to one target application.
//
// Implementations must be idempotent: applying the same palette twice
// produces byte-identical target configuration. Reload attempts inside
// Apply are best-effort and must be bounded by the context deadline.
type Hook interface {
	// Name identifies the hook in results and logs.
	Name() string

	// Order determines execution position; lower runs first.
	Order() int

	// Apply mutates the target application's configuration.
	Apply(ctx context.Context, ec Context, pal palette.Palette) error
}

// reloadContext bounds a best-effort reload command more tightly than the
// surrounding hook timeout. A non-positive timeout returns ctx unchanged.
func reloadContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// writeFileIfChanged writes data to path unless the file already has
// exactly that content. Skipping identical writes keeps repeated runs free
// of spurious mtime churn that would retrigger file-watching applications.
func writeFileIfChanged(path string, data []byte, mode os.FileMode) error {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// copyFile copies src to dst through writeFileIfChanged.
func copyFile(src, dst string, mode os.FileMode) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	return writeFileIfChanged(dst, data, mode)
}
