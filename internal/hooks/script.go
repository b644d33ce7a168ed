package hooks

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/cruzalex/shade/internal/palette"
	"github.com/cruzalex/shade/internal/proc"
)

// scriptName matches executables named with a two-digit order prefix,
// e.g. "35-rofi" runs between the built-in waybar and mako hooks.
var scriptName = regexp.MustCompile(`^(\d{2})-(.+)$`)

// ScriptHook wraps a user-provided executable as a hook. The execution
// context is exported through SHADE_* environment variables.
type ScriptHook struct {
	name   string
	order  int
	path   string
	runner proc.Runner
}

// Name returns the script name without the order prefix.
func (s *ScriptHook) Name() string { return s.name }

// Order returns the numeric prefix.
func (s *ScriptHook) Order() int { return s.order }

// Apply runs the script, bounded by the context deadline.
func (s *ScriptHook) Apply(ctx context.Context, ec Context, _ palette.Palette) error {
	return s.runner.Run(ctx, ec.Environ(), s.path)
}

// LoadScripts discovers hook scripts in dir. Entries that are not regular
// executable files named NN-name are skipped. A missing dir yields no
// hooks.
func LoadScripts(dir string, runner proc.Runner) ([]Hook, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var hooks []Hook
	for _, entry := range entries {
		match := scriptName.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() || info.Mode().Perm()&0o111 == 0 {
			continue
		}
		order, _ := strconv.Atoi(match[1])
		hooks = append(hooks, &ScriptHook{
			name:   match[2],
			order:  order,
			path:   filepath.Join(dir, entry.Name()),
			runner: runner,
		})
	}
	return hooks, nil
}
