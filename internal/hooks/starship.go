package hooks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/cruzalex/shade/internal/contrast"
	"github.com/cruzalex/shade/internal/palette"
)

// StarshipHook rewires the shell prompt's palette. The user's
// starship.toml is parsed into a document tree, the managed
// [palettes.cruzalex] table and the active palette selection are set, and
// the file is serialized back. Everything else in the config survives the
// round trip structurally, and repeated runs are stable because the
// serialization is deterministic. Starship re-reads its config on every
// prompt, so no reload step exists.
type StarshipHook struct{}

func (StarshipHook) Name() string { return "starship" }
func (StarshipHook) Order() int   { return 60 }

// paletteName is the managed palette table key inside starship.toml.
const paletteName = "cruzalex"

func (StarshipHook) Apply(_ context.Context, ec Context, pal palette.Palette) error {
	path := filepath.Join(ec.ConfigHome, "starship.toml")

	doc := make(map[string]any)
	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	doc["palette"] = paletteName

	palettes, ok := doc["palettes"].(map[string]any)
	if !ok {
		palettes = make(map[string]any)
		doc["palettes"] = palettes
	}
	palettes[paletteName] = map[string]any{
		"foreground":        pal.Foreground,
		"background":        pal.Background,
		"accent":            pal.Accent,
		"accent_foreground": contrast.ContrastingForeground(pal.Accent),
		"muted":             contrast.Darken(pal.Foreground, 40),
		"success":           pal.ANSI[2],
		"warning":           pal.ANSI[3],
		"danger":            pal.ANSI[1],
		"info":              pal.ANSI[4],
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return writeFileIfChanged(path, data, 0o644)
}
