package hooks

import (
	"context"

	"github.com/cruzalex/shade/internal/palette"
	"github.com/cruzalex/shade/internal/proc"
	"github.com/cruzalex/shade/internal/state"
	"github.com/cruzalex/shade/internal/theme"
)

// WallpaperHook replaces the wallpaper renderer with the theme's first
// wallpaper, or a solid color derived from the palette background when
// the theme ships none. The renderer handles the exactly-one-process
// guarantee; this hook decides what it should draw and records the
// outcome. It runs last: the wallpaper swap is the most visible change.
type WallpaperHook struct {
	Store    *state.Store
	Renderer *proc.Renderer
}

func (WallpaperHook) Name() string { return "wallpaper" }
func (WallpaperHook) Order() int   { return 80 }

func (h WallpaperHook) Apply(_ context.Context, ec Context, pal palette.Palette) error {
	wallpapers := theme.Wallpapers(ec.ThemeDir)

	// The rotation starts over on every theme switch.
	index := 0
	wallpaper := ""
	if len(wallpapers) > 0 {
		wallpaper = wallpapers[index]
	}

	if err := h.launch(wallpaper, pal); err != nil {
		return err
	}

	if h.Store != nil {
		if err := h.Store.SetWallpaper(wallpaper); err != nil {
			return err
		}
		if err := h.Store.SetWallpaperIndex(index); err != nil {
			return err
		}
	}
	return nil
}

func (h WallpaperHook) launch(wallpaper string, pal palette.Palette) error {
	if h.Renderer == nil {
		return nil
	}
	_, err := h.Renderer.Replace(RendererArgs(wallpaper, pal.Background)...)
	return err
}

// RendererArgs builds the renderer command line for a wallpaper path, or
// for the solid-color fallback when the path is empty.
func RendererArgs(wallpaper, background string) []string {
	if wallpaper == "" {
		return []string{"-c", background}
	}
	return []string{"-i", wallpaper, "-m", "fill"}
}
