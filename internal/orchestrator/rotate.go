package orchestrator

import (
	"errors"

	"github.com/cruzalex/shade/internal/config"
	"github.com/cruzalex/shade/internal/hooks"
	"github.com/cruzalex/shade/internal/logging"
	"github.com/cruzalex/shade/internal/palette"
	"github.com/cruzalex/shade/internal/proc"
	"github.com/cruzalex/shade/internal/state"
	"github.com/cruzalex/shade/internal/theme"
)

// Rotation errors.
var (
	ErrNoActiveTheme = errors.New("no active theme")
	ErrNoWallpapers  = errors.New("active theme has no wallpapers")
)

// Rotator advances the wallpaper rotation within the active theme.
type Rotator struct {
	cfg      config.Config
	store    *state.Store
	renderer *proc.Renderer
}

// NewRotator creates a wallpaper rotator.
func NewRotator(cfg config.Config, store *state.Store, renderer *proc.Renderer) *Rotator {
	return &Rotator{cfg: cfg, store: store, renderer: renderer}
}

// Next replaces the renderer with the active theme's next wallpaper and
// persists the advanced rotation index. The index wraps around the
// wallpaper count.
func (r *Rotator) Next() (string, error) {
	themeName := r.store.Theme()
	if themeName == "" {
		return "", ErrNoActiveTheme
	}
	themeDir, err := theme.Dir(r.cfg.ThemesRoot, themeName)
	if err != nil {
		return "", err
	}

	wallpapers := theme.Wallpapers(themeDir)
	if len(wallpapers) == 0 {
		return "", ErrNoWallpapers
	}

	index := (r.store.WallpaperIndex() + 1) % len(wallpapers)
	wallpaper := wallpapers[index]

	pal := palette.Resolve(themeDir)
	if _, err := r.renderer.Replace(hooks.RendererArgs(wallpaper, pal.Background)...); err != nil {
		return "", err
	}

	logger := logging.Component("rotator")
	if err := r.store.SetWallpaper(wallpaper); err != nil {
		logger.Warn().Err(err).Msg("failed to persist wallpaper path")
	}
	if err := r.store.SetWallpaperIndex(index); err != nil {
		logger.Warn().Err(err).Msg("failed to persist rotation index")
	}

	logger.Info().Str("wallpaper", wallpaper).Int("index", index).Msg("wallpaper rotated")
	return wallpaper, nil
}
