// Package orchestrator runs the theme switch pipeline.
package orchestrator

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/cruzalex/shade/internal/config"
	"github.com/cruzalex/shade/internal/hooks"
	"github.com/cruzalex/shade/internal/journal"
	"github.com/cruzalex/shade/internal/logging"
	"github.com/cruzalex/shade/internal/palette"
	"github.com/cruzalex/shade/internal/state"
	"github.com/cruzalex/shade/internal/theme"
)

// HookFailure records one failed hook.
type HookFailure struct {
	// Hook is the hook name.
	Hook string

	// Err is the failure cause.
	Err error
}

// Result is the aggregate outcome of one theme switch. A switch with
// failed hooks is still considered applied: partial theming beats an
// aborted switch, since most hooks are independent.
type Result struct {
	// Theme is the theme that was applied.
	Theme string

	// Applied lists hooks that succeeded, in execution order.
	Applied []string

	// Failed lists hooks that errored, in execution order.
	Failed []HookFailure

	// Duration is the wall-clock time of the whole switch.
	Duration time.Duration
}

// FailedNames returns the failed hook names.
func (r *Result) FailedNames() []string {
	names := make([]string, 0, len(r.Failed))
	for _, failure := range r.Failed {
		names = append(names, failure.Hook)
	}
	return names
}

// Orchestrator owns one theme switch at a time: hooks run strictly
// sequentially in registry order, never in parallel, because several of
// them mutate shared files in place and signal processes.
type Orchestrator struct {
	cfg      config.Config
	registry *hooks.Registry
	store    *state.Store
	journal  *journal.Journal
	logger   zerolog.Logger
}

// New creates an orchestrator. The journal may be nil, in which case no
// history is recorded.
func New(cfg config.Config, registry *hooks.Registry, store *state.Store, jnl *journal.Journal) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		registry: registry,
		store:    store,
		journal:  jnl,
		logger:   logging.Component("orchestrator"),
	}
}

// Switch applies the named theme. The only hard error is an unknown
// theme; everything past that point degrades gracefully and the switch
// counts as applied. Each hook invocation is bounded by the configured
// hook timeout so a hung external reload cannot stall the batch.
func (o *Orchestrator) Switch(ctx context.Context, themeName string) (*Result, error) {
	started := time.Now()

	themeDir, err := theme.Dir(o.cfg.ThemesRoot, themeName)
	if err != nil {
		return nil, err
	}

	pal := palette.Resolve(themeDir)
	ec := hooks.Context{
		ThemeName:  themeName,
		ThemeDir:   themeDir,
		ConfigHome: configHome(o.cfg),
		ConfigDir:  o.cfg.ConfigDir,
		StateDir:   o.cfg.StateDir,
	}

	result := &Result{Theme: themeName}
	for _, hook := range o.registry.Hooks() {
		if err := o.applyHook(ctx, hook, ec, pal); err != nil {
			o.logger.Warn().Err(err).Str("hook", hook.Name()).Msg("hook failed, continuing")
			result.Failed = append(result.Failed, HookFailure{Hook: hook.Name(), Err: err})
			continue
		}
		o.logger.Debug().Str("hook", hook.Name()).Msg("hook applied")
		result.Applied = append(result.Applied, hook.Name())
	}

	if err := theme.SetCurrent(o.cfg.ConfigDir, themeDir); err != nil {
		o.logger.Warn().Err(err).Msg("failed to update current theme link")
	}
	if err := o.store.SetTheme(themeName); err != nil {
		o.logger.Warn().Err(err).Msg("failed to persist theme state")
	}
	if err := o.store.ResetRotation(); err != nil {
		o.logger.Warn().Err(err).Msg("failed to reset wallpaper rotation")
	}

	result.Duration = time.Since(started)
	o.record(ctx, result, started)

	o.logger.Info().
		Str("theme", themeName).
		Int("applied", len(result.Applied)).
		Int("failed", len(result.Failed)).
		Dur("duration", result.Duration).
		Msg("theme switch applied")

	return result, nil
}

// applyHook runs one hook under the hook timeout.
func (o *Orchestrator) applyHook(ctx context.Context, hook hooks.Hook, ec hooks.Context, pal palette.Palette) error {
	timeout := o.cfg.HookTimeout
	if timeout <= 0 {
		timeout = config.DefaultConfig().HookTimeout
	}
	hookCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return hook.Apply(hookCtx, ec, pal)
}

func (o *Orchestrator) record(ctx context.Context, result *Result, started time.Time) {
	if o.journal == nil {
		return
	}
	err := o.journal.Append(ctx, &journal.Record{
		Theme:     result.Theme,
		Applied:   result.Applied,
		Failed:    result.FailedNames(),
		StartedAt: started.UTC(),
		Duration:  result.Duration,
	})
	if err != nil {
		o.logger.Warn().Err(err).Msg("failed to record switch history")
	}
}

// configHome derives the XDG config home from the cruzalex config dir
// (~/.config/cruzalex -> ~/.config).
func configHome(cfg config.Config) string {
	if cfg.ConfigDir == "" {
		return ""
	}
	return filepath.Dir(cfg.ConfigDir)
}
