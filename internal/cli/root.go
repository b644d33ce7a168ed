// Package cli implements the shade command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cruzalex/shade/internal/config"
	"github.com/cruzalex/shade/internal/hooks"
	"github.com/cruzalex/shade/internal/ipc"
	"github.com/cruzalex/shade/internal/journal"
	"github.com/cruzalex/shade/internal/logging"
	"github.com/cruzalex/shade/internal/proc"
	"github.com/cruzalex/shade/internal/state"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "shade",
	Short: "Propagate a color theme across desktop applications",
	Long: `shade applies a theme's palette consistently across terminal
emulators, the status bar, the window manager, the editor, the
notification daemon, and the shell prompt, reloading running
applications where they support it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace/debug/info/warn/error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env bundles everything a command needs, wired from configuration.
type env struct {
	cfg      config.Config
	store    *state.Store
	registry *hooks.Registry
	renderer *proc.Renderer
	runner   proc.Runner
}

func buildEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logLevel == "" {
		logging.Setup(cfg.LogLevel)
	}

	runner := &proc.ExecRunner{KillGrace: cfg.KillGrace}
	controller := proc.ProcController{}
	renderer := &proc.Renderer{
		Name:       cfg.RendererName,
		Controller: controller,
		Runner:     runner,
	}
	store := state.NewStore(cfg.StateDir)

	registry := hooks.NewRegistry()
	builtin := hooks.Builtin(hooks.Deps{
		Store:         store,
		Runner:        runner,
		Controller:    controller,
		Renderer:      renderer,
		Discoverer:    ipc.NeovimDiscoverer(),
		ReloadTimeout: cfg.ReloadTimeout,
	})
	for _, hook := range builtin {
		registry.MustRegister(hook)
	}

	scripts, err := hooks.LoadScripts(cfg.HooksDir, runner)
	if err != nil {
		return nil, fmt.Errorf("load hook scripts: %w", err)
	}
	logger := logging.Component("cli")
	for _, hook := range scripts {
		if err := registry.Register(hook); err != nil {
			logger.Warn().Err(err).Msg("skipping conflicting hook script")
		}
	}

	return &env{
		cfg:      cfg,
		store:    store,
		registry: registry,
		renderer: renderer,
		runner:   runner,
	}, nil
}

// openJournal opens the switch history, which is optional: a failure is
// logged and history is simply not recorded.
func (e *env) openJournal() *journal.Journal {
	logger := logging.Component("cli")
	if err := os.MkdirAll(e.cfg.StateDir, 0o700); err != nil {
		logger.Warn().Err(err).Msg("switch history unavailable")
		return nil
	}
	jnl, err := journal.Open(e.cfg.StateDir)
	if err != nil {
		logger.Warn().Err(err).Msg("switch history unavailable")
		return nil
	}
	return jnl
}
