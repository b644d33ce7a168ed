package hooks

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cruzalex/shade/internal/ipc"
	"github.com/cruzalex/shade/internal/logging"
	"github.com/cruzalex/shade/internal/palette"
	"github.com/cruzalex/shade/internal/proc"
	"github.com/cruzalex/shade/internal/state"
	"github.com/cruzalex/shade/internal/theme"
)

// NeovimHook propagates the editor colorscheme. The name comes from the
// theme's neovim.colorscheme fragment, falling back to the theme name. It
// is persisted to the state store so editors launched later pick it up at
// startup, then pushed best-effort to every running instance discovered
// through its server socket.
type NeovimHook struct {
	Store      *state.Store
	Discoverer ipc.Discoverer
	Runner     proc.Runner

	// ReloadTimeout bounds each per-instance remote send separately
	// from the hook timeout. Zero means no extra bound.
	ReloadTimeout time.Duration
}

func (NeovimHook) Name() string { return "neovim" }
func (NeovimHook) Order() int   { return 50 }

func (h NeovimHook) Apply(ctx context.Context, ec Context, _ palette.Palette) error {
	scheme := colorschemeName(ec)

	if h.Store != nil {
		if err := h.Store.SetColorscheme(scheme); err != nil {
			return err
		}
	}

	if h.Discoverer == nil || h.Runner == nil {
		return nil
	}

	logger := logging.Component("neovim")
	command := fmt.Sprintf("<Esc>:colorscheme %s<CR>", scheme)
	for _, endpoint := range h.Discoverer.Discover() {
		err := h.send(ctx, endpoint.Address, command)
		if err != nil {
			// Stale sockets and quit instances are expected.
			logger.Debug().Err(err).Str("endpoint", endpoint.Address).Msg("remote apply failed")
		}
	}
	return nil
}

func (h NeovimHook) send(ctx context.Context, address, command string) error {
	sendCtx, cancel := reloadContext(ctx, h.ReloadTimeout)
	defer cancel()
	return h.Runner.Run(sendCtx, nil, "nvim",
		"--server", address, "--remote-send", command)
}

// colorschemeName resolves the colorscheme for the theme: the first line
// of the neovim.colorscheme fragment when present, otherwise the theme
// name itself.
func colorschemeName(ec Context) string {
	if fragment := theme.Fragment(ec.ThemeDir, "neovim.colorscheme"); fragment != "" {
		if data, err := os.ReadFile(fragment); err == nil {
			line, _, _ := strings.Cut(string(data), "\n")
			if name := strings.TrimSpace(line); name != "" {
				return name
			}
		}
	}
	return ec.ThemeName
}
