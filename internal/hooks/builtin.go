package hooks

import (
	"time"

	"github.com/cruzalex/shade/internal/ipc"
	"github.com/cruzalex/shade/internal/proc"
	"github.com/cruzalex/shade/internal/state"
)

// Deps are the shared collaborators the built-in hooks need.
type Deps struct {
	Store      *state.Store
	Runner     proc.Runner
	Controller proc.Controller
	Renderer   *proc.Renderer
	Discoverer ipc.Discoverer

	// ReloadTimeout bounds each external reload command.
	ReloadTimeout time.Duration
}

// Builtin returns the built-in hook set in registration order. The numeric
// orders leave room for user scripts between any two built-ins.
func Builtin(deps Deps) []Hook {
	return []Hook{
		ColorsHook{},
		AlacrittyHook{},
		KittyHook{Controller: deps.Controller},
		WaybarHook{Controller: deps.Controller},
		MakoHook{Runner: deps.Runner, ReloadTimeout: deps.ReloadTimeout},
		NeovimHook{Store: deps.Store, Discoverer: deps.Discoverer, Runner: deps.Runner, ReloadTimeout: deps.ReloadTimeout},
		StarshipHook{},
		HyprlandHook{Runner: deps.Runner, ReloadTimeout: deps.ReloadTimeout},
		WallpaperHook{Store: deps.Store, Renderer: deps.Renderer},
	}
}
