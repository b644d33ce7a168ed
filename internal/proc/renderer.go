package proc

import (
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/cruzalex/shade/internal/logging"
)

// RendererState tracks an old renderer process through replacement.
type RendererState int

const (
	// StateRunning means the old renderer is alive and untouched.
	StateRunning RendererState = iota

	// StateTerminating means termination was requested and the renderer
	// has not yet confirmed exit.
	StateTerminating

	// StateStopped means no old renderer remains.
	StateStopped
)

// String returns the state name for logs.
func (s RendererState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Renderer replaces the wallpaper renderer process. The display is a shared
// resource: at most one renderer may be alive at any time, so the old
// process must be confirmed gone before the new one launches.
type Renderer struct {
	// Name is the renderer's process name, used to locate running instances.
	Name string

	// Controller locates and signals processes.
	Controller Controller

	// Runner launches the replacement.
	Runner Runner

	// PollInterval is the wait between liveness checks while terminating.
	PollInterval time.Duration

	// PollAttempts bounds how many liveness checks happen before the
	// renderer is force-killed.
	PollAttempts int

	logger *zerolog.Logger
}

const (
	defaultPollInterval = 100 * time.Millisecond
	defaultPollAttempts = 10
)

// Replace terminates any running renderer and starts a new one with args.
// Termination follows running -> terminating -> stopped: graceful SIGTERM,
// bounded polling for exit, SIGKILL for stragglers. Failures to kill are
// logged and the launch proceeds regardless; they are never escalated.
func (r *Renderer) Replace(args ...string) (int, error) {
	logger := r.log()

	pids := r.Controller.Find(r.Name)
	state := StateStopped
	if len(pids) > 0 {
		state = StateRunning
	}

	if state == StateRunning {
		for _, pid := range pids {
			if err := r.Controller.Signal(pid, syscall.SIGTERM); err != nil {
				logger.Debug().Err(err).Int("pid", pid).Msg("sigterm failed")
			}
		}
		state = StateTerminating
		logger.Debug().Ints("pids", pids).Stringer("state", state).Msg("renderer terminating")

		pids = r.awaitExit(pids)
		if len(pids) > 0 {
			for _, pid := range pids {
				if err := r.Controller.Signal(pid, syscall.SIGKILL); err != nil {
					logger.Warn().Err(err).Int("pid", pid).Msg("force kill failed")
				}
			}
			pids = r.survivors(pids)
		}

		state = StateStopped
		if len(pids) > 0 {
			// Launch anyway: a wedged unkillable renderer must not block
			// the switch.
			logger.Warn().Ints("pids", pids).Msg("old renderer still alive after force kill")
		}
	}

	pid, err := r.Runner.Start(r.Name, args...)
	if err != nil {
		return 0, err
	}
	logger.Info().Int("pid", pid).Strs("args", args).Msg("renderer started")
	return pid, nil
}

// Stop terminates any running renderer without starting a replacement.
func (r *Renderer) Stop() {
	logger := r.log()
	pids := r.Controller.Find(r.Name)
	for _, pid := range pids {
		if err := r.Controller.Signal(pid, syscall.SIGTERM); err != nil {
			logger.Debug().Err(err).Int("pid", pid).Msg("sigterm failed")
		}
	}
	for _, pid := range r.awaitExit(pids) {
		_ = r.Controller.Signal(pid, syscall.SIGKILL)
	}
}

// awaitExit polls until every pid is gone or attempts run out, returning
// the pids still alive.
func (r *Renderer) awaitExit(pids []int) []int {
	interval := r.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	attempts := r.PollAttempts
	if attempts <= 0 {
		attempts = defaultPollAttempts
	}

	remaining := pids
	for i := 0; i < attempts; i++ {
		remaining = r.survivors(remaining)
		if len(remaining) == 0 {
			return nil
		}
		time.Sleep(interval)
	}
	return r.survivors(remaining)
}

func (r *Renderer) survivors(pids []int) []int {
	var alive []int
	for _, pid := range pids {
		if r.Controller.Alive(pid) {
			alive = append(alive, pid)
		}
	}
	return alive
}

func (r *Renderer) log() zerolog.Logger {
	if r.logger != nil {
		return *r.logger
	}
	return logging.Component("renderer")
}
