package hooks

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruzalex/shade/internal/ipc"
	"github.com/cruzalex/shade/internal/palette"
	"github.com/cruzalex/shade/internal/proc"
	"github.com/cruzalex/shade/internal/state"
)

type signalRecorder struct {
	mu      sync.Mutex
	pids    map[string][]int
	signals []syscall.Signal
}

func (s *signalRecorder) Find(name string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pids[name]
}

func (s *signalRecorder) Signal(pid int, sig syscall.Signal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signals = append(s.signals, sig)
	return nil
}

func (s *signalRecorder) Alive(pid int) bool { return false }

func testContext(t *testing.T) Context {
	t.Helper()
	base := t.TempDir()
	ec := Context{
		ThemeName:  "testtheme",
		ThemeDir:   filepath.Join(base, "themes", "testtheme"),
		ConfigHome: filepath.Join(base, "config"),
		ConfigDir:  filepath.Join(base, "config", "cruzalex"),
		StateDir:   filepath.Join(base, "state"),
	}
	require.NoError(t, os.MkdirAll(ec.ThemeDir, 0o755))
	require.NoError(t, os.MkdirAll(ec.ConfigHome, 0o755))
	require.NoError(t, os.MkdirAll(ec.StateDir, 0o700))
	return ec
}

// applyTwice asserts the idempotence law: a second application with the
// same palette leaves the target file byte-identical.
func applyTwice(t *testing.T, hook Hook, ec Context, pal palette.Palette, target string) []byte {
	t.Helper()
	require.NoError(t, hook.Apply(context.Background(), ec, pal))
	first, err := os.ReadFile(target)
	require.NoError(t, err)

	require.NoError(t, hook.Apply(context.Background(), ec, pal))
	second, err := os.ReadFile(target)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "double apply must be byte-identical")
	return first
}

func TestColorsHook(t *testing.T) {
	ec := testContext(t)
	out := applyTwice(t, ColorsHook{}, ec, palette.Default(), filepath.Join(ec.StateDir, "colors.sh"))
	assert.Contains(t, string(out), `SHADE_BACKGROUND="#1a1b26"`)
}

func TestAlacrittyHookSynthesized(t *testing.T) {
	ec := testContext(t)
	target := filepath.Join(ec.ConfigHome, "alacritty", "theme.toml")

	out := applyTwice(t, AlacrittyHook{}, ec, palette.Default(), target)
	assert.Contains(t, string(out), "foreground = '#c0caf5'")
	assert.Contains(t, string(out), "background = '#1a1b26'")
}

func TestAlacrittyHookPrefersFragment(t *testing.T) {
	ec := testContext(t)
	fragment := "# hand-tuned theme\n[colors.primary]\nbackground = '#123456'\n"
	require.NoError(t, os.WriteFile(filepath.Join(ec.ThemeDir, "alacritty.toml"), []byte(fragment), 0o644))

	target := filepath.Join(ec.ConfigHome, "alacritty", "theme.toml")
	out := applyTwice(t, AlacrittyHook{}, ec, palette.Default(), target)
	assert.Equal(t, fragment, string(out), "native fragment wins over synthesis")
}

func TestKittyHookSignalsRunningInstances(t *testing.T) {
	ec := testContext(t)
	ctrl := &signalRecorder{pids: map[string][]int{"kitty": {42, 43}}}
	hook := KittyHook{Controller: ctrl}

	out := applyTwice(t, hook, ec, palette.Default(), filepath.Join(ec.ConfigHome, "kitty", "theme.conf"))
	assert.Contains(t, string(out), "foreground #c0caf5")
	assert.Contains(t, string(out), "color15 #c0caf5")
	assert.Equal(t, []syscall.Signal{syscall.SIGUSR1, syscall.SIGUSR1, syscall.SIGUSR1, syscall.SIGUSR1}, ctrl.signals)
}

func TestWaybarHookContrast(t *testing.T) {
	ec := testContext(t)
	pal := palette.Default()
	pal.Accent = "#ffffff" // light accent needs dark text

	ctrl := &signalRecorder{pids: map[string][]int{"waybar": {7}}}
	out := applyTwice(t, WaybarHook{Controller: ctrl}, ec, pal, filepath.Join(ec.ConfigHome, "waybar", "colors.css"))

	assert.Contains(t, string(out), "@define-color accent #ffffff;")
	assert.Contains(t, string(out), "@define-color accent-foreground #1a1a1a;")
	assert.Contains(t, string(out), "@define-color color0 #15161e;")
	assert.Contains(t, ctrl.signals, syscall.SIGUSR2)
}

func TestMakoHookPreservesUserConfig(t *testing.T) {
	ec := testContext(t)
	path := filepath.Join(ec.ConfigHome, "mako", "config")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("font=monospace 10\nbackground-color=#000000\n[urgency=high]\nborder-size=3\n"), 0o644))

	runner := &recordingRunner{}
	out := applyTwice(t, MakoHook{Runner: runner}, ec, palette.Default(), path)

	content := string(out)
	assert.Contains(t, content, "font=monospace 10\n", "user settings preserved")
	assert.Contains(t, content, "background-color=#1a1b26\n")
	assert.Contains(t, content, "text-color=#c0caf5\n")
	assert.Contains(t, content, "[urgency=high]\nborder-size=3\n", "sections untouched")
	assert.NotContains(t, content, "#000000")

	require.NotEmpty(t, runner.runs)
	assert.Equal(t, []string{"makoctl", "reload"}, runner.runs[0])
}

func TestMakoHookReloadFailureIsNotFatal(t *testing.T) {
	ec := testContext(t)
	runner := &recordingRunner{err: context.DeadlineExceeded}
	err := MakoHook{Runner: runner}.Apply(context.Background(), ec, palette.Default())
	assert.NoError(t, err, "reload timeout is swallowed")
}

func TestReloadCommandsAreBounded(t *testing.T) {
	ec := testContext(t)
	timeout := 50 * time.Millisecond

	makoRunner := &recordingRunner{}
	require.NoError(t, MakoHook{Runner: makoRunner, ReloadTimeout: timeout}.
		Apply(context.Background(), ec, palette.Default()))
	require.Len(t, makoRunner.deadlines, 1)
	assert.True(t, makoRunner.deadlines[0], "makoctl runs under a deadline")

	hyprRunner := &recordingRunner{}
	require.NoError(t, HyprlandHook{Runner: hyprRunner, ReloadTimeout: timeout}.
		Apply(context.Background(), ec, palette.Default()))
	require.Len(t, hyprRunner.deadlines, 1)
	assert.True(t, hyprRunner.deadlines[0], "hyprctl runs under a deadline")

	nvimRunner := &recordingRunner{}
	hook := NeovimHook{
		Runner:        nvimRunner,
		Discoverer:    staticDiscoverer{"/run/nvim.100.0"},
		ReloadTimeout: timeout,
	}
	require.NoError(t, hook.Apply(context.Background(), ec, palette.Default()))
	require.Len(t, nvimRunner.deadlines, 1)
	assert.True(t, nvimRunner.deadlines[0], "remote send runs under a deadline")

	// Without a configured bound the caller's context passes through.
	plainRunner := &recordingRunner{}
	require.NoError(t, MakoHook{Runner: plainRunner}.
		Apply(context.Background(), ec, palette.Default()))
	require.Len(t, plainRunner.deadlines, 1)
	assert.False(t, plainRunner.deadlines[0])
}

func TestNeovimHook(t *testing.T) {
	ec := testContext(t)
	require.NoError(t, os.WriteFile(filepath.Join(ec.ThemeDir, "neovim.colorscheme"), []byte("tokyonight-night\n"), 0o644))

	store := state.NewStore(ec.StateDir)
	runner := &recordingRunner{}
	hook := NeovimHook{
		Store:      store,
		Runner:     runner,
		Discoverer: staticDiscoverer{"/run/nvim.100.0", "/run/nvim.101.0"},
	}

	require.NoError(t, hook.Apply(context.Background(), ec, palette.Default()))

	assert.Equal(t, "tokyonight-night", store.Colorscheme())
	require.Len(t, runner.runs, 2)
	assert.Equal(t, []string{
		"nvim", "--server", "/run/nvim.100.0",
		"--remote-send", "<Esc>:colorscheme tokyonight-night<CR>",
	}, runner.runs[0])
}

func TestNeovimHookFallsBackToThemeName(t *testing.T) {
	ec := testContext(t)
	store := state.NewStore(ec.StateDir)
	hook := NeovimHook{Store: store}

	require.NoError(t, hook.Apply(context.Background(), ec, palette.Default()))
	assert.Equal(t, "testtheme", store.Colorscheme())
}

func TestStarshipHookMutatesInPlace(t *testing.T) {
	ec := testContext(t)
	path := filepath.Join(ec.ConfigHome, "starship.toml")
	require.NoError(t, os.WriteFile(path, []byte("add_newline = false\n\n[character]\nsuccess_symbol = '>'\n"), 0o644))

	out := applyTwice(t, StarshipHook{}, ec, palette.Default(), path)
	content := string(out)

	assert.Contains(t, content, "add_newline = false", "user settings survive")
	assert.Contains(t, content, "success_symbol = '>'")
	assert.Contains(t, content, "palette = 'cruzalex'")
	assert.Contains(t, content, "[palettes.cruzalex]")
	assert.Contains(t, content, "accent = '#7aa2f7'")
}

func TestStarshipHookCreatesConfig(t *testing.T) {
	ec := testContext(t)
	path := filepath.Join(ec.ConfigHome, "starship.toml")
	out := applyTwice(t, StarshipHook{}, ec, palette.Default(), path)
	assert.Contains(t, string(out), "palette = 'cruzalex'")
}

func TestHyprlandHook(t *testing.T) {
	ec := testContext(t)
	runner := &recordingRunner{}
	target := filepath.Join(ec.ConfigHome, "hypr", "colors.conf")

	out := applyTwice(t, HyprlandHook{Runner: runner}, ec, palette.Default(), target)
	content := string(out)
	assert.Contains(t, content, "col.active_border = rgb(7aa2f7)")
	// Accent #7aa2f7 darkened 50%: 0x7a/2=0x3d, 0xa2/2=0x51, 0xf7/2=0x7b.
	assert.Contains(t, content, "col.inactive_border = rgb(3d517b)")
	require.NotEmpty(t, runner.runs)
	assert.Equal(t, []string{"hyprctl", "reload"}, runner.runs[0])
}

func TestWallpaperHookWithWallpapers(t *testing.T) {
	ec := testContext(t)
	bgDir := filepath.Join(ec.ThemeDir, "backgrounds")
	require.NoError(t, os.MkdirAll(bgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bgDir, "b.png"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(bgDir, "a.png"), []byte("x"), 0o644))

	store := state.NewStore(ec.StateDir)
	runner := &startRecorder{}
	hook := WallpaperHook{
		Store: store,
		Renderer: &proc.Renderer{
			Name:         "swaybg",
			Controller:   &signalRecorder{},
			Runner:       runner,
			PollInterval: time.Millisecond,
			PollAttempts: 1,
		},
	}

	require.NoError(t, hook.Apply(context.Background(), ec, palette.Default()))

	require.Len(t, runner.started, 1)
	assert.Equal(t, []string{"swaybg", "-i", filepath.Join(bgDir, "a.png"), "-m", "fill"}, runner.started[0])
	assert.Equal(t, filepath.Join(bgDir, "a.png"), store.Wallpaper())
	assert.Zero(t, store.WallpaperIndex(), "rotation resets on switch")
}

func TestWallpaperHookSolidFallback(t *testing.T) {
	ec := testContext(t)
	store := state.NewStore(ec.StateDir)
	runner := &startRecorder{}
	hook := WallpaperHook{
		Store: store,
		Renderer: &proc.Renderer{
			Name:         "swaybg",
			Controller:   &signalRecorder{},
			Runner:       runner,
			PollInterval: time.Millisecond,
			PollAttempts: 1,
		},
	}

	require.NoError(t, hook.Apply(context.Background(), ec, palette.Default()))

	require.Len(t, runner.started, 1)
	assert.Equal(t, []string{"swaybg", "-c", "#1a1b26"}, runner.started[0])
	assert.Empty(t, store.Wallpaper(), "empty wallpaper means solid fallback")
}

type staticDiscoverer []string

func (s staticDiscoverer) Discover() []ipc.Endpoint {
	endpoints := make([]ipc.Endpoint, 0, len(s))
	for _, addr := range s {
		endpoints = append(endpoints, ipc.Endpoint{Address: addr})
	}
	return endpoints
}

type startRecorder struct {
	mu      sync.Mutex
	started [][]string
}

func (s *startRecorder) Run(_ context.Context, _ []string, name string, args ...string) error {
	return nil
}

func (s *startRecorder) Start(name string, args ...string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = append(s.started, append([]string{name}, args...))
	return 4242, nil
}
