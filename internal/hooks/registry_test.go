package hooks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruzalex/shade/internal/palette"
)

type stubHook struct {
	name  string
	order int
	apply func(ctx context.Context, ec Context, pal palette.Palette) error
}

func (s *stubHook) Name() string { return s.name }
func (s *stubHook) Order() int   { return s.order }
func (s *stubHook) Apply(ctx context.Context, ec Context, pal palette.Palette) error {
	if s.apply == nil {
		return nil
	}
	return s.apply(ctx, ec, pal)
}

func TestRegistryOrdering(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&stubHook{name: "wallpaper", order: 80})
	r.MustRegister(&stubHook{name: "colors", order: 10})
	r.MustRegister(&stubHook{name: "beta", order: 30})
	r.MustRegister(&stubHook{name: "alpha", order: 30})

	assert.Equal(t, []string{"colors", "alpha", "beta", "wallpaper"}, r.Names(),
		"sorted by order, then name")
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubHook{name: "colors", order: 10}))
	assert.Error(t, r.Register(&stubHook{name: "colors", order: 20}))
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	hook := &stubHook{name: "colors", order: 10}
	r.MustRegister(hook)

	assert.Equal(t, Hook(hook), r.Get("colors"))
	assert.Nil(t, r.Get("missing"))
}

func TestBuiltinOrdering(t *testing.T) {
	r := NewRegistry()
	for _, hook := range Builtin(Deps{}) {
		r.MustRegister(hook)
	}

	names := r.Names()
	require.Equal(t, []string{
		"colors", "alacritty", "kitty", "waybar", "mako",
		"neovim", "starship", "hyprland", "wallpaper",
	}, names)
}
