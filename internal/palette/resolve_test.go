package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeColors(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "colors.toml"), []byte(content), 0o644))
	return dir
}

func TestResolveMissingDirectoryReturnsDefaults(t *testing.T) {
	pal := Resolve(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Equal(t, Default(), pal)
}

func TestResolveEmptyFileReturnsDefaults(t *testing.T) {
	pal := Resolve(writeColors(t, ""))
	assert.Equal(t, Default(), pal)
}

func TestResolveUnparseableFileReturnsDefaults(t *testing.T) {
	pal := Resolve(writeColors(t, "this is { not toml"))
	assert.Equal(t, Default(), pal)
}

func TestResolveDefaultsFullyPopulated(t *testing.T) {
	pal := Default()
	assert.NotEmpty(t, pal.Foreground)
	assert.NotEmpty(t, pal.Background)
	assert.NotEmpty(t, pal.Accent)
	assert.NotEmpty(t, pal.Cursor)
	assert.NotEmpty(t, pal.SelectionBackground)
	assert.NotEmpty(t, pal.SelectionForeground)
	for i, color := range pal.ANSI {
		assert.NotEmpty(t, color, "ansi slot %d", i)
	}
}

func TestResolveParsesAndNormalizes(t *testing.T) {
	dir := writeColors(t, `
foreground = "#EAEAEA"
background = "101010"
accent = "#FF8800"
color0 = "#000000"
color15 = "#ffffff"
`)
	pal := Resolve(dir)

	assert.Equal(t, "#eaeaea", pal.Foreground)
	assert.Equal(t, "#101010", pal.Background, "leading # is optional")
	assert.Equal(t, "#ff8800", pal.Accent)
	assert.Equal(t, "#000000", pal.ANSI[0])
	assert.Equal(t, "#ffffff", pal.ANSI[15])

	// Keys the theme left out keep their defaults.
	def := Default()
	assert.Equal(t, def.Cursor, pal.Cursor)
	assert.Equal(t, def.ANSI[7], pal.ANSI[7])
}

func TestResolveInvalidValuesFallBackPerKey(t *testing.T) {
	dir := writeColors(t, `
foreground = "#12zz34"
background = "#222222"
unrecognized = "#334455"
`)
	pal := Resolve(dir)

	assert.Equal(t, Default().Foreground, pal.Foreground, "bad hex falls back")
	assert.Equal(t, "#222222", pal.Background)
}

func TestShellOutput(t *testing.T) {
	out := Default().Shell()
	assert.Contains(t, out, `SHADE_BACKGROUND="#1a1b26"`)
	assert.Contains(t, out, `SHADE_COLOR0="#15161e"`)
	assert.Contains(t, out, `SHADE_COLOR15="#c0caf5"`)
}
