// Package theme models the on-disk theme bundles under the themes root.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrThemeNotFound indicates the requested theme has no directory under the
// themes root.
var ErrThemeNotFound = errors.New("theme not found")

// currentLinkName is the symlink in the config dir pointing at the active
// theme directory. It lives next to the themes root, not inside it.
const currentLinkName = "current"

var wallpaperExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Theme describes one installed theme bundle.
type Theme struct {
	// Name is the theme directory name.
	Name string

	// DisplayName is the human-readable form ("catppuccin-mocha" ->
	// "Catppuccin Mocha").
	DisplayName string

	// Path is the absolute theme directory.
	Path string

	// Light is true when the bundle carries a light.mode marker.
	Light bool

	// Wallpapers lists the image files under backgrounds/, sorted by name.
	Wallpapers []string
}

// Dir resolves a theme name to its directory under the themes root.
// The directory must exist and contain a colors.toml.
func Dir(themesRoot, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == currentLinkName || strings.ContainsRune(name, os.PathSeparator) {
		return "", fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	path := filepath.Join(themesRoot, name)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return path, nil
}

// Load reads one theme bundle's metadata.
func Load(themesRoot, name string) (*Theme, error) {
	path, err := Dir(themesRoot, name)
	if err != nil {
		return nil, err
	}
	return load(path, name), nil
}

// List scans the themes root and returns every valid theme sorted by name.
// Entries without a colors.toml and the current symlink are skipped. A
// missing themes root yields an empty list.
func List(themesRoot string) ([]*Theme, error) {
	entries, err := os.ReadDir(themesRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Theme{}, nil
		}
		return nil, fmt.Errorf("read themes root %s: %w", themesRoot, err)
	}

	themes := make([]*Theme, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if name == currentLinkName {
			continue
		}
		path := filepath.Join(themesRoot, name)
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(path, "colors.toml")); err != nil {
			continue
		}
		themes = append(themes, load(path, name))
	}

	sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes, nil
}

// Current returns the name of the active theme from the current symlink,
// or empty when no theme has been applied yet.
func Current(configDir string) string {
	target, err := os.Readlink(filepath.Join(configDir, currentLinkName))
	if err != nil {
		return ""
	}
	return filepath.Base(target)
}

// SetCurrent repoints the current symlink at themeDir. The link is created
// under a temporary name and renamed into place so readers never observe a
// missing link.
func SetCurrent(configDir, themeDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	link := filepath.Join(configDir, currentLinkName)
	tmp := link + ".tmp"
	_ = os.Remove(tmp)
	if err := os.Symlink(themeDir, tmp); err != nil {
		return fmt.Errorf("create current link: %w", err)
	}
	if err := os.Rename(tmp, link); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("activate current link: %w", err)
	}
	return nil
}

// Fragment returns the path of a native per-application config fragment
// inside the theme directory, or empty when the theme does not ship one.
func Fragment(themeDir, name string) string {
	path := filepath.Join(themeDir, name)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return path
	}
	return ""
}

func load(path, name string) *Theme {
	_, lightErr := os.Stat(filepath.Join(path, "light.mode"))
	return &Theme{
		Name:        name,
		DisplayName: displayName(name),
		Path:        path,
		Light:       lightErr == nil,
		Wallpapers:  Wallpapers(path),
	}
}

// Wallpapers returns the sorted image files under the theme's
// backgrounds/ directory.
func Wallpapers(themeDir string) []string {
	dir := filepath.Join(themeDir, "backgrounds")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	papers := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if wallpaperExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			papers = append(papers, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(papers)
	return papers
}

func displayName(name string) string {
	words := strings.Split(name, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
