// Package state persists durable theme state, one fact per file.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// State file names. Each slot is a single-line file in the state dir so
// shell collaborators can read them with plain tooling.
const (
	slotTheme           = "theme"
	slotWallpaper       = "background"
	slotWallpaperIndex  = "background_index"
	slotColorscheme     = "colorscheme"
)

// Store reads and writes the persisted theme state. Readers include the
// wallpaper rotation tick and editor instances at startup; the store is
// the single crash-durable record shared across process launches.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the state directory.
func (s *Store) Dir() string {
	return s.dir
}

// Theme returns the current theme name, empty when never set.
func (s *Store) Theme() string {
	return s.read(slotTheme)
}

// SetTheme records the current theme name.
func (s *Store) SetTheme(name string) error {
	return s.write(slotTheme, name)
}

// Wallpaper returns the current wallpaper path, empty for the solid-color
// fallback.
func (s *Store) Wallpaper() string {
	return s.read(slotWallpaper)
}

// SetWallpaper records the current wallpaper path.
func (s *Store) SetWallpaper(path string) error {
	return s.write(slotWallpaper, path)
}

// WallpaperIndex returns the rotation index. Missing or unparseable state
// counts as 0.
func (s *Store) WallpaperIndex() int {
	value := s.read(slotWallpaperIndex)
	index, err := strconv.Atoi(value)
	if err != nil || index < 0 {
		return 0
	}
	return index
}

// SetWallpaperIndex records the rotation index.
func (s *Store) SetWallpaperIndex(index int) error {
	return s.write(slotWallpaperIndex, strconv.Itoa(index))
}

// ResetRotation returns the rotation index to its initial value. Called on
// every theme switch.
func (s *Store) ResetRotation() error {
	return s.SetWallpaperIndex(0)
}

// Colorscheme returns the last-applied editor colorscheme name.
func (s *Store) Colorscheme() string {
	return s.read(slotColorscheme)
}

// SetColorscheme records the last-applied editor colorscheme name.
func (s *Store) SetColorscheme(name string) error {
	return s.write(slotColorscheme, name)
}

func (s *Store) read(slot string) string {
	data, err := os.ReadFile(filepath.Join(s.dir, slot))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *Store) write(slot, value string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	path := filepath.Join(s.dir, slot)
	if err := os.WriteFile(path, []byte(value+"\n"), 0o600); err != nil {
		return fmt.Errorf("write state %s: %w", slot, err)
	}
	return nil
}
