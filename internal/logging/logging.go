// Package logging configures the global zerolog logger for shade.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.Mutex
	root zerolog.Logger = zerolog.New(io.Discard)
)

// Setup initializes the root logger writing to stderr at the given level.
// Unknown level strings fall back to "info".
func Setup(level string) {
	mu.Lock()
	defer mu.Unlock()

	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	root = zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}

// Component returns a logger tagged with a component name.
func Component(name string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	return root.With().Str("component", name).Logger()
}
