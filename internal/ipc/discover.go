// Package ipc discovers IPC endpoints of running application instances.
package ipc

import (
	"os"
	"path/filepath"
	"sort"
)

// Endpoint is an addressable IPC endpoint of one running instance.
type Endpoint struct {
	// Address is the socket path handed to the application's remote CLI.
	Address string
}

// Discoverer finds the endpoints of currently running instances. Sends to
// a returned endpoint are best-effort: an endpoint may describe an
// instance that exited after discovery.
type Discoverer interface {
	Discover() []Endpoint
}

// GlobDiscoverer locates endpoints by matching socket paths against glob
// patterns, the mechanism editors use to expose per-instance sockets in
// the runtime directory.
type GlobDiscoverer struct {
	Patterns []string
}

// NeovimDiscoverer returns a discoverer for running Neovim instances.
// Neovim creates one server socket per instance under the runtime dir.
func NeovimDiscoverer() *GlobDiscoverer {
	patterns := []string{filepath.Join(os.TempDir(), "nvim*", "0")}
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		patterns = append(patterns, filepath.Join(runtimeDir, "nvim.*.0"))
	}
	return &GlobDiscoverer{Patterns: patterns}
}

// Discover returns every socket matching the configured patterns, sorted
// and de-duplicated. Unmatchable patterns contribute nothing.
func (d *GlobDiscoverer) Discover() []Endpoint {
	seen := make(map[string]bool)
	var endpoints []Endpoint
	for _, pattern := range d.Patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			endpoints = append(endpoints, Endpoint{Address: match})
		}
	}
	sort.Slice(endpoints, func(i, j int) bool { return endpoints[i].Address < endpoints[j].Address })
	return endpoints
}
