package proc

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// Controller lists and signals processes by command name. Implementations
// other than the real one exist for tests.
type Controller interface {
	// Find returns the pids of processes whose command name matches name.
	Find(name string) []int

	// Signal delivers sig to pid.
	Signal(pid int, sig syscall.Signal) error

	// Alive reports whether pid still exists.
	Alive(pid int) bool
}

// ProcController reads the /proc table.
type ProcController struct{}

// Find scans /proc for processes whose comm equals name.
func (ProcController) Find(name string) []int {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil
	}

	self := os.Getpid()
	var pids []int
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid == self {
			continue
		}
		comm, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "comm"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(comm)) == name {
			pids = append(pids, pid)
		}
	}
	return pids
}

// Signal delivers sig to pid.
func (ProcController) Signal(pid int, sig syscall.Signal) error {
	return syscall.Kill(pid, sig)
}

// Alive reports whether pid exists, using the null signal.
func (ProcController) Alive(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}
