// Package platform translates logical desktop actions into external
// process invocations for the host OS. All per-OS branching of the
// application lives here.
package platform

import (
	"fmt"
	"log"
	"os/exec"
	goruntime "runtime"
)

// linuxFileManagers is the ordered fallback list for revealing a file on
// Linux, where no single canonical file manager exists.
var linuxFileManagers = []string{"nautilus", "dolphin", "thunar", "pcmanfm"}

// SpawnFunc starts an external program and reports whether the OS accepted
// the spawn request. The child's exit status is never inspected.
type SpawnFunc func(name string, args ...string) error

func spawnDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Invoker selects and starts external programs for logical actions.
type Invoker struct {
	goos   string
	spawn  SpawnFunc
	logger *log.Logger
}

// NewInvoker creates an Invoker for the current OS.
func NewInvoker(logger *log.Logger) *Invoker {
	return &Invoker{
		goos:   goruntime.GOOS,
		spawn:  spawnDetached,
		logger: logger,
	}
}

// newInvokerFor is the test seam: fixed OS identity and a fake spawner.
func newInvokerFor(goos string, spawn SpawnFunc, logger *log.Logger) *Invoker {
	return &Invoker{goos: goos, spawn: spawn, logger: logger}
}

// OpenPath opens target (a URL or filesystem path) with the OS default
// handler. Fire-and-forget: success means the spawn was accepted.
func (inv *Invoker) OpenPath(target string) error {
	inv.logger.Printf("[Invoker] OpenPath: %s", target)

	var err error
	switch inv.goos {
	case "windows":
		err = inv.spawn("cmd", "/C", "start", target)
	case "darwin":
		err = inv.spawn("open", target)
	default: // linux and others
		err = inv.spawn("xdg-open", target)
	}

	if err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	return nil
}

// RevealInFolder shows path in the OS file manager. On Linux the candidate
// managers are tried in order and the walk stops at the first accepted
// spawn.
func (inv *Invoker) RevealInFolder(path string) error {
	inv.logger.Printf("[Invoker] RevealInFolder: %s", path)

	switch inv.goos {
	case "windows":
		if err := inv.spawn("explorer", "/select,", path); err != nil {
			return fmt.Errorf("failed to show %s in folder: %w", path, err)
		}
		return nil
	case "darwin":
		if err := inv.spawn("open", "-R", path); err != nil {
			return fmt.Errorf("failed to show %s in folder: %w", path, err)
		}
		return nil
	default: // linux and others
		for _, manager := range linuxFileManagers {
			if err := inv.spawn(manager, path); err == nil {
				return nil
			}
			inv.logger.Printf("[Invoker] RevealInFolder: %s not available, trying next", manager)
		}
		return fmt.Errorf("no suitable file manager found for %s", path)
	}
}
