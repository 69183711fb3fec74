package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// shell implements the lifecycle capabilities the system service depends
// on but does not own: restarting the process and minimizing the main
// window. Both go through the Wails runtime context.
type shell struct {
	ctx    context.Context
	logger *log.Logger
}

// Restart relaunches the current executable detached and quits the
// running instance. It does not return to the caller on success.
func (s *shell) Restart() error {
	s.logger.Printf("[Shell] Restart: relaunching application")

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	cmd := exec.Command(exe, os.Args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to relaunch application: %w", err)
	}

	runtime.Quit(s.ctx)
	return nil
}

// Minimize minimizes the main window.
func (s *shell) Minimize() error {
	if s.ctx == nil {
		return fmt.Errorf("window not available yet")
	}
	runtime.WindowMinimise(s.ctx)
	return nil
}
