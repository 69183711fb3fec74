package services

import (
	"context"
	"fmt"
	"log"
	goruntime "runtime"

	"smart-stock-insider/internal/platform"
)

const (
	appName        = "智股通"
	appVersion     = "1.0.0"
	appDescription = "基于AI的桌面投资研究平台"
)

// Opener starts external programs for logical desktop actions.
type Opener interface {
	OpenPath(target string) error
	RevealInFolder(path string) error
}

// ProcessLifecycle is the restart capability supplied by the app shell.
type ProcessLifecycle interface {
	Restart() error
}

// WindowControl is the window capability supplied by the app shell.
type WindowControl interface {
	Minimize() error
}

// SystemService is the command bridge bound to the frontend: one method
// per request type, each delegating to the platform invoker or the host
// shell and returning a plain value/error pair.
type SystemService struct {
	ctx       context.Context
	logger    *log.Logger
	invoker   Opener
	lifecycle ProcessLifecycle
	window    WindowControl
}

// NewSystemService creates a new SystemService.
func NewSystemService(ctx context.Context, logger *log.Logger, invoker Opener, lifecycle ProcessLifecycle, window WindowControl) *SystemService {
	return &SystemService{
		ctx:       ctx,
		logger:    logger,
		invoker:   invoker,
		lifecycle: lifecycle,
		window:    window,
	}
}

// SetContext updates the service context.
func (s *SystemService) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// AppInfo describes the application to the frontend.
type AppInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// SystemInfo describes the host system to the frontend.
type SystemInfo struct {
	OS     string `json:"os"`
	Arch   string `json:"arch"`
	Memory string `json:"memory"`
}

// GetAppInfo returns application metadata. Never fails.
func (s *SystemService) GetAppInfo() (AppInfo, error) {
	return AppInfo{
		Name:        appName,
		Version:     appVersion,
		Description: appDescription,
	}, nil
}

// OpenExternalURL opens url in the default browser. The URL is handed to
// the invoker as-is; success means the spawn was accepted.
func (s *SystemService) OpenExternalURL(url string) error {
	s.logger.Printf("[SystemService] OpenExternalURL: %s", url)
	return s.invoker.OpenPath(url)
}

// ShowInFolder reveals path in the OS file manager.
func (s *SystemService) ShowInFolder(path string) error {
	s.logger.Printf("[SystemService] ShowInFolder: %s", path)
	return s.invoker.RevealInFolder(path)
}

// GetSystemInfo returns host OS facts. Never fails; the memory field is a
// placeholder until a real probe exists.
func (s *SystemService) GetSystemInfo() (SystemInfo, error) {
	return SystemInfo{
		OS:     goruntime.GOOS,
		Arch:   goruntime.GOARCH,
		Memory: "Unknown", // TODO: implement memory detection
	}, nil
}

// CheckForUpdates asks whether a newer version is available. Reserved for
// a future remote check; currently always reports no update. Bound methods
// are awaited by the frontend, so a later network round trip will not
// block the caller.
func (s *SystemService) CheckForUpdates() (bool, error) {
	s.logger.Printf("[SystemService] CheckForUpdates: checking for application updates")
	return false, nil
}

// RestartApp restarts the host application. On success the call does not
// return control to the frontend.
func (s *SystemService) RestartApp() error {
	s.logger.Printf("[SystemService] RestartApp: restarting application")
	return s.lifecycle.Restart()
}

// MinimizeToTray minimizes the main window.
func (s *SystemService) MinimizeToTray() error {
	s.logger.Printf("[SystemService] MinimizeToTray: minimizing window")
	if err := s.window.Minimize(); err != nil {
		return fmt.Errorf("failed to minimize window: %w", err)
	}
	return nil
}

// ShowNotification shows a system notification. Stub: logged but not yet
// displayed.
func (s *SystemService) ShowNotification(title string, body string) error {
	s.logger.Printf("[SystemService] ShowNotification: %s - %s", title, body)
	// TODO: implement notification delivery
	return nil
}

var _ Opener = (*platform.Invoker)(nil)
