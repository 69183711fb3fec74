package app

import (
	"context"
	"embed"
	"log"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"smart-stock-insider/app/services"
	"smart-stock-insider/internal/platform"
)

//go:embed all:frontend_dist
var assets embed.FS

// App struct holds the application state and services
type App struct {
	ctx           context.Context
	shell         *shell
	systemService *services.SystemService
	configService *services.ConfigService
	logService    *services.LogService
	logger        *log.Logger
}

// NewApp creates a new App instance
func NewApp() *App {
	logger := log.New(os.Stderr, "[StockInsider] ", log.LstdFlags|log.Lshortfile)

	return &App{
		logger: logger,
	}
}

// OnStartup is called when the app starts
func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx

	// The bound service instances were created in Run() before the window
	// context existed; hand it to them now.
	a.shell.ctx = ctx
	a.systemService.SetContext(ctx)
	a.logService.SetContext(ctx)

	a.logger.Printf("[App] OnStartup: Services initialized")
}

// OnShutdown is called when the app is shutting down
func (a *App) OnShutdown(ctx context.Context) {
	a.logger.Printf("[App] OnShutdown: Shutting down...")
}

// Run starts the Wails application
func Run() error {
	appInstance := NewApp()

	// Wails needs the service instances up front to generate the
	// bindings; OnStartup only supplies the runtime context.
	ctx := context.Background()
	logger := appInstance.logger

	sh := &shell{logger: logger}
	invoker := platform.NewInvoker(logger)
	systemService := services.NewSystemService(ctx, logger, invoker, sh, sh)
	logService := services.NewLogService(ctx, logger)

	configService, err := services.NewConfigService(logger)
	if err != nil {
		logger.Printf("[App] Run: Failed to create config service: %v", err)
		// Continue without persisted preferences
	}

	appInstance.shell = sh
	appInstance.systemService = systemService
	appInstance.configService = configService
	appInstance.logService = logService

	bindings := []interface{}{
		systemService,
		logService,
	}
	if configService != nil {
		bindings = append(bindings, configService)
	}

	return wails.Run(&options.App{
		Title:  "智股通",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets:  assets,
			Handler: nil, // Use default handler for embedded assets
		},
		BackgroundColour: &options.RGBA{R: 18, G: 24, B: 38, A: 1},
		OnStartup:        appInstance.OnStartup,
		OnShutdown:       appInstance.OnShutdown,
		Bind:             bindings,
	})
}
