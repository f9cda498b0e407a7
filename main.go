package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/project-manager/internal/config"
	"github.com/ytget/project-manager/internal/logging"
	"github.com/ytget/project-manager/internal/projects"
	"github.com/ytget/project-manager/internal/store"
	"github.com/ytget/project-manager/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.project-manager"
)

func main() {
	cfg, err := config.Load(os.Getenv("PROJECTS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Project manager starting", zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp, *cfg)

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	st := openStore(settings, logger)
	if kv, ok := st.(*store.KV); ok {
		defer kv.Close()
	}

	ctrl := projects.NewController(st, logger.Named("projects"))
	root := ui.NewRootUI(myWindow, ctrl, settings, logger.Named("ui"))

	// Initial load; a failure is shown in the window and the app keeps running
	root.Refresh()

	myWindow.ShowAndRun()
	logger.Info("Project manager stopped")
}

// openStore connects to the project table. When that fails the application
// still starts, and every store operation reports the connection error.
func openStore(settings *config.Settings, logger *zap.Logger) store.Store {
	opts := settings.StoreOptions()

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	kv, err := store.Connect(ctx, opts, logger.Named("store"))
	if err != nil {
		logger.Error("Project table unavailable", zap.String("url", opts.URL), zap.Error(err))
		return store.Unavailable{Cause: err}
	}
	return kv
}
