// internal/app/app.go
package app

import (
	"github.com/shaling-ai/data-insights/internal/config"
	"github.com/shaling-ai/data-insights/internal/core/dataset"
	"github.com/shaling-ai/data-insights/internal/logging"
)

type App struct {
	Loader *dataset.Loader
	Server *Server
}

// NewApp loads the dataset per config and wires the HTTP server over it.
func NewApp(cfg *config.Config) (*App, error) {
	logging.Init(cfg.LogLevel)

	loader := dataset.NewLoader(dataset.Config{
		DataDir:          cfg.DataDir,
		RegistrationDays: cfg.RegistrationDays,
	})

	err := loader.LoadAll(dataset.LoadOptions{
		UserFile:        cfg.UserFile,
		SessionFile:     cfg.SessionFile,
		SessionTextFile: cfg.SessionTextFile,
	})
	if err != nil {
		return nil, err
	}
	logging.Logger.Infof("dataset ready: %+v", loader.Stats())

	server := NewServer(cfg, loader)

	return &App{Loader: loader, Server: server}, nil
}
