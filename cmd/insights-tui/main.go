package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shaling-ai/data-insights/internal/config"
	"github.com/shaling-ai/data-insights/internal/core/dataset"
	"github.com/shaling-ai/data-insights/internal/logging"
	"github.com/shaling-ai/data-insights/internal/tui"
)

func main() {
	cfg := config.LoadConfig()
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
		log.Fatalf("load failed: %v", err)
	}

	p := tea.NewProgram(tui.New(loader), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
