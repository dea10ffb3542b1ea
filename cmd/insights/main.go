package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/shaling-ai/data-insights/internal/config"
	"github.com/shaling-ai/data-insights/internal/core/dataset"
	"github.com/shaling-ai/data-insights/internal/export"
	"github.com/shaling-ai/data-insights/internal/logging"
	"github.com/shaling-ai/data-insights/internal/report"
)

func main() {
	exportPath := flag.String("export", "", `write a JSON snapshot of the loaded data to this path ("auto" picks a timestamped name)`)
	flag.Parse()

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

	fmt.Print(report.Render(loader, report.Options{
		SampleUsers:    cfg.SampleUsers,
		SampleSessions: cfg.SampleSessions,
		SampleMessages: cfg.SampleMessages,
	}))

	if *exportPath != "" {
		path := *exportPath
		if path == "auto" {
			path = export.DefaultFilename()
		}
		opts := export.Options{
			MaxUsers:              cfg.SampleUsers,
			MaxSessionsPerUser:    cfg.SampleSessions,
			MaxMessagesPerSession: cfg.SampleMessages,
		}
		if err := export.WriteFile(path, loader, opts); err != nil {
			log.Fatalf("export failed: %v", err)
		}
		logging.Logger.Infof("snapshot written to %s", path)
	}
}
