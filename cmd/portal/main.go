package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sparksonic/portal/internal/config"
	"github.com/sparksonic/portal/internal/observability"
	"github.com/sparksonic/portal/internal/portal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(config.LoggerConfig{Level: "error"})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	store, err := portal.NewFileStore(cfg.Portal.TokenPath)
	if err != nil {
		log.Fatalf("failed to open session store: %v", err)
	}

	client := portal.NewClient(cfg.Portal.APIBaseURL, cfg.Portal.RequestTimeout(), store.Token)
	controller := portal.NewController(client, store, logger)

	program := tea.NewProgram(newModel(controller), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("portal exited: %v", err)
	}
}
