package main

import (
	"log"

	"surveylens/adapters/stats/engine"
	"surveylens/adapters/tabular"
	"surveylens/app"
	"surveylens/domain/dataset"
	"surveylens/internal/config"
	"surveylens/internal/i18n"
	"surveylens/internal/session"
	"surveylens/internal/summary"
	"surveylens/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	reader := tabular.NewReader(tabular.DefaultCoercionConfig())
	store := session.NewStore()
	summarizer := summary.NewSummarizer()
	bundle := i18n.New()

	correlationEngine := engine.NewWithAlpha(appConfig.Analysis.Alpha)
	analysisService := app.NewAnalysisService(correlationEngine, bundle,
		dataset.XVariables, dataset.YVariables)

	server, err := ui.NewServer(appConfig, reader, store, summarizer, summarizer, analysisService, bundle)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("Starting Survey Analyzer on port %s (alpha=%.2f, default language=%s)",
		appConfig.Server.Port, appConfig.Analysis.Alpha, appConfig.Analysis.DefaultLang)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
