// Package main is the entry point for the OCR Text Extractor desktop app.
package main

import (
	"errors"
	"os"
	"time"

	"ocrdesk/application"
	"ocrdesk/application/pipeline"
	"ocrdesk/core/eventbus"
	"ocrdesk/domain/catalog"
	"ocrdesk/infrastructure/logging"
	"ocrdesk/infrastructure/ocr"
	"ocrdesk/infrastructure/screen"
	"ocrdesk/presentation"
	"ocrdesk/resources"

	"fyne.io/fyne/v2/app"
)

const appID = "io.github.ocrdesk"

func main() {
	// Initialize logging (dev: console only, prod: rotating file)
	logger, closeLog, err := logging.Setup(nil)
	if err != nil {
		// Fallback to stderr if logging setup fails
		os.Stderr.WriteString("Failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer closeLog()

	logger.Info("Starting OCR Text Extractor")

	// Load option catalog
	catalogRegistry := catalog.NewRegistry()
	if err := catalog.NewLoader(catalogRegistry).LoadFromFS(resources.CatalogFiles); err != nil {
		logger.Error("Failed to load option catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("Option catalog loaded", "groups", catalogRegistry.Count())

	// Initialize OCR engine. A missing engine is reported in the UI;
	// everything except recognition keeps working.
	engineConfig := ocr.DefaultCLIConfig()
	engineConfig.Logger = logger
	var engine ocr.Engine
	engine, err = ocr.Open(engineConfig)
	if err != nil {
		if errors.Is(err, ocr.ErrEngineNotFound) {
			logger.Warn("Tesseract not found, OCR disabled", "error", err)
		} else {
			logger.Error("Failed to initialize OCR engine", "error", err)
		}
		engine = ocr.NewNoOpEngine()
	}
	defer engine.Close()

	pipelineConfig := pipeline.DefaultConfig()
	pipelineConfig.Logger = logger
	ocrPipeline := pipeline.New(engine, pipelineConfig)

	// Initialize event bus
	eventBus := eventbus.NewWithLogger(256, logger)
	defer eventBus.Close()

	// Initialize coordinator
	coordinator := application.NewCoordinator(&application.CoordinatorConfig{
		Pipeline: ocrPipeline,
		Capturer: screen.NewDisplayCapturer(logger),
		EventBus: eventBus,
		Logger:   logger,
	})
	defer coordinator.Stop()

	// Initialize UI event bridge
	bridge := presentation.NewUIEventBridge(&presentation.BridgeConfig{
		Coordinator: coordinator,
		EventBus:    eventBus,
		Logger:      logger,
	})
	defer bridge.Close()

	// Initialize Fyne app
	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.GetAppIcon())

	// Initialize main window
	mainWindow := presentation.NewMainWindow(&presentation.MainWindowConfig{
		App:     fyneApp,
		Bridge:  bridge,
		Catalog: catalogRegistry,
		Logger:  logger,
	})
	defer mainWindow.Cleanup()

	// Announce the initial tab once the window listens for events
	coordinator.Start()

	// Show and run
	mainWindow.Show()
	fyneApp.Run()

	// Start shutdown timeout - force exit after 10 seconds if cleanup hangs
	go func() {
		time.Sleep(10 * time.Second)
		logger.Warn("Shutdown timeout, forcing exit")
		os.Exit(0)
	}()

	logger.Info("Application shutdown complete")
}
