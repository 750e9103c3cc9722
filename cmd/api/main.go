package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jithinio/brillo/internal/client"
	clientStore "github.com/jithinio/brillo/internal/client/store"
	"github.com/jithinio/brillo/internal/config"
	"github.com/jithinio/brillo/internal/database"
	brilloHttp "github.com/jithinio/brillo/internal/http"
	clientHandler "github.com/jithinio/brillo/internal/http/client"
	exportHandler "github.com/jithinio/brillo/internal/http/export"
	importHandler "github.com/jithinio/brillo/internal/http/importcsv"
	invoiceHandler "github.com/jithinio/brillo/internal/http/invoice"
	projectHandler "github.com/jithinio/brillo/internal/http/project"
	"github.com/jithinio/brillo/internal/importer"
	"github.com/jithinio/brillo/internal/invoice"
	invoiceStore "github.com/jithinio/brillo/internal/invoice/store"
	"github.com/jithinio/brillo/internal/notify"
	"github.com/jithinio/brillo/internal/project"
	projectStore "github.com/jithinio/brillo/internal/project/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		clientService  = client.NewService(clientStore.New(db))
		projectService = project.NewService(projectStore.New(db))
		invoiceService = invoice.NewService(invoiceStore.New(db))
		importEngine   = importer.NewEngine(clientService, projectService, invoiceService, cfg.Settings)
		notifier       = notify.NewLog(slog.Default())
	)

	var (
		clientH  = clientHandler.NewHandler(clientService)
		projectH = projectHandler.NewHandler(projectService)
		invoiceH = invoiceHandler.NewHandler(invoiceService)
		importH  = importHandler.NewHandler(importEngine, cfg.Settings, notifier)
		exportH  = exportHandler.NewHandler(clientService, projectService, invoiceService)
	)

	router := brilloHttp.New(cfg.Server.AllowedOrigins, clientH, projectH, invoiceH, importH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
