package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grclabs/asset-api/internal/api"
	"github.com/grclabs/asset-api/internal/asset"
	"github.com/grclabs/asset-api/internal/config"
	"github.com/grclabs/asset-api/internal/db"
	"github.com/grclabs/asset-api/internal/domain"
	"github.com/grclabs/asset-api/internal/importer"
	"github.com/grclabs/asset-api/internal/logging"
	"github.com/grclabs/asset-api/internal/report"
	"github.com/grclabs/asset-api/internal/repository"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(".")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := db.RunMigrations(cfg.Database); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	importLogRepo := repository.NewImportLogRepository(conn.Pool)
	physicalRepo := repository.NewPhysicalAssetRepository(conn.Pool)
	informationRepo := repository.NewInformationAssetRepository(conn.Pool)
	softwareRepo := repository.NewSoftwareAssetRepository(conn.Pool)
	applicationRepo := repository.NewBusinessApplicationRepository(conn.Pool)
	supplierRepo := repository.NewSupplierRepository(conn.Pool)

	inventory := &asset.Inventory{
		Physical:     asset.NewPhysicalService(physicalRepo),
		Information:  asset.NewInformationService(informationRepo),
		Software:     asset.NewSoftwareService(softwareRepo),
		Applications: asset.NewApplicationService(applicationRepo),
		Suppliers:    asset.NewSupplierService(supplierRepo),
	}

	handlers := importer.Handlers{
		domain.AssetTypePhysical:    importer.NewPhysicalAssetHandler(inventory.Physical),
		domain.AssetTypeInformation: importer.NewInformationAssetHandler(inventory.Information),
		domain.AssetTypeSoftware:    importer.NewSoftwareAssetHandler(inventory.Software),
		domain.AssetTypeApplication: importer.NewBusinessApplicationHandler(inventory.Applications),
		domain.AssetTypeSupplier:    importer.NewSupplierHandler(inventory.Suppliers),
	}

	importService := importer.NewService(handlers, importLogRepo)
	reportService := report.NewService(inventory)

	server := api.NewServer(importService, inventory, reportService, cfg.CORSOrigin)

	httpServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      server.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}
