// @title                       Heating Advisor API
// @version                     1.0
// @description                 Recommends heating devices for a building from a curated catalog.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "heating_advisor/docs"
	"heating_advisor/internal/handlers"
	"heating_advisor/internal/logger"
	"heating_advisor/internal/repository"
	"heating_advisor/internal/repository/db"
	"heating_advisor/internal/server"
	"heating_advisor/internal/service"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig(viper.GetViper(), "configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)

	conn, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	repos := repository.NewRepository(conn)
	services := service.NewService(repos, cfg.Services, log)
	apiHandler := handlers.NewHandler(services, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loadCatalog(ctx, services, cfg.CatalogPath, log)

	go services.Refresher.Run(ctx, cfg.ReloadInterval)

	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	waitForShutdown(cancel, srv, log)
}

func openDB(cfg appConfig, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening catalog database", "path", cfg.DBPath)
	return db.InitDB(cfg.DBPath)
}

// loadCatalog restores the stored catalog and seeds it from catalogPath on
// first start. The server still comes up with an empty catalog on failure.
func loadCatalog(ctx context.Context, services *service.Service, catalogPath string, log *logger.Logger) {
	if _, err := services.Catalog.Reload(ctx); err != nil {
		log.Errorw("catalog_load_failed", "err", err)
	}
	n, err := services.Catalog.ImportFile(ctx, catalogPath)
	if err != nil {
		log.Errorw("catalog_seed_failed", "path", catalogPath, "err", err)
	}
	if n > 0 {
		log.Infow("catalog_seeded", "path", catalogPath, "devices", n)
	}
	log.Infow("catalog_ready", "devices", len(services.Catalog.Devices()))
}

func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the refresher
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
	_ = log.Sync()
}
