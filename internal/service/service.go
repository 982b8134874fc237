package service

import (
	"context"
	"time"

	"heating_advisor/internal/engine"
	"heating_advisor/internal/logger"
	"heating_advisor/internal/models"
	"heating_advisor/internal/repository"
)

type Authorization interface {
	Bootstrap(username, password string) (int, error)
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Catalog owns the device catalog and the engine snapshot built over it.
type Catalog interface {
	Import(ctx context.Context, raw []byte) (int, error)
	ImportFile(ctx context.Context, path string) (int, error)
	Reload(ctx context.Context) (bool, error)
	Devices() []models.Device
	Engine() *engine.Engine
}

// Advisor answers recommendation and estimation queries.
type Advisor interface {
	Recommend(req engine.Request) engine.Result
	Estimate(area, insulation string) int
}

// EventLog exposes the catalog audit log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.CatalogEvent, error)
}

// Refresher periodically reloads the catalog snapshot from storage.
// Stop via context cancellation.
type Refresher interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Catalog
	Advisor
	EventLog
	Refresher
	Authorization
}

// Config carries the settings the services need from the outside.
type Config struct {
	Engine     engine.Config
	SigningKey string
	TokenTTL   time.Duration
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "CATALOG_IMPORT", "CATALOG_RELOAD"
}

func NewService(repos *repository.Repository, cfg Config, log *logger.Logger) *Service {
	catalog := NewCatalogService(repos.DeviceRepo, repos.EventRepo, cfg.Engine)
	return &Service{
		Catalog:       catalog,
		Advisor:       NewAdvisorService(catalog),
		EventLog:      NewEventLogService(repos.EventRepo),
		Refresher:     NewRefresherService(catalog, log),
		Authorization: NewAuthService(repos.Auth, cfg.SigningKey, cfg.TokenTTL),
	}
}
