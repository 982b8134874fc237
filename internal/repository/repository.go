package repository

import (
	"context"
	"database/sql"
	"time"

	"heating_advisor/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
	Count() (int, error)
}

// DeviceRepo stores the catalog. The stored order is the catalog order.
type DeviceRepo interface {
	ReplaceAll(ctx context.Context, devices []models.Device) error
	List(ctx context.Context) ([]models.Device, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.CatalogEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.CatalogEvent, error)
}

type Repository struct {
	DeviceRepo DeviceRepo
	EventRepo  EventRepo
	Auth       Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DeviceRepo: NewDeviceSQLite(db),
		EventRepo:  NewEventSQLite(db),
		Auth:       NewAdminSQLite(db),
	}
}
