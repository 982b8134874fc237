package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"heating_advisor/internal/models"
)

type DeviceSQLite struct {
	db *sql.DB
}

func NewDeviceSQLite(db *sql.DB) *DeviceSQLite {
	return &DeviceSQLite{db: db}
}

var _ DeviceRepo = (*DeviceSQLite)(nil)

// The full record lives in payload; the other columns exist for ad-hoc
// queries against the catalog file.
const (
	deleteDevicesSQL = `DELETE FROM devices`
	insertDeviceSQL  = `INSERT INTO devices (id, position, brand, model, fuel, tier, price_eur, payload) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	selectDevicesSQL = `SELECT id, payload FROM devices ORDER BY position ASC`
)

// ReplaceAll swaps the whole catalog in one transaction.
func (r *DeviceSQLite) ReplaceAll(ctx context.Context, devices []models.Device) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteDevicesSQL); err != nil {
		return fmt.Errorf("clear devices: %w", err)
	}
	for i, d := range devices {
		payload, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("marshal device %q: %w", d.ID, err)
		}
		var price any
		if d.PriceEUR != nil {
			price = *d.PriceEUR
		}
		if _, err := tx.ExecContext(ctx, insertDeviceSQL,
			d.ID,
			i,
			d.Brand,
			d.Model,
			strings.ToLower(strings.TrimSpace(d.Fuel)),
			strings.ToLower(strings.TrimSpace(d.Tier)),
			price,
			string(payload),
		); err != nil {
			return fmt.Errorf("insert device %q: %w", d.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog transaction: %w", err)
	}
	return nil
}

// List returns the stored catalog in import order.
func (r *DeviceSQLite) List(ctx context.Context) ([]models.Device, error) {
	rows, err := r.db.QueryContext(ctx, selectDevicesSQL)
	if err != nil {
		return nil, fmt.Errorf("select devices: %w", err)
	}
	defer rows.Close()

	out := make([]models.Device, 0, 64)
	for rows.Next() {
		var (
			id      string
			payload string
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		var d models.Device
		if err := json.Unmarshal([]byte(payload), &d); err != nil {
			return nil, fmt.Errorf("decode device %q: %w", id, err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate devices: %w", err)
	}
	return out, nil
}
