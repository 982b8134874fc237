package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"heating_advisor/internal/engine"
	"heating_advisor/internal/models"
	"heating_advisor/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvalidCatalog    = errors.New("invalid catalog")
	ErrEmptyCatalog      = errors.New("catalog contains no devices")
	ErrDuplicateDeviceID = errors.New("duplicate device id")
)

// CatalogService keeps the current engine snapshot in sync with storage.
// Readers never block: a new snapshot is swapped in atomically.
type CatalogService struct {
	deviceRepo repository.DeviceRepo
	eventRepo  repository.EventRepo
	cfg        engine.Config

	current atomic.Pointer[engine.Engine]
}

func NewCatalogService(deviceRepo repository.DeviceRepo, eventRepo repository.EventRepo, cfg engine.Config) *CatalogService {
	s := &CatalogService{deviceRepo: deviceRepo, eventRepo: eventRepo, cfg: cfg}
	s.current.Store(engine.New(nil, cfg))
	return s
}

// Engine returns the engine over the current snapshot.
func (s *CatalogService) Engine() *engine.Engine {
	return s.current.Load()
}

// Devices returns a copy of the current snapshot.
func (s *CatalogService) Devices() []models.Device {
	return s.Engine().Catalog()
}

// Import replaces the stored catalog with raw, which may be either a flat
// device list or a {premium, budget} object.
func (s *CatalogService) Import(ctx context.Context, raw []byte) (int, error) {
	devices, err := engine.NormalizeCatalog(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if len(devices) == 0 {
		return 0, ErrEmptyCatalog
	}
	if err := assignIDs(devices); err != nil {
		return 0, err
	}

	if err := s.deviceRepo.ReplaceAll(ctx, devices); err != nil {
		return 0, fmt.Errorf("store catalog: %w", err)
	}
	// The snapshot is what storage hands back, so the next Reload sees no change.
	snapshot, err := s.deviceRepo.List(ctx)
	if err != nil {
		snapshot = devices
	}
	s.current.Store(engine.New(snapshot, s.cfg))

	err = s.eventRepo.Append(ctx, models.CatalogEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventCatalogImport,
		Description: "Catalog imported",
		Metadata:    map[string]any{"devices": len(devices), "tiers": tierCounts(devices)},
	})
	if err != nil {
		return len(devices), fmt.Errorf("record import event: %w", err)
	}
	return len(devices), nil
}

// ImportFile imports the catalog stored at path, but only when no catalog
// is loaded yet. It reports how many devices were imported.
func (s *CatalogService) ImportFile(ctx context.Context, path string) (int, error) {
	if path == "" || len(s.Engine().Catalog()) > 0 {
		return 0, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read catalog file: %w", err)
	}
	return s.Import(ctx, raw)
}

// Reload rebuilds the snapshot from storage. It reports whether the stored
// catalog differed from the one in memory; unchanged catalogs keep the
// existing engine and its memo.
func (s *CatalogService) Reload(ctx context.Context) (bool, error) {
	devices, err := s.deviceRepo.List(ctx)
	if err != nil {
		return false, fmt.Errorf("load catalog: %w", err)
	}
	current := s.Engine().Catalog()
	if sameCatalog(current, devices) {
		return false, nil
	}
	s.current.Store(engine.New(devices, s.cfg))

	err = s.eventRepo.Append(ctx, models.CatalogEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventCatalogReload,
		Description: "Catalog reloaded from storage",
		Metadata:    map[string]any{"devices": len(devices), "previous": len(current)},
	})
	if err != nil {
		return true, fmt.Errorf("record reload event: %w", err)
	}
	return true, nil
}

// sameCatalog compares catalogs by their stored encoding, so an empty list
// and a missing one are the same.
func sameCatalog(a, b []models.Device) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	if len(a) != len(b) {
		return false
	}
	ea, errA := json.Marshal(a)
	eb, errB := json.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(ea, eb)
}

// assignIDs gives every device without an id a fresh one and rejects
// duplicates, since ids are the storage key.
func assignIDs(devices []models.Device) error {
	seen := make(map[string]struct{}, len(devices))
	for i := range devices {
		id := strings.TrimSpace(devices[i].ID)
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateDeviceID, id)
		}
		seen[id] = struct{}{}
		devices[i].ID = id
	}
	return nil
}

func tierCounts(devices []models.Device) map[string]int {
	out := map[string]int{}
	for _, d := range devices {
		tier := strings.ToLower(strings.TrimSpace(d.Tier))
		if tier == "" {
			tier = "untagged"
		}
		out[tier]++
	}
	return out
}
