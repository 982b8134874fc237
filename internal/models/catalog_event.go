package models

import "time"

// Catalog audit event types.
const (
	EventCatalogImport = "CATALOG_IMPORT"
	EventCatalogReload = "CATALOG_RELOAD"
)

// CatalogEvent is a single catalog audit log entry.
type CatalogEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // CATALOG_IMPORT | CATALOG_RELOAD
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
