package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"heating_advisor/internal/models"
)

// ErrCatalogShape is returned for JSON that is neither a device list nor a
// tiered object.
var ErrCatalogShape = errors.New("catalog must be a JSON array or an object with premium/budget lists")

type tieredCatalog struct {
	Premium json.RawMessage `json:"premium"`
	Budget  json.RawMessage `json:"budget"`
}

// NormalizeCatalog decodes catalog JSON in either accepted shape into one
// flat list. In the tiered shape devices without their own tier get the tier
// of the list they came from, premium first.
func NormalizeCatalog(raw []byte) ([]models.Device, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrCatalogShape
	}
	switch trimmed[0] {
	case '[':
		var flat []models.Device
		if err := json.Unmarshal(trimmed, &flat); err != nil {
			return nil, fmt.Errorf("decode device list: %w", err)
		}
		return flat, nil
	case '{':
		var tc tieredCatalog
		if err := json.Unmarshal(trimmed, &tc); err != nil {
			return nil, fmt.Errorf("decode tiered catalog: %w", err)
		}
		premium, err := decodeTierList(tc.Premium)
		if err != nil {
			return nil, fmt.Errorf("decode premium list: %w", err)
		}
		budget, err := decodeTierList(tc.Budget)
		if err != nil {
			return nil, fmt.Errorf("decode budget list: %w", err)
		}
		return MergeTiers(premium, budget), nil
	default:
		return nil, ErrCatalogShape
	}
}

// decodeTierList treats anything that is not an array as an empty tier.
func decodeTierList(raw json.RawMessage) ([]models.Device, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, nil
	}
	var list []models.Device
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// MergeTiers flattens premium and budget lists, defaulting missing tier tags.
func MergeTiers(premium, budget []models.Device) []models.Device {
	out := make([]models.Device, 0, len(premium)+len(budget))
	for _, d := range premium {
		if d.Tier == "" {
			d.Tier = models.TierPremium
		}
		out = append(out, d)
	}
	for _, d := range budget {
		if d.Tier == "" {
			d.Tier = models.TierBudget
		}
		out = append(out, d)
	}
	return out
}
