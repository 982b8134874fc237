package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// Insulation class labels as they appear in the request form.
const (
	InsulationHigh   = "Labai gera (A+/A)"
	InsulationMedium = "Vidutinė (B/C)"
	InsulationLow    = "Silpna (D ir senesni)"
)

// DHW preference labels as they appear in the request form. ParseDHWMode also
// accepts the catalog vocabulary.
const (
	DHWLabelIntegrated = "Integruotas boileris"
	DHWLabelSeparate   = "Atskiras boileris"
	DHWLabelNone       = "Nereikia"
)

// UserInputs describes the building. The caller owns it and mutates it one
// field at a time; Area and Budget stay raw text because forms send whatever
// the user typed, as a JSON string or a number.
type UserInputs struct {
	BuildingType  string   `json:"building_type,omitempty"`
	Area          FormText `json:"area,omitempty"`
	Insulation    string   `json:"insulation,omitempty"`
	GasMains      bool     `json:"gas_mains"`
	GasLineNearby bool     `json:"gas_line_nearby"`
	OwnPowerPlant bool     `json:"own_power_plant"`
	SolarPanels   bool     `json:"solar_panels"`
	DHW           DHWMode  `json:"dhw,omitempty"`
	Budget        FormText `json:"budget,omitempty"`
	Email         string   `json:"email,omitempty"`
}

// ErrNotText is returned when a form field is neither a string nor a number.
var ErrNotText = errors.New("expected a string or a number")

// FormText is a form field kept as typed. It decodes from a JSON string or
// number; null clears it.
type FormText string

func (t *FormText) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*t = FormText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return ErrNotText
	}
	*t = FormText(n.String())
	return nil
}

// GasAccessible reports whether a gas-fired device can be connected. The
// nearby line only counts when there are no mains.
func (in UserInputs) GasAccessible() bool {
	return in.GasMains || in.GasLineNearby
}

// ParseDHWMode accepts form labels, catalog values and a few English aliases.
// Anything unrecognised is DHWUnspecified.
func ParseDHWMode(s string) DHWMode {
	switch normalizeToken(s) {
	case "integruotas", "integruotas_boileris", "integrated":
		return DHWIntegrated
	case "atskiras", "atskiras_boileris", "separate":
		return DHWSeparate
	case "none", "nereikia", "no_boiler":
		return DHWNone
	default:
		return DHWUnspecified
	}
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "_")
}
