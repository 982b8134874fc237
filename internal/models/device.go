package models

// Fuel groups catalog fuel strings into the kinds the engine cares about.
type Fuel string

const (
	FuelElectric Fuel = "electric"
	FuelGas      Fuel = "gas"
	FuelSolid    Fuel = "solid" // pellets, wood, coal
	FuelOther    Fuel = "other"
)

// DHWMode is how a device provides domestic hot water.
type DHWMode string

const (
	DHWUnspecified DHWMode = ""
	DHWIntegrated  DHWMode = "integruotas"
	DHWSeparate    DHWMode = "atskiras"
	DHWNone        DHWMode = "none"
)

// Catalog tier tags.
const (
	TierPremium = "premium"
	TierBudget  = "budget"
)

// Vendor is a shop offering the device.
type Vendor struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Device is a read-only catalog record. Optional attributes are pointers so
// that "absent" stays distinguishable from zero.
type Device struct {
	ID              string   `json:"id"`
	Brand           string   `json:"brand"`
	Model           string   `json:"model"`
	Type            string   `json:"type"`
	Fuel            string   `json:"fuel"`
	PowerKW         *float64 `json:"power_kw,omitempty"`
	PowerKWMin      *float64 `json:"power_kw_min,omitempty"`
	PowerKWMax      *float64 `json:"power_kw_max,omitempty"`
	PriceEUR        *float64 `json:"price_eur,omitempty"`
	SolarCompatible *bool    `json:"solar_compatible,omitempty"`
	DHW             DHWMode  `json:"dhw,omitempty"`
	SCOP            *float64 `json:"scop,omitempty"`
	COP             *float64 `json:"cop,omitempty"`
	MinTempC        *float64 `json:"min_temp,omitempty"`
	Refrigerant     string   `json:"refrigerant,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Vendors         []Vendor `json:"vendors,omitempty"`
	Tier            string   `json:"tier,omitempty"`
}

// FuelKind maps the free-form catalog fuel string onto a Fuel.
func (d Device) FuelKind() Fuel {
	switch normalizeToken(d.Fuel) {
	case "gas", "dujos", "natural_gas":
		return FuelGas
	case "electric", "electricity", "elektra", "heat_pump", "heatpump":
		return FuelElectric
	case "pellet", "pellets", "granules", "granulės", "solid", "wood", "malkos", "coal":
		return FuelSolid
	default:
		return FuelOther
	}
}

// IsSolarCompatible defaults to true when the catalog says nothing.
func (d Device) IsSolarCompatible() bool {
	return d.SolarCompatible == nil || *d.SolarCompatible
}
