package engine

import "heating_advisor/internal/models"

func kw(v float64) *float64 { return &v }

func eur(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func wrap(devices ...models.Device) []Recommendation {
	out := make([]Recommendation, len(devices))
	for i, d := range devices {
		out[i] = Recommendation{Device: d}
	}
	return out
}

func ids(list []Recommendation) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.ID
	}
	return out
}

// sampleCatalog mixes fuels, capacity shapes, prices and tiers.
func sampleCatalog() []models.Device {
	return []models.Device{
		{ID: "hp-10", Brand: "Daikin", Model: "Altherma", Type: "heat pump", Fuel: "electric", PowerKW: kw(10), PriceEUR: eur(7200), DHW: models.DHWIntegrated, Tier: models.TierPremium},
		{ID: "hp-8", Brand: "Nibe", Model: "F2120", Type: "heat pump", Fuel: "electric", PowerKWMin: kw(4), PowerKWMax: kw(16), PriceEUR: eur(9100), DHW: models.DHWSeparate, Tier: models.TierPremium},
		{ID: "gas-24", Brand: "Viessmann", Model: "Vitodens 100", Type: "condensing boiler", Fuel: "gas", PowerKWMin: kw(3.2), PowerKWMax: kw(24), PriceEUR: eur(2100), DHW: models.DHWIntegrated, Tier: models.TierBudget},
		{ID: "pellet-15", Brand: "Kostrzewa", Model: "Pellets Fuzzy", Type: "pellet boiler", Fuel: "pellet", PowerKWMin: kw(15), PowerKWMax: kw(15), PriceEUR: eur(4300), SolarCompatible: boolPtr(false), DHW: models.DHWNone, Tier: models.TierBudget},
		{ID: "el-12", Brand: "Kospel", Model: "EKCO", Type: "electric boiler", Fuel: "electric", PowerKW: kw(12), Tier: models.TierBudget},
		{ID: "mystery", Brand: "NoName", Model: "X", Type: "boiler", Fuel: "other"},
	}
}
