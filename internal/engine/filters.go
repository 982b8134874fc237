package engine

import "heating_advisor/internal/models"

// Advisory notes attached by the hot-water stage.
const (
	NoteSeparateBoiler = "needs a separate boiler"
	NoteBoilerOptional = "boiler can be left unused or disconnected"
)

// Recommendation is a catalog device as it leaves the pipeline.
type Recommendation struct {
	models.Device
	Score   float64 `json:"score"`
	DHWNote string  `json:"dhw_note,omitempty"`
}

// keep returns the recommendations whose device satisfies pred, in order.
func keep(list []Recommendation, pred func(models.Device) bool) []Recommendation {
	out := make([]Recommendation, 0, len(list))
	for _, r := range list {
		if pred(r.Device) {
			out = append(out, r)
		}
	}
	return out
}

// FilterFuel drops gas-fired devices the building cannot be connected to.
func FilterFuel(list []Recommendation, in models.UserInputs) []Recommendation {
	if in.GasAccessible() {
		return keep(list, func(models.Device) bool { return true })
	}
	return keep(list, func(d models.Device) bool {
		return d.FuelKind() != models.FuelGas
	})
}

// FilterSolar drops devices explicitly marked as not solar compatible when
// the building has solar panels.
func FilterSolar(list []Recommendation, in models.UserInputs) []Recommendation {
	if !in.SolarPanels {
		return keep(list, func(models.Device) bool { return true })
	}
	return keep(list, models.Device.IsSolarCompatible)
}

// AnnotateDHW never removes devices. It attaches a note where the device's
// hot-water mode conflicts with the stated preference.
func AnnotateDHW(list []Recommendation, pref models.DHWMode) []Recommendation {
	pref = models.ParseDHWMode(string(pref))
	out := make([]Recommendation, len(list))
	for i, r := range list {
		r.DHWNote = dhwNote(pref, models.ParseDHWMode(string(r.DHW)))
		out[i] = r
	}
	return out
}

func dhwNote(pref, device models.DHWMode) string {
	switch {
	case pref == models.DHWIntegrated && device != models.DHWIntegrated:
		return NoteSeparateBoiler
	case pref == models.DHWNone && device != models.DHWNone:
		return NoteBoilerOptional
	default:
		return ""
	}
}

// FilterCapacity keeps devices whose output envelope covers requiredKW.
func FilterCapacity(list []Recommendation, requiredKW float64) []Recommendation {
	return keep(list, func(d models.Device) bool {
		return CapacityFits(d, requiredKW)
	})
}

// FilterBudget drops devices priced above budget. Unpriced devices stay;
// unknown price is not the same as unaffordable.
func FilterBudget(list []Recommendation, budget float64, hasBudget bool) []Recommendation {
	if !hasBudget {
		return keep(list, func(models.Device) bool { return true })
	}
	return keep(list, func(d models.Device) bool {
		return d.PriceEUR == nil || *d.PriceEUR <= budget
	})
}
