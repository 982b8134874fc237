package engine

import (
	"math"

	"heating_advisor/internal/models"
)

// Capacity envelope tolerances.
const (
	// ratedModulationFloor is the assumed lowest modulation of a device that
	// only states a single rated output.
	ratedModulationFloor = 0.2

	gasMinFloorKW     = 3.0
	gasMinShareOfMax  = 0.2
	gasOversizeFactor = 1.2

	fixedLowFactor  = 0.7
	fixedHighFactor = 1.7

	rangeLowFactor  = 0.6
	rangeHighFactor = 1.4
)

// Capacity is a device's power output exactly as the catalog states it:
// either a single rated value or a min/max range, each bound optional.
type Capacity struct {
	Rated *float64
	Min   *float64
	Max   *float64
}

// CapacityOf extracts the capacity of d. A rated value wins over a range.
func CapacityOf(d models.Device) Capacity {
	if d.PowerKW != nil {
		return Capacity{Rated: d.PowerKW}
	}
	return Capacity{Min: d.PowerKWMin, Max: d.PowerKWMax}
}

// envelope returns the bounds used for matching. A rated device becomes
// [rated*ratedModulationFloor, rated].
func (c Capacity) envelope() (low, high *float64) {
	if c.Rated != nil {
		l := *c.Rated * ratedModulationFloor
		h := *c.Rated
		return &l, &h
	}
	return c.Min, c.Max
}

// Representative is the single figure used for power ordering: rated, else
// min, else max, else 0.
func (c Capacity) Representative() float64 {
	switch {
	case c.Rated != nil:
		return *c.Rated
	case c.Min != nil:
		return *c.Min
	case c.Max != nil:
		return *c.Max
	default:
		return 0
	}
}

// reference is the figure compared against the requirement when scoring:
// rated, else min, else the requirement itself.
func (c Capacity) reference(requiredKW float64) float64 {
	ref := requiredKW
	switch {
	case c.Rated != nil:
		ref = *c.Rated
	case c.Min != nil:
		ref = *c.Min
	}
	if ref == 0 {
		return requiredKW
	}
	return ref
}

// CapacityFits reports whether d plausibly covers requiredKW. A zero
// requirement admits everything.
func CapacityFits(d models.Device, requiredKW float64) bool {
	if requiredKW <= 0 {
		return true
	}
	low, high := CapacityOf(d).envelope()

	if d.FuelKind() == models.FuelGas {
		return gasAssumedMin(low, high) <= requiredKW*gasOversizeFactor
	}

	l := valueOr(low, valueOr(high, 0))
	h := valueOr(high, valueOr(low, 0))
	if l == 0 && h == 0 {
		return true
	}
	if l == h {
		return requiredKW >= l*fixedLowFactor && requiredKW <= l*fixedHighFactor
	}
	return requiredKW >= l*rangeLowFactor && requiredKW <= h*rangeHighFactor
}

// gasAssumedMin is the lowest output a gas boiler is assumed to run at. Gas
// boilers only need their floor below the requirement; oversizing is fine.
func gasAssumedMin(low, high *float64) float64 {
	m := valueOr(low, 0)
	if m == 0 {
		if h := valueOr(high, 0); h != 0 {
			m = h * gasMinShareOfMax
		} else {
			m = gasMinFloorKW
		}
	}
	return math.Max(gasMinFloorKW, roundHalfUp(m))
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
