package engine

import (
	"math"
	"strconv"
	"strings"

	"heating_advisor/internal/models"
)

// DefaultMinRequiredKW is the floor of every capacity estimate.
const DefaultMinRequiredKW = 5

// MaxRequiredKW caps estimates for absurd areas.
const MaxRequiredKW = math.MaxInt32

// kW per m² by insulation class.
const (
	coefHighInsulation   = 0.045
	coefMediumInsulation = 0.06
	coefLowInsulation    = 0.085
)

var insulationCoefficients = map[string]float64{
	models.InsulationHigh:   coefHighInsulation,
	models.InsulationMedium: coefMediumInsulation,
	models.InsulationLow:    coefLowInsulation,
	"high":                  coefHighInsulation,
	"medium":                coefMediumInsulation,
	"low":                   coefLowInsulation,
}

// InsulationCoefficient returns the kW/m² factor for a class label; unknown
// or empty labels get the medium factor.
func InsulationCoefficient(insulation string) float64 {
	if c, ok := insulationCoefficients[strings.TrimSpace(insulation)]; ok {
		return c
	}
	if c, ok := insulationCoefficients[strings.ToLower(strings.TrimSpace(insulation))]; ok {
		return c
	}
	return coefMediumInsulation
}

// ParseArea reads a floor area typed by the user. Anything that is not a
// finite non-negative number is 0. A decimal comma is accepted.
func ParseArea(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// EstimateRequiredKW is a linear rule of thumb, not a heat-loss calculation:
// area times the insulation coefficient, rounded, never below
// DefaultMinRequiredKW.
func EstimateRequiredKW(area float64, insulation string) int {
	return estimateRequiredKW(area, insulation, DefaultMinRequiredKW)
}

func estimateRequiredKW(area float64, insulation string, floor int) int {
	if area < 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		area = 0
	}
	raw := roundHalfUp(area * InsulationCoefficient(insulation))
	if raw > MaxRequiredKW {
		return MaxRequiredKW
	}
	kw := int(raw)
	if kw < floor {
		return floor
	}
	return kw
}
