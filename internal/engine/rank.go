package engine

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"heating_advisor/internal/models"
)

const (
	// unpricedPlaceholderEUR stands in for a missing price when scoring.
	unpricedPlaceholderEUR = 999999.0
	// priceWeightDivisor keeps price a tie-breaker next to the kW delta.
	priceWeightDivisor = 100000.0
)

// SortMode selects the result ordering.
type SortMode string

const (
	SortBest      SortMode = "best"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortPowerAsc  SortMode = "power_asc"
	SortPowerDesc SortMode = "power_desc"
)

// ErrUnknownSortMode is returned by ParseSortMode.
var ErrUnknownSortMode = errors.New("unknown sort mode")

// SortModes lists every accepted mode, default first.
var SortModes = []SortMode{SortBest, SortPriceAsc, SortPriceDesc, SortPowerAsc, SortPowerDesc}

// ParseSortMode validates s. Empty input selects SortBest.
func ParseSortMode(s string) (SortMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortBest, nil
	}
	for _, m := range SortModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortMode, s)
}

// Score is |reference - requirement| + price/100000; lower is better.
func Score(d models.Device, requiredKW float64) float64 {
	ref := CapacityOf(d).reference(requiredKW)
	price := unpricedPlaceholderEUR
	if d.PriceEUR != nil {
		price = *d.PriceEUR
	}
	return math.Abs(ref-requiredKW) + price/priceWeightDivisor
}

// ScoreAll returns a copy of list with scores filled in.
func ScoreAll(list []Recommendation, requiredKW float64) []Recommendation {
	out := make([]Recommendation, len(list))
	for i, r := range list {
		r.Score = Score(r.Device, requiredKW)
		out[i] = r
	}
	return out
}

// Sort returns a stably ordered copy of list. Unknown modes sort by score.
func Sort(list []Recommendation, mode SortMode) []Recommendation {
	out := slices.Clone(list)
	var less func(a, b Recommendation) int
	switch mode {
	case SortPriceAsc:
		less = func(a, b Recommendation) int {
			return cmp.Compare(priceOr(a.Device, math.Inf(1)), priceOr(b.Device, math.Inf(1)))
		}
	case SortPriceDesc:
		less = func(a, b Recommendation) int {
			return cmp.Compare(priceOr(b.Device, math.Inf(-1)), priceOr(a.Device, math.Inf(-1)))
		}
	case SortPowerAsc:
		less = func(a, b Recommendation) int {
			return cmp.Compare(CapacityOf(a.Device).Representative(), CapacityOf(b.Device).Representative())
		}
	case SortPowerDesc:
		less = func(a, b Recommendation) int {
			return cmp.Compare(CapacityOf(b.Device).Representative(), CapacityOf(a.Device).Representative())
		}
	default:
		less = func(a, b Recommendation) int { return cmp.Compare(a.Score, b.Score) }
	}
	slices.SortStableFunc(out, less)
	return out
}

func priceOr(d models.Device, missing float64) float64 {
	if d.PriceEUR == nil {
		return missing
	}
	return *d.PriceEUR
}
