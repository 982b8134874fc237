package engine

import (
	"strconv"

	"heating_advisor/internal/models"
)

// PowerLabel renders a device's capacity for display: "10 kW" or "5–20 kW",
// with "?" for a missing bound.
func PowerLabel(d models.Device) string {
	c := CapacityOf(d)
	if c.Rated != nil {
		return formatKW(c.Rated) + " kW"
	}
	return formatKW(c.Min) + "–" + formatKW(c.Max) + " kW"
}

// Extras lists the efficiency and refrigerant facts worth showing.
func Extras(d models.Device) []string {
	var out []string
	if d.SCOP != nil {
		out = append(out, "SCOP "+formatNum(*d.SCOP))
	}
	if d.COP != nil {
		out = append(out, "COP "+formatNum(*d.COP))
	}
	if d.MinTempC != nil {
		out = append(out, "down to "+formatNum(*d.MinTempC)+" °C")
	}
	if d.Refrigerant != "" {
		out = append(out, d.Refrigerant)
	}
	return out
}

func formatKW(p *float64) string {
	if p == nil {
		return "?"
	}
	return formatNum(*p)
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
