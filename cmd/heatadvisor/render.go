package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"heating_advisor/internal/engine"
	"heating_advisor/internal/models"
	"heating_advisor/internal/money"
)

var sectionTitles = map[string]string{
	models.TierPremium: "Premium",
	models.TierBudget:  "Budget",
}

// renderResult prints the sections in presentation order.
func renderResult(w io.Writer, res engine.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Required capacity: %d kW\n", res.RequiredKW)
	if res.Budget != nil {
		fmt.Fprintf(&b, "Budget: %s\n", money.FormatEUR(res.Budget))
	}
	fmt.Fprintf(&b, "Sort: %s\n", res.Sort)

	switch {
	case res.CatalogEmpty():
		b.WriteString("\nThe catalog is empty.\n")
	case res.NoMatches():
		b.WriteString("\nNo devices match. Try --show-all.\n")
	default:
		n := 0
		for _, s := range res.Sections {
			b.WriteString("\n")
			if title, ok := sectionTitles[s.Tier]; ok {
				b.WriteString(title + "\n")
			}
			for _, r := range s.Devices {
				n++
				writeDevice(&b, n, r)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeDevice(b *strings.Builder, n int, r engine.Recommendation) {
	name := strings.TrimSpace(r.Brand + " " + r.Model)
	if r.Type != "" {
		name += " (" + r.Type + ")"
	}
	fmt.Fprintf(b, "%3d. %s | %s | %s\n", n, name, engine.PowerLabel(r.Device), money.FormatEUR(r.PriceEUR))
	if extras := engine.Extras(r.Device); len(extras) > 0 {
		fmt.Fprintf(b, "     %s\n", strings.Join(extras, ", "))
	}
	if r.DHWNote != "" {
		fmt.Fprintf(b, "     hot water: %s\n", r.DHWNote)
	}
	for _, v := range r.Vendors {
		fmt.Fprintf(b, "     vendor: %s\n", vendorLine(v))
	}
}

func vendorLine(v models.Vendor) string {
	parts := []string{v.Name}
	if v.Email != "" {
		parts = append(parts, v.Email)
	}
	if v.URL != "" {
		parts = append(parts, v.URL)
	}
	return strings.Join(parts, ", ")
}

// renderCatalogSummary prints device counts by fuel and tier.
func renderCatalogSummary(w io.Writer, devices []models.Device) error {
	byFuel := map[string]int{}
	byTier := map[string]int{}
	unpriced := 0
	for _, d := range devices {
		byFuel[string(d.FuelKind())]++
		tier := strings.ToLower(strings.TrimSpace(d.Tier))
		if tier == "" {
			tier = "untagged"
		}
		byTier[tier]++
		if d.PriceEUR == nil {
			unpriced++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Devices: %d\n", len(devices))
	writeCounts(&b, "Fuel", byFuel)
	writeCounts(&b, "Tier", byTier)
	fmt.Fprintf(&b, "Unpriced: %d\n", unpriced)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeCounts(b *strings.Builder, label string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(parts, " "))
}
