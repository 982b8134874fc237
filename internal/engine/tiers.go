package engine

import (
	"strings"

	"heating_advisor/internal/models"
)

// DefaultPremiumMinBudget is the budget from which premium devices are
// presented first.
const DefaultPremiumMinBudget = 4000.0

// Section is one presented block of results. Tier is empty for the
// undivided list.
type Section struct {
	Tier    string           `json:"tier,omitempty"`
	Devices []Recommendation `json:"devices"`
}

// Tiers is the premium/budget partition of a result.
type Tiers struct {
	Active       bool             `json:"active"`
	PremiumFirst bool             `json:"premium_first"`
	Premium      []Recommendation `json:"premium"`
	Budget       []Recommendation `json:"budget"`
}

// SplitTiers partitions list by tier tag. The split is active only when the
// list really mixes tiers; a list that is entirely premium, entirely budget
// or entirely untagged stays undivided.
func SplitTiers(list []Recommendation, budget float64, hasBudget bool, premiumMinBudget float64) Tiers {
	t := Tiers{
		Premium: make([]Recommendation, 0),
		Budget:  make([]Recommendation, 0),
	}
	for _, r := range list {
		switch strings.ToLower(strings.TrimSpace(r.Tier)) {
		case models.TierPremium:
			t.Premium = append(t.Premium, r)
		case models.TierBudget:
			t.Budget = append(t.Budget, r)
		}
	}
	tagged := len(t.Premium) + len(t.Budget)
	t.Active = tagged > 0 && len(t.Premium) != len(list) && len(t.Budget) != len(list)
	t.PremiumFirst = !hasBudget || budget >= premiumMinBudget
	return t
}

// Sections returns the blocks in presentation order. When tiering is
// inactive the whole list is one untitled section. Empty tiers are skipped.
func (t Tiers) Sections(all []Recommendation) []Section {
	if !t.Active {
		return []Section{{Devices: all}}
	}
	premium := Section{Tier: models.TierPremium, Devices: t.Premium}
	budget := Section{Tier: models.TierBudget, Devices: t.Budget}
	ordered := []Section{premium, budget}
	if !t.PremiumFirst {
		ordered = []Section{budget, premium}
	}
	out := make([]Section, 0, len(ordered))
	for _, s := range ordered {
		if len(s.Devices) > 0 {
			out = append(out, s)
		}
	}
	return out
}
