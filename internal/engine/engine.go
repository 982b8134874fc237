// Package engine turns a heating-device catalog and a description of a
// building into a ranked, tiered list of recommendations.
//
// The pipeline is pure and synchronous: estimate the required capacity, run
// the compatibility and capacity filters, score, sort and split into tiers.
// Missing data is treated permissively; nothing in here returns an error
// except catalog decoding.
package engine

import (
	"slices"
	"sync"

	"heating_advisor/internal/models"
	"heating_advisor/internal/money"
)

// Config holds the business thresholds that are configuration, not logic.
type Config struct {
	MinRequiredKW    int
	PremiumMinBudget float64
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		MinRequiredKW:    DefaultMinRequiredKW,
		PremiumMinBudget: DefaultPremiumMinBudget,
	}
}

// Request is everything a recommendation depends on besides the catalog.
type Request struct {
	Inputs models.UserInputs
	Sort   SortMode
	// ShowAll disables the capacity and budget filters.
	ShowAll bool
}

// Result is a complete recommendation set. Treat it as read-only.
type Result struct {
	RequiredKW  int              `json:"required_kw"`
	Budget      *float64         `json:"budget,omitempty"`
	Sort        SortMode         `json:"sort"`
	ShowAll     bool             `json:"show_all"`
	CatalogSize int              `json:"catalog_size"`
	Devices     []Recommendation `json:"devices"`
	Tiers       Tiers            `json:"tiers"`
	Sections    []Section        `json:"sections"`
}

// CatalogEmpty reports that there was nothing to recommend from.
func (r Result) CatalogEmpty() bool { return r.CatalogSize == 0 }

// NoMatches reports that the catalog had devices but none survived.
func (r Result) NoMatches() bool { return r.CatalogSize > 0 && len(r.Devices) == 0 }

// Engine evaluates requests against one immutable catalog snapshot. It
// remembers only the last request and its result.
type Engine struct {
	catalog []models.Device
	cfg     Config

	mu      sync.Mutex
	memoKey Request
	memo    *Result
}

// New builds an engine over a private copy of catalog. Zero config fields
// fall back to the defaults.
func New(catalog []models.Device, cfg Config) *Engine {
	if cfg.MinRequiredKW <= 0 {
		cfg.MinRequiredKW = DefaultMinRequiredKW
	}
	if cfg.PremiumMinBudget <= 0 {
		cfg.PremiumMinBudget = DefaultPremiumMinBudget
	}
	return &Engine{catalog: slices.Clone(catalog), cfg: cfg}
}

// Catalog returns a copy of the devices the engine was built with.
func (e *Engine) Catalog() []models.Device {
	return slices.Clone(e.catalog)
}

// Config returns the thresholds in effect.
func (e *Engine) Config() Config {
	return e.cfg
}

// Estimate returns the required capacity for the given raw area and
// insulation class.
func (e *Engine) Estimate(area, insulation string) int {
	return estimateRequiredKW(ParseArea(area), insulation, e.cfg.MinRequiredKW)
}

// Recommend runs the full pipeline. Identical requests yield identical
// results; the latest one is served from memory.
func (e *Engine) Recommend(req Request) Result {
	if req.Sort == "" {
		req.Sort = SortBest
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.memo != nil && e.memoKey == req {
		return e.memo.clone()
	}
	res := e.compute(req)
	e.memoKey = req
	e.memo = &res
	return res.clone()
}

func (e *Engine) compute(req Request) Result {
	in := req.Inputs
	required := e.Estimate(string(in.Area), in.Insulation)
	budget, hasBudget := money.ParseBudget(string(in.Budget))

	list := make([]Recommendation, len(e.catalog))
	for i, d := range e.catalog {
		list[i] = Recommendation{Device: d}
	}

	list = FilterFuel(list, in)
	list = FilterSolar(list, in)
	if models.ParseDHWMode(string(in.DHW)) != models.DHWUnspecified {
		list = AnnotateDHW(list, in.DHW)
	}
	if !req.ShowAll {
		list = FilterCapacity(list, float64(required))
		list = FilterBudget(list, budget, hasBudget)
	}
	list = ScoreAll(list, float64(required))
	list = Sort(list, req.Sort)

	res := Result{
		RequiredKW:  required,
		Sort:        req.Sort,
		ShowAll:     req.ShowAll,
		CatalogSize: len(e.catalog),
		Devices:     list,
		Tiers:       SplitTiers(list, budget, hasBudget, e.cfg.PremiumMinBudget),
	}
	if hasBudget {
		res.Budget = &budget
	}
	res.Sections = res.Tiers.Sections(res.Devices)
	return res
}

func (r Result) clone() Result {
	out := r
	out.Devices = slices.Clone(r.Devices)
	out.Tiers.Premium = slices.Clone(r.Tiers.Premium)
	out.Tiers.Budget = slices.Clone(r.Tiers.Budget)
	out.Sections = make([]Section, len(r.Sections))
	for i, s := range r.Sections {
		out.Sections[i] = Section{Tier: s.Tier, Devices: slices.Clone(s.Devices)}
	}
	if r.Budget != nil {
		b := *r.Budget
		out.Budget = &b
	}
	return out
}
