package main

import (
	"encoding/json"
	"fmt"
	"os"

	"heating_advisor/internal/engine"
	"heating_advisor/internal/logger"
	"heating_advisor/internal/models"

	"github.com/urfave/cli/v2"
)

func catalogFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "catalog",
		Aliases:  []string{"c"},
		Usage:    "Path to the device catalog JSON (flat list or {premium, budget})",
		EnvVars:  []string{"HEATING_CATALOG_PATH"},
		Required: true,
	}
}

func buildingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "area", Aliases: []string{"a"}, Usage: "Heated area in m²"},
		&cli.StringFlag{Name: "insulation", Aliases: []string{"i"}, Value: models.InsulationMedium, Usage: "Insulation class label or high/medium/low"},
	}
}

func recommendCommand() *cli.Command {
	flags := append([]cli.Flag{catalogFlag()}, buildingFlags()...)
	flags = append(flags,
		&cli.StringFlag{Name: "building-type", Usage: "Building type (informational)"},
		&cli.BoolFlag{Name: "gas", Usage: "Gas mains are connected"},
		&cli.BoolFlag{Name: "gas-nearby", Usage: "A gas line runs nearby"},
		&cli.BoolFlag{Name: "own-plant", Usage: "The building has its own power plant"},
		&cli.BoolFlag{Name: "solar", Usage: "Solar panels are installed"},
		&cli.StringFlag{Name: "dhw", Usage: "Hot water preference: integrated, separate or none"},
		&cli.StringFlag{Name: "budget", Aliases: []string{"b"}, Usage: "Budget in EUR"},
		&cli.StringFlag{Name: "sort", Aliases: []string{"s"}, Value: string(engine.SortBest), Usage: "best, price_asc, price_desc, power_asc or power_desc"},
		&cli.BoolFlag{Name: "show-all", Usage: "Skip the capacity and budget filters"},
		&cli.Float64Flag{Name: "premium-min-budget", Value: engine.DefaultPremiumMinBudget, Usage: "Budget from which premium devices are listed first"},
		&cli.BoolFlag{Name: "json", Usage: "Print the raw result as JSON"},
	)
	return &cli.Command{
		Name:   "recommend",
		Usage:  "Rank catalog devices for a building",
		Flags:  flags,
		Action: runRecommend,
	}
}

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:   "estimate",
		Usage:  "Estimate the required heating capacity",
		Flags:  buildingFlags(),
		Action: runEstimate,
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:   "validate",
		Usage:  "Check that a catalog file decodes and summarize it",
		Flags:  []cli.Flag{catalogFlag()},
		Action: runValidate,
	}
}

func loadCatalogFile(path string) ([]models.Device, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	devices, err := engine.NormalizeCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return devices, nil
}

func runRecommend(c *cli.Context) error {
	log := logger.NewStderr(c.String("log-level"))
	defer func() { _ = log.Sync() }()

	mode, err := engine.ParseSortMode(c.String("sort"))
	if err != nil {
		return err
	}
	devices, err := loadCatalogFile(c.String("catalog"))
	if err != nil {
		return err
	}
	log.Debugw("catalog_loaded", "path", c.String("catalog"), "devices", len(devices))

	eng := engine.New(devices, engine.Config{
		MinRequiredKW:    engine.DefaultMinRequiredKW,
		PremiumMinBudget: c.Float64("premium-min-budget"),
	})
	res := eng.Recommend(engine.Request{
		Inputs: models.UserInputs{
			BuildingType:  c.String("building-type"),
			Area:          models.FormText(c.String("area")),
			Insulation:    c.String("insulation"),
			GasMains:      c.Bool("gas"),
			GasLineNearby: c.Bool("gas-nearby"),
			OwnPowerPlant: c.Bool("own-plant"),
			SolarPanels:   c.Bool("solar"),
			DHW:           models.ParseDHWMode(c.String("dhw")),
			Budget:        models.FormText(c.String("budget")),
		},
		Sort:    mode,
		ShowAll: c.Bool("show-all"),
	})
	log.Debugw("recommendation_computed", "required_kw", res.RequiredKW, "matches", len(res.Devices))

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return renderResult(c.App.Writer, res)
}

func runEstimate(c *cli.Context) error {
	kw := engine.EstimateRequiredKW(engine.ParseArea(c.String("area")), c.String("insulation"))
	_, err := fmt.Fprintf(c.App.Writer, "%d kW\n", kw)
	return err
}

func runValidate(c *cli.Context) error {
	devices, err := loadCatalogFile(c.String("catalog"))
	if err != nil {
		return err
	}
	return renderCatalogSummary(c.App.Writer, devices)
}
