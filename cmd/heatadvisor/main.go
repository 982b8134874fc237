// Command heatadvisor runs the recommendation engine against a catalog file.
//
// Usage:
//
//	heatadvisor recommend --catalog devices.json --area 120 --insulation "Vidutinė (B/C)" --gas
//	heatadvisor estimate --area 120 --insulation "Silpna (D ir senesni)"
//	heatadvisor validate --catalog devices.json
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "heatadvisor",
		Usage:   "Recommend heating devices for a building",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"HEATING_LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			recommendCommand(),
			estimateCommand(),
			validateCommand(),
		},
	}
}
