// main.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// This file contains the implementation of the main() function, which
// parses the experiment configuration and runs scenario generation for
// each entry.

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	av "github.com/mmp/skedgen/aviation"
	"github.com/mmp/skedgen/log"
	"github.com/mmp/skedgen/scenario"

	"github.com/goforj/godump"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

var (
	srdFilename = flag.String("srd", "", "filename of the static routing data document (default $SKEDGEN_SRD or srd.json)")
	outDir      = flag.String("out", "", "directory to write scenario documents to (default $SKEDGEN_OUT or .)")
	experiments = flag.String("experiments", "", "filename of JSON file with an array of experiment configurations")
	logLevel    = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir      = flag.String("logdir", "", "log file directory")
	jobs        = flag.Int("j", 1, "number of scenarios to generate concurrently")
	seed        = flag.Int64("seed", 0, "base random seed; 0 reseeds from the clock for every run")
	dumpDoc     = flag.Bool("dump", false, "dump each generated document to stdout for debugging")

	// Factors for a single run when no -experiments file is given.
	area        = flag.String("area", "conus", "experiment area label")
	arrivalRate = flag.String("arrival", "low", "arrival rate: low, high")
	substitutes = flag.Int("substitutes", 0, "allowed tail-type substitution: 0, 1")
	tailScale   = flag.String("tailscale", "low", "tail scale: low, high")
	mxScale     = flag.String("mxscale", "low", "maintenance scale: low, high")
	mxDist      = flag.String("mxdist", "east", "maintenance airport distribution: east, west")
	geoDensity  = flag.String("geo", "high", "geographic density: low, high")
	windowDays  = flag.Int("window", 1, "planning time window in days")
	weather     = flag.Bool("weather", false, "apply a weather disruption")
	event       = flag.Bool("event", false, "apply a demand-surge event")
	mxCycle     = flag.String("mxcycle", "low", "maintenance cycle regime: low, high")
	crewScale   = flag.String("crewscale", "low", "crew scale: low, mid, high")
	startTime   = flag.String("start", "", "scenario start time, RFC3339 (e.g. 2025-04-01T06:00:00Z)")
	hubPattern  = flag.String("hub", "fly_out", "hub demand pattern: fly_out, fly_in, fly_io")
)

func main() {
	godotenv.Load()
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	if *srdFilename == "" {
		*srdFilename = envOr("SKEDGEN_SRD", "srd.json")
	}
	if *outDir == "" {
		*outDir = envOr("SKEDGEN_OUT", ".")
	}

	db, err := av.LoadStaticData(*srdFilename, lg)
	if err != nil {
		lg.Errorf("%s: %v", *srdFilename, err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", *srdFilename, err)
		os.Exit(1)
	}

	configs, err := experimentConfigs()
	if err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", *outDir, err)
		os.Exit(1)
	}

	// Each run owns its generator and identifier state, so independent
	// runs can safely go in parallel.
	var eg errgroup.Group
	eg.SetLimit(max(1, *jobs))
	for i, config := range configs {
		eg.Go(func() error {
			if config.Seed == 0 && *seed != 0 {
				config.Seed = *seed + int64(i)
			}

			doc, err := scenario.Generate(config, db, lg)
			if err != nil {
				return fmt.Errorf("scenario %d: %w", i+1, err)
			}
			if *dumpDoc {
				godump.Dump(doc)
			}

			path := filepath.Join(*outDir, config.Filename())
			if err := writeDocument(doc, path); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			fmt.Printf("%s: %d tails, %d flight requests, %d maintenance requests, %d legs, %d crew\n",
				path, len(doc.Tails), len(doc.FlightRequests), len(doc.MaintenanceRequests),
				len(doc.Legs), len(doc.Crewmembers))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// experimentConfigs returns the experiment list: the contents of the
// -experiments file if one was given, otherwise the single configuration
// described by the individual factor flags.
func experimentConfigs() ([]scenario.Config, error) {
	if *experiments != "" {
		text, err := os.ReadFile(*experiments)
		if err != nil {
			return nil, err
		}
		var configs []scenario.Config
		if err := json.Unmarshal(text, &configs); err != nil {
			return nil, fmt.Errorf("%s: %w", *experiments, err)
		}
		return configs, nil
	}

	start := time.Now().UTC().Truncate(time.Hour).Add(24 * time.Hour)
	if *startTime != "" {
		var err error
		if start, err = time.Parse(time.RFC3339, *startTime); err != nil {
			return nil, fmt.Errorf("%s: %w", *startTime, err)
		}
	}

	return []scenario.Config{{
		Area:                           *area,
		ArrivalRate:                    *arrivalRate,
		Substitutes:                    *substitutes,
		TailScale:                      *tailScale,
		MaintenanceScale:               *mxScale,
		MaintenanceAirportDistribution: *mxDist,
		GeoDensity:                     *geoDensity,
		TimeWindowDays:                 *windowDays,
		Weather:                        *weather,
		Event:                          *event,
		MaintenanceCycle:               *mxCycle,
		CrewScale:                      *crewScale,
		StartTime:                      start,
		HubPattern:                     *hubPattern,
		Seed:                           0,
	}}, nil
}

func writeDocument(doc *scenario.Document, path string) error {
	text, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(text, '\n'), 0644)
}
