// scenario/scenario.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	av "github.com/mmp/skedgen/aviation"
	"github.com/mmp/skedgen/log"
	"github.com/mmp/skedgen/rand"
	"github.com/mmp/skedgen/util"
)

const (
	// Radius around the fixed hubs that defines the dense airport pool and
	// hub-anchored demand.
	hubRadiusMiles = 50
	// Airports selected under low geographic density.
	dispersedPoolSize = 200
	// Radius of weather and demand-surge disruptions.
	disruptionRadiusMiles = 30
)

// Generator accumulates one scenario's state while the generation passes
// run. All cross-pass products (tails, legs, crew, requests) live here
// rather than in package-level state so that independent runs never share
// anything but the static database.
type Generator struct {
	config  Config
	db      *av.StaticDatabase
	geo     *av.GeoIndex
	r       *rand.Rand
	ids     *IDAllocator
	lg      *log.Logger
	horizon util.TimeInterval

	// Active airport pool; shrinks when a weather disruption is applied.
	pool []string

	weatherEpicenter string
	weatherAffected  []string // sorted
	affectedSet      map[string]bool

	tails               []Tail
	legs                []Leg
	crew                []Crewmember
	partners            []Crewmember // synthesized SIC partners, merged after scheduling
	activities          []CrewActivity
	pairs               []CrewPair
	flightRequests      []Request
	maintenanceRequests []Request
}

// Generate runs all generation passes for the given configuration and
// returns the assembled scenario document. Generation either runs to
// completion or fails outright; there are no retries.
func Generate(config Config, db *av.StaticDatabase, lg *log.Logger) (*Document, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.StartTime = config.StartTime.UTC().Truncate(time.Second)

	if lg != nil {
		lg = lg.With("run", uuid.NewString(), "area", config.Area)
	}
	g := &Generator{
		config:      config,
		db:          db,
		geo:         av.NewGeoIndex(db),
		r:           rand.MakeWithSeed(config.Seed),
		ids:         MakeIDAllocator(),
		lg:          lg,
		horizon:     config.Horizon(),
		affectedSet: make(map[string]bool),
	}

	if err := g.buildAirportPool(); err != nil {
		return nil, err
	}
	// Weather shrinks the pool before anything is placed at an airport.
	if config.Weather {
		if err := g.applyWeatherShutdown(); err != nil {
			return nil, err
		}
	}

	g.generateCrewRoster()
	if err := g.scheduleCrewActivities(); err != nil {
		return nil, err
	}
	g.generateFleet()
	g.generateBaselineDemand()
	g.generateMaintenanceDemand()
	if config.Event {
		if err := g.generateEventSurge(); err != nil {
			return nil, err
		}
	}
	if config.Weather {
		g.generateGroundingLegs()
	}

	doc := g.assemble()
	lg.Info("Generated scenario",
		"tails", len(doc.Tails), "flight_requests", len(doc.FlightRequests),
		"maintenance_requests", len(doc.MaintenanceRequests), "legs", len(doc.Legs),
		"crewmembers", len(doc.Crewmembers), "activities", len(doc.CrewActivities))
	return doc, nil
}

// buildAirportPool selects the active airport subset: under high geographic
// density, everything within hub range of the three hubs; otherwise a
// dispersed random sample of the whole table.
func (g *Generator) buildAirportPool() error {
	if g.config.GeoDensity == ScaleHigh {
		nearby := make(map[string]bool)
		for _, hub := range util.SortedMapKeys(av.Hubs) {
			for _, icao := range g.geo.AirportsNearPoint(av.Hubs[hub], hubRadiusMiles, nil) {
				nearby[icao] = true
			}
		}
		g.pool = util.SortedMapKeys(nearby)
	} else {
		g.pool = rand.SampleDistinct(g.r, util.SortedMapKeys(g.db.Airports), dispersedPoolSize)
		slices.Sort(g.pool)
	}

	if len(g.pool) < 2 {
		return fmt.Errorf("%d airports: %w", len(g.pool), ErrAirportPoolExhausted)
	}
	g.lg.Info("Built airport pool", "density", g.config.GeoDensity, "airports", len(g.pool))
	return nil
}

func (g *Generator) assemble() *Document {
	nonNil := func(s []Request) []Request { return util.Select(s == nil, []Request{}, s) }

	weather := WeatherDisruption{
		Enabled:          g.config.Weather,
		Epicenter:        g.weatherEpicenter,
		AffectedAirports: util.Select(g.weatherAffected == nil, []string{}, g.weatherAffected),
	}

	desc := fmt.Sprintf("DOE scenario %s: tails=%s arrivals=%s geo=%s window=%dd weather=%v event=%v",
		g.config.Area, g.config.TailScale, g.config.ArrivalRate, g.config.GeoDensity,
		g.config.TimeWindowDays, g.config.Weather, g.config.Event)

	return &Document{
		Tails:               util.Select(g.tails == nil, []Tail{}, g.tails),
		FlightRequests:      nonNil(g.flightRequests),
		MaintenanceRequests: nonNil(g.maintenanceRequests),
		Legs:                util.Select(g.legs == nil, []Leg{}, g.legs),
		Crewmembers:         util.Select(g.crew == nil, []Crewmember{}, g.crew),
		CrewActivities:      util.Select(g.activities == nil, []CrewActivity{}, g.activities),
		CrewFlyingTogether:  util.Select(g.pairs == nil, []CrewPair{}, g.pairs),
		Weather:             weather,
		Configuration: HorizonConfiguration{
			StartHorizon: g.horizon.Start(),
			EndHorizon:   g.horizon.End(),
		},
		Description: desc,
	}
}

// randomRequestTime draws a requested time uniformly over the scenario
// window, minute granularity.
func (g *Generator) randomRequestTime() time.Time {
	return g.config.StartTime.Add(time.Duration(g.r.Intn(g.config.TimeWindowDays*24*60+1)) * time.Minute)
}
