// scenario/disruption.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"fmt"

	av "github.com/mmp/skedgen/aviation"
	"github.com/mmp/skedgen/rand"
	"github.com/mmp/skedgen/util"
)

// Extra revenue requests appended per airport inside a demand-surge area.
const surgeRequestsPerAirport = 10

// applyWeatherShutdown picks a domestic epicenter, computes the affected
// airport set, and removes it from the active pool. This runs before any
// tail, crew, or request generation so nothing new is placed at a grounded
// airport; grounding legs for tails that still end up there (via crew
// scheduling, which searches the full table) are added at the end of the
// run.
func (g *Generator) applyWeatherShutdown() error {
	if len(g.db.USAirports) == 0 {
		return ErrNoDomesticAirports
	}
	g.weatherEpicenter = rand.SampleSlice(g.r, g.db.USAirports)

	// An epicenter missing from the coordinate table degrades to an empty
	// affected set rather than failing the run.
	g.weatherAffected = g.geo.AirportsWithinRadius(g.weatherEpicenter, disruptionRadiusMiles, nil)
	for _, icao := range g.weatherAffected {
		g.affectedSet[icao] = true
	}

	g.pool = util.FilterSlice(g.pool, func(icao string) bool { return !g.affectedSet[icao] })
	if len(g.pool) < 2 {
		return fmt.Errorf("weather at %s: %w", g.weatherEpicenter, ErrAirportPoolExhausted)
	}

	g.lg.Info("Applied weather shutdown",
		"epicenter", g.weatherEpicenter, "affected", len(g.weatherAffected), "pool", len(g.pool))
	return nil
}

// generateGroundingLegs locks every tail located in the weather-affected
// set to the ground for the whole planning window.
func (g *Generator) generateGroundingLegs() {
	durMinutes := g.config.TimeWindowDays * 24 * 60
	grounded := 0

	for _, t := range g.tails {
		if !g.affectedSet[t.CurrentLocation] {
			continue
		}
		g.legs = append(g.legs, Leg{
			TailNumber:          t.TailNumber,
			LegID:               g.ids.Next(IDGroundingLeg),
			RequestID:           0,
			IsLocked:            true,
			OriginAirport:       t.CurrentLocation,
			DestinationAirport:  t.CurrentLocation,
			StartTime:           g.config.StartTime,
			Duration:            durMinutes,
			ActivityType:        av.ActivityMaintenance,
			AssignedCrewmembers: []AssignedCrewmember{},
			CrewModel:           av.CrewModelNoCrew,
			MxType:              av.MxTypeWeatherGrounded,
		})
		grounded++
	}
	g.lg.Info("Generated grounding legs", "tails", grounded)
}

// generateEventSurge concentrates extra demand around an event epicenter:
// every airport in range contributes a fixed number of zero-slack revenue
// requests departing from it.
func (g *Generator) generateEventSurge() error {
	if len(g.db.USAirports) == 0 {
		return ErrNoDomesticAirports
	}
	epicenter := rand.SampleSlice(g.r, g.db.USAirports)
	affected := g.geo.AirportsWithinRadius(epicenter, disruptionRadiusMiles, nil)

	extra := 0
	for _, airport := range affected {
		// Weather wins over the event: no demand departs a grounded
		// airport.
		if g.affectedSet[airport] {
			continue
		}
		for range surgeRequestsPerAirport {
			typeName := rand.SampleSlice(g.r, av.AircraftTypes)
			service, sliding := 0, 0

			g.flightRequests = append(g.flightRequests, Request{
				RequestID:                 g.ids.Next(IDEventRequest),
				ArrivalAirport:            g.drawOther(airport),
				DepartureAirport:          airport,
				ActivityType:              av.ActivityRevenueFlight,
				RequestedTime:             g.randomRequestTime(),
				ServiceTime:               &service,
				SlidingTime:               &sliding,
				AllowedTailTypes:          []AllowedTailType{{AircraftTypeName: typeName}},
				RequestedAircraftTypeName: typeName,
			})
			extra++
		}
	}

	g.lg.Info("Generated event surge",
		"epicenter", epicenter, "affected", len(affected), "extra_requests", extra)
	return nil
}
