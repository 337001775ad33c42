// scenario/demand.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	av "github.com/mmp/skedgen/aviation"
	"github.com/mmp/skedgen/rand"
	"github.com/mmp/skedgen/util"
)

const (
	// Fraction of baseline demand routed through a hub under high
	// geographic density.
	hubDemandFraction = 0.1
	// Probability that a large-type revenue request also wants a flight
	// attendant.
	faRequestProbability = 0.2
	// Extra types added to AllowedTailTypes when substitution is allowed.
	substituteTypeCount = 4

	// Maintenance-capacity airports and their east/west split.
	maintenanceAirportCount = 10
	maintenanceMajoritySide = 7

	minServiceHours = 4
	maxServiceHours = 24
)

// generateBaselineDemand emits the baseline revenue-flight requests. Under
// high geographic density a fraction of them anchor at one of the fixed
// hubs according to the configured hub pattern; the rest draw both
// endpoints uniformly from the pool.
func (g *Generator) generateBaselineDemand() {
	var hubNames []string
	hubSets := make(map[string][]string)
	if g.config.GeoDensity == ScaleHigh {
		hubNames = util.SortedMapKeys(av.Hubs)
		for _, hub := range hubNames {
			hubSets[hub] = g.geo.AirportsNearPoint(av.Hubs[hub], hubRadiusMiles, g.pool)
		}
	}

	n := g.config.NumTails() * g.config.RequestsPerTailDay() * g.config.TimeWindowDays
	for range n {
		departure, arrival := g.drawRequestEndpoints(hubNames, hubSets)
		typeName := rand.SampleSlice(g.r, av.AircraftTypes)

		g.flightRequests = append(g.flightRequests, Request{
			RequestID:                   g.ids.Next(IDFlightRequest),
			ArrivalAirport:              arrival,
			DepartureAirport:            departure,
			ActivityType:                av.ActivityRevenueFlight,
			RequestedTime:               g.randomRequestTime(),
			RequiredCrewmemberPositions: g.requiredPositions(typeName),
			AllowedTailTypes:            g.allowedTailTypes(typeName),
			RequestedAircraftTypeName:   typeName,
		})
	}
	g.lg.Info("Generated baseline demand", "requests", n)
}

func (g *Generator) drawRequestEndpoints(hubNames []string, hubSets map[string][]string) (departure, arrival string) {
	if len(hubNames) > 0 && g.r.Float32() < hubDemandFraction {
		set := hubSets[rand.SampleSlice(g.r, hubNames)]

		pattern := g.config.HubPattern
		if pattern == HubFlyIO {
			// fly_io picks uniformly between fly-out, fly-in, and
			// hub-to-hub for each request.
			pattern = rand.Sample(g.r, HubFlyOut, HubFlyIn, "hub_to_hub")
		}

		switch {
		case len(set) == 0:
			// Hub range doesn't intersect the active pool; fall through to
			// a uniform draw.
		case pattern == HubFlyOut:
			departure = rand.SampleSlice(g.r, set)
			arrival = g.drawOther(departure)
			return
		case pattern == HubFlyIn:
			arrival = rand.SampleSlice(g.r, set)
			departure = g.drawOther(arrival)
			return
		case len(set) >= 2: // hub_to_hub
			departure = rand.SampleSlice(g.r, set)
			for arrival = departure; arrival == departure; {
				arrival = rand.SampleSlice(g.r, set)
			}
			return
		}
	}

	departure = rand.SampleSlice(g.r, g.pool)
	arrival = g.drawOther(departure)
	return
}

// drawOther draws a pool airport distinct from the given one.
func (g *Generator) drawOther(icao string) string {
	other := icao
	for other == icao {
		other = rand.SampleSlice(g.r, g.pool)
	}
	return other
}

func (g *Generator) requiredPositions(typeName string) []RequiredCrewmemberPosition {
	positions := []RequiredCrewmemberPosition{
		makeRequiredPosition(av.PositionPIC),
		makeRequiredPosition(av.PositionSIC),
	}
	if av.LargeAircraftTypes[typeName] && g.r.Float32() < faRequestProbability {
		positions = append(positions, makeRequiredPosition(av.PositionFA))
	}
	return positions
}

// allowedTailTypes returns the substitution set for a request: just the
// requested type when substitution is off, otherwise the requested type
// plus substituteTypeCount distinct others, all penalty-free.
func (g *Generator) allowedTailTypes(typeName string) []AllowedTailType {
	allowed := []AllowedTailType{{AircraftTypeName: typeName}}
	if g.config.Substitutes == 0 {
		return allowed
	}

	others := util.FilterSlice(av.AircraftTypes, func(t string) bool { return t != typeName })
	for _, t := range rand.SampleDistinct(g.r, others, substituteTypeCount) {
		allowed = append(allowed, AllowedTailType{AircraftTypeName: t})
	}
	return allowed
}

// generateMaintenanceDemand emits maintenance requests pinned to specific
// tails at the pre-selected maintenance-capacity airports.
func (g *Generator) generateMaintenanceDemand() {
	airports := g.selectMaintenanceAirports()
	if len(airports) == 0 || len(g.tails) == 0 {
		g.lg.Warnf("no maintenance-capacity airports or tails; skipping maintenance demand")
		return
	}

	n := int(g.config.MaintenanceFraction() * float32(g.config.NumTails()) * float32(g.config.TimeWindowDays))
	for range n {
		airport := rand.SampleSlice(g.r, airports)
		tail := rand.SampleSlice(g.r, g.tails)
		service := (minServiceHours + g.r.Intn(maxServiceHours-minServiceHours+1)) * 60

		g.maintenanceRequests = append(g.maintenanceRequests, Request{
			RequestID:                 g.ids.Next(IDMaintenanceRequest),
			ArrivalAirport:            airport,
			DepartureAirport:          airport,
			ActivityType:              av.ActivityMaintenance,
			RequestedTime:             g.randomRequestTime(),
			ServiceTime:               &service,
			AllowedTailTypes:          []AllowedTailType{{AircraftTypeName: tail.AircraftTypeName}},
			RequestedAircraftTypeName: tail.AircraftTypeName,
			RequiredTailNumber:        tail.TailNumber,
		})
	}
	g.lg.Info("Generated maintenance demand", "requests", n, "airports", len(airports))
}

// selectMaintenanceAirports picks the maintenance-capacity airports from
// the active pool with a 70/30 split across the east/west partition, in the
// direction the distribution factor says.
func (g *Generator) selectMaintenanceAirports() []string {
	east, west := g.geo.EastWest(g.pool)

	eastCount := maintenanceMajoritySide
	if g.config.MaintenanceAirportDistribution == DistributionWest {
		eastCount = maintenanceAirportCount - maintenanceMajoritySide
	}

	airports := rand.SampleDistinct(g.r, east, eastCount)
	airports = append(airports, rand.SampleDistinct(g.r, west, maintenanceAirportCount-eastCount)...)
	return airports
}
