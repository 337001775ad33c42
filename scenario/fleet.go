// scenario/fleet.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"strconv"
	"time"

	av "github.com/mmp/skedgen/aviation"
	"github.com/mmp/skedgen/rand"
)

// Fixed cost attributes shared by every generated tail.
const (
	tailCost     = 6304
	tailLegCost  = 1173
	tailBase     = "KCMH"
	tailPropELT  = "ELT_406MHZ_FLAG"
	tailPropTCAS = "TCAS7.1"
	tailPropBunk = "NO_DOUBLE_BUNK"
)

// generateFleet tops the tail population up to the configured count. The
// crew activity scheduler runs first and synthesizes tails of its own;
// those count toward the target.
func (g *Generator) generateFleet() {
	count := g.config.NumTails() - len(g.tails)
	for range max(0, count) {
		loc := rand.SampleSlice(g.r, g.pool)
		typeName := rand.SampleSlice(g.r, av.AircraftTypes)
		g.tails = append(g.tails, g.makeTail(loc, typeName, g.horizon.Start()))
	}
	g.lg.Info("Generated fleet", "tails", len(g.tails), "new", max(0, count))
}

// makeTail creates a tail at the given location, available from the given
// time; maintenance counters are drawn from the configured regime.
func (g *Generator) makeTail(location, typeName string, available time.Time) Tail {
	id := g.ids.Next(IDTail)
	minMinutes, maxMinutes, minCycles, maxCycles := g.config.MaintenanceRegime()

	return Tail{
		TailNumber:               strconv.Itoa(id),
		AircraftTypeName:         typeName,
		OriginalAircraftTypeName: typeName,
		AvailableTime:            available,
		CurrentLocation:          location,
		BeginTimeForNextMaintenanceAfterPlanningHorizon: g.config.StartTime.AddDate(1, 0, 0),
		AssignedProperties:            []string{strconv.Itoa(id), typeName, tailPropELT, tailPropTCAS, tailPropBunk},
		MinutesLeftForNextMaintenance: minMinutes + g.r.Intn(maxMinutes-minMinutes+1),
		CyclesLeftForNextMaintenance:  minCycles + g.r.Intn(maxCycles-minCycles+1),
		TailCost:                      tailCost,
		TailBaseAirport:               tailBase,
		TailLegCost:                   tailLegCost,
		ServiceRequested:              true,
		TailCostForFerry:              tailCost,
		TailCostForNonFerry:           tailCost,
		TailID:                        id,
		PaxSeats:                      rand.Sample(g.r, 8, 10, 12),
		LavSeats:                      g.r.Intn(2),
	}
}
