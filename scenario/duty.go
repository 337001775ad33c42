// scenario/duty.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"fmt"
	"time"

	"github.com/brunoga/deep"
	av "github.com/mmp/skedgen/aviation"
	"github.com/mmp/skedgen/rand"
	"github.com/mmp/skedgen/util"
)

const (
	// Crew starting within this lead of the scenario start are not yet on
	// duty; the lead leaves room for a revenue leg to precede the horizon
	// for crew starting right at the boundary.
	preHorizonLegLead = 2 * time.Hour

	dutyDayCycle       = 24 * time.Hour
	minDutyHours       = 10
	maxDutyHours       = 14
	pairingRadiusMiles = 100
	revenueLegMinutes  = 120
)

type dutyState int

const (
	dutyDormant dutyState = iota
	dutyOn
	dutyResting
)

// dutyStateAt classifies what a crew member with the given tour start and
// duty duration is doing at the scenario start time, and returns how far
// into the current 24h duty cycle they are.
func (g *Generator) dutyStateAt(tourStart time.Time, duty time.Duration) (dutyState, time.Duration) {
	start := g.config.StartTime
	if tourStart.After(start.Add(-preHorizonLegLead)) {
		return dutyDormant, 0
	}
	sinceDuty := start.Sub(tourStart) % dutyDayCycle
	if sinceDuty <= duty {
		return dutyOn, sinceDuty
	}
	return dutyResting, sinceDuty
}

// scheduleCrewActivities emits the duty-state snapshot for every crew
// member at the scenario start. The roster is split in half: the first half
// is processed individually, pairing on-duty crew with synthesized SIC
// partners; the second half is processed in consecutive pairs of real crew,
// with the second member of each pair rewritten to legally share a leg with
// the first.
func (g *Generator) scheduleCrewActivities() error {
	half := len(g.crew) / 2
	for i := range half {
		if err := g.scheduleSolo(i); err != nil {
			return err
		}
	}
	for i := half; i+1 < len(g.crew); i += 2 {
		if err := g.schedulePair(i, i+1); err != nil {
			return err
		}
	}
	if (len(g.crew)-half)%2 == 1 {
		if err := g.scheduleSolo(len(g.crew) - 1); err != nil {
			return err
		}
	}

	g.crew = append(g.crew, g.partners...)
	g.partners = nil
	g.lg.Info("Scheduled crew activities",
		"activities", len(g.activities), "pairs", len(g.pairs), "synthetic_tails", len(g.tails))
	return nil
}

func (g *Generator) scheduleSolo(i int) error {
	duty := g.drawDutyDuration()
	state, sinceDuty := g.dutyStateAt(g.crew[i].TourStartTime, duty)

	switch state {
	case dutyDormant:
		return nil
	case dutyOn:
		partner := g.makePartner(&g.crew[i])
		if err := g.pairRevenueFlight(&g.crew[i], &partner); err != nil {
			return err
		}
		g.addRest(&g.crew[i], sinceDuty, duty)
		g.addRest(&partner, sinceDuty, duty)
		g.partners = append(g.partners, partner)
	case dutyResting:
		g.addRest(&g.crew[i], sinceDuty, duty)
	}
	return nil
}

func (g *Generator) schedulePair(i, j int) error {
	first, second := &g.crew[i], &g.crew[j]

	// Rewrite the second member so the pair can legally share one leg:
	// same duty window, same location, same type qualifications.
	second.TourStartTime = first.TourStartTime
	second.TourEndTime = first.TourEndTime
	second.CurrentLocation = first.CurrentLocation
	second.Qualifications = deep.MustCopy(first.Qualifications)

	duty := g.drawDutyDuration()
	state, sinceDuty := g.dutyStateAt(first.TourStartTime, duty)

	switch state {
	case dutyDormant:
		return nil
	case dutyOn:
		if err := g.pairRevenueFlight(first, second); err != nil {
			return err
		}
		g.addRest(first, sinceDuty, duty)
		g.addRest(second, sinceDuty, duty)
	case dutyResting:
		g.addRest(first, sinceDuty, duty)
		g.addRest(second, sinceDuty, duty)
	}
	return nil
}

func (g *Generator) drawDutyDuration() time.Duration {
	return time.Duration(minDutyHours+g.r.Intn(maxDutyHours-minDutyHours+1)) * time.Hour
}

// makePartner synthesizes a dummy SIC crew member colocated with the PIC
// and sharing its duty window and qualifications.
func (g *Generator) makePartner(pic *Crewmember) Crewmember {
	return Crewmember{
		CrewmemberID:    g.ids.Next(IDPartnerCrew),
		CurrentLocation: pic.CurrentLocation,
		DomicileAirport: pic.DomicileAirport,
		TourStartTime:   pic.TourStartTime,
		TourEndTime:     pic.TourEndTime,
		Qualifications:  deep.MustCopy(pic.Qualifications),
	}
}

// pairRevenueFlight shows a mid-duty pair in the air at the scenario start:
// it synthesizes a tail and a locked leg arriving at the PIC's current
// location and emits matching PIC/SIC activities. The departure airport is
// the first one within pairing range over the full coordinate table; a
// sparse table is a hard failure, not something to paper over.
func (g *Generator) pairRevenueFlight(pic, sic *Crewmember) error {
	arrival := pic.CurrentLocation
	departure, ok := g.geo.FirstWithinRadius(arrival, pairingRadiusMiles)
	if !ok {
		return fmt.Errorf("%s: %w", arrival, ErrNoNearbyAirport)
	}

	types := util.MapSlice(
		util.FilterSlice(pic.Qualifications, func(q Qualification) bool { return q.PositionInCrew == av.PositionPIC }),
		func(q Qualification) string { return q.AircraftTypeName })
	typeName := rand.SampleSlice(g.r, types)

	legStart := g.config.StartTime.Add(-preHorizonLegLead)
	tail := g.makeTail(departure, typeName, legStart.Add(-24*time.Hour))
	g.tails = append(g.tails, tail)

	leg := Leg{
		TailNumber:         tail.TailNumber,
		LegID:              g.ids.Next(IDRevenueLeg),
		RequestID:          0,
		IsLocked:           true,
		OriginAirport:      departure,
		DestinationAirport: arrival,
		StartTime:          legStart,
		Duration:           revenueLegMinutes,
		ActivityType:       av.ActivityRevenueFlight,
		AssignedCrewmembers: []AssignedCrewmember{
			{CrewmemberID: pic.CrewmemberID, PositionInCrew: av.PositionPIC},
			{CrewmemberID: sic.CrewmemberID, PositionInCrew: av.PositionSIC},
		},
	}
	g.legs = append(g.legs, leg)

	for _, crew := range []struct {
		id       int
		position string
	}{{pic.CrewmemberID, av.PositionPIC}, {sic.CrewmemberID, av.PositionSIC}} {
		g.activities = append(g.activities, CrewActivity{
			CrewmemberID:       crew.id,
			ActivityType:       av.ActivityRevenueFlight,
			OriginAirport:      departure,
			DestinationAirport: arrival,
			StartTime:          legStart,
			Duration:           revenueLegMinutes,
			TailNumber:         tail.TailNumber,
			LegID:              leg.LegID,
			PositionInCrew:     crew.position,
		})
	}

	g.pairs = append(g.pairs, CrewPair{
		FirstCrewmemberID:  pic.CrewmemberID,
		SecondCrewmemberID: sic.CrewmemberID,
		LegID:              leg.LegID,
	})
	return nil
}

// addRest emits the REST activity at the boundary of the current duty
// cycle: rest begins duty-duration hours into the cycle and runs for the
// remainder of it.
func (g *Generator) addRest(c *Crewmember, sinceDuty, duty time.Duration) {
	restStart := g.config.StartTime.Add(-sinceDuty).Add(duty)
	g.activities = append(g.activities, CrewActivity{
		CrewmemberID:       c.CrewmemberID,
		ActivityType:       av.ActivityRest,
		OriginAirport:      c.CurrentLocation,
		DestinationAirport: c.CurrentLocation,
		StartTime:          restStart,
		Duration:           int((dutyDayCycle - duty).Minutes()),
	})
}
