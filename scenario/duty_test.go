// scenario/duty_test.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"errors"
	"reflect"
	"testing"
	"time"

	av "github.com/mmp/skedgen/aviation"
	"github.com/mmp/skedgen/math"
	"github.com/mmp/skedgen/rand"
)

func TestDutyStateAt(t *testing.T) {
	g := &Generator{config: validConfig()}
	start := g.config.StartTime

	for _, tc := range []struct {
		offset    time.Duration // tour start relative to the scenario start
		duty      time.Duration
		state     dutyState
		sinceDuty time.Duration
	}{
		{time.Hour, 10 * time.Hour, dutyDormant, 0},
		{3 * 24 * time.Hour, 10 * time.Hour, dutyDormant, 0},
		{-time.Hour, 10 * time.Hour, dutyDormant, 0},
		{-2 * time.Hour, 10 * time.Hour, dutyOn, 2 * time.Hour},
		{-10 * time.Hour, 10 * time.Hour, dutyOn, 10 * time.Hour},
		{-15 * time.Hour, 10 * time.Hour, dutyResting, 15 * time.Hour},
		{-23 * time.Hour, 14 * time.Hour, dutyResting, 23 * time.Hour},
		{-24 * time.Hour, 10 * time.Hour, dutyOn, 0},
		{-27 * time.Hour, 10 * time.Hour, dutyOn, 3 * time.Hour},
		{-38 * time.Hour, 14 * time.Hour, dutyOn, 14 * time.Hour},
		{-63 * time.Hour, 10 * time.Hour, dutyResting, 15 * time.Hour},
	} {
		state, sinceDuty := g.dutyStateAt(start.Add(tc.offset), tc.duty)
		if state != tc.state || sinceDuty != tc.sinceDuty {
			t.Errorf("tour start %v, duty %v: got state %d since %v, expected %d since %v",
				tc.offset, tc.duty, state, sinceDuty, tc.state, tc.sinceDuty)
		}
	}
}

func TestAddRest(t *testing.T) {
	g := &Generator{config: validConfig()}
	c := &Crewmember{CrewmemberID: 100007, CurrentLocation: "KTEB"}

	g.addRest(c, 15*time.Hour, 12*time.Hour)

	if len(g.activities) != 1 {
		t.Fatalf("%d activities", len(g.activities))
	}
	act := g.activities[0]
	if act.CrewmemberID != c.CrewmemberID || act.ActivityType != av.ActivityRest {
		t.Errorf("activity %+v", act)
	}
	if act.OriginAirport != "KTEB" || act.DestinationAirport != "KTEB" {
		t.Errorf("rest moves the crewmember: %s-%s", act.OriginAirport, act.DestinationAirport)
	}

	// Rest starts at the end of the 12h duty period, 15h into the cycle
	// puts that 3h before the scenario start, and fills the rest of the
	// 24h cycle.
	if want := g.config.StartTime.Add(-3 * time.Hour); !act.StartTime.Equal(want) {
		t.Errorf("rest starts at %v, expected %v", act.StartTime, want)
	}
	if act.Duration != 12*60 {
		t.Errorf("rest duration %d minutes", act.Duration)
	}
}

func TestPairRevenueFlight(t *testing.T) {
	g := &Generator{
		config: validConfig(),
		db:     testStaticDatabase(),
		r:      rand.MakeWithSeed(8),
		ids:    MakeIDAllocator(),
	}
	g.geo = av.NewGeoIndex(g.db)

	day := g.config.StartTime.AddDate(0, 0, 90)
	quals := []Qualification{
		{AircraftTypeName: "CL-650S", PositionInCrew: av.PositionPIC, DayLandingCurrencyExpiration: &day},
		{AircraftTypeName: "CL-650S", PositionInCrew: av.PositionSIC},
	}
	pic := Crewmember{CrewmemberID: 100000, CurrentLocation: "KTEB", Qualifications: quals}
	sic := Crewmember{CrewmemberID: 900000, CurrentLocation: "KTEB", Qualifications: quals}

	if err := g.pairRevenueFlight(&pic, &sic); err != nil {
		t.Fatalf("pairRevenueFlight: %v", err)
	}

	if len(g.tails) != 1 || len(g.legs) != 1 || len(g.activities) != 2 || len(g.pairs) != 1 {
		t.Fatalf("%d tails, %d legs, %d activities, %d pairs",
			len(g.tails), len(g.legs), len(g.activities), len(g.pairs))
	}

	leg := g.legs[0]
	// KCDW is the first airport in table order within pairing range of
	// KTEB.
	if leg.OriginAirport != "KCDW" || leg.DestinationAirport != "KTEB" {
		t.Errorf("leg %s-%s", leg.OriginAirport, leg.DestinationAirport)
	}
	if !leg.IsLocked || leg.RequestID != 0 || leg.Duration != revenueLegMinutes {
		t.Errorf("leg %+v", leg)
	}
	legStart := g.config.StartTime.Add(-preHorizonLegLead)
	if !leg.StartTime.Equal(legStart) {
		t.Errorf("leg starts at %v", leg.StartTime)
	}
	want := []AssignedCrewmember{
		{CrewmemberID: pic.CrewmemberID, PositionInCrew: av.PositionPIC},
		{CrewmemberID: sic.CrewmemberID, PositionInCrew: av.PositionSIC},
	}
	if !reflect.DeepEqual(leg.AssignedCrewmembers, want) {
		t.Errorf("assigned crew %+v", leg.AssignedCrewmembers)
	}

	tail := g.tails[0]
	if tail.TailNumber != leg.TailNumber || tail.CurrentLocation != "KCDW" || tail.AircraftTypeName != "CL-650S" {
		t.Errorf("tail %+v", tail)
	}
	if !tail.AvailableTime.Equal(legStart.Add(-24 * time.Hour)) {
		t.Errorf("tail available at %v", tail.AvailableTime)
	}

	for i, act := range g.activities {
		if act.ActivityType != av.ActivityRevenueFlight || act.LegID != leg.LegID ||
			act.TailNumber != tail.TailNumber || act.Duration != revenueLegMinutes {
			t.Errorf("activity %d: %+v", i, act)
		}
	}
	if g.activities[0].PositionInCrew != av.PositionPIC || g.activities[1].PositionInCrew != av.PositionSIC {
		t.Errorf("activity positions %q/%q", g.activities[0].PositionInCrew, g.activities[1].PositionInCrew)
	}

	pair := g.pairs[0]
	if pair.FirstCrewmemberID != pic.CrewmemberID || pair.SecondCrewmemberID != sic.CrewmemberID ||
		pair.LegID != leg.LegID {
		t.Errorf("pair %+v", pair)
	}
}

func TestPairRevenueFlightIsolatedAirport(t *testing.T) {
	// A table with no airport within pairing range of the crew's location
	// must fail the run rather than fabricate a departure.
	db := &av.StaticDatabase{
		Airports: map[string]av.Airport{
			"KDEN": {ICAO: "KDEN", Location: math.Point2LL{-104.9903, 39.7392}, Country: "US"},
			"EGLL": {ICAO: "EGLL", Location: math.Point2LL{-0.4543, 51.47}, Country: "GB"},
		},
		USAirports: []string{"KDEN"},
	}
	g := &Generator{
		config: validConfig(),
		db:     db,
		geo:    av.NewGeoIndex(db),
		r:      rand.MakeWithSeed(9),
		ids:    MakeIDAllocator(),
	}

	quals := []Qualification{{AircraftTypeName: "CE-680", PositionInCrew: av.PositionPIC}}
	pic := Crewmember{CrewmemberID: 100000, CurrentLocation: "KDEN", Qualifications: quals}
	sic := Crewmember{CrewmemberID: 900000, CurrentLocation: "KDEN", Qualifications: quals}

	err := g.pairRevenueFlight(&pic, &sic)
	if !errors.Is(err, ErrNoNearbyAirport) {
		t.Errorf("got %v, expected ErrNoNearbyAirport", err)
	}
}

func TestPairingConsistency(t *testing.T) {
	doc := generateTestDocument(t, nil)

	crew := make(map[int]Crewmember)
	for _, c := range doc.Crewmembers {
		crew[c.CrewmemberID] = c
	}
	legs := make(map[int]Leg)
	for _, leg := range doc.Legs {
		legs[leg.LegID] = leg
	}

	if len(doc.CrewFlyingTogether) == 0 {
		t.Fatalf("no crew pairs generated")
	}
	for _, pair := range doc.CrewFlyingTogether {
		first, ok1 := crew[pair.FirstCrewmemberID]
		second, ok2 := crew[pair.SecondCrewmemberID]
		if !ok1 || !ok2 {
			t.Fatalf("pair %+v references unknown crew", pair)
		}

		// Paired crew share a duty window, a location, and type
		// qualifications; otherwise the shared leg would be illegal.
		if !first.TourStartTime.Equal(second.TourStartTime) || !first.TourEndTime.Equal(second.TourEndTime) {
			t.Errorf("pair %d/%d: tour windows differ", first.CrewmemberID, second.CrewmemberID)
		}
		if first.CurrentLocation != second.CurrentLocation {
			t.Errorf("pair %d/%d: locations %s/%s", first.CrewmemberID, second.CrewmemberID,
				first.CurrentLocation, second.CurrentLocation)
		}
		if !reflect.DeepEqual(first.Qualifications, second.Qualifications) {
			t.Errorf("pair %d/%d: qualifications differ", first.CrewmemberID, second.CrewmemberID)
		}

		leg, ok := legs[pair.LegID]
		if !ok {
			t.Fatalf("pair references unknown leg %d", pair.LegID)
		}
		want := []AssignedCrewmember{
			{CrewmemberID: first.CrewmemberID, PositionInCrew: av.PositionPIC},
			{CrewmemberID: second.CrewmemberID, PositionInCrew: av.PositionSIC},
		}
		if !reflect.DeepEqual(leg.AssignedCrewmembers, want) {
			t.Errorf("leg %d: assigned crew %+v", leg.LegID, leg.AssignedCrewmembers)
		}
		if leg.DestinationAirport != first.CurrentLocation {
			t.Errorf("leg %d arrives at %s, crew at %s", leg.LegID,
				leg.DestinationAirport, first.CurrentLocation)
		}
	}
}
