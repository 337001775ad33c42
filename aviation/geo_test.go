// aviation/geo_test.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"slices"
	"testing"

	"github.com/mmp/skedgen/math"
)

func testDatabase() *StaticDatabase {
	mk := func(icao string, lat, lon float32, country string) Airport {
		return Airport{ICAO: icao, Location: math.Point2LL{lon, lat}, Country: country}
	}
	db := &StaticDatabase{
		Airports: map[string]Airport{
			"KTEB": mk("KTEB", 40.85, -74.0608, "US"),
			"KJFK": mk("KJFK", 40.6413, -73.7781, "US"),
			"KIAD": mk("KIAD", 38.9472, -77.4597, "US"),
			"KPBI": mk("KPBI", 26.6831, -80.0956, "US"),
			"KLAX": mk("KLAX", 33.9416, -118.4085, "US"),
			"KDEN": mk("KDEN", 39.7392, -104.9903, "US"),
			"EGLL": mk("EGLL", 51.47, -0.4543, "GB"),
		},
	}
	db.USAirports = []string{"KDEN", "KIAD", "KJFK", "KLAX", "KPBI", "KTEB"}
	return db
}

func TestAirportsWithinRadius(t *testing.T) {
	geo := NewGeoIndex(testDatabase())

	// Zero radius includes only the center itself.
	if got := geo.AirportsWithinRadius("KTEB", 0, nil); !slices.Equal(got, []string{"KTEB"}) {
		t.Errorf("zero radius: got %+v, expected [KTEB]", got)
	}

	// KJFK is roughly 20 miles from KTEB.
	got := geo.AirportsWithinRadius("KTEB", 30, nil)
	if !slices.Equal(got, []string{"KJFK", "KTEB"}) {
		t.Errorf("30mi of KTEB: got %+v", got)
	}

	// Nesting: r1 <= r2 implies containment.
	for _, center := range []string{"KTEB", "KLAX", "KPBI"} {
		prev := []string{}
		for _, radius := range []float32{0, 30, 100, 500, 3000} {
			cur := geo.AirportsWithinRadius(center, radius, nil)
			for _, icao := range prev {
				if !slices.Contains(cur, icao) {
					t.Errorf("%s: %s within smaller radius but not %g", center, icao, radius)
				}
			}
			prev = cur
		}
	}

	// Unknown center degrades to an empty set.
	if got := geo.AirportsWithinRadius("XXXX", 100, nil); len(got) != 0 {
		t.Errorf("unknown center: got %+v", got)
	}

	// Candidate filtering.
	got = geo.AirportsWithinRadius("KTEB", 30, []string{"KJFK", "KLAX"})
	if !slices.Equal(got, []string{"KJFK"}) {
		t.Errorf("candidates: got %+v", got)
	}
}

func TestDistanceMiles(t *testing.T) {
	geo := NewGeoIndex(testDatabase())

	for _, icao := range []string{"KTEB", "KLAX", "EGLL"} {
		if d, ok := geo.DistanceMiles(icao, icao); !ok || d != 0 {
			t.Errorf("%s: self-distance %g ok %v", icao, d, ok)
		}
	}

	d1, ok1 := geo.DistanceMiles("KTEB", "KLAX")
	d2, ok2 := geo.DistanceMiles("KLAX", "KTEB")
	if !ok1 || !ok2 || d1 != d2 {
		t.Errorf("asymmetric: %g/%v vs %g/%v", d1, ok1, d2, ok2)
	}

	if _, ok := geo.DistanceMiles("KTEB", "XXXX"); ok {
		t.Errorf("distance to unknown airport succeeded")
	}
}

func TestFirstWithinRadius(t *testing.T) {
	geo := NewGeoIndex(testDatabase())

	if dep, ok := geo.FirstWithinRadius("KTEB", 100); !ok || dep != "KJFK" {
		t.Errorf("got %q/%v, expected KJFK", dep, ok)
	}

	// Nothing near KPBI but itself; the search must not fall back to it.
	if dep, ok := geo.FirstWithinRadius("KPBI", 30); ok {
		t.Errorf("unexpectedly found %q near KPBI", dep)
	}

	if _, ok := geo.FirstWithinRadius("XXXX", 100); ok {
		t.Errorf("found an airport near an unknown center")
	}
}

func TestRegionalPartitions(t *testing.T) {
	geo := NewGeoIndex(testDatabase())

	east, west := geo.EastWest(nil)
	if !slices.Equal(east, []string{"EGLL", "KIAD", "KJFK", "KPBI", "KTEB"}) {
		t.Errorf("east: got %+v", east)
	}
	if !slices.Equal(west, []string{"KDEN", "KLAX"}) {
		t.Errorf("west: got %+v", west)
	}

	north, south := geo.NorthSouth([]string{"KPBI", "KTEB", "KLAX", "KDEN"})
	if !slices.Equal(north, []string{"KTEB", "KDEN"}) {
		t.Errorf("north: got %+v", north)
	}
	if !slices.Equal(south, []string{"KPBI", "KLAX"}) {
		t.Errorf("south: got %+v", south)
	}
}

func TestAirportsNearPoint(t *testing.T) {
	geo := NewGeoIndex(testDatabase())

	got := geo.AirportsNearPoint(Hubs["KTEB"], 50, nil)
	if !slices.Equal(got, []string{"KJFK", "KTEB"}) {
		t.Errorf("near KTEB hub: got %+v", got)
	}
}
