// aviation/geo.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"
	"slices"

	"github.com/mmp/skedgen/math"
	"github.com/mmp/skedgen/util"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Longitude/latitude thresholds for the coarse regional partitions used to
// bias maintenance-airport (and, historically, seasonal demand) selection.
const (
	eastWestSplitLongitude  = -95
	northSouthSplitLatitude = 37
)

// GeoIndex answers distance and radius queries against the airport
// coordinate table. Full-table radius scans are cached since disruption and
// demand generation repeat them with the same epicenters and radii.
type GeoIndex struct {
	airports map[string]Airport
	sorted   []string // all ICAOs; fixes scan order so seeded runs reproduce
	scans    *lru.Cache[string, []string]
}

func NewGeoIndex(db *StaticDatabase) *GeoIndex {
	scans, _ := lru.New[string, []string](256)
	return &GeoIndex{
		airports: db.Airports,
		sorted:   util.SortedMapKeys(db.Airports),
		scans:    scans,
	}
}

// DistanceMiles returns the great-circle distance in statute miles between
// the two airports; ok is false if either is not in the coordinate table.
func (g *GeoIndex) DistanceMiles(a, b string) (float32, bool) {
	apa, oka := g.airports[a]
	apb, okb := g.airports[b]
	if !oka || !okb {
		return 0, false
	}
	return math.SMDistance2LL(apa.Location, apb.Location), true
}

// AirportsWithinRadius returns all candidate airports within radiusMiles
// (inclusive) of the given center airport. A nil candidates slice means the
// whole coordinate table. An unknown center yields an empty result rather
// than an error; disruption epicenters degrade silently.
func (g *GeoIndex) AirportsWithinRadius(center string, radiusMiles float32, candidates []string) []string {
	ap, ok := g.airports[center]
	if !ok {
		return nil
	}

	within := g.withinRadius(center, ap.Location, radiusMiles)
	if candidates == nil {
		return within
	}
	return util.FilterSlice(candidates, func(icao string) bool {
		_, found := slices.BinarySearch(within, icao)
		return found
	})
}

// AirportsNearPoint is AirportsWithinRadius for an arbitrary coordinate
// center, e.g. the fixed demand hubs.
func (g *GeoIndex) AirportsNearPoint(center math.Point2LL, radiusMiles float32, candidates []string) []string {
	if candidates == nil {
		candidates = g.sorted
	}
	return util.FilterSlice(candidates, func(icao string) bool {
		return math.SMDistance2LL(g.airports[icao].Location, center) <= radiusMiles
	})
}

// FirstWithinRadius returns the first airport in table-scan order other
// than center itself that lies within radiusMiles of it; this is
// deliberately not a nearest-airport search.
func (g *GeoIndex) FirstWithinRadius(center string, radiusMiles float32) (string, bool) {
	for _, icao := range g.AirportsWithinRadius(center, radiusMiles, nil) {
		if icao != center {
			return icao, true
		}
	}
	return "", false
}

func (g *GeoIndex) withinRadius(center string, loc math.Point2LL, radiusMiles float32) []string {
	key := fmt.Sprintf("%s:%g", center, radiusMiles)
	if within, ok := g.scans.Get(key); ok {
		return within
	}

	// Scan order follows g.sorted, so the result is already sorted.
	within := util.FilterSlice(g.sorted, func(icao string) bool {
		return math.SMDistance2LL(g.airports[icao].Location, loc) <= radiusMiles
	})
	g.scans.Add(key, within)
	return within
}

// EastWest partitions the candidate airports (the whole table if nil) about
// the split longitude.
func (g *GeoIndex) EastWest(candidates []string) (east, west []string) {
	if candidates == nil {
		candidates = g.sorted
	}
	for _, icao := range candidates {
		if ap, ok := g.airports[icao]; ok {
			if ap.Location.Longitude() > eastWestSplitLongitude {
				east = append(east, icao)
			} else {
				west = append(west, icao)
			}
		}
	}
	return
}

// NorthSouth partitions the candidate airports about the split latitude.
func (g *GeoIndex) NorthSouth(candidates []string) (north, south []string) {
	if candidates == nil {
		candidates = g.sorted
	}
	for _, icao := range candidates {
		if ap, ok := g.airports[icao]; ok {
			if ap.Location.Latitude() > northSouthSplitLatitude {
				north = append(north, icao)
			} else {
				south = append(south, icao)
			}
		}
	}
	return
}
