// scenario/crew.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"time"

	av "github.com/mmp/skedgen/aviation"
	"github.com/mmp/skedgen/rand"
)

const (
	minRosterDays = 5
	maxRosterDays = 8
	// A duty tour ends this long after the last full roster day: crew get
	// the following morning to reposition before the window closes.
	tourTailBuffer = 13*time.Hour - time.Minute

	// Fraction of additional flight-attendant-qualified crew on top of the
	// base roster.
	faCrewFraction = 0.1
	// Probability that a crew member is currently at their domicile.
	atDomicileProbability = 0.9

	minQualifiedTypes = 1
	maxQualifiedTypes = 4
)

// generateCrewRoster produces the base crew plus the additional
// flight-attendant-qualified crew, in disjoint identifier ranges.
func (g *Generator) generateCrewRoster() {
	base := g.config.NumBaseCrew()
	for range base {
		g.crew = append(g.crew, g.makeCrewmember(IDBaseCrew, false))
	}
	for range int(float32(base) * faCrewFraction) {
		g.crew = append(g.crew, g.makeCrewmember(IDFACrew, true))
	}
	g.lg.Info("Generated crew roster", "crew", len(g.crew), "base", base)
}

func (g *Generator) makeCrewmember(cat IDCategory, fa bool) Crewmember {
	rosterDays := minRosterDays + g.r.Intn(maxRosterDays-minRosterDays+1)

	// The tour may begin anywhere from a full roster length before the
	// scenario start to the end of the window after it, so duty windows
	// intentionally straddle the horizon boundary.
	spanMinutes := (rosterDays + g.config.TimeWindowDays) * 24 * 60
	tourStart := g.config.StartTime.
		Add(-time.Duration(rosterDays) * 24 * time.Hour).
		Add(time.Duration(g.r.Intn(spanMinutes+1)) * time.Minute)
	tourEnd := tourStart.Add(time.Duration(rosterDays)*24*time.Hour + tourTailBuffer)

	domicile := rand.SampleSlice(g.r, g.pool)
	current := domicile
	if g.r.Float32() >= atDomicileProbability {
		for current == domicile {
			current = rand.SampleSlice(g.r, g.pool)
		}
	}

	return Crewmember{
		CrewmemberID:      g.ids.Next(cat),
		IsFlightAttendant: fa,
		CurrentLocation:   current,
		DomicileAirport:   domicile,
		TourStartTime:     tourStart,
		TourEndTime:       tourEnd,
		Qualifications:    g.makeQualifications(),
	}
}

// makeQualifications samples 1-4 aircraft types and expands each into a PIC
// record with landing currency dates plus an SIC record.
func (g *Generator) makeQualifications() []Qualification {
	n := minQualifiedTypes + g.r.Intn(maxQualifiedTypes-minQualifiedTypes+1)
	var quals []Qualification
	for _, typeName := range rand.SampleDistinct(g.r, av.AircraftTypes, n) {
		day := g.randomCurrencyExpiration()
		night := g.randomCurrencyExpiration()
		quals = append(quals,
			Qualification{
				AircraftTypeName:               typeName,
				PositionInCrew:                 av.PositionPIC,
				DayLandingCurrencyExpiration:   &day,
				NightLandingCurrencyExpiration: &night,
			},
			Qualification{
				AircraftTypeName: typeName,
				PositionInCrew:   av.PositionSIC,
			})
	}
	return quals
}

func (g *Generator) randomCurrencyExpiration() time.Time {
	return g.config.StartTime.AddDate(0, 0, 60+g.r.Intn(300))
}
