// scenario/config.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmp/skedgen/util"
)

// DOE factor values.
const (
	ScaleLow  = "low"
	ScaleMid  = "mid"
	ScaleHigh = "high"

	DistributionEast = "east"
	DistributionWest = "west"

	HubFlyOut = "fly_out"
	HubFlyIn  = "fly_in"
	HubFlyIO  = "fly_io"
)

// Config carries the DOE factors for one scenario run. The JSON tags match
// the factor names used in experiment definition files.
type Config struct {
	Area                           string    `json:"area"`
	ArrivalRate                    string    `json:"arrival_rate"`
	Substitutes                    int       `json:"substitutes"`
	TailScale                      string    `json:"tail_scale"`
	MaintenanceScale               string    `json:"maintenance_scale"`
	MaintenanceAirportDistribution string    `json:"maintenance_airport_distribution"`
	GeoDensity                     string    `json:"geo_density"`
	TimeWindowDays                 int       `json:"time_window_days"`
	Weather                        bool      `json:"weather"`
	Event                          bool      `json:"event"`
	MaintenanceCycle               string    `json:"maintenance_cycle"`
	CrewScale                      string    `json:"crew_scale"`
	StartTime                      time.Time `json:"start_time"`
	HubPattern                     string    `json:"hub_pattern"`

	// Seed selects reproducible generation; 0 (the default) reseeds from
	// the wall clock for every run.
	Seed int64 `json:"seed,omitempty"`
}

func (c *Config) Validate() error {
	lowHigh := func(factor, v string) error {
		if v != ScaleLow && v != ScaleHigh {
			return fmt.Errorf("%q: invalid %s; must be %q or %q", v, factor, ScaleLow, ScaleHigh)
		}
		return nil
	}

	if err := lowHigh("arrival_rate", c.ArrivalRate); err != nil {
		return err
	}
	if c.Substitutes != 0 && c.Substitutes != 1 {
		return fmt.Errorf("%d: invalid substitutes; must be 0 or 1", c.Substitutes)
	}
	if err := lowHigh("tail_scale", c.TailScale); err != nil {
		return err
	}
	if err := lowHigh("maintenance_scale", c.MaintenanceScale); err != nil {
		return err
	}
	if c.MaintenanceAirportDistribution != DistributionEast && c.MaintenanceAirportDistribution != DistributionWest {
		return fmt.Errorf("%q: invalid maintenance_airport_distribution; must be %q or %q",
			c.MaintenanceAirportDistribution, DistributionEast, DistributionWest)
	}
	if err := lowHigh("geo_density", c.GeoDensity); err != nil {
		return err
	}
	if c.TimeWindowDays < 1 {
		return fmt.Errorf("%d: invalid time_window_days; must be at least 1", c.TimeWindowDays)
	}
	if err := lowHigh("maintenance_cycle", c.MaintenanceCycle); err != nil {
		return err
	}
	if c.CrewScale != ScaleLow && c.CrewScale != ScaleMid && c.CrewScale != ScaleHigh {
		return fmt.Errorf("%q: invalid crew_scale; must be %q, %q, or %q", c.CrewScale, ScaleLow, ScaleMid, ScaleHigh)
	}
	if c.StartTime.IsZero() {
		return fmt.Errorf("start_time must be specified")
	}
	if c.HubPattern != HubFlyOut && c.HubPattern != HubFlyIn && c.HubPattern != HubFlyIO {
		return fmt.Errorf("%q: invalid hub_pattern; must be %q, %q, or %q", c.HubPattern, HubFlyOut, HubFlyIn, HubFlyIO)
	}
	return nil
}

func (c *Config) NumTails() int {
	return util.Select(c.TailScale == ScaleHigh, 1000, 500)
}

func (c *Config) NumBaseCrew() int {
	switch c.CrewScale {
	case ScaleHigh:
		return 2500
	case ScaleMid:
		return 2000
	default:
		return 1500
	}
}

// RequestsPerTailDay gives the number of baseline revenue requests
// generated per configured tail per planning day.
func (c *Config) RequestsPerTailDay() int {
	return util.Select(c.ArrivalRate == ScaleHigh, 4, 2)
}

// MaintenanceFraction gives maintenance requests per configured tail per
// planning day.
func (c *Config) MaintenanceFraction() float32 {
	return util.Select[float32](c.MaintenanceScale == ScaleHigh, 0.3, 0.1)
}

// MaintenanceRegime returns the inclusive ranges for tails'
// minutes-remaining and cycles-remaining maintenance counters.
func (c *Config) MaintenanceRegime() (minMinutes, maxMinutes, minCycles, maxCycles int) {
	if c.MaintenanceCycle == ScaleHigh {
		return 2000, 4000, 200, 400
	}
	return 200, 400, 20, 40
}

// Horizon returns the planning horizon: it opens a day before the scenario
// start time so that tails and crew can be positioned, and closes
// time_window_days after it.
func (c *Config) Horizon() util.TimeInterval {
	return util.MakeTimeInterval(
		c.StartTime.Add(-24*time.Hour),
		c.StartTime.Add(time.Duration(c.TimeWindowDays)*24*time.Hour))
}

// Filename encodes the varying DOE factors into the output filename for the
// run.
func (c *Config) Filename() string {
	b := func(v bool) string { return util.Select(v, "on", "off") }
	name := fmt.Sprintf("scenario_%s_tails-%s_arr-%s_sub-%d_geo-%s_mx-%s-%s_cyc-%s_crew-%s_win-%dd_wx-%s_ev-%s_%s.json",
		c.Area, c.TailScale, c.ArrivalRate, c.Substitutes, c.GeoDensity,
		c.MaintenanceScale, c.MaintenanceAirportDistribution, c.MaintenanceCycle,
		c.CrewScale, c.TimeWindowDays, b(c.Weather), b(c.Event), c.HubPattern)
	return strings.ReplaceAll(name, " ", "-")
}
