// aviation/aviation.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"github.com/mmp/skedgen/math"
)

// Crew positions as the downstream scheduler names them.
const (
	PositionPIC = "PIC"
	PositionSIC = "SIC"
	PositionFA  = "FA"
)

// Activity types shared by requests, legs, and crew activities.
const (
	ActivityRevenueFlight = "OPERATE_REVENUE_FLIGHT"
	ActivityMaintenance   = "MAINTENANCE"
	ActivityRest          = "REST"
)

const (
	CrewModelNoCrew       = "NO_CREW"
	MxTypeWeatherGrounded = "WEATHER_GROUNDED"
)

// AircraftTypes is the fixed fleet-type catalog; tails and requests draw
// uniformly from it.
var AircraftTypes = []string{
	"CL-650S",
	"CE-700",
	"CL-350S",
	"CE-680AS",
	"EMB-545-MOD",
	"GL5000S",
	"CE-680",
	"CE-560XLS",
	"EMB-505S",
	"EMB-505E",
	"GL6000S",
	"GL7500",
	"GL5500",
}

// LargeAircraftTypes are the types whose revenue flights may require a
// flight attendant in addition to the two pilots.
var LargeAircraftTypes = map[string]bool{
	"CL-650S": true,
	"GL5000S": true,
	"GL5500":  true,
	"GL6000S": true,
	"GL7500":  true,
}

// Hubs gives the three fixed hub coordinates that geographically-dense
// scenarios anchor demand around.
var Hubs = map[string]math.Point2LL{
	"KTEB": {-74.0608, 40.85},
	"KPBI": {-80.0956, 26.6831},
	"KIAD": {-77.4597, 38.9472},
}
