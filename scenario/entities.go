// scenario/entities.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"time"
)

// The types in this file define the wire format of the scenario document;
// field names and nesting are a contract with the downstream scheduler and
// must not change. All timestamps are UTC and marshal as
// YYYY-MM-DDTHH:MM:SSZ.

type AllowedTailType struct {
	AircraftTypeName string
	Penalty          int
}

type Tail struct {
	TailNumber                                      string
	AircraftTypeName                                string
	OriginalAircraftTypeName                        string
	AvailableTime                                   time.Time
	CurrentLocation                                 string
	BeginTimeForNextMaintenanceAfterPlanningHorizon time.Time
	AssignedProperties                              []string
	MinutesLeftForNextMaintenance                   int
	CyclesLeftForNextMaintenance                    int
	UseAdditionalRouteTime                          bool
	IsVendor                                        bool
	AutoPilotInoperative                            bool
	TailCost                                        int
	TailBaseAirport                                 string
	TailLegCost                                     int
	ServiceRequested                                bool
	TailCostForFerry                                int
	TailCostForNonFerry                             int
	TailID                                          int `json:"tailId"`
	PaxSeats                                        int `json:"paxSeats"`
	LavSeats                                        int `json:"lavSeats"`
}

type RequiredCrewmemberPosition struct {
	PositionInCrew                 string
	CrewmemberRequiredProperties   []string
	CrewmemberRestrictedProperties []string
}

func makeRequiredPosition(position string) RequiredCrewmemberPosition {
	return RequiredCrewmemberPosition{
		PositionInCrew:                 position,
		CrewmemberRequiredProperties:   []string{},
		CrewmemberRestrictedProperties: []string{},
	}
}

// Request is either a revenue-flight request or a maintenance request,
// distinguished by ActivityType; requests are immutable once generated.
type Request struct {
	RequestID                   int
	ArrivalAirport              string
	DepartureAirport            string
	ActivityType                string
	RequestedTime               time.Time
	ServiceTime                 *int                         `json:"ServiceTime,omitempty"`
	SlidingTime                 *int                         `json:"SlidingTime,omitempty"`
	RequiredCrewmemberPositions []RequiredCrewmemberPosition `json:"RequiredCrewmemberPositions,omitempty"`
	AllowedTailTypes            []AllowedTailType
	RequestedAircraftTypeName   string `json:"requestedAircraftTypeName"`
	RequiredTailNumber          string `json:"RequiredTailNumber,omitempty"`
}

type AssignedCrewmember struct {
	CrewmemberID   int
	PositionInCrew string
}

// Leg is one scheduled segment for a specific tail. Locked legs fully
// occupy the tail for their duration; they are either weather groundings or
// crew-driven revenue flights. RequestID 0 marks a synthetic leg with no
// backing request.
type Leg struct {
	TailNumber          string
	LegID               int
	RequestID           int
	IsLocked            bool
	OriginAirport       string
	DestinationAirport  string
	StartTime           time.Time
	Duration            int // minutes
	ActivityType        string
	AssignedCrewmembers []AssignedCrewmember
	CrewModel           string `json:"CrewModel,omitempty"`
	MxType              string `json:"mxType,omitempty"`
}

// Qualification records one aircraft type/position a crew member may
// operate; PIC records also carry landing currency expirations.
type Qualification struct {
	AircraftTypeName               string
	PositionInCrew                 string
	DayLandingCurrencyExpiration   *time.Time `json:"DayLandingCurrencyExpiration,omitempty"`
	NightLandingCurrencyExpiration *time.Time `json:"NightLandingCurrencyExpiration,omitempty"`
}

type Crewmember struct {
	CrewmemberID      int
	IsFlightAttendant bool
	CurrentLocation   string
	DomicileAirport   string
	TourStartTime     time.Time
	TourEndTime       time.Time
	Qualifications    []Qualification
}

type CrewActivity struct {
	CrewmemberID       int
	ActivityType       string
	OriginAirport      string
	DestinationAirport string
	StartTime          time.Time
	Duration           int    // minutes
	TailNumber         string `json:"TailNumber,omitempty"`
	LegID              int    `json:"LegID,omitempty"`
	PositionInCrew     string `json:"PositionInCrew,omitempty"`
}

// CrewPair is an audit record of two crew members placed on one shared
// revenue leg.
type CrewPair struct {
	FirstCrewmemberID  int
	SecondCrewmemberID int
	LegID              int
}

type WeatherDisruption struct {
	Enabled          bool
	Epicenter        string `json:"Epicenter,omitempty"`
	AffectedAirports []string
}

type HorizonConfiguration struct {
	StartHorizon time.Time
	EndHorizon   time.Time
}

// Document is the full scenario consumed by the downstream scheduler.
type Document struct {
	Tails               []Tail
	FlightRequests      []Request
	MaintenanceRequests []Request
	Legs                []Leg
	Crewmembers         []Crewmember
	CrewActivities      []CrewActivity
	CrewFlyingTogether  []CrewPair
	Weather             WeatherDisruption
	Configuration       HorizonConfiguration
	Description         string
}
