// scenario/ids.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

// IDCategory names one of the disjoint identifier ranges of the scenario
// document.
type IDCategory int

const (
	IDTail IDCategory = iota
	IDFlightRequest
	IDMaintenanceRequest
	IDEventRequest
	IDRevenueLeg
	IDGroundingLeg
	IDBaseCrew
	IDFACrew
	IDPartnerCrew
	numIDCategories
)

// Fixed base offsets partition the identifier space so that entities that
// share a document list (requests, legs, crew) can never collide. Request
// and crew identifiers are separate namespaces and may overlap.
var idBases = [numIDCategories]int{
	IDTail:               1000000,
	IDFlightRequest:      50001,
	IDMaintenanceRequest: 700000,
	IDEventRequest:       900000,
	IDRevenueLeg:         10000000,
	IDGroundingLeg:       50000000,
	IDBaseCrew:           100000,
	IDFACrew:             200000,
	IDPartnerCrew:        900000,
}

// IDAllocator hands out sequential identifiers per category. Each run owns
// its own allocator, so scenarios may be generated concurrently without
// corrupting identifier uniqueness.
type IDAllocator struct {
	next [numIDCategories]int
}

func MakeIDAllocator() *IDAllocator {
	return &IDAllocator{next: idBases}
}

func (a *IDAllocator) Next(c IDCategory) int {
	id := a.next[c]
	a.next[c]++
	return id
}

// Peek returns the identifier the next call to Next will return, without
// advancing.
func (a *IDAllocator) Peek(c IDCategory) int {
	return a.next[c]
}
