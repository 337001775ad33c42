// scenario/ids_test.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import "testing"

func TestIDAllocator(t *testing.T) {
	a := MakeIDAllocator()

	if id := a.Next(IDTail); id != 1000000 {
		t.Errorf("first tail id %d", id)
	}
	if id := a.Next(IDTail); id != 1000001 {
		t.Errorf("second tail id %d", id)
	}

	// Allocations in one category don't advance the others.
	if id := a.Next(IDFlightRequest); id != 50001 {
		t.Errorf("first flight request id %d", id)
	}
	if id := a.Next(IDTail); id != 1000002 {
		t.Errorf("third tail id %d", id)
	}

	if id := a.Peek(IDGroundingLeg); id != 50000000 {
		t.Errorf("peeked grounding leg id %d", id)
	}
	if id := a.Peek(IDGroundingLeg); id != 50000000 {
		t.Errorf("Peek advanced the allocator: %d", id)
	}
}

func TestIDAllocatorBases(t *testing.T) {
	a := MakeIDAllocator()
	for cat, base := range map[IDCategory]int{
		IDTail:               1000000,
		IDFlightRequest:      50001,
		IDMaintenanceRequest: 700000,
		IDEventRequest:       900000,
		IDRevenueLeg:         10000000,
		IDGroundingLeg:       50000000,
		IDBaseCrew:           100000,
		IDFACrew:             200000,
		IDPartnerCrew:        900000,
	} {
		if id := a.Next(cat); id != base {
			t.Errorf("category %d: first id %d, expected %d", cat, id, base)
		}
	}
}

func TestIDAllocatorIndependence(t *testing.T) {
	// Each run owns an allocator; two allocators must hand out identical
	// sequences.
	a, b := MakeIDAllocator(), MakeIDAllocator()
	for range 10 {
		a.Next(IDRevenueLeg)
	}
	if got, want := b.Next(IDRevenueLeg), 10000000; got != want {
		t.Errorf("fresh allocator returned %d, expected %d", got, want)
	}
}
