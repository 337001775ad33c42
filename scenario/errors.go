// scenario/errors.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"errors"
)

var (
	ErrAirportPoolExhausted = errors.New("Airport pool has too few airports to generate a scenario")
	ErrNoDomesticAirports   = errors.New("No domestic airports available for disruption epicenter")
	ErrNoNearbyAirport      = errors.New("No airport within pairing radius of crew location")
)
