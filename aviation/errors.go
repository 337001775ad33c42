// aviation/errors.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"errors"
)

var (
	ErrNoAirportsInData = errors.New("No airports in static routing data")
)
