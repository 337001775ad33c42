// math/math_test.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"
)

func TestSMDistance2LL(t *testing.T) {
	kteb := Point2LL{-74.0608, 40.85}
	kpbi := Point2LL{-80.0956, 26.6831}
	kiad := Point2LL{-77.4597, 38.9472}

	for _, p := range []Point2LL{kteb, kpbi, kiad} {
		if d := SMDistance2LL(p, p); d != 0 {
			t.Errorf("%s: distance to self %g, expected 0", p.DDString(), d)
		}
	}

	if d, dr := SMDistance2LL(kteb, kpbi), SMDistance2LL(kpbi, kteb); d != dr {
		t.Errorf("asymmetric distance: %g vs %g", d, dr)
	}

	// KTEB-KIAD is roughly 185 statute miles.
	if d := SMDistance2LL(kteb, kiad); d < 175 || d > 195 {
		t.Errorf("KTEB-KIAD distance %g, expected roughly 185", d)
	}
	// KTEB-KPBI is roughly 1030 statute miles.
	if d := SMDistance2LL(kteb, kpbi); d < 1000 || d > 1070 {
		t.Errorf("KTEB-KPBI distance %g, expected roughly 1030", d)
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(3, 0, 2); v != 2 {
		t.Errorf("Clamp(3,0,2) = %d", v)
	}
	if v := Clamp(-1, 0, 2); v != 0 {
		t.Errorf("Clamp(-1,0,2) = %d", v)
	}
	if v := Clamp(1, 0, 2); v != 1 {
		t.Errorf("Clamp(1,0,2) = %d", v)
	}
}
