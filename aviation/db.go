// aviation/db.go
// Copyright(c) 2025 skedgen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmp/skedgen/log"
	"github.com/mmp/skedgen/math"
	"github.com/mmp/skedgen/util"

	"github.com/klauspost/compress/zstd"
)

///////////////////////////////////////////////////////////////////////////
// StaticDatabase

// StaticDatabase holds the airport reference data consumed once at process
// start; it is read-only for the lifetime of the run.
type StaticDatabase struct {
	Airports   map[string]Airport
	USAirports []string // ICAO codes, sorted
}

type Airport struct {
	ICAO     string
	Location math.Point2LL
	Country  string
}

// staticRoutingData mirrors the layout of the reference document.
type staticRoutingData struct {
	StaticRoutingData struct {
		Airports []struct {
			ICAOCode  string   `json:"ICAOCode"`
			Latitude  *float64 `json:"Latitude"`
			Longitude *float64 `json:"Longitude"`
			CountryID string   `json:"CountryID"`
		} `json:"Airports"`
	} `json:"StaticRoutingData"`
}

// LoadStaticData reads the static routing data document at the given path,
// transparently decompressing it if it carries a .zst suffix. The parsed
// database is cached so that subsequent runs against an unchanged document
// skip the JSON decode.
func LoadStaticData(path string, lg *log.Logger) (*StaticDatabase, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	cachePath := "srd-" + filepath.Base(path) + ".cache"
	db := &StaticDatabase{}
	if wrote, err := util.CacheRetrieveObject(cachePath, db); err == nil && wrote.After(fi.ModTime()) {
		lg.Debugf("%s: loaded cached static data (%d airports)", path, len(db.Airports))
		return db, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	db, err = ParseStaticData(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := util.CacheStoreObject(cachePath, db); err != nil {
		lg.Warnf("%s: unable to cache static data: %v", cachePath, err)
	}

	lg.Info("Loaded static routing data",
		"path", path, "airports", len(db.Airports), "us_airports", len(db.USAirports))
	return db, nil
}

// ParseStaticData decodes a static routing data document. Airports without
// coordinates are dropped; the rest of the run only ever needs airports it
// can locate.
func ParseStaticData(text []byte) (*StaticDatabase, error) {
	var srd staticRoutingData
	if err := json.Unmarshal(text, &srd); err != nil {
		return nil, err
	}
	if len(srd.StaticRoutingData.Airports) == 0 {
		return nil, ErrNoAirportsInData
	}

	db := &StaticDatabase{Airports: make(map[string]Airport)}
	for _, a := range srd.StaticRoutingData.Airports {
		if a.Latitude == nil || a.Longitude == nil {
			continue
		}
		db.Airports[a.ICAOCode] = Airport{
			ICAO:     a.ICAOCode,
			Location: math.Point2LL{float32(*a.Longitude), float32(*a.Latitude)},
			Country:  a.CountryID,
		}
	}

	for _, icao := range util.SortedMapKeys(db.Airports) {
		if db.Airports[icao].Country == "US" {
			db.USAirports = append(db.USAirports, icao)
		}
	}

	return db, nil
}

func (db *StaticDatabase) LookupAirport(icao string) (Airport, bool) {
	ap, ok := db.Airports[icao]
	return ap, ok
}
