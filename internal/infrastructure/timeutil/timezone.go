package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	// Airport zone ids must resolve on hosts without a system zoneinfo database.
	_ "time/tzdata"
)

// errEmptyZone is returned for a blank zone id. time.LoadLocation would
// silently map it to UTC.
var errEmptyZone = errors.New("empty timezone id")

// zones caches airport zone ids (e.g. "Asia/Ho_Chi_Minh") by name.
var zones sync.Map

// GetLocation resolves an IANA zone id, caching the result.
func GetLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errEmptyZone
	}
	if loc, ok := zones.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}

	actual, _ := zones.LoadOrStore(name, loc)
	return actual.(*time.Location), nil
}

// ClearLocationCache empties the zone cache. Tests only.
func ClearLocationCache() {
	zones.Clear()
}
