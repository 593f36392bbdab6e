package timezone

import (
	"sync"
	"time"

	// containers built from scratch ship without zoneinfo
	_ "time/tzdata"
)

// the government source publishes on NZ days, but the update runs are
// scheduled against a fixed reference zone so that container clocks on
// different hosts agree on when "05:00" is.
const DefaultName = "UTC"

var (
	lock     sync.RWMutex
	location = time.UTC
)

// Load swaps the reference location, an empty name keeps UTC.
func Load(name string) error {
	if name == "" {
		name = DefaultName
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	lock.Lock()
	location = loc
	lock.Unlock()
	return nil
}

func Location() *time.Location {
	lock.RLock()
	defer lock.RUnlock()
	return location
}

// force every wall clock reading into the reference location, otherwise
// <time.Time>.Hour()/Day() depend on whatever TZ the host happens to run with.
func Now() time.Time {
	return time.Now().In(Location())
}
