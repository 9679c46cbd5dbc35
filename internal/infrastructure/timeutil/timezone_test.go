package timeutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation_AirportZones(t *testing.T) {
	ClearLocationCache()

	for _, name := range []string{"UTC", "Asia/Ho_Chi_Minh", "Australia/Melbourne", "Europe/London"} {
		loc, err := GetLocation(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, loc.String())
	}
}

func TestGetLocation_Invalid(t *testing.T) {
	ClearLocationCache()

	loc, err := GetLocation("Invalid/Timezone")
	assert.Error(t, err)
	assert.Nil(t, loc)
	assert.Contains(t, err.Error(), "load timezone")
}

func TestGetLocation_Blank(t *testing.T) {
	for _, name := range []string{"", "   "} {
		loc, err := GetLocation(name)
		assert.ErrorIs(t, err, errEmptyZone)
		assert.Nil(t, loc)
	}
}

func TestGetLocation_Caching(t *testing.T) {
	ClearLocationCache()

	loc1, err := GetLocation("Asia/Tokyo")
	require.NoError(t, err)

	loc2, err := GetLocation("Asia/Tokyo")
	require.NoError(t, err)

	// Should be the exact same pointer
	assert.Same(t, loc1, loc2)
}

func TestGetLocation_ConcurrentAccess(t *testing.T) {
	ClearLocationCache()

	var wg sync.WaitGroup
	locations := []string{"UTC", "Asia/Jakarta", "Asia/Tokyo", "America/New_York", "Europe/London"}

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			loc, err := GetLocation(name)
			assert.NoError(t, err)
			assert.Equal(t, name, loc.String())
		}(locations[i%len(locations)])
	}

	wg.Wait()
}
