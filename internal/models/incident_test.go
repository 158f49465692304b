package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRank(t *testing.T) {
	assert.Equal(t, 3, SeverityHigh.Rank())
	assert.Equal(t, 2, SeverityMedium.Rank())
	assert.Equal(t, 1, SeverityLow.Rank())
	assert.Equal(t, 0, Severity("critical").Rank())
	assert.False(t, Severity("").Valid())
}

func TestIncidentTypeValid(t *testing.T) {
	for _, it := range IncidentTypes {
		assert.True(t, it.Valid(), it)
	}
	assert.False(t, IncidentType("volcano").Valid())
	assert.False(t, IncidentType("all").Valid())
}

func TestLocationLabel(t *testing.T) {
	t.Run("address wins", func(t *testing.T) {
		l := Location{Lat: 37.7749, Lng: -122.4194, Address: "Main Street, San Francisco, CA"}
		assert.Equal(t, "Main Street, San Francisco, CA", l.Label(CardPrecision))
	})

	t.Run("card fallback", func(t *testing.T) {
		l := Location{Lat: 37.7749, Lng: -122.4194}
		assert.Equal(t, "37.77, -122.42", l.Label(CardPrecision))
	})

	t.Run("map fallback", func(t *testing.T) {
		l := Location{Lat: 37.7749, Lng: -122.4194}
		assert.Equal(t, "37.7749, -122.4194", l.Label(MapPrecision))
	})
}

func TestLocationIsSet(t *testing.T) {
	assert.False(t, Location{}.IsSet())
	assert.True(t, Location{Lat: 0, Lng: 12.5}.IsSet())
	assert.True(t, Location{Lat: -1}.IsSet())
}
