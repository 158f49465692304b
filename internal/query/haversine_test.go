package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shenikar/disaster_connect/internal/models"
)

func TestDistance_SanFranciscoToLosAngeles(t *testing.T) {
	assert.Equal(t, 559.1205770615533, Distance(sanFrancisco, losAngeles))
}

// Значения посчитаны формулой веб-клиента в Node.js; сравнение точное.
func TestDistance_MatchesWebClientBitForBit(t *testing.T) {
	tests := []struct {
		from, to models.Coordinates
		want     float64
	}{
		{models.Coordinates{Lat: 27.9277, Lng: -70.2668}, models.Coordinates{Lat: 23.847, Lng: 178.5172}, 10665.486617743696},
		{models.Coordinates{Lat: 86.7948, Lng: 167.3128}, models.Coordinates{Lat: 27.7061, Lng: 41.6026}, 7138.115599807999},
		{models.Coordinates{Lat: 89.5781, Lng: 178.449}, models.Coordinates{Lat: 61.2388, Lng: 74.8115}, 3209.456769150719},
		{models.Coordinates{Lat: -76.8531, Lng: 46.6038}, models.Coordinates{Lat: 50.132, Lng: -82.8808}, 16362.59811626462},
		{models.Coordinates{Lat: -55.6768, Lng: 83.4819}, models.Coordinates{Lat: -66.4259, Lng: 51.7374}, 2049.172828907216},
		{models.Coordinates{Lat: -83.0346, Lng: 166.5653}, models.Coordinates{Lat: -47.0867, Lng: 73.6486}, 4860.962540663199},
		{models.Coordinates{Lat: -26.6699, Lng: 66.6525}, models.Coordinates{Lat: 72.1505, Lng: 133.5965}, 12082.591264184686},
		{models.Coordinates{Lat: 23.3936, Lng: 55.8155}, models.Coordinates{Lat: 55.3293, Lng: 165.0458}, 9018.732478925216},
		{models.Coordinates{Lat: -22.1755, Lng: 24.7731}, models.Coordinates{Lat: 68.2777, Lng: 106.8362}, 11970.903176945942},
		{models.Coordinates{Lat: 39.9484, Lng: 114.6044}, models.Coordinates{Lat: 25.4909, Lng: 78.3583}, 3718.841380985607},
		{models.Coordinates{Lat: 80.2345, Lng: -2.6707}, models.Coordinates{Lat: 80.8478, Lng: -149.0315}, 2012.8884039779207},
		{models.Coordinates{Lat: -52.5169, Lng: 126.2776}, models.Coordinates{Lat: 84.3193, Lng: 8.7213}, 16104.969900066471},
		{models.Coordinates{Lat: -17.8949, Lng: 108.3847}, models.Coordinates{Lat: 11.316, Lng: -3.2254}, 12656.807833045668},
		{models.Coordinates{Lat: 34.3776, Lng: -156.2759}, models.Coordinates{Lat: 6.9688, Lng: -31.0413}, 12658.063198568283},
		{models.Coordinates{Lat: 76.5487, Lng: -133.3939}, models.Coordinates{Lat: 50.272, Lng: -171.7971}, 3355.213103708139},
		{models.Coordinates{Lat: -55.0608, Lng: -98.1866}, models.Coordinates{Lat: 33.6661, Lng: -64.0504}, 10389.437305135285},
		{models.Coordinates{Lat: -67.899, Lng: 3.7689}, models.Coordinates{Lat: -44.9003, Lng: -108.8176}, 6284.701991515495},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.from, tt.to), "%v -> %v", tt.from, tt.to)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	points := []models.Coordinates{
		sanFrancisco,
		losAngeles,
		{Lat: 25.7617, Lng: -80.1918},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 0, Lng: 179.9},
		{Lat: 0, Lng: -179.9},
	}

	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, Distance(a, b), Distance(b, a), "%v <-> %v", a, b)
		}
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Distance(sanFrancisco, sanFrancisco))
}

func TestDistance_OneDegreeOfLongitudeAtEquator(t *testing.T) {
	d := Distance(models.Coordinates{}, models.Coordinates{Lng: 1})
	assert.InDelta(t, 111.1949, d, 0.0001)
}
