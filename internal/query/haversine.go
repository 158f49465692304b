package query

import (
	"math"

	"github.com/shenikar/disaster_connect/internal/models"
)

// EarthRadiusKm - радиус Земли, используемый формулой гаверсинусов
const EarthRadiusKm = 6371.0

// radPerDeg вычисляется во время выполнения: π/180 в float64, а не точная константа.
var radPerDeg = func() float64 {
	p := math.Pi
	return p / 180
}()

func deg2rad(deg float64) float64 {
	return deg * radPerDeg
}

// Distance возвращает расстояние по дуге большого круга между точками в километрах.
// Порядок операций и тригонометрия повторяют формулу веб-клиента до бита.
func Distance(from, to models.Coordinates) float64 {
	dLat := deg2rad(to.Lat - from.Lat)
	dLon := deg2rad(to.Lng - from.Lng)

	sinLat := sin(dLat / 2)
	sinLon := sin(dLon / 2)

	a := float64(sinLat*sinLat) +
		float64(float64(float64(cos(deg2rad(from.Lat))*cos(deg2rad(to.Lat)))*sinLon)*sinLon)
	c := 2 * atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
