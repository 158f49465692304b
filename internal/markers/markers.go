// Package markers строит слой меток карты в формате GeoJSON.
package markers

import (
	"fmt"
	"math"
	"time"

	geojson "github.com/paulmach/go.geojson"

	"github.com/shenikar/disaster_connect/internal/models"
)

// SnippetLength - длина описания во всплывающем окне метки
const SnippetLength = 100

const iconURLFormat = "http://maps.google.com/mapfiles/ms/icons/%s-dot.png"

// Цвета меток по срочности
const (
	ColorRed    = "red"
	ColorOrange = "orange"
	ColorBlue   = "blue"
)

// ColorFor возвращает цвет метки: high - красный, medium - оранжевый, остальное - синий
func ColorFor(s models.Severity) string {
	switch s {
	case models.SeverityHigh:
		return ColorRed
	case models.SeverityMedium:
		return ColorOrange
	}
	return ColorBlue
}

// IconURL - значок метки для клиента карты
func IconURL(s models.Severity) string {
	return fmt.Sprintf(iconURLFormat, ColorFor(s))
}

// Snippet обрезает описание до SnippetLength символов и добавляет "..."
func Snippet(description string) string {
	runes := []rune(description)
	if len(runes) <= SnippetLength {
		return description
	}
	return string(runes[:SnippetLength]) + "..."
}

// Feature строит точку [lng, lat] со свойствами для окна метки
func Feature(incident models.Incident) *geojson.Feature {
	f := geojson.NewPointFeature([]float64{incident.Location.Lng, incident.Location.Lat})
	f.ID = incident.ID
	f.SetProperty("id", incident.ID)
	f.SetProperty("title", incident.Title)
	f.SetProperty("type", string(incident.Type))
	f.SetProperty("severity", string(incident.Severity))
	f.SetProperty("color", ColorFor(incident.Severity))
	f.SetProperty("icon", IconURL(incident.Severity))
	f.SetProperty("snippet", Snippet(incident.Description))
	f.SetProperty("label", incident.Location.Label(models.MapPrecision))
	f.SetProperty("timestamp", incident.Timestamp.UTC().Format(time.RFC3339))
	f.SetProperty("verified", incident.Verified)
	f.SetProperty("pulse", incident.Severity == models.SeverityHigh)
	return f
}

// FeatureCollection собирает метки в порядке выдачи.
// bbox [minLng, minLat, maxLng, maxLat] заполняется только для непустой коллекции.
func FeatureCollection(incidents []models.Incident) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if len(incidents) == 0 {
		return fc
	}

	minLng, minLat := math.Inf(1), math.Inf(1)
	maxLng, maxLat := math.Inf(-1), math.Inf(-1)
	for _, incident := range incidents {
		fc.AddFeature(Feature(incident))

		minLng = math.Min(minLng, incident.Location.Lng)
		minLat = math.Min(minLat, incident.Location.Lat)
		maxLng = math.Max(maxLng, incident.Location.Lng)
		maxLat = math.Max(maxLat, incident.Location.Lat)
	}
	fc.BoundingBox = []float64{minLng, minLat, maxLng, maxLat}
	return fc
}
