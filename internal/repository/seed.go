package repository

import (
	"time"

	"github.com/shenikar/disaster_connect/internal/models"
)

// SeedIncidents возвращает демонстрационные инциденты, время которых отсчитывается от now
func SeedIncidents(now time.Time) []models.Incident {
	return []models.Incident{
		{
			ID:          "1",
			Title:       "Flash Flooding on Main Street",
			Description: "Several blocks of Main Street are underwater after heavy rain. Cars are stuck and residents are evacuating.",
			Type:        models.IncidentTypeFlood,
			Severity:    models.SeverityHigh,
			Location:    models.Location{Lat: 37.7749, Lng: -122.4194, Address: "Main Street, San Francisco, CA"},
			ImageURL:    "https://images.unsplash.com/photo-1618624103603-4c7607641b27?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=300&q=80",
			ReportedBy:  "user123",
			Timestamp:   now.Add(-30 * time.Minute),
			Verified:    true,
		},
		{
			ID:          "2",
			Title:       "Wildfire Approaching Southern Hills",
			Description: "A fast-moving wildfire is approaching the Southern Hills neighborhood. Evacuation orders are in place.",
			Type:        models.IncidentTypeFire,
			Severity:    models.SeverityHigh,
			Location:    models.Location{Lat: 34.0522, Lng: -118.2437, Address: "Southern Hills, Los Angeles, CA"},
			ImageURL:    "https://images.unsplash.com/photo-1602010053227-5e8c145ea4e1?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=300&q=80",
			ReportedBy:  "user456",
			Timestamp:   now.Add(-2 * time.Hour),
			Verified:    true,
		},
		{
			ID:          "3",
			Title:       "Minor Earthquake Reported",
			Description: "A 3.5 magnitude earthquake was felt in the downtown area. No damage has been reported yet.",
			Type:        models.IncidentTypeEarthquake,
			Severity:    models.SeverityLow,
			Location:    models.Location{Lat: 37.7749, Lng: -122.4194, Address: "Downtown San Francisco, CA"},
			ReportedBy:  "user789",
			Timestamp:   now.Add(-5 * time.Hour),
			Verified:    false,
		},
		{
			ID:          "4",
			Title:       "Hurricane Warning Issued for Coastal Areas",
			Description: "A category 3 hurricane is expected to make landfall within 24 hours. Residents are advised to evacuate immediately.",
			Type:        models.IncidentTypeHurricane,
			Severity:    models.SeverityHigh,
			Location:    models.Location{Lat: 25.7617, Lng: -80.1918, Address: "Miami Beach, FL"},
			ImageURL:    "https://images.unsplash.com/photo-1569282153428-3b34a71a0638?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=300&q=80",
			ReportedBy:  "user101",
			Timestamp:   now.Add(-1 * time.Hour),
			Verified:    true,
		},
		{
			ID:          "5",
			Title:       "Landslide Blocks Mountain Highway",
			Description: "A landslide has blocked both lanes of the mountain highway. No injuries reported but several vehicles are stranded.",
			Type:        models.IncidentTypeLandslide,
			Severity:    models.SeverityMedium,
			Location:    models.Location{Lat: 39.7392, Lng: -104.9903, Address: "Mountain Highway 9, Denver, CO"},
			ImageURL:    "https://images.unsplash.com/photo-1626335500758-1f538def9ef3?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=300&q=80",
			ReportedBy:  "user202",
			Timestamp:   now.Add(-8 * time.Hour),
			Verified:    true,
		},
		{
			ID:          "6",
			Title:       "Tornado Touches Down in Rural Area",
			Description: "A tornado has been reported in the rural farmlands. Some property damage has occurred but no casualties reported yet.",
			Type:        models.IncidentTypeTornado,
			Severity:    models.SeverityMedium,
			Location:    models.Location{Lat: 41.8781, Lng: -87.6298, Address: "Rural Township, IL"},
			ReportedBy:  "user303",
			Timestamp:   now.Add(-3 * time.Hour),
			Verified:    false,
		},
	}
}
