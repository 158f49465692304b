// Package query отбирает и упорядочивает инциденты для ленты и карты.
//
// Query - чистая функция: исходный срез не меняется, сортируется копия.
package query

import (
	"sort"
	"strings"

	"github.com/shenikar/disaster_connect/internal/models"
)

// AllTypes отключает фильтр по типу
const AllTypes = "all"

// DefaultRadiusKm - радиус ленты по умолчанию
const DefaultRadiusKm = 50.0

// SortBy - порядок выдачи
type SortBy string

const (
	SortRecent   SortBy = "recent"
	SortSeverity SortBy = "severity"
)

// Known сообщает, поддерживается ли порядок. Неизвестный порядок оставляет выдачу как есть.
func (s SortBy) Known() bool {
	return s == SortRecent || s == SortSeverity
}

// RadiusFilter - ограничение по расстоянию: либо Bounded(km), либо Unbounded (глобальный режим)
type RadiusFilter struct {
	bounded bool
	km      float64
}

// Bounded ограничивает выдачу радиусом km включительно
func Bounded(km float64) RadiusFilter {
	return RadiusFilter{bounded: true, km: km}
}

// Unbounded отключает фильтр по расстоянию
func Unbounded() RadiusFilter {
	return RadiusFilter{}
}

// RadiusFromKm переводит значение с клиента: -1 означает глобальный режим
func RadiusFromKm(km float64) RadiusFilter {
	if km == -1 {
		return Unbounded()
	}
	return Bounded(km)
}

// Km возвращает радиус и признак ограничения
func (r RadiusFilter) Km() (float64, bool) {
	return r.km, r.bounded
}

// IsUnbounded сообщает о глобальном режиме
func (r RadiusFilter) IsUnbounded() bool {
	return !r.bounded
}

// Params - параметры фильтрации, пересобираются при каждом запросе
type Params struct {
	SearchTerm   string
	Radius       RadiusFilter
	IncidentType string
	SortBy       SortBy
}

// DefaultParams - состояние фильтров ленты при открытии
func DefaultParams() Params {
	return Params{
		Radius:       Bounded(DefaultRadiusKm),
		IncidentType: AllTypes,
		SortBy:       SortRecent,
	}
}

// Query возвращает подмножество инцидентов, прошедших все три фильтра, в порядке p.SortBy.
// userLocation == nil означает, что геолокация недоступна и радиус не применяется.
func Query(incidents []models.Incident, userLocation *models.Coordinates, p Params) []models.Incident {
	term := strings.ToLower(p.SearchTerm)

	result := make([]models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if matchesSearch(incident, term) &&
			matchesType(incident, p.IncidentType) &&
			matchesRadius(incident, userLocation, p.Radius) {
			result = append(result, incident)
		}
	}

	sortIncidents(result, p.SortBy)
	return result
}

func matchesSearch(incident models.Incident, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	return strings.Contains(strings.ToLower(incident.Title), lowerTerm) ||
		strings.Contains(strings.ToLower(incident.Description), lowerTerm)
}

func matchesType(incident models.Incident, incidentType string) bool {
	return incidentType == AllTypes || string(incident.Type) == incidentType
}

func matchesRadius(incident models.Incident, userLocation *models.Coordinates, radius RadiusFilter) bool {
	km, bounded := radius.Km()
	if userLocation == nil || !bounded {
		return true
	}
	return Distance(*userLocation, incident.Location.Coordinates()) <= km
}

// sortIncidents сортирует на месте устойчиво.
// При равной срочности новее идет первым; неизвестный порядок оставляет выдачу как есть.
func sortIncidents(incidents []models.Incident, by SortBy) {
	switch by {
	case SortRecent:
		sort.SliceStable(incidents, func(i, j int) bool {
			return incidents[i].Timestamp.After(incidents[j].Timestamp)
		})
	case SortSeverity:
		sort.SliceStable(incidents, func(i, j int) bool {
			ri, rj := incidents[i].Severity.Rank(), incidents[j].Severity.Rank()
			if ri != rj {
				return ri > rj
			}
			return incidents[i].Timestamp.After(incidents[j].Timestamp)
		})
	}
}
