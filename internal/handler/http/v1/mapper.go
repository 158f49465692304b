package v1

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shenikar/disaster_connect/internal/markers"
	"github.com/shenikar/disaster_connect/internal/models"
	"github.com/shenikar/disaster_connect/internal/query"
)

// radiusGlobal - значение radius, отключающее фильтр по расстоянию наравне с -1
const radiusGlobal = "global"

var errInvalidRadius = errors.New("invalid radius")

// DTOToIncidentDraft преобразует запрос в черновик
func DTOToIncidentDraft(dto CreateIncidentRequest) models.IncidentDraft {
	return models.IncidentDraft{
		Title:       dto.Title,
		Description: dto.Description,
		Type:        models.IncidentType(dto.Type),
		Severity:    models.Severity(dto.Severity),
		Location:    locationFromDTO(dto.Location),
		ImageURL:    dto.ImageURL,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для карточки ленты
func ModelToIncidentResponse(model models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Type:        string(model.Type),
		Severity:    string(model.Severity),
		Location:    locationToDTO(model.Location),
		Label:       model.Location.Label(models.CardPrecision),
		Color:       markers.ColorFor(model.Severity),
		ImageURL:    model.ImageURL,
		ReportedBy:  model.ReportedBy,
		Timestamp:   model.Timestamp,
		Verified:    model.Verified,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}

// ModelToStatsResponse преобразует сводку хранилища
func ModelToStatsResponse(stats models.IncidentStats) StatsResponse {
	resp := StatsResponse{
		Total:      stats.Total,
		Verified:   stats.Verified,
		ByType:     make(map[string]int, len(stats.ByType)),
		BySeverity: make(map[string]int, len(stats.BySeverity)),
	}
	for k, v := range stats.ByType {
		resp.ByType[string(k)] = v
	}
	for k, v := range stats.BySeverity {
		resp.BySeverity[string(k)] = v
	}
	return resp
}

// FeedQueryToParams собирает параметры фильтрации. Пустой radius дает defaultRadiusKm,
// "-1" и "global" - глобальный режим. Ошибка возвращается только для нечислового radius.
func FeedQueryToParams(q FeedQuery, defaultRadiusKm float64) (query.Params, error) {
	params := query.Params{
		SearchTerm:   q.Q,
		Radius:       query.RadiusFromKm(defaultRadiusKm),
		IncidentType: q.Type,
		SortBy:       query.SortBy(q.Sort),
	}
	if params.IncidentType == "" {
		params.IncidentType = query.AllTypes
	}
	if params.SortBy == "" {
		params.SortBy = query.SortRecent
	}

	switch raw := strings.TrimSpace(q.Radius); {
	case raw == "":
	case strings.EqualFold(raw, radiusGlobal):
		params.Radius = query.Unbounded()
	default:
		km, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return query.Params{}, errInvalidRadius
		}
		params.Radius = query.RadiusFromKm(km)
	}
	return params, nil
}

// UserLocation разбирает lat/lng. Отсутствующие, нечисловые или вне диапазона значения
// означают, что геолокация недоступна.
func UserLocation(validate *validator.Validate, lat, lng string) *models.Coordinates {
	if lat == "" || lng == "" {
		return nil
	}
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil
	}
	ln, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return nil
	}
	if validate.Var(la, "latitude") != nil || validate.Var(ln, "longitude") != nil {
		return nil
	}
	return &models.Coordinates{Lat: la, Lng: ln}
}

func locationFromDTO(dto LocationDTO) models.Location {
	return models.Location{Lat: dto.Lat, Lng: dto.Lng, Address: dto.Address}
}

func locationToDTO(l models.Location) LocationDTO {
	return LocationDTO{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}
