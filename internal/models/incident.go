package models

import (
	"fmt"
	"time"
)

// IncidentType - тип стихийного бедствия
type IncidentType string

const (
	IncidentTypeFlood      IncidentType = "flood"
	IncidentTypeFire       IncidentType = "fire"
	IncidentTypeEarthquake IncidentType = "earthquake"
	IncidentTypeHurricane  IncidentType = "hurricane"
	IncidentTypeTornado    IncidentType = "tornado"
	IncidentTypeLandslide  IncidentType = "landslide"
	IncidentTypeTsunami    IncidentType = "tsunami"
	IncidentTypeOther      IncidentType = "other"
)

// IncidentTypes перечисляет все допустимые типы в порядке отображения
var IncidentTypes = []IncidentType{
	IncidentTypeFlood,
	IncidentTypeFire,
	IncidentTypeEarthquake,
	IncidentTypeHurricane,
	IncidentTypeTornado,
	IncidentTypeLandslide,
	IncidentTypeTsunami,
	IncidentTypeOther,
}

// Valid сообщает, входит ли тип в перечисление
func (t IncidentType) Valid() bool {
	for _, known := range IncidentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Severity - уровень срочности инцидента
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Severities перечисляет уровни от низшего к высшему
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

// Rank возвращает порядковый вес: high=3, medium=2, low=1, неизвестный=0
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Valid сообщает, входит ли уровень в перечисление
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// Coordinates - точка на карте без адреса (например, местоположение пользователя)
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location - место инцидента
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// Точность координат при отсутствии адреса: карточка в ленте и окно на карте
const (
	CardPrecision = 2
	MapPrecision  = 4
)

// Coordinates возвращает точку без адреса
func (l Location) Coordinates() Coordinates {
	return Coordinates{Lat: l.Lat, Lng: l.Lng}
}

// IsSet сообщает, что координаты заданы. Точка (0,0) считается незаданной.
func (l Location) IsSet() bool {
	return l.Lat != 0 || l.Lng != 0
}

// Label возвращает адрес, а если его нет - координаты с заданной точностью
func (l Location) Label(precision int) string {
	if l.Address != "" {
		return l.Address
	}
	return fmt.Sprintf("%.*f, %.*f", precision, l.Lat, precision, l.Lng)
}

// Incident - сообщение о бедствии от пользователя
type Incident struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        IncidentType `json:"type"`
	Severity    Severity     `json:"severity"`
	Location    Location     `json:"location"`
	ImageURL    string       `json:"image_url,omitempty"`
	ReportedBy  string       `json:"reported_by"`
	Timestamp   time.Time    `json:"timestamp"`
	Verified    bool         `json:"verified"`
}

// IncidentDraft - данные формы отправки. ID, время, автора и флаг проверки назначает хранилище.
type IncidentDraft struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Type        IncidentType `json:"type" validate:"required,incident_type"`
	Severity    Severity     `json:"severity" validate:"required,severity"`
	Location    Location     `json:"location"`
	ImageURL    string       `json:"image_url,omitempty"`
}

// IncidentStats - сводка по хранилищу
type IncidentStats struct {
	Total      int                  `json:"total"`
	Verified   int                  `json:"verified"`
	ByType     map[IncidentType]int `json:"by_type"`
	BySeverity map[Severity]int     `json:"by_severity"`
}
