package v1

import (
	"time"
)

// LocationDTO - место инцидента
// @Description Место инцидента; address необязателен
type LocationDTO struct {
	Lat     float64 `json:"lat" example:"37.7749"`
	Lng     float64 `json:"lng" example:"-122.4194"`
	Address string  `json:"address,omitempty" example:"Main Street, San Francisco, CA"`
}

// CreateIncidentRequest DTO для отправки сообщения об инциденте
// @Description DTO для отправки сообщения об инциденте
type CreateIncidentRequest struct {
	Title       string      `json:"title" example:"Flash Flooding on Main Street"`
	Description string      `json:"description" example:"Several blocks are underwater"`
	Type        string      `json:"type" example:"flood"`
	Severity    string      `json:"severity" example:"high"`
	Location    LocationDTO `json:"location"`
	ImageURL    string      `json:"image_url,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Severity    string      `json:"severity"`
	Location    LocationDTO `json:"location"`
	Label       string      `json:"label"`
	Color       string      `json:"color"`
	ImageURL    string      `json:"image_url,omitempty"`
	ReportedBy  string      `json:"reported_by"`
	Timestamp   time.Time   `json:"timestamp"`
	Verified    bool        `json:"verified"`
}

// IncidentListResponse DTO для ленты инцидентов
// @Description DTO для ленты инцидентов
type IncidentListResponse struct {
	Count     int                `json:"count"`
	Incidents []IncidentResponse `json:"incidents"`
}

// FeedQuery - параметры фильтрации ленты и карты из строки запроса
type FeedQuery struct {
	Q      string `form:"q"`
	Type   string `form:"type"`
	Radius string `form:"radius"`
	Sort   string `form:"sort"`
	Lat    string `form:"lat"`
	Lng    string `form:"lng"`
}

// StepValidationResponse DTO для результата проверки шага мастера
// @Description DTO для результата проверки шага мастера
type StepValidationResponse struct {
	Valid    bool    `json:"valid"`
	Step     int     `json:"step"`
	NextStep int     `json:"next_step"`
	Progress float64 `json:"progress"`
	Error    string  `json:"error,omitempty"`
}

// StepResponse DTO для шага мастера после возврата назад
// @Description DTO для шага мастера после возврата назад
type StepResponse struct {
	Step     int     `json:"step"`
	Progress float64 `json:"progress"`
}

// ResolvedLocationResponse DTO для места, подставляемого в форму
// @Description DTO для места, подставляемого в форму
type ResolvedLocationResponse struct {
	LocationDTO
	Fallback bool `json:"fallback"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Total      int            `json:"total"`
	Verified   int            `json:"verified"`
	ByType     map[string]int `json:"by_type"`
	BySeverity map[string]int `json:"by_severity"`
}
