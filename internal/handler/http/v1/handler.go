package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_connect/internal/config"
	"github.com/shenikar/disaster_connect/internal/report"
	"github.com/shenikar/disaster_connect/internal/repository"
	"github.com/shenikar/disaster_connect/internal/service"
)

// ContentTypeGeoJSON - тип ответа слоя меток
const ContentTypeGeoJSON = "application/geo+json"

type Handler struct {
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// requestLog добавляет к записи метод хэндлера и request id
func (h *Handler) requestLog(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": c.GetString(requestIDKey),
	})
}

// @Summary Submit an incident report
// @Description Validates the report the same way the wizard does and stores it. New reports are unverified.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.requestLog(c, "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	incident, err := h.incidentService.ReportIncident(c.Request.Context(), DTOToIncidentDraft(input))
	if err != nil {
		var vErr *report.ValidationError
		if errors.As(err, &vErr) {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "step": int(vErr.Step)})
			return
		}
		log.WithError(err).Error("Failed to report incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get the incident feed
// @Description Filters incidents by text, type and distance from the user, then sorts them.
// @Tags Incidents
// @Produce json
// @Param q query string false "Case-insensitive search in title and description"
// @Param type query string false "Incident type or all" default(all)
// @Param radius query string false "Radius in km; -1 or global disables the filter" default(50)
// @Param sort query string false "recent or severity" default(recent)
// @Param lat query number false "User latitude"
// @Param lng query number false "User longitude"
// @Success 200 {object} IncidentListResponse
// @Failure 400 {object} map[string]string "Invalid radius"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.requestLog(c, "listIncidents")

	var q FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	params, err := FeedQueryToParams(q, h.cfg.DefaultRadiusKm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incidents, err := h.incidentService.QueryIncidents(c.Request.Context(), UserLocation(h.validate, q.Lat, q.Lng), params)
	if err != nil {
		log.WithError(err).Error("Failed to query incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, IncidentListResponse{
		Count:     len(incidents),
		Incidents: ModelsToIncidentResponses(incidents),
	})
}

// @Summary Get the most recent incidents
// @Description Newest reports first, regardless of filters.
// @Tags Incidents
// @Produce json
// @Param limit query int false "Number of incidents" default(3)
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/recent [get]
func (h *Handler) recentIncidents(c *gin.Context) {
	log := h.requestLog(c, "recentIncidents")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultRecentLimit)))

	incidents, err := h.incidentService.RecentIncidents(c.Request.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to get recent incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get map markers
// @Description GeoJSON FeatureCollection of the filtered incidents, colored by severity.
// @Tags Map
// @Produce application/geo+json
// @Param q query string false "Case-insensitive search in title and description"
// @Param type query string false "Incident type or all" default(all)
// @Param radius query string false "Radius in km; -1 or global disables the filter" default(50)
// @Param sort query string false "recent or severity" default(recent)
// @Param lat query number false "User latitude"
// @Param lng query number false "User longitude"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid radius"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/markers [get]
func (h *Handler) incidentMarkers(c *gin.Context) {
	log := h.requestLog(c, "incidentMarkers")

	var q FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	params, err := FeedQueryToParams(q, h.cfg.DefaultRadiusKm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fc, err := h.incidentService.MapMarkers(c.Request.Context(), UserLocation(h.validate, q.Lat, q.Lng), params)
	if err != nil {
		log.WithError(err).Error("Failed to build markers in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	body, err := json.Marshal(fc)
	if err != nil {
		log.WithError(err).Error("Failed to marshal feature collection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, ContentTypeGeoJSON, body)
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.requestLog(c, "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrIncidentNotFound) {
			log.WithError(err).Warn("Incident not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to get incident from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get incident statistics
// @Description Totals by type and severity.
// @Tags Incidents
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.requestLog(c, "getStats")

	stats, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Validate a wizard step
// @Description Runs the local validation of one report wizard step (1 details, 2 classification, 3 location, 4 review).
// @Tags Reports
// @Accept json
// @Produce json
// @Param step path int true "Wizard step"
// @Param incident body CreateIncidentRequest true "Report draft"
// @Success 200 {object} StepValidationResponse
// @Failure 400 {object} StepValidationResponse "Step is not complete"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/steps/{step}/validate [post]
func (h *Handler) validateStep(c *gin.Context) {
	log := h.requestLog(c, "validateStep")

	step, ok := stepParam(c)
	if !ok {
		return
	}

	var input CreateIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	next, err := h.incidentService.AdvanceStep(c.Request.Context(), step, DTOToIncidentDraft(input))
	if err != nil {
		var vErr *report.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, StepValidationResponse{
				Valid:    false,
				Step:     int(step),
				NextStep: int(next),
				Progress: report.Progress(next),
				Error:    vErr.Message,
			})
			return
		}
		log.WithError(err).Error("Failed to validate step in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StepValidationResponse{
		Valid:    true,
		Step:     int(step),
		NextStep: int(next),
		Progress: report.Progress(next),
	})
}

// @Summary Go back one wizard step
// @Description Returns the previous report wizard step. Nothing is validated.
// @Tags Reports
// @Produce json
// @Param step path int true "Wizard step"
// @Success 200 {object} StepResponse
// @Failure 400 {object} map[string]string "Invalid step"
// @Router /reports/steps/{step}/back [post]
func (h *Handler) previousStep(c *gin.Context) {
	step, ok := stepParam(c)
	if !ok {
		return
	}

	prev := h.incidentService.PreviousStep(step)
	c.JSON(http.StatusOK, StepResponse{Step: int(prev), Progress: report.Progress(prev)})
}

// stepParam разбирает номер шага из пути; на неизвестный шаг отвечает 400
func stepParam(c *gin.Context) (report.Step, bool) {
	n, err := strconv.Atoi(c.Param("step"))
	step := report.Step(n)
	if err != nil || !step.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid step"})
		return 0, false
	}
	return step, true
}

// @Summary Resolve the report location
// @Description Uses the user's coordinates when present, otherwise a fixed fallback address.
// @Tags Reports
// @Produce json
// @Param lat query number false "User latitude"
// @Param lng query number false "User longitude"
// @Success 200 {object} ResolvedLocationResponse
// @Router /reports/location [get]
func (h *Handler) resolveLocation(c *gin.Context) {
	coords := UserLocation(h.validate, c.Query("lat"), c.Query("lng"))
	location := report.ResolveLocation(coords)

	c.JSON(http.StatusOK, ResolvedLocationResponse{
		LocationDTO: locationToDTO(location),
		Fallback:    coords == nil,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
