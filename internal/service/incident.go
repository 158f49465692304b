package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	geojson "github.com/paulmach/go.geojson"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_connect/internal/markers"
	"github.com/shenikar/disaster_connect/internal/models"
	"github.com/shenikar/disaster_connect/internal/observability"
	"github.com/shenikar/disaster_connect/internal/query"
	"github.com/shenikar/disaster_connect/internal/report"
	"github.com/shenikar/disaster_connect/internal/webhook"
)

//go:generate mockgen -source=incident.go -destination=mocks/incident_mock.go -package=mocks

// DefaultRecentLimit - число сообщений в блоке "Recent Incidents"
const DefaultRecentLimit = 3

// IncidentStore определяет контракт хранилища инцидентов
type IncidentStore interface {
	GetAll(ctx context.Context) ([]models.Incident, error)
	GetByID(ctx context.Context, id string) (models.Incident, error)
	Add(ctx context.Context, draft models.IncidentDraft) (models.Incident, error)
	Len() int
}

// IncidentService определяет контракт бизнес-логики: лента, карта и отправка сообщений
type IncidentService interface {
	ReportIncident(ctx context.Context, draft models.IncidentDraft) (models.Incident, error)
	AdvanceStep(ctx context.Context, step report.Step, draft models.IncidentDraft) (report.Step, error)
	PreviousStep(step report.Step) report.Step
	GetIncident(ctx context.Context, id string) (models.Incident, error)
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	RecentIncidents(ctx context.Context, limit int) ([]models.Incident, error)
	QueryIncidents(ctx context.Context, userLocation *models.Coordinates, params query.Params) ([]models.Incident, error)
	MapMarkers(ctx context.Context, userLocation *models.Coordinates, params query.Params) (*geojson.FeatureCollection, error)
	GetStats(ctx context.Context) (models.IncidentStats, error)
}

type incidentService struct {
	store     IncidentStore
	validator *report.Validator
	publisher webhook.WebhookPublisher
	metrics   *observability.Metrics
	clock     clockwork.Clock
	logger    *logrus.Logger
}

// NewIncidentService создает сервис. publisher может быть webhook.NoopPublisher.
func NewIncidentService(
	store IncidentStore,
	validator *report.Validator,
	publisher webhook.WebhookPublisher,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	logger *logrus.Logger,
) IncidentService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &incidentService{
		store:     store,
		validator: validator,
		publisher: publisher,
		metrics:   metrics,
		clock:     clock,
		logger:    logger,
	}
}

// ReportIncident проверяет черновик, сохраняет инцидент и ставит уведомление в очередь
func (s *incidentService) ReportIncident(ctx context.Context, draft models.IncidentDraft) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ReportIncident",
		"type":    draft.Type,
	})
	log.Info("Attempting to report a new incident")

	submitted, err := report.NewWizard(s.validator, report.StepReview, draft).Submit()
	if err != nil {
		s.recordValidationFailure(err)
		log.WithError(err).Warn("Incident draft rejected")
		return models.Incident{}, fmt.Errorf("service: invalid incident draft: %w", err)
	}

	incident, err := s.store.Add(ctx, submitted)
	if err != nil {
		log.WithError(err).Error("Failed to add incident to store")
		return models.Incident{}, fmt.Errorf("service: could not report incident: %w", err)
	}

	s.metrics.ReportsSubmitted.WithLabelValues(string(incident.Type), string(incident.Severity)).Inc()
	s.metrics.StoredIncidents.Set(float64(s.store.Len()))

	// Ошибка публикации не отменяет сохраненное сообщение
	event := webhook.NewIncidentReportedEvent(incident, s.clock.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("incident_id", incident.ID).Error("Failed to publish webhook event")
	}

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return incident, nil
}

// AdvanceStep проверяет шаг мастера и возвращает следующий. При ошибке мастер остается на step.
func (s *incidentService) AdvanceStep(_ context.Context, step report.Step, draft models.IncidentDraft) (report.Step, error) {
	w := report.NewWizard(s.validator, step, draft)
	if err := w.Next(); err != nil {
		s.recordValidationFailure(err)
		return w.Step(), fmt.Errorf("service: step %s: %w", step, err)
	}
	return w.Step(), nil
}

// PreviousStep возвращает шаг, на который ведет кнопка "назад"
func (s *incidentService) PreviousStep(step report.Step) report.Step {
	w := report.NewWizard(s.validator, step, models.IncidentDraft{})
	w.Back()
	return w.Step()
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id string) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Debug("Fetching incident by ID")

	incident, err := s.store.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from store")
		return models.Incident{}, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает все инциденты в порядке хранения
func (s *incidentService) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	incidents, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListIncidents").Error("Failed to list incidents from store")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// RecentIncidents возвращает первые limit инцидентов в порядке хранения (новые первыми)
func (s *incidentService) RecentIncidents(ctx context.Context, limit int) ([]models.Incident, error) {
	if limit < 1 {
		limit = DefaultRecentLimit
	}
	incidents, err := s.ListIncidents(ctx)
	if err != nil {
		return nil, err
	}
	if len(incidents) > limit {
		incidents = incidents[:limit]
	}
	return incidents, nil
}

// QueryIncidents применяет фильтры ленты к снимку хранилища
func (s *incidentService) QueryIncidents(ctx context.Context, userLocation *models.Coordinates, params query.Params) ([]models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "QueryIncidents",
		"sort":     params.SortBy,
		"type":     params.IncidentType,
		"global":   userLocation == nil || params.Radius.IsUnbounded(),
		"has_term": params.SearchTerm != "",
	})

	incidents, err := s.ListIncidents(ctx)
	if err != nil {
		return nil, err
	}

	result := query.Query(incidents, userLocation, params)

	s.metrics.Queries.WithLabelValues(sortLabel(params.SortBy)).Inc()
	s.metrics.QueryResults.Observe(float64(len(result)))
	log.WithField("count", len(result)).Debug("Incidents queried")
	return result, nil
}

// MapMarkers строит GeoJSON-слой карты по тем же фильтрам, что и лента
func (s *incidentService) MapMarkers(ctx context.Context, userLocation *models.Coordinates, params query.Params) (*geojson.FeatureCollection, error) {
	incidents, err := s.QueryIncidents(ctx, userLocation, params)
	if err != nil {
		return nil, err
	}
	return markers.FeatureCollection(incidents), nil
}

// GetStats считает сводку по хранилищу
func (s *incidentService) GetStats(ctx context.Context) (models.IncidentStats, error) {
	incidents, err := s.ListIncidents(ctx)
	if err != nil {
		return models.IncidentStats{}, err
	}

	stats := models.IncidentStats{
		Total:      len(incidents),
		ByType:     make(map[models.IncidentType]int),
		BySeverity: make(map[models.Severity]int),
	}
	for _, incident := range incidents {
		if incident.Verified {
			stats.Verified++
		}
		stats.ByType[incident.Type]++
		stats.BySeverity[incident.Severity]++
	}
	return stats, nil
}

// sortLabel ограничивает метку известными порядками: значение приходит из запроса
func sortLabel(by query.SortBy) string {
	if by.Known() {
		return string(by)
	}
	return observability.SortOther
}

func (s *incidentService) recordValidationFailure(err error) {
	var vErr *report.ValidationError
	if errors.As(err, &vErr) {
		s.metrics.ValidationFailures.WithLabelValues(vErr.Step.String()).Inc()
	}
}
