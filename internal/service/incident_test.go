package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/disaster_connect/internal/models"
	"github.com/shenikar/disaster_connect/internal/observability"
	"github.com/shenikar/disaster_connect/internal/query"
	"github.com/shenikar/disaster_connect/internal/report"
	"github.com/shenikar/disaster_connect/internal/repository"
	"github.com/shenikar/disaster_connect/internal/service/mocks"
	"github.com/shenikar/disaster_connect/internal/webhook"
	webhook_mocks "github.com/shenikar/disaster_connect/internal/webhook/mocks"
)

var fixedTime = time.Date(2025, time.April, 26, 15, 10, 0, 0, time.UTC)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentStore, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockIncidentStore(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewIncidentService(
		storeMock,
		report.NewValidator(),
		webhookMock,
		observability.NewMetricsForTesting(),
		clockwork.NewFakeClockAt(fixedTime),
		logger,
	)
	return service.(*incidentService), storeMock, webhookMock
}

func validDraft() models.IncidentDraft {
	return models.IncidentDraft{
		Title:       "Flash Flooding on Main Street",
		Description: "Water is rising",
		Type:        models.IncidentTypeFlood,
		Severity:    models.SeverityHigh,
		Location:    models.Location{Lat: 37.7749, Lng: -122.4194},
	}
}

func TestReportIncident_Success(t *testing.T) {
	// Подготовка
	service, storeMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	draft := validDraft()
	created := models.Incident{ID: "1745680200000", Title: draft.Title, Type: draft.Type, Severity: draft.Severity}

	// Ожидания
	storeMock.EXPECT().Add(ctx, draft).Return(created, nil).Times(1)
	storeMock.EXPECT().Len().Return(7).Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.WebhookEvent) error {
			assert.Equal(t, webhook.EventIncidentReported, event.Type)
			assert.Equal(t, created.ID, event.Incident.ID)
			assert.Equal(t, fixedTime, event.Timestamp)
			assert.NotEmpty(t, event.ID)
			return nil
		}).
		Times(1)

	// Действие
	incident, err := service.ReportIncident(ctx, draft)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, created, incident)
	assert.Equal(t, 1.0, testutil.ToFloat64(service.metrics.ReportsSubmitted.WithLabelValues("flood", "high")))
	assert.Equal(t, 7.0, testutil.ToFloat64(service.metrics.StoredIncidents))
}

func TestReportIncident_ValidationError(t *testing.T) {
	service, storeMock, webhookMock := newTestIncidentService(t)
	draft := validDraft()
	draft.Location = models.Location{}

	storeMock.EXPECT().Add(gomock.Any(), gomock.Any()).Times(0)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.ReportIncident(context.Background(), draft)

	var vErr *report.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, report.MsgLocationRequired, vErr.Message)
	assert.Equal(t, 1.0, testutil.ToFloat64(service.metrics.ValidationFailures.WithLabelValues("location")))
}

func TestReportIncident_StoreError(t *testing.T) {
	service, storeMock, webhookMock := newTestIncidentService(t)
	storeErr := errors.New("store closed")

	storeMock.EXPECT().Add(gomock.Any(), gomock.Any()).Return(models.Incident{}, storeErr).Times(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.ReportIncident(context.Background(), validDraft())
	assert.ErrorIs(t, err, storeErr)
}

func TestReportIncident_PublishErrorIsNotReturned(t *testing.T) {
	service, storeMock, webhookMock := newTestIncidentService(t)

	storeMock.EXPECT().Add(gomock.Any(), gomock.Any()).Return(models.Incident{ID: "1"}, nil)
	storeMock.EXPECT().Len().Return(1)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	incident, err := service.ReportIncident(context.Background(), validDraft())
	require.NoError(t, err)
	assert.Equal(t, "1", incident.ID)
}

func TestAdvanceStep(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	next, err := service.AdvanceStep(context.Background(), report.StepDetails, validDraft())
	require.NoError(t, err)
	assert.Equal(t, report.StepClassification, next)

	next, err = service.AdvanceStep(context.Background(), report.StepReview, validDraft())
	require.NoError(t, err)
	assert.Equal(t, report.StepReview, next)

	next, err = service.AdvanceStep(context.Background(), report.StepClassification, models.IncidentDraft{})
	var vErr *report.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, report.StepClassification, next)
	assert.Equal(t, report.MsgClassificationRequired, vErr.Message)
	assert.Equal(t, 1.0, testutil.ToFloat64(service.metrics.ValidationFailures.WithLabelValues("classification")))
}

func TestPreviousStep(t *testing.T) {
	service, _, _ := newTestIncidentService(t)

	assert.Equal(t, report.StepLocation, service.PreviousStep(report.StepReview))
	assert.Equal(t, report.StepDetails, service.PreviousStep(report.StepClassification))
	assert.Equal(t, report.StepDetails, service.PreviousStep(report.StepDetails))
}

func TestGetIncident_NotFound(t *testing.T) {
	service, storeMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	storeMock.EXPECT().GetByID(ctx, "missing").Return(models.Incident{}, repository.ErrIncidentNotFound)

	_, err := service.GetIncident(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrIncidentNotFound)
}

func TestRecentIncidents(t *testing.T) {
	service, storeMock, _ := newTestIncidentService(t)
	seed := repository.SeedIncidents(fixedTime)

	storeMock.EXPECT().GetAll(gomock.Any()).Return(seed, nil).Times(2)

	recent, err := service.RecentIncidents(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, recent, DefaultRecentLimit)
	assert.Equal(t, "1", recent[0].ID)
	assert.Equal(t, "3", recent[2].ID)

	all, err := service.RecentIncidents(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, all, len(seed))
}

func TestQueryIncidents(t *testing.T) {
	service, storeMock, _ := newTestIncidentService(t)
	storeMock.EXPECT().GetAll(gomock.Any()).Return(repository.SeedIncidents(fixedTime), nil)

	params := query.Params{Radius: query.Unbounded(), IncidentType: query.AllTypes, SortBy: query.SortSeverity}
	result, err := service.QueryIncidents(context.Background(), nil, params)

	require.NoError(t, err)
	ids := make([]string, 0, len(result))
	for _, incident := range result {
		ids = append(ids, incident.ID)
	}
	assert.Equal(t, []string{"1", "4", "2", "6", "5", "3"}, ids)
	assert.Equal(t, 1.0, testutil.ToFloat64(service.metrics.Queries.WithLabelValues("severity")))
}

func TestQueryIncidents_UnknownSortSharesOneSeries(t *testing.T) {
	// Подготовка
	service, storeMock, _ := newTestIncidentService(t)
	storeMock.EXPECT().GetAll(gomock.Any()).Return(repository.SeedIncidents(fixedTime), nil).Times(102)

	// Действие
	for i := 0; i < 100; i++ {
		params := query.DefaultParams()
		params.SortBy = query.SortBy(fmt.Sprintf("junk-%d", i))
		_, err := service.QueryIncidents(context.Background(), nil, params)
		require.NoError(t, err)
	}
	_, err := service.QueryIncidents(context.Background(), nil, query.DefaultParams())
	require.NoError(t, err)
	params := query.DefaultParams()
	params.SortBy = query.SortSeverity
	_, err = service.QueryIncidents(context.Background(), nil, params)
	require.NoError(t, err)

	// Проверки
	assert.Equal(t, 3, testutil.CollectAndCount(service.metrics.Queries))
	assert.Equal(t, 100.0, testutil.ToFloat64(service.metrics.Queries.WithLabelValues(observability.SortOther)))
	assert.Equal(t, 1.0, testutil.ToFloat64(service.metrics.Queries.WithLabelValues("recent")))
}

func TestQueryIncidents_StoreError(t *testing.T) {
	service, storeMock, _ := newTestIncidentService(t)
	storeMock.EXPECT().GetAll(gomock.Any()).Return(nil, context.Canceled)

	_, err := service.QueryIncidents(context.Background(), nil, query.DefaultParams())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMapMarkers(t *testing.T) {
	service, storeMock, _ := newTestIncidentService(t)
	storeMock.EXPECT().GetAll(gomock.Any()).Return(repository.SeedIncidents(fixedTime), nil)

	sf := models.Coordinates{Lat: 37.7749, Lng: -122.4194}
	fc, err := service.MapMarkers(context.Background(), &sf, query.DefaultParams())

	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "red", fc.Features[0].Properties["color"])
	assert.Equal(t, "blue", fc.Features[1].Properties["color"])
}

func TestGetStats(t *testing.T) {
	service, storeMock, _ := newTestIncidentService(t)
	storeMock.EXPECT().GetAll(gomock.Any()).Return(repository.SeedIncidents(fixedTime), nil)

	stats, err := service.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 4, stats.Verified)
	assert.Equal(t, 3, stats.BySeverity[models.SeverityHigh])
	assert.Equal(t, 2, stats.BySeverity[models.SeverityMedium])
	assert.Equal(t, 1, stats.ByType[models.IncidentTypeFlood])
}
