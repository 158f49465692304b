package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/shenikar/disaster_connect/internal/config"
	"github.com/shenikar/disaster_connect/internal/models"
	"github.com/shenikar/disaster_connect/internal/observability"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// memQueue - очередь в памяти с семантикой RedisQueue
type memQueue struct {
	ch      chan []byte
	pushErr error
}

func newMemQueue() *memQueue {
	return &memQueue{ch: make(chan []byte, 16)}
}

func (q *memQueue) Push(_ context.Context, payload []byte) error {
	if q.pushErr != nil {
		return q.pushErr
	}
	q.ch <- payload
	return nil
}

func (q *memQueue) Pop(ctx context.Context, timeout time.Duration) ([]byte, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case p := <-q.ch:
		return p, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.C:
		return nil, ErrQueueEmpty
	}
}

type delivery struct {
	body    []byte
	headers http.Header
}

func newTestWorker(t *testing.T, queue Queue, url string) (*WebhookWorker, *observability.Metrics) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	metrics := observability.NewMetricsForTesting()
	w := NewWebhookWorker(queue, logger, cfg, metrics)
	w.pollTimeout = 10 * time.Millisecond
	return w, metrics
}

func publishIncident(t *testing.T, queue Queue) WebhookEvent {
	t.Helper()
	event := NewIncidentReportedEvent(models.Incident{ID: "42", Title: "Levee breach", Severity: models.SeverityHigh}, time.Now())
	require.NoError(t, NewQueuePublisher(queue).Publish(context.Background(), event))
	return event
}

func TestWebhookWorker_DeliversSignedEvent(t *testing.T) {
	received := make(chan delivery, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- delivery{body: body, headers: r.Header.Clone()}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	queue := newMemQueue()
	worker, metrics := newTestWorker(t, queue, server.URL)
	defer worker.httpClient.CloseIdleConnections()

	worker.Start(context.Background())
	event := publishIncident(t, queue)

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.WebhookDeliveries.WithLabelValues(observability.OutcomeDelivered)) == 1
	}, 2*time.Second, 5*time.Millisecond)
	worker.Stop()
	got := <-received

	assert.Equal(t, "application/json", got.headers.Get("Content-Type"))
	assert.Equal(t, event.ID, got.headers.Get(HeaderDelivery))
	assert.Equal(t, Sign(got.body, "s3cret"), got.headers.Get(HeaderSignature))

	var decoded WebhookEvent
	require.NoError(t, json.Unmarshal(got.body, &decoded))
	assert.Equal(t, EventIncidentReported, decoded.Type)
	assert.Equal(t, "42", decoded.Incident.ID)
}

func TestWebhookWorker_RetriesUntilSuccess(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	queue := newMemQueue()
	worker, metrics := newTestWorker(t, queue, server.URL)
	defer worker.httpClient.CloseIdleConnections()

	worker.Start(context.Background())
	publishIncident(t, queue)

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.WebhookDeliveries.WithLabelValues(observability.OutcomeDelivered)) == 1
	}, 2*time.Second, 5*time.Millisecond)
	worker.Stop()

	assert.Equal(t, int32(3), attempts.Load())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.WebhookDeliveries.WithLabelValues(observability.OutcomeRetried)))
}

func TestWebhookWorker_GivesUpAfterMaxRetries(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	queue := newMemQueue()
	worker, metrics := newTestWorker(t, queue, server.URL)
	defer worker.httpClient.CloseIdleConnections()

	event := NewIncidentReportedEvent(models.Incident{ID: "7"}, time.Now())
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	worker.processWebhookEvent(context.Background(), event, payload)

	assert.Equal(t, int32(3), attempts.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WebhookDeliveries.WithLabelValues(observability.OutcomeFailed)))
}

func TestWebhookWorker_SkipsUndecodablePayload(t *testing.T) {
	queue := newMemQueue()
	worker, metrics := newTestWorker(t, queue, "http://127.0.0.1:0")

	queue.ch <- []byte("{not json")
	worker.Start(context.Background())

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.WebhookDeliveries.WithLabelValues(observability.OutcomeDecode)) == 1
	}, time.Second, 5*time.Millisecond)
	worker.Stop()
}

func TestWebhookWorker_StopWithoutEvents(t *testing.T) {
	worker, _ := newTestWorker(t, newMemQueue(), "http://127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	worker.Start(ctx)
	cancel()
	worker.Stop()
}

func TestQueuePublisher_PushError(t *testing.T) {
	queue := newMemQueue()
	queue.pushErr = errors.New("connection refused")

	err := NewQueuePublisher(queue).Publish(context.Background(), WebhookEvent{ID: "1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, queue.pushErr)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), WebhookEvent{}))
}

func TestSign(t *testing.T) {
	assert.Equal(t, "5d98b45c90a207fa998ce639fea6f02ecc8cc3f36fef81d694fb856b4d0a28ca", Sign([]byte("payload"), "key"))
	assert.NotEqual(t, Sign([]byte("payload"), "key"), Sign([]byte("payload"), "other"))
}
