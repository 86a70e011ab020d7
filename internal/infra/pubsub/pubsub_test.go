package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"seguridad/config"
	"seguridad/internal/domain/service"
	"seguridad/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.AlertCreatedEvent {
	lat := -34.6037

	return &service.AlertCreatedEvent{
		RequestID:     "req-1",
		AlertID:       "8f1f2c1e-7c2b-4b53-9a51-1c7d2b0f0a11",
		DeviceID:      "device-A",
		Type:          "enter",
		Timestamp:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Latitude:      &lat,
		PushAttempted: 2,
		PushFailed:    1,
	}
}

func TestLocalHTTPPublisher_PublishAlertCreated(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, err := io.ReadAll(r.Body)
		if err == nil {
			_ = json.Unmarshal(body, &received)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	event := testEvent()

	require.NoError(t, publisher.PublishAlertCreated(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.AlertID, received.Message.MessageID)
	assert.Equal(t, "device-A", received.Message.Attributes["device_id"])
	assert.Equal(t, "enter", received.Message.Attributes["alert_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AlertCreatedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.AlertID, decoded.AlertID)
	assert.Equal(t, 2, decoded.PushAttempted)
	assert.Equal(t, 1, decoded.PushFailed)
	require.NotNil(t, decoded.Latitude)
	assert.InDelta(t, -34.6037, *decoded.Latitude, 1e-9)
	assert.Nil(t, decoded.Longitude)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishAlertCreated(context.Background(), testEvent())
	assert.ErrorContains(t, err, "500")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantNoop bool
		wantErr  string
	}{
		{name: "not configured", pubsub: nil, wantNoop: true},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, wantNoop: true},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: config.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: config.PubSubProviderGoogle, TopicID: "alerts"}, wantErr: "project ID"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: config.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID"},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
		{name: "local", pubsub: &config.PubSubConfig{Provider: config.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999/events"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: slog.New(slog.DiscardHandler),
			})

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.wantNoop {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishAlertCreated(context.Background(), testEvent()))
			} else {
				assert.IsType(t, &boundedPublisher{}, publisher)
			}
			lc.RequireStart().RequireStop()
		})
	}
}

func TestAlertAttributes(t *testing.T) {
	event := testEvent()
	event.RequestID = ""

	attributes := alertAttributes(event)

	assert.Equal(t, "alert.created", attributes["event_type"])
	assert.Equal(t, event.AlertID, attributes["alert_id"])
	assert.Equal(t, "true", attributes["push_degraded"])
	assert.NotContains(t, attributes, "request_id")

	event.PushFailed = 0
	assert.NotContains(t, alertAttributes(event), "push_degraded")
}

type recordingPublisher struct {
	err      error
	deadline time.Time
	ctxErr   error
	closed   bool
}

func (p *recordingPublisher) PublishAlertCreated(ctx context.Context, _ *service.AlertCreatedEvent) error {
	p.deadline, _ = ctx.Deadline()
	p.ctxErr = ctx.Err()

	return p.err
}

func (p *recordingPublisher) Close() error {
	p.closed = true

	return nil
}

func TestBoundedPublisher_DetachesCallerCancellation(t *testing.T) {
	next := &recordingPublisher{}
	publisher := &boundedPublisher{next: next, provider: "local", timeout: 2 * time.Second}
	before := testutil.ToFloat64(metrics.EventsPublished.WithLabelValues("local", metrics.ResultSuccess))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, publisher.PublishAlertCreated(ctx, testEvent()))
	assert.NoError(t, next.ctxErr)
	assert.WithinDuration(t, time.Now().Add(2*time.Second), next.deadline, time.Second)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.EventsPublished.WithLabelValues("local", metrics.ResultSuccess)))

	require.NoError(t, publisher.Close())
	assert.True(t, next.closed)
}

func TestBoundedPublisher_Failure(t *testing.T) {
	next := &recordingPublisher{err: errors.New("topic gone")}
	publisher := &boundedPublisher{next: next, provider: "google", timeout: time.Second}
	before := testutil.ToFloat64(metrics.EventsPublished.WithLabelValues("google", metrics.ResultFailure))

	err := publisher.PublishAlertCreated(context.Background(), testEvent())

	assert.ErrorContains(t, err, "topic gone")
	assert.ErrorContains(t, err, "google publish of alert")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.EventsPublished.WithLabelValues("google", metrics.ResultFailure)))
}
