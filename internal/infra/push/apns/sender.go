// Package apns delivers alert pushes through Apple Push Notification service
// using token-based (.p8) authentication over HTTP/2.
package apns

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"seguridad/config"
	"seguridad/internal/domain/entity"
	"seguridad/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/net/http2"
)

const (
	reasonBadDeviceToken = "BadDeviceToken"
	reasonUnregistered   = "Unregistered"
	maxErrorBodySize     = 4 << 10
)

// ResponseError is returned when APNs answers with a non-success status.
type ResponseError struct {
	StatusCode int
	Reason     string
}

func (e *ResponseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("apns responded with status %d", e.StatusCode)
	}

	return fmt.Sprintf("apns responded with status %d: %s", e.StatusCode, e.Reason)
}

// Unwrap exposes service.ErrTokenUnregistered for tokens APNs no longer accepts.
func (e *ResponseError) Unwrap() error {
	if e.StatusCode == http.StatusGone || e.Reason == reasonBadDeviceToken || e.Reason == reasonUnregistered {
		return service.ErrTokenUnregistered
	}

	return nil
}

type payload struct {
	APS aps `json:"aps"`
}

type aps struct {
	Alert alert  `json:"alert"`
	Sound string `json:"sound"`
}

type alert struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type sender struct {
	topic         string
	productionURL string
	sandboxURL    string
	token         *providerToken
	client        *http.Client
	logger        *slog.Logger
}

// Option customizes a sender.
type Option func(*sender)

// WithHTTPClient replaces the HTTP/2 client, mainly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(s *sender) {
		s.client = client
	}
}

// NewSender builds an APNs PushService. The signing key is parsed once; invalid key material is an error.
func NewSender(cfg config.APNsConfig, timeout time.Duration, logger *slog.Logger, opts ...Option) (service.PushService, error) {
	if !cfg.Configured() {
		return nil, errors.New("apns topic, team id, key id and auth key are required")
	}

	token, err := newProviderToken(cfg.TeamID, cfg.KeyID, cfg.AuthKey, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	s := &sender{
		topic:         cfg.Topic,
		productionURL: strings.TrimRight(cfg.ProductionURL, "/"),
		sandboxURL:    strings.TrimRight(cfg.SandboxURL, "/"),
		token:         token,
		client: &http.Client{
			Transport: &http2.Transport{},
			Timeout:   timeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Send posts one notification to the gateway matching the token environment.
func (s *sender) Send(ctx context.Context, token *entity.DeviceToken, notification *service.PushNotification) error {
	bearer, err := s.token.Bearer()
	if err != nil {
		return err
	}

	sound := notification.Sound
	if sound == "" {
		sound = "default"
	}
	body, err := json.Marshal(payload{
		APS: aps{
			Alert: alert{Title: notification.Title, Body: notification.Body},
			Sound: sound,
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal apns payload")
	}

	endpoint := s.host(token.Environment) + "/3/device/" + url.PathEscape(token.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("authorization", "bearer "+bearer)
	req.Header.Set("apns-topic", s.topic)
	req.Header.Set("apns-push-type", "alert")
	req.Header.Set("apns-priority", "10")
	req.Header.Set("apns-expiration", "0")
	req.Header.Set("content-type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "apns request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		s.logger.DebugContext(ctx, "APNs push delivered",
			slog.String("token_suffix", token.Suffix()),
			slog.String("environment", string(token.Environment)),
			slog.String("apns_id", resp.Header.Get("apns-id")),
		)

		return nil
	}

	respErr := &ResponseError{StatusCode: resp.StatusCode}
	var reason struct {
		Reason string `json:"reason"`
	}
	if raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize)); readErr == nil && json.Unmarshal(raw, &reason) == nil {
		respErr.Reason = reason.Reason
	}

	return respErr
}

func (s *sender) host(env entity.PushEnvironment) string {
	if env == entity.PushEnvironmentProduction {
		return s.productionURL
	}

	return s.sandboxURL
}
