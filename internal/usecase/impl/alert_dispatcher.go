package impl

import (
	"context"
	"log/slog"

	deliverycontext "seguridad/internal/delivery/context"
	"seguridad/internal/domain/entity"
	"seguridad/internal/domain/repository"
	"seguridad/internal/domain/service"
	"seguridad/internal/infra/metrics"

	"github.com/pkg/errors"
)

const (
	alertTitle     = "Seguridad"
	alertBodyEnter = "Ingreso a la zona segura."
	alertBodyExit  = "Salida de la zona segura."
	alertSound     = "default"
)

// DispatchResult summarizes one alert fan-out.
type DispatchResult struct {
	Attempted int
	Succeeded int
	Failed    int
	Removed   int // Tokens dropped after the gateway reported them unregistered.
}

// alertDispatcher sends one push per subscriber token. A nil push service disables delivery.
type alertDispatcher struct {
	subscriptionRepo repository.SubscriptionRepository
	deviceTokenRepo  repository.DeviceTokenRepository
	push             service.PushService
	logger           *slog.Logger
}

func newAlertNotification(alertType string) *service.PushNotification {
	body := alertBodyExit
	if alertType == entity.AlertTypeEnter {
		body = alertBodyEnter
	}

	return &service.PushNotification{
		Title: alertTitle,
		Body:  body,
		Sound: alertSound,
	}
}

// Dispatch notifies every subscriber of owner. Sends are sequential and never retried.
func (d *alertDispatcher) Dispatch(ctx context.Context, owner *entity.Device, alertType string) DispatchResult {
	var result DispatchResult
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	tokens, err := d.subscriptionRepo.FindSubscriberTokens(ctx, owner.ID)
	if err != nil {
		logger.Error("Failed to load subscriber tokens",
			slog.String("owner_device_id", owner.ExternalID),
			slog.Any("error", err),
		)

		return result
	}
	if len(tokens) == 0 {
		return result
	}

	if d.push == nil {
		logger.Debug("Push delivery disabled, skipping alert fan-out",
			slog.String("owner_device_id", owner.ExternalID),
			slog.Int("tokens", len(tokens)),
		)

		return result
	}

	notification := newAlertNotification(alertType)
	for _, token := range tokens {
		result.Attempted++

		err := d.push.Send(ctx, token, notification)
		metrics.RecordPushSend(string(token.Environment), err)
		if err == nil {
			result.Succeeded++

			continue
		}

		result.Failed++
		logger.Warn("Failed to send alert push",
			slog.String("token_suffix", token.Suffix()),
			slog.String("environment", string(token.Environment)),
			slog.Any("error", err),
		)

		if errors.Is(err, service.ErrTokenUnregistered) && d.removeToken(ctx, logger, token) {
			result.Removed++
		}
	}

	logger.Info("Alert fan-out finished",
		slog.String("owner_device_id", owner.ExternalID),
		slog.Int("attempted", result.Attempted),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", result.Failed),
		slog.Int("removed", result.Removed),
	)

	return result
}

func (d *alertDispatcher) removeToken(ctx context.Context, logger *slog.Logger, token *entity.DeviceToken) bool {
	err := d.deviceTokenRepo.DeleteByToken(ctx, token.Token)
	if err == nil {
		return true
	}
	if errors.Is(err, repository.ErrDeviceTokenNotFound) {
		return false
	}

	logger.Error("Failed to remove unregistered push token",
		slog.String("token_suffix", token.Suffix()),
		slog.Any("error", err),
	)

	return false
}
