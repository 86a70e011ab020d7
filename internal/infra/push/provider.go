// Package push selects the push transport used by the alert dispatcher.
package push

import (
	"context"
	"log/slog"

	"seguridad/config"
	"seguridad/internal/domain/service"
	"seguridad/internal/infra/push/apns"
	"seguridad/internal/infra/push/firebase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the PushService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService returns the configured PushService.
// A nil service with a nil error means push delivery is disabled.
func NewPushService(params Params) (service.PushService, error) {
	cfg := params.Config
	logger := params.Logger

	switch cfg.Push.Provider {
	case "":
		logger.Warn("Push provider not configured, alert dispatch disabled")

		return nil, nil

	case config.PushProviderAPNs:
		if !cfg.APNs.Configured() {
			logger.Warn("APNs credentials incomplete, alert dispatch disabled",
				slog.Bool("topic", cfg.APNs.Topic != ""),
				slog.Bool("team_id", cfg.APNs.TeamID != ""),
				slog.Bool("key_id", cfg.APNs.KeyID != ""),
				slog.Bool("auth_key", cfg.APNs.AuthKey != ""),
			)

			return nil, nil
		}

		sender, err := apns.NewSender(cfg.APNs, cfg.Push.Timeout, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using APNs push sender", slog.String("topic", cfg.APNs.Topic))

		return sender, nil

	case config.PushProviderFirebase:
		if cfg.Firebase == nil {
			logger.Warn("Firebase not configured, alert dispatch disabled")

			return nil, nil
		}

		sender, err := firebase.NewSender(params.Ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Firebase push sender", slog.String("project_id", cfg.Firebase.ProjectID))

		return sender, nil

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Push.Provider)
	}
}
