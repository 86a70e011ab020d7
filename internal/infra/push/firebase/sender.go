// Package firebase delivers alert pushes through Firebase Cloud Messaging.
package firebase

import (
	"context"

	"seguridad/internal/domain/entity"
	"seguridad/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messageSender is the subset of *messaging.Client the sender uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseSender struct {
	client messageSender
}

// NewSender initializes a Firebase app from a service account file and returns a PushService.
func NewSender(ctx context.Context, projectID, credentialsPath string) (service.PushService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{client: client}, nil
}

// Send delivers one notification to a single registration token.
func (s *firebaseSender) Send(ctx context.Context, token *entity.DeviceToken, notification *service.PushNotification) error {
	sound := notification.Sound
	if sound == "" {
		sound = "default"
	}

	message := &messaging.Message{
		Token: token.Token,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: sound},
			},
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrap(service.ErrTokenUnregistered, err.Error())
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}
