package firebase

import (
	"context"
	"testing"

	"seguridad/internal/domain/entity"
	"seguridad/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	sent []*messaging.Message
	err  error
}

func (c *stubClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	c.sent = append(c.sent, message)
	if c.err != nil {
		return "", c.err
	}

	return "projects/p/messages/1", nil
}

func TestFirebaseSender_Send(t *testing.T) {
	client := &stubClient{}
	sender := &firebaseSender{client: client}

	err := sender.Send(context.Background(),
		&entity.DeviceToken{Token: "fcm-token", Environment: entity.PushEnvironmentProduction},
		&service.PushNotification{Title: "Seguridad", Body: "Ingreso a la zona segura."})
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	message := client.sent[0]
	assert.Equal(t, "fcm-token", message.Token)
	assert.Equal(t, "Seguridad", message.Notification.Title)
	assert.Equal(t, "Ingreso a la zona segura.", message.Notification.Body)
	assert.Equal(t, "default", message.APNS.Payload.Aps.Sound)
}

func TestFirebaseSender_SendError(t *testing.T) {
	sender := &firebaseSender{client: &stubClient{err: errors.New("unavailable")}}

	err := sender.Send(context.Background(),
		&entity.DeviceToken{Token: "fcm-token"},
		&service.PushNotification{Title: "Seguridad", Body: "Salida de la zona segura."})
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrTokenUnregistered))
}
