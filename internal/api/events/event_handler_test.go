package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/mro/internal/api/events"
	"github.com/samandr77/microservices/mro/internal/mocks"
	"github.com/samandr77/microservices/mro/pkg/broker"
)

func message(t *testing.T, e broker.NotificationEvent) kafka.Message {
	t.Helper()

	b, err := json.Marshal(e)
	require.NoError(t, err)

	return kafka.Message{Value: b}
}

func TestEventHandler_SendNotification(t *testing.T) {
	t.Parallel()

	event := broker.NotificationEvent{
		ID:          uuid.Must(uuid.NewV4()),
		CompanyID:   uuid.Must(uuid.NewV4()),
		Recipients:  []string{"qa@example.com"},
		Subject:     "SMS report filed",
		Body:        "Bird strike on approach",
		ContentType: "text/plain",
	}

	tests := []struct {
		name  string
		msg   func(t *testing.T) kafka.Message
		setup func(m *mocks.MockMailer)
		errFn require.ErrorAssertionFunc
	}{
		{
			name: "sent",
			msg:  func(t *testing.T) kafka.Message { return message(t, event) },
			setup: func(m *mocks.MockMailer) {
				m.EXPECT().Send(event.Subject, event.Body, event.Recipients, event.ContentType).Return(nil)
			},
			errFn: require.NoError,
		},
		{
			name: "mailer failure is returned",
			msg:  func(t *testing.T) kafka.Message { return message(t, event) },
			setup: func(m *mocks.MockMailer) {
				m.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			errFn: require.Error,
		},
		{
			name:  "malformed event is skipped",
			msg:   func(*testing.T) kafka.Message { return kafka.Message{Value: []byte("{")} },
			setup: func(*mocks.MockMailer) {},
			errFn: require.NoError,
		},
		{
			name: "no recipients",
			msg: func(t *testing.T) kafka.Message {
				e := event
				e.Recipients = nil

				return message(t, e)
			},
			setup: func(*mocks.MockMailer) {},
			errFn: require.NoError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := mocks.NewMockMailer(gomock.NewController(t))
			tt.setup(m)

			err := events.NewEventHandler(m).SendNotification(context.Background(), tt.msg(t))
			tt.errFn(t, err)
		})
	}
}
