package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/mro/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=event_handler.go -destination=../../mocks/events.go -package=mocks

type Mailer interface {
	Send(subject, body string, recipients []string, contentType string) error
}

type EventHandler struct {
	m Mailer
}

func NewEventHandler(m Mailer) *EventHandler {
	return &EventHandler{m: m}
}

// SendNotification mails a notification event. Malformed events are logged and skipped so they do not
// block the partition.
func (h *EventHandler) SendNotification(ctx context.Context, msg kafka.Message) error {
	var event broker.NotificationEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		slog.ErrorContext(ctx, "skip malformed notification event", "error", err, "offset", msg.Offset)
		return nil
	}

	if len(event.Recipients) == 0 {
		return nil
	}

	err = h.m.Send(event.Subject, event.Body, event.Recipients, event.ContentType)
	if err != nil {
		return fmt.Errorf("send notification %s: %w", event.ID, err)
	}

	return nil
}
