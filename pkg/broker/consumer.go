package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

var messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mro_kafka_messages_total",
	Help: "Consumed kafka messages by topic and handler result",
}, []string{"topic", "result"})

type HandlerFunc func(context.Context, kafka.Message) error

// Consumer reads every topic that has a handler within one consumer group. Offsets are committed after the
// handler returns, whatever the result: a failing message is logged and skipped, never redelivered forever.
type Consumer struct {
	l        *slog.Logger
	brokers  []string
	groupID  string
	r        *kafka.Reader
	wg       sync.WaitGroup
	handlers map[string]HandlerFunc
}

func NewConsumer(brokers []string, groupID string) *Consumer {
	return &Consumer{
		l:        slog.Default().WithGroup("kafka").With("group_id", groupID),
		brokers:  brokers,
		groupID:  groupID,
		handlers: make(map[string]HandlerFunc),
	}
}

// Handle must be called before Consume.
func (c *Consumer) Handle(topic string, handler HandlerFunc) *Consumer {
	c.handlers[topic] = handler
	return c
}

func (c *Consumer) Consume(ctx context.Context) *Consumer {
	if len(c.handlers) == 0 {
		c.l.Warn("no kafka handlers registered, consumer not started")
		return c
	}

	c.r = kafka.NewReader(kafka.ReaderConfig{
		Brokers:     c.brokers,
		GroupID:     c.groupID,
		GroupTopics: slices.Sorted(maps.Keys(c.handlers)),
		Logger:      &infoLogger{l: c.l},
		ErrorLogger: &errorLogger{l: c.l},
	})

	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		for {
			m, err := c.r.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					c.l.Info("consumer stopped")
					return
				}

				c.l.Error("fetch kafka message", "error", err)

				continue
			}

			c.dispatch(ctx, m)

			err = c.r.CommitMessages(ctx, m)
			if err != nil && ctx.Err() == nil {
				c.l.Error("commit kafka message", "error", err, "topic", m.Topic, "offset", m.Offset)
			}
		}
	}()

	return c
}

func (c *Consumer) dispatch(ctx context.Context, m kafka.Message) {
	handler, ok := c.handlers[m.Topic]
	if !ok {
		c.l.Warn("kafka handler not found", "topic", m.Topic)
		messagesTotal.WithLabelValues(m.Topic, "unhandled").Inc()

		return
	}

	err := handler(ctx, m)
	if err != nil {
		c.l.Error("handle kafka message", "error", err, "topic", m.Topic, "offset", m.Offset)
		messagesTotal.WithLabelValues(m.Topic, "error").Inc()

		return
	}

	messagesTotal.WithLabelValues(m.Topic, "ok").Inc()
}

func (c *Consumer) Close() {
	if c.r == nil {
		return
	}

	err := c.r.Close()
	if err != nil {
		c.l.Error("close kafka reader", "error", err)
	}

	c.wg.Wait()
}

// infoLogger and errorLogger adapt slog to kafka.Logger.
type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Debug(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
