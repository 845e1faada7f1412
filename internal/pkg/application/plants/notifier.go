package plants

import (
	"context"
	"errors"
	"fmt"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"golang.org/x/sys/unix"

	"github.com/plantpal/iot-irrigation-mgmt/internal/pkg/infrastructure/logging"
)

const eventSource = "github.com/plantpal/iot-irrigation-mgmt"

//go:generate moq -rm -out eventsender_mock.go . EventSender
type EventSender interface {
	Send(ctx context.Context, id string, at time.Time, msg messaging.TopicMessage) error
}

type eventSender struct {
	subscribers map[string][]SubscriberConfig
}

// NewEventSender posts events as cloudevents to the subscribers configured
// for the topic name of each event.
func NewEventSender(cfg *Config) EventSender {
	e := &eventSender{
		subscribers: make(map[string][]SubscriberConfig),
	}

	if cfg != nil {
		for _, n := range cfg.Notifications {
			e.subscribers[n.Type] = append(e.subscribers[n.Type], n.Subscribers...)
		}
	}

	return e
}

func (e *eventSender) Send(ctx context.Context, id string, at time.Time, msg messaging.TopicMessage) error {
	subscribers, ok := e.subscribers[msg.TopicName()]
	if !ok || len(subscribers) == 0 {
		return nil
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", id, at.Unix()))
	event.SetTime(at)
	event.SetSource(eventSource)
	event.SetType(msg.TopicName())

	err = event.SetData(msg.ContentType(), msg)
	if err != nil {
		return err
	}

	logger := logging.GetFromContext(ctx)

	for _, s := range subscribers {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.Endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("failed to send event to %s", s.Endpoint)
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}
