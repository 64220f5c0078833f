package service

import (
	"context"

	"clinical-notes-be/internal/pkg/logger"
	"clinical-notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IEventRelay interface {
	Consume(ctx context.Context) error
}

type eventSource interface {
	Subscribe(ctx context.Context) (<-chan *message.Message, error)
}

// EventRelay drains the in-process bus, logging every event and forwarding
// it to the external publisher when one is configured.
type EventRelay struct {
	source  eventSource
	forward events.Publisher
	logger  logger.ILogger
	done    chan struct{}
}

func NewEventRelay(source eventSource, forward events.Publisher, logger logger.ILogger) *EventRelay {
	return &EventRelay{
		source:  source,
		forward: forward,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

func (r *EventRelay) Consume(ctx context.Context) error {
	messages, err := r.source.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		defer close(r.done)
		for msg := range messages {
			r.process(ctx, msg)
		}
	}()

	return nil
}

// Done is closed once the subscription channel has been drained.
func (r *EventRelay) Done() <-chan struct{} {
	return r.done
}

func (r *EventRelay) process(ctx context.Context, msg *message.Message) {
	// always ack: a broken or undeliverable event must not be redelivered forever
	defer msg.Ack()

	evt, err := events.Decode(msg)
	if err != nil {
		r.logger.Error("EVENTS", "Failed to decode event", map[string]interface{}{"message_id": msg.UUID, "error": err.Error()})
		return
	}

	r.logger.Info("EVENTS", "Event "+evt.EventType(), evt.Payload())

	if r.forward == nil {
		return
	}
	if err := r.forward.Publish(ctx, evt); err != nil {
		r.logger.Warn("EVENTS", "Failed to forward event", map[string]interface{}{"type": evt.EventType(), "error": err.Error()})
	}
}
