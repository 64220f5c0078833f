package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Bus is the in-process event bus. Events are JSON encoded BaseEvents on a
// single watermill topic.
type Bus struct {
	pubSub *gochannel.GoChannel
	topic  string
}

func NewBus(topic string) *Bus {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NewStdLogger(false, false),
	)
	return &Bus{pubSub: pubSub, topic: topic}
}

func (b *Bus) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(BaseEvent{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventType(), err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return b.pubSub.Publish(b.topic, msg)
}

func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, b.topic)
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}

// Decode turns a bus message back into an event.
func Decode(msg *message.Message) (BaseEvent, error) {
	var evt BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return BaseEvent{}, err
	}
	return evt, nil
}
