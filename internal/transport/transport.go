package transport

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Message is the wire envelope shared by both directions: a stable name, an
// optional message id for deduplication, and an opaque payload.
type Message struct {
	Name      string              `json:"name"`
	MessageID string              `json:"messageId,omitempty"`
	Data      jsoniter.RawMessage `json:"data,omitempty"`
}

// Handler receives inbound messages. It is invoked on the transport's own
// goroutine; implementations hand the message off to their own loop.
type Handler func(msg *Message)

type Subscription interface {
	Unsubscribe() error
}

// Feed delivers the ordered stream of server messages.
type Feed interface {
	Subscribe(handler Handler) (Subscription, error)
}

// Sender sends fire-and-forget messages to the server. No acknowledgement is
// awaited; the server's next snapshot is the only confirmation of the effect.
type Sender interface {
	Send(msg *Message) error
}

// Transport is a bidirectional connection to the room.
type Transport interface {
	Feed
	Sender
	Close() error
}

func EncodeMessage(msg *Message) ([]byte, error) {
	data, err := jsoniter.Marshal(msg)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to marshal message [%s]", msg.Name)
	}
	return data, nil
}

func DecodeMessage(data []byte) (*Message, error) {
	var msg Message
	err := jsoniter.Unmarshal(data, &msg)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to unmarshal message envelope")
	}
	if msg.Name == "" {
		return nil, errors.Errorf("Message envelope is missing a name: %s", string(data))
	}
	return &msg, nil
}
