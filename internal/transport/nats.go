package transport

import (
	"fmt"

	natsgo "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"cardroom.io/tableview/logging"
)

// NatsTransport exchanges room messages over NATS subjects. The server
// publishes snapshots to room.<code>.gamestate; player messages go to
// room.<code>.player.
type NatsTransport struct {
	logger   *zerolog.Logger
	nc       *natsgo.Conn
	roomCode string
}

func NewNatsTransport(natsURL string, roomCode string) (*NatsTransport, error) {
	logger := logging.GetZeroLogger("transport::nats", nil).With().
		Str(logging.RoomCodeKey, roomCode).Logger()
	logger.Info().Msgf("Connecting to NATS server at %s", natsURL)
	nc, err := natsgo.Connect(natsURL)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("Error connecting to NATS server [%s]", natsURL))
	}
	return &NatsTransport{
		logger:   &logger,
		nc:       nc,
		roomCode: roomCode,
	}, nil
}

func (t *NatsTransport) stateSubject() string {
	return fmt.Sprintf("room.%s.gamestate", t.roomCode)
}

func (t *NatsTransport) playerSubject() string {
	return fmt.Sprintf("room.%s.player", t.roomCode)
}

func (t *NatsTransport) Subscribe(handler Handler) (Subscription, error) {
	subject := t.stateSubject()
	t.logger.Info().Msgf("Subscribing to %s to receive game state messages", subject)
	sub, err := t.nc.Subscribe(subject, func(m *natsgo.Msg) {
		msg, err := DecodeMessage(m.Data)
		if err != nil {
			t.logger.Error().Msgf("Error [%s] while decoding message from subject [%s]", err, subject)
			return
		}
		handler(msg)
	})
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("Unable to subscribe to the game state subject [%s]", subject))
	}
	return &natsSubscription{sub: sub}, nil
}

func (t *NatsTransport) Send(msg *Message) error {
	data, err := EncodeMessage(msg)
	if err != nil {
		return err
	}
	err = t.nc.Publish(t.playerSubject(), data)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("Unable to publish [%s] to subject [%s]", msg.Name, t.playerSubject()))
	}
	return nil
}

func (t *NatsTransport) Close() error {
	t.nc.Close()
	return nil
}

type natsSubscription struct {
	sub *natsgo.Subscription
}

func (s *natsSubscription) Unsubscribe() error {
	if s.sub == nil {
		return nil
	}
	err := s.sub.Unsubscribe()
	s.sub = nil
	if err != nil {
		return errors.Wrap(err, "Error while unsubscribing from the game state subject")
	}
	return nil
}
