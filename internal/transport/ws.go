package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"nhooyr.io/websocket"

	"cardroom.io/tableview/logging"
)

const wsWriteTimeout = 10 * time.Second

// WSTransport exchanges room messages over a single websocket connection.
// Every frame is one JSON envelope.
type WSTransport struct {
	logger *zerolog.Logger
	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
}

func NewWSTransport(ctx context.Context, url string, roomCode string) (*WSTransport, error) {
	logger := logging.GetZeroLogger("transport::ws", nil).With().
		Str(logging.RoomCodeKey, roomCode).Logger()
	logger.Info().Msgf("Connecting to websocket server at %s", url)
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("Error connecting to websocket server [%s]", url))
	}
	connCtx, cancel := context.WithCancel(ctx)
	return &WSTransport{
		logger: &logger,
		conn:   conn,
		ctx:    connCtx,
		cancel: cancel,
	}, nil
}

func (t *WSTransport) Subscribe(handler Handler) (Subscription, error) {
	readCtx, cancelRead := context.WithCancel(t.ctx)
	go t.readLoop(readCtx, handler)
	return &wsSubscription{cancel: cancelRead}, nil
}

func (t *WSTransport) readLoop(ctx context.Context, handler Handler) {
	for {
		_, data, err := t.conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				// Unsubscribed or the transport was closed.
				return
			}
			// No retry here. The last-known state remains displayed and the
			// client simply stops receiving snapshots.
			t.logger.Error().Msgf("Error [%s] while reading from websocket. Stopping the read loop", err)
			return
		}
		msg, err := DecodeMessage(data)
		if err != nil {
			t.logger.Error().Msgf("Error [%s] while decoding websocket frame", err)
			continue
		}
		handler(msg)
	}
}

func (t *WSTransport) Send(msg *Message) error {
	data, err := EncodeMessage(msg)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(t.ctx, wsWriteTimeout)
	defer cancel()
	err = t.conn.Write(writeCtx, websocket.MessageText, data)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("Unable to send [%s] over websocket", msg.Name))
	}
	return nil
}

func (t *WSTransport) Close() error {
	t.cancel()
	err := t.conn.Close(websocket.StatusNormalClosure, "client teardown")
	if err != nil {
		return errors.Wrap(err, "Error while closing websocket connection")
	}
	return nil
}

type wsSubscription struct {
	cancel context.CancelFunc
}

func (s *wsSubscription) Unsubscribe() error {
	s.cancel()
	return nil
}
