package intent

import (
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"cardroom.io/tableview/internal/gamestate"
	"cardroom.io/tableview/internal/transport"
	"cardroom.io/tableview/logging"
)

// Dispatcher maps viewer intent to outbound wire messages. Every dispatch is
// fire-and-forget: nothing is applied locally, the server's next snapshot is
// the only source of truth for the effect of an action.
type Dispatcher struct {
	logger *zerolog.Logger
	sender transport.Sender
}

func NewDispatcher(sender transport.Sender, roomCode string) *Dispatcher {
	logger := logging.GetZeroLogger("intent::dispatcher", nil).With().
		Str(logging.RoomCodeKey, roomCode).Logger()
	return &Dispatcher{
		logger: &logger,
		sender: sender,
	}
}

func (d *Dispatcher) send(name string, payload interface{}) error {
	msg := &transport.Message{
		Name:      name,
		MessageID: uuid.New().String(),
	}
	if payload != nil {
		data, err := jsoniter.Marshal(payload)
		if err != nil {
			return errors.Wrapf(err, "Unable to marshal payload for [%s]", name)
		}
		msg.Data = data
	}
	d.logger.Debug().Str(logging.MsgTypeKey, name).Msg("Dispatching player intent")
	err := d.sender.Send(msg)
	if err != nil {
		return errors.Wrapf(err, "Unable to dispatch [%s]", name)
	}
	return nil
}

func (d *Dispatcher) Sit() error {
	return d.send(gamestate.ActionSit, nil)
}

func (d *Dispatcher) Stand() error {
	return d.send(gamestate.ActionStand, nil)
}

// UpdateGameSettings is owner-only on the server side. The client's role is
// only to avoid presenting the control to a non-owner, never to enforce.
func (d *Dispatcher) UpdateGameSettings(settings gamestate.GameSettings) error {
	return d.send(gamestate.ActionOwnerChangeGameSettings, settings)
}

// GiveChips sends a positional (target player id, amount) payload.
func (d *Dispatcher) GiveChips(toPlayerID string, amount int) error {
	return d.send(gamestate.ActionOwnerGiveChips, []interface{}{toPlayerID, amount})
}

// TakeChips sends a positional (source player id, amount) payload.
func (d *Dispatcher) TakeChips(fromPlayerID string, amount int) error {
	return d.send(gamestate.ActionOwnerTakeChips, []interface{}{fromPlayerID, amount})
}

func (d *Dispatcher) StartRound() error {
	return d.send(gamestate.ActionStartRound, nil)
}

func (d *Dispatcher) EndRound() error {
	return d.send(gamestate.ActionEndRound, nil)
}

func (d *Dispatcher) AddAI() error {
	return d.send(gamestate.ActionAddAI, nil)
}

func (d *Dispatcher) Call() error {
	return d.send(gamestate.ActionCall, nil)
}

func (d *Dispatcher) Check() error {
	return d.send(gamestate.ActionCheck, nil)
}

func (d *Dispatcher) Fold() error {
	return d.send(gamestate.ActionFold, nil)
}

func (d *Dispatcher) Raise(amount int) error {
	return d.send(gamestate.ActionRaise, amount)
}

func (d *Dispatcher) Reveal() error {
	return d.send(gamestate.ActionReveal, nil)
}

func (d *Dispatcher) Muck() error {
	return d.send(gamestate.ActionMuck, nil)
}
