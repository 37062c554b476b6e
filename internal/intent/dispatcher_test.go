package intent

import (
	"testing"

	jsoniter "github.com/json-iterator/go"

	"cardroom.io/tableview/internal/gamestate"
	"cardroom.io/tableview/internal/transport"
)

type fakeSender struct {
	sent []*transport.Message
}

func (s *fakeSender) Send(msg *transport.Message) error {
	s.sent = append(s.sent, msg)
	return nil
}

func TestGiveChipsDispatch(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, "ABCDEF")

	err := d.GiveChips("p2", 500)
	if err != nil {
		t.Fatalf("GiveChips returned error [%s]", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected exactly one outbound message, got %d", len(sender.sent))
	}

	msg := sender.sent[0]
	if msg.Name != gamestate.ActionOwnerGiveChips {
		t.Errorf("expected message name %s, got %s", gamestate.ActionOwnerGiveChips, msg.Name)
	}
	if msg.MessageID == "" {
		t.Error("outbound message should carry a message id")
	}

	var playerID string
	var amount int
	payload := []interface{}{&playerID, &amount}
	if err := jsoniter.Unmarshal(msg.Data, &payload); err != nil {
		t.Fatalf("Unable to unmarshal payload [%s]: %s", string(msg.Data), err)
	}
	if playerID != "p2" || amount != 500 {
		t.Errorf("expected payload (p2, 500), got (%s, %d)", playerID, amount)
	}
}

func TestSitAndStandHaveNoPayload(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, "ABCDEF")

	if err := d.Sit(); err != nil {
		t.Fatalf("Sit returned error [%s]", err)
	}
	if err := d.Stand(); err != nil {
		t.Fatalf("Stand returned error [%s]", err)
	}

	if sender.sent[0].Name != gamestate.ActionSit || len(sender.sent[0].Data) != 0 {
		t.Errorf("unexpected sit message: %+v", sender.sent[0])
	}
	if sender.sent[1].Name != gamestate.ActionStand || len(sender.sent[1].Data) != 0 {
		t.Errorf("unexpected stand message: %+v", sender.sent[1])
	}
}

func TestUpdateGameSettingsPayload(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, "ABCDEF")

	err := d.UpdateGameSettings(gamestate.GameSettings{ChipValue: 0.5, SmallBlindAmount: 2, BigBlindAmount: 4})
	if err != nil {
		t.Fatalf("UpdateGameSettings returned error [%s]", err)
	}

	msg := sender.sent[0]
	if msg.Name != gamestate.ActionOwnerChangeGameSettings {
		t.Errorf("expected message name %s, got %s", gamestate.ActionOwnerChangeGameSettings, msg.Name)
	}
	var settings gamestate.GameSettings
	if err := jsoniter.Unmarshal(msg.Data, &settings); err != nil {
		t.Fatalf("Unable to unmarshal settings payload: %s", err)
	}
	if settings.SmallBlindAmount != 2 || settings.BigBlindAmount != 4 {
		t.Errorf("unexpected settings payload: %+v", settings)
	}
}

func TestRaiseCarriesAmount(t *testing.T) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, "ABCDEF")

	if err := d.Raise(250); err != nil {
		t.Fatalf("Raise returned error [%s]", err)
	}
	var amount int
	if err := jsoniter.Unmarshal(sender.sent[0].Data, &amount); err != nil {
		t.Fatalf("Unable to unmarshal raise payload: %s", err)
	}
	if amount != 250 {
		t.Errorf("expected raise amount 250, got %d", amount)
	}
}
