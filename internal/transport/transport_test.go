package transport

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func TestDecodeMessageKeepsPayloadOpaque(t *testing.T) {
	raw := []byte(`{"name":"gameState","messageId":"abc-123","data":{"players":[],"extra":{"nested":[1,2,3]}}}`)
	msg, err := DecodeMessage(raw)
	if err != nil {
		t.Fatalf("DecodeMessage returned error [%s]", err)
	}
	if msg.Name != "gameState" {
		t.Errorf("expected name gameState, got %s", msg.Name)
	}
	if msg.MessageID != "abc-123" {
		t.Errorf("expected messageId abc-123, got %s", msg.MessageID)
	}

	// The payload must survive an encode round trip byte-for-byte equivalent;
	// the envelope never interprets it.
	encoded, err := EncodeMessage(msg)
	if err != nil {
		t.Fatalf("EncodeMessage returned error [%s]", err)
	}
	decoded, err := DecodeMessage(encoded)
	if err != nil {
		t.Fatalf("DecodeMessage (round trip) returned error [%s]", err)
	}
	var before, after interface{}
	jsoniter.Unmarshal(msg.Data, &before)
	jsoniter.Unmarshal(decoded.Data, &after)
	beforeJSON, _ := jsoniter.Marshal(before)
	afterJSON, _ := jsoniter.Marshal(after)
	if string(beforeJSON) != string(afterJSON) {
		t.Errorf("payload changed across round trip: %s != %s", beforeJSON, afterJSON)
	}
}

func TestDecodeMessageRejectsUnnamed(t *testing.T) {
	_, err := DecodeMessage([]byte(`{"data":{}}`))
	if err == nil {
		t.Error("expected error for envelope without a name")
	}
	_, err = DecodeMessage([]byte(`not json`))
	if err == nil {
		t.Error("expected error for malformed frame")
	}
}
