package protocol

import (
	"encoding/json"
	"testing"
)

func TestNewMessage(t *testing.T) {
	data, err := NewMessage(TypeChoose, ChoosePayload{CardID: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"type":"choose","payload":{"card_id":"abc"}}` {
		t.Errorf("unexpected encoding: %s", data)
	}

	data, err = NewMessage(TypePong, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"type":"pong"}` {
		t.Errorf("nil payload should be omitted, got %s", data)
	}

	if _, err := NewMessage(TypeState, make(chan int)); err == nil {
		t.Error("expected error for unencodable payload")
	}

	var msg Message
	if err := json.Unmarshal([]byte(`{"type":"deal_more"}`), &msg); err != nil || msg.Type != TypeDealMore {
		t.Errorf("decode deal_more: %+v %v", msg, err)
	}
}
