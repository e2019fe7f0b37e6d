package wire

import (
	"testing"
	"time"
)

func TestDecodeApplicationHeaderInputMinimal(t *testing.T) {
	h, err := DecodeApplicationHeader("I103FOOBARXXAXXXN")
	if err != nil {
		t.Fatalf("DecodeApplicationHeader: %v", err)
	}
	if h.Direction != DirectionInput {
		t.Fatalf("direction = %v, want Input", h.Direction)
	}
	if h.MessageType != "103" || h.Destination != "FOOBARXXAXXX" || h.Priority != "N" {
		t.Errorf("unexpected input fields: %+v", h)
	}
	if h.DeliveryMonitoring != "" || h.ObsolescencePeriod != "" {
		t.Errorf("expected empty optional tail, got %+v", h)
	}
}

func TestDecodeApplicationHeaderInputWithOptionalTail(t *testing.T) {
	h, err := DecodeApplicationHeader("I103FOOBARXXAXXXNU030")
	if err != nil {
		t.Fatalf("DecodeApplicationHeader: %v", err)
	}
	if h.DeliveryMonitoring != "U" || h.ObsolescencePeriod != "030" {
		t.Errorf("unexpected optional tail: %+v", h)
	}
}

func TestDecodeApplicationHeaderOutput(t *testing.T) {
	h, err := DecodeApplicationHeader("O0511511010606ABLRXXXXGXXX00000130850106141149S")
	if err != nil {
		t.Fatalf("DecodeApplicationHeader: %v", err)
	}
	if h.Direction != DirectionOutput {
		t.Fatalf("direction = %v, want Output", h.Direction)
	}
	if h.MessageType != "051" {
		t.Errorf("message_type = %q", h.MessageType)
	}
	want := time.Date(2001, 6, 6, 15, 11, 0, 0, time.UTC)
	if !h.SenderDateTime.Equal(want) {
		t.Errorf("sender_datetime = %v, want %v", h.SenderDateTime, want)
	}
	if h.SenderAddress != "ABLRXXXXGXXX" {
		t.Errorf("sender_address = %q", h.SenderAddress)
	}
	if h.SessionNumber != "0000" || h.SequenceNumber != "013085" {
		t.Errorf("session/sequence = %q/%q", h.SessionNumber, h.SequenceNumber)
	}
	wantRecv := time.Date(2001, 6, 14, 11, 49, 0, 0, time.UTC)
	if !h.ReceiverDateTime.Equal(wantRecv) {
		t.Errorf("receiver_datetime = %v, want %v", h.ReceiverDateTime, wantRecv)
	}
	if h.MessagePriority != "S" {
		t.Errorf("message_priority = %q", h.MessagePriority)
	}
}

func TestDecodeApplicationHeaderBadDirection(t *testing.T) {
	_, err := DecodeApplicationHeader("X103FOOBARXXAXXXN")
	if err == nil {
		t.Fatal("expected error for bad direction")
	}
}

func TestDecodeApplicationHeaderBadDate(t *testing.T) {
	_, err := DecodeApplicationHeader("O0511511999999ABLRXXXXGXXX00000130850106141149S")
	de, ok := err.(*DecodeError)
	if !ok || de.Reason != ReasonBadDateTime {
		t.Fatalf("got %v, want BadDateTime", err)
	}
}
