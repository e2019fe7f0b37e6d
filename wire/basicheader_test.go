package wire

import "testing"

func TestDecodeBasicHeader(t *testing.T) {
	h, err := DecodeBasicHeader("F01FOOBARXXAXXX0000000000")
	if err != nil {
		t.Fatalf("DecodeBasicHeader: %v", err)
	}
	if h.ApplicationIdentifier != "F" {
		t.Errorf("application_identifier = %q", h.ApplicationIdentifier)
	}
	if h.ServiceIdentifier != ServiceMessage {
		t.Errorf("service_identifier = %v, want Message", h.ServiceIdentifier)
	}
	if h.LogicalTerminal != "FOOBARXXAXXX" {
		t.Errorf("logical_terminal = %q", h.LogicalTerminal)
	}
	if h.SessionNumber != 0 || h.SequenceNumber != 0 {
		t.Errorf("session/sequence = %d/%d, want 0/0", h.SessionNumber, h.SequenceNumber)
	}
}

func TestDecodeBasicHeaderUnknownService(t *testing.T) {
	_, err := DecodeBasicHeader("F99FOOBARXXAXXX0000000000")
	de, ok := err.(*DecodeError)
	if !ok || de.Reason != ReasonBadEnum {
		t.Fatalf("got %v, want BadEnum", err)
	}
}

func TestDecodeBasicHeaderTooShort(t *testing.T) {
	_, err := DecodeBasicHeader("F01SHORT")
	if err == nil {
		t.Fatal("expected error for short basic header")
	}
}

func TestBasicHeaderRoundTrip(t *testing.T) {
	s := "F01FOOBARXXAXXX0000120034"
	h, err := DecodeBasicHeader(s)
	if err != nil {
		t.Fatalf("DecodeBasicHeader: %v", err)
	}
	if got := EncodeBasicHeader(h); got != s {
		t.Errorf("round trip = %q, want %q", got, s)
	}
}

func TestDefaultBasicHeader(t *testing.T) {
	h := DefaultBasicHeader()
	if h.ApplicationIdentifier != "F" || h.ServiceIdentifier != ServiceMessage {
		t.Errorf("unexpected default: %+v", h)
	}
	if h.LogicalTerminal != "            " {
		t.Errorf("logical_terminal default = %q", h.LogicalTerminal)
	}
}
