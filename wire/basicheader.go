package wire

import (
	"fmt"
	"strconv"
)

// ServiceIdentifier is the closed enum carried by a BasicHeader's
// service_identifier field.
type ServiceIdentifier uint8

const (
	ServiceMessage         ServiceIdentifier = 1
	LoginRequest           ServiceIdentifier = 2
	Select                 ServiceIdentifier = 3
	Quit                   ServiceIdentifier = 5
	Logout                 ServiceIdentifier = 6
	RemoveTerminalRequest  ServiceIdentifier = 14
	SystemLogout           ServiceIdentifier = 16
	MessageAck             ServiceIdentifier = 21
	LoginAck               ServiceIdentifier = 22
	SelectAck              ServiceIdentifier = 23
	QuitAck                ServiceIdentifier = 25
	LogoutAck              ServiceIdentifier = 26
	LoginNegativeAck       ServiceIdentifier = 42
	SelectNegativeAck      ServiceIdentifier = 43
)

var serviceIdentifierNames = map[ServiceIdentifier]string{
	ServiceMessage:       "Message",
	LoginRequest:         "LoginRequest",
	Select:               "Select",
	Quit:                 "Quit",
	Logout:               "Logout",
	RemoveTerminalRequest: "RemoveTerminalRequest",
	SystemLogout:         "SystemLogout",
	MessageAck:           "MessageAck",
	LoginAck:             "LoginAck",
	SelectAck:            "SelectAck",
	QuitAck:              "QuitAck",
	LogoutAck:            "LogoutAck",
	LoginNegativeAck:     "LoginNegativeAck",
	SelectNegativeAck:    "SelectNegativeAck",
}

// String implements fmt.Stringer.
func (s ServiceIdentifier) String() string {
	if name, ok := serviceIdentifierNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ServiceIdentifier(%d)", uint8(s))
}

// parseServiceIdentifier maps a decimal code to its enum value. Unknown
// codes are rejected per spec.md §3: the set is closed.
func parseServiceIdentifier(raw string) (ServiceIdentifier, error) {
	n, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return 0, errBadNumber("service_identifier", raw)
	}
	s := ServiceIdentifier(n)
	if _, ok := serviceIdentifierNames[s]; !ok {
		return 0, errBadEnum("service_identifier", raw)
	}
	return s, nil
}

// BasicHeader is the fixed-width record described in spec.md §3: a single
// application_identifier character, a two-digit service_identifier code,
// a 12-character logical terminal address, and two zero-padded decimal
// counters.
type BasicHeader struct {
	ApplicationIdentifier string
	ServiceIdentifier     ServiceIdentifier
	LogicalTerminal       string
	SessionNumber         uint32
	SequenceNumber        uint32
}

// DefaultBasicHeader is substituted whenever block 1 is absent from a
// Message.
func DefaultBasicHeader() BasicHeader {
	return BasicHeader{
		ApplicationIdentifier: "F",
		ServiceIdentifier:     ServiceMessage,
		LogicalTerminal:       "            ", // 12 spaces
		SessionNumber:         0,
		SequenceNumber:        0,
	}
}

// DecodeBasicHeader parses the content of block 1.
func DecodeBasicHeader(content string) (BasicHeader, error) {
	c := NewCursor(content)

	appID, err := c.NChars(1)
	if err != nil {
		return BasicHeader{}, errUnexpectedEnd("application_identifier")
	}

	svcRaw, err := c.NChars(2)
	if err != nil {
		return BasicHeader{}, errUnexpectedEnd("service_identifier")
	}
	svc, err := parseServiceIdentifier(svcRaw)
	if err != nil {
		return BasicHeader{}, err
	}

	lt, err := c.NChars(12)
	if err != nil {
		return BasicHeader{}, errUnexpectedEnd("logical_terminal")
	}

	sessRaw, err := c.NChars(4)
	if err != nil {
		return BasicHeader{}, errUnexpectedEnd("session_number")
	}
	sess, err := strconv.ParseUint(sessRaw, 10, 32)
	if err != nil {
		return BasicHeader{}, errBadNumber("session_number", sessRaw)
	}

	seqRaw, err := c.NChars(6)
	if err != nil {
		return BasicHeader{}, errUnexpectedEnd("sequence_number")
	}
	seq, err := strconv.ParseUint(seqRaw, 10, 32)
	if err != nil {
		return BasicHeader{}, errBadNumber("sequence_number", seqRaw)
	}

	return BasicHeader{
		ApplicationIdentifier: appID,
		ServiceIdentifier:     svc,
		LogicalTerminal:       lt,
		SessionNumber:         uint32(sess),
		SequenceNumber:        uint32(seq),
	}, nil
}

// EncodeBasicHeader deterministically re-serialises h, zero-padding the
// numeric fields to their fixed widths.
func EncodeBasicHeader(h BasicHeader) string {
	return fmt.Sprintf("%s%02d%s%04d%06d",
		h.ApplicationIdentifier,
		uint8(h.ServiceIdentifier),
		h.LogicalTerminal,
		h.SessionNumber,
		h.SequenceNumber,
	)
}
