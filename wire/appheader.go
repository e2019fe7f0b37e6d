package wire

import "time"

// Direction discriminates the ApplicationHeader union.
type Direction uint8

const (
	DirectionEmpty Direction = iota
	DirectionInput
	DirectionOutput
)

// ApplicationHeader is the tagged union described in spec.md §3,
// discriminated by the first character of block 2: 'I' for Input, 'O' for
// Output, and Empty when the block is absent. Only the fields that apply
// to Direction are populated; the rest are the zero value.
type ApplicationHeader struct {
	Direction Direction

	// Input fields.
	MessageType         string
	Destination         string
	Priority            string
	DeliveryMonitoring   string
	ObsolescencePeriod  string

	// Output fields.
	SenderTime       string
	SenderDate       string
	SenderDateTime   time.Time
	SenderAddress    string
	SessionNumber    string
	SequenceNumber   string
	ReceiverDate     string
	ReceiverTime     string
	ReceiverDateTime time.Time
	MessagePriority  string
}

// DefaultApplicationHeader is substituted whenever block 2 is absent.
func DefaultApplicationHeader() ApplicationHeader {
	return ApplicationHeader{Direction: DirectionEmpty}
}

// DecodeApplicationHeader parses the content of block 2. The first byte
// discriminates Input ('I') from Output ('O'); any other byte is an error.
func DecodeApplicationHeader(content string) (ApplicationHeader, error) {
	c := NewCursor(content)

	dir := c.Peek()
	switch dir {
	case 'I':
		c.Next()
		return decodeInputHeader(c)
	case 'O':
		c.Next()
		return decodeOutputHeader(c)
	case eos:
		return ApplicationHeader{}, errUnexpectedEnd("application_header direction")
	default:
		return ApplicationHeader{}, errUnexpectedChar("application_header direction", "I or O", string(dir))
	}
}

func decodeInputHeader(c *Cursor) (ApplicationHeader, error) {
	messageType, err := c.NChars(3)
	if err != nil {
		return ApplicationHeader{}, errUnexpectedEnd("message_type")
	}
	destination, err := c.NChars(12)
	if err != nil {
		return ApplicationHeader{}, errUnexpectedEnd("destination")
	}
	priority, err := c.NChars(1)
	if err != nil {
		return ApplicationHeader{}, errUnexpectedEnd("priority")
	}

	// Optional tail: EOS here is not an error, it yields empty strings.
	// This quirk is deliberately isolated to the Input decoder, per
	// spec.md §9 — the Cursor API itself never recovers silently.
	deliveryMonitoring, err := c.NChars(1)
	if err != nil {
		deliveryMonitoring = ""
	}
	obsolescencePeriod, err := c.NChars(3)
	if err != nil {
		obsolescencePeriod = ""
	}

	return ApplicationHeader{
		Direction:           DirectionInput,
		MessageType:         messageType,
		Destination:         destination,
		Priority:            priority,
		DeliveryMonitoring:  deliveryMonitoring,
		ObsolescencePeriod:  obsolescencePeriod,
	}, nil
}

func decodeOutputHeader(c *Cursor) (ApplicationHeader, error) {
	messageType, err := c.NChars(3)
	if err != nil {
		return ApplicationHeader{}, errUnexpectedEnd("message_type")
	}
	senderTime, err := c.NChars(4)
	if err != nil {
		return ApplicationHeader{}, errUnexpectedEnd("sender_time")
	}
	senderDate, err := c.NChars(6)
	if err != nil {
		return ApplicationHeader{}, errUnexpectedEnd("sender_date")
	}
	senderDateTime, err := parseYYMMDDHHMM(senderDate, senderTime)
	if err != nil {
		return ApplicationHeader{}, errBadDateTime("sender_datetime", senderDate+senderTime)
	}

	senderAddress, err := c.NChars(12)
	if err != nil {
		return ApplicationHeader{}, errUnexpectedEnd("sender_address")
	}
	sessionNumber, err := c.NChars(4)
	if err != nil {
		return ApplicationHeader{}, errUnexpectedEnd("session_number")
	}
	sequenceNumber, err := c.NChars(6)
	if err != nil {
		return ApplicationHeader{}, errUnexpectedEnd("sequence_number")
	}

	receiverDate, err := c.NChars(6)
	if err != nil {
		return ApplicationHeader{}, errUnexpectedEnd("receiver_date")
	}
	receiverTime, err := c.NChars(4)
	if err != nil {
		return ApplicationHeader{}, errUnexpectedEnd("receiver_time")
	}
	receiverDateTime, err := parseYYMMDDHHMM(receiverDate, receiverTime)
	if err != nil {
		return ApplicationHeader{}, errBadDateTime("receiver_datetime", receiverDate+receiverTime)
	}

	messagePriority, err := c.NChars(1)
	if err != nil {
		return ApplicationHeader{}, errUnexpectedEnd("message_priority")
	}

	return ApplicationHeader{
		Direction:        DirectionOutput,
		MessageType:      messageType,
		SenderTime:       senderTime,
		SenderDate:       senderDate,
		SenderDateTime:   senderDateTime,
		SenderAddress:    senderAddress,
		SessionNumber:    sessionNumber,
		SequenceNumber:   sequenceNumber,
		ReceiverDate:     receiverDate,
		ReceiverTime:     receiverTime,
		ReceiverDateTime: receiverDateTime,
		MessagePriority:  messagePriority,
	}, nil
}

// parseYYMMDDHHMM combines a 6-digit YYMMDD date and a 4-digit HHMM time
// into a UTC timestamp, matching the original Rust parser's
// "%y%m%d%H%M" format.
func parseYYMMDDHHMM(date, timeOfDay string) (time.Time, error) {
	t, err := time.Parse("060102 1504", date+" "+timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
