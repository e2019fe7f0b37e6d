package wire

import "fmt"

// Message is the composite of exactly one basic header, one application
// header, one user header, and one trailer. A present block 4 is retained
// as an opaque Block for later passes not modelled by this package; its
// body is never re-encoded here (spec.md's block-4 round-trip is a
// non-goal for this iteration).
type Message struct {
	BasicHeader       BasicHeader
	ApplicationHeader ApplicationHeader
	UserHeader        UserHeader
	Trailer           Trailer

	Body *Block // nil when block 4 is absent
}

// Parse decodes a raw SWIFT MT message. Missing blocks 1, 2, 3 and 5 are
// replaced by their typed defaults; the first decode failure from any
// sub-grammar short-circuits and is returned with its offending label or
// field attached.
func Parse(raw string) (*Message, error) {
	c := NewCursor(raw)
	blocks, err := Frame(c)
	if err != nil {
		return nil, err
	}

	m := &Message{
		BasicHeader:       DefaultBasicHeader(),
		ApplicationHeader: DefaultApplicationHeader(),
		UserHeader:        DefaultUserHeader(),
		Trailer:           DefaultTrailer(),
	}

	if b, ok := blocks[LabelBasicHeader]; ok {
		m.BasicHeader, err = DecodeBasicHeader(b.Content)
		if err != nil {
			return nil, err
		}
	}

	if b, ok := blocks[LabelApplicationHeader]; ok {
		m.ApplicationHeader, err = DecodeApplicationHeader(b.Content)
		if err != nil {
			return nil, err
		}
	}

	if b, ok := blocks[LabelUserHeader]; ok {
		m.UserHeader, err = DecodeUserHeader(b.Content)
		if err != nil {
			return nil, err
		}
	}

	if b, ok := blocks[LabelTrailer]; ok {
		m.Trailer, err = DecodeTrailer(b.Content)
		if err != nil {
			return nil, err
		}
	}

	if b, ok := blocks[LabelText]; ok {
		body := b
		m.Body = &body
	}

	return m, nil
}

// String renders a debug dump of m, built from the same encoders that
// produce the wire form of blocks 1, 3 and 5, plus block 4's opaque
// content when present. It is not itself valid wire input (block 2 is
// never re-encoded here), and exists only so a decoded Message can be
// inspected without reaching into every field by hand.
func (m *Message) String() string {
	s := fmt.Sprintf("{1:%s}", EncodeBasicHeader(m.BasicHeader))
	s += fmt.Sprintf("[application_header direction=%d]", m.ApplicationHeader.Direction)
	s += EncodeUserHeader(m.UserHeader)
	if m.Body != nil {
		s += fmt.Sprintf("{4:\r\n%s-}", m.Body.Content)
	}
	s += EncodeTrailer(m.Trailer)
	return s
}
