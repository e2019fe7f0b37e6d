// Package swiftmt decodes and encodes SWIFT MT wire messages: the
// brace-delimited block framing of blocks 1, 2, 3, 4 and 5, the fixed-width
// basic header, the direction-discriminated application header, and the
// tag dictionaries of the user header and trailer.
//
// The wire grammar itself lives in the wire subpackage; this package is a
// thin façade exposing the public operations spec.md §6 names, so callers
// never need to import wire directly.
package swiftmt

import "github.com/finwire/swiftmt/wire"

// A Message is the decoded form of a raw SWIFT MT message.
type Message = wire.Message

// BasicHeader is block 1's fixed-width record.
type BasicHeader = wire.BasicHeader

// ApplicationHeader is block 2's direction-discriminated record.
type ApplicationHeader = wire.ApplicationHeader

// UserHeader is block 3's tag dictionary.
type UserHeader = wire.UserHeader

// Trailer is block 5's tag dictionary.
type Trailer = wire.Trailer

// Direction discriminates an ApplicationHeader between input and output
// forms, or marks it absent.
type Direction = wire.Direction

const (
	DirectionEmpty  = wire.DirectionEmpty
	DirectionInput  = wire.DirectionInput
	DirectionOutput = wire.DirectionOutput
)

// Parse decodes a raw SWIFT MT message. Missing blocks 1, 2, 3 and 5 are
// replaced by their typed defaults.
func Parse(raw string) (*Message, error) {
	return wire.Parse(raw)
}

// EncodeBasicHeader re-serialises a BasicHeader to its fixed-width wire
// form, without the surrounding "{1:...}" braces.
func EncodeBasicHeader(h BasicHeader) string {
	return wire.EncodeBasicHeader(h)
}

// EncodeUserHeader re-serialises a UserHeader to its "{3:...}" wire form.
func EncodeUserHeader(h UserHeader) string {
	return wire.EncodeUserHeader(h)
}

// EncodeTrailer re-serialises a Trailer to its "{5:...}" wire form.
func EncodeTrailer(t Trailer) string {
	return wire.EncodeTrailer(t)
}
