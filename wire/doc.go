// Package wire decodes (and re-encodes) SWIFT MT messages: ASCII-ish text
// organised into nested, brace-delimited blocks, with a fixed-width basic
// header, a variable application header discriminated by direction, a
// tag/value user-header block, a line-oriented message-text block, and a
// tag/value trailer block.
//
// # Pipeline
//
// Raw bytes flow through a Cursor (random-access character stream), a
// Framer (splits the stream into labelled Blocks), per-block decoders
// (BasicHeader, ApplicationHeader, UserHeader, Trailer), and finally
// Parse assembles the result into a Message.
//
// The parser is purely single-threaded and synchronous: no operation
// blocks on I/O, and a Cursor is never shared across goroutines. Separate
// Messages may be decoded concurrently by independent callers because
// nothing here holds process-wide state.
package wire
