// Package encoding reads and writes the binary named-tag (NBT) format.
//
// A Decoder walks an in-memory byte slice by recursive descent and produces a
// tree.Tree; an Encoder does the reverse into a pooled buffer. Both share the
// same functional options:
//
//	d, err := encoding.NewDecoder(data)
//	t, err := d.Decode()
//
//	e, err := encoding.NewEncoder(encoding.WithFramingHeader(true))
//	out, err := e.Encode(t)
//
// # Wire Layout
//
// Every named tag is written as a one-byte tag id, a uint16 length-prefixed
// UTF-8 name and the payload. Payload layouts:
//
//	id   | tag        | payload
//	-----|------------|-------------------------------------------------------
//	0x01 | Byte       | 1 signed byte
//	0x02 | Short      | int16
//	0x03 | Int        | int32
//	0x04 | Long       | int64
//	0x05 | Float      | IEEE-754 binary32
//	0x06 | Double     | IEEE-754 binary64
//	0x07 | ByteArray  | int32 count + count signed bytes
//	0x08 | String     | uint16 length + UTF-8 bytes
//	0x09 | List       | element id byte + int32 count + count unnamed payloads
//	0x0A | Compound   | named tags until a single 0x00 byte
//	0x0B | IntArray   | int32 count + count int32
//	0x0C | LongArray  | int32 count + count int64
//
// The root is always a Compound. Multi-byte fields are little-endian by default
// (Bedrock edition); WithBigEndian switches to Java edition byte order.
//
// # Framing Header
//
// The Bedrock storage variant may prefix the stream with 8 bytes: an int32 magic
// of 8 and the uint32 length of the stream that follows, both little-endian.
// The Decoder skips the header whenever the first four bytes read as 8 (see
// section.IsFramed); the Encoder writes it only with WithFramingHeader(true).
//
// # Validation
//
// Decoding trusts a list's declared element id and does not compare elements with
// each other. Encoding checks every list up front and fails with
// errs.HeterogeneousListError before writing any of its bytes. Nesting of
// compounds and lists is bounded by WithMaxDepth on both sides.
package encoding
