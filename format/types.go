package format

import "strings"

// TagID is the one-byte discriminant that precedes every named tag on the wire.
// It is also the homogeneity key of a List.
type TagID uint8

const (
	TagEnd       TagID = 0x00 // TagEnd terminates a Compound; never carries a payload.
	TagByte      TagID = 0x01 // TagByte is a signed 8-bit integer.
	TagShort     TagID = 0x02 // TagShort is a signed 16-bit integer.
	TagInt       TagID = 0x03 // TagInt is a signed 32-bit integer.
	TagLong      TagID = 0x04 // TagLong is a signed 64-bit integer.
	TagFloat     TagID = 0x05 // TagFloat is an IEEE-754 binary32.
	TagDouble    TagID = 0x06 // TagDouble is an IEEE-754 binary64.
	TagByteArray TagID = 0x07 // TagByteArray is a length-prefixed run of signed bytes.
	TagString    TagID = 0x08 // TagString is a uint16 length-prefixed UTF-8 string.
	TagList      TagID = 0x09 // TagList is a homogeneous sequence of unnamed tags.
	TagCompound  TagID = 0x0A // TagCompound is an ordered set of named tags.
	TagIntArray  TagID = 0x0B // TagIntArray is a length-prefixed run of signed 32-bit integers.
	TagLongArray TagID = 0x0C // TagLongArray is a length-prefixed run of signed 64-bit integers.
)

// Framing header used by the Bedrock storage variant.
const (
	HeaderSize  = 8 // HeaderSize is the size of the optional framing header: int32 magic + uint32 length.
	HeaderMagic = 8 // HeaderMagic is the little-endian int32 that opens a framed stream.
)

// Wire limits.
const (
	MaxStringLength = 0xFFFF // MaxStringLength is the largest byte length a uint16 prefix can carry.
	DefaultMaxDepth = 512    // DefaultMaxDepth bounds Compound/List nesting on decode and encode.
)

// Valid reports whether id names one of the twelve payload-carrying tags.
func (id TagID) Valid() bool {
	return id >= TagByte && id <= TagLongArray
}

// String returns the display label used by dumps, e.g. "TAG_Int".
func (id TagID) String() string {
	switch id {
	case TagEnd:
		return "TAG_End"
	case TagByte:
		return "TAG_Byte"
	case TagShort:
		return "TAG_Short"
	case TagInt:
		return "TAG_Int"
	case TagLong:
		return "TAG_Long"
	case TagFloat:
		return "TAG_Float"
	case TagDouble:
		return "TAG_Double"
	case TagByteArray:
		return "TAG_ByteArray"
	case TagString:
		return "TAG_String"
	case TagList:
		return "TAG_List"
	case TagCompound:
		return "TAG_Compound"
	case TagIntArray:
		return "TAG_IntArray"
	case TagLongArray:
		return "TAG_LongArray"
	default:
		return "Unknown"
	}
}

// Kind returns the short variant name ("Int", "ByteArray", ...) used by the
// externally tagged export and by the CLI --type flag.
func (id TagID) Kind() string {
	if !id.Valid() {
		return "Unknown"
	}

	return id.String()[len("TAG_"):]
}

// ParseKind maps a variant name back to its TagID. Matching is case-insensitive.
func ParseKind(s string) (TagID, bool) {
	for id := TagByte; id <= TagLongArray; id++ {
		if strings.EqualFold(id.Kind(), s) {
			return id, true
		}
	}

	return TagEnd, false
}
