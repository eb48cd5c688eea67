package section

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/nbtrock/endian"
	"github.com/arloliu/nbtrock/errs"
	"github.com/arloliu/nbtrock/format"
)

// Header is the optional 8-byte framing header of the Bedrock storage variant.
//
// Layout (always little-endian, independent of the tag stream's byte order):
//
//	Bytes | Field  | Type   | Description
//	------|--------|--------|------------------------------------------
//	0-3   | Magic  | int32  | always 8 on write
//	4-7   | Length | uint32 | size of the tag stream following the header
type Header struct {
	Magic  int32
	Length uint32
}

// NewHeader creates a framing header for a body of bodyLen bytes.
func NewHeader(bodyLen int) Header {
	return Header{
		Magic:  format.HeaderMagic,
		Length: uint32(bodyLen), //nolint:gosec
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 8 bytes)
//
// Returns:
//   - error: ErrTruncated if data is not 8 bytes
func (h *Header) Parse(data []byte) error {
	if len(data) != format.HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, got %d", errs.ErrTruncated, format.HeaderSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	h.Magic = int32(engine.Uint32(data[0:4])) //nolint:gosec
	h.Length = engine.Uint32(data[4:8])

	return nil
}

// Bytes serializes the Header into a byte slice.
func (h Header) Bytes() []byte {
	return h.Append(make([]byte, 0, format.HeaderSize))
}

// Append appends the serialized header to dst.
func (h Header) Append(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()
	dst = engine.AppendUint32(dst, uint32(h.Magic)) //nolint:gosec

	return engine.AppendUint32(dst, h.Length)
}

// IsFramed reports whether data starts with the framing magic.
//
// This is the reader's heuristic: the first four bytes are read as a little-endian
// int32 and compared with 8. The declared length is not checked, so an unframed
// stream that happens to start with those bytes is treated as framed.
func IsFramed(data []byte) bool {
	if len(data) < 4 {
		return false
	}

	return int32(endian.GetLittleEndianEngine().Uint32(data[0:4])) == format.HeaderMagic //nolint:gosec
}

// Peek reads exactly HeaderSize bytes from r without requiring more to exist.
//
// It returns ok=false, with a nil error, when the stream ends before 8 bytes are
// available. Any other read failure is returned unchanged.
func Peek(r io.Reader) (hdr [format.HeaderSize]byte, ok bool, err error) {
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return [format.HeaderSize]byte{}, false, nil
		}

		return [format.HeaderSize]byte{}, false, err
	}

	return hdr, true, nil
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < format.HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, got %d", errs.ErrTruncated, format.HeaderSize, len(data))
	}

	h := Header{}
	if err := h.Parse(data[:format.HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
