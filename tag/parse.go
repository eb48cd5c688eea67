package tag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/nbtrock/errs"
	"github.com/arloliu/nbtrock/format"
)

// ParseValue converts a textual value into the variant named by id.
//
// Scalars use Go literal syntax (base prefixes are accepted for integers).
// Arrays take comma-separated elements; an empty string is an empty array.
// Compound accepts "" or "{}" and List accepts "" or "[]", both yielding empty containers.
// Strings are stored verbatim; every other kind ignores surrounding whitespace.
func ParseValue(id format.TagID, text string) (Value, error) {
	if id == format.TagString {
		if len(text) > format.MaxStringLength {
			return nil, fmt.Errorf("%w: %d bytes", errs.ErrStringTooLong, len(text))
		}

		return String(text), nil
	}
	text = strings.TrimSpace(text)

	switch id {
	case format.TagByte:
		n, err := strconv.ParseInt(text, 0, 8)
		if err != nil {
			return nil, invalidValue(id, text, err)
		}

		return Byte(n), nil
	case format.TagShort:
		n, err := strconv.ParseInt(text, 0, 16)
		if err != nil {
			return nil, invalidValue(id, text, err)
		}

		return Short(n), nil
	case format.TagInt:
		n, err := strconv.ParseInt(text, 0, 32)
		if err != nil {
			return nil, invalidValue(id, text, err)
		}

		return Int(n), nil
	case format.TagLong:
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, invalidValue(id, text, err)
		}

		return Long(n), nil
	case format.TagFloat:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, invalidValue(id, text, err)
		}

		return Float(f), nil
	case format.TagDouble:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, invalidValue(id, text, err)
		}

		return Double(f), nil
	case format.TagByteArray:
		vals, err := parseInts(id, text, 8)
		if err != nil {
			return nil, err
		}
		out := make(ByteArray, len(vals))
		for i, v := range vals {
			out[i] = int8(v)
		}

		return out, nil
	case format.TagIntArray:
		vals, err := parseInts(id, text, 32)
		if err != nil {
			return nil, err
		}
		out := make(IntArray, len(vals))
		for i, v := range vals {
			out[i] = int32(v)
		}

		return out, nil
	case format.TagLongArray:
		vals, err := parseInts(id, text, 64)
		if err != nil {
			return nil, err
		}

		return LongArray(vals), nil
	case format.TagList:
		if text != "" && text != "[]" {
			return nil, invalidValue(id, text, fmt.Errorf("only an empty list can be given as text"))
		}

		return List{}, nil
	case format.TagCompound:
		if text != "" && text != "{}" {
			return nil, invalidValue(id, text, fmt.Errorf("only an empty compound can be given as text"))
		}

		return NewCompound(), nil
	default:
		return nil, fmt.Errorf("%w: tag id 0x%02x has no value", errs.ErrInvalidValue, uint8(id))
	}
}

func parseInts(id format.TagID, text string, bitSize int) ([]int64, error) {
	text = strings.TrimSuffix(strings.TrimPrefix(text, "["), "]")
	if strings.TrimSpace(text) == "" {
		return []int64{}, nil
	}

	parts := strings.Split(text, ",")
	out := make([]int64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 0, bitSize)
		if err != nil {
			return nil, invalidValue(id, p, err)
		}
		out[i] = n
	}

	return out, nil
}

func invalidValue(id format.TagID, text string, cause error) error {
	return fmt.Errorf("%w: %q as %s: %w", errs.ErrInvalidValue, text, id.Kind(), cause)
}
