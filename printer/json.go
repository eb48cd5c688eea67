package printer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/nbtrock/tag"
	"github.com/arloliu/nbtrock/tree"
)

// printTreeJSON writes {"name": ..., "data": {"Compound": {...}}}.
func (p *Printer) printTreeJSON(t *tree.Tree) error {
	var buf bytes.Buffer
	buf.WriteString(`{"name":`)
	appendJSONString(&buf, t.Name)
	buf.WriteString(`,"data":`)
	if err := appendJSON(&buf, t.Root); err != nil {
		return err
	}
	buf.WriteByte('}')

	return p.writeIndentedJSON(buf.Bytes())
}

func (p *Printer) printValueJSON(v tag.Value) error {
	var buf bytes.Buffer
	if err := appendJSON(&buf, v); err != nil {
		return err
	}

	return p.writeIndentedJSON(buf.Bytes())
}

func (p *Printer) writeIndentedJSON(raw []byte) error {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("indent json: %w", err)
	}
	out.WriteByte('\n')

	_, err := out.WriteTo(p.writer)

	return err
}

// MarshalJSON returns the externally tagged JSON form of v.
//
// Every value is an object with a single key naming its kind:
//
//	{"Int": 3}
//	{"List": [{"String": "a"}, {"String": "b"}]}
//	{"Compound": {"key": {"Byte": 1}}}
//
// Compound keys keep their stored order. Non-finite floats become null.
func MarshalJSON(v tag.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := appendJSON(&buf, v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func appendJSON(buf *bytes.Buffer, v tag.Value) error {
	if v == nil {
		return fmt.Errorf("marshal json: nil value")
	}

	buf.WriteString(`{"`)
	buf.WriteString(v.ID().Kind())
	buf.WriteString(`":`)

	switch tv := v.(type) {
	case tag.Byte:
		buf.WriteString(strconv.FormatInt(int64(tv), 10))
	case tag.Short:
		buf.WriteString(strconv.FormatInt(int64(tv), 10))
	case tag.Int:
		buf.WriteString(strconv.FormatInt(int64(tv), 10))
	case tag.Long:
		buf.WriteString(strconv.FormatInt(int64(tv), 10))
	case tag.Float:
		appendJSONFloat(buf, float64(tv), 32)
	case tag.Double:
		appendJSONFloat(buf, float64(tv), 64)
	case tag.ByteArray:
		appendJSONInts(buf, tv)
	case tag.IntArray:
		appendJSONInts(buf, tv)
	case tag.LongArray:
		appendJSONInts(buf, tv)
	case tag.String:
		appendJSONString(buf, string(tv))
	case tag.List:
		buf.WriteByte('[')
		for i, elem := range tv {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *tag.Compound:
		buf.WriteByte('{')
		i := 0
		for name, child := range tv.All() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			appendJSONString(buf, name)
			buf.WriteByte(':')
			if err := appendJSON(buf, child); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	return nil
}

func appendJSONString(buf *bytes.Buffer, s string) {
	// marshaling a string cannot fail
	b, _ := json.Marshal(s)
	buf.Write(b)
}

func appendJSONFloat(buf *bytes.Buffer, f float64, bitSize int) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		buf.WriteString("null")
		return
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, bitSize))
}

func appendJSONInts[T int8 | int32 | int64](buf *bytes.Buffer, s []T) {
	buf.WriteByte('[')
	for i, n := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatInt(int64(n), 10))
	}
	buf.WriteByte(']')
}
