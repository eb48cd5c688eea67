package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/arloliu/nbtrock/encoding"
	"github.com/arloliu/nbtrock/format"
	"github.com/arloliu/nbtrock/section"
	"github.com/arloliu/nbtrock/tag"
	"github.com/arloliu/nbtrock/tree"
)

// listItemName labels unnamed list elements.
const listItemName = "None"

type palette struct {
	label func(a ...any) string
	name  func(a ...any) string
	num   func(a ...any) string
	str   func(a ...any) string
	count func(a ...any) string
}

func newPalette(enabled bool) *palette {
	if !enabled {
		return &palette{label: fmt.Sprint, name: fmt.Sprint, num: fmt.Sprint, str: fmt.Sprint, count: fmt.Sprint}
	}

	sprint := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		c.EnableColor()

		return c.SprintFunc()
	}

	return &palette{
		label: sprint(color.FgBlue),
		name:  sprint(color.FgYellow),
		num:   sprint(color.FgCyan),
		str:   sprint(color.FgGreen),
		count: sprint(color.Faint),
	}
}

// printTreeText writes the name line, the framing header line and the root.
//
// Layout:
//
//	Name: "Test"
//	Header: [0x08, 0x00, 0x00, 0x00, 0x12, 0x00, 0x00, 0x00]
//	1 entry(ies)
//	{
//	  TAG_Int(key): 3
//	}
func (p *Printer) printTreeText(t *tree.Tree) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %q\n", t.Name)

	if p.opts.ShowHeader {
		hdr, err := framingHeader(t)
		if err != nil {
			return err
		}
		sb.WriteString("Header: [")
		for i, b := range hdr {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "0x%02X", b)
		}
		sb.WriteString("]\n")
	}

	p.writeText(&sb, t.Root, 0)
	sb.WriteByte('\n')

	_, err := fmt.Fprint(p.writer, sb.String())

	return err
}

// printValueText writes a single "TAG_X(name): value" line.
func (p *Printer) printValueText(name string, v tag.Value) error {
	var sb strings.Builder
	p.writeEntry(&sb, name, v, 0)
	sb.WriteByte('\n')

	_, err := fmt.Fprint(p.writer, sb.String())

	return err
}

// framingHeader returns the 8 header bytes the framed encoding of t starts with.
func framingHeader(t *tree.Tree) ([]byte, error) {
	e, err := encoding.NewEncoder()
	if err != nil {
		return nil, err
	}
	body, err := e.Encode(t)
	if err != nil {
		return nil, err
	}
	hdr := section.NewHeader(len(body))

	return hdr.Bytes(), nil
}

func (p *Printer) writeEntry(sb *strings.Builder, name string, v tag.Value, offset int) {
	id := format.TagEnd
	if v != nil {
		id = v.ID()
	}

	sb.WriteString(strings.Repeat(" ", offset))
	sb.WriteString(p.colors.label(id.String()))
	sb.WriteByte('(')
	sb.WriteString(p.colors.name(name))
	sb.WriteString("): ")
	p.writeText(sb, v, offset)
}

// writeText writes v; containers open a brace block indented by offset.
func (p *Printer) writeText(sb *strings.Builder, v tag.Value, offset int) {
	pad := strings.Repeat(" ", offset)

	switch tv := v.(type) {
	case tag.Byte:
		sb.WriteString(p.colors.num(strconv.FormatInt(int64(tv), 10)))
	case tag.Short:
		sb.WriteString(p.colors.num(strconv.FormatInt(int64(tv), 10)))
	case tag.Int:
		sb.WriteString(p.colors.num(strconv.FormatInt(int64(tv), 10)))
	case tag.Long:
		sb.WriteString(p.colors.num(strconv.FormatInt(int64(tv), 10)))
	case tag.Float:
		sb.WriteString(p.colors.num(strconv.FormatFloat(float64(tv), 'f', -1, 32)))
	case tag.Double:
		sb.WriteString(p.colors.num(strconv.FormatFloat(float64(tv), 'f', -1, 64)))
	case tag.ByteArray:
		sb.WriteString(p.colors.num(formatInts(tv)))
	case tag.IntArray:
		sb.WriteString(p.colors.num(formatInts(tv)))
	case tag.LongArray:
		sb.WriteString(p.colors.num(formatInts(tv)))
	case tag.String:
		sb.WriteString(p.colors.str(string(tv)))
	case tag.List:
		if len(tv) == 0 {
			sb.WriteString(p.colors.count("zero entries"))
			return
		}
		sb.WriteString(p.colors.count(fmt.Sprintf("%d entries of type %s", len(tv), tv.ElemID())))
		sb.WriteString("\n" + pad + "{\n")
		for _, elem := range tv {
			p.writeEntry(sb, listItemName, elem, offset+DefaultIndentSize)
			sb.WriteByte('\n')
		}
		sb.WriteString(pad + "}")
	case *tag.Compound:
		sb.WriteString(p.colors.count(fmt.Sprintf("%d entry(ies)", tv.Len())))
		sb.WriteString("\n" + pad + "{\n")
		for name, child := range tv.All() {
			p.writeEntry(sb, name, child, offset+DefaultIndentSize)
			sb.WriteByte('\n')
		}
		sb.WriteString(pad + "}")
	default:
		sb.WriteString("<nil>")
	}
}

func formatInts[T int8 | int32 | int64](s []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(int64(n), 10))
	}
	sb.WriteByte(']')

	return sb.String()
}
