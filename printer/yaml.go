package printer

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/nbtrock/tag"
	"github.com/arloliu/nbtrock/tree"
)

// printTreeYAML writes a document with "name" and "data" keys.
//
//	name: Test
//	data:
//	  key: !Int 3
//	  pos: !IntArray [1, 64, -1]
func (p *Printer) printTreeYAML(t *tree.Tree) error {
	data, err := YAMLNode(t.Root)
	if err != nil {
		return err
	}

	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			strNode("name"), strNode(t.Name),
			strNode("data"), data,
		},
	}

	return p.encodeYAML(doc)
}

func (p *Printer) printValueYAML(v tag.Value) error {
	n, err := YAMLNode(v)
	if err != nil {
		return err
	}

	return p.encodeYAML(n)
}

func (p *Printer) encodeYAML(n *yaml.Node) error {
	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(DefaultIndentSize)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

// YAMLNode converts v into a yaml.Node.
//
// Compounds become mappings in stored order. Every other value carries a local
// tag naming its kind (!Byte, !String, !List, ...) so the tag type survives.
func YAMLNode(v tag.Value) (*yaml.Node, error) {
	if v == nil {
		return nil, fmt.Errorf("encode yaml: nil value")
	}
	kindTag := "!" + v.ID().Kind()

	switch tv := v.(type) {
	case tag.Byte:
		return scalarNode(kindTag, strconv.FormatInt(int64(tv), 10)), nil
	case tag.Short:
		return scalarNode(kindTag, strconv.FormatInt(int64(tv), 10)), nil
	case tag.Int:
		return scalarNode(kindTag, strconv.FormatInt(int64(tv), 10)), nil
	case tag.Long:
		return scalarNode(kindTag, strconv.FormatInt(int64(tv), 10)), nil
	case tag.Float:
		return scalarNode(kindTag, yamlFloat(float64(tv), 32)), nil
	case tag.Double:
		return scalarNode(kindTag, yamlFloat(float64(tv), 64)), nil
	case tag.String:
		n := scalarNode(kindTag, string(tv))
		n.Style = yaml.DoubleQuotedStyle

		return n, nil
	case tag.ByteArray:
		return intsNode(kindTag, tv), nil
	case tag.IntArray:
		return intsNode(kindTag, tv), nil
	case tag.LongArray:
		return intsNode(kindTag, tv), nil
	case tag.List:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: kindTag, Content: make([]*yaml.Node, 0, len(tv))}
		for _, elem := range tv {
			child, err := YAMLNode(elem)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		if len(tv) == 0 {
			n.Style = yaml.FlowStyle
		}

		return n, nil
	case *tag.Compound:
		n := &yaml.Node{Kind: yaml.MappingNode, Content: make([]*yaml.Node, 0, 2*tv.Len())}
		for name, child := range tv.All() {
			cn, err := YAMLNode(child)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, strNode(name), cn)
		}
		if tv.Len() == 0 {
			n.Style = yaml.FlowStyle
		}

		return n, nil
	default:
		return nil, fmt.Errorf("encode yaml: unsupported value %T", v)
	}
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func scalarNode(kindTag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: kindTag, Value: value}
}

func intsNode[T int8 | int32 | int64](kindTag string, s []T) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: kindTag, Style: yaml.FlowStyle, Content: make([]*yaml.Node, 0, len(s))}
	for _, v := range s {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(v), 10)})
	}

	return n
}

func yamlFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	default:
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
}
