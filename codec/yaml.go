package codec

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	dataapi "github.com/mschae23/data-api"
)

// FromYAML parses one YAML document into an Element using the yaml.v3 Node
// API, which preserves mapping key order. Integers that fit 32 bits become
// Int, larger ones Long; floats become Double.
func FromYAML(data []byte) (dataapi.Element, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return dataapi.Absent(), yamlError(err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return dataapi.Null(), nil
	}
	return elementFromYAMLNode(doc.Content[0])
}

func elementFromYAMLNode(node *yaml.Node) (dataapi.Element, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return elementFromYAMLNode(node.Alias)
	case yaml.ScalarNode:
		return elementFromYAMLScalar(node)
	case yaml.SequenceNode:
		items := make([]dataapi.Element, 0, len(node.Content))
		for _, child := range node.Content {
			el, err := elementFromYAMLNode(child)
			if err != nil {
				return dataapi.Absent(), err
			}
			items = append(items, el)
		}
		return dataapi.Array(items...), nil
	case yaml.MappingNode:
		obj := dataapi.NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return dataapi.Absent(), yamlError(fmt.Errorf("line %d: non-scalar mapping key", key.Line))
			}
			val, err := elementFromYAMLNode(node.Content[i+1])
			if err != nil {
				return dataapi.Absent(), err
			}
			obj.Set(key.Value, val)
		}
		return dataapi.ObjectOf(obj), nil
	default:
		return dataapi.Absent(), yamlError(fmt.Errorf("line %d: unsupported node kind %d", node.Line, node.Kind))
	}
}

func elementFromYAMLScalar(node *yaml.Node) (dataapi.Element, error) {
	switch node.Tag {
	case "!!null":
		return dataapi.Null(), nil
	case "!!bool":
		v, err := strconv.ParseBool(node.Value)
		if err != nil {
			return dataapi.Absent(), yamlError(err)
		}
		return dataapi.Boolean(v), nil
	case "!!int":
		i, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return dataapi.Absent(), yamlError(err)
		}
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return dataapi.Int(int32(i)), nil
		}
		return dataapi.Long(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return dataapi.Absent(), yamlError(err)
		}
		return dataapi.Double(f), nil
	default:
		return dataapi.String(node.Value), nil
	}
}

// ToYAML serializes an Element, keeping object insertion order.
func ToYAML(el dataapi.Element) ([]byte, error) {
	node, err := yamlNodeFromElement(el)
	if err != nil {
		return nil, err
	}
	out, merr := yaml.Marshal(node)
	if merr != nil {
		return nil, yamlError(merr)
	}
	return out, nil
}

func yamlNodeFromElement(el dataapi.Element) (*yaml.Node, error) {
	switch el.Kind() {
	case dataapi.KindNull:
		return scalarNode("!!null", "null"), nil
	case dataapi.KindBoolean:
		v, _ := el.BoolValue()
		return scalarNode("!!bool", strconv.FormatBool(v)), nil
	case dataapi.KindInt:
		v, _ := el.IntValue()
		return scalarNode("!!int", strconv.FormatInt(int64(v), 10)), nil
	case dataapi.KindLong:
		v, _ := el.LongValue()
		return scalarNode("!!int", strconv.FormatInt(v, 10)), nil
	case dataapi.KindFloat:
		v, _ := el.FloatValue()
		return scalarNode("!!float", strconv.FormatFloat(float64(v), 'g', -1, 32)), nil
	case dataapi.KindDouble:
		v, _ := el.DoubleValue()
		return scalarNode("!!float", strconv.FormatFloat(v, 'g', -1, 64)), nil
	case dataapi.KindString:
		v, _ := el.StringValue()
		return scalarNode("!!str", v), nil
	case dataapi.KindArray:
		items, _ := el.Items()
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, it := range items {
			child, err := yamlNodeFromElement(it)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case dataapi.KindObject:
		obj, _ := el.Object()
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var rangeErr error
		obj.Range(func(k string, v dataapi.Element) bool {
			child, err := yamlNodeFromElement(v)
			if err != nil {
				rangeErr = err
				return false
			}
			node.Content = append(node.Content, scalarNode("!!str", k), child)
			return true
		})
		if rangeErr != nil {
			return nil, rangeErr
		}
		return node, nil
	default:
		return nil, yamlError(fmt.Errorf("cannot serialize %s element", el.Kind()))
	}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func yamlError(err error) error {
	msg := err.Error()
	return dataapi.Errors{dataapi.NewValidationError(func(path string) string {
		return fmt.Sprintf("yaml: %s at %s", msg, path)
	}, dataapi.Absent())}
}
