package ir

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// MarshalYAML renders the node as YAML with entry order preserved.
func (n *Node) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(n.toYAML())
}

func (n *Node) toYAML() any {
	if n.Type == StringType {
		return n.String
	}
	ms := make(yaml.MapSlice, 0, len(n.Fields))
	for i, f := range n.Fields {
		ms = append(ms, yaml.MapItem{Key: f, Value: n.Values[i].toYAML()})
	}
	return ms
}

// UnmarshalYAML reads YAML into the node, preserving mapping order and
// stringifying scalars the same way the JSON bridge does.
func (n *Node) UnmarshalYAML(data []byte) error {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return err
	}
	node, err := fromYAML(v)
	if err != nil {
		return err
	}
	*n = *node
	return nil
}

func fromYAML(v any) (*Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		obj := Object()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprintf("%v", item.Key)
			}
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			obj.Set(key, val)
		}
		return obj, nil
	case []any:
		return nil, fmt.Errorf("YAML sequences have no VDF representation")
	case nil:
		return nil, fmt.Errorf("YAML null has no VDF representation")
	default:
		return FromAny(v)
	}
}
