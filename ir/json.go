package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// MarshalJSON renders the node as plain JSON: objects stay objects in
// entry order, and every leaf is a JSON string (the format is
// stringly-typed; no numeric reinterpretation is attempted).
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *Node) error {
	if n.Type == StringType {
		d, err := json.Marshal(n.String)
		if err != nil {
			return err
		}
		buf.Write(d)
		return nil
	}
	buf.WriteByte('{')
	for i, f := range n.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if err := writeJSON(buf, n.Values[i]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSON reads plain JSON into the node, preserving object
// entry order. JSON scalars map onto the stringly value model: bools
// become "1"/"0" and numbers keep their literal text. Arrays and
// nulls have no representation and are rejected.
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	node, err := readJSON(dec)
	if err != nil {
		return err
	}
	// One document per input, as on the VDF side.
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return err
		}
		return fmt.Errorf("trailing data after JSON value: %v", tok)
	}
	*n = *node
	return nil
}

func readJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case string:
		return FromString(v), nil
	case json.Number:
		return FromString(v.String()), nil
	case bool:
		if v {
			return FromString("1"), nil
		}
		return FromString("0"), nil
	case nil:
		return nil, fmt.Errorf("JSON null has no VDF representation")
	case json.Delim:
		switch v {
		case '{':
			obj := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				val, err := readJSON(dec)
				if err != nil {
					return nil, fmt.Errorf("key %q: %w", key, err)
				}
				obj.Fields = append(obj.Fields, key)
				obj.Values = append(obj.Values, val)
			}
			// Consume the closing '}'.
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			return nil, fmt.Errorf("JSON arrays have no VDF representation")
		}
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}

// FromAny builds a node from decoded generic data (JSON- or
// YAML-shaped). Scalars are stringified as in UnmarshalJSON; map keys
// are sorted when the source carries no order.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case string:
		return FromString(x), nil
	case bool:
		if x {
			return FromString("1"), nil
		}
		return FromString("0"), nil
	case int:
		return FromString(strconv.Itoa(x)), nil
	case int64:
		return FromString(strconv.FormatInt(x, 10)), nil
	case uint64:
		return FromString(strconv.FormatUint(x, 10)), nil
	case float64:
		return FromString(strconv.FormatFloat(x, 'g', -1, 64)), nil
	case json.Number:
		return FromString(x.String()), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := Object()
		for _, k := range keys {
			val, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			obj.Set(k, val)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%T has no VDF representation", v)
	}
}

// ToAny returns the node as generic data: a string, or a
// map[string]any (entry order is lost; use the node itself where order
// matters).
func (n *Node) ToAny() any {
	if n.Type == StringType {
		return n.String
	}
	m := make(map[string]any, len(n.Fields))
	for i, f := range n.Fields {
		m[f] = n.Values[i].ToAny()
	}
	return m
}
