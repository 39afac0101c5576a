package vdf

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
)

var (
	marshalerType     = reflect.TypeOf((*Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

func marshalValue(e *Encoder, v any) error {
	if v == nil {
		return &MessageError{Msg: "can't encode nil in VDF"}
	}
	return marshalReflect(e, reflect.ValueOf(v))
}

func marshalReflect(e *Encoder, val reflect.Value) error {
	typ := val.Type()

	if typ.Implements(marshalerType) {
		if val.Kind() == reflect.Ptr && val.IsNil() {
			return &MessageError{Msg: "can't encode nil in VDF"}
		}
		return val.Interface().(Marshaler).MarshalVDF(e)
	}
	if typ.Kind() != reflect.Ptr && reflect.PtrTo(typ).Implements(marshalerType) {
		pv := reflect.New(typ)
		pv.Elem().Set(val)
		return pv.Interface().(Marshaler).MarshalVDF(e)
	}

	// Unit enum hook: the variant tag is the marshaled text.
	if typ.Implements(textMarshalerType) {
		if val.Kind() == reflect.Ptr && val.IsNil() {
			return &MessageError{Msg: "can't encode nil in VDF"}
		}
		text, err := val.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return &MessageError{Msg: err.Error()}
		}
		e.Enum(string(text))
		return nil
	}
	if typ.Kind() != reflect.Ptr && reflect.PtrTo(typ).Implements(textMarshalerType) {
		pv := reflect.New(typ)
		pv.Elem().Set(val)
		text, err := pv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return &MessageError{Msg: err.Error()}
		}
		e.Enum(string(text))
		return nil
	}

	switch val.Kind() {
	case reflect.Bool:
		e.Bool(val.Bool())
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.Int(val.Int())
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.Uint(val.Uint())
		return nil
	case reflect.Float32, reflect.Float64:
		e.Float(val.Float())
		return nil
	case reflect.String:
		e.String(val.String())
		return nil
	case reflect.Ptr:
		if val.IsNil() {
			return &MessageError{Msg: "can't encode nil in VDF"}
		}
		// Optional-present forwards to the wrapped value.
		return marshalReflect(e, val.Elem())
	case reflect.Interface:
		if val.IsNil() {
			return &MessageError{Msg: "can't encode nil in VDF"}
		}
		return marshalReflect(e, val.Elem())
	case reflect.Struct:
		return marshalStruct(e, val)
	case reflect.Map:
		return marshalMap(e, val)
	case reflect.Slice, reflect.Array:
		if typ.Elem().Kind() == reflect.Uint8 {
			return &MessageError{Msg: "can't encode byte arrays in VDF"}
		}
		return &MessageError{Msg: "can't encode arrays in VDF"}
	default:
		return &MessageError{Msg: fmt.Sprintf("can't encode %s in VDF", val.Kind())}
	}
}

func marshalStruct(e *Encoder, val reflect.Value) error {
	typ := val.Type()
	fields, err := structFields(typ)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return &MessageError{Msg: "can't encode unit structs in VDF"}
	}
	var w *MapWriter
	if typ.Name() == "" {
		// Anonymous struct types have no declared name to write.
		w = e.BeginMap()
	} else {
		w = e.BeginStruct(typ.Name())
	}
	for _, f := range fields {
		fv := val.FieldByIndex(f.index)
		if err := w.Field(f.name, func(e *Encoder) error {
			return marshalReflect(e, fv)
		}); err != nil {
			return fmt.Errorf("field %q: %w", f.name, err)
		}
	}
	w.End()
	return nil
}

// marshalMap writes a map as a group. Keys go through the ordinary
// scalar encoding, so non-string keys render in their textual form;
// decoding such a map back is not guaranteed to recover the key for
// every key type. Keys are sorted for deterministic output.
func marshalMap(e *Encoder, val reflect.Value) error {
	keys := val.MapKeys()
	sorted, err := sortMapKeys(keys)
	if err != nil {
		return err
	}
	w := e.BeginMap()
	for _, k := range sorted {
		if err := w.Key(func(e *Encoder) error {
			return marshalReflect(e, k)
		}); err != nil {
			return err
		}
		if err := w.Value(func(e *Encoder) error {
			return marshalReflect(e, val.MapIndex(k))
		}); err != nil {
			return err
		}
	}
	w.End()
	return nil
}

func sortMapKeys(keys []reflect.Value) ([]reflect.Value, error) {
	if len(keys) == 0 {
		return keys, nil
	}
	switch keys[0].Kind() {
	case reflect.String:
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Int() < keys[j].Int() })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Uint() < keys[j].Uint() })
	case reflect.Bool:
		sort.Slice(keys, func(i, j int) bool { return !keys[i].Bool() && keys[j].Bool() })
	case reflect.Float32, reflect.Float64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Float() < keys[j].Float() })
	default:
		return nil, &MessageError{Msg: fmt.Sprintf("can't encode %s map keys in VDF", keys[0].Kind())}
	}
	return keys, nil
}
