package vdf

import (
	"encoding"
	"fmt"
	"reflect"
)

var (
	unmarshalerType     = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

func unmarshalValue(d *Decoder, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return &MessageError{Msg: "decode target must be a non-nil pointer"}
	}
	return unmarshalReflect(d, rv.Elem())
}

// unmarshalReflect decodes one value into rv, which must be settable.
func unmarshalReflect(d *Decoder, rv reflect.Value) error {
	typ := rv.Type()

	if rv.CanAddr() {
		pt := rv.Addr().Type()
		if pt.Implements(unmarshalerType) {
			return rv.Addr().Interface().(Unmarshaler).UnmarshalVDF(d)
		}
		if pt.Implements(textUnmarshalerType) {
			tag, err := d.Enum()
			if err != nil {
				return err
			}
			if err := rv.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(tag)); err != nil {
				return &MessageError{Msg: err.Error()}
			}
			return nil
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		v, err := d.Bool()
		if err != nil {
			return err
		}
		rv.SetBool(v)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := d.Int(typ.Bits())
		if err != nil {
			return err
		}
		rv.SetInt(v)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v, err := d.Uint(typ.Bits())
		if err != nil {
			return err
		}
		rv.SetUint(v)
		return nil
	case reflect.Float32, reflect.Float64:
		v, err := d.Float(typ.Bits())
		if err != nil {
			return err
		}
		rv.SetFloat(v)
		return nil
	case reflect.String:
		v, err := d.String()
		if err != nil {
			return err
		}
		rv.SetString(v)
		return nil
	case reflect.Ptr:
		// Optional-present: the format cannot mark absence, so a
		// pointer target always decodes its pointee.
		if rv.IsNil() {
			rv.Set(reflect.New(typ.Elem()))
		}
		return unmarshalReflect(d, rv.Elem())
	case reflect.Struct:
		return unmarshalStruct(d, rv)
	case reflect.Map:
		return unmarshalMap(d, rv)
	case reflect.Slice, reflect.Array:
		if typ.Elem().Kind() == reflect.Uint8 {
			return &UnsupportedTypeError{Kind: "byte array"}
		}
		if rv.Kind() == reflect.Array {
			return &UnsupportedTypeError{Kind: "tuple"}
		}
		return &UnsupportedTypeError{Kind: "seq"}
	case reflect.Interface:
		// There is no type information in the format to pick a
		// concrete shape from.
		return d.Any()
	default:
		return &UnsupportedTypeError{Kind: rv.Kind().String()}
	}
}

func unmarshalStruct(d *Decoder, rv reflect.Value) error {
	typ := rv.Type()
	fields, err := structFields(typ)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return &UnsupportedTypeError{Kind: "unit struct"}
	}
	var mr *MapReader
	if typ.Name() == "" {
		mr, err = d.Map()
	} else {
		mr, err = d.Struct(typ.Name())
	}
	if err != nil {
		return err
	}
	for {
		more, err := mr.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		key, err := d.String()
		if err != nil {
			return err
		}
		f, ok := fieldByName(fields, key)
		if !ok {
			// Mirrors the reference: an unknown field would need a
			// shape-agnostic skip, which the format cannot provide.
			return fmt.Errorf("field %q: %w", key, d.Any())
		}
		if err := unmarshalReflect(d, rv.FieldByIndex(f.index)); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}
	return mr.Close()
}

// unmarshalMap decodes a group into a map. A defined (named) map type
// is a single-field wrapper shape: at the top level its type name is
// checked as the document name before the group opens.
func unmarshalMap(d *Decoder, rv reflect.Value) error {
	typ := rv.Type()
	if typ.Name() != "" {
		if err := d.Named(typ.Name()); err != nil {
			return err
		}
	}
	mr, err := d.Map()
	if err != nil {
		return err
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(typ))
	}
	for {
		more, err := mr.Next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
		key := reflect.New(typ.Key()).Elem()
		if err := unmarshalReflect(d, key); err != nil {
			return err
		}
		val := reflect.New(typ.Elem()).Elem()
		if err := unmarshalReflect(d, val); err != nil {
			return err
		}
		rv.SetMapIndex(key, val)
	}
	return mr.Close()
}
