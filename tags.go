package vdf

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// structField describes one encodable entry of a struct, after tag
// renaming and embedded-struct flattening.
type structField struct {
	name  string
	index []int
}

var fieldCache sync.Map // reflect.Type -> []structField

// structFields returns the encodable fields of typ in declaration
// order. Field names come from the `vdf:"..."` tag when present,
// otherwise the Go field name; `vdf:"-"` omits a field. Embedded
// structs are flattened into the parent; a name collision between an
// embedded field and any other field is an error.
func structFields(typ reflect.Type) ([]structField, error) {
	if cached, ok := fieldCache.Load(typ); ok {
		return cached.([]structField), nil
	}
	seen := map[string]bool{}
	fields, err := appendStructFields(nil, typ, nil, seen)
	if err != nil {
		return nil, err
	}
	fieldCache.Store(typ, fields)
	return fields, nil
}

func appendStructFields(fields []structField, typ reflect.Type, index []int, seen map[string]bool) ([]structField, error) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("vdf")
		if tag == "-" {
			continue
		}
		idx := append(append([]int(nil), index...), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct && tag == "" {
			var err error
			fields, err = appendStructFields(fields, f.Type, idx, seen)
			if err != nil {
				return nil, err
			}
			continue
		}
		name := f.Name
		if tag != "" {
			// Only the name part; options after a comma are reserved.
			if j := strings.IndexByte(tag, ','); j >= 0 {
				tag = tag[:j]
			}
			if tag != "" {
				name = tag
			}
		}
		if seen[name] {
			return nil, &MessageError{Msg: fmt.Sprintf("duplicate field name %q in %s", name, typ)}
		}
		seen[name] = true
		fields = append(fields, structField{name: name, index: idx})
	}
	return fields, nil
}

// fieldByName resolves a document key to a struct field: exact tag or
// field name first, then a unique case-insensitive match.
func fieldByName(fields []structField, key string) (structField, bool) {
	for _, f := range fields {
		if f.name == key {
			return f, true
		}
	}
	for _, f := range fields {
		if strings.EqualFold(f.name, key) {
			return f, true
		}
	}
	return structField{}, false
}
