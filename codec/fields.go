package codec

import (
	"reflect"
	"strings"
	"sync"
)

// FieldMapping is one row of an entity's field table.
type FieldMapping struct {
	Wire     string // wire key; empty for inline fields
	Model    string // Go field name
	Optional bool   // may be absent on the wire; omitted on encode when zero
	Inline   bool   // decoded from and encoded into the parent object
}

// Fields returns the field table of a struct value or type. The table
// comes from `wire:"..."` tags:
//
//	wire:"key"            required
//	wire:"key,omitempty"  optional
//	wire:",inline"        read from and written to the enclosing object
//	wire:"-"              ignored
//
// Anonymous struct fields are flattened into the parent. Untagged named
// fields are ignored.
func Fields(v any) []FieldMapping {
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	info := structFor(t)
	out := make([]FieldMapping, len(info.fields))
	for i, f := range info.fields {
		out[i] = FieldMapping{Wire: f.key, Model: f.name, Optional: f.optional, Inline: f.inline}
	}
	return out
}

type fieldInfo struct {
	name     string
	key      string
	index    []int
	typ      reflect.Type
	optional bool
	inline   bool
}

type structInfo struct {
	name   string
	fields []fieldInfo
}

var structCache sync.Map // reflect.Type → *structInfo

func structFor(t reflect.Type) *structInfo {
	if cached, ok := structCache.Load(t); ok {
		return cached.(*structInfo)
	}
	info := &structInfo{name: t.String()}
	collectFields(t, nil, &info.fields)
	actual, _ := structCache.LoadOrStore(t, info)
	return actual.(*structInfo)
}

func collectFields(t reflect.Type, prefix []int, out *[]fieldInfo) {
	for i := range t.NumField() {
		sf := t.Field(i)
		index := append(append([]int(nil), prefix...), i)
		tag, hasTag := sf.Tag.Lookup("wire")
		if tag == "-" {
			continue
		}
		key, opts, _ := strings.Cut(tag, ",")

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && key == "" {
			collectFields(sf.Type, index, out)
			continue
		}
		if !hasTag || !sf.IsExported() {
			continue
		}

		f := fieldInfo{name: sf.Name, key: key, index: index, typ: sf.Type}
		for opt := range strings.SplitSeq(opts, ",") {
			switch opt {
			case "omitempty":
				f.optional = true
			case "inline":
				f.inline = true
			}
		}
		if f.inline && sf.Type.Kind() == reflect.Struct {
			collectFields(sf.Type, index, out)
			continue
		}
		*out = append(*out, f)
	}
}
