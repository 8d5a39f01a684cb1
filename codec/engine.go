package codec

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/prilive-com/tgwire/tg"
	"github.com/prilive-com/tgwire/wire"
)

var valueType = reflect.TypeFor[wire.Value]()

// Decode builds a T from a wire value. T may be a struct, a pointer, a
// slice, a scalar, or one of the polymorphic tg interfaces; for the latter
// the concrete variant is picked by the family's resolver.
//
// Failures are *tg.DecodeError values that match one of the tg.Err*
// decode sentinels with errors.Is.
func Decode[T any](v wire.Value) (T, error) {
	var out T
	if err := decodeValue(reflect.ValueOf(&out).Elem(), v); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Unmarshal parses data and decodes it into a T.
func Unmarshal[T any](data []byte) (T, error) {
	v, err := wire.Parse(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](v)
}

// Encode turns a model value into its wire form. Optional fields holding
// their zero value are left out, discriminator keys the model does not
// store are written back.
func Encode(v any) (wire.Value, error) {
	if v == nil {
		return wire.NullValue(), nil
	}
	return encodeValue(reflect.ValueOf(v))
}

// Marshal encodes v and renders it as compact JSON.
func Marshal(v any) ([]byte, error) {
	w, err := Encode(v)
	if err != nil {
		return nil, err
	}
	return wire.Marshal(w), nil
}

// ================== Decode ==================

func decodeValue(dst reflect.Value, v wire.Value) error {
	t := dst.Type()
	if t == valueType {
		dst.Set(reflect.ValueOf(v))
		return nil
	}

	switch t.Kind() {
	case reflect.Interface:
		return decodeInterface(dst, v)

	case reflect.Pointer:
		if v.IsNull() {
			dst.SetZero()
			return nil
		}
		p := reflect.New(t.Elem())
		if err := decodeValue(p.Elem(), v); err != nil {
			return err
		}
		dst.Set(p)
		return nil

	case reflect.Struct:
		return decodeStruct(dst, v)

	case reflect.Slice:
		return decodeSlice(dst, v)

	case reflect.Map:
		return decodeMap(dst, v)

	case reflect.String:
		s, ok := v.Str()
		if !ok {
			return wrongKind("string", v)
		}
		dst.SetString(s)
		return nil

	case reflect.Bool:
		b, ok := v.Bool()
		if !ok {
			return wrongKind("bool", v)
		}
		dst.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Kind() != wire.Number {
			return wrongKind("integer", v)
		}
		n, err := v.Int64()
		if err != nil {
			return badNumber(v, err)
		}
		if dst.OverflowInt(n) {
			return badNumber(v, wire.ErrOverflow)
		}
		dst.SetInt(n)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Kind() != wire.Number {
			return wrongKind("unsigned integer", v)
		}
		n, err := v.Uint64()
		if err != nil {
			return badNumber(v, err)
		}
		if dst.OverflowUint(n) {
			return badNumber(v, wire.ErrOverflow)
		}
		dst.SetUint(n)
		return nil

	case reflect.Float32, reflect.Float64:
		if v.Kind() != wire.Number {
			return wrongKind("number", v)
		}
		f, err := v.Float64()
		if err != nil {
			return badNumber(v, err)
		}
		if dst.OverflowFloat(f) {
			return badNumber(v, wire.ErrOverflow)
		}
		dst.SetFloat(f)
		return nil
	}

	return fmt.Errorf("codec: cannot decode into %s", t)
}

func decodeInterface(dst reflect.Value, v wire.Value) error {
	t := dst.Type()
	if t.NumMethod() == 0 {
		if a := decodeAny(v); a != nil {
			dst.Set(reflect.ValueOf(a))
		} else {
			dst.SetZero()
		}
		return nil
	}

	fam, ok := families[t]
	if !ok {
		return fmt.Errorf("codec: %s is not a polymorphic family", t)
	}
	ct, err := fam.concrete(v)
	if errors.Is(err, errAbsent) {
		dst.SetZero()
		return nil
	}
	if err != nil {
		return err
	}
	return decodeVariant(dst, ct, v)
}

func decodeVariant(dst reflect.Value, ct reflect.Type, v wire.Value) error {
	cv := reflect.New(ct).Elem()
	if err := decodeValue(cv, v); err != nil {
		return err
	}
	dst.Set(cv)
	return nil
}

func (f *family) concrete(v wire.Value) (reflect.Type, error) {
	tag, err := f.resolve(v)
	if err != nil {
		return nil, err
	}
	t, ok := f.variants[tag]
	if !ok {
		return nil, tg.Unresolvable(f.name, keysOf(v), fmt.Sprintf("no variant for tag %q", tag))
	}
	return t, nil
}

func decodeStruct(dst reflect.Value, v wire.Value) error {
	t := dst.Type()
	info := structFor(t)
	h := variants[t]

	if h != nil && h.scalarKey != "" && v.Kind() == wire.String {
		v = wire.ObjectValue(wire.NewObject(wire.Member{Key: h.scalarKey, Value: v}))
	}
	obj, ok := v.Object()
	if !ok {
		return &tg.DecodeError{
			Kind:   tg.ErrWrongFieldKind,
			Entity: info.name,
			Detail: "expected object, got " + v.Kind().String(),
		}
	}

	if h != nil {
		var err error
		if obj, err = applyDecodeHooks(info, h, obj); err != nil {
			return err
		}
	}

	for _, f := range info.fields {
		fv := dst.FieldByIndex(f.index)

		if f.inline {
			if err := decodeInline(fv, f, obj); err != nil {
				return annotate(err, info, f)
			}
			continue
		}

		raw, present := obj.Get(f.key)
		switch {
		case !present && f.optional:
			continue
		case !present:
			return prepend(&tg.DecodeError{
				Kind:       tg.ErrMissingRequiredField,
				Entity:     info.name,
				Field:      f.key,
				ModelField: f.name,
			}, f.key)
		case raw.IsNull() && f.optional:
			continue
		case raw.IsNull():
			return prepend(&tg.DecodeError{
				Kind:       tg.ErrWrongFieldKind,
				Entity:     info.name,
				Field:      f.key,
				ModelField: f.name,
				Detail:     "null for required field",
			}, f.key)
		}

		if err := decodeValue(fv, raw); err != nil {
			return prepend(annotate(err, info, f), f.key)
		}
	}
	return nil
}

// applyDecodeHooks checks the variant's fixed keys and runs its wire
// transforms ahead of field decode.
func applyDecodeHooks(info *structInfo, h *hooks, obj *wire.Obj) (*wire.Obj, error) {
	for _, c := range h.consts {
		got, ok := obj.Get(c.key)
		if !ok {
			return nil, prepend(&tg.DecodeError{
				Kind:   tg.ErrMissingRequiredField,
				Entity: info.name,
				Field:  c.key,
			}, c.key)
		}
		if !wire.Equal(got, c.value) {
			return nil, prepend(&tg.DecodeError{
				Kind:   tg.ErrInvariantViolation,
				Entity: info.name,
				Field:  c.key,
				Detail: fmt.Sprintf("%s must be %s, got %s", c.key, c.value, got),
			}, c.key)
		}
	}

	if h.typeTag != "" {
		if got, ok := obj.Get(typeKey); ok {
			if s, _ := got.Str(); s != h.typeTag {
				return nil, prepend(&tg.DecodeError{
					Kind:   tg.ErrInvariantViolation,
					Entity: info.name,
					Field:  typeKey,
					Detail: fmt.Sprintf("type must be %q, got %s", h.typeTag, got),
				}, typeKey)
			}
		}
		obj = StripTypeKey(obj)
	}

	if h.lift != nil {
		obj = h.lift(obj)
	}
	return obj, nil
}

// decodeInline resolves an interface field from the enclosing object.
func decodeInline(fv reflect.Value, f fieldInfo, obj *wire.Obj) error {
	fam, ok := families[f.typ]
	if !ok {
		return fmt.Errorf("codec: inline field %s: %s is not a polymorphic family", f.name, f.typ)
	}
	parent := wire.ObjectValue(obj)
	ct, err := fam.concrete(parent)
	if errors.Is(err, errAbsent) {
		return nil
	}
	if err != nil {
		return err
	}
	return decodeVariant(fv, ct, parent)
}

func decodeSlice(dst reflect.Value, v wire.Value) error {
	items, ok := v.Array()
	if !ok {
		return wrongKind("array", v)
	}
	out := reflect.MakeSlice(dst.Type(), len(items), len(items))
	for i, item := range items {
		if err := decodeValue(out.Index(i), item); err != nil {
			return prepend(err, "["+strconv.Itoa(i)+"]")
		}
	}
	dst.Set(out)
	return nil
}

func decodeMap(dst reflect.Value, v wire.Value) error {
	t := dst.Type()
	if t.Key().Kind() != reflect.String {
		return fmt.Errorf("codec: cannot decode into %s", t)
	}
	obj, ok := v.Object()
	if !ok {
		return wrongKind("object", v)
	}
	m := reflect.MakeMapWithSize(t, obj.Len())
	var err error
	obj.Range(func(k string, item wire.Value) bool {
		ev := reflect.New(t.Elem()).Elem()
		if e := decodeValue(ev, item); e != nil {
			err = prepend(e, k)
			return false
		}
		m.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), ev)
		return true
	})
	if err != nil {
		return err
	}
	dst.Set(m)
	return nil
}

// decodeAny maps a value onto plain Go types: nil, bool, int64 or float64,
// string, []any and map[string]any.
func decodeAny(v wire.Value) any {
	switch v.Kind() {
	case wire.Bool:
		b, _ := v.Bool()
		return b
	case wire.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		f, _ := v.Float64()
		return f
	case wire.String:
		s, _ := v.Str()
		return s
	case wire.Array:
		items, _ := v.Array()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = decodeAny(item)
		}
		return out
	case wire.Object:
		obj, _ := v.Object()
		out := make(map[string]any, obj.Len())
		obj.Range(func(k string, item wire.Value) bool {
			out[k] = decodeAny(item)
			return true
		})
		return out
	}
	return nil
}

// ================== Encode ==================

func encodeValue(rv reflect.Value) (wire.Value, error) {
	if rv.Type() == valueType {
		return rv.Interface().(wire.Value), nil
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return wire.NullValue(), nil
		}
		return encodeValue(rv.Elem())

	case reflect.Struct:
		obj, err := encodeStruct(rv)
		if err != nil {
			return wire.Value{}, err
		}
		return wire.ObjectValue(obj), nil

	case reflect.Slice, reflect.Array:
		items := make([]wire.Value, rv.Len())
		for i := range items {
			item, err := encodeValue(rv.Index(i))
			if err != nil {
				return wire.Value{}, prepend(err, "["+strconv.Itoa(i)+"]")
			}
			items[i] = item
		}
		return wire.ArrayValue(items), nil

	case reflect.Map:
		return encodeMap(rv)

	case reflect.String:
		return wire.StringValue(rv.String()), nil

	case reflect.Bool:
		return wire.BoolValue(rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return wire.IntValue(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return wire.UintValue(rv.Uint()), nil

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return wire.Value{}, &tg.DecodeError{
				Kind:   tg.ErrWrongFieldKind,
				Detail: "no JSON form for " + strconv.FormatFloat(f, 'g', -1, 64),
			}
		}
		return wire.FloatValue(f), nil
	}

	return wire.Value{}, fmt.Errorf("codec: cannot encode %s", rv.Type())
}

func encodeStruct(rv reflect.Value) (*wire.Obj, error) {
	t := rv.Type()
	info := structFor(t)
	b := wire.NewObjectBuilder()

	for _, f := range info.fields {
		fv := rv.FieldByIndex(f.index)

		if f.inline {
			if fv.IsNil() {
				if f.optional {
					continue
				}
				return nil, missingOnEncode(info, f)
			}
			inner, err := encodeValue(fv)
			if err != nil {
				return nil, annotate(err, info, f)
			}
			if obj, ok := inner.Object(); ok {
				b.Merge(obj)
			}
			continue
		}

		if f.optional && fv.IsZero() {
			continue
		}
		switch fv.Kind() {
		case reflect.Slice:
			if fv.IsNil() {
				b.Set(f.key, wire.ArrayValue(nil))
				continue
			}
		case reflect.Pointer, reflect.Interface:
			if fv.IsNil() {
				return nil, missingOnEncode(info, f)
			}
		}

		w, err := encodeValue(fv)
		if err != nil {
			return nil, prepend(annotate(err, info, f), f.key)
		}
		b.Set(f.key, w)
	}

	obj := b.Build()
	if h := variants[t]; h != nil {
		if h.lower != nil {
			obj = h.lower(obj)
		}
		obj = withConsts(obj, h.consts)
		if h.typeTag != "" {
			obj = RestoreTypeKey(obj, h.typeTag)
		}
	}
	return obj, nil
}

// withConsts writes the variant's fixed keys ahead of its fields.
func withConsts(obj *wire.Obj, consts []constKey) *wire.Obj {
	if len(consts) == 0 {
		return obj
	}
	b := wire.NewObjectBuilder()
	for _, c := range consts {
		b.Set(c.key, c.value)
	}
	obj.Range(func(k string, v wire.Value) bool {
		if !b.Has(k) {
			b.Set(k, v)
		}
		return true
	})
	return b.Build()
}

func encodeMap(rv reflect.Value) (wire.Value, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return wire.Value{}, fmt.Errorf("codec: cannot encode %s", rv.Type())
	}
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})
	b := wire.NewObjectBuilder()
	for _, k := range keys {
		item, err := encodeValue(rv.MapIndex(k))
		if err != nil {
			return wire.Value{}, prepend(err, k.String())
		}
		b.Set(k.String(), item)
	}
	return wire.ObjectValue(b.Build()), nil
}

func missingOnEncode(info *structInfo, f fieldInfo) error {
	err := &tg.DecodeError{
		Kind:       tg.ErrMissingRequiredField,
		Entity:     info.name,
		Field:      f.key,
		ModelField: f.name,
		Detail:     "nil value for required field",
	}
	if f.key == "" {
		return err
	}
	return prepend(err, f.key)
}

// ================== Errors ==================

// prepend adds an outer path segment to a decode error. Paths are built
// from the failing leaf outwards.
func prepend(err error, seg string) error {
	var de *tg.DecodeError
	if !errors.As(err, &de) {
		return err
	}
	switch {
	case de.Path == "":
		de.Path = seg
	case strings.HasPrefix(de.Path, "["):
		de.Path = seg + de.Path
	default:
		de.Path = seg + "." + de.Path
	}
	return err
}

// annotate attributes a leaf error to the struct field it was decoded for.
func annotate(err error, info *structInfo, f fieldInfo) error {
	var de *tg.DecodeError
	if errors.As(err, &de) && de.Entity == "" {
		de.Entity = info.name
		if de.Field == "" {
			de.Field = f.key
			de.ModelField = f.name
		}
	}
	return err
}

func wrongKind(want string, v wire.Value) error {
	return &tg.DecodeError{
		Kind:   tg.ErrWrongFieldKind,
		Detail: "expected " + want + ", got " + v.Kind().String(),
	}
}

func badNumber(v wire.Value, cause error) error {
	lit, _ := v.Literal()
	detail := lit
	switch {
	case errors.Is(cause, wire.ErrNegative):
		detail = "negative value " + lit
	case errors.Is(cause, wire.ErrNotInteger):
		detail = "non-integer " + lit
	case errors.Is(cause, wire.ErrOverflow):
		detail = lit + " out of range"
	}
	return &tg.DecodeError{Kind: tg.ErrWrongFieldKind, Detail: detail}
}

func keysOf(v wire.Value) []string {
	obj, ok := v.Object()
	if !ok {
		return []string{}
	}
	return obj.Keys()
}
