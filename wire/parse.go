package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/buger/jsonparser"
)

// ErrMalformedPayload is returned when input bytes are not a single valid JSON document.
var ErrMalformedPayload = errors.New("tgwire: malformed payload")

// maxDepth bounds nesting so hostile payloads cannot exhaust the stack.
const maxDepth = 512

// SyntaxError describes why input could not be parsed.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("tgwire: malformed payload at offset %d: %s", e.Offset, e.Msg)
	}
	return "tgwire: malformed payload: " + e.Msg
}

// Unwrap allows errors.Is(err, ErrMalformedPayload).
func (e *SyntaxError) Unwrap() error { return ErrMalformedPayload }

// Parse decodes a JSON document into a Value.
func Parse(data []byte) (Value, error) {
	if !utf8.Valid(data) {
		return Value{}, &SyntaxError{Offset: -1, Msg: "invalid UTF-8"}
	}
	if !json.Valid(data) {
		var v any
		err := json.Unmarshal(data, &v)
		var se *json.SyntaxError
		if errors.As(err, &se) {
			return Value{}, &SyntaxError{Offset: int(se.Offset), Msg: se.Error()}
		}
		return Value{}, &SyntaxError{Offset: -1, Msg: "invalid JSON"}
	}

	raw, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, &SyntaxError{Offset: -1, Msg: err.Error()}
	}
	return build(raw, typ, 0)
}

// MustParse is Parse for literals in tests and tables. It panics on error.
func MustParse(s string) Value {
	v, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return v
}

func build(raw []byte, typ jsonparser.ValueType, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, &SyntaxError{Offset: -1, Msg: "nesting too deep"}
	}

	switch typ {
	case jsonparser.Null:
		return NullValue(), nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, &SyntaxError{Offset: -1, Msg: err.Error()}
		}
		return BoolValue(b), nil

	case jsonparser.Number:
		return NumberValue(string(raw)), nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Value{}, &SyntaxError{Offset: -1, Msg: err.Error()}
		}
		return StringValue(s), nil

	case jsonparser.Array:
		items := make([]Value, 0)
		var inner error
		_, err := jsonparser.ArrayEach(raw, func(elem []byte, et jsonparser.ValueType, _ int, cbErr error) {
			if inner != nil {
				return
			}
			if cbErr != nil {
				inner = cbErr
				return
			}
			v, err := build(elem, et, depth+1)
			if err != nil {
				inner = err
				return
			}
			items = append(items, v)
		})
		if inner != nil {
			return Value{}, wrapSyntax(inner)
		}
		if err != nil {
			return Value{}, wrapSyntax(err)
		}
		return Value{kind: Array, arr: items}, nil

	case jsonparser.Object:
		b := NewObjectBuilder()
		err := jsonparser.ObjectEach(raw, func(key, val []byte, vt jsonparser.ValueType, _ int) error {
			v, err := build(val, vt, depth+1)
			if err != nil {
				return err
			}
			// Duplicate keys keep their first position; the last value wins.
			b.Set(string(key), v)
			return nil
		})
		if err != nil {
			return Value{}, wrapSyntax(err)
		}
		return ObjectValue(b.Build()), nil
	}

	return Value{}, &SyntaxError{Offset: -1, Msg: "unexpected token"}
}

func wrapSyntax(err error) error {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se
	}
	return &SyntaxError{Offset: -1, Msg: err.Error()}
}
