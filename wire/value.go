package wire

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the JSON kind held by a Value.
type Kind uint8

// JSON value kinds.
const (
	Null Kind = iota
	Bool
	Number
	String
	Object
	Array
)

var kindNames = [...]string{"null", "bool", "number", "string", "object", "array"}

// String returns the lower-case JSON name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

var (
	// ErrNotInteger is returned by integer accessors for fractional or exponent literals.
	ErrNotInteger = errors.New("wire: number is not an integer")
	// ErrOverflow is returned when a number does not fit the requested type.
	ErrOverflow = errors.New("wire: number out of range")
	// ErrNegative is returned by Uint64 for negative literals.
	ErrNegative = errors.New("wire: negative value for unsigned number")
)

// Value is an immutable JSON value.
//
// Numbers keep their literal text so integer/float distinction and
// full 64-bit precision survive a round trip.
type Value struct {
	kind Kind
	b    bool
	s    string // string contents or number literal
	obj  *Obj
	arr  []Value
}

// NullValue returns the JSON null.
func NullValue() Value { return Value{} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: String, s: s} }

// IntValue wraps a signed integer.
func IntValue(n int64) Value { return Value{kind: Number, s: strconv.FormatInt(n, 10)} }

// UintValue wraps an unsigned integer.
func UintValue(n uint64) Value { return Value{kind: Number, s: strconv.FormatUint(n, 10)} }

// FloatValue wraps a finite float. Integral floats keep a fractional part so
// they still decode as floats. NaN and infinities have no JSON form; callers
// must reject them first.
func FloatValue(f float64) Value {
	lit := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(lit, ".eE") {
		lit += ".0"
	}
	return Value{kind: Number, s: lit}
}

// NumberValue wraps a number literal as-is. The literal must be valid JSON.
func NumberValue(literal string) Value { return Value{kind: Number, s: literal} }

// ObjectValue wraps an object. A nil object becomes an empty one.
func ObjectValue(o *Obj) Value {
	if o == nil {
		o = emptyObject()
	}
	return Value{kind: Object, obj: o}
}

// ArrayValue wraps a sequence of values. The slice is copied.
func ArrayValue(items []Value) Value {
	return Value{kind: Array, arr: append([]Value(nil), items...)}
}

// Kind reports the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == Null }

// Bool returns the boolean and whether the value is a boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == Bool }

// Str returns the string and whether the value is a string.
func (v Value) Str() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.s, true
}

// Literal returns the number literal and whether the value is a number.
func (v Value) Literal() (string, bool) {
	if v.kind != Number {
		return "", false
	}
	return v.s, true
}

// IsInteger reports whether the value is a number written without fraction or exponent.
func (v Value) IsInteger() bool {
	return v.kind == Number && !strings.ContainsAny(v.s, ".eE")
}

// Int64 returns the value as a signed 64-bit integer.
func (v Value) Int64() (int64, error) {
	if v.kind != Number {
		return 0, fmt.Errorf("wire: expected number, got %s", v.kind)
	}
	if !v.IsInteger() {
		return 0, ErrNotInteger
	}
	n, err := strconv.ParseInt(v.s, 10, 64)
	if err != nil {
		return 0, ErrOverflow
	}
	return n, nil
}

// Uint64 returns the value as an unsigned 64-bit integer, rejecting negatives.
func (v Value) Uint64() (uint64, error) {
	if v.kind != Number {
		return 0, fmt.Errorf("wire: expected number, got %s", v.kind)
	}
	if !v.IsInteger() {
		return 0, ErrNotInteger
	}
	if strings.HasPrefix(v.s, "-") {
		if strings.Trim(v.s, "-0") == "" {
			return 0, nil
		}
		return 0, ErrNegative
	}
	n, err := strconv.ParseUint(v.s, 10, 64)
	if err != nil {
		return 0, ErrOverflow
	}
	return n, nil
}

// Float64 returns the numeric value as a float.
func (v Value) Float64() (float64, error) {
	if v.kind != Number {
		return 0, fmt.Errorf("wire: expected number, got %s", v.kind)
	}
	f, err := strconv.ParseFloat(v.s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, ErrOverflow
	}
	return f, nil
}

// Object returns the object and whether the value is an object.
func (v Value) Object() (*Obj, bool) {
	if v.kind != Object {
		return nil, false
	}
	return v.obj, true
}

// Array returns the elements and whether the value is an array.
// The returned slice must not be modified.
func (v Value) Array() ([]Value, bool) {
	if v.kind != Array {
		return nil, false
	}
	return v.arr, true
}

// String renders the value as compact JSON.
func (v Value) String() string { return string(Marshal(v)) }
