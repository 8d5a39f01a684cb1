package wire

import "strconv"

// Equal reports whether a and b hold the same JSON value.
// Object key order is ignored. Integers compare by exact value; an integer
// literal never equals a float literal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Bool:
		return a.b == b.b
	case String:
		return a.s == b.s
	case Number:
		return numbersEqual(a, b)
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		eq := true
		a.obj.Range(func(k string, av Value) bool {
			bv, ok := b.obj.Get(k)
			eq = ok && Equal(av, bv)
			return eq
		})
		return eq
	}
	return false
}

func numbersEqual(a, b Value) bool {
	if a.s == b.s {
		return true
	}
	if a.IsInteger() != b.IsInteger() {
		return false
	}
	if a.IsInteger() {
		ai, aerr := strconv.ParseInt(a.s, 10, 64)
		bi, berr := strconv.ParseInt(b.s, 10, 64)
		if aerr == nil && berr == nil {
			return ai == bi
		}
		au, aerr := strconv.ParseUint(a.s, 10, 64)
		bu, berr := strconv.ParseUint(b.s, 10, 64)
		return aerr == nil && berr == nil && au == bu
	}
	af, aerr := a.Float64()
	bf, berr := b.Float64()
	return aerr == nil && berr == nil && af == bf
}
