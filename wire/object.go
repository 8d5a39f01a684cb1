package wire

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Obj is an immutable JSON object that remembers key insertion order.
// Order is kept for deterministic output only; Equal ignores it.
type Obj struct {
	m *orderedmap.OrderedMap[string, Value]
}

func emptyObject() *Obj {
	return &Obj{m: orderedmap.New[string, Value]()}
}

// Member is a single key/value pair used to build objects.
type Member struct {
	Key   string
	Value Value
}

// NewObject builds an object from members in order.
func NewObject(members ...Member) *Obj {
	b := NewObjectBuilder()
	for _, m := range members {
		b.Set(m.Key, m.Value)
	}
	return b.Build()
}

// Len returns the number of keys.
func (o *Obj) Len() int {
	if o == nil {
		return 0
	}
	return o.m.Len()
}

// Get returns the value stored under key.
func (o *Obj) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	return o.m.Get(key)
}

// Has reports whether key is present, including when its value is null.
func (o *Obj) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (o *Obj) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, 0, o.m.Len())
	for p := o.m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Range calls fn for each member in order until fn returns false.
func (o *Obj) Range(fn func(key string, v Value) bool) {
	if o == nil {
		return
	}
	for p := o.m.Oldest(); p != nil; p = p.Next() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// With returns a copy of o with key set to v. An existing key keeps its position.
func (o *Obj) With(key string, v Value) *Obj {
	b := o.builder()
	b.Set(key, v)
	return b.Build()
}

// Without returns a copy of o with the given keys removed.
func (o *Obj) Without(keys ...string) *Obj {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	b := NewObjectBuilder()
	o.Range(func(k string, v Value) bool {
		if _, ok := drop[k]; !ok {
			b.Set(k, v)
		}
		return true
	})
	return b.Build()
}

func (o *Obj) builder() *ObjectBuilder {
	b := NewObjectBuilder()
	o.Range(func(k string, v Value) bool {
		b.Set(k, v)
		return true
	})
	return b
}

// ObjectBuilder assembles an Obj. A builder must not be used after Build.
type ObjectBuilder struct {
	m *orderedmap.OrderedMap[string, Value]
}

// NewObjectBuilder returns an empty builder.
func NewObjectBuilder() *ObjectBuilder {
	return &ObjectBuilder{m: orderedmap.New[string, Value]()}
}

// Set stores v under key. Setting an existing key replaces its value in place.
func (b *ObjectBuilder) Set(key string, v Value) *ObjectBuilder {
	b.m.Set(key, v)
	return b
}

// Merge copies every member of o into the builder.
func (b *ObjectBuilder) Merge(o *Obj) *ObjectBuilder {
	o.Range(func(k string, v Value) bool {
		b.m.Set(k, v)
		return true
	})
	return b
}

// Has reports whether key has been set.
func (b *ObjectBuilder) Has(key string) bool {
	_, ok := b.m.Get(key)
	return ok
}

// Build freezes the builder into an object.
func (b *ObjectBuilder) Build() *Obj {
	o := &Obj{m: b.m}
	b.m = nil
	return o
}
