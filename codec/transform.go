package codec

import (
	"strings"

	"github.com/prilive-com/tgwire/wire"
)

const (
	forwardKey    = "forward"
	forwardPrefix = "forward_"
	typeKey       = "type"
)

// LiftForwardKeys groups every "forward_*" member of a message object into
// one nested object under "forward". The nested keys keep their prefix.
// The group takes the position of the first forward key. A literal
// "forward" member is never part of the wire format and is dropped.
func LiftForwardKeys(obj *wire.Obj) *wire.Obj {
	grouped := wire.NewObjectBuilder()
	var found bool
	obj.Range(func(k string, v wire.Value) bool {
		if strings.HasPrefix(k, forwardPrefix) {
			grouped.Set(k, v)
			found = true
		}
		return true
	})
	if !found {
		if obj.Has(forwardKey) {
			return obj.Without(forwardKey)
		}
		return obj
	}

	group := wire.ObjectValue(grouped.Build())
	out := wire.NewObjectBuilder()
	obj.Range(func(k string, v wire.Value) bool {
		switch {
		case strings.HasPrefix(k, forwardPrefix):
			if !out.Has(forwardKey) {
				out.Set(forwardKey, group)
			}
		case k == forwardKey:
			// replaced by the group
		default:
			out.Set(k, v)
		}
		return true
	})
	return out.Build()
}

// LowerForwardKeys is the inverse of LiftForwardKeys: the members of the
// nested "forward" object move back to the parent level in its place.
func LowerForwardKeys(obj *wire.Obj) *wire.Obj {
	fv, ok := obj.Get(forwardKey)
	if !ok {
		return obj
	}
	group, ok := fv.Object()
	if !ok {
		return obj
	}

	out := wire.NewObjectBuilder()
	obj.Range(func(k string, v wire.Value) bool {
		if k == forwardKey {
			out.Merge(group)
		} else {
			out.Set(k, v)
		}
		return true
	})
	return out.Build()
}

// StripTypeKey removes the "type" discriminator before a message entity
// is decoded into its variant.
func StripTypeKey(obj *wire.Obj) *wire.Obj {
	if !obj.Has(typeKey) {
		return obj
	}
	return obj.Without(typeKey)
}

// RestoreTypeKey puts the "type" discriminator back, first, when a message
// entity is encoded.
func RestoreTypeKey(obj *wire.Obj, tag string) *wire.Obj {
	b := wire.NewObjectBuilder().Set(typeKey, wire.StringValue(tag))
	obj.Range(func(k string, v wire.Value) bool {
		if k != typeKey {
			b.Set(k, v)
		}
		return true
	})
	return b.Build()
}
