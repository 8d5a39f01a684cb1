// Package wire holds the in-memory JSON model that sits between raw API bytes
// and typed entities.
//
// A Value is one of null, bool, number, string, object or array. Objects keep
// key order so output is deterministic. Numbers keep their literal text, so
// 64-bit ids and the integer/float distinction survive a Parse/Marshal round
// trip.
//
//	v, err := wire.Parse(body)
//	if errors.Is(err, wire.ErrMalformedPayload) {
//	    // not JSON
//	}
//	obj, _ := v.Object()
//	ok, _ := obj.Get("ok")
package wire
