// Package codec converts between wire values and the tg entity model.
//
// Struct fields are mapped through `wire:"..."` tags (see Fields). The
// polymorphic families of package tg are resolved from the payload with the
// Resolve* functions, then decoded structurally into the chosen variant:
//
//	upd, err := codec.Unmarshal[tg.Update](body)
//	if err != nil {
//		var de *tg.DecodeError
//		if errors.As(err, &de) {
//			log.Printf("bad update at %s", de.Path)
//		}
//	}
//
// API responses are unwrapped with DecodeResponse, which turns ok=false
// envelopes into *tg.APIError.
//
// Decode and Encode keep no per-call state and are safe for concurrent use.
package codec
