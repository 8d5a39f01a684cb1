package codec

import (
	"time"

	"github.com/prilive-com/tgwire/tg"
	"github.com/prilive-com/tgwire/wire"
)

// errorEnvelope is the body of an ok=false response.
type errorEnvelope struct {
	Code        int64                  `wire:"error_code"`
	Description string                 `wire:"description,omitempty"`
	Parameters  *tg.ResponseParameters `wire:"parameters,omitempty"`
}

// DecodeResponse unwraps an API response envelope. On ok=true the "result"
// member is decoded as T. On ok=false the error is returned as a
// *tg.APIError carrying method, which the wire does not include.
func DecodeResponse[T any](method string, v wire.Value) (T, error) {
	var zero T

	ok, err := ResolveResponse(v)
	if err != nil {
		return zero, err
	}
	obj, _ := v.Object()

	if !ok {
		env, err := Decode[errorEnvelope](v)
		if err != nil {
			return zero, err
		}
		apiErr := tg.NewAPIError(method, int(env.Code), env.Description)
		if p := env.Parameters; p != nil {
			apiErr.Parameters = p
			if p.RetryAfter > 0 {
				apiErr.RetryAfter = time.Duration(p.RetryAfter) * time.Second
			}
		}
		return zero, apiErr
	}

	raw, present := obj.Get("result")
	if !present {
		return zero, prepend(&tg.DecodeError{
			Kind:   tg.ErrMissingRequiredField,
			Entity: "Response",
			Field:  "result",
		}, "result")
	}
	out, err := Decode[T](raw)
	if err != nil {
		return zero, prepend(err, "result")
	}
	return out, nil
}

// ParseResponse parses data and unwraps it with DecodeResponse.
func ParseResponse[T any](method string, data []byte) (T, error) {
	v, err := wire.Parse(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return DecodeResponse[T](method, v)
}

// EncodeResponse builds a successful envelope around result.
func EncodeResponse(result any) (wire.Value, error) {
	r, err := Encode(result)
	if err != nil {
		return wire.Value{}, err
	}
	return wire.ObjectValue(wire.NewObject(
		wire.Member{Key: "ok", Value: wire.BoolValue(true)},
		wire.Member{Key: "result", Value: r},
	)), nil
}

// EncodeErrorResponse builds a failed envelope. retryAfter is written to
// parameters when positive.
func EncodeErrorResponse(code int, description string, retryAfter time.Duration) wire.Value {
	b := wire.NewObjectBuilder().
		Set("ok", wire.BoolValue(false)).
		Set("error_code", wire.IntValue(int64(code))).
		Set("description", wire.StringValue(description))
	if retryAfter > 0 {
		params := wire.NewObject(wire.Member{
			Key:   "retry_after",
			Value: wire.IntValue(int64(retryAfter / time.Second)),
		})
		b.Set("parameters", wire.ObjectValue(params))
	}
	return wire.ObjectValue(b.Build())
}
