package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/prilive-com/tgwire/codec"
	"github.com/prilive-com/tgwire/tg"
	"github.com/prilive-com/tgwire/wire"
)

// decoded is what a target reports about a payload it accepted.
type decoded struct {
	Variants []string   // concrete Go type per decoded entity
	Shapes   []string   // message shapes, where a message was found
	Encoded  wire.Value // the entity written back to the wire
}

// Exact reports whether encoding the decoded entity reproduced in.
func (d decoded) Exact(in wire.Value) bool {
	return wire.Equal(in, d.Encoded)
}

type target struct {
	name   string
	doc    string
	decode func(wire.Value) (decoded, error)
}

var targets = []target{
	{"update", "a single Update object", entity[tg.Update]},
	{"message", "a Message object", entity[tg.Message]},
	{"chat", "a Chat object", entity[tg.Chat]},
	{"user", "a User object (human or bot)", entity[tg.UserOrBot]},
	{"me", "the getMe bot identity", entity[tg.BotSelf]},
	{"entity", "a MessageEntity object", entity[tg.MessageEntity]},
	{"markup", "a reply_markup object", entity[tg.ReplyMarkup]},
	{"chat_member", "a ChatMember object", entity[tg.ChatMember]},
	{"response.updates", "a getUpdates response envelope", response[[]tg.Update]("getUpdates")},
	{"response.message", "a sendMessage response envelope", response[tg.Message]("sendMessage")},
	{"response.me", "a getMe response envelope", response[tg.BotSelf]("getMe")},
	{"response.bool", "a response envelope carrying true", response[bool]("answerCallbackQuery")},
}

func lookupTarget(name string) (target, error) {
	i := slices.IndexFunc(targets, func(t target) bool { return t.name == name })
	if i < 0 {
		return target{}, fmt.Errorf("unknown target %q (known: %s)", name, strings.Join(targetNames(), ", "))
	}
	return targets[i], nil
}

func targetNames() []string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.name
	}
	return names
}

func entity[T any](v wire.Value) (decoded, error) {
	out, err := codec.Decode[T](v)
	if err != nil {
		return decoded{}, err
	}
	enc, err := codec.Encode(out)
	if err != nil {
		return decoded{}, err
	}
	d := describe(out)
	d.Encoded = enc
	return d, nil
}

func response[T any](method string) func(wire.Value) (decoded, error) {
	return func(v wire.Value) (decoded, error) {
		out, err := codec.DecodeResponse[T](method, v)
		if err != nil {
			return decoded{}, err
		}
		enc, err := codec.EncodeResponse(out)
		if err != nil {
			return decoded{}, err
		}
		d := describe(out)
		d.Encoded = enc
		return d, nil
	}
}

func describe(v any) decoded {
	var d decoded
	add := func(x any) {
		d.Variants = append(d.Variants, fmt.Sprintf("%T", x))
		switch m := x.(type) {
		case tg.Message:
			d.Shapes = append(d.Shapes, m.Shape().String())
		case tg.Update:
			if msg, ok := tg.MessageOf(m); ok {
				d.Shapes = append(d.Shapes, msg.Shape().String())
			}
		}
	}
	if batch, ok := v.([]tg.Update); ok {
		for _, u := range batch {
			add(u)
		}
		return d
	}
	add(v)
	return d
}

// errorKinds names the failures a fixture may be expected to produce.
var errorKinds = map[string]func(error) bool{
	"malformed_payload":      sentinel(tg.ErrMalformedPayload),
	"unresolvable_variant":   sentinel(tg.ErrUnresolvableVariant),
	"missing_required_field": sentinel(tg.ErrMissingRequiredField),
	"wrong_field_kind":       sentinel(tg.ErrWrongFieldKind),
	"invariant_violation":    sentinel(tg.ErrInvariantViolation),
	"api_error": func(err error) bool {
		var apiErr *tg.APIError
		return errors.As(err, &apiErr)
	},
}

func sentinel(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

// errorKind returns the errorKinds name matching err, or "" if none does.
func errorKind(err error) string {
	for _, name := range errorKindNames() {
		if errorKinds[name](err) {
			return name
		}
	}
	return ""
}

func errorKindNames() []string {
	names := make([]string, 0, len(errorKinds))
	for name := range errorKinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
