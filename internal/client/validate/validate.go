// Package validate checks untrusted JSON from the resource API against the
// shapes the client expects, before any value enters typed state.
//
// Every check is all-or-nothing: a payload either converts completely or
// yields an *Error naming the first offending path. Unknown fields are
// ignored; missing fields, nulls and wrong primitive types are not.
package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/travelplanner/internal/client/models"
)

var (
	// ErrValidation matches every *Error.
	ErrValidation = errors.New("validation failed")

	// ErrNotExactlyOne is the cause when a login lookup does not return a
	// single account.
	ErrNotExactlyOne = errors.New("expected exactly one match")
)

// Error describes why a payload was rejected. Path uses "$" for the root,
// "[i]" for collection elements and ".name" for fields.
type Error struct {
	Path   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid payload at %s: %s", e.Path, e.Reason)
}

func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

func (e *Error) Unwrap() error {
	return e.Err
}

type kind int

const (
	kindString kind = iota
	kindBool
)

func (k kind) String() string {
	if k == kindBool {
		return "boolean"
	}
	return "string"
}

type field struct {
	name string
	kind kind
}

type shape []field

var (
	accountShape = shape{
		{"id", kindString},
		{"username", kindString},
		{"email", kindString},
		{"isAdmin", kindBool},
	}

	// loginShape is what GET /users?username=&password= returns per element.
	loginShape = shape{
		{"id", kindString},
		{"username", kindString},
		{"password", kindString},
		{"email", kindString},
		{"isAdmin", kindBool},
	}

	travelPlanShape = shape{
		{"id", kindString},
		{"name", kindString},
		{"description", kindString},
		{"country", kindString},
		{"username", kindString},
	}
)

// Identity validates a durable session record ({id, username, email, isAdmin}).
func Identity(payload []byte) (models.Identity, error) {
	a, err := one[models.Account](payload, accountShape)
	if err != nil {
		return models.Identity{}, err
	}
	return a.Identity(), nil
}

func Account(payload []byte) (models.Account, error) {
	return one[models.Account](payload, accountShape)
}

func Accounts(payload []byte) ([]models.Account, error) {
	return many[models.Account](payload, accountShape)
}

func TravelPlan(payload []byte) (models.TravelPlan, error) {
	return one[models.TravelPlan](payload, travelPlanShape)
}

func TravelPlans(payload []byte) ([]models.TravelPlan, error) {
	return many[models.TravelPlan](payload, travelPlanShape)
}

// LoginMatch validates the account lookup made at login. The collection
// must hold exactly one well-formed account; anything else fails with an
// *Error wrapping ErrNotExactlyOne (or a shape failure).
func LoginMatch(payload []byte) (models.Account, error) {
	matches, err := many[models.Account](payload, loginShape)
	if err != nil {
		return models.Account{}, err
	}
	if len(matches) != 1 {
		return models.Account{}, &Error{
			Path:   "$",
			Reason: fmt.Sprintf("expected exactly one matching account, got %d", len(matches)),
			Err:    ErrNotExactlyOne,
		}
	}
	return matches[0], nil
}

func one[T any](payload []byte, s shape) (T, error) {
	var zero T
	fields, err := s.check(payload, "$")
	if err != nil {
		return zero, err
	}
	// Decode from the checked fields only. Decoding the raw payload would let
	// a case-variant key ("IsAdmin") override the checked one.
	b, err := json.Marshal(fields)
	if err != nil {
		return zero, &Error{Path: "$", Reason: err.Error(), Err: err}
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return zero, &Error{Path: "$", Reason: err.Error(), Err: err}
	}
	return v, nil
}

func many[T any](payload []byte, s shape) ([]T, error) {
	if firstByte(payload) != '[' {
		return nil, &Error{Path: "$", Reason: "expected an array"}
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(payload, &elems); err != nil {
		return nil, &Error{Path: "$", Reason: "malformed JSON", Err: err}
	}

	out := make([]T, 0, len(elems))
	for i, raw := range elems {
		v, err := one[T](raw, s)
		if err != nil {
			var ve *Error
			if errors.As(err, &ve) {
				ve.Path = fmt.Sprintf("$[%d]%s", i, ve.Path[1:])
			}
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// check verifies that payload is an object carrying every field of s with
// the right primitive type, and returns exactly those fields.
func (s shape) check(payload []byte, path string) (map[string]any, error) {
	if firstByte(payload) != '{' {
		return nil, &Error{Path: path, Reason: "expected an object"}
	}
	var obj map[string]any
	if err := json.Unmarshal(payload, &obj); err != nil {
		return nil, &Error{Path: path, Reason: "malformed JSON", Err: err}
	}

	fields := make(map[string]any, len(s))
	for _, f := range s {
		v, ok := obj[f.name]
		if !ok {
			return nil, &Error{Path: path + "." + f.name, Reason: "missing field"}
		}
		if !f.kind.matches(v) {
			return nil, &Error{Path: path + "." + f.name, Reason: fmt.Sprintf("expected %s, got %s", f.kind, describe(v))}
		}
		fields[f.name] = v
	}
	return fields, nil
}

func (k kind) matches(v any) bool {
	switch k {
	case kindBool:
		_, ok := v.(bool)
		return ok
	default:
		_, ok := v.(string)
		return ok
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func firstByte(b []byte) byte {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
