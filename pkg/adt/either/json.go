package either

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ib-77/adt/pkg/adt"
)

const (
	leftKey  = "left"
	rightKey = "right"
)

// ErrJSON is returned when a record is not exactly one of {"left": ...}
// or {"right": ...}.
var ErrJSON = errors.New("either: malformed json record")

// ToJSON returns the single-key record named after the active arm.
// Nothing yields {"left": nil}.
func (e *Either[L, R]) ToJSON() map[string]any {
	switch e.variant {
	case adt.RightVariant:
		return map[string]any{rightKey: e.right}
	case adt.LeftVariant:
		return map[string]any{leftKey: e.left}
	default:
		return map[string]any{leftKey: nil}
	}
}

// MarshalJSON encodes the ToJSON record. Error payloads are written as
// their message.
func (e *Either[L, R]) MarshalJSON() ([]byte, error) {
	record := e.ToJSON()
	for k, v := range record {
		if err, ok := v.(error); ok && !adt.IsNil(err) {
			record[k] = err.Error()
		}
	}
	return json.Marshal(record)
}

// UnmarshalJSON decodes a record into a zero Either, such as a field
// json allocates. Instances that were already built, including decoded
// ones, are never overwritten. {"left": null} decodes to a Left holding
// the zero L; FromJSON maps it to Nothing instead.
func (e *Either[L, R]) UnmarshalJSON(data []byte) error {
	_, err := e.decode(data)
	return err
}

func FromJSON[L, R any](data []byte) (*Either[L, R], error) {
	e := new(Either[L, R])
	nullLeft, err := e.decode(data)
	if err != nil {
		return nil, err
	}
	if nullLeft {
		return Nothing[L, R](), nil
	}
	return e, nil
}

func (e *Either[L, R]) decode(data []byte) (nullLeft bool, err error) {
	if e.sealed {
		return false, fmt.Errorf("%w: cannot decode into a built %v", ErrJSON, e)
	}

	var record map[string]json.RawMessage
	if err := json.Unmarshal(data, &record); err != nil {
		return false, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	if len(record) != 1 {
		return false, fmt.Errorf("%w: expected one key, got %d", ErrJSON, len(record))
	}

	if raw, ok := record[rightKey]; ok {
		var v R
		if err := json.Unmarshal(raw, &v); err != nil {
			return false, fmt.Errorf("%w: right: %w", ErrJSON, err)
		}
		*e = Either[L, R]{variant: adt.RightVariant, right: v, sealed: true}
		return false, nil
	}

	raw, ok := record[leftKey]
	if !ok {
		return false, fmt.Errorf("%w: unknown key", ErrJSON)
	}

	var v L
	if string(raw) != "null" {
		if err := json.Unmarshal(raw, &v); err != nil {
			return false, fmt.Errorf("%w: left: %w", ErrJSON, err)
		}
	}
	*e = Either[L, R]{variant: adt.LeftVariant, left: v, sealed: true}
	return string(raw) == "null", nil
}
