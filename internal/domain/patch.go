package domain

import (
	"encoding/json"
	"maps"
	"math"
	"slices"
)

// Patch is a partial update keyed by JSON field name.
type Patch map[string]any

// Has reports whether the patch carries key.
func (p Patch) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// setter assigns one decoded patch value to an entity.
type setter[T any] func(target *T, value any) error

// fieldSet maps the mutable field names of an entity to their setters.
type fieldSet[T any] map[string]setter[T]

// apply runs the setters for every recognized key in p, in key order so that
// the reported error is deterministic. Unrecognized keys are ignored.
func (fs fieldSet[T]) apply(target *T, p Patch) error {
	for _, key := range slices.Sorted(maps.Keys(p)) {
		set, ok := fs[key]
		if !ok {
			continue
		}
		if err := set(target, p[key]); err != nil {
			return err
		}
	}
	return nil
}

func asString(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", NewValidationError(field, "must be a string", nil)
	}
	return s, nil
}

func asBool(field string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, NewValidationError(field, "must be a boolean", nil)
	}
	return b, nil
}

func asFloat(field string, value any) (float64, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, NewValidationError(field, "must be a number", err)
		}
		f = parsed
	default:
		return 0, NewValidationError(field, "must be a number", nil)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, NewValidationError(field, "must be a finite number", nil)
	}
	return f, nil
}

func asInt(field string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	}
	f, err := asFloat(field, value)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, NewValidationError(field, "must be an integer", nil)
	}
	return int(f), nil
}
