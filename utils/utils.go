// Package utils provides small JSON conversion helpers shared by the
// envelope persistence layer and the engine adapters.
package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// StructToMap converts a struct (or pointer to struct) into a
// map[string]any via a JSON round trip, respecting json tags. Nested
// objects are preserved as json.RawMessage so their exact wire form
// survives re-serialization.
func StructToMap[T any](record T) (map[string]any, error) {
	val := reflect.ValueOf(record)
	if !val.IsValid() {
		return nil, fmt.Errorf("input record cannot be nil")
	}
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, fmt.Errorf("input record cannot be a nil pointer to a struct")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("input record must be a struct or a pointer to a struct, got %s", val.Kind())
	}

	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("StructToMap: failed to marshal input record: %w", err)
	}

	var tempMap map[string]any
	if err := json.Unmarshal(jsonBytes, &tempMap); err != nil {
		return nil, fmt.Errorf("StructToMap: failed to unmarshal to map: %w", err)
	}

	resultMap := make(map[string]any, len(tempMap))
	for key, v := range tempMap {
		if nestedMap, ok := v.(map[string]any); ok {
			nestedBytes, err := json.Marshal(nestedMap)
			if err != nil {
				return nil, fmt.Errorf("StructToMap: error re-marshaling nested map for key '%s': %w", key, err)
			}
			resultMap[key] = json.RawMessage(nestedBytes)
		} else {
			resultMap[key] = v
		}
	}

	return resultMap, nil
}

// MapToStruct is the inverse of StructToMap: it converts a map[string]any
// (which may hold json.RawMessage values) into a new instance of the struct
// type T.
func MapToStruct[T any](input map[string]any) (T, error) {
	var zero T

	if input == nil {
		return zero, fmt.Errorf("MapToStruct: input map cannot be nil")
	}

	typ := reflect.TypeOf(zero)
	if typ != nil && typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return zero, fmt.Errorf("MapToStruct: generic type T must be a struct type (or pointer to struct)")
	}

	jsonBytes, err := json.Marshal(input)
	if err != nil {
		return zero, fmt.Errorf("MapToStruct: failed to marshal input map: %w", err)
	}

	var result T
	if err := json.Unmarshal(jsonBytes, &result); err != nil {
		return zero, fmt.Errorf("MapToStruct: failed to unmarshal to target struct: %w", err)
	}

	return result, nil
}

// ToFloat64 converts a value of various numeric types to a float64,
// reporting whether the conversion succeeded. Query bodies hold whatever
// numeric type the caller supplied, so adapters normalize through this.
func ToFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
