// Package query implements an immutable, fluent builder for search-engine
// query bodies. Every query value is frozen at construction: mutator methods
// never change the receiver, they return a new instance wrapping a deep copy
// of the updated body. The serialized form of a query is a nested
// map[string]any document matching the target engine's query DSL.
package query

import (
	"encoding/json"
	"time"
)

// Body is the nested key-value document representing one query's wire form.
// A value inside a Body may be a scalar, another Body, or a sequence of
// values (sub-query bodies).
type Body map[string]any

// Clone returns a deep copy of the body. Nested mappings and sequences are
// duplicated recursively; time values are copied by value.
func (b Body) Clone() Body {
	if b == nil {
		return nil
	}
	out := make(Body, len(b))
	for k, v := range b {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue recursively duplicates mappings and sequences. Plain map types
// are normalized to Body so later merges can rely on a single map type.
func cloneValue(v any) any {
	switch t := v.(type) {
	case Body:
		return t.Clone()
	case map[string]any:
		return Body(t).Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []Body:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e.Clone()
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Body(e).Clone()
		}
		return out
	case time.Time:
		return t
	default:
		return v
	}
}

// asBody reports a nested value as a Body, tolerating both map spellings.
func asBody(v any) (Body, bool) {
	switch t := v.(type) {
	case Body:
		return t, true
	case map[string]any:
		return Body(t), true
	default:
		return nil, false
	}
}

// singleKey returns the sole key of a single-field nested value. Single-field
// variants (term, match, range, ...) key their nested value by field name.
func singleKey(b Body) string {
	for k := range b {
		return k
	}
	return ""
}

// canonicalJSON renders a body in canonical form: encoding/json sorts map
// keys, so two structurally identical bodies always produce identical bytes.
func canonicalJSON(b Body) ([]byte, error) {
	return json.Marshal(b)
}

// bodiesEqual compares two bodies as transmittable values: mappings by
// key-set and value, sequences order-sensitively.
func bodiesEqual(a, b Body) bool {
	ab, err := canonicalJSON(a)
	if err != nil {
		return false
	}
	bb, err := canonicalJSON(b)
	if err != nil {
		return false
	}
	return string(ab) == string(bb)
}
