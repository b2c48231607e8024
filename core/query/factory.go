package query

// Higher-order combinators over the bool compound. Each wraps its arguments
// into a fresh bool query; the arguments themselves are embedded by value
// and remain untouched.

// And combines queries so that all of them must match.
func And(qs ...Query) BoolQuery {
	return Bool().Must(qs...)
}

// Or combines queries so that at least one should match.
func Or(qs ...Query) BoolQuery {
	return Bool().Should(qs...)
}

// Not negates the given queries.
func Not(qs ...Query) BoolQuery {
	return Bool().MustNot(qs...)
}

// FilterOf combines queries as non-scoring filters.
func FilterOf(qs ...Query) BoolQuery {
	return Bool().Filter(qs...)
}

// MustOf is a named alias for And.
func MustOf(qs ...Query) BoolQuery {
	return Bool().Must(qs...)
}

// ShouldOf is a named alias for Or.
func ShouldOf(qs ...Query) BoolQuery {
	return Bool().Should(qs...)
}

// IsEmpty reports whether q is a bool compound with no clauses in any slot.
// Non-bool queries are never empty in this sense.
func IsEmpty(q Query) bool {
	if q == nil {
		return true
	}
	if q.Kind() != "bool" {
		return false
	}
	body := q.Map()
	n, _ := asBody(body["bool"])
	for _, slot := range []string{clauseMust, clauseShould, clauseFilter, clauseMustNot} {
		if list, ok := n[slot].([]any); ok && len(list) > 0 {
			return false
		}
	}
	return true
}

// Equals reports structural equality of two queries' serialized bodies.
// Metadata (identity, timestamps, operation log) is excluded.
func Equals(a, b Query) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}
