package query

// RangeQuery matches documents whose field value falls inside the given
// bounds. Wire form: {"range": {field: {"gte": ..., "lt": ..., ...}}}.
// The lower-bound keys (gte/gt) and upper-bound keys (lte/lt) are
// independent; the builder never checks bounds for logical consistency —
// that is left to the receiving engine.
type RangeQuery struct{ base }

// rangeBoundKeys are the four comparison keys a range body may carry.
var rangeBoundKeys = [...]string{"gte", "gt", "lte", "lt"}

// Range creates a range query with empty bounds.
func Range(field string) RangeQuery {
	body := Body{"range": Body{field: Body{}}}
	return RangeQuery{newBase("range", body, record("Range", field))}
}

// Field returns the queried field name.
func (q RangeQuery) Field() string { return singleKey(q.nested()) }

// Bounds returns the per-field parameter object, comparison keys included.
func (q RangeQuery) Bounds() Body {
	n := q.nested()
	params, _ := asBody(n[singleKey(n)])
	return params
}

// HasBounds reports whether any of the four comparison keys is set.
func (q RangeQuery) HasBounds() bool {
	params := q.Bounds()
	for _, k := range rangeBoundKeys {
		if _, ok := params[k]; ok {
			return true
		}
	}
	return false
}

func (q RangeQuery) setParam(key string, v any, op OperationRecord) RangeQuery {
	n := q.nested()
	field := singleKey(n)
	params := expandField(n, field, "")
	params[key] = cloneValue(v)
	n[field] = params
	return RangeQuery{q.withNested(n, op)}
}

// Gte sets the inclusive lower bound.
func (q RangeQuery) Gte(v any) RangeQuery { return q.setParam("gte", v, record("Gte", v)) }

// Gt sets the exclusive lower bound.
func (q RangeQuery) Gt(v any) RangeQuery { return q.setParam("gt", v, record("Gt", v)) }

// Lte sets the inclusive upper bound.
func (q RangeQuery) Lte(v any) RangeQuery { return q.setParam("lte", v, record("Lte", v)) }

// Lt sets the exclusive upper bound.
func (q RangeQuery) Lt(v any) RangeQuery { return q.setParam("lt", v, record("Lt", v)) }

// Between sets both bounds at once: the gte/lte pair when inclusive, else
// the gt/lt pair. Previously set bounds are overwritten only where the keys
// collide; the keys of the other pair are left in place.
func (q RangeQuery) Between(min, max any, inclusive bool) RangeQuery {
	n := q.nested()
	field := singleKey(n)
	params := expandField(n, field, "")
	if inclusive {
		params["gte"] = cloneValue(min)
		params["lte"] = cloneValue(max)
	} else {
		params["gt"] = cloneValue(min)
		params["lt"] = cloneValue(max)
	}
	n[field] = params
	return RangeQuery{q.withNested(n, record("Between", min, max, inclusive))}
}

// Format sets the date format used to parse date bounds.
func (q RangeQuery) Format(format string) RangeQuery {
	return q.setParam("format", format, record("Format", format))
}

// TimeZone sets the UTC offset or IANA zone applied to date bounds.
func (q RangeQuery) TimeZone(tz string) RangeQuery {
	return q.setParam("time_zone", tz, record("TimeZone", tz))
}

// Relation sets how the range relates to range-typed fields
// (INTERSECTS, CONTAINS, WITHIN).
func (q RangeQuery) Relation(rel string) RangeQuery {
	return q.setParam("relation", rel, record("Relation", rel))
}

// Boost sets the relevance boost.
func (q RangeQuery) Boost(boost float64) RangeQuery {
	return q.setParam("boost", boost, record("Boost", boost))
}
