package query

// TermQuery matches documents containing an exact value in a field.
// Wire form: {"term": {field: value}} or, once options are set,
// {"term": {field: {"value": value, ...}}}.
type TermQuery struct{ base }

// Term creates a term query for an exact field value.
func Term(field string, value any) TermQuery {
	body := Body{"term": Body{field: cloneValue(value)}}
	return TermQuery{newBase("term", body, record("Term", field, value))}
}

// Field returns the queried field name.
func (q TermQuery) Field() string { return singleKey(q.nested()) }

// Value returns the matched value, tolerating both the scalar shorthand and
// the expanded object form.
func (q TermQuery) Value() any { return fieldValue(q.nested(), "value") }

// Boost sets the relevance boost, promoting the shorthand form if needed.
func (q TermQuery) Boost(boost float64) TermQuery {
	return TermQuery{q.mergeFieldOption("value", Body{"boost": boost}, record("Boost", boost))}
}

// CaseInsensitive toggles case-insensitive matching.
func (q TermQuery) CaseInsensitive(on bool) TermQuery {
	return TermQuery{q.mergeFieldOption("value", Body{"case_insensitive": on}, record("CaseInsensitive", on))}
}

// fieldValue reads the primary value of a single-field variant from either
// body shape.
func fieldValue(n Body, valueKey string) any {
	cur := n[singleKey(n)]
	if m, ok := asBody(cur); ok {
		return m[valueKey]
	}
	return cur
}

// TermsQuery matches documents containing any of several exact values.
// Wire form: {"terms": {field: [v1, v2, ...]}}.
type TermsQuery struct{ base }

// Terms creates a terms query over a set of exact values.
func Terms(field string, values ...any) TermsQuery {
	list := make([]any, len(values))
	for i, v := range values {
		list[i] = cloneValue(v)
	}
	body := Body{"terms": Body{field: list}}
	args := append([]any{field}, values...)
	return TermsQuery{newBase("terms", body, record("Terms", args...))}
}

// Field returns the queried field name. Options such as boost share the
// nested value with the field key, so the field is the key holding a list.
func (q TermsQuery) Field() string {
	n := q.nested()
	for k, v := range n {
		if _, ok := v.([]any); ok {
			return k
		}
	}
	return ""
}

// Values returns the matched value set.
func (q TermsQuery) Values() []any {
	n := q.nested()
	if list, ok := n[q.Field()].([]any); ok {
		return list
	}
	return nil
}

// Add appends values to the matched set.
func (q TermsQuery) Add(values ...any) TermsQuery {
	n := q.nested()
	field := q.Field()
	list, _ := n[field].([]any)
	for _, v := range values {
		list = append(list, cloneValue(v))
	}
	n[field] = list
	return TermsQuery{q.withNested(n, record("Add", values...))}
}

// Boost sets the relevance boost.
func (q TermsQuery) Boost(boost float64) TermsQuery {
	return TermsQuery{q.setNested("boost", boost, record("Boost", boost))}
}

// ExistsQuery matches documents that contain an indexed value for a field.
// Wire form: {"exists": {"field": name}}. This is the single canonical
// representation of an existence check in this package.
type ExistsQuery struct{ base }

// Exists creates an exists query for a field.
func Exists(field string) ExistsQuery {
	body := Body{"exists": Body{"field": field}}
	return ExistsQuery{newBase("exists", body, record("Exists", field))}
}

// Field returns the checked field name.
func (q ExistsQuery) Field() string {
	f, _ := q.nested()["field"].(string)
	return f
}

// Boost sets the relevance boost.
func (q ExistsQuery) Boost(boost float64) ExistsQuery {
	return ExistsQuery{q.setNested("boost", boost, record("Boost", boost))}
}

// PrefixQuery matches documents containing terms with a given prefix.
type PrefixQuery struct{ base }

// Prefix creates a prefix query.
func Prefix(field string, value any) PrefixQuery {
	body := Body{"prefix": Body{field: cloneValue(value)}}
	return PrefixQuery{newBase("prefix", body, record("Prefix", field, value))}
}

// Field returns the queried field name.
func (q PrefixQuery) Field() string { return singleKey(q.nested()) }

// Value returns the prefix value.
func (q PrefixQuery) Value() any { return fieldValue(q.nested(), "value") }

// Boost sets the relevance boost.
func (q PrefixQuery) Boost(boost float64) PrefixQuery {
	return PrefixQuery{q.mergeFieldOption("value", Body{"boost": boost}, record("Boost", boost))}
}

// Rewrite sets the multi-term rewrite method.
func (q PrefixQuery) Rewrite(method string) PrefixQuery {
	return PrefixQuery{q.mergeFieldOption("value", Body{"rewrite": method}, record("Rewrite", method))}
}

// CaseInsensitive toggles case-insensitive matching.
func (q PrefixQuery) CaseInsensitive(on bool) PrefixQuery {
	return PrefixQuery{q.mergeFieldOption("value", Body{"case_insensitive": on}, record("CaseInsensitive", on))}
}

// WildcardQuery matches documents containing terms matching a wildcard
// pattern (* and ? metacharacters).
type WildcardQuery struct{ base }

// Wildcard creates a wildcard query.
func Wildcard(field string, pattern any) WildcardQuery {
	body := Body{"wildcard": Body{field: cloneValue(pattern)}}
	return WildcardQuery{newBase("wildcard", body, record("Wildcard", field, pattern))}
}

// Field returns the queried field name.
func (q WildcardQuery) Field() string { return singleKey(q.nested()) }

// Value returns the wildcard pattern.
func (q WildcardQuery) Value() any { return fieldValue(q.nested(), "value") }

// Boost sets the relevance boost.
func (q WildcardQuery) Boost(boost float64) WildcardQuery {
	return WildcardQuery{q.mergeFieldOption("value", Body{"boost": boost}, record("Boost", boost))}
}

// Rewrite sets the multi-term rewrite method.
func (q WildcardQuery) Rewrite(method string) WildcardQuery {
	return WildcardQuery{q.mergeFieldOption("value", Body{"rewrite": method}, record("Rewrite", method))}
}

// CaseInsensitive toggles case-insensitive matching.
func (q WildcardQuery) CaseInsensitive(on bool) WildcardQuery {
	return WildcardQuery{q.mergeFieldOption("value", Body{"case_insensitive": on}, record("CaseInsensitive", on))}
}

// RegexpQuery matches documents containing terms matching a regular
// expression.
type RegexpQuery struct{ base }

// Regexp creates a regexp query.
func Regexp(field string, value any) RegexpQuery {
	body := Body{"regexp": Body{field: cloneValue(value)}}
	return RegexpQuery{newBase("regexp", body, record("Regexp", field, value))}
}

// Field returns the queried field name.
func (q RegexpQuery) Field() string { return singleKey(q.nested()) }

// Value returns the expression.
func (q RegexpQuery) Value() any { return fieldValue(q.nested(), "value") }

// Flags sets the enabled regexp operator flags (e.g. "ALL").
func (q RegexpQuery) Flags(flags string) RegexpQuery {
	return RegexpQuery{q.mergeFieldOption("value", Body{"flags": flags}, record("Flags", flags))}
}

// MaxDeterminizedStates caps automaton expansion for the expression.
func (q RegexpQuery) MaxDeterminizedStates(n int) RegexpQuery {
	return RegexpQuery{q.mergeFieldOption("value", Body{"max_determinized_states": n}, record("MaxDeterminizedStates", n))}
}

// Boost sets the relevance boost.
func (q RegexpQuery) Boost(boost float64) RegexpQuery {
	return RegexpQuery{q.mergeFieldOption("value", Body{"boost": boost}, record("Boost", boost))}
}

// FuzzyQuery matches documents containing terms within a given edit
// distance of the search value.
type FuzzyQuery struct{ base }

// Fuzzy creates a fuzzy query.
func Fuzzy(field string, value any) FuzzyQuery {
	body := Body{"fuzzy": Body{field: cloneValue(value)}}
	return FuzzyQuery{newBase("fuzzy", body, record("Fuzzy", field, value))}
}

// Field returns the queried field name.
func (q FuzzyQuery) Field() string { return singleKey(q.nested()) }

// Value returns the search value.
func (q FuzzyQuery) Value() any { return fieldValue(q.nested(), "value") }

// Fuzziness sets the maximum edit distance ("AUTO" or a number).
func (q FuzzyQuery) Fuzziness(f any) FuzzyQuery {
	return FuzzyQuery{q.mergeFieldOption("value", Body{"fuzziness": f}, record("Fuzziness", f))}
}

// PrefixLength sets the number of leading characters left unchanged.
func (q FuzzyQuery) PrefixLength(n int) FuzzyQuery {
	return FuzzyQuery{q.mergeFieldOption("value", Body{"prefix_length": n}, record("PrefixLength", n))}
}

// MaxExpansions caps the number of variations created.
func (q FuzzyQuery) MaxExpansions(n int) FuzzyQuery {
	return FuzzyQuery{q.mergeFieldOption("value", Body{"max_expansions": n}, record("MaxExpansions", n))}
}

// Transpositions toggles whether adjacent-character swaps count as one edit.
func (q FuzzyQuery) Transpositions(on bool) FuzzyQuery {
	return FuzzyQuery{q.mergeFieldOption("value", Body{"transpositions": on}, record("Transpositions", on))}
}

// Boost sets the relevance boost.
func (q FuzzyQuery) Boost(boost float64) FuzzyQuery {
	return FuzzyQuery{q.mergeFieldOption("value", Body{"boost": boost}, record("Boost", boost))}
}

// IDsQuery matches documents by their document IDs.
// Wire form: {"ids": {"values": [...]}}.
type IDsQuery struct{ base }

// IDs creates an ids query.
func IDs(values ...string) IDsQuery {
	list := make([]any, len(values))
	args := make([]any, len(values))
	for i, v := range values {
		list[i] = v
		args[i] = v
	}
	body := Body{"ids": Body{"values": list}}
	return IDsQuery{newBase("ids", body, record("IDs", args...))}
}

// Values returns the matched document IDs.
func (q IDsQuery) Values() []any {
	list, _ := q.nested()["values"].([]any)
	return list
}

// Add appends document IDs to the matched set.
func (q IDsQuery) Add(values ...string) IDsQuery {
	n := q.nested()
	list, _ := n["values"].([]any)
	args := make([]any, len(values))
	for i, v := range values {
		list = append(list, v)
		args[i] = v
	}
	n["values"] = list
	return IDsQuery{q.withNested(n, record("Add", args...))}
}

// Boost sets the relevance boost.
func (q IDsQuery) Boost(boost float64) IDsQuery {
	return IDsQuery{q.setNested("boost", boost, record("Boost", boost))}
}
