package query

// MatchQuery performs full-text matching on an analyzed field.
// Wire form: {"match": {field: text}} or, once options are set,
// {"match": {field: {"query": text, ...}}}.
type MatchQuery struct{ base }

// Match creates a match query.
func Match(field string, text any) MatchQuery {
	body := Body{"match": Body{field: cloneValue(text)}}
	return MatchQuery{newBase("match", body, record("Match", field, text))}
}

// Field returns the queried field name.
func (q MatchQuery) Field() string { return singleKey(q.nested()) }

// Query returns the search text, tolerating both body shapes.
func (q MatchQuery) Query() any { return fieldValue(q.nested(), "query") }

// Operator sets how terms are combined ("and" or "or").
func (q MatchQuery) Operator(op string) MatchQuery {
	return MatchQuery{q.mergeFieldOption("query", Body{"operator": op}, record("Operator", op))}
}

// Fuzziness sets the maximum edit distance ("AUTO" or a number).
func (q MatchQuery) Fuzziness(f any) MatchQuery {
	return MatchQuery{q.mergeFieldOption("query", Body{"fuzziness": f}, record("Fuzziness", f))}
}

// Analyzer overrides the analyzer used on the search text.
func (q MatchQuery) Analyzer(name string) MatchQuery {
	return MatchQuery{q.mergeFieldOption("query", Body{"analyzer": name}, record("Analyzer", name))}
}

// MinimumShouldMatch sets the minimum number (or percentage) of matching
// optional terms.
func (q MatchQuery) MinimumShouldMatch(m any) MatchQuery {
	return MatchQuery{q.mergeFieldOption("query", Body{"minimum_should_match": m}, record("MinimumShouldMatch", m))}
}

// ZeroTermsQuery sets the behavior when the analyzer removes every term
// ("none" or "all").
func (q MatchQuery) ZeroTermsQuery(mode string) MatchQuery {
	return MatchQuery{q.mergeFieldOption("query", Body{"zero_terms_query": mode}, record("ZeroTermsQuery", mode))}
}

// Lenient toggles tolerance of type mismatches between query and field.
func (q MatchQuery) Lenient(on bool) MatchQuery {
	return MatchQuery{q.mergeFieldOption("query", Body{"lenient": on}, record("Lenient", on))}
}

// Boost sets the relevance boost.
func (q MatchQuery) Boost(boost float64) MatchQuery {
	return MatchQuery{q.mergeFieldOption("query", Body{"boost": boost}, record("Boost", boost))}
}

// MatchPhraseQuery matches an exact phrase after analysis.
type MatchPhraseQuery struct{ base }

// MatchPhrase creates a match_phrase query.
func MatchPhrase(field string, text any) MatchPhraseQuery {
	body := Body{"match_phrase": Body{field: cloneValue(text)}}
	return MatchPhraseQuery{newBase("match_phrase", body, record("MatchPhrase", field, text))}
}

// Field returns the queried field name.
func (q MatchPhraseQuery) Field() string { return singleKey(q.nested()) }

// Query returns the phrase text.
func (q MatchPhraseQuery) Query() any { return fieldValue(q.nested(), "query") }

// Slop sets the number of positions terms may be moved.
func (q MatchPhraseQuery) Slop(n int) MatchPhraseQuery {
	return MatchPhraseQuery{q.mergeFieldOption("query", Body{"slop": n}, record("Slop", n))}
}

// Analyzer overrides the analyzer used on the phrase.
func (q MatchPhraseQuery) Analyzer(name string) MatchPhraseQuery {
	return MatchPhraseQuery{q.mergeFieldOption("query", Body{"analyzer": name}, record("Analyzer", name))}
}

// Boost sets the relevance boost.
func (q MatchPhraseQuery) Boost(boost float64) MatchPhraseQuery {
	return MatchPhraseQuery{q.mergeFieldOption("query", Body{"boost": boost}, record("Boost", boost))}
}

// MatchPhrasePrefixQuery matches a phrase whose last term is treated as a
// prefix.
type MatchPhrasePrefixQuery struct{ base }

// MatchPhrasePrefix creates a match_phrase_prefix query.
func MatchPhrasePrefix(field string, text any) MatchPhrasePrefixQuery {
	body := Body{"match_phrase_prefix": Body{field: cloneValue(text)}}
	return MatchPhrasePrefixQuery{newBase("match_phrase_prefix", body, record("MatchPhrasePrefix", field, text))}
}

// Field returns the queried field name.
func (q MatchPhrasePrefixQuery) Field() string { return singleKey(q.nested()) }

// Query returns the phrase text.
func (q MatchPhrasePrefixQuery) Query() any { return fieldValue(q.nested(), "query") }

// MaxExpansions caps the number of terms the final prefix may expand to.
func (q MatchPhrasePrefixQuery) MaxExpansions(n int) MatchPhrasePrefixQuery {
	return MatchPhrasePrefixQuery{q.mergeFieldOption("query", Body{"max_expansions": n}, record("MaxExpansions", n))}
}

// Slop sets the number of positions terms may be moved.
func (q MatchPhrasePrefixQuery) Slop(n int) MatchPhrasePrefixQuery {
	return MatchPhrasePrefixQuery{q.mergeFieldOption("query", Body{"slop": n}, record("Slop", n))}
}

// Analyzer overrides the analyzer used on the phrase.
func (q MatchPhrasePrefixQuery) Analyzer(name string) MatchPhrasePrefixQuery {
	return MatchPhrasePrefixQuery{q.mergeFieldOption("query", Body{"analyzer": name}, record("Analyzer", name))}
}

// Boost sets the relevance boost.
func (q MatchPhrasePrefixQuery) Boost(boost float64) MatchPhrasePrefixQuery {
	return MatchPhrasePrefixQuery{q.mergeFieldOption("query", Body{"boost": boost}, record("Boost", boost))}
}

// MultiMatchQuery runs a match query against several fields at once.
// Wire form: {"multi_match": {"query": text, "fields": [...]}}.
type MultiMatchQuery struct{ base }

// MultiMatch creates a multi_match query.
func MultiMatch(text any, fields ...string) MultiMatchQuery {
	list := make([]any, len(fields))
	for i, f := range fields {
		list[i] = f
	}
	body := Body{"multi_match": Body{"query": cloneValue(text), "fields": list}}
	args := append([]any{text}, toAnySlice(fields)...)
	return MultiMatchQuery{newBase("multi_match", body, record("MultiMatch", args...))}
}

// Query returns the search text.
func (q MultiMatchQuery) Query() any { return q.nested()["query"] }

// Fields returns the targeted fields.
func (q MultiMatchQuery) Fields() []any {
	list, _ := q.nested()["fields"].([]any)
	return list
}

// Type sets the multi-field execution mode (best_fields, most_fields,
// cross_fields, phrase, phrase_prefix, bool_prefix).
func (q MultiMatchQuery) Type(mode string) MultiMatchQuery {
	return MultiMatchQuery{q.setNested("type", mode, record("Type", mode))}
}

// Operator sets how terms are combined ("and" or "or").
func (q MultiMatchQuery) Operator(op string) MultiMatchQuery {
	return MultiMatchQuery{q.setNested("operator", op, record("Operator", op))}
}

// TieBreaker sets the score contribution of non-best matching fields. Not
// validated here; semantic bounds are left to the engine.
func (q MultiMatchQuery) TieBreaker(t float64) MultiMatchQuery {
	return MultiMatchQuery{q.setNested("tie_breaker", t, record("TieBreaker", t))}
}

// Analyzer overrides the analyzer used on the search text.
func (q MultiMatchQuery) Analyzer(name string) MultiMatchQuery {
	return MultiMatchQuery{q.setNested("analyzer", name, record("Analyzer", name))}
}

// Boost sets the relevance boost.
func (q MultiMatchQuery) Boost(boost float64) MultiMatchQuery {
	return MultiMatchQuery{q.setNested("boost", boost, record("Boost", boost))}
}

// QueryStringQuery parses a query-language expression (AND/OR/wildcards).
type QueryStringQuery struct{ base }

// QueryString creates a query_string query.
func QueryString(expr string) QueryStringQuery {
	body := Body{"query_string": Body{"query": expr}}
	return QueryStringQuery{newBase("query_string", body, record("QueryString", expr))}
}

// Query returns the expression.
func (q QueryStringQuery) Query() any { return q.nested()["query"] }

// DefaultField sets the field searched when the expression names none.
func (q QueryStringQuery) DefaultField(field string) QueryStringQuery {
	return QueryStringQuery{q.setNested("default_field", field, record("DefaultField", field))}
}

// DefaultOperator sets the operator joining bare terms ("AND" or "OR").
func (q QueryStringQuery) DefaultOperator(op string) QueryStringQuery {
	return QueryStringQuery{q.setNested("default_operator", op, record("DefaultOperator", op))}
}

// Fields sets the fields searched when the expression names none.
func (q QueryStringQuery) Fields(fields ...string) QueryStringQuery {
	return QueryStringQuery{q.setNested("fields", toAnySlice(fields), record("Fields", toAnySlice(fields)...))}
}

// AnalyzeWildcard toggles analysis of wildcard terms.
func (q QueryStringQuery) AnalyzeWildcard(on bool) QueryStringQuery {
	return QueryStringQuery{q.setNested("analyze_wildcard", on, record("AnalyzeWildcard", on))}
}

// AllowLeadingWildcard toggles leading * and ? in the expression.
func (q QueryStringQuery) AllowLeadingWildcard(on bool) QueryStringQuery {
	return QueryStringQuery{q.setNested("allow_leading_wildcard", on, record("AllowLeadingWildcard", on))}
}

// Boost sets the relevance boost.
func (q QueryStringQuery) Boost(boost float64) QueryStringQuery {
	return QueryStringQuery{q.setNested("boost", boost, record("Boost", boost))}
}

// SimpleQueryStringQuery parses a restricted query language that never
// raises syntax errors.
type SimpleQueryStringQuery struct{ base }

// SimpleQueryString creates a simple_query_string query.
func SimpleQueryString(expr string) SimpleQueryStringQuery {
	body := Body{"simple_query_string": Body{"query": expr}}
	return SimpleQueryStringQuery{newBase("simple_query_string", body, record("SimpleQueryString", expr))}
}

// Query returns the expression.
func (q SimpleQueryStringQuery) Query() any { return q.nested()["query"] }

// Fields sets the fields searched.
func (q SimpleQueryStringQuery) Fields(fields ...string) SimpleQueryStringQuery {
	return SimpleQueryStringQuery{q.setNested("fields", toAnySlice(fields), record("Fields", toAnySlice(fields)...))}
}

// DefaultOperator sets the operator joining bare terms ("AND" or "OR").
func (q SimpleQueryStringQuery) DefaultOperator(op string) SimpleQueryStringQuery {
	return SimpleQueryStringQuery{q.setNested("default_operator", op, record("DefaultOperator", op))}
}

// Flags enables specific operators of the simple query language.
func (q SimpleQueryStringQuery) Flags(flags string) SimpleQueryStringQuery {
	return SimpleQueryStringQuery{q.setNested("flags", flags, record("Flags", flags))}
}

// Boost sets the relevance boost.
func (q SimpleQueryStringQuery) Boost(boost float64) SimpleQueryStringQuery {
	return SimpleQueryStringQuery{q.setNested("boost", boost, record("Boost", boost))}
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
