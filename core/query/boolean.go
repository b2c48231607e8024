package query

// Clause slot names of a bool query.
const (
	clauseMust    = "must"
	clauseShould  = "should"
	clauseFilter  = "filter"
	clauseMustNot = "must_not"
)

// BoolQuery composes other queries with boolean logic. Sub-queries are
// embedded as serialized snapshots: mutating a source query after it has
// been added never changes the already-embedded copy.
// Wire form: {"bool": {"must": [...], "should": [...], ...}}.
type BoolQuery struct{ base }

// ClauseCounts reports how many clauses occupy each slot of a bool query.
type ClauseCounts struct {
	Must    int `json:"must"`
	Should  int `json:"should"`
	Filter  int `json:"filter"`
	MustNot int `json:"mustNot"`
}

// Bool creates an empty bool query.
func Bool() BoolQuery {
	body := Body{"bool": Body{}}
	return BoolQuery{newBase("bool", body, record("Bool"))}
}

func (q BoolQuery) appendClauses(slot, method string, qs []Query) BoolQuery {
	n := q.nested()
	list, _ := n[slot].([]any)
	list = append(list, snapshots(qs)...)
	n[slot] = list
	return BoolQuery{q.withNested(n, record(method, queryArgs(qs)...))}
}

// Must adds clauses that must match and contribute to the score.
func (q BoolQuery) Must(qs ...Query) BoolQuery {
	return q.appendClauses(clauseMust, "Must", qs)
}

// Should adds clauses that should match.
func (q BoolQuery) Should(qs ...Query) BoolQuery {
	return q.appendClauses(clauseShould, "Should", qs)
}

// Filter adds clauses that must match without affecting the score.
func (q BoolQuery) Filter(qs ...Query) BoolQuery {
	return q.appendClauses(clauseFilter, "Filter", qs)
}

// MustNot adds clauses that must not match.
func (q BoolQuery) MustNot(qs ...Query) BoolQuery {
	return q.appendClauses(clauseMustNot, "MustNot", qs)
}

// MinimumShouldMatch sets the number (or percentage) of should clauses that
// must match.
func (q BoolQuery) MinimumShouldMatch(m any) BoolQuery {
	return BoolQuery{q.setNested("minimum_should_match", m, record("MinimumShouldMatch", m))}
}

// Boost sets the relevance boost.
func (q BoolQuery) Boost(boost float64) BoolQuery {
	return BoolQuery{q.setNested("boost", boost, record("Boost", boost))}
}

// GetClauseCounts returns the number of clauses in each slot.
func (q BoolQuery) GetClauseCounts() ClauseCounts {
	n := q.nested()
	count := func(slot string) int {
		list, _ := n[slot].([]any)
		return len(list)
	}
	return ClauseCounts{
		Must:    count(clauseMust),
		Should:  count(clauseShould),
		Filter:  count(clauseFilter),
		MustNot: count(clauseMustNot),
	}
}

// IsEmpty reports whether all four clause slots are absent or empty.
func (q BoolQuery) IsEmpty() bool {
	c := q.GetClauseCounts()
	return c.Must == 0 && c.Should == 0 && c.Filter == 0 && c.MustNot == 0
}
