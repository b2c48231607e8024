package query

// NestedQuery searches nested-object fields by wrapping a query scoped to a
// path. Wire form: {"nested": {"path": ..., "query": ...}}. The wrapped
// query is embedded as a serialized snapshot.
type NestedQuery struct{ base }

// Nested creates a nested query for the given path.
func Nested(path string, q Query) NestedQuery {
	body := Body{"nested": Body{
		"path":  path,
		"query": q.Map(),
	}}
	return NestedQuery{newBase("nested", body, record("Nested", path, q))}
}

// Path returns the nested-object path.
func (q NestedQuery) Path() string {
	p, _ := q.nested()["path"].(string)
	return p
}

// ScoreMode sets how child matches contribute to the parent score
// (avg, max, min, sum, none).
func (q NestedQuery) ScoreMode(mode string) NestedQuery {
	return NestedQuery{q.setNested("score_mode", mode, record("ScoreMode", mode))}
}

// IgnoreUnmapped tolerates an unmapped path instead of erroring.
func (q NestedQuery) IgnoreUnmapped(on bool) NestedQuery {
	return NestedQuery{q.setNested("ignore_unmapped", on, record("IgnoreUnmapped", on))}
}

// Boost sets the relevance boost.
func (q NestedQuery) Boost(boost float64) NestedQuery {
	return NestedQuery{q.setNested("boost", boost, record("Boost", boost))}
}
