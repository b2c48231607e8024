package query

import (
	"errors"
	"fmt"
)

// ErrRatioOutOfRange is returned when a [0,1]-bounded ratio parameter
// (boosting negative_boost, dis_max tie_breaker) is set outside range.
// These are the only validation failures the builder raises; everything
// else is accepted and deferred to the receiving engine.
var ErrRatioOutOfRange = errors.New("ratio must lie in [0,1]")

func checkRatio(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s %v: %w", name, v, ErrRatioOutOfRange)
	}
	return nil
}

// BoostingQuery promotes documents matching the positive query and demotes
// those matching the negative one.
// Wire form: {"boosting": {"positive": ..., "negative": ..., "negative_boost": r}}.
type BoostingQuery struct{ base }

// Boosting creates a boosting query. negativeBoost must lie in [0,1]; a
// value outside range fails fast with ErrRatioOutOfRange and no instance
// is returned.
func Boosting(positive, negative Query, negativeBoost float64) (BoostingQuery, error) {
	if err := checkRatio("negative_boost", negativeBoost); err != nil {
		return BoostingQuery{}, err
	}
	body := Body{"boosting": Body{
		"positive":       positive.Map(),
		"negative":       negative.Map(),
		"negative_boost": negativeBoost,
	}}
	return BoostingQuery{newBase("boosting", body, record("Boosting", positive, negative, negativeBoost))}, nil
}

// NegativeBoost replaces the demotion ratio, subject to the same [0,1]
// check as the constructor.
func (q BoostingQuery) NegativeBoost(r float64) (BoostingQuery, error) {
	if err := checkRatio("negative_boost", r); err != nil {
		return BoostingQuery{}, err
	}
	return BoostingQuery{q.setNested("negative_boost", r, record("NegativeBoost", r))}, nil
}

// ConstantScoreQuery wraps a filter and scores every match with the same
// constant. Wire form: {"constant_score": {"filter": ...}}.
type ConstantScoreQuery struct{ base }

// ConstantScore creates a constant_score query around a filter.
func ConstantScore(filter Query) ConstantScoreQuery {
	body := Body{"constant_score": Body{"filter": filter.Map()}}
	return ConstantScoreQuery{newBase("constant_score", body, record("ConstantScore", filter))}
}

// Boost sets the constant score applied to every match.
func (q ConstantScoreQuery) Boost(boost float64) ConstantScoreQuery {
	return ConstantScoreQuery{q.setNested("boost", boost, record("Boost", boost))}
}

// DisMaxQuery scores by the best matching sub-query rather than the sum.
// Wire form: {"dis_max": {"queries": [...]}}.
type DisMaxQuery struct{ base }

// DisMax creates a dis_max query over the given sub-queries.
func DisMax(qs ...Query) DisMaxQuery {
	body := Body{"dis_max": Body{"queries": snapshots(qs)}}
	return DisMaxQuery{newBase("dis_max", body, record("DisMax", queryArgs(qs)...))}
}

// Add appends sub-queries.
func (q DisMaxQuery) Add(qs ...Query) DisMaxQuery {
	n := q.nested()
	list, _ := n["queries"].([]any)
	n["queries"] = append(list, snapshots(qs)...)
	return DisMaxQuery{q.withNested(n, record("Add", queryArgs(qs)...))}
}

// TieBreaker sets the score contribution of non-best sub-queries. The ratio
// must lie in [0,1]; a value outside range fails fast with
// ErrRatioOutOfRange.
func (q DisMaxQuery) TieBreaker(t float64) (DisMaxQuery, error) {
	if err := checkRatio("tie_breaker", t); err != nil {
		return DisMaxQuery{}, err
	}
	return DisMaxQuery{q.setNested("tie_breaker", t, record("TieBreaker", t))}, nil
}

// Boost sets the relevance boost.
func (q DisMaxQuery) Boost(boost float64) DisMaxQuery {
	return DisMaxQuery{q.setNested("boost", boost, record("Boost", boost))}
}

// FunctionScoreQuery rescores the matches of a wrapped query with scoring
// functions. Wire form: {"function_score": {"query": ..., "functions": [...]}}.
type FunctionScoreQuery struct{ base }

// FunctionScore creates a function_score query around a base query.
func FunctionScore(q Query) FunctionScoreQuery {
	body := Body{"function_score": Body{"query": q.Map()}}
	return FunctionScoreQuery{newBase("function_score", body, record("FunctionScore", q))}
}

// AddFunction appends a scoring function document (field_value_factor,
// random_score, script_score, decay functions, ...). The function body is
// embedded by value.
func (q FunctionScoreQuery) AddFunction(fn Body) FunctionScoreQuery {
	n := q.nested()
	list, _ := n["functions"].([]any)
	n["functions"] = append(list, fn.Clone())
	return FunctionScoreQuery{q.withNested(n, record("AddFunction", fn))}
}

// BoostMode sets how the computed score combines with the query score
// (multiply, replace, sum, avg, max, min).
func (q FunctionScoreQuery) BoostMode(mode string) FunctionScoreQuery {
	return FunctionScoreQuery{q.setNested("boost_mode", mode, record("BoostMode", mode))}
}

// ScoreMode sets how scores of multiple functions combine.
func (q FunctionScoreQuery) ScoreMode(mode string) FunctionScoreQuery {
	return FunctionScoreQuery{q.setNested("score_mode", mode, record("ScoreMode", mode))}
}

// MaxBoost caps the score produced by the functions.
func (q FunctionScoreQuery) MaxBoost(m float64) FunctionScoreQuery {
	return FunctionScoreQuery{q.setNested("max_boost", m, record("MaxBoost", m))}
}

// MinScore excludes documents scoring below the threshold.
func (q FunctionScoreQuery) MinScore(m float64) FunctionScoreQuery {
	return FunctionScoreQuery{q.setNested("min_score", m, record("MinScore", m))}
}

// Boost sets the relevance boost.
func (q FunctionScoreQuery) Boost(boost float64) FunctionScoreQuery {
	return FunctionScoreQuery{q.setNested("boost", boost, record("Boost", boost))}
}

// ScriptScoreQuery scores the matches of a wrapped query with a script.
// Wire form: {"script_score": {"query": ..., "script": {"source": ...}}}.
type ScriptScoreQuery struct{ base }

// ScriptScore creates a script_score query.
func ScriptScore(q Query, source string) ScriptScoreQuery {
	body := Body{"script_score": Body{
		"query":  q.Map(),
		"script": Body{"source": source},
	}}
	return ScriptScoreQuery{newBase("script_score", body, record("ScriptScore", q, source))}
}

// Params sets the script parameters.
func (q ScriptScoreQuery) Params(params Body) ScriptScoreQuery {
	n := q.nested()
	script, _ := asBody(n["script"])
	if script == nil {
		script = Body{}
	}
	script["params"] = params.Clone()
	n["script"] = script
	return ScriptScoreQuery{q.withNested(n, record("Params", params))}
}

// MinScore excludes documents scoring below the threshold.
func (q ScriptScoreQuery) MinScore(m float64) ScriptScoreQuery {
	return ScriptScoreQuery{q.setNested("min_score", m, record("MinScore", m))}
}

// Boost sets the relevance boost.
func (q ScriptScoreQuery) Boost(boost float64) ScriptScoreQuery {
	return ScriptScoreQuery{q.setNested("boost", boost, record("Boost", boost))}
}
