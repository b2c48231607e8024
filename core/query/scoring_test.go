package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoosting_RatioValidation(t *testing.T) {
	positive := Term("status", "active")
	negative := Term("status", "archived")

	_, err := Boosting(positive, negative, 1.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRatioOutOfRange)

	_, err = Boosting(positive, negative, -0.1)
	assert.ErrorIs(t, err, ErrRatioOutOfRange)

	q, err := Boosting(positive, negative, 0.5)
	require.NoError(t, err)
	expected := Body{"boosting": Body{
		"positive":       Body{"term": Body{"status": "active"}},
		"negative":       Body{"term": Body{"status": "archived"}},
		"negative_boost": 0.5,
	}}
	assert.Equal(t, expected, q.Map())

	_, err = q.NegativeBoost(2.0)
	assert.ErrorIs(t, err, ErrRatioOutOfRange)

	adjusted, err := q.NegativeBoost(0.2)
	require.NoError(t, err)
	assert.Equal(t, 0.2, adjusted.Map()["boosting"].(Body)["negative_boost"])
	// The original is untouched.
	assert.Equal(t, 0.5, q.Map()["boosting"].(Body)["negative_boost"])
}

func TestDisMax_TieBreakerValidation(t *testing.T) {
	q := DisMax(Term("title", "go"), Term("body", "go"))

	_, err := q.TieBreaker(1.2)
	assert.ErrorIs(t, err, ErrRatioOutOfRange)

	tuned, err := q.TieBreaker(0.7)
	require.NoError(t, err)
	got := tuned.Map()["dis_max"].(Body)
	assert.Equal(t, 0.7, got["tie_breaker"])
	require.Len(t, got["queries"], 2)

	extended := tuned.Add(Term("tags", "go"))
	assert.Len(t, extended.Map()["dis_max"].(Body)["queries"], 3)
	assert.Len(t, tuned.Map()["dis_max"].(Body)["queries"], 2)
}

func TestConstantScore(t *testing.T) {
	q := ConstantScore(Term("status", "active")).Boost(1.2)
	expected := Body{"constant_score": Body{
		"filter": Body{"term": Body{"status": "active"}},
		"boost":  1.2,
	}}
	assert.Equal(t, expected, q.Map())
}

func TestFunctionScore(t *testing.T) {
	q := FunctionScore(Match("title", "go")).
		AddFunction(Body{"field_value_factor": Body{"field": "votes", "factor": 1.2}}).
		AddFunction(Body{"random_score": Body{"seed": 42}}).
		BoostMode("multiply").
		MaxBoost(10.0)

	got := q.Map()["function_score"].(Body)
	assert.Equal(t, Body{"match": Body{"title": "go"}}, got["query"])
	require.Len(t, got["functions"], 2)
	assert.Equal(t, "multiply", got["boost_mode"])
	assert.Equal(t, 10.0, got["max_boost"])
}

func TestFunctionScore_FunctionEmbeddedByValue(t *testing.T) {
	fn := Body{"field_value_factor": Body{"field": "votes"}}
	q := FunctionScore(MatchAll()).AddFunction(fn)

	fn["field_value_factor"].(Body)["field"] = "mutated"

	functions := q.Map()["function_score"].(Body)["functions"].([]any)
	assert.Equal(t, Body{"field_value_factor": Body{"field": "votes"}}, functions[0])
}

func TestScriptScore(t *testing.T) {
	q := ScriptScore(Match("title", "go"), "doc['votes'].value / 10").
		Params(Body{"divisor": 10}).
		MinScore(0.5)

	got := q.Map()["script_score"].(Body)
	script := got["script"].(Body)
	assert.Equal(t, "doc['votes'].value / 10", script["source"])
	assert.Equal(t, Body{"divisor": 10}, script["params"])
	assert.Equal(t, 0.5, got["min_score"])
}

func TestScoringSnapshotsDecoupled(t *testing.T) {
	inner := Term("status", "active")
	wrapped := ConstantScore(inner)

	_ = inner.Boost(9.0)

	assert.Equal(t,
		Body{"term": Body{"status": "active"}},
		wrapped.Map()["constant_score"].(Body)["filter"])
}
