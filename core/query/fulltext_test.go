package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_ShorthandPromotion(t *testing.T) {
	q := Match("title", "quick brown fox")
	assert.Equal(t, Body{"match": Body{"title": "quick brown fox"}}, q.Map())
	assert.Equal(t, "quick brown fox", q.Query())

	promoted := q.Operator("and")
	expected := Body{"match": Body{"title": Body{
		"query":    "quick brown fox",
		"operator": "and",
	}}}
	assert.Equal(t, expected, promoted.Map())
	assert.Equal(t, "quick brown fox", promoted.Query())

	// Stacked options accumulate.
	stacked := promoted.Fuzziness("AUTO").MinimumShouldMatch("75%")
	got := stacked.Map()["match"].(Body)["title"].(Body)
	assert.Equal(t, "and", got["operator"])
	assert.Equal(t, "AUTO", got["fuzziness"])
	assert.Equal(t, "75%", got["minimum_should_match"])
}

func TestMatchPhrase(t *testing.T) {
	q := MatchPhrase("title", "brown fox").Slop(2)
	expected := Body{"match_phrase": Body{"title": Body{
		"query": "brown fox",
		"slop":  2,
	}}}
	assert.Equal(t, expected, q.Map())
}

func TestMatchPhrasePrefix(t *testing.T) {
	q := MatchPhrasePrefix("title", "quick bro").MaxExpansions(10)
	expected := Body{"match_phrase_prefix": Body{"title": Body{
		"query":          "quick bro",
		"max_expansions": 10,
	}}}
	assert.Equal(t, expected, q.Map())
}

func TestMultiMatch(t *testing.T) {
	q := MultiMatch("search text", "title", "body")
	expected := Body{"multi_match": Body{
		"query":  "search text",
		"fields": []any{"title", "body"},
	}}
	assert.Equal(t, expected, q.Map())

	tuned := q.Type("best_fields").TieBreaker(0.3)
	got := tuned.Map()["multi_match"].(Body)
	assert.Equal(t, "best_fields", got["type"])
	assert.Equal(t, 0.3, got["tie_breaker"])
	assert.Equal(t, []any{"title", "body"}, tuned.Fields())
}

func TestQueryString(t *testing.T) {
	q := QueryString("(new york) AND city").DefaultField("content").AllowLeadingWildcard(false)
	expected := Body{"query_string": Body{
		"query":                  "(new york) AND city",
		"default_field":          "content",
		"allow_leading_wildcard": false,
	}}
	assert.Equal(t, expected, q.Map())
}

func TestSimpleQueryString(t *testing.T) {
	q := SimpleQueryString("\"fried eggs\" +(eggplant | potato)").
		Fields("title", "body").
		DefaultOperator("AND")
	expected := Body{"simple_query_string": Body{
		"query":            "\"fried eggs\" +(eggplant | potato)",
		"fields":           []any{"title", "body"},
		"default_operator": "AND",
	}}
	assert.Equal(t, expected, q.Map())
}
