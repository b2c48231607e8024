package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerm_Shorthand(t *testing.T) {
	q := Term("status", "active")
	assert.Equal(t, Body{"term": Body{"status": "active"}}, q.Map())
	assert.Equal(t, "status", q.Field())
	assert.Equal(t, "active", q.Value())
}

func TestTerm_ShorthandPromotion(t *testing.T) {
	q := Term("status", "active").Boost(2.0)
	assert.Equal(t, Body{"term": Body{"status": Body{"value": "active", "boost": 2.0}}}, q.Map())
	// The accessor tolerates the expanded form.
	assert.Equal(t, "active", q.Value())

	// A second mutator preserves the first mutator's setting.
	q2 := q.CaseInsensitive(true)
	expected := Body{"term": Body{"status": Body{
		"value":            "active",
		"boost":            2.0,
		"case_insensitive": true,
	}}}
	assert.Equal(t, expected, q2.Map())
}

func TestTerms(t *testing.T) {
	q := Terms("tags", "go", "search")
	assert.Equal(t, Body{"terms": Body{"tags": []any{"go", "search"}}}, q.Map())
	assert.Equal(t, "tags", q.Field())

	extended := q.Add("dsl")
	assert.Equal(t, []any{"go", "search", "dsl"}, extended.Values())
	assert.Equal(t, []any{"go", "search"}, q.Values())

	boosted := extended.Boost(1.2)
	assert.Equal(t, "tags", boosted.Field())
	assert.Equal(t, 1.2, boosted.Map()["terms"].(Body)["boost"])
}

func TestExists(t *testing.T) {
	q := Exists("email")
	assert.Equal(t, Body{"exists": Body{"field": "email"}}, q.Map())
	assert.Equal(t, "email", q.Field())

	boosted := q.Boost(3.0)
	assert.Equal(t, Body{"exists": Body{"field": "email", "boost": 3.0}}, boosted.Map())
}

func TestPrefixWildcardRegexp(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		expected Body
	}{
		{
			name:     "prefix shorthand",
			query:    Prefix("name", "jo"),
			expected: Body{"prefix": Body{"name": "jo"}},
		},
		{
			name:  "prefix promoted",
			query: Prefix("name", "jo").Rewrite("constant_score"),
			expected: Body{"prefix": Body{"name": Body{
				"value":   "jo",
				"rewrite": "constant_score",
			}}},
		},
		{
			name:     "wildcard shorthand",
			query:    Wildcard("path", "/var/*"),
			expected: Body{"wildcard": Body{"path": "/var/*"}},
		},
		{
			name:  "wildcard promoted",
			query: Wildcard("path", "/var/*").Boost(0.5).CaseInsensitive(true),
			expected: Body{"wildcard": Body{"path": Body{
				"value":            "/var/*",
				"boost":            0.5,
				"case_insensitive": true,
			}}},
		},
		{
			name:  "regexp with flags",
			query: Regexp("code", "err-[0-9]+").Flags("ALL"),
			expected: Body{"regexp": Body{"code": Body{
				"value": "err-[0-9]+",
				"flags": "ALL",
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.query.Map())
		})
	}
}

func TestFuzzy(t *testing.T) {
	q := Fuzzy("name", "jon").Fuzziness("AUTO").PrefixLength(1).Transpositions(true)
	expected := Body{"fuzzy": Body{"name": Body{
		"value":          "jon",
		"fuzziness":      "AUTO",
		"prefix_length":  1,
		"transpositions": true,
	}}}
	assert.Equal(t, expected, q.Map())
	assert.Equal(t, "jon", q.Value())
}

func TestIDs(t *testing.T) {
	q := IDs("1", "2")
	assert.Equal(t, Body{"ids": Body{"values": []any{"1", "2"}}}, q.Map())

	extended := q.Add("3")
	require.Len(t, extended.Values(), 3)
	assert.Len(t, q.Values(), 2)
}
