package bleveconv

import (
	"testing"

	bquery "github.com/blevesearch/bleve/v2/search/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asaidimu/go-esquery/core/query"
)

func TestTranslate_Term(t *testing.T) {
	tr := New(nil)

	q, err := tr.Translate(query.Term("status", "active"))
	require.NoError(t, err)

	tq, ok := q.(*bquery.TermQuery)
	require.True(t, ok)
	assert.Equal(t, "active", tq.Term)
	assert.Equal(t, "status", tq.FieldVal)
}

func TestTranslate_TermWithBoost(t *testing.T) {
	tr := New(nil)

	q, err := tr.Translate(query.Term("status", "active").Boost(2.0))
	require.NoError(t, err)

	tq, ok := q.(*bquery.TermQuery)
	require.True(t, ok)
	assert.Equal(t, "active", tq.Term)
	require.NotNil(t, tq.BoostVal)
	assert.Equal(t, 2.0, tq.BoostVal.Value())
}

func TestTranslate_Match(t *testing.T) {
	tr := New(nil)

	q, err := tr.Translate(query.Match("title", "quick fox"))
	require.NoError(t, err)

	mq, ok := q.(*bquery.MatchQuery)
	require.True(t, ok)
	assert.Equal(t, "quick fox", mq.Match)
	assert.Equal(t, "title", mq.FieldVal)
}

func TestTranslate_NumericRange(t *testing.T) {
	tr := New(nil)

	q, err := tr.Translate(query.Range("age").Gte(18).Lt(65))
	require.NoError(t, err)

	rq, ok := q.(*bquery.NumericRangeQuery)
	require.True(t, ok)
	assert.Equal(t, "age", rq.FieldVal)
	require.NotNil(t, rq.Min)
	assert.Equal(t, 18.0, *rq.Min)
	require.NotNil(t, rq.Max)
	assert.Equal(t, 65.0, *rq.Max)
	require.NotNil(t, rq.InclusiveMin)
	assert.True(t, *rq.InclusiveMin)
	require.NotNil(t, rq.InclusiveMax)
	assert.False(t, *rq.InclusiveMax)
}

func TestTranslate_RangeWithoutNumericBounds(t *testing.T) {
	tr := New(nil)

	_, err := tr.Translate(query.Range("age"))
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestTranslate_Bool(t *testing.T) {
	tr := New(nil)

	q, err := tr.Translate(query.Bool().
		Must(query.Term("a", "1")).
		Filter(query.Term("b", "2")).
		Should(query.Match("c", "x")).
		MustNot(query.Term("d", "3")))
	require.NoError(t, err)

	bq, ok := q.(*bquery.BooleanQuery)
	require.True(t, ok)
	// Filter clauses fold into must.
	must, ok := bq.Must.(*bquery.ConjunctionQuery)
	require.True(t, ok)
	assert.Len(t, must.Conjuncts, 2)
}

func TestTranslate_IDsAndSpecialized(t *testing.T) {
	tr := New(nil)

	q, err := tr.Translate(query.IDs("1", "2"))
	require.NoError(t, err)
	dq, ok := q.(*bquery.DocIDQuery)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, dq.IDs)

	q, err = tr.Translate(query.MatchAll())
	require.NoError(t, err)
	_, ok = q.(*bquery.MatchAllQuery)
	assert.True(t, ok)

	q, err = tr.Translate(query.MatchNone())
	require.NoError(t, err)
	_, ok = q.(*bquery.MatchNoneQuery)
	assert.True(t, ok)
}

func TestTranslate_UnsupportedKind(t *testing.T) {
	tr := New(nil)

	wrapped, err := query.Boosting(query.Term("a", "1"), query.Term("b", "2"), 0.5)
	require.NoError(t, err)

	_, err = tr.Translate(wrapped)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}
