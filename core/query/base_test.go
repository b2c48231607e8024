package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutatorReturnsNewIdentity(t *testing.T) {
	q := Term("status", "active")
	boosted := q.Boost(2.0)

	assert.NotEqual(t, q.ID(), boosted.ID())
	// The receiver is structurally unchanged after the call.
	assert.Equal(t, Body{"term": Body{"status": "active"}}, q.Map())
	assert.Equal(t, Body{"term": Body{"status": Body{"value": "active", "boost": 2.0}}}, boosted.Map())
}

func TestApplyIf_IdentityPreservation(t *testing.T) {
	q := Term("status", "active")
	boost := func(q TermQuery) TermQuery { return q.Boost(2.0) }

	same := ApplyIf(q, false, boost)
	assert.Equal(t, q.ID(), same.ID(), "false condition must return the receiver itself")

	applied := ApplyIf(q, true, boost)
	assert.NotEqual(t, q.ID(), applied.ID())
	assert.Equal(t, 2.0, applied.Map()["term"].(Body)["status"].(Body)["boost"])
}

func TestApplyUnless(t *testing.T) {
	q := Range("age").Gte(18)

	same := ApplyUnless(q, true, func(q RangeQuery) RangeQuery { return q.Lte(65) })
	assert.Equal(t, q.ID(), same.ID())

	applied := ApplyUnless(q, false, func(q RangeQuery) RangeQuery { return q.Lte(65) })
	assert.True(t, applied.HasBounds())
	assert.NotEqual(t, q.ID(), applied.ID())
}

func TestStructuralEquality_DistinctIdentity(t *testing.T) {
	a := Term("status", "active").Boost(1.5)
	b := Term("status", "active").Boost(1.5)

	assert.True(t, a.Equals(b))
	assert.True(t, Equals(a, b))
	assert.NotEqual(t, a.ID(), b.ID())

	c := Term("status", "inactive")
	assert.False(t, a.Equals(c))
}

func TestMapReturnsDetachedClone(t *testing.T) {
	q := Term("status", "active")
	m := q.Map()
	m["term"].(Body)["status"] = "tampered"

	assert.Equal(t, Body{"term": Body{"status": "active"}}, q.Map())
}

func TestConstructionClonesInput(t *testing.T) {
	params := Body{"tags": []any{"a", "b"}}
	q := Raw(Body{"custom": params})

	params["tags"].([]any)[0] = "mutated"
	params["extra"] = true

	got := q.Map()["custom"].(Body)
	assert.Equal(t, []any{"a", "b"}, got["tags"])
	assert.NotContains(t, got, "extra")
}

func TestSerializationIdempotence(t *testing.T) {
	q := Bool().Must(Term("a", 1)).Should(Match("b", "x"))

	first, err := json.Marshal(q)
	require.NoError(t, err)
	second, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	restored := FromEnvelope(q.Envelope())
	assert.True(t, restored.Equals(q))
}

func TestEnvelopeRoundTrip(t *testing.T) {
	q := Range("age").Gte(18).Lte(65)
	env := q.Envelope()

	assert.Equal(t, "range", env.Type)
	assert.Equal(t, q.ID(), env.Metadata.ID)
	assert.Len(t, env.Metadata.Operations, 3)

	data, err := json.Marshal(env)
	require.NoError(t, err)
	var decoded Envelope
	require.NoError(t, json.Unmarshal(data, &decoded))

	restored := FromEnvelope(decoded)
	assert.Equal(t, "range", restored.Kind())
	assert.Equal(t, q.ID(), restored.ID())
	assert.True(t, restored.Equals(q))
}

func TestOperationLogGrowsPerMutation(t *testing.T) {
	q := Term("status", "active")
	assert.Len(t, q.Operations(), 1)

	boosted := q.Boost(2.0)
	assert.Len(t, boosted.Operations(), 2)
	// Parent log untouched.
	assert.Len(t, q.Operations(), 1)

	ops := boosted.Operations()
	assert.Equal(t, "Term", ops[0].Method)
	assert.Equal(t, "Boost", ops[1].Method)
	assert.NotEmpty(t, ops[0].ID)
	assert.NotEqual(t, ops[0].ID, ops[1].ID)
}

func TestOperationRecordSnapshotsQueryArguments(t *testing.T) {
	sub := Term("a", 1)
	compound := Bool().Must(sub)

	ops := compound.Operations()
	require.Len(t, ops, 2)
	require.Len(t, ops[1].Args, 1)

	ref := ops[1].Args[0].Query
	require.NotNil(t, ref)
	assert.Equal(t, "Query", ref.Kind)
	assert.Equal(t, sub.ID(), ref.ID)
	assert.Equal(t, Body{"term": Body{"a": 1}}, ref.Snapshot)

	// The snapshot is a value copy, not a live reference.
	ref.Snapshot["term"].(Body)["a"] = 99
	assert.Equal(t, Body{"term": Body{"a": 1}}, sub.Map())
}

func TestRawQuery(t *testing.T) {
	q := Raw(Body{"term": Body{"status": "active"}})
	assert.Equal(t, "term", q.Kind())
	assert.True(t, q.Equals(Term("status", "active")))

	multi := Raw(Body{"a": 1, "b": 2})
	assert.Equal(t, "raw", multi.Kind())

	replaced := q.With(Body{"term": Body{"status": "archived"}})
	assert.NotEqual(t, q.ID(), replaced.ID())
	assert.Len(t, replaced.Operations(), len(q.Operations()))
	assert.Equal(t, Body{"term": Body{"status": "active"}}, q.Map())
}
