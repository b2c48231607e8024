package query

import (
	"encoding/json"
)

// Query is the contract every variant satisfies. Instances are plain
// immutable values: they may be held, reused and shared across goroutines
// without synchronization, because no operation can alter an existing
// instance.
type Query interface {
	// Kind returns the variant's top-level body key (e.g. "term", "bool").
	Kind() string
	// ID returns the instance's unique identifier. Every clone produced by
	// a mutator carries a fresh ID.
	ID() string
	// Map returns a deep clone of the body as a plain transmittable value.
	// The internal body is never handed out.
	Map() Body
	// Operations returns the accumulated operation log.
	Operations() []OperationRecord
	// Created returns the instance's creation timestamp in Unix milliseconds.
	Created() int64
	// Source regenerates a best-effort builder-call string equivalent to how
	// the instance was built. Debug aid only; not guaranteed re-executable.
	Source() string
	// Envelope returns the serialized-with-metadata debugging envelope.
	Envelope() Envelope
	// Equals reports structural equality of serialized bodies. Metadata is
	// excluded: two independently built identical queries are equal while
	// carrying distinct IDs.
	Equals(other Query) bool

	json.Marshaler
}

// Envelope is the serialized-with-metadata form of a query, a debugging and
// persistence convenience.
type Envelope struct {
	Type     string   `json:"type"`
	Body     Body     `json:"body"`
	Metadata Metadata `json:"metadata"`
}

// base carries the frozen (body, metadata) pair shared by every variant.
// The body is deep-cloned on the way in and on the way out, so no caller
// ever holds a reference into internal state.
type base struct {
	kind string
	body Body
	meta Metadata
}

// newBase constructs a frozen instance for a variant, recording the
// constructor invocation as the first operation.
func newBase(kind string, body Body, op OperationRecord) base {
	meta := newMetadata()
	meta.Operations = []OperationRecord{op}
	return base{
		kind: kind,
		body: body.Clone(),
		meta: meta,
	}
}

// cloneWith is the universal mutator primitive: it produces a new instance
// carrying newBody, with the operation log extended by op when one is given,
// else copied verbatim. The receiver is never altered.
func (b base) cloneWith(newBody Body, op *OperationRecord) base {
	meta := newMetadata()
	meta.Provenance = b.meta.Provenance
	n := len(b.meta.Operations)
	if op != nil {
		ops := make([]OperationRecord, n, n+1)
		copy(ops, b.meta.Operations)
		meta.Operations = append(ops, *op)
	} else {
		ops := make([]OperationRecord, n)
		copy(ops, b.meta.Operations)
		meta.Operations = ops
	}
	return base{
		kind: b.kind,
		body: newBody.Clone(),
		meta: meta,
	}
}

func (b base) Kind() string { return b.kind }

func (b base) ID() string { return b.meta.ID }

func (b base) Created() int64 { return b.meta.Created }

func (b base) Map() Body { return b.body.Clone() }

func (b base) Operations() []OperationRecord {
	ops := make([]OperationRecord, len(b.meta.Operations))
	copy(ops, b.meta.Operations)
	return ops
}

func (b base) Envelope() Envelope {
	meta := b.meta
	meta.Operations = b.Operations()
	return Envelope{
		Type:     b.kind,
		Body:     b.body.Clone(),
		Metadata: meta,
	}
}

// MarshalJSON serializes the wire-format body. The emitted bytes are
// detached from internal state.
func (b base) MarshalJSON() ([]byte, error) {
	return canonicalJSON(b.body)
}

func (b base) Equals(other Query) bool {
	if other == nil {
		return false
	}
	return bodiesEqual(b.body, other.Map())
}

func (b base) Source() string {
	return renderSource(b.meta.Operations)
}

// nested returns a deep copy of the value under the variant's top-level key,
// ready to be merged into and re-wrapped.
func (b base) nested() Body {
	if n, ok := asBody(b.body[b.kind]); ok {
		return n.Clone()
	}
	return Body{}
}

// withNested wraps an updated nested value back under the variant key and
// clones, appending the operation record.
func (b base) withNested(n Body, op OperationRecord) base {
	return b.cloneWith(Body{b.kind: n}, &op)
}

// setNested sets one key of the nested value. Used by variants whose options
// live directly under the variant key (terms, ids, multi_match, bool, ...).
func (b base) setNested(key string, v any, op OperationRecord) base {
	n := b.nested()
	n[key] = cloneValue(v)
	return b.withNested(n, op)
}

// expandField returns the per-field parameter object of a single-field
// variant, promoting the scalar shorthand form ({field: "x"}) to the
// explicit object form ({field: {value: "x"}}) the first time an option is
// added. valueKey names the key the shorthand scalar moves under ("value"
// for term-level variants, "query" for full-text variants).
func expandField(n Body, field, valueKey string) Body {
	cur, ok := n[field]
	if !ok {
		return Body{}
	}
	if m, ok := asBody(cur); ok {
		return m.Clone()
	}
	return Body{valueKey: cloneValue(cur)}
}

// mergeFieldOption merges options into the per-field object of a
// single-field variant, preserving previously set options.
func (b base) mergeFieldOption(valueKey string, opts Body, op OperationRecord) base {
	n := b.nested()
	field := singleKey(n)
	params := expandField(n, field, valueKey)
	for k, v := range opts {
		params[k] = cloneValue(v)
	}
	n[field] = params
	return b.withNested(n, op)
}

// snapshots serializes sub-queries for embedding. Embedding is by value:
// mutating the source query afterwards never affects the embedded copy.
func snapshots(qs []Query) []any {
	out := make([]any, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.Map())
	}
	return out
}

func queryArgs(qs []Query) []any {
	out := make([]any, 0, len(qs))
	for _, q := range qs {
		out = append(out, q)
	}
	return out
}

// ApplyIf returns fn(q) when cond is true, else q itself. The no-op path
// preserves identity, not merely structural equality: the returned value
// carries the receiver's ID.
func ApplyIf[Q Query](q Q, cond bool, fn func(Q) Q) Q {
	if cond {
		return fn(q)
	}
	return q
}

// ApplyUnless is the complement of ApplyIf.
func ApplyUnless[Q Query](q Q, cond bool, fn func(Q) Q) Q {
	return ApplyIf(q, !cond, fn)
}
