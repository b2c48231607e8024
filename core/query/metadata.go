package query

import (
	"time"

	"github.com/google/uuid"
)

// QueryRef is the recorded form of a query passed as a mutator argument. The
// body is a snapshot taken at call time, never a live reference, so the
// operation log can never re-expose mutable state.
type QueryRef struct {
	Kind     string `json:"kind"`
	ID       string `json:"id"`
	Snapshot Body   `json:"snapshot"`
}

// Argument is one recorded mutator argument: either a plain value or a
// snapshot reference to a query that was passed in.
type Argument struct {
	Value any       `json:"value,omitempty"`
	Query *QueryRef `json:"query,omitempty"`
}

// OperationRecord is one logged method invocation. Records exist solely so
// an equivalent builder-call string can be regenerated from a built query;
// they are never consulted for equality or serialization.
type OperationRecord struct {
	ID        string     `json:"id"`
	Method    string     `json:"method"`
	Args      []Argument `json:"args,omitempty"`
	Timestamp int64      `json:"timestamp"`
}

// Metadata carries the per-instance identity and the accumulated operation
// log. It is immutable per instance: a clone gets a fresh ID and creation
// timestamp and the parent's operations plus at most one appended record.
type Metadata struct {
	ID         string            `json:"id"`
	Created    int64             `json:"created"`
	Provenance string            `json:"provenance,omitempty"`
	Operations []OperationRecord `json:"operations,omitempty"`
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func newMetadata() Metadata {
	return Metadata{
		ID:      uuid.NewString(),
		Created: nowMillis(),
	}
}

// record builds an operation record for a method invocation, snapshotting
// any Query arguments by value.
func record(method string, args ...any) OperationRecord {
	return OperationRecord{
		ID:        uuid.NewString(),
		Method:    method,
		Args:      wrapArgs(args),
		Timestamp: nowMillis(),
	}
}

func wrapArgs(values []any) []Argument {
	if len(values) == 0 {
		return nil
	}
	out := make([]Argument, 0, len(values))
	for _, v := range values {
		if q, ok := v.(Query); ok {
			out = append(out, Argument{Query: &QueryRef{
				Kind:     "Query",
				ID:       q.ID(),
				Snapshot: q.Map(),
			}})
			continue
		}
		out = append(out, Argument{Value: cloneValue(v)})
	}
	return out
}
