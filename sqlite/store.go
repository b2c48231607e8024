// Package sqlite persists serialized-with-metadata query envelopes in a
// SQLite database. It is a debugging and reuse convenience: named queries
// survive process restarts and can be restored into live instances. The
// store emits typed events around every operation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/asaidimu/go-events"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/asaidimu/go-esquery/core/query"
	"github.com/asaidimu/go-esquery/utils"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS saved_queries (
	name     TEXT PRIMARY KEY,
	query_id TEXT NOT NULL,
	type     TEXT NOT NULL,
	body     TEXT NOT NULL,
	metadata TEXT NOT NULL,
	created  INTEGER NOT NULL
);
`

// SavedQuery describes one stored envelope, as returned by List.
type SavedQuery struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	QueryID string `json:"queryId"`
	Created int64  `json:"created"`
}

// QueryStore persists query envelopes keyed by name. Save overwrites an
// existing entry of the same name; the stored envelope is a value copy and
// never tracks later changes to the source query.
type QueryStore struct {
	db     *sql.DB
	bus    *events.TypedEventBus[StoreEvent]
	logger *zap.Logger
}

// Open opens (or creates) a SQLite database at path and prepares the store
// schema. Use ":memory:" for an ephemeral store.
func Open(path string, logger *zap.Logger) (*QueryStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store, err := NewQueryStore(db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewQueryStore wraps an existing database handle. A nil logger is replaced
// with a no-op logger.
func NewQueryStore(db *sql.DB, logger *zap.Logger) (*QueryStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("failed to prepare store schema: %w", err)
	}
	bus, err := events.NewTypedEventBus[StoreEvent](events.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create event bus: %w", err)
	}
	return &QueryStore{db: db, bus: bus, logger: logger}, nil
}

// Close closes the underlying database handle.
func (s *QueryStore) Close() error {
	return s.db.Close()
}

// Subscribe registers a callback for a store event type and returns an
// unsubscribe function.
func (s *QueryStore) Subscribe(event StoreEventType, cb EventCallback) func() {
	return s.bus.Subscribe(string(event), func(ctx context.Context, e StoreEvent) error {
		return cb(ctx, e)
	})
}

func (s *QueryStore) emit(event StoreEvent) {
	if s.bus != nil {
		s.bus.Emit(string(event.Type), event)
	}
}

// withEvents wraps an operation with start, success and failure events.
func (s *QueryStore) withEvents(
	operation string,
	start, success, failed StoreEventType,
	name string,
	envelope any,
	fn func() error,
) error {
	s.emit(newStoreEvent(start, operation, name, envelope, nil))
	if err := fn(); err != nil {
		s.emit(newStoreEvent(failed, operation, name, envelope, err))
		return err
	}
	s.emit(newStoreEvent(success, operation, name, envelope, nil))
	return nil
}

// Save stores a query's envelope under a name, replacing any previous entry.
func (s *QueryStore) Save(ctx context.Context, name string, q query.Query) error {
	env := q.Envelope()
	return s.withEvents("save", QuerySaveStart, QuerySaveSuccess, QuerySaveFailed, name, env, func() error {
		body, err := json.Marshal(env.Body)
		if err != nil {
			return fmt.Errorf("failed to serialize query body: %w", err)
		}
		meta, err := json.Marshal(env.Metadata)
		if err != nil {
			return fmt.Errorf("failed to serialize query metadata: %w", err)
		}

		_, err = s.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO saved_queries (name, query_id, type, body, metadata, created)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			name, env.Metadata.ID, env.Type, string(body), string(meta), env.Metadata.Created,
		)
		if err != nil {
			return fmt.Errorf("failed to save query %q: %w", name, err)
		}

		s.logger.Debug("saved query envelope",
			zap.String("name", name),
			zap.String("type", env.Type),
			zap.String("queryId", env.Metadata.ID),
		)
		return nil
	})
}

// Load retrieves a stored envelope by name.
func (s *QueryStore) Load(ctx context.Context, name string) (query.Envelope, error) {
	var env query.Envelope
	err := s.withEvents("load", QueryLoadStart, QueryLoadSuccess, QueryLoadFailed, name, nil, func() error {
		var (
			kind string
			body string
			meta string
		)
		row := s.db.QueryRowContext(ctx,
			`SELECT type, body, metadata FROM saved_queries WHERE name = ?`, name)
		if err := row.Scan(&kind, &body, &meta); err != nil {
			if err == sql.ErrNoRows {
				return fmt.Errorf("no saved query named %q", name)
			}
			return fmt.Errorf("failed to load query %q: %w", name, err)
		}

		decoded, err := utils.MapToStruct[query.Envelope](map[string]any{
			"type":     kind,
			"body":     json.RawMessage(body),
			"metadata": json.RawMessage(meta),
		})
		if err != nil {
			return fmt.Errorf("failed to decode envelope for %q: %w", name, err)
		}
		env = decoded
		return nil
	})
	return env, err
}

// LoadQuery restores a stored envelope into a live immutable instance.
func (s *QueryStore) LoadQuery(ctx context.Context, name string) (query.Query, error) {
	env, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	return query.FromEnvelope(env), nil
}

// List returns all stored queries ordered by name.
func (s *QueryStore) List(ctx context.Context) ([]SavedQuery, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, type, query_id, created FROM saved_queries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}
	defer rows.Close()

	var out []SavedQuery
	for rows.Next() {
		var sq SavedQuery
		if err := rows.Scan(&sq.Name, &sq.Type, &sq.QueryID, &sq.Created); err != nil {
			return nil, fmt.Errorf("failed to scan saved query: %w", err)
		}
		out = append(out, sq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved queries: %w", err)
	}
	return out, nil
}

// Delete removes a stored query by name. Deleting an absent name is not an
// error.
func (s *QueryStore) Delete(ctx context.Context, name string) error {
	return s.withEvents("delete", QueryDeleteStart, QueryDeleteSuccess, QueryDeleteFailed, name, nil, func() error {
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM saved_queries WHERE name = ?`, name); err != nil {
			return fmt.Errorf("failed to delete query %q: %w", name, err)
		}
		return nil
	})
}
