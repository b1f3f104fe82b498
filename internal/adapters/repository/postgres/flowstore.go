// Package postgres provides a PostgreSQL-backed flow document store.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zeptofine/nodeflow/internal/core/document"
	"github.com/zeptofine/nodeflow/pkg/serialization"
)

// FlowStore implements document.Store on a pgx connection pool. Documents
// are stored serialized in a bytea column; the identifier is the key.
type FlowStore struct {
	pool       *pgxpool.Pool
	serializer *serialization.Serializer
	tableName  string
}

// NewFlowStore creates a PostgreSQL flow store. A nil serializer uses the
// default msgpack+zstd pipeline.
func NewFlowStore(pool *pgxpool.Pool, serializer *serialization.Serializer) *FlowStore {
	if serializer == nil {
		serializer = serialization.Default()
	}
	return &FlowStore{
		pool:       pool,
		serializer: serializer,
		tableName:  "flows",
	}
}

// Connect opens a connection pool for the given DSN and returns a flow
// store with its schema in place.
func Connect(ctx context.Context, dsn string, serializer *serialization.Serializer) (*FlowStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	store := NewFlowStore(pool, serializer)
	if err := store.CreateSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// CreateSchema creates the flows table if it does not exist.
func (s *FlowStore) CreateSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			doc BYTEA NOT NULL,
			saved_at TIMESTAMPTZ NOT NULL
		)
	`, s.tableName)
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create flows table: %w", err)
	}
	return nil
}

// Save stores a flow document, replacing any previous version.
func (s *FlowStore) Save(ctx context.Context, id string, doc *document.Document) error {
	if id == "" {
		return document.ErrInvalidDocumentID
	}
	if doc == nil {
		return document.ErrNilDocument
	}

	blob, err := s.serializer.Serialize(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, doc, saved_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			doc = EXCLUDED.doc,
			saved_at = EXCLUDED.saved_at
	`, s.tableName)

	if _, err := s.pool.Exec(ctx, query, id, blob, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Load retrieves a flow document by identifier.
func (s *FlowStore) Load(ctx context.Context, id string) (*document.Document, error) {
	if id == "" {
		return nil, document.ErrInvalidDocumentID
	}

	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, s.tableName)

	var blob []byte
	err := s.pool.QueryRow(ctx, query, id).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", document.ErrDocumentNotFound, id)
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	var doc document.Document
	if err := s.serializer.Deserialize(blob, &doc); err != nil {
		return nil, fmt.Errorf("failed to deserialize document: %w", err)
	}
	return &doc, nil
}

// List returns stored document identifiers, most recently saved first.
func (s *FlowStore) List(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT id FROM %s ORDER BY saved_at DESC`, s.tableName)

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan document id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete removes a stored document.
func (s *FlowStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return document.ErrInvalidDocumentID
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.tableName)
	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", document.ErrDocumentNotFound, id)
	}
	return nil
}
