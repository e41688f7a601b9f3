package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/homekeep/api/internal/database"
)

// Store-level errors.
var (
	// ErrNotFound is returned when a document id does not exist in the
	// collection. Callers translate it into their own not-found handling.
	ErrNotFound = errors.New("document not found")
	// ErrUnknownCollection is returned for a collection name outside the
	// fixed set of document tables.
	ErrUnknownCollection = errors.New("unknown collection")
)

// Document is one row of a collection: the row key and the raw JSON body.
type Document struct {
	ID  string
	Doc json.RawMessage
}

// Store provides the document-store contract over the collection tables:
// get-by-id, create, create/replace-with-given-id, partial merge update,
// delete-by-id and equality-filtered listing. Collections are a fixed set;
// table names are validated before being interpolated into SQL.
type Store struct {
	db *database.Database
}

// New creates a Store over the given database.
func New(db *database.Database) *Store {
	return &Store{db: db}
}

// NewDocumentID returns a fresh identifier for a document.
func NewDocumentID() string {
	return uuid.New().String()
}

// table validates a collection name against the fixed set and returns it.
func table(collection string) (string, error) {
	for _, c := range database.Collections {
		if c == collection {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
}

// GetByID fetches a single document. Returns ErrNotFound when the id does
// not exist.
func (s *Store) GetByID(ctx context.Context, collection, id string) (json.RawMessage, error) {
	tbl, err := table(collection)
	if err != nil {
		return nil, err
	}

	var doc json.RawMessage
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, tbl)
	if err := s.db.Pool.QueryRow(ctx, query, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Insert creates a new document under the given id. The id must not exist.
func (s *Store) Insert(ctx context.Context, collection, id string, doc json.RawMessage) error {
	tbl, err := table(collection)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, tbl)
	if _, err := s.db.Pool.Exec(ctx, query, id, doc); err != nil {
		return fmt.Errorf("failed to insert %s/%s: %w", collection, id, err)
	}
	return nil
}

// Put creates or fully replaces the document under the given id. This is the
// bulk-load path: callers that bring their own ids use it.
func (s *Store) Put(ctx context.Context, collection, id string, doc json.RawMessage) error {
	tbl, err := table(collection)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (id, doc) VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`, tbl)
	if _, err := s.db.Pool.Exec(ctx, query, id, doc); err != nil {
		return fmt.Errorf("failed to put %s/%s: %w", collection, id, err)
	}
	return nil
}

// Patch merges the given fields into the stored document. Only the named
// fields change; everything else is left as-is. Returns ErrNotFound when the
// id does not exist.
func (s *Store) Patch(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	tbl, err := table(collection)
	if err != nil {
		return err
	}

	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode patch for %s/%s: %w", collection, id, err)
	}

	query := fmt.Sprintf(
		`UPDATE %s SET doc = doc || $2::jsonb, updated_at = now() WHERE id = $1`, tbl)
	tag, err := s.db.Pool.Exec(ctx, query, id, patch)
	if err != nil {
		return fmt.Errorf("failed to patch %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// PatchWhere merges fields into every document whose top-level field equals
// value, returning how many documents changed. Zero matches is not an error.
func (s *Store) PatchWhere(ctx context.Context, collection, field, value string, fields map[string]interface{}) (int, error) {
	tbl, err := table(collection)
	if err != nil {
		return 0, err
	}

	patch, err := json.Marshal(fields)
	if err != nil {
		return 0, fmt.Errorf("failed to encode patch for %s: %w", collection, err)
	}

	query := fmt.Sprintf(
		`UPDATE %s SET doc = doc || $3::jsonb, updated_at = now() WHERE doc->>$1 = $2`, tbl)
	tag, err := s.db.Pool.Exec(ctx, query, field, value, patch)
	if err != nil {
		return 0, fmt.Errorf("failed to patch %s by %s: %w", collection, field, err)
	}
	return int(tag.RowsAffected()), nil
}

// Delete removes the document. Returns ErrNotFound when the id does not
// exist.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	tbl, err := table(collection)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, tbl)
	tag, err := s.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAll returns every document in the collection. An empty collection
// yields an empty slice, not an error.
func (s *Store) ListAll(ctx context.Context, collection string) ([]Document, error) {
	tbl, err := table(collection)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, doc FROM %s`, tbl)
	rows, err := s.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	defer rows.Close()

	return collect(rows, collection)
}

// ListWhere returns the documents whose top-level field equals value.
// Documents without the field are simply not matched.
func (s *Store) ListWhere(ctx context.Context, collection, field, value string) ([]Document, error) {
	tbl, err := table(collection)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, doc FROM %s WHERE doc->>$1 = $2`, tbl)
	rows, err := s.db.Pool.Query(ctx, query, field, value)
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s by %s: %w", collection, field, err)
	}
	defer rows.Close()

	return collect(rows, collection)
}

// ListWhereContains returns the documents whose top-level array field
// contains value as an element.
func (s *Store) ListWhereContains(ctx context.Context, collection, field, value string) ([]Document, error) {
	tbl, err := table(collection)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, doc FROM %s WHERE doc->$1 ? $2`, tbl)
	rows, err := s.db.Pool.Query(ctx, query, field, value)
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s by %s membership: %w", collection, field, err)
	}
	defer rows.Close()

	return collect(rows, collection)
}

// CountWhere counts the documents matching every field=value pair in filters.
func (s *Store) CountWhere(ctx context.Context, collection string, filters map[string]string) (int, error) {
	tbl, err := table(collection)
	if err != nil {
		return 0, err
	}

	query, args := countQuery(tbl, filters)
	var count int
	if err := s.db.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return count, nil
}

// CreateWithSequence inserts a document whose content depends on how many
// documents currently match filters. It runs inside a transaction holding an
// advisory lock on lockKey, so two concurrent creations for the same key
// observe different counts. build receives the current count and returns the
// document to insert.
func (s *Store) CreateWithSequence(ctx context.Context, collection, lockKey, id string, filters map[string]string, build func(count int) (json.RawMessage, error)) error {
	tbl, err := table(collection)
	if err != nil {
		return err
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return fmt.Errorf("failed to lock sequence for %s: %w", lockKey, err)
	}

	query, args := countQuery(tbl, filters)
	var count int
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return fmt.Errorf("failed to count %s: %w", collection, err)
	}

	doc, err := build(count)
	if err != nil {
		return err
	}

	insert := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, tbl)
	if _, err := tx.Exec(ctx, insert, id, doc); err != nil {
		return fmt.Errorf("failed to insert %s/%s: %w", collection, id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s/%s: %w", collection, id, err)
	}
	return nil
}

// countQuery builds a count statement over equality filters on document
// fields. Filters may be empty, in which case the whole collection counts.
func countQuery(tbl string, filters map[string]string) (string, []interface{}) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, tbl)
	args := make([]interface{}, 0, len(filters)*2)
	i := 1
	for field, value := range filters {
		if i == 1 {
			query += " WHERE "
		} else {
			query += " AND "
		}
		query += fmt.Sprintf("doc->>$%d = $%d", i, i+1)
		args = append(args, field, value)
		i += 2
	}
	return query, args
}

// collect drains rows into documents.
func collect(rows pgx.Rows, collection string) ([]Document, error) {
	docs := []Document{}
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Doc); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", collection, err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", collection, err)
	}
	return docs, nil
}
