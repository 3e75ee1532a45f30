package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"homefinder/internal/database"
	"homefinder/internal/domain/document"
)

// DocumentStore keeps documents as JSONB rows keyed by (collection, key).
type DocumentStore struct {
	db database.DB
}

func NewDocumentStore(db database.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) WriteDocument(ctx context.Context, collection, key string, record document.Record) error {
	if err := document.ValidateKey(collection, key); err != nil {
		return err
	}
	if record == nil {
		record = document.Record{}
	}
	body, err := json.Marshal(record)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
INSERT INTO documents (collection, key, body, updated_at)
VALUES ($1, $2, $3::jsonb, now())
ON CONFLICT (collection, key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`,
		collection, key, string(body),
	)
	return err
}

func (s *DocumentStore) ReadDocument(ctx context.Context, collection, key string) (document.Record, error) {
	if err := document.ValidateKey(collection, key); err != nil {
		return nil, err
	}

	var body []byte
	err := s.db.QueryRow(ctx,
		`SELECT body FROM documents WHERE collection = $1 AND key = $2`,
		collection, key,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, document.ErrNotFound
		}
		return nil, err
	}

	var rec document.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}
