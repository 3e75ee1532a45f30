package document

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound   = errors.New("document not found")
	ErrInvalidKey = errors.New("invalid document key")
)

// Record is a flat key-value document.
type Record map[string]any

// Store is the document-store collaborator. WriteDocument replaces the whole
// document under (collection, key); concurrent writers resolve last-write-wins.
type Store interface {
	WriteDocument(ctx context.Context, collection, key string, record Record) error
	ReadDocument(ctx context.Context, collection, key string) (Record, error)
}

func ValidateKey(collection, key string) error {
	if strings.TrimSpace(collection) == "" || strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	return nil
}

// String returns the string value stored under field, or "" when it is
// missing or not a string.
func (r Record) String(field string) string {
	if r == nil {
		return ""
	}
	s, _ := r[field].(string)
	return s
}
