package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/wisecache/wisecache/internal/domain"
)

type StoreError string

const (
	// ErrNotFound is the expected negative from lookups; callers must treat
	// it as "keep going", not as a store malfunction.
	ErrNotFound StoreError = "knowledge record not found"

	// ErrDuplicate reports the (owner, original_url) uniqueness guard fired
	// on insert. The pipeline translates it to an already-processed outcome.
	ErrDuplicate StoreError = "knowledge record already exists for this url"
)

func (e StoreError) Error() string {
	return string(e)
}

// Store is the persistence boundary for knowledge records.
type Store interface {
	// FindByURL returns the owner's record for url, or ErrNotFound.
	FindByURL(ctx context.Context, owner uuid.UUID, url string) (domain.KnowledgeRecord, error)
	// Insert persists a new record, assigning ID and CreatedAt. Returns
	// ErrDuplicate when the owner already holds a record for the URL.
	Insert(ctx context.Context, record domain.KnowledgeRecord) (domain.KnowledgeRecord, error)
	// ListByOwner returns the owner's records, newest first.
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.KnowledgeRecord, error)
	// CountByOwner counts the owner's records, for the guest link ceiling.
	CountByOwner(ctx context.Context, owner uuid.UUID) (int, error)
	// DeleteByID removes the owner's record, or returns ErrNotFound when the
	// owner holds no record with that id.
	DeleteByID(ctx context.Context, id uuid.UUID, owner uuid.UUID) error
}
