package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wisecache/wisecache/internal/domain"
)

func testRecord(owner uuid.UUID, url string) domain.KnowledgeRecord {
	return domain.KnowledgeRecord{
		OwnerID:     owner,
		Category:    domain.CategoryTechnology,
		Headline:    "Headline",
		Summary:     "Summary",
		OriginalURL: url,
	}
}

func TestMemoryStore_InsertAssignsIdentity(t *testing.T) {
	store := NewMemoryStore()
	owner := uuid.New()

	saved, err := store.Insert(context.Background(), testRecord(owner, "https://a.test/1"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, owner, saved.OwnerID)
}

func TestMemoryStore_DuplicateURLRejected(t *testing.T) {
	store := NewMemoryStore()
	owner := uuid.New()

	_, err := store.Insert(context.Background(), testRecord(owner, "https://a.test/1"))
	require.NoError(t, err)

	_, err = store.Insert(context.Background(), testRecord(owner, "https://a.test/1"))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryStore_SameURLDifferentOwners(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Insert(context.Background(), testRecord(uuid.New(), "https://a.test/1"))
	require.NoError(t, err)

	_, err = store.Insert(context.Background(), testRecord(uuid.New(), "https://a.test/1"))
	assert.NoError(t, err)
}

func TestMemoryStore_FindByURL(t *testing.T) {
	store := NewMemoryStore()
	owner := uuid.New()

	saved, err := store.Insert(context.Background(), testRecord(owner, "https://a.test/1"))
	require.NoError(t, err)

	found, err := store.FindByURL(context.Background(), owner, "https://a.test/1")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	_, err = store.FindByURL(context.Background(), owner, "https://a.test/missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.FindByURL(context.Background(), uuid.New(), "https://a.test/1")
	assert.ErrorIs(t, err, ErrNotFound, "another owner's records are invisible")
}

func TestMemoryStore_ListByOwnerNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	owner := uuid.New()

	for _, url := range []string{"https://a.test/1", "https://a.test/2", "https://a.test/3"} {
		_, err := store.Insert(context.Background(), testRecord(owner, url))
		require.NoError(t, err)
	}
	_, err := store.Insert(context.Background(), testRecord(uuid.New(), "https://other.test/1"))
	require.NoError(t, err)

	records, err := store.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].CreatedAt.After(records[i-1].CreatedAt))
	}
}

func TestMemoryStore_CountByOwner(t *testing.T) {
	store := NewMemoryStore()
	owner := uuid.New()

	count, err := store.CountByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = store.Insert(context.Background(), testRecord(owner, "https://a.test/1"))
	require.NoError(t, err)
	_, err = store.Insert(context.Background(), testRecord(owner, "https://a.test/2"))
	require.NoError(t, err)

	count, err = store.CountByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMemoryStore_DeleteByID(t *testing.T) {
	store := NewMemoryStore()
	owner := uuid.New()

	saved, err := store.Insert(context.Background(), testRecord(owner, "https://a.test/1"))
	require.NoError(t, err)

	err = store.DeleteByID(context.Background(), saved.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound, "only the owner may delete")

	err = store.DeleteByID(context.Background(), saved.ID, owner)
	require.NoError(t, err)

	err = store.DeleteByID(context.Background(), saved.ID, owner)
	assert.ErrorIs(t, err, ErrNotFound)
}
