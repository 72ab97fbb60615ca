package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wisecache/wisecache/internal/domain"
	"github.com/wisecache/wisecache/internal/storage"
)

// uniqueViolation is the Postgres error code raised by the
// (owner_id, original_url) unique index.
const uniqueViolation = "23505"

// RecordStore is the Postgres-backed knowledge record store. The unique
// index on (owner_id, original_url) is the guard that closes the pipeline's
// check-then-insert race.
type RecordStore struct {
	db *pgxpool.Pool
}

func NewRecordStore(pool *ConnectionPool) *RecordStore {
	return &RecordStore{db: pool.conn}
}

func (s *RecordStore) FindByURL(ctx context.Context, owner uuid.UUID, url string) (domain.KnowledgeRecord, error) {
	query := `
		SELECT id, owner_id, category, headline, summary, original_url, created_at
		FROM knowledge_records
		WHERE owner_id = $1 AND original_url = $2
	`

	record, err := scanRecord(s.db.QueryRow(ctx, query, owner, url))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.KnowledgeRecord{}, storage.ErrNotFound
		}
		return domain.KnowledgeRecord{}, fmt.Errorf("failed to query record by url: %w", err)
	}

	return record, nil
}

func (s *RecordStore) Insert(ctx context.Context, record domain.KnowledgeRecord) (domain.KnowledgeRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	cmd := `
		INSERT INTO knowledge_records (id, owner_id, category, headline, summary, original_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, owner_id, category, headline, summary, original_url, created_at
	`

	inserted, err := scanRecord(s.db.QueryRow(
		ctx,
		cmd,
		record.ID,
		record.OwnerID,
		string(record.Category),
		record.Headline,
		record.Summary,
		record.OriginalURL,
		record.CreatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.KnowledgeRecord{}, storage.ErrDuplicate
		}
		return domain.KnowledgeRecord{}, fmt.Errorf("failed to insert record: %w", err)
	}

	return inserted, nil
}

func (s *RecordStore) ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.KnowledgeRecord, error) {
	query := `
		SELECT id, owner_id, category, headline, summary, original_url, created_at
		FROM knowledge_records
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []domain.KnowledgeRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read record rows: %w", err)
	}

	return records, nil
}

func (s *RecordStore) CountByOwner(ctx context.Context, owner uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM knowledge_records WHERE owner_id = $1`, owner,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}

	return count, nil
}

func (s *RecordStore) DeleteByID(ctx context.Context, id uuid.UUID, owner uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM knowledge_records WHERE id = $1 AND owner_id = $2`, id, owner,
	)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func scanRecord(row pgx.Row) (domain.KnowledgeRecord, error) {
	var record domain.KnowledgeRecord
	var category string

	err := row.Scan(
		&record.ID,
		&record.OwnerID,
		&category,
		&record.Headline,
		&record.Summary,
		&record.OriginalURL,
		&record.CreatedAt,
	)
	if err != nil {
		return domain.KnowledgeRecord{}, err
	}
	record.Category = domain.Category(category)

	return record, nil
}
