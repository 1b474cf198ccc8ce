package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"subscription_syncer/internal/domain"
)

// ErrorStore persists connection error records as a namespaced key-value
// ledger. A key's live record is the row whose value carries no expired_at;
// expired rows stay behind as history.
type ErrorStore struct {
	db *sqlx.DB
}

func NewErrorStore(db *sqlx.DB) *ErrorStore {
	return &ErrorStore{db: db}
}

func (s *ErrorStore) GetLive(ctx context.Context, namespace, key string) (*domain.ErrorRecord, error) {
	query := `
		SELECT value
		FROM connection_errors
		WHERE namespace = $1 AND key = $2 AND value->>'expired_at' IS NULL`

	var raw []byte
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &raw, query, namespace, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record domain.ErrorRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("unmarshal error record: %w", err)
	}
	return &record, nil
}

// Put writes the record over the key's live row, inserting a fresh row when
// no live row exists. Writing a record with expired_at set therefore retires
// the live row in place.
func (s *ErrorStore) Put(ctx context.Context, namespace, key string, record *domain.ErrorRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal error record: %w", err)
	}

	exec := GetExecutor(ctx, s.db)

	update := `
		UPDATE connection_errors
		SET value = $3
		WHERE namespace = $1 AND key = $2 AND value->>'expired_at' IS NULL`

	res, err := exec.ExecContext(ctx, update, namespace, key, value)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	insert := `
		INSERT INTO connection_errors (namespace, key, value)
		VALUES ($1, $2, $3)`

	_, err = exec.ExecContext(ctx, insert, namespace, key, value)
	return err
}
